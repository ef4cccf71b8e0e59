package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/helpsite/docview/nav"
	"github.com/helpsite/docview/search"
)

// session is the interactive loop: plain lines search, colon-prefixed
// lines drive the engine.
type session struct {
	deps       *Dependencies
	controller *nav.Controller
	searcher   *search.Searcher
	view       *terminalSearchView
}

func (s *session) run() error {
	scanner := bufio.NewScanner(s.deps.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			// A submitted line is a deliberate query; run it without the
			// keystroke debounce.
			s.searcher.Run(s.deps.Ctx, line)
			continue
		}
		if quit := s.command(line); quit {
			return nil
		}
	}
	return scanner.Err()
}

// command handles one colon command and reports whether to quit.
func (s *session) command(line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case ":q":
		return true

	case ":b":
		s.controller.Back()

	case ":f":
		s.controller.Forward()

	case ":o":
		if arg == "" {
			fmt.Fprintln(s.deps.Stdout, "usage: :o <result number or page id>")
			return false
		}
		s.open(arg)

	default:
		usage(s.deps)
	}
	return false
}

// open navigates to a result by number or to a page identifier.
func (s *session) open(arg string) {
	id := arg
	if n, err := strconv.Atoi(arg); err == nil {
		item, ok := s.view.item(n)
		if !ok {
			fmt.Fprintf(s.deps.Stdout, "no result %d\n", n)
			return
		}
		id = item.ID
	}
	if err := s.controller.NavigateTo(s.deps.Ctx, id); err != nil {
		// The renderer already showed the error page.
		s.deps.Logger.Error("navigate", "id", id, "err", err)
	}
}
