package search_test

import (
	"context"
	"testing"

	"github.com/helpsite/docview"
	"github.com/helpsite/docview/mock"
	"github.com/helpsite/docview/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Query(t *testing.T) {
	t.Parallel()

	t.Run("escapes metacharacters and appends a prefix wildcard", func(t *testing.T) {
		t.Parallel()

		var got string
		index := &mock.Index{
			SearchFn: func(_ context.Context, query string, _ []string, _ int) ([]docview.Hit, error) {
				got = query
				return nil, nil
			},
		}

		search.NewEngine(index).Query(context.Background(), `c++ mov ax:bx`)

		assert.Equal(t, `c\+\+ mov ax\:bx*`, got)
	})

	t.Run("single-character last token is not augmented", func(t *testing.T) {
		t.Parallel()

		var got string
		index := &mock.Index{
			SearchFn: func(_ context.Context, query string, _ []string, _ int) ([]docview.Hit, error) {
				got = query
				return nil, nil
			},
		}

		search.NewEngine(index).Query(context.Background(), "mov a")

		assert.Equal(t, "mov a", got)
	})

	t.Run("falls back to the verbatim query when the augmented form is rejected", func(t *testing.T) {
		t.Parallel()

		var queries []string
		index := &mock.Index{
			SearchFn: func(_ context.Context, query string, _ []string, _ int) ([]docview.Hit, error) {
				queries = append(queries, query)
				if len(queries) == 1 {
					return nil, docview.Errorf(docview.EQUERYSYNTAX, "unparseable query")
				}
				return []docview.Hit{{ID: "pages/3-io.html", Score: 1}}, nil
			},
		}

		hits := search.NewEngine(index).Query(context.Background(), "interrupt")

		require.Equal(t, []string{"interrupt*", "interrupt"}, queries)
		require.Len(t, hits, 1)
		assert.Equal(t, "pages/3-io.html", hits[0].ID)
	})

	t.Run("a second rejection yields the empty result set", func(t *testing.T) {
		t.Parallel()

		index := &mock.Index{
			SearchFn: func(context.Context, string, []string, int) ([]docview.Hit, error) {
				return nil, docview.Errorf(docview.EQUERYSYNTAX, "unparseable query")
			},
		}

		assert.Empty(t, search.NewEngine(index).Query(context.Background(), "interrupt"))
	})

	t.Run("blank input runs nothing", func(t *testing.T) {
		t.Parallel()

		index := &mock.Index{
			SearchFn: func(context.Context, string, []string, int) ([]docview.Hit, error) {
				t.Fatal("blank input must not reach the index")
				return nil, nil
			},
		}

		assert.Empty(t, search.NewEngine(index).Query(context.Background(), "   "))
	})

	t.Run("truncates to the result cap in engine order", func(t *testing.T) {
		t.Parallel()

		many := make([]docview.Hit, 25)
		for i := range many {
			many[i] = docview.Hit{ID: string(rune('a' + i)), Score: float64(25 - i)}
		}
		index := &mock.Index{
			SearchFn: func(context.Context, string, []string, int) ([]docview.Hit, error) {
				return many, nil
			},
		}

		hits := search.NewEngine(index).Query(context.Background(), "dos")

		require.Len(t, hits, search.MaxResults)
		assert.Equal(t, many[:search.MaxResults], hits)
	})
}

func TestTerms(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"int", "21h"}, search.Terms("INT 21h"))
	assert.Equal(t, []string{"ax"}, search.Terms("  a AX b "), "single-rune tokens are dropped")
	assert.Nil(t, search.Terms(""))
}
