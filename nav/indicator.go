package nav

import (
	"sync"
	"time"

	"github.com/helpsite/docview"
)

// PulseDelay is how long the completion pulse stays visible before the
// indicator clears.
const PulseDelay = 500 * time.Millisecond

// Ensure PulseIndicator implements docview.Indicator at compile time.
var _ docview.Indicator = (*PulseIndicator)(nil)

// PulseIndicator is a loading indicator whose completion state clears
// itself after a fixed delay. Rapid successive navigations replace the
// pending clear timer, so completion pulses never overlap.
type PulseIndicator struct {
	delay  time.Duration
	notify func(docview.IndicatorState)

	mu    sync.Mutex
	state docview.IndicatorState
	clear *time.Timer
}

// NewPulseIndicator creates an indicator reporting state changes through
// notify (which may be nil). A non-positive delay uses PulseDelay.
func NewPulseIndicator(delay time.Duration, notify func(docview.IndicatorState)) *PulseIndicator {
	if delay <= 0 {
		delay = PulseDelay
	}
	return &PulseIndicator{delay: delay, notify: notify}
}

// ShowLoading sets the active state and cancels any pending clear.
func (p *PulseIndicator) ShowLoading() {
	p.set(docview.IndicatorLoading, false)
}

// DoneLoading sets the completion pulse and schedules its clear,
// replacing any pending clear from a prior call.
func (p *PulseIndicator) DoneLoading() {
	p.set(docview.IndicatorDone, true)
}

// State returns the current indicator state.
func (p *PulseIndicator) State() docview.IndicatorState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *PulseIndicator) set(state docview.IndicatorState, scheduleClear bool) {
	p.mu.Lock()
	if p.clear != nil {
		p.clear.Stop()
		p.clear = nil
	}
	p.state = state
	if scheduleClear {
		p.clear = time.AfterFunc(p.delay, p.clearDone)
	}
	fn := p.notify
	p.mu.Unlock()

	if fn != nil {
		fn(state)
	}
}

func (p *PulseIndicator) clearDone() {
	p.mu.Lock()
	if p.state != docview.IndicatorDone {
		p.mu.Unlock()
		return
	}
	p.state = docview.IndicatorIdle
	fn := p.notify
	p.mu.Unlock()

	if fn != nil {
		fn(docview.IndicatorIdle)
	}
}
