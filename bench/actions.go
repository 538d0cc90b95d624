package bench

import (
	"sync"
	"time"
)

// Action is one timed step of a scenario run.
type Action struct {
	Name     string
	Started  time.Time
	Finished time.Time
}

func (a Action) Duration() time.Duration {
	return a.Finished.Sub(a.Started)
}

// ActionLog collects the timed actions of a scenario run in the order they
// finished. The zero value is ready to use. A nil *ActionLog still feeds the
// duration metric but keeps no chronology, which suits fire-and-forget use.
type ActionLog struct {
	mu      sync.Mutex
	actions []Action
}

// Start begins timing the named action. The returned stop function records
// the action and observes the package duration summary. It must be called
// exactly once, typically via defer.
func (l *ActionLog) Start(name string) func() {
	started := time.Now()
	return func() {
		finished := time.Now()
		observeAction(name, finished.Sub(started))
		if l == nil {
			return
		}
		l.mu.Lock()
		l.actions = append(l.actions, Action{Name: name, Started: started, Finished: finished})
		l.mu.Unlock()
	}
}

// Actions returns a copy of the recorded chronology.
func (l *ActionLog) Actions() []Action {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Action, len(l.actions))
	copy(out, l.actions)
	return out
}

// Reset drops the recorded chronology so the log can serve another run.
func (l *ActionLog) Reset() {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.actions = l.actions[:0]
	l.mu.Unlock()
}
