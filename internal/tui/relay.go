package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	progresscore "github.com/dst-portal/upload-portal/internal/progress"
)

// ProgressRelay bridges the timer-driven progress sequencer into the
// bubbletea update loop. The sequencer is constructed before the tea.Program
// exists, so statuses published before Attach are buffered and flushed.
type ProgressRelay struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	pending []progresscore.Status
}

func NewProgressRelay() *ProgressRelay {
	return &ProgressRelay{}
}

// Publish is the sequencer's onUpdate callback.
func (r *ProgressRelay) Publish(status progresscore.Status) {
	r.mu.Lock()
	send := r.send
	if send == nil {
		r.pending = append(r.pending, status)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()

	send(ProgressMsg{Status: status})
}

// Attach connects the running program and flushes buffered statuses in order.
func (r *ProgressRelay) Attach(send func(tea.Msg)) {
	r.mu.Lock()
	r.send = send
	pending := r.pending
	r.pending = nil
	r.mu.Unlock()

	for _, status := range pending {
		send(ProgressMsg{Status: status})
	}
}
