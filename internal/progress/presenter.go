// Package progress narrates an in-flight upload as a fixed sequence of
// named phases. The narration is schedule-driven, not wired to real
// transfer progress: the transport exposes no byte-level events, so the
// phases advance on wall-clock timers and only the terminal success or
// failure edge comes from the real request.
package progress

import (
	"sync"
	"time"
)

// Phase is one named stage with its display percentage. Percentages are
// monotonically increasing across the sequence.
type Phase struct {
	Key     string // i18n keys upload.phase.<Key> and upload.phase.<Key>.desc
	Percent int
}

var phases = []Phase{
	{Key: "preparing", Percent: 5},
	{Key: "validating", Percent: 15},
	{Key: "connecting", Percent: 25},
	{Key: "uploading", Percent: 60},
	{Key: "processing", Percent: 80},
	{Key: "email", Percent: 95},
	{Key: "completing", Percent: 98},
	{Key: "done", Percent: 100},
}

// Phases returns the full ordered sequence for rendering.
func Phases() []Phase {
	out := make([]Phase, len(phases))
	copy(out, phases)
	return out
}

const (
	preparingDelay  = 300 * time.Millisecond
	validatingDelay = 400 * time.Millisecond
	connectingDelay = 600 * time.Millisecond
	uploadBaseDelay = 500 * time.Millisecond
	uploadPerFile   = 400 * time.Millisecond
	uploadMaxDelay  = 8 * time.Second
	processingDelay = 800 * time.Millisecond
	emailDelay      = 700 * time.Millisecond
	completingDelay = 500 * time.Millisecond
)

// uploadingSpan scales the uploading phase with file count, capped so huge
// submissions do not stall the narration.
func uploadingSpan(fileCount int) time.Duration {
	if fileCount < 1 {
		fileCount = 1
	}
	span := uploadBaseDelay + time.Duration(fileCount)*uploadPerFile
	if span > uploadMaxDelay {
		span = uploadMaxDelay
	}
	return span
}

// Schedule returns the start offset of every phase except done, which is
// never reached by timers: it is entered only on real transport success.
func Schedule(fileCount int) []time.Duration {
	spans := []time.Duration{
		preparingDelay,
		validatingDelay,
		connectingDelay,
		uploadingSpan(fileCount),
		processingDelay,
		emailDelay,
		completingDelay,
	}
	offsets := make([]time.Duration, len(spans))
	var elapsed time.Duration
	for i, span := range spans {
		offsets[i] = elapsed
		elapsed += span
	}
	return offsets
}

// SnapshotAt is the pure schedule function: the phase the narration shows
// after elapsed time for a given file count. It never returns done.
func SnapshotAt(elapsed time.Duration, fileCount int) Phase {
	offsets := Schedule(fileCount)
	current := phases[0]
	for i, offset := range offsets {
		if elapsed >= offset {
			current = phases[i]
		}
	}
	return current
}

// Status is what the presenter pushes to its display on every change.
type Status struct {
	Phase    Phase
	Terminal bool
	Failed   bool
	// Message carries the classified, translated error text when Failed.
	Message   string
	FileCount int
}

// Sequencer runs the phase schedule with real timers and delivers updates
// through a callback. All pending timers are cancelled when the upload
// settles, the presenter is stopped, or an error is dismissed — a timer
// firing after that would repaint a stale phase.
type Sequencer struct {
	mu       sync.Mutex
	onUpdate func(Status)
	timers   []*time.Timer
	status   Status
	stopped  bool
}

func NewSequencer(onUpdate func(Status)) *Sequencer {
	if onUpdate == nil {
		onUpdate = func(Status) {}
	}
	return &Sequencer{onUpdate: onUpdate}
}

// Start resets the sequencer and schedules every phase transition.
func (s *Sequencer) Start(fileCount int) {
	s.mu.Lock()
	s.cancelTimersLocked()
	s.stopped = false
	s.status = Status{Phase: phases[0], FileCount: fileCount}
	update := s.onUpdate
	initial := s.status

	for i, offset := range Schedule(fileCount) {
		if i == 0 {
			continue // preparing is shown immediately
		}
		idx := i
		timer := time.AfterFunc(offset, func() {
			s.advance(idx)
		})
		s.timers = append(s.timers, timer)
	}
	s.mu.Unlock()

	update(initial)
}

func (s *Sequencer) advance(idx int) {
	s.mu.Lock()
	if s.stopped || s.status.Terminal || idx >= len(phases)-1 {
		s.mu.Unlock()
		return
	}
	s.status.Phase = phases[idx]
	update := s.onUpdate
	snapshot := s.status
	s.mu.Unlock()

	update(snapshot)
}

// Complete snaps directly to the done phase, whatever the timers reached.
func (s *Sequencer) Complete() {
	s.settle(Status{Phase: phases[len(phases)-1], Terminal: true})
}

// Fail switches immediately to the terminal error view with the classified
// message, overriding any in-flight phase.
func (s *Sequencer) Fail(message string) {
	s.settle(Status{Terminal: true, Failed: true, Message: message})
}

// Stop cancels all pending timers without emitting a further update. Used
// on teardown and when the user dismisses the error display.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.cancelTimersLocked()
	s.mu.Unlock()
}

// Current returns the last emitted status.
func (s *Sequencer) Current() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Sequencer) settle(final Status) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.cancelTimersLocked()
	final.FileCount = s.status.FileCount
	if final.Failed {
		// The error view keeps the phase that was showing when the
		// failure arrived.
		final.Phase = s.status.Phase
	}
	s.status = final
	update := s.onUpdate
	s.mu.Unlock()

	update(final)
}

func (s *Sequencer) cancelTimersLocked() {
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}
