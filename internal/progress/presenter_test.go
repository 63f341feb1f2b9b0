package progress

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPhasesMonotonic(t *testing.T) {
	seq := Phases()
	require.Len(t, seq, 8)
	require.Equal(t, "preparing", seq[0].Key)
	require.Equal(t, "done", seq[len(seq)-1].Key)
	for i := 1; i < len(seq); i++ {
		require.Greater(t, seq[i].Percent, seq[i-1].Percent)
	}
	require.Equal(t, 100, seq[len(seq)-1].Percent)
}

func TestScheduleOffsetsIncrease(t *testing.T) {
	offsets := Schedule(3)
	require.Len(t, offsets, 7) // done has no timer
	require.Zero(t, offsets[0])
	for i := 1; i < len(offsets); i++ {
		require.Greater(t, offsets[i], offsets[i-1])
	}
}

func TestScheduleScalesWithFileCountCapped(t *testing.T) {
	small := Schedule(1)
	large := Schedule(10)
	capped := Schedule(1000)

	// The uploading span is offsets[4]-offsets[3]; later offsets shift.
	require.Greater(t, large[4], small[4])
	require.Equal(t, capped[3]+uploadMaxDelay, capped[4])
}

func TestSnapshotAtWalksThePhases(t *testing.T) {
	require.Equal(t, "preparing", SnapshotAt(0, 1).Key)
	require.Equal(t, "validating", SnapshotAt(preparingDelay, 1).Key)

	offsets := Schedule(1)
	require.Equal(t, "uploading", SnapshotAt(offsets[3], 1).Key)
	require.Equal(t, "completing", SnapshotAt(offsets[6], 1).Key)

	// Timers never reach done, however long the upload takes.
	require.Equal(t, "completing", SnapshotAt(time.Hour, 1).Key)
}

type updateRecorder struct {
	mu       sync.Mutex
	statuses []Status
}

func (r *updateRecorder) record(s Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses = append(r.statuses, s)
}

func (r *updateRecorder) last() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.statuses) == 0 {
		return Status{}
	}
	return r.statuses[len(r.statuses)-1]
}

func (r *updateRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.statuses)
}

func TestSequencerCompleteSnapsToDone(t *testing.T) {
	rec := &updateRecorder{}
	seq := NewSequencer(rec.record)

	seq.Start(2)
	require.Equal(t, "preparing", rec.last().Phase.Key)

	seq.Complete()
	last := rec.last()
	require.Equal(t, "done", last.Phase.Key)
	require.Equal(t, 100, last.Phase.Percent)
	require.True(t, last.Terminal)
	require.False(t, last.Failed)

	// Settling cancelled the timers; no further updates may arrive.
	count := rec.count()
	time.Sleep(2 * preparingDelay)
	require.Equal(t, count, rec.count())
}

func TestSequencerFailOverridesInFlightPhase(t *testing.T) {
	rec := &updateRecorder{}
	seq := NewSequencer(rec.record)

	seq.Start(1)
	seq.Fail("connection lost")

	last := rec.last()
	require.True(t, last.Terminal)
	require.True(t, last.Failed)
	require.Equal(t, "connection lost", last.Message)

	count := rec.count()
	time.Sleep(2 * preparingDelay)
	require.Equal(t, count, rec.count())
}

func TestSequencerStopSilencesTimers(t *testing.T) {
	rec := &updateRecorder{}
	seq := NewSequencer(rec.record)

	seq.Start(1)
	seq.Stop()

	count := rec.count()
	time.Sleep(2 * preparingDelay)
	require.Equal(t, count, rec.count())

	// A settle after Stop must not resurrect the display.
	seq.Complete()
	require.Equal(t, count, rec.count())
}

func TestSequencerAdvancesWithRealTimers(t *testing.T) {
	rec := &updateRecorder{}
	seq := NewSequencer(rec.record)

	seq.Start(1)
	time.Sleep(preparingDelay + validatingDelay/2)
	require.Equal(t, "validating", seq.Current().Phase.Key)
	seq.Stop()
}
