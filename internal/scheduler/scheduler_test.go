package scheduler

import "testing"

func TestStartRunsEveryTick(t *testing.T) {
	s := New(0)
	calls := 0
	s.Start(func(float64) { calls++ })

	for i := 0; i < 3; i++ {
		s.Tick(1.0 / 60)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if s.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", s.Frames())
	}
}

func TestStopPreventsFurtherCalls(t *testing.T) {
	s := New(0)
	calls := 0
	task := s.Start(func(float64) { calls++ })

	s.Tick(0.016)
	task.Stop()
	task.Stop()
	s.Tick(0.016)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after stop, want 0", s.Len())
	}
	if !task.Stopped() {
		t.Error("task should report stopped")
	}
}

func TestStopDuringTick(t *testing.T) {
	s := New(0)
	var second *Task
	secondCalls := 0
	s.Start(func(float64) { second.Stop() })
	second = s.Start(func(float64) { secondCalls++ })

	s.Tick(0.016)
	if secondCalls != 0 {
		t.Errorf("task stopped earlier in the same tick ran %d times", secondCalls)
	}
}

func TestStartDuringTickRunsNextFrame(t *testing.T) {
	s := New(0)
	added := 0
	started := false
	s.Start(func(float64) {
		if !started {
			started = true
			s.Start(func(float64) { added++ })
		}
	})

	s.Tick(0.016)
	if added != 0 {
		t.Errorf("task added during tick ran in the same frame")
	}
	s.Tick(0.016)
	if added != 1 {
		t.Errorf("added task calls = %d, want 1", added)
	}
}

func TestDeltaClamped(t *testing.T) {
	s := New(0.06)
	var got []float64
	s.Start(func(dt float64) { got = append(got, dt) })

	s.Tick(1.0)
	s.Tick(-1)
	s.Tick(0.01)

	want := []float64{0.06, 0, 0.01}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tick %d: dt = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStopAll(t *testing.T) {
	s := New(0)
	a := s.Start(func(float64) {})
	b := s.Start(func(float64) {})
	s.StopAll()
	if !a.Stopped() || !b.Stopped() || s.Len() != 0 {
		t.Error("StopAll must stop every task")
	}
}

func TestNilTaskStopIsSafe(t *testing.T) {
	var task *Task
	task.Stop()
	if !task.Stopped() {
		t.Error("nil task should report stopped")
	}
}
