package events

import (
	"testing"

	"github.com/nathoo/buffetcore/types"
)

func TestNew_BuildsData(t *testing.T) {
	e := New(Craft, "item", "meat_brick", "count", 2)
	if e.Type != Craft {
		t.Errorf("Type = %q, want %q", e.Type, Craft)
	}
	if e.Data["item"] != "meat_brick" || e.Data["count"] != 2 {
		t.Errorf("Data = %v", e.Data)
	}

	odd := New(Cook, "dangling")
	if len(odd.Data) != 0 {
		t.Errorf("odd key/value list should be ignored, got %v", odd.Data)
	}
}

func TestDispatch_InOrder(t *testing.T) {
	var r Recorder
	Dispatch(&r, []types.Event{New(HuntSuccess), New(Feeding), New(LevelUp)})

	got := r.Types()
	want := []string{HuntSuccess, Feeding, LevelUp}
	if len(got) != len(want) {
		t.Fatalf("recorded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDispatch_NilNotifier(t *testing.T) {
	// Must not panic.
	Dispatch(nil, []types.Event{New(Eat)})
	Dispatch(Discard, []types.Event{New(Eat)})
}

func TestMulti_FansOut(t *testing.T) {
	var a, b Recorder
	calls := 0
	m := Multi{&a, &b, NotifierFunc(func(types.Event) { calls++ })}

	m.Notify(New(Reward))

	if len(a.Events()) != 1 || len(b.Events()) != 1 || calls != 1 {
		t.Errorf("fan-out counts = %d/%d/%d, want 1/1/1", len(a.Events()), len(b.Events()), calls)
	}
}

func TestRecorder_Reset(t *testing.T) {
	var r Recorder
	r.Notify(New(Hire))
	r.Reset()
	if len(r.Events()) != 0 {
		t.Errorf("expected empty after reset, got %v", r.Types())
	}
}
