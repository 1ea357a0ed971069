package network

import (
	"errors"
	"testing"

	"github.com/joshharrison/pertloom/internal/loader"
)

func rows(specs ...loader.Row) []loader.Row { return specs }

func TestBuild_DedupesEvents(t *testing.T) {
	n := Build(rows(
		loader.Row{From: 1, To: 2, Duration: 1, Name: "a"},
		loader.Row{From: 2, To: 3, Duration: 3, Name: "b"},
		loader.Row{From: 1, To: 3, Duration: 5, Name: "c"},
	))

	if n.EventCount() != 3 {
		t.Errorf("expected 3 events, got %d", n.EventCount())
	}
	if len(n.Tasks) != 3 {
		t.Errorf("expected 3 tasks, got %d", len(n.Tasks))
	}
	if got := []uint64{n.Labels[0], n.Labels[1], n.Labels[2]}; got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("expected labels in first-seen order [1 2 3], got %v", got)
	}
}

func TestBuild_AllowsParallelTasks(t *testing.T) {
	n := Build(rows(
		loader.Row{From: 1, To: 2, Duration: 2, Name: "short"},
		loader.Row{From: 1, To: 2, Duration: 5, Name: "long"},
	))

	if len(n.Out[1]) != 2 {
		t.Errorf("expected 2 parallel tasks out of event 1, got %d", len(n.Out[1]))
	}
	if len(n.In[2]) != 2 {
		t.Errorf("expected 2 parallel tasks into event 2, got %d", len(n.In[2]))
	}
}

func TestStart_Unique(t *testing.T) {
	n := Build(rows(
		loader.Row{From: 1, To: 2, Duration: 1, Name: "a"},
		loader.Row{From: 2, To: 3, Duration: 1, Name: "b"},
	))

	start, err := n.Start()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Label != 1 {
		t.Errorf("expected start event 1, got %d", start.Label)
	}
}

func TestStart_Duplicate(t *testing.T) {
	// Two sources feeding one sink.
	n := Build(rows(
		loader.Row{From: 1, To: 3, Duration: 1, Name: "a"},
		loader.Row{From: 2, To: 3, Duration: 1, Name: "b"},
	))

	_, err := n.Start()
	if !errors.Is(err, ErrDuplicateStart) {
		t.Fatalf("expected ErrDuplicateStart, got %v", err)
	}
}

func TestStart_Missing(t *testing.T) {
	// Pure cycle: every event has an incoming task.
	n := Build(rows(
		loader.Row{From: 1, To: 2, Duration: 1, Name: "a"},
		loader.Row{From: 2, To: 1, Duration: 1, Name: "b"},
	))

	_, err := n.Start()
	if !errors.Is(err, ErrNoStart) {
		t.Fatalf("expected ErrNoStart, got %v", err)
	}
}

func TestEnd_Duplicate(t *testing.T) {
	// One source feeding two sinks.
	n := Build(rows(
		loader.Row{From: 1, To: 2, Duration: 1, Name: "a"},
		loader.Row{From: 1, To: 3, Duration: 1, Name: "b"},
	))

	_, err := n.End()
	if !errors.Is(err, ErrDuplicateEnd) {
		t.Fatalf("expected ErrDuplicateEnd, got %v", err)
	}
}

func TestEnd_Missing(t *testing.T) {
	n := Build(rows(
		loader.Row{From: 1, To: 2, Duration: 1, Name: "a"},
		loader.Row{From: 2, To: 1, Duration: 1, Name: "b"},
	))

	_, err := n.End()
	if !errors.Is(err, ErrNoEnd) {
		t.Fatalf("expected ErrNoEnd, got %v", err)
	}
}

func TestTopoOrder_RespectsEdges(t *testing.T) {
	n := Build(rows(
		loader.Row{From: 1, To: 2, Duration: 1, Name: "a"},
		loader.Row{From: 1, To: 3, Duration: 5, Name: "b"},
		loader.Row{From: 2, To: 3, Duration: 2, Name: "c"},
		loader.Row{From: 3, To: 4, Duration: 3, Name: "d"},
	))

	order, err := n.TopoOrder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 4 {
		t.Fatalf("expected 4 events in order, got %d: %v", len(order), order)
	}

	pos := make(map[uint64]int)
	for i, label := range order {
		pos[label] = i
	}
	for _, task := range n.Tasks {
		if pos[task.From] >= pos[task.To] {
			t.Errorf("task %s: %d must come before %d in %v", task.Name, task.From, task.To, order)
		}
	}
}

func TestTopoOrder_Cycle(t *testing.T) {
	n := Build(rows(
		loader.Row{From: 0, To: 1, Duration: 1, Name: "in"},
		loader.Row{From: 1, To: 2, Duration: 1, Name: "fwd"},
		loader.Row{From: 2, To: 1, Duration: 1, Name: "back"},
		loader.Row{From: 2, To: 3, Duration: 1, Name: "out"},
	))

	_, err := n.TopoOrder()
	if err == nil {
		t.Fatal("expected cycle error")
	}

	var cycleErr *CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected *CycleError, got %T: %v", err, err)
	}
	if len(cycleErr.Cycle) == 0 {
		t.Fatal("expected a non-empty cycle path")
	}
	if cycleErr.Cycle[0] != cycleErr.Cycle[len(cycleErr.Cycle)-1] {
		t.Errorf("expected cycle to close on itself, got %v", cycleErr.Cycle)
	}

	inCycle := make(map[uint64]bool)
	for _, label := range cycleErr.Cycle {
		inCycle[label] = true
	}
	if !inCycle[1] || !inCycle[2] {
		t.Errorf("expected cycle through events 1 and 2, got %v", cycleErr.Cycle)
	}
}
