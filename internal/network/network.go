package network

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gammazero/toposort"

	"github.com/joshharrison/pertloom/internal/loader"
)

// Topology failures surfaced by Start and End.
var (
	ErrNoStart        = errors.New("network has no start event")
	ErrDuplicateStart = errors.New("network has more than one start event")
	ErrNoEnd          = errors.New("network has no end event")
	ErrDuplicateEnd   = errors.New("network has more than one end event")
)

// CycleError reports a dependency cycle in the network.
type CycleError struct {
	Cycle []uint64 // event labels along the cycle, first == last
}

func (e *CycleError) Error() string {
	labels := make([]string, len(e.Cycle))
	for i, l := range e.Cycle {
		labels[i] = fmt.Sprintf("%d", l)
	}
	return fmt.Sprintf("network contains a cycle: %s", strings.Join(labels, " -> "))
}

// Build constructs a Network from loaded rows. Each distinct event
// label becomes one Event; each row becomes one Task. Parallel tasks
// between the same pair of events are allowed.
func Build(rows []loader.Row) *Network {
	n := &Network{
		Events: make(map[uint64]*Event),
		Out:    make(map[uint64][]*Task),
		In:     make(map[uint64][]*Task),
	}

	add := func(label uint64) {
		if _, ok := n.Events[label]; ok {
			return
		}
		n.Events[label] = &Event{Label: label}
		n.Labels = append(n.Labels, label)
	}

	for _, r := range rows {
		add(r.From)
		add(r.To)
		t := &Task{
			Name:     r.Name,
			Duration: int64(r.Duration),
			From:     r.From,
			To:       r.To,
		}
		n.Tasks = append(n.Tasks, t)
		n.Out[r.From] = append(n.Out[r.From], t)
		n.In[r.To] = append(n.In[r.To], t)
	}

	return n
}

// Start returns the unique event with no incoming tasks.
func (n *Network) Start() (*Event, error) {
	var starts []uint64
	for _, label := range n.Labels {
		if len(n.In[label]) == 0 {
			starts = append(starts, label)
		}
	}
	switch len(starts) {
	case 0:
		return nil, ErrNoStart
	case 1:
		return n.Events[starts[0]], nil
	default:
		return nil, fmt.Errorf("%w: events %v", ErrDuplicateStart, starts)
	}
}

// End returns the unique event with no outgoing tasks.
func (n *Network) End() (*Event, error) {
	var ends []uint64
	for _, label := range n.Labels {
		if len(n.Out[label]) == 0 {
			ends = append(ends, label)
		}
	}
	switch len(ends) {
	case 0:
		return nil, ErrNoEnd
	case 1:
		return n.Events[ends[0]], nil
	default:
		return nil, fmt.Errorf("%w: events %v", ErrDuplicateEnd, ends)
	}
}

// TopoOrder returns the event labels in topological order, or a
// CycleError if the network is not acyclic.
func (n *Network) TopoOrder() ([]uint64, error) {
	var edges []toposort.Edge
	for _, label := range n.Labels {
		if len(n.In[label]) == 0 {
			// Edge from nil keeps isolated start events in the sort.
			edges = append(edges, toposort.Edge{nil, label})
		}
	}
	seen := make(map[[2]uint64]bool)
	for _, t := range n.Tasks {
		key := [2]uint64{t.From, t.To}
		if seen[key] {
			continue
		}
		seen[key] = true
		edges = append(edges, toposort.Edge{t.From, t.To})
	}

	sorted, err := toposort.Toposort(edges)
	if err != nil {
		return nil, &CycleError{Cycle: n.findCycle()}
	}

	order := make([]uint64, 0, len(n.Labels))
	for _, v := range sorted {
		if v == nil {
			continue
		}
		order = append(order, v.(uint64))
	}
	return order, nil
}

// findCycle locates a cycle using DFS with coloring: white (unvisited),
// gray (in progress), black (done). Returns the cycle path in forward
// order with the entry event repeated at the end.
func (n *Network) findCycle() []uint64 {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[uint64]int)
	parent := make(map[uint64]uint64)

	var dfs func(label uint64) []uint64
	dfs = func(label uint64) []uint64 {
		color[label] = gray
		for _, t := range n.Out[label] {
			next := t.To
			if color[next] == gray {
				// Reconstruct the cycle by walking parents back to next.
				cycle := []uint64{label}
				cur := label
				for cur != next {
					cur = parent[cur]
					cycle = append(cycle, cur)
				}
				// Reverse to forward order, then close the loop.
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return append(cycle, next)
			}
			if color[next] == white {
				parent[next] = label
				if cycle := dfs(next); cycle != nil {
					return cycle
				}
			}
		}
		color[label] = black
		return nil
	}

	// Sort labels for deterministic detection.
	labels := append([]uint64(nil), n.Labels...)
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	for _, label := range labels {
		if color[label] == white {
			if cycle := dfs(label); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

// EventCount returns the number of events in the network.
func (n *Network) EventCount() int {
	return len(n.Events)
}
