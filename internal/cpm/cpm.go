package cpm

import (
	"sort"

	"github.com/joshharrison/pertloom/internal/network"
)

// Analyze performs critical path analysis on a task network: it
// validates the topology (single start, single end, acyclic), then
// computes the earliest and latest occurrence time of every event and
// the total and free float of every task.
func Analyze(n *network.Network) (*Schedule, error) {
	start, err := n.Start()
	if err != nil {
		return nil, err
	}
	end, err := n.End()
	if err != nil {
		return nil, err
	}
	order, err := n.TopoOrder()
	if err != nil {
		return nil, err
	}

	// Forward pass: earliest occurrence is the longest path from the
	// start, accumulated over predecessors in topological order.
	for _, label := range order {
		fb := int64(0)
		for _, t := range n.In[label] {
			if v := n.Events[t.From].FastestBegin + t.Duration; v > fb {
				fb = v
			}
		}
		n.Events[label].FastestBegin = fb
	}

	total := end.FastestBegin

	// Backward pass: latest occurrence without delaying the project,
	// accumulated over successors in reverse topological order.
	for i := len(order) - 1; i >= 0; i-- {
		label := order[i]
		lf := total
		for _, t := range n.Out[label] {
			if v := n.Events[t.To].LatestFinish - t.Duration; v < lf {
				lf = v
			}
		}
		n.Events[label].LatestFinish = lf
	}

	// Float pass: per-task slack from the adjacent event times.
	for _, t := range n.Tasks {
		from := n.Events[t.From]
		to := n.Events[t.To]
		t.TotalFloat = to.LatestFinish - (from.FastestBegin + t.Duration)
		t.FreeFloat = to.FastestBegin - (from.FastestBegin + t.Duration)
	}

	s := &Schedule{
		net:             n,
		Start:           start.Label,
		End:             end.Label,
		ProjectDuration: total,
	}

	// Critical events (no slack between earliest and latest occurrence)
	// in schedule order.
	for _, label := range order {
		ev := n.Events[label]
		if ev.FastestBegin == ev.LatestFinish {
			s.CriticalPath = append(s.CriticalPath, label)
		}
	}
	sort.Slice(s.CriticalPath, func(i, j int) bool {
		a := n.Events[s.CriticalPath[i]]
		b := n.Events[s.CriticalPath[j]]
		if a.FastestBegin != b.FastestBegin {
			return a.FastestBegin < b.FastestBegin
		}
		return a.Label < b.Label
	})

	return s, nil
}
