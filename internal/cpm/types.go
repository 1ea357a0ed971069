package cpm

import "github.com/joshharrison/pertloom/internal/network"

// Schedule is the frozen result of critical path analysis. It wraps the
// analyzed network and answers read-only classification queries.
type Schedule struct {
	net *network.Network

	Start           uint64
	End             uint64
	ProjectDuration int64
	CriticalPath    []uint64 // critical event labels in schedule order
}

// Events returns the events in first-seen input order.
func (s *Schedule) Events() []*network.Event {
	events := make([]*network.Event, 0, len(s.net.Labels))
	for _, label := range s.net.Labels {
		events = append(events, s.net.Events[label])
	}
	return events
}

// Tasks returns the tasks in input row order.
func (s *Schedule) Tasks() []*network.Task {
	return s.net.Tasks
}

// IsCritical reports whether a task lies on a critical path.
func (s *Schedule) IsCritical(t *network.Task) bool {
	return t.TotalFloat == 0
}

// IsDummy reports whether a task is a zero-duration dependency edge.
func (s *Schedule) IsDummy(t *network.Task) bool {
	return t.Duration == 0
}
