package network

// Event is a milestone in the schedule. It has no duration of its own;
// FastestBegin and LatestFinish are filled in by the analysis passes.
// Times are signed so an inconsistent network shows up as a negative
// float instead of wrapping around.
type Event struct {
	Label        uint64
	FastestBegin int64
	LatestFinish int64
}

// Task is a timed activity connecting two events. TotalFloat and
// FreeFloat are derived from the adjacent event times.
type Task struct {
	Name       string
	Duration   int64
	From       uint64
	To         uint64
	TotalFloat int64
	FreeFloat  int64
}

// Network is a directed graph of events connected by tasks.
type Network struct {
	Events map[uint64]*Event
	Tasks  []*Task            // in input row order
	Out    map[uint64][]*Task // event -> outgoing tasks
	In     map[uint64][]*Task // event -> incoming tasks
	Labels []uint64           // event labels in first-seen order
}
