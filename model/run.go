package model

import "time"

type RunState int

const (
	RunIdle RunState = iota
	RunInitializing
	RunRunning
	RunCompleted
	RunCancelled
)

func (s RunState) String() string {
	switch s {
	case RunIdle:
		return "idle"
	case RunInitializing:
		return "initializing"
	case RunRunning:
		return "running"
	case RunCompleted:
		return "completed"
	case RunCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

const initializingLine = "Initializing..."

// RunSession is an immutable snapshot of one simulated run. Every transition
// returns a new snapshot and never writes into the receiver's log.
type RunSession struct {
	ID         string
	Tool       Tool
	State      RunState
	Step       int // timed steps applied so far
	StartedAt  time.Time
	FinishedAt time.Time

	log []string
}

// Begin opens a session for tool with the command echo and the
// initializing line already in its log.
func Begin(id string, tool Tool, at time.Time) RunSession {
	return RunSession{
		ID:        id,
		Tool:      tool,
		State:     RunInitializing,
		StartedAt: at,
		log:       []string{CommandLine(tool), initializingLine},
	}
}

// CommandLine is the first log line of every run of tool.
func CommandLine(tool Tool) string {
	return "$ " + tool.Command
}

// CompletionLine is the last log line of a completed run of tool.
func CompletionLine(tool Tool) string {
	return "✅ " + tool.Name + " completed successfully!"
}

func (r RunSession) Append(line string) RunSession {
	r.log = appendCopy(r.log, line)
	r.State = RunRunning
	r.Step++
	return r
}

func (r RunSession) Complete(line string, at time.Time) RunSession {
	r.log = appendCopy(r.log, line)
	r.State = RunCompleted
	r.Step++
	r.FinishedAt = at
	return r
}

func (r RunSession) Cancel(at time.Time) RunSession {
	if !r.Running() {
		return r
	}
	r.State = RunCancelled
	r.FinishedAt = at
	return r
}

func (r RunSession) Running() bool {
	return r.State == RunInitializing || r.State == RunRunning
}

// Lines returns a copy of the log.
func (r RunSession) Lines() []string {
	out := make([]string, len(r.log))
	copy(out, r.log)
	return out
}

func (r RunSession) Len() int {
	return len(r.log)
}

// Last returns the most recent log line, or "" for an empty session.
func (r RunSession) Last() string {
	if len(r.log) == 0 {
		return ""
	}
	return r.log[len(r.log)-1]
}

func appendCopy(log []string, line string) []string {
	out := make([]string, len(log), len(log)+1)
	copy(out, log)
	return append(out, line)
}
