package simulator

import (
	"time"

	"github.com/e-ogugua/devflow-cli/model"
)

// DefaultDelay is the pause before each timed step.
const DefaultDelay = time.Second

var setupLines = []string{
	"Setting up environment...",
	"Installing dependencies...",
	"Configuring project structure...",
	"Running initial setup...",
}

// Step is one timed log line: wait Delay, then append Line.
type Step struct {
	Delay time.Duration
	Line  string
}

// Script returns the timed steps of a run of tool. The last step is always
// the completion line.
func Script(tool model.Tool, delay time.Duration) []Step {
	steps := make([]Step, 0, len(setupLines)+1)
	for _, line := range setupLines {
		steps = append(steps, Step{Delay: delay, Line: line})
	}
	return append(steps, Step{Delay: delay, Line: model.CompletionLine(tool)})
}

// Duration is the total paced time of steps.
func Duration(steps []Step) time.Duration {
	var d time.Duration
	for _, s := range steps {
		d += s.Delay
	}
	return d
}
