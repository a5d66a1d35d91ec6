// Package launcher plays a simulated run outside the TUI, writing each log
// line as soon as it appears.
package launcher

import (
	"context"
	"fmt"
	"io"

	"github.com/e-ogugua/devflow-cli/model"
	"github.com/e-ogugua/devflow-cli/simulator"
)

// Run starts tool on sim and copies its log to w. It returns the finished
// session, or ctx's error if the caller gave up before completion.
func Run(ctx context.Context, sim *simulator.Simulator, tool model.Tool, w io.Writer) (model.RunSession, error) {
	events := sim.Start(ctx, tool)

	var last model.RunSession
	for ev := range events {
		last = ev.Session
		for _, line := range ev.Added() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				sim.Stop()
				return last, err
			}
		}
	}

	if last.State != model.RunCompleted {
		if err := ctx.Err(); err != nil {
			return sim.Snapshot(), err
		}
		return sim.Snapshot(), fmt.Errorf("run %s of %s was interrupted", last.ID, tool.ID)
	}
	return last, nil
}
