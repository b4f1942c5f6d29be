package main

import (
	"context"

	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tmconfigs"
	"github.com/reusee/turing/words"
)

var trace = cmds.Switch("-trace")

// Decide runs a fresh machine on word until it halts or the step budget is spent.
type Decide func(ctx context.Context, word string) (*machines.Machine, machines.Outcome, error)

func (Module) Decide(
	newMachine tmconfigs.NewMachine,
	maxSteps tmconfigs.MaxSteps,
	logger logs.Logger,
) Decide {
	return func(ctx context.Context, word string) (*machines.Machine, machines.Outcome, error) {
		m := newMachine()
		if err := m.Load(words.Normalize(word)); err != nil {
			return nil, 0, err
		}
		for record := range m.Records(int(maxSteps)) {
			if *trace {
				logger.DebugContext(ctx, "step",
					"step", record.Step,
					"from", record.From,
					"read", record.Read,
					"write", record.Write,
					"move", record.Move,
					"to", record.State,
					"head", record.Head,
				)
			}
		}
		outcome := machines.Halted
		if !m.Halted() {
			outcome = machines.StepLimit
		}
		return m, outcome, nil
	}
}
