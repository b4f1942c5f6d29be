package tmconfigs

import (
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tables"
	"github.com/reusee/turing/vars"
)

type MaxSteps int

var _ configs.Configurable = MaxSteps(0)

func (m MaxSteps) ConfigExpr() string {
	return "MaxSteps"
}

const DefaultMaxSteps = 100_000

var maxStepsFlag = cmds.Var[int]("-max-steps")

func (Module) MaxSteps(
	loader configs.Loader,
	logger logs.Logger,
) MaxSteps {
	n := vars.FirstNonZero(
		MaxSteps(*maxStepsFlag),
		configs.First[MaxSteps](loader, "max_steps"),
		DefaultMaxSteps,
	)
	if n < 0 {
		logger.Warn("non-positive max steps, using default", "max_steps", int(n))
		return DefaultMaxSteps
	}
	return n
}

type labels struct {
	Start  string `json:"start"`
	Accept string `json:"accept"`
	Reject string `json:"reject"`
}

func (Module) Labels(
	loader configs.Loader,
) machines.Labels {
	configured := configs.First[labels](loader, "labels")
	return machines.Labels{
		Start:  vars.FirstNonZero(configured.Start, machines.DefaultLabels.Start),
		Accept: vars.FirstNonZero(configured.Accept, machines.DefaultLabels.Accept),
		Reject: vars.FirstNonZero(configured.Reject, machines.DefaultLabels.Reject),
	}
}

type NewMachine func() *machines.Machine

func (Module) NewMachine(
	table *tables.Table,
	labels machines.Labels,
) NewMachine {
	return func() *machines.Machine {
		return machines.New(table, labels)
	}
}
