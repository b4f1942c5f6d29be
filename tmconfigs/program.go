package tmconfigs

import (
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/tables"
	"github.com/reusee/turing/vars"
)

type Program string

var _ configs.Configurable = Program("")

func (p Program) ConfigExpr() string {
	return "Program"
}

var programFlag = cmds.Var[string]("-program")

func (Module) Program(
	loader configs.Loader,
) Program {
	return vars.FirstNonZero(
		Program(*programFlag),
		configs.First[Program](loader, "program"),
		Program(tables.ProgramUniversal),
	)
}

type Alphabet string

var _ configs.Configurable = Alphabet("")

func (a Alphabet) ConfigExpr() string {
	return "Alphabet"
}

var alphabetFlag = cmds.Var[string]("-alphabet")

func (Module) Alphabet(
	loader configs.Loader,
) Alphabet {
	return vars.FirstNonZero(
		Alphabet(*alphabetFlag),
		configs.First[Alphabet](loader, "alphabet"),
		"ab",
	)
}

// Table is the transition table selected by Program, with its start, accept
// and reject states renamed to Labels so that machines built from both agree.
func (Module) Table(
	program Program,
	alphabet Alphabet,
	labels machines.Labels,
	logger logs.Logger,
) *tables.Table {
	table, err := tables.ByName(string(program), string(alphabet))
	if err != nil {
		panic(err)
	}
	table, err = table.Relabel(labels.Start, labels.Accept, labels.Reject)
	if err != nil {
		panic(err)
	}
	logger.Debug("transition table",
		"program", table.Name(),
		"states", table.States(),
	)
	return table
}
