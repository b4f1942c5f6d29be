package webs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/nets"
	"github.com/reusee/turing/tmconfigs"
)

type Module struct {
	dscope.Module
	Configs tmconfigs.Module
	Logs    logs.Module
	Nets    nets.Module
}
