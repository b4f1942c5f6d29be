package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/tmconfigs"
	"github.com/reusee/turing/webs"
)

type Module struct {
	dscope.Module
	Configs tmconfigs.Module
	Debugs  debugs.Module
	Webs    webs.Module
}
