package tmconfigs

import (
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/vars"
)

type ListenAddr string

var _ configs.Configurable = ListenAddr("")

func (l ListenAddr) ConfigExpr() string {
	return "ListenAddr"
}

var listenFlag = cmds.Var[string]("-listen")

func (Module) ListenAddr(
	loader configs.Loader,
) ListenAddr {
	return vars.FirstNonZero(
		ListenAddr(*listenFlag),
		configs.First[ListenAddr](loader, "listen_addr"),
		"127.0.0.1:8000",
	)
}

// MaxConns bounds both accepted connections and concurrent simulations.
type MaxConns int

var _ configs.Configurable = MaxConns(0)

func (m MaxConns) ConfigExpr() string {
	return "MaxConns"
}

var maxConnsFlag = cmds.Var[int]("-max-conns")

const DefaultMaxConns = 64

func (Module) MaxConns(
	loader configs.Loader,
	logger logs.Logger,
) MaxConns {
	n := vars.FirstNonZero(
		MaxConns(*maxConnsFlag),
		configs.First[MaxConns](loader, "max_conns"),
		DefaultMaxConns,
	)
	if n < 0 {
		logger.Warn("non-positive max conns, using default", "max_conns", int(n))
		return DefaultMaxConns
	}
	return n
}
