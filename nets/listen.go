package nets

import (
	"context"
	"net"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/tmconfigs"
	"golang.org/x/net/netutil"
)

type Listen func(ctx context.Context) (net.Listener, error)

func (Module) Listen(
	addr tmconfigs.ListenAddr,
	maxConns tmconfigs.MaxConns,
	isLocalAddr IsLocalAddr,
	logger logs.Logger,
) Listen {
	return func(ctx context.Context) (net.Listener, error) {
		var config net.ListenConfig
		ln, err := config.Listen(ctx, "tcp", string(addr))
		if err != nil {
			return nil, err
		}

		if isLocal, err := isLocalAddr(ln.Addr().String()); err == nil && !isLocal {
			logger.WarnContext(ctx, "listening on non-local address", "addr", ln.Addr())
		}
		logger.InfoContext(ctx, "listening",
			"addr", ln.Addr(),
			"max_conns", maxConns,
		)

		return netutil.LimitListener(ln, int(maxConns)), nil
	}
}
