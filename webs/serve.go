package webs

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/nets"
)

// Serve runs the HTTP server until ctx is done.
type Serve func(ctx context.Context) error

func (Module) Serve(
	handler Handler,
	listen nets.Listen,
	logger logs.Logger,
) Serve {
	return func(ctx context.Context) error {
		ln, err := listen(ctx)
		if err != nil {
			return err
		}

		server := &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: time.Second * 10,
			BaseContext: func(net.Listener) context.Context {
				return ctx
			},
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Serve(ln)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.InfoContext(ctx, "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second*5)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
