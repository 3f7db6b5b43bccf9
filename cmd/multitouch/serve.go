package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/multitouch"
	"github.com/akeil/multitouch/internal/logging"
	"github.com/akeil/multitouch/pkg/host"
)

const shutdownTimeout = 5 * time.Second

func doServe(cfg multitouch.Config, addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	fmt.Printf("%v listening on ws://%v/\n", ellipsis, ln.Addr())

	return runServer(ctx, host.NewServer(cfg.Thresholds), ln)
}

// runServer serves websocket sessions on ln until ctx is done.
func runServer(ctx context.Context, srv *host.Server, ln net.Listener) error {
	httpSrv := &http.Server{Handler: srv}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		err := httpSrv.Serve(ln)
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	})
	group.Go(func() error {
		<-ctx.Done()
		logging.Info("Shutting down, %d sessions open", srv.Sessions())
		srv.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
