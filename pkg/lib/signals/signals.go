package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// Context returns a child of parent that is cancelled on SIGTERM or
// SIGINT, so that a running search stops at its next solver call. If a
// second signal is caught, the program is terminated with exit code 1.
// The returned CancelFunc stops listening for signals.
func Context(parent context.Context, log logrus.FieldLogger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	c := make(chan os.Signal, 2)
	signal.Notify(c, shutdownSignals...)

	go func() {
		defer signal.Stop(c)
		select {
		case s := <-c:
			log.Warnf("received %s, cancelling search", s)
			cancel()
		case <-ctx.Done():
			return
		}
		<-c
		os.Exit(1) // second signal. Exit directly.
	}()

	return ctx, cancel
}
