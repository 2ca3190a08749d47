package httpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Run starts the watcher and the HTTP server, then blocks until a
// shutdown signal arrives:
//  1. Map routes
//  2. Start the background watcher
//  3. Start the HTTP listener
//  4. Wait for SIGINT/SIGTERM, then stop the watcher
func (srv *HTTPServer) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv.mapHandlers()

	go srv.watcher.Run(ctx)

	go func() {
		if err := srv.gin.Run(fmt.Sprintf(":%d", srv.port)); err != nil {
			srv.logger.Errorf(ctx, "HTTP server error: %v", err)
		}
	}()
	srv.logger.Infof(ctx, "HTTP server started on port: %d", srv.port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	srv.logger.Info(ctx, <-ch)
	srv.logger.Info(ctx, "Stopping alert service...")

	cancel()
	return nil
}
