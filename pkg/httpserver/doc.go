// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown.
//
// Run binds the listener before returning control to hooks, so a bad address
// fails fast with ErrStart and an ":0" address can be read back through Addr.
// It then blocks until the context is cancelled, SIGINT or SIGTERM arrives
// (unless WithoutSignals is set) or Shutdown is called, and drains in-flight
// requests within the shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// HealthCheckHandler provides the liveness/readiness endpoint mounted by the
// dispenser API.
package httpserver
