// Package logger wraps Go's slog package with functional options, helper
// attribute constructors and injection of values stored in context.Context.
//
// A single factory, New, builds a *slog.Logger. Options select the format
// (text or json), the minimum level, static attributes, and ContextExtractor
// callbacks that read request-scoped values such as a request id every time a
// record is handled.
//
// Records go to stderr by default. The dispenser transcript owns stdout, and
// mixing the two would break anyone piping the transcript.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "dispenser"),
//	    logger.WithContextExtractors(httpapi.RequestIDExtractor()),
//	)
//
//	log.DebugContext(ctx, "stimulus handled",
//	    logger.MachineID(m.ID()),
//	    logger.Transition(from, to),
//	    logger.Inventory(n),
//	)
//
// ParseLevel and ParseFormat turn config strings into option values.
//
// # Error Handling
//
// Error produces an attribute only for a non-nil error, so
//
//	log.Info("scenario finished", logger.Error(err))
//
// needs no nil check. Nop returns a logger that discards everything, the
// default for library types constructed without WithLogger.
package logger
