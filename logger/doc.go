// Package logger is the public API of woodlog. Most users only need
// to import this package.
//
// Loggers are acquired by name from a process-wide registry:
//
//	log, err := logger.Acquire(logger.Config{Name: "app", Dir: "logs"})
//	if err != nil {
//	    return err
//	}
//	log.Infof("listening on %s", addr)
//
// Acquire is idempotent per name: the first call builds the instance
// (rotating file sink plus console sink sharing one formatter, and by
// default a filter that drops health-check probe lines); every later
// call for the same name returns that exact instance and ignores its
// other parameters, so sinks can never be attached twice.
//
// A Logger is immutable after construction — the handler, level,
// fields, and filters are set once and never modified. This makes
// Logger inherently safe for concurrent use without any locking on
// the read path; the sinks serialize their own writes.
//
// For custom wiring outside the registry, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    WithLevel(logger.DebugLevel).
//	    WithCaller(true).
//	    Build()
//
// Child loggers with extra fields are created via With, which returns
// a new Logger sharing the same handler:
//
//	reqLog := log.With(logger.String("request_id", id))
//
// Level checks happen before any allocation, so filtered-out messages
// cost only a single integer comparison.
package logger
