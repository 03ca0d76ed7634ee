package logger

// Logger is the logging interface used throughout dotdigital-cli. It keeps
// the library decoupled from any particular logging backend: callers can
// plug in their preferred implementation (logrus, zap, standard log) or use
// the provided Noop logger to disable logging entirely.
//
// The CLI itself uses NewStdOut(), which doubles as the operator-facing
// progress output: campaign processing status, retry warnings and the final
// summary all go through this interface.
//
// Usage Example:
//
//	client := dotdigital.NewClient(user, pass, dotdigital.WithLogger(myLogger))
//
//	// Disable logging entirely
//	client := dotdigital.NewClient(user, pass, dotdigital.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
