package labyrinth

// Logger is the logging surface the builder writes diagnostics to.
type Logger interface {
	Printf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}
