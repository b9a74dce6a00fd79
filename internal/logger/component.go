package logger

// ComponentKey is the attribute that names the subsystem behind a record.
const ComponentKey = "component"

// attrLogger prepends a fixed set of attributes to every record while
// sharing the level of the logger it wraps.
type attrLogger struct {
	inner Logger
	attrs []any
}

// With returns a Logger that adds args to every record written through it.
func With(inner Logger, args ...any) Logger {
	if len(args) == 0 {
		return inner
	}
	if a, ok := inner.(*attrLogger); ok {
		return &attrLogger{inner: a.inner, attrs: a.with(args)}
	}
	return &attrLogger{inner: inner, attrs: append([]any(nil), args...)}
}

// Component tags records with the emitting subsystem, e.g. "app" or "style".
func Component(inner Logger, name string) Logger {
	return With(inner, ComponentKey, name)
}

func (a *attrLogger) with(args []any) []any {
	out := make([]any, 0, len(a.attrs)+len(args))
	out = append(out, a.attrs...)
	return append(out, args...)
}

func (a *attrLogger) SetLogLevel(levelStr string) { a.inner.SetLogLevel(levelStr) }
func (a *attrLogger) GetLogLevel() string         { return a.inner.GetLogLevel() }

func (a *attrLogger) Trace(msg string, args ...any) { a.inner.Trace(msg, a.with(args)...) }
func (a *attrLogger) Debug(msg string, args ...any) { a.inner.Debug(msg, a.with(args)...) }
func (a *attrLogger) Info(msg string, args ...any)  { a.inner.Info(msg, a.with(args)...) }
func (a *attrLogger) Warn(msg string, args ...any)  { a.inner.Warn(msg, a.with(args)...) }

func (a *attrLogger) Error(msg string, err error, args ...any) {
	a.inner.Error(msg, err, a.with(args)...)
}

func (a *attrLogger) Fatal(msg string, err error, args ...any) {
	a.inner.Fatal(msg, err, a.with(args)...)
}
