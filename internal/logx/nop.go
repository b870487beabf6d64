package logx

// nopLogger discards everything; used by tests and by components built without a logger.
type nopLogger struct{}

var nop Logger = nopLogger{}

// Nop returns a no-op Logger.
func Nop() Logger { return nop }

// OrNop returns l, or the no-op logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return nop
	}
	return l
}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}
func (nopLogger) With(...Field) Logger   { return nop }
func (nopLogger) Sync() error            { return nil }
