package paramtable

import "log"

// Logger receives the diagnostic lines emitted while assembling a table.
// Implementations must be safe for the sequential use Build makes of them;
// no locking is required beyond what the sink itself needs.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

// stdLogger is the default sink, writing through the process-wide stdlib logger.
type stdLogger struct{}

func (stdLogger) Infof(format string, args ...any) {
	log.Printf("INFO: "+format, args...)
}

func (stdLogger) Warnf(format string, args ...any) {
	log.Printf("WARNING: "+format, args...)
}
