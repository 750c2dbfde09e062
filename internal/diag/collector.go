package diag

import "fmt"

// Severity represents the severity level of a collected entry.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Entry is a single collected log line.
type Entry struct {
	Severity Severity
	Message  string
}

// String returns a formatted entry string.
func (e Entry) String() string {
	return e.Severity.String() + ": " + e.Message
}

// Collector implements the assembler's Logger interface by recording
// entries in order instead of writing them anywhere.
type Collector struct {
	Entries []Entry
}

// Infof records an info-level entry.
func (c *Collector) Infof(format string, args ...any) {
	c.Entries = append(c.Entries, Entry{
		Severity: SeverityInfo,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Warnf records a warning-level entry.
func (c *Collector) Warnf(format string, args ...any) {
	c.Entries = append(c.Entries, Entry{
		Severity: SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Infos returns the info-level entries, in order.
func (c *Collector) Infos() []Entry {
	return c.filter(SeverityInfo)
}

// Warnings returns the warning-level entries, in order.
func (c *Collector) Warnings() []Entry {
	return c.filter(SeverityWarning)
}

// HasWarnings returns true if any warning was recorded.
func (c *Collector) HasWarnings() bool {
	return len(c.Warnings()) > 0
}

func (c *Collector) filter(sev Severity) []Entry {
	var out []Entry

	for _, e := range c.Entries {
		if e.Severity == sev {
			out = append(out, e)
		}
	}

	return out
}
