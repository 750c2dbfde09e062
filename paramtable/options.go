package paramtable

// Option configures a single Build call.
type Option func(*config)

type config struct {
	log    Logger
	namer  func(string) string
	idStem string
}

func defaultConfig() config {
	return config{log: stdLogger{}}
}

// WithLogger routes Build's diagnostic lines to l instead of the stdlib logger.
func WithLogger(l Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithFieldNamer formats each header name with fn, e.g. naming.Snake.
// Row values are unaffected; only the header changes.
func WithFieldNamer(fn func(string) string) Option {
	return func(c *config) {
		c.namer = fn
	}
}

// WithAutoID labels every case that has no id with a generated one
// (stem1, stem2, ...), skipping ids already taken by labeled cases.
// Auto-labeled cases produce annotated rows by the normal variant rule.
func WithAutoID(stem string) Option {
	return func(c *config) {
		c.idStem = stem
	}
}
