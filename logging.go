package tokenizer

import "github.com/juju/loggo"

// SetDebug toggles verbose package-wide logging, dispatching through named
// loggers instead of a single package-level *log.Logger so each
// component's verbosity can be tuned independently via loggo's module
// hierarchy.
func SetDebug(b bool) {
	level := loggo.INFO
	if b {
		level = loggo.DEBUG
	}
	loggo.GetLogger("tokenizer").SetLogLevel(level)
}

// newComponentLogger returns the named logger for one component of the
// tokenizer (scanner, relex, parallel, watch). Names nest
// under "tokenizer" so SetDebug affects every component at once, and a
// single component can still be raised independently with
// loggo.GetLogger("tokenizer.<name>").SetLogLevel.
func newComponentLogger(name string) loggo.Logger {
	return loggo.GetLogger("tokenizer." + name)
}

// NewComponentLogger is newComponentLogger exported for the collaborator
// packages (parallel, watch) that live outside this package
// but want the same "tokenizer.<name>" logger hierarchy.
func NewComponentLogger(name string) loggo.Logger {
	return newComponentLogger(name)
}
