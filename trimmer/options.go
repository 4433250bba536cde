package trimmer

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultExtension is the extension given to trimmed copies when no other
// extension is configured. It replaces the source file's extension, so
// "game.nds" becomes "game.trim.nds".
const DefaultExtension = "trim.nds"

// Config holds the trimmer configuration.
type Config struct {
	// Simulate reports sizes without modifying or creating any file
	Simulate bool

	// InPlace trims source files directly instead of writing copies
	InPlace bool

	// Extension is the extension for trimmed copies (ignored when InPlace)
	Extension string

	// Logger receives per-file progress and failure logs (optional)
	Logger logrus.FieldLogger

	// ResultCallback is called with each file's Result as it completes
	// (optional)
	ResultCallback func(Result)
}

// defaultConfig returns the default configuration. The default logger
// discards everything; callers that want logs supply their own.
func defaultConfig() Config {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Config{
		Extension: DefaultExtension,
		Logger:    l,
	}
}

// Option is a functional option for configuring the Trimmer.
type Option func(*Config)

// WithSimulate enables or disables simulate-only mode. In simulate mode the
// trimmer validates files and reports sizes but never modifies anything.
func WithSimulate(simulate bool) Option {
	return func(c *Config) {
		c.Simulate = simulate
	}
}

// WithInPlace enables or disables in-place trimming. In-place trimming
// shrinks the source file itself and is irreversible.
func WithInPlace(inPlace bool) Option {
	return func(c *Config) {
		c.InPlace = inPlace
	}
}

// WithExtension sets the extension for trimmed copies. Empty values are
// ignored and keep the default.
func WithExtension(ext string) Option {
	return func(c *Config) {
		if ext != "" {
			c.Extension = ext
		}
	}
}

// WithLogger sets the logger used for per-file progress and failures.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithResultCallback sets a callback invoked with each file's Result as
// soon as that file completes.
func WithResultCallback(callback func(Result)) Option {
	return func(c *Config) {
		c.ResultCallback = callback
	}
}
