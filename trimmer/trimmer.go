package trimmer

import (
	"path/filepath"
	"strings"

	"github.com/docker/go-units"
	"github.com/sirupsen/logrus"

	"github.com/ndshome/ndstrim/nds"
)

// Result records the outcome of trimming a single file.
type Result struct {
	// Source is the path of the file that was processed
	Source string

	// Dest is the path the trimmed image was (or would be) written to. In
	// in-place mode it equals Source.
	Dest string

	// OriginalSize is the file's on-disk size before trimming
	OriginalSize int64

	// TrimmedSize is the computed content size
	TrimmedSize int64

	// Err is the failure for this file, if any. A non-nil Err never stops
	// the rest of the batch.
	Err error
}

// Saved returns the number of padding bytes removed (or removable).
func (r Result) Saved() int64 {
	return r.OriginalSize - r.TrimmedSize
}

// Trimmer applies one trimming mode to batches of ROM files.
type Trimmer struct {
	cfg Config
}

// New creates a Trimmer with the given options.
func New(opts ...Option) *Trimmer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Trimmer{cfg: cfg}
}

// Run processes each path in order and returns one Result per path. Files
// are handled independently; a failure is recorded in that file's Result
// and processing continues with the next path.
func (t *Trimmer) Run(paths []string) []Result {
	results := make([]Result, 0, len(paths))

	for _, path := range paths {
		r := t.trimFile(path)

		if r.Err != nil {
			t.cfg.Logger.WithField("file", r.Source).WithError(r.Err).Error("skipped")
		} else {
			t.cfg.Logger.WithFields(logrus.Fields{
				"file":    r.Dest,
				"size":    units.HumanSize(float64(r.OriginalSize)),
				"trimmed": units.HumanSize(float64(r.TrimmedSize)),
				"saved":   units.HumanSize(float64(r.Saved())),
			}).Debug("trimmed")
		}

		if t.cfg.ResultCallback != nil {
			t.cfg.ResultCallback(r)
		}
		results = append(results, r)
	}

	return results
}

// trimFile opens, validates and (unless simulating) trims a single file.
func (t *Trimmer) trimFile(src string) Result {
	res := Result{Source: src, Dest: src}
	if !t.cfg.InPlace {
		res.Dest = replaceExtension(src, t.cfg.Extension)
	}

	f, err := nds.Open(src)
	if err != nil {
		res.Err = err
		return res
	}
	defer func() { _ = f.Close() }()

	res.OriginalSize = f.Size()
	res.TrimmedSize = f.TrimmedSize()

	if t.cfg.Simulate {
		return res
	}

	if t.cfg.InPlace {
		res.Err = f.Trim()
	} else {
		res.Err = f.TrimTo(res.Dest)
	}
	return res
}

// replaceExtension swaps path's extension for ext, appending when path has
// no extension.
func replaceExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}
