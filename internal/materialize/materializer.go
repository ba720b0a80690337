package materialize

import (
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/viewpack/internal/assets"
	"git.home.luguber.info/inful/viewpack/internal/logfields"
)

// DefaultArchiveName is the archive file created next to the generated assets.
const DefaultArchiveName = "views_package.zip"

// Stage names used in logs.
const (
	StageDirs    = "dirs"
	StageWrite   = "write"
	StageArchive = "archive"
)

// Materializer writes assets under a root directory and packages them.
type Materializer struct {
	root        string
	archiveName string
	logger      *slog.Logger
}

// Option configures a Materializer.
type Option func(*Materializer)

// WithArchiveName overrides DefaultArchiveName. The name is resolved against the root.
func WithArchiveName(name string) Option {
	return func(m *Materializer) {
		if name != "" {
			m.archiveName = name
		}
	}
}

// WithLogger sets the logger used for stage and file events.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Materializer) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New returns a Materializer rooted at root ("." when empty).
func New(root string, opts ...Option) *Materializer {
	if root == "" {
		root = "."
	}
	m := &Materializer{
		root:        root,
		archiveName: DefaultArchiveName,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Root returns the directory asset paths resolve against.
func (m *Materializer) Root() string { return m.root }

// ArchivePath returns the full path of the archive file.
func (m *Materializer) ArchivePath() string {
	return filepath.Join(m.root, m.archiveName)
}

// Report summarizes a completed run.
type Report struct {
	Files        []string
	Archive      string
	Entries      int
	ArchiveBytes int64
}

// Run ensures directories, writes assets and packages the archive, in that order.
// Entries are validated once up front; the first error aborts the run.
func (m *Materializer) Run(entries []assets.Entry) (*Report, error) {
	if err := validate(entries); err != nil {
		return nil, err
	}
	report := &Report{}

	if err := m.stage(StageDirs, func() error {
		return m.ensureDirs(entries)
	}); err != nil {
		return nil, err
	}

	if err := m.stage(StageWrite, func() error {
		files, err := m.writeAssets(entries)
		report.Files = files
		return err
	}); err != nil {
		return nil, err
	}

	if err := m.stage(StageArchive, func() error {
		archive, size, err := m.packageArchive(entries)
		report.Archive = archive
		report.ArchiveBytes = size
		return err
	}); err != nil {
		return nil, err
	}

	report.Entries = len(entries)
	m.logger.Info("Assets materialized",
		logfields.Entries(report.Entries),
		logfields.Archive(report.Archive),
		logfields.Bytes(report.ArchiveBytes))
	return report, nil
}

func (m *Materializer) stage(name string, fn func() error) error {
	start := time.Now()
	m.logger.Debug("Stage started", logfields.Stage(name))

	err := fn()
	elapsed := logfields.DurationMS(float64(time.Since(start).Microseconds()) / 1000)
	if err != nil {
		m.logger.Error("Stage failed", logfields.Stage(name), elapsed, logfields.Error(err))
		return err
	}
	m.logger.Info("Stage completed", logfields.Stage(name), elapsed)
	return nil
}
