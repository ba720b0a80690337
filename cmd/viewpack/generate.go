package main

import (
	"archive/zip"
	"context"
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/viewpack/internal/assets"
	vperrors "git.home.luguber.info/inful/viewpack/internal/errors"
	"git.home.luguber.info/inful/viewpack/internal/logfields"
	"git.home.luguber.info/inful/viewpack/internal/materialize"
)

const completionMessage = "Created views/ and public/css/, packaged into " + materialize.DefaultArchiveName

// GenerateCmd implements the default 'generate' command.
type GenerateCmd struct{}

// Run materializes the asset set in the working directory.
func (g *GenerateCmd) Run(globals *Global) error {
	wd, err := os.Getwd()
	if err != nil {
		return vperrors.InternalError("resolve working directory", err)
	}

	m := materialize.New(wd, materialize.WithLogger(globals.Logger))
	report, err := m.Run(assets.Entries())
	if err != nil {
		return err
	}

	if globals.Logger.Enabled(context.Background(), slog.LevelDebug) {
		if err := logArchiveListing(globals.Logger, report.Archive); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(globals.Stdout, completionMessage)
	return nil
}

func logArchiveListing(logger *slog.Logger, archive string) error {
	entries, err := materialize.ReadArchive(archive)
	if err != nil {
		return err
	}
	for _, e := range entries {
		logger.Debug("Archive entry",
			logfields.Path(e.Name),
			logfields.Bytes(int64(len(e.Content))),
			logfields.Method(methodName(e.Method)))
	}
	return nil
}

func methodName(method uint16) string {
	switch method {
	case zip.Store:
		return "store"
	case zip.Deflate:
		return "deflate"
	default:
		return fmt.Sprintf("method-%d", method)
	}
}
