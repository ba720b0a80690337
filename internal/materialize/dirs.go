package materialize

import (
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/viewpack/internal/assets"
	vperrors "git.home.luguber.info/inful/viewpack/internal/errors"
	"git.home.luguber.info/inful/viewpack/internal/logfields"
)

const dirMode = 0o755

// EnsureDirs creates the parent directory of every entry along with any
// missing ancestors. Existing directories are left alone.
func (m *Materializer) EnsureDirs(entries []assets.Entry) error {
	if err := validate(entries); err != nil {
		return err
	}
	return m.ensureDirs(entries)
}

func (m *Materializer) ensureDirs(entries []assets.Entry) error {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		full, err := m.resolve(e.Path)
		if err != nil {
			return err
		}
		dir := filepath.Dir(full)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}

		if err := os.MkdirAll(dir, dirMode); err != nil {
			return vperrors.DirectoryCreateFailed(dir, err)
		}
		m.logger.Debug("Directory ready", logfields.Directory(dir))
	}
	return nil
}
