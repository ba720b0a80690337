package materialize

import (
	"errors"
	"os"

	"git.home.luguber.info/inful/viewpack/internal/assets"
	vperrors "git.home.luguber.info/inful/viewpack/internal/errors"
	"git.home.luguber.info/inful/viewpack/internal/logfields"
)

const fileMode = 0o644

// WriteAssets creates or truncates each entry's file and writes its content.
// Parent directories must already exist (see EnsureDirs).
func (m *Materializer) WriteAssets(entries []assets.Entry) error {
	if err := validate(entries); err != nil {
		return err
	}
	_, err := m.writeAssets(entries)
	return err
}

func (m *Materializer) writeAssets(entries []assets.Entry) ([]string, error) {
	written := make([]string, 0, len(entries))
	for _, e := range entries {
		full, err := m.resolve(e.Path)
		if err != nil {
			return written, err
		}
		if err := writeFile(full, e.Content); err != nil {
			return written, vperrors.AssetWriteFailed(e.Path, err)
		}
		m.logger.Debug("Asset written", logfields.Path(e.Path), logfields.Bytes(int64(len(e.Content))))
		written = append(written, full)
	}
	return written, nil
}

func writeFile(path, content string) (err error) {
	// #nosec G302 G304 -- path is validated to stay under the root; views are served publicly.
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	_, err = file.WriteString(content)
	return err
}
