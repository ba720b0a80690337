package materialize

import (
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"git.home.luguber.info/inful/viewpack/internal/assets"
	vperrors "git.home.luguber.info/inful/viewpack/internal/errors"
)

// cleanRel validates a slash-separated relative asset path and returns its
// cleaned form.
func cleanRel(rel string) (string, error) {
	if rel == "" {
		return "", vperrors.InvalidAssetPath(rel, "path is empty")
	}
	if path.IsAbs(rel) || filepath.IsAbs(rel) || filepath.VolumeName(rel) != "" {
		return "", vperrors.InvalidAssetPath(rel, "path must be relative")
	}

	clean := path.Clean(rel)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", vperrors.InvalidAssetPath(rel, "path escapes output root")
	}
	return clean, nil
}

// resolve maps a relative asset path onto the materializer root.
func (m *Materializer) resolve(rel string) (string, error) {
	clean, err := cleanRel(rel)
	if err != nil {
		return "", err
	}
	return filepath.Join(m.root, filepath.FromSlash(clean)), nil
}

// validate checks every entry before any side effect happens.
func validate(entries []assets.Entry) error {
	for _, e := range entries {
		if _, err := cleanRel(e.Path); err != nil {
			return err
		}
		if !utf8.ValidString(e.Content) {
			return vperrors.InvalidAssetContent(e.Path, "content is not valid UTF-8")
		}
	}
	return nil
}
