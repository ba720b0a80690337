package materialize

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/flate"

	"git.home.luguber.info/inful/viewpack/internal/assets"
	vperrors "git.home.luguber.info/inful/viewpack/internal/errors"
	"git.home.luguber.info/inful/viewpack/internal/logfields"
)

// archiveEpoch is stamped on every entry so repeated runs produce identical bytes.
var archiveEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// ArchiveEntry is a single file read back from an archive.
type ArchiveEntry struct {
	Name    string
	Method  uint16
	Content []byte
}

// PackageArchive stores every entry's on-disk file in the archive, in entry
// order, and returns the archive path. Source files are not modified.
func (m *Materializer) PackageArchive(entries []assets.Entry) (string, error) {
	if err := validate(entries); err != nil {
		return "", err
	}
	archive, _, err := m.packageArchive(entries)
	return archive, err
}

// packageArchive assumes entries have been validated.
func (m *Materializer) packageArchive(entries []assets.Entry) (string, int64, error) {
	target := m.ArchivePath()
	// #nosec G304 -- archive path is root-relative and fixed by the caller.
	out, err := os.Create(target)
	if err != nil {
		return "", 0, vperrors.ArchiveFailed(target, "", err)
	}

	size, err := m.writeArchive(out, entries)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = vperrors.ArchiveFailed(target, "", closeErr)
	}
	if err != nil {
		if rmErr := os.Remove(target); rmErr != nil && !os.IsNotExist(rmErr) {
			m.logger.Warn("Failed to remove partial archive", logfields.Archive(target), logfields.Error(rmErr))
		}
		return "", 0, err
	}
	return target, size, nil
}

func (m *Materializer) writeArchive(out *os.File, entries []assets.Entry) (int64, error) {
	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, newDeflateWriter)

	for _, e := range entries {
		if err := m.addFile(zw, e.Path); err != nil {
			_ = zw.Close()
			return 0, err
		}
	}

	if err := zw.Close(); err != nil {
		return 0, vperrors.ArchiveFailed(out.Name(), "", err)
	}
	info, err := out.Stat()
	if err != nil {
		return 0, vperrors.ArchiveFailed(out.Name(), "", err)
	}
	return info.Size(), nil
}

func (m *Materializer) addFile(zw *zip.Writer, rel string) error {
	name, err := cleanRel(rel)
	if err != nil {
		return err
	}
	full, err := m.resolve(rel)
	if err != nil {
		return err
	}

	// #nosec G304 -- full is validated to stay under the root.
	src, err := os.Open(full)
	if err != nil {
		return vperrors.Wrap(err, vperrors.CategoryFileSystem, vperrors.SeverityFatal, "archive source unreadable").
			WithContext("path", rel)
	}
	defer func() {
		_ = src.Close()
	}()

	header := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: archiveEpoch,
	}
	header.SetMode(fileMode)

	w, err := zw.CreateHeader(header)
	if err != nil {
		return vperrors.ArchiveFailed(m.ArchivePath(), name, err)
	}
	n, err := io.Copy(w, src)
	if err != nil {
		return vperrors.ArchiveFailed(m.ArchivePath(), name, err)
	}

	m.logger.Debug("Archive entry added", logfields.Path(name), logfields.Bytes(n), logfields.Method("deflate"))
	return nil
}

func newDeflateWriter(w io.Writer) (io.WriteCloser, error) {
	fw, err := flate.NewWriter(w, flate.BestCompression)
	if err != nil {
		return nil, err
	}
	return fw, nil
}

func newDeflateReader(r io.Reader) io.ReadCloser {
	return flate.NewReader(r)
}

// ReadArchive returns the entries of the archive at path in stored order.
func ReadArchive(path string) ([]ArchiveEntry, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, vperrors.ArchiveFailed(path, "", err)
	}
	defer func() {
		_ = zr.Close()
	}()
	zr.RegisterDecompressor(zip.Deflate, newDeflateReader)

	entries := make([]ArchiveEntry, 0, len(zr.File))
	for _, f := range zr.File {
		content, err := readEntry(f)
		if err != nil {
			return nil, vperrors.ArchiveFailed(path, f.Name, err)
		}
		entries = append(entries, ArchiveEntry{
			Name:    f.Name,
			Method:  f.Method,
			Content: content,
		})
	}
	return entries, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open entry: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()
	return io.ReadAll(rc)
}
