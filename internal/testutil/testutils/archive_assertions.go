package helpers

import (
	"archive/zip"
	"io"
	"testing"
)

// ReadZip opens a zip archive with the standard library reader and returns
// its entries by name, failing the test on any error. The second result keeps
// the stored order.
func ReadZip(t *testing.T, path string) (map[string]string, []string) {
	t.Helper()

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open archive %s: %v", path, err)
	}
	defer func() {
		_ = zr.Close()
	}()

	contents := make(map[string]string, len(zr.File))
	order := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("read entry %s: %v", f.Name, err)
		}
		if _, dup := contents[f.Name]; dup {
			t.Errorf("duplicate archive entry %s", f.Name)
		}
		contents[f.Name] = string(data)
		order = append(order, f.Name)
	}
	return contents, order
}
