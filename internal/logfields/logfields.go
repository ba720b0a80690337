package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyPath       = "path"
	KeyDirectory  = "directory"
	KeyArchive    = "archive"
	KeyEntries    = "entries"
	KeyBytes      = "bytes"
	KeyMethod     = "method"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Directory(d string) slog.Attr    { return slog.String(KeyDirectory, d) }
func Archive(a string) slog.Attr      { return slog.String(KeyArchive, a) }
func Entries(n int) slog.Attr         { return slog.Int(KeyEntries, n) }
func Bytes(n int64) slog.Attr         { return slog.Int64(KeyBytes, n) }
func Method(m string) slog.Attr       { return slog.String(KeyMethod, m) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
