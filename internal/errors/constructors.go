package errors

// Convenience functions for common error patterns

// Asset validation errors

func InvalidAssetPath(path, reason string) *ViewpackError {
	return New(CategoryValidation, SeverityFatal, "invalid asset path").
		WithContext("path", path).
		WithContext("reason", reason)
}

func InvalidAssetContent(path, reason string) *ViewpackError {
	return New(CategoryValidation, SeverityFatal, "invalid asset content").
		WithContext("path", path).
		WithContext("reason", reason)
}

// Filesystem errors

func DirectoryCreateFailed(dir string, cause error) *ViewpackError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "directory creation failed").
		WithContext("directory", dir)
}

func AssetWriteFailed(path string, cause error) *ViewpackError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "asset write failed").
		WithContext("path", path)
}

// Archive errors

func ArchiveFailed(archive, entry string, cause error) *ViewpackError {
	err := Wrap(cause, CategoryArchive, SeverityFatal, "archive packaging failed").
		WithContext("archive", archive)
	if entry != "" {
		err.WithContext("entry", entry)
	}
	return err
}

// Internal errors

func InternalError(message string, cause error) *ViewpackError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
