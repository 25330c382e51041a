// Package storage wraps the remote document store. The backing server is a
// plain FTP host with one directory per employee; implementations must open a
// fresh session per call and close it before returning, so a failed call can
// never leave a stale session behind for the next one.
package storage

import (
	"context"
	"io"
)

// Store is the minimal primitive surface the document workflows need.
type Store interface {
	// EnsureDir creates path (and missing parents) if absent. Idempotent.
	EnsureDir(ctx context.Context, path string) error
	// ListFiles returns the names of files (not directories) directly under
	// path. A failed listing yields an empty slice, not an error: callers
	// must treat "empty" as "no files or transient failure".
	ListFiles(ctx context.Context, path string) ([]string, error)
	// Upload streams r to path, overwriting any existing file.
	Upload(ctx context.Context, path string, r io.Reader) error
	// Delete removes the file at path. Failure propagates.
	Delete(ctx context.Context, path string) error
}

// Paths builds store paths from the configured base directory.
type Paths struct {
	BaseDir string
}

// EmployeeFolder is the per-employee directory, e.g. "/uploads/emp123".
func (p Paths) EmployeeFolder(employeeID string) string {
	return "/" + p.BaseDir + "/" + employeeID
}

// EmployeeFilePath is the full path of one stored document.
func (p Paths) EmployeeFilePath(employeeID, filename string) string {
	return p.EmployeeFolder(employeeID) + "/" + filename
}
