package brand

import (
	"errors"
	"fmt"
)

var errNotObject = errors.New("manifest is not a JSON object")

// ManifestReadError means the manifest file could not be opened or read.
type ManifestReadError struct {
	Path string
	Err  error
}

func (e *ManifestReadError) Error() string {
	return fmt.Sprintf("read manifest %q: %v", e.Path, e.Err)
}

func (e *ManifestReadError) Unwrap() error { return e.Err }

// ManifestParseError means the manifest is not a JSON object.
type ManifestParseError struct {
	Path string
	Err  error
}

func (e *ManifestParseError) Error() string {
	return fmt.Sprintf("parse manifest %q: %v", e.Path, e.Err)
}

func (e *ManifestParseError) Unwrap() error { return e.Err }

// FilesystemError wraps failures while inspecting the site directory.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
