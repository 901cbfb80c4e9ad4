package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"unicode/utf8"
)

// ErrInvalidEncoding is returned by ReadText for files that are not UTF-8.
var ErrInvalidEncoding = errors.New("file contents are not valid utf-8")

// ReadErrorKind classifies why a file could not be read
type ReadErrorKind int

const (
	ReadOther ReadErrorKind = iota
	ReadNotFound
	ReadPermissionDenied
	ReadInvalidEncoding
)

// ReadError is returned when a file cannot be read
type ReadError struct {
	Kind ReadErrorKind
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	switch e.Kind {
	case ReadNotFound:
		return "file not found"
	case ReadPermissionDenied:
		return "permission denied"
	case ReadInvalidEncoding:
		return ErrInvalidEncoding.Error()
	default:
		return e.Err.Error()
	}
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteErrorKind classifies why a file could not be written
type WriteErrorKind int

const (
	WriteOther WriteErrorKind = iota
	WriteDirectoryMissing
	WritePermissionDenied
)

// WriteError is returned when a file cannot be written
type WriteError struct {
	Kind WriteErrorKind
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	switch e.Kind {
	case WriteDirectoryMissing:
		return "directory does not exist"
	case WritePermissionDenied:
		return "permission denied"
	default:
		return e.Err.Error()
	}
}

func (e *WriteError) Unwrap() error { return e.Err }

// ReadDirErrorKind classifies why a directory could not be listed
type ReadDirErrorKind int

const (
	ReadDirOther ReadDirErrorKind = iota
	ReadDirMissing
	ReadDirPermissionDenied
)

// ReadDirError is returned when a directory cannot be listed
type ReadDirError struct {
	Kind ReadDirErrorKind
	Path string
	Err  error
}

func (e *ReadDirError) Error() string {
	switch e.Kind {
	case ReadDirMissing:
		return "directory does not exist"
	case ReadDirPermissionDenied:
		return "permission denied"
	default:
		return e.Err.Error()
	}
}

func (e *ReadDirError) Unwrap() error { return e.Err }

// ReadText reads a UTF-8 text file, classifying failures as *ReadError.
func ReadText(fsys FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", classifyRead(path, err)
	}
	if !utf8.Valid(data) {
		return "", &ReadError{Kind: ReadInvalidEncoding, Path: path, Err: ErrInvalidEncoding}
	}
	return string(data), nil
}

// WriteText writes contents to path with 0644 permissions. With createDirs
// the parent directory is created first.
func WriteText(fsys FS, path, contents string, createDirs bool) error {
	if createDirs {
		if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return classifyWrite(path, err)
		}
	}
	if err := fsys.WriteFile(path, []byte(contents), 0644); err != nil {
		return classifyWrite(path, err)
	}
	return nil
}

// ListDir returns the entries of dir, classifying failures as *ReadDirError.
func ListDir(fsys FS, dir string) ([]fs.DirEntry, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		e := &ReadDirError{Kind: ReadDirOther, Path: dir, Err: err}
		switch {
		case errors.Is(err, fs.ErrNotExist):
			e.Kind = ReadDirMissing
		case errors.Is(err, fs.ErrPermission):
			e.Kind = ReadDirPermissionDenied
		}
		return nil, e
	}
	return entries, nil
}

func classifyRead(path string, err error) *ReadError {
	e := &ReadError{Kind: ReadOther, Path: path, Err: err}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		e.Kind = ReadNotFound
	case errors.Is(err, fs.ErrPermission):
		e.Kind = ReadPermissionDenied
	}
	return e
}

func classifyWrite(path string, err error) *WriteError {
	e := &WriteError{Kind: WriteOther, Path: path, Err: err}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		e.Kind = WriteDirectoryMissing
	case errors.Is(err, fs.ErrPermission):
		e.Kind = WritePermissionDenied
	}
	return e
}

func parentDir(name string) string {
	dir := filepath.Dir(name)
	if dir == "." || dir == name {
		return ""
	}
	return dir
}
