package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// DirName is the per-user store directory, relative to the home directory.
	DirName = ".events"

	// FileName is the store file inside DirName.
	FileName = "events.csv"
)

// DefaultPath returns the store location under home without checking it.
func DefaultPath(home string) string {
	return filepath.Join(home, DirName, FileName)
}

// ResolvePath returns the default store path under home after checking that
// both the directory and the file exist.
func ResolvePath(home string) (string, error) {
	if home == "" {
		return "", newPathError("", "unable to determine user home directory", nil)
	}
	path := DefaultPath(home)
	if err := VerifyPath(path); err != nil {
		return "", err
	}
	return path, nil
}

// UserPath resolves the default store path for the current user.
func UserPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", newPathError("", "unable to determine user home directory", err)
	}
	return ResolvePath(home)
}

// VerifyPath checks that path is an existing regular file in an existing
// directory. Missing locations are reported, never created.
func VerifyPath(path string) error {
	dir := filepath.Dir(path)

	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return newPathError(dir, dir+" directory does not exist, please create it", nil)
	case err != nil:
		return newPathError(dir, "cannot access "+dir, err)
	case !info.IsDir():
		return newPathError(dir, dir+" is not a directory", nil)
	}

	info, err = os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return newPathError(path, path+" file not found", nil)
	case err != nil:
		return newPathError(path, "cannot access "+path, err)
	case !info.Mode().IsRegular():
		return newPathError(path, path+" is not a regular file", nil)
	}

	return nil
}
