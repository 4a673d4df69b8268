package pkg

import (
	"errors"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

var (
	ErrNoParentDir     = errors.New("parent directory does not exist")
	ErrDirNotWritable  = errors.New("no write permission on directory")
	ErrFileNotWritable = errors.New("no write permission on file")
)

// CheckWritable verifies that path could be opened for writing without
// touching the filesystem: the parent directory must exist and be
// writable, and the target itself must be writable if it already
// exists.
func CheckWritable(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ErrNoParentDir
	}
	if unix.Access(dir, unix.W_OK) != nil {
		return ErrDirNotWritable
	}
	_, err = os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if unix.Access(path, unix.W_OK) != nil {
		return ErrFileNotWritable
	}
	return nil
}
