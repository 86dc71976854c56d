package tonecodec

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// ErrFileInUse is wrapped by ErrUnreadable when another process holds the
// file open or locked.
var ErrFileInUse = errors.New("file already in use")

// readLocked reads the whole file while holding an exclusive lock on it.
// There is no retry: a lock conflict fails at once. The handle is closed on
// every path.
func readLocked(path string) ([]byte, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		if isInUse(err) {
			err = ErrFileInUse
		}
		return nil, &UnreadableError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	if err := lockFile(f); err != nil {
		return nil, &UnreadableError{Path: path, Err: err}
	}
	defer func() { _ = unlockFile(f) }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &UnreadableError{Path: path, Err: err}
	}
	return data, nil
}
