//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package tonecodec

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

func lockFile(f *os.File) error {
	err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if isInUse(err) {
		return ErrFileInUse
	}
	return err
}

func unlockFile(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}

func isInUse(err error) bool {
	return errors.Is(err, unix.EWOULDBLOCK)
}
