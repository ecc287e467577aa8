// Package lock keeps a single daemon per data directory.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const lockDirPerm = 0o755

// ErrHeld is returned when another process owns the lock.
var ErrHeld = errors.New("lock is held by another process")

// File is an exclusive advisory lock on a path.
type File struct {
	path string
	f    *os.File
}

// Acquire takes the lock without blocking and records the current pid.
func Acquire(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), lockDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	ok, err := tryLockExclusiveNonBlocking(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !ok {
		pid := readPID(f)
		_ = f.Close()
		if pid > 0 {
			return nil, fmt.Errorf("%w (pid %d)", ErrHeld, pid)
		}
		return nil, ErrHeld
	}

	if err := f.Truncate(0); err == nil {
		_, _ = f.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	}

	return &File{path: path, f: f}, nil
}

// Path returns the lock file path.
func (l *File) Path() string {
	return l.path
}

// Release drops the lock and removes the file.
func (l *File) Release() error {
	if l == nil || l.f == nil {
		return nil
	}
	_ = os.Remove(l.path)
	err := unlockAndClose(l.f)
	l.f = nil
	return err
}

func readPID(f *os.File) int {
	buf := make([]byte, 32)
	n, _ := f.ReadAt(buf, 0)
	pid, err := strconv.Atoi(strings.TrimSpace(string(buf[:n])))
	if err != nil {
		return 0
	}
	return pid
}
