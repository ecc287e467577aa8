//go:build !unix

package lock

import "os"

// Advisory locking is unavailable; the daemon runs unguarded.
func tryLockExclusiveNonBlocking(_ *os.File) (bool, error) {
	return true, nil
}

func unlockAndClose(f *os.File) error {
	if f == nil {
		return nil
	}
	return f.Close()
}
