package list

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

// LockTimeout is the timeout for acquiring a list file lock.
const LockTimeout = 2 * time.Second

// WithLock runs handler while holding an exclusive lock on path.
// The lock lives in a sibling "<path>.lock" file, never in the list
// file itself, so atomic renames of the list do not drop it.
func WithLock(path string, handler func() error) error {
	lock, lockErr := acquireLock(path+".lock", LockTimeout)
	if lockErr != nil {
		return fmt.Errorf("acquiring lock: %w", lockErr)
	}

	defer lock.release()

	return handler()
}

type fileLock struct {
	path string
	file *os.File
}

// release removes the lock file while still holding the lock, then
// unlocks and closes.
func (l *fileLock) release() {
	if l.file == nil {
		return
	}

	_ = os.Remove(l.path)
	_ = unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	_ = l.file.Close()
	l.file = nil
}

// acquireLock polls for an exclusive flock on lockPath until timeout.
// After locking it checks the path still names the same inode: a holder
// may have removed the file while we waited, in which case we retry on a
// fresh one.
func acquireLock(lockPath string, timeout time.Duration) (*fileLock, error) {
	deadline := time.Now().Add(timeout)

	for {
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s", errLockTimeout, lockPath)
		}

		mkdirErr := os.MkdirAll(filepath.Dir(lockPath), dirPerms)
		if mkdirErr != nil {
			return nil, fmt.Errorf("creating lock dir: %w", mkdirErr)
		}

		file, openErr := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, filePerms)
		if openErr != nil {
			return nil, fmt.Errorf("%w: %w", errLockFileOpen, openErr)
		}

		fd := int(file.Fd())

		var openStat unix.Stat_t

		statErr := unix.Fstat(fd, &openStat)
		if statErr != nil {
			_ = file.Close()

			return nil, fmt.Errorf("fstat lock file: %w", statErr)
		}

		flockErr := unix.Flock(fd, unix.LOCK_EX|unix.LOCK_NB)
		if flockErr != nil {
			_ = file.Close()

			if !errors.Is(flockErr, unix.EWOULDBLOCK) {
				return nil, fmt.Errorf("flock: %w", flockErr)
			}

			time.Sleep(lockPollInterval)

			continue
		}

		var pathStat unix.Stat_t

		pathErr := unix.Stat(lockPath, &pathStat)
		if pathErr != nil || pathStat.Ino != openStat.Ino {
			_ = unix.Flock(fd, unix.LOCK_UN)
			_ = file.Close()

			continue
		}

		return &fileLock{path: lockPath, file: file}, nil
	}
}

const lockPollInterval = 10 * time.Millisecond
