package setdex

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"setdex/internal/fileutil"
)

// LockFileName is the advisory lock guarding an output directory.
const LockFileName = ".setdex.lock"

// ErrOutputLocked is returned when another run holds the output directory.
var ErrOutputLocked = errors.New("another setdex run is writing to the output directory")

// OutputLock is an advisory lock on an output directory.
type OutputLock struct {
	lock *flock.Flock
}

// LockOutput takes the advisory lock of dir without blocking.
func LockOutput(dir string) (*OutputLock, error) {
	if err := fileutil.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	lock := flock.New(filepath.Join(dir, LockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrOutputLocked
	}
	return &OutputLock{lock: lock}, nil
}

// Unlock releases the lock. It is safe to call on a nil lock.
func (l *OutputLock) Unlock() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}

// WriteFile renders s under the global name and atomically replaces path.
func WriteFile(path, name string, s *Setdex) error {
	if err := fileutil.WriteFileAtomic(path, []byte(Render(name, s)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
