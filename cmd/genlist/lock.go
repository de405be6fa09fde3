/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package main

import (
	"errors"
	"fmt"

	"github.com/juju/fslock"
)

// acquireLock takes the installer's single-instance lock without
// blocking. The caller must Unlock the returned lock.
func acquireLock(lockPath string) (*fslock.Lock, error) {
	lock := fslock.New(lockPath)
	err := lock.TryLock()
	if err != nil {
		if errors.Is(err, fslock.ErrLocked) {
			return nil, fmt.Errorf("%w (%v)", ErrAlreadyRunning, lockPath)
		}
		return nil, fmt.Errorf("Could not lock %v: %w", lockPath, err)
	}

	return lock, nil
}
