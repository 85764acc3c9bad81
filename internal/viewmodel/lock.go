package viewmodel

import "context"

// lock acquires the one-slot semaphore sem, giving up when ctx is done.
// Submits and sends hold it for the whole remote call so overlapping taps
// run one after another.
func lock(ctx context.Context, sem chan struct{}) bool {
	select {
	case sem <- struct{}{}:
		return true
	case <-ctx.Done():
		return false
	}
}

func unlock(sem chan struct{}) {
	<-sem
}
