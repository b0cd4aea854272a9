package utils

import (
	"sync"
)

// OptionalMutex is a sync.Mutex that only locks when UseMutex is set. Owners that are
// externally synchronized leave it unset and skip the locking cost entirely.
type OptionalMutex struct {
	Mutex    sync.Mutex
	UseMutex bool
}

// Lock locks the mutex if UseMutex is set
func (m *OptionalMutex) Lock() {
	if m.UseMutex {
		m.Mutex.Lock()
	}
}

// Unlock unlocks the mutex if UseMutex is set
func (m *OptionalMutex) Unlock() {
	if m.UseMutex {
		m.Mutex.Unlock()
	}
}
