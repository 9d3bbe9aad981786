package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("another instance is already running")

// InstanceGuard holds the single-instance lock for the lifetime of the
// process. The lock is a listener bound to a localhost port derived from the
// application name, so a crashed process releases it automatically.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance takes the process-wide lock for appName. A second
// launch fails with ErrAlreadyRunning, which keeps the app to one window and
// one countdown.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", lockPort(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// lockPort maps the application name onto a stable port in a private range.
func lockPort(appName string) int {
	const (
		minPort = 40000
		maxPort = 52767
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	return minPort + int(hash.Sum32()%uint32(maxPort-minPort+1))
}
