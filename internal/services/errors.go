package services

import "errors"

var (
	// ErrTransientCapacity marks rate or quota exhaustion; RemoteInvoker retries it.
	ErrTransientCapacity = errors.New("model capacity exhausted")
	ErrRemoteFailure     = errors.New("model call failed")
)
