package entity

import "errors"

// Lookup sentinels shared by repositories and usecases.
var (
	ErrNodeNotFound     = errors.New("node not found")
	ErrCatalogNotFound  = errors.New("catalog not found")
	ErrPollerNotFound   = errors.New("poller not found")
	ErrObmNotFound      = errors.New("obm not found")
	ErrWorkflowNotFound = errors.New("workflow not found")
)
