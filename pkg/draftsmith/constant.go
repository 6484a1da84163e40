package draftsmith

import "time"

const (
	// DefaultBaseURL is the default Draftsmith API endpoint
	DefaultBaseURL = "http://localhost:37240"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// DefaultHierarchyType is the hierarchy type used when attaching a note
	// to a parent without specifying one
	DefaultHierarchyType = "block"
)
