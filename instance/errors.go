package instance

import "errors"

// Validation and parsing sentinels. Parse and Validate wrap them with
// positional detail; callers test with errors.Is.
var (
	ErrNodeCount = errors.New("instance: n must be positive")
	ErrBound     = errors.New("instance: k must be non-negative")
	ErrEdgeRange = errors.New("instance: edge endpoint out of range")
	ErrSelfLoop  = errors.New("instance: self-loops are not allowed")
	ErrCNFInput  = errors.New("instance: input is a CNF formula, not a graph")
	ErrEmpty     = errors.New("instance: no content")
)
