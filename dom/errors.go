package dom

import (
	"errors"

	"github.com/npillmayer/markup/attr"
)

// ErrValidation is flagged for invalid tags, invalid child types and
// dangerous attribute values. It is the same error as attr.ErrValidation.
var ErrValidation = attr.ErrValidation

// ErrDepthExceeded is flagged if a traversal descends deeper than its
// configured maximum depth. It signals a cyclic or pathologically deep tree.
var ErrDepthExceeded = errors.New("maximum depth exceeded")

// ErrOutOfRange is flagged for child indices outside of the list of children.
var ErrOutOfRange = errors.New("index out of range")

// ErrNotFound is flagged if raw content cannot be found by its loader.
var ErrNotFound = errors.New("content not found")

// ErrIO is flagged if raw content cannot be read by its loader.
var ErrIO = errors.New("content I/O error")

// DefaultMaxDepth is the default bound for recursive traversals.
const DefaultMaxDepth = 1000
