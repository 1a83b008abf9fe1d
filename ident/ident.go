// Package ident generates the unique identifiers that core.Graph stores
// nodes and edges under.
//
// The graph store treats identifiers as opaque comparable strings; it never
// inspects or derives meaning from them. This package supplies two ready
// generators:
//
//   - UUID       — random version-4 UUIDs, collision-safe for any realistic
//     graph size. The default for production callers.
//   - Sequential — "prefix-1", "prefix-2", … from an atomic counter, for
//     tests and demos where identifiers should be readable and
//     reproducible.
//
// Both are safe for concurrent use. Callers with their own identifier
// scheme implement Provider directly; registration in core fails loudly on
// collision either way.
package ident

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Provider hands out one unique identifier per call.
type Provider interface {
	// NewID returns an identifier never returned before by this Provider.
	NewID() string
}

// UUID generates random version-4 UUID strings.
//
// The zero value is ready to use.
type UUID struct{}

// NewID returns a fresh version-4 UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequential generates readable identifiers "prefix-1", "prefix-2", …
// backed by an atomic counter.
type Sequential struct {
	prefix string
	n      atomic.Uint64
}

// NewSequential returns a Sequential provider with the given prefix.
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// NewID returns the next identifier in the sequence.
func (s *Sequential) NewID() string {
	return s.prefix + "-" + strconv.FormatUint(s.n.Add(1), 10)
}
