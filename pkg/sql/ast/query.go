package ast

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Query is the closed sum over every parseable statement kind. Exactly the
// twenty statement types in this package implement it; the unexported marker
// method keeps the set closed. A Query value is immutable once built and is
// always fully one variant.
//
// QueryType returns the fixed classification keyword for the variant, e.g.
// "SELECT" or "CREATE TABLE". Select and compound select both classify as
// "SELECT": a compound select is a syntactic refinement, not a separate
// category. String returns the canonical rendering.
type Query interface {
	QueryType() string
	String() string
	isQuery()
}

// Equal reports structural equality of two queries: same active variant and
// equal wrapped statement. Consumers that deduplicate or cache parsed
// queries rely on Equal and Hash agreeing.
func Equal(a, b Query) bool {
	return reflect.DeepEqual(a, b)
}

// Hash returns a stable hash of the query. It hashes the variant tag
// together with the canonical rendering; since rendering is deterministic,
// structurally equal queries hash identically even when parsed from
// different dialects.
func Hash(q Query) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(q.QueryType())
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(q.String())
	return h.Sum64()
}
