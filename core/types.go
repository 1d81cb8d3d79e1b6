// Package core defines the central Graph, Node, and Edge types.
//
// This file declares Node, Edge, EdgeSpec, Graph, GraphOption, sentinel errors, and
// the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyNodeID     - node ID is the empty string.
//	ErrDuplicateNode   - a node with the same ID already exists.
//	ErrNodeNotFound    - requested node does not exist.
//	ErrBadWeight       - weight is NaN, ±Inf or negative.
//	ErrLoopNotAllowed  - self-link when loops are disabled.
//	ErrFrozen          - mutation after Freeze.
//	ErrNotFrozen       - read-only consumer received a graph still open for writes.
//	ErrGraphNil        - nil *Graph passed to a helper.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called twice for one ID.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadWeight indicates a NaN, infinite or negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-link was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrFrozen indicates a mutation on a frozen graph.
	ErrFrozen = errors.New("core: graph is frozen")

	// ErrNotFrozen indicates that a consumer requiring a stable graph got a mutable one.
	ErrNotFrozen = errors.New("core: graph is not frozen")

	// ErrGraphNil indicates a nil *Graph.
	ErrGraphNil = errors.New("core: graph is nil")
)

// DefaultEdgeWeight is the weight of one plain hyperlink.
const DefaultEdgeWeight = 1.0

// Node is a rankable page.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Title is shown to users and matched by search.
	Title string

	// Locator is where the node came from (URL, path); informational only.
	Locator string
}

// Edge is a directed, weighted link From→To.
type Edge struct {
	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Weight is the accumulated link strength (≥ 0, finite).
	Weight float64
}

// EdgeSpec is one link as a loader supplies it. A nil Weight means a plain
// hyperlink of DefaultEdgeWeight.
type EdgeSpec struct {
	From   string
	To     string
	Weight *float64
}

// Link returns the spec of a plain hyperlink from→to.
func Link(from, to string) EdgeSpec { return EdgeSpec{From: from, To: to} }

// WeightedLink returns the spec of a link from→to with an explicit weight.
func WeightedLink(from, to string, w float64) EdgeSpec {
	return EdgeSpec{From: from, To: to, Weight: &w}
}

func (e EdgeSpec) weight() float64 {
	if e.Weight == nil {
		return DefaultEdgeWeight
	}
	return *e.Weight
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithoutLoops rejects self-links with ErrLoopNotAllowed.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// WithLoops permits self-links (the default).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory link graph.
//
// mu guards every field below it. frozen only ever goes false→true.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool

	// Lifecycle
	frozen bool

	// Storage
	nodes map[string]*Node
	out   map[string]map[string]float64 // from → to → accumulated weight
	edges int                           // number of distinct (from,to) pairs
}

// NewGraph creates an empty, mutable Graph. Self-links are allowed by default.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		allowLoops: true,
		nodes:      make(map[string]*Node),
		out:        make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}
