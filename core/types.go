// Package core defines the central Graph, Room, and Pathway types for
// "The Wall" puzzle: a colored multigraph of rooms connected by
// blue/red pathways.
//
// A Graph is built once (incrementally via AddRoom/AddPathway or in one
// shot via Build) and is read-only afterwards; the altpath search engine
// only ever borrows it through the Neighbors query.
//
// This file declares Color, Pathway, Graph, GraphOption, PathwayOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyRoomID  - room ID is the empty string.
//	ErrDuplicateRoom - room declared twice.
//	ErrRoomNotFound - a pathway references a room that does not exist.
//	ErrBadColor     - pathway color is not Blue or Red.
//	ErrNegativeCost - pathway cost is negative.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph construction and queries.
var (
	// ErrEmptyRoomID indicates that the provided room ID is empty.
	ErrEmptyRoomID = errors.New("core: room ID is empty")

	// ErrDuplicateRoom indicates that a room with the same ID already exists.
	ErrDuplicateRoom = errors.New("core: duplicate room ID")

	// ErrRoomNotFound indicates an operation referenced a non-existent room.
	ErrRoomNotFound = errors.New("core: room not found")

	// ErrPathwayNotFound indicates an operation referenced a non-existent pathway.
	ErrPathwayNotFound = errors.New("core: pathway not found")

	// ErrBadColor indicates a pathway color outside the closed {Blue, Red} set.
	ErrBadColor = errors.New("core: pathway color must be Blue or Red")

	// ErrNegativeCost indicates a negative pathway traversal cost.
	ErrNegativeCost = errors.New("core: pathway cost must be non-negative")
)

// Color is the closed two-valued pathway color enumeration.
//
// The zero value ColorNone is deliberately not a pathway color: it marks
// the absence of a prior color (the state before the first move of a
// search) and is rejected by AddPathway. Keeping the "no color" marker in
// the same type, but outside the valid set, prevents a third traversable
// color from ever entering the state space.
type Color uint8

const (
	// ColorNone marks "no prior color". Never valid on a Pathway.
	ColorNone Color = iota

	// Blue is one of the two pathway colors.
	Blue

	// Red is the other pathway color.
	Red
)

// Valid reports whether c is one of the two traversable pathway colors.
func (c Color) Valid() bool { return c == Blue || c == Red }

// Opposite returns the other traversable color.
// Opposite of ColorNone is ColorNone.
func (c Color) Opposite() Color {
	switch c {
	case Blue:
		return Red
	case Red:
		return Blue
	default:
		return ColorNone
	}
}

// String returns the lowercase color name used by the puzzle text format.
func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Red:
		return "red"
	default:
		return "none"
	}
}

// ParseColor maps a lowercase color name to its Color value.
// Unknown names yield ErrBadColor; there is no silent fallback value.
func ParseColor(s string) (Color, error) {
	switch s {
	case "blue":
		return Blue, nil
	case "red":
		return Red, nil
	default:
		return ColorNone, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
}

// Pathway represents a colored connection between two rooms.
//
// Each Pathway has a unique ID, endpoints From→To, a Color drawn from
// {Blue, Red}, and a non-negative traversal Cost. In an undirected Graph
// a Pathway is traversable in both directions; From/To then only record
// the order of declaration. Parallel pathways between the same rooms and
// self-loops (From == To) are always permitted.
type Pathway struct {
	// ID uniquely identifies this pathway within its Graph.
	ID string

	// From is the declared source room ID.
	From string

	// To is the declared destination room ID.
	To string

	// Color is the pathway color, always Blue or Red.
	Color Color

	// Cost is the non-negative traversal cost (DefaultCost unless overridden).
	Cost int64
}

// OtherEnd returns the endpoint of p opposite to room.
// For a self-loop both endpoints coincide and room itself is returned.
func (p *Pathway) OtherEnd(room string) string {
	if p.From == room {
		return p.To
	}

	return p.From
}

// DefaultCost is the traversal cost assigned to pathways added without
// an explicit WithCost option.
const DefaultCost int64 = 1

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether pathways are one-way corridors (true) or
// traversable in both directions (false, the default).
//
// The puzzle statement leaves directedness open, so it is a construction
// choice rather than hard-coded behavior.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// PathwayOption configures properties of individual pathways when added.
type PathwayOption func(*Pathway)

// WithCost overrides DefaultCost for this pathway.
// Must pass a non-negative value; negative values panic with ErrNegativeCost.
func WithCost(cost int64) PathwayOption {
	return func(p *Pathway) {
		if cost < 0 {
			// Panic to signal invalid configuration early, as option
			// constructors are the one place misuse cannot return an error.
			panic(ErrNegativeCost.Error())
		}
		p.Cost = cost
	}
}

// PathwaySpec describes one pathway for the batch Build constructor.
//
// Cost == 0 means "use DefaultCost"; to build zero-cost pathways use
// AddPathway with WithCost(0) explicitly.
type PathwaySpec struct {
	From  string
	To    string
	Color Color
	Cost  int64
}

// Graph is the in-memory colored multigraph of rooms and pathways.
//
// It is built single-threaded and never mutated during a search; a fully
// built Graph is therefore safe for any number of concurrent read-only
// searches. Parallel pathways and self-loops are always allowed.
type Graph struct {
	// directed reports whether pathways are one-way.
	directed bool

	// nextPathwayID numbers generated pathway IDs ("p1", "p2", ...).
	nextPathwayID uint64

	// rooms is the room ID set.
	rooms map[string]struct{}

	// pathways is the pathway catalog, ID → Pathway.
	pathways map[string]*Pathway

	// adjacency maps room ID → incident pathway IDs in insertion order.
	// Undirected pathways appear in both endpoints' lists (once for loops).
	adjacency map[string][]string
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		rooms:     make(map[string]struct{}),
		pathways:  make(map[string]*Pathway),
		adjacency: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
