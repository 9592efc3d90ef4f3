// Package altpath defines core types and configuration options for the
// alternating-path search engine over colored puzzle graphs.
//
// The engine finds a minimum-cost route between two rooms such that no
// two consecutively traversed pathways share a color. The true search
// vertex is not a room but the pair (room, color of the last pathway
// used); see altpath.go for the algorithm.
//
// Options:
//
//	– Start:            ID of the start room (required, must exist in the graph).
//	– Goal:             ID of the exit room (required, must exist in the graph).
//	– InitialColor:     pretend the walker arrived at the start via this color,
//	                    constraining the first move; ColorNone (default) leaves
//	                    the first move unconstrained.
//	– ExpandBudget:     optional cap on settled search states, guarding against
//	                    pathological inputs such as zero-cost cycles.
//
// Errors (sentinel):
//
//	– ErrEmptyStart     if the start room ID is empty.
//	– ErrEmptyGoal      if the goal room ID is empty.
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrRoomNotFound   if the start or goal room does not exist in the graph.
//	– ErrNegativeCost   if a negative pathway cost is detected in the graph.
//	– ErrBudgetExceeded if the expansion budget runs out before the search ends.
//	– ErrBadBudget      if ExpandBudget is set to a non-positive value.
package altpath

import (
	"errors"

	"github.com/katalvlaran/wallpath/core"
)

// Sentinel errors returned by the alternating-path engine.
var (
	// ErrEmptyStart indicates that the provided start room ID is empty.
	ErrEmptyStart = errors.New("altpath: start room ID is empty")

	// ErrEmptyGoal indicates that the provided goal room ID is empty.
	ErrEmptyGoal = errors.New("altpath: goal room ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Find.
	ErrNilGraph = errors.New("altpath: graph is nil")

	// ErrRoomNotFound indicates that the start or goal room does not exist
	// in the provided graph.
	ErrRoomNotFound = errors.New("altpath: room not found in graph")

	// ErrNegativeCost indicates that a negative pathway cost was detected.
	// core.AddPathway forbids these, so seeing this means the graph was
	// mutated outside its constructor.
	ErrNegativeCost = errors.New("altpath: negative pathway cost encountered")

	// ErrBudgetExceeded indicates the expansion budget ran out before the
	// search could conclude. The graph may be malformed (unbounded
	// zero-cost cycles) or the budget too small; retry with a larger one.
	ErrBudgetExceeded = errors.New("altpath: expansion budget exceeded")

	// ErrBadBudget indicates that ExpandBudget was set to zero or a
	// negative value, which is not a meaningful cap.
	ErrBadBudget = errors.New("altpath: expansion budget must be positive")
)

// Options configures the behavior of the alternating-path search.
//
// Start        – starting room ID (required).
// Goal         – exit room ID (required).
// InitialColor – color the walker "arrived by" before the first move.
//
//	ColorNone (default) means the first move is unconstrained.
//
// ExpandBudget – maximum number of settled search states; 0 (default)
//
//	means unlimited.
type Options struct {
	Start        string     // ID of the start room
	Goal         string     // ID of the exit room
	InitialColor core.Color // prior color of the start state (ColorNone = none)
	ExpandBudget int        // settled-state cap, 0 = unlimited
}

// Option represents a functional option for configuring Find.
type Option func(*Options)

// Start sets the starting room ID.
// Must be called to specify where the walk begins.
func Start(id string) Option {
	return func(o *Options) {
		o.Start = id
	}
}

// Goal sets the exit room ID.
// Must be called to specify which room ends the walk.
func Goal(id string) Option {
	return func(o *Options) {
		o.Goal = id
	}
}

// WithInitialColor constrains the first move as if the walker had already
// arrived at the start via the given color. Passing ColorNone restores
// the default unconstrained first move.
func WithInitialColor(c core.Color) Option {
	return func(o *Options) {
		o.InitialColor = c
	}
}

// WithExpandBudget caps the number of search states the engine may settle
// before giving up with ErrBudgetExceeded.
// Must pass a positive value; zero or negative cause a panic with
// ErrBadBudget (option constructors are the one place misuse cannot
// return an error).
func WithExpandBudget(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadBudget.Error())
		}
		o.ExpandBudget = n
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults for the given start and goal rooms. Use this as a starting
// point for further functional-option overrides.
//
// Defaults:
//   - InitialColor: ColorNone (first move unconstrained).
//   - ExpandBudget: 0 (unlimited).
func DefaultOptions(start, goal string) Options {
	return Options{
		Start:        start,
		Goal:         goal,
		InitialColor: core.ColorNone,
		ExpandBudget: 0,
	}
}

// Step records a single traversal of the returned route: the pathway
// taken and the room it arrived at.
type Step struct {
	// Pathway is the corridor traversed; treat as read-only.
	Pathway *core.Pathway

	// Room is the room this step arrived at.
	Room string
}

// Result holds the outcome of one alternating-path search.
//
// Found distinguishes the two normal outcomes: a route exists (Found ==
// true, Rooms/Steps/Cost populated) or no alternating route exists
// (Found == false, everything else zero). "No path" is a first-class
// result, never an error — a puzzle graph may be disconnected under the
// alternation constraint even though it is connected as a plain graph.
type Result struct {
	// Found reports whether an alternating route exists.
	Found bool

	// Rooms is the visited room sequence, start through goal inclusive.
	// A start == goal search yields the single-element zero-length path.
	Rooms []string

	// Steps lists the traversed pathways; len(Steps) == len(Rooms)-1.
	Steps []Step

	// Cost is the total traversal cost of the route.
	Cost int64

	// Expanded counts the search states settled before termination,
	// reported for both successful and no-path outcomes.
	Expanded int
}

// Len returns the number of pathway traversals in the route
// (0 for the zero-length path and for no-path results).
func (r *Result) Len() int { return len(r.Steps) }
