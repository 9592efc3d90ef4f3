// Package altpath provides a precise, deterministic implementation of
// minimum-cost alternating-path search for "The Wall" puzzle: find the
// cheapest route between two rooms such that no two consecutively
// traversed pathways share a color.
//
// Overview:
//
//   - The alternation constraint is naturally a piece of "last color"
//     context threaded through a traversal. Rather than mutating shared
//     state per visit, the state space is reified as (room, lastColor)
//     pairs, so the engine itself stays free of hidden history — the one
//     abstraction that makes the search both correct and trivially
//     parallelizable across independent queries.
//   - A uniform-cost (Dijkstra-style) search over this product space
//     settles each state at most once and stops the moment any state in
//     the goal room settles, whatever color it arrived by.
//   - Frontier ties break by insertion order, so results are reproducible.
//
// Key behaviors:
//
//   - A room reachable only via same-colored consecutive pathways is
//     unreachable here even though the plain graph is connected. That is
//     intended puzzle semantics, not a bug, and it surfaces as the
//     first-class no-path result (Result.Found == false, nil error).
//   - Self-loop pathways are legal transitions: they burn an alternation
//     slot without changing room and are considered like any other move.
//   - Parallel pathways between the same rooms are tried independently;
//     when duplicates share a color, relaxation keeps the cheaper one.
//   - The very first move is unconstrained unless WithInitialColor says
//     otherwise.
//   - WithExpandBudget guards against pathological inputs (for example
//     zero-cost cycles): running out surfaces ErrBudgetExceeded, a
//     distinct outcome from "no path".
//
// Error handling (sentinel errors):
//
//   - ErrEmptyStart / ErrEmptyGoal:
//     Returned when the corresponding room ID option is missing.
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph to Find.
//   - ErrRoomNotFound:
//     Returned if the start or goal room does not exist in the graph.
//   - ErrNegativeCost:
//     Returned if any pathway carries a negative cost (fast O(E) pre-scan).
//   - ErrBudgetExceeded:
//     Returned when a configured expansion budget runs out; recoverable by
//     retrying with a larger budget.
//   - ErrBadBudget:
//     Raised (via panic) if you set ExpandBudget to zero or negative.
//
// API reference:
//
//	func Find(g *core.Graph, opts ...Option) (*Result, error)
//
//	  - g:    pointer to a built core.Graph, borrowed read-only.
//	  - opts: functional options, including:
//	      • Start(string):            required, the start room ID.
//	      • Goal(string):             required, the exit room ID.
//	      • WithInitialColor(Color):  constrain the first move (default: none).
//	      • WithExpandBudget(int):    settled-state cap (default: unlimited).
//	  - The Result distinguishes Found routes from the first-class no-path
//	    outcome; errors are reserved for invalid input and budget aborts.
//
// Thread safety:
//
//   - Find is a pure function of its inputs with no package-level state.
//   - A built Graph is never mutated by the engine, so independent
//     searches may run concurrently over the same instance.
//
// See also:
//
//   - core.Graph: room/pathway construction and the Neighbors query.
//   - puzzle: the plain-text puzzle format and solution rendering.
package altpath
