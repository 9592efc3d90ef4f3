// Package altpath implements minimum-cost alternating-path search on
// colored puzzle graphs.
//
// The search graph is not the puzzle graph itself but its product with
// color history: each search vertex is the pair (room, last color used to
// reach it). From state (r, c) a transition exists along every pathway
// incident to r whose color differs from c — any color when c is
// ColorNone, i.e. before the first move. A uniform-cost search over this
// product space yields the shortest route whose consecutive pathway
// colors strictly alternate.
//
// Complexity (V rooms, E pathways; the product space has ≤ 3V states):
//
//   - Time:  O((V + E) log V)
//   - Each state is settled at most once: O(V) extractions.
//   - Each relaxation may push a new entry: up to O(E) pushes.
//   - Each heap operation costs O(log N), N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps over states.
//   - O(E) worst-case heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Ties in the frontier break by insertion sequence, so repeated runs
//     on the same graph always return the identical route.
//   - We use a "lazy" decrease-key strategy: cheaper rediscoveries push
//     duplicates into the heap and stale entries are skipped on pop.
//   - The engine holds no package state and is safely re-entrant;
//     independent searches over one built Graph may run concurrently.
package altpath

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/wallpath/core"
)

// Find computes a minimum-cost alternating route from Options.Start to
// Options.Goal in the puzzle graph g. It accepts functional options to
// customize behavior (WithInitialColor, WithExpandBudget).
//
// Returns:
//
//   - res: the search outcome. res.Found == false (with nil error) is the
//     definitive "no alternating path exists" result.
//   - err: a sentinel error for invalid inputs, or ErrBudgetExceeded if a
//     configured expansion budget ran out before the search concluded.
//
// Preconditions and validation (in order):
//  1. Start must be non-empty (ErrEmptyStart).
//  2. Goal must be non-empty (ErrEmptyGoal).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Start and Goal (ErrRoomNotFound).
//  5. No pathway in g can have negative cost (ErrNegativeCost).
//
// Success is settling any state whose room equals Goal, whatever color it
// arrived by — the puzzle's objective is reaching the room. If Start
// equals Goal the zero-length path is returned immediately.
func Find(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options from defaults plus caller overrides.
	cfg := DefaultOptions("", "")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate Start and Goal are provided.
	if cfg.Start == "" {
		return nil, ErrEmptyStart
	}
	if cfg.Goal == "" {
		return nil, ErrEmptyGoal
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Validate both endpoints exist in the graph.
	if !g.HasRoom(cfg.Start) {
		return nil, fmt.Errorf("%w: start %q", ErrRoomNotFound, cfg.Start)
	}
	if !g.HasRoom(cfg.Goal) {
		return nil, fmt.Errorf("%w: goal %q", ErrRoomNotFound, cfg.Goal)
	}

	// 5) Pre-scan all pathways to detect negative costs. core.AddPathway
	//    already forbids them, so this fails fast only on graphs mutated
	//    outside their constructor.
	var p *core.Pathway
	for _, p = range g.Pathways() {
		if p.Cost < 0 {
			return nil, fmt.Errorf("%w: pathway %s %s→%s cost=%d", ErrNegativeCost, p.ID, p.From, p.To, p.Cost)
		}
	}

	// 6) Initialize the runner and execute the uniform-cost search.
	r := &runner{
		g:       g,
		opts:    cfg,
		dist:    make(map[searchState]int64),
		prev:    make(map[searchState]pred),
		visited: make(map[searchState]bool),
	}

	return r.run()
}

// searchState is the true search vertex: a room paired with the color of
// the last pathway used to reach it (ColorNone before any move).
// States are value types, compared field-wise, and never mutated.
type searchState struct {
	room string
	last core.Color
}

// pred records how a state was first cheaply reached: the predecessor
// state and the pathway traversed from it.
type pred struct {
	state searchState
	via   *core.Pathway
}

// runner holds the mutable state of a single Find execution.
type runner struct {
	g        *core.Graph           // the puzzle graph; read-only during the search
	opts     Options               // validated configuration
	dist     map[searchState]int64 // state → best known cost from the start state
	prev     map[searchState]pred  // state → predecessor link (absent for the start)
	visited  map[searchState]bool  // state → cost finalized
	pq       statePQ               // min-heap frontier, ordered by (cost, insertion seq)
	seq      uint64                // insertion sequence for deterministic tie-breaks
	expanded int                   // settled-state counter, checked against the budget
}

// run seeds the frontier with the start state and processes it until the
// goal room settles, the frontier drains, or the budget runs out.
func (r *runner) run() (*Result, error) {
	// Seed: the walker stands in the start room, having used InitialColor
	// (ColorNone unless the caller constrained the first move).
	startState := searchState{room: r.opts.Start, last: r.opts.InitialColor}
	r.dist[startState] = 0
	heap.Init(&r.pq)
	r.push(startState, 0)

	var item *stateItem
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest frontier entry.
		item = heap.Pop(&r.pq).(*stateItem)

		// 2) Skip stale entries for already-settled states (lazy decrease-key).
		if r.visited[item.state] {
			continue
		}

		// 3) Enforce the optional expansion budget before settling another
		//    state. A search that drains its frontier within budget still
		//    reports the honest no-path outcome, never a spurious abort.
		if r.opts.ExpandBudget > 0 && r.expanded >= r.opts.ExpandBudget {
			return nil, fmt.Errorf("%w: settled %d states", ErrBudgetExceeded, r.expanded)
		}

		// 4) Settle the state: its cost is now final.
		r.visited[item.state] = true
		r.expanded++

		// 5) Success the moment any state in the goal room settles; the
		//    arrival color is irrelevant to the puzzle's objective.
		if item.state.room == r.opts.Goal {
			return r.reconstruct(item.state), nil
		}

		// 6) Relax every legal move out of this state.
		if err := r.relax(item.state); err != nil {
			return nil, err
		}
	}

	// Frontier drained without settling the goal room: definitive no-path.
	return &Result{Found: false, Expanded: r.expanded}, nil
}

// relax examines every pathway usable from state and records any strictly
// cheaper route to the resulting successor states.
//
// Assumes r.dist[state] is finalized before the call.
func (r *runner) relax(state searchState) error {
	// The model's color filter is exactly the alternation rule: exclude
	// the arrival color, or nothing when last == ColorNone.
	neighbors, err := r.g.Neighbors(state.room, state.last)
	if err != nil {
		return fmt.Errorf("altpath: failed to get neighbors of %q: %w", state.room, err)
	}

	var (
		p       *core.Pathway
		next    searchState
		newDist int64
		best    int64
		known   bool
	)
	for _, p = range neighbors {
		// Directed pathways only leave their From room; in an undirected
		// graph the pathway is incident to both endpoints and OtherEnd
		// picks the far one (the room itself, for a self-loop).
		if r.g.Directed() && p.From != state.room {
			continue
		}
		next = searchState{room: p.OtherEnd(state.room), last: p.Color}

		newDist = r.dist[state] + p.Cost

		// Keep only strictly cheaper routes; "<" avoids duplicate pushes
		// on equal cost and preserves first-insertion determinism.
		best, known = r.dist[next]
		if known && newDist >= best {
			continue
		}

		r.dist[next] = newDist
		r.prev[next] = pred{state: state, via: p}
		r.push(next, newDist)
	}

	return nil
}

// push enqueues a frontier entry stamped with the next insertion sequence.
func (r *runner) push(s searchState, dist int64) {
	r.seq++
	heap.Push(&r.pq, &stateItem{state: s, dist: dist, seq: r.seq})
}

// reconstruct walks predecessor links backward from the settled goal
// state to the start state, reverses the sequence, and assembles the
// Result. Complexity: O(route length).
func (r *runner) reconstruct(goal searchState) *Result {
	// Collect steps in reverse, goal → start.
	steps := make([]Step, 0)
	var cur = goal
	var pd pred
	var ok bool
	for {
		pd, ok = r.prev[cur]
		if !ok {
			// The start state has no predecessor link.
			break
		}
		steps = append(steps, Step{Pathway: pd.via, Room: cur.room})
		cur = pd.state
	}
	// Reverse to get start → goal order.
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	rooms := make([]string, 0, len(steps)+1)
	rooms = append(rooms, r.opts.Start)
	for _, s := range steps {
		rooms = append(rooms, s.Room)
	}

	return &Result{
		Found:    true,
		Rooms:    rooms,
		Steps:    steps,
		Cost:     r.dist[goal],
		Expanded: r.expanded,
	}
}

// stateItem represents a search state and its cost from the start state,
// stamped with an insertion sequence number for deterministic ordering.
type stateItem struct {
	state searchState // product-space vertex
	dist  int64       // cost from the start state
	seq   uint64      // insertion order, the tie-breaker
}

// statePQ is a min-heap of *stateItem ordered by (dist, seq) ascending.
// Under lazy decrease-key, cheaper rediscoveries push fresh entries and
// outdated ones are ignored when popped (checked via runner.visited).
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by cost first, then by insertion sequence so that equal-cost
// entries pop in the order they were discovered.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; the result must be cast to *stateItem.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
