// Graph mutation and query methods.
//
// Construction is strict: AddRoom rejects duplicates, AddPathway rejects
// dangling endpoints, invalid colors and negative costs. Once built, the
// Graph exposes only read queries; Neighbors is the single query the
// search engine depends on.

package core

import (
	"fmt"
	"sort"
)

// AddRoom declares a new room with the given ID.
//
// Returns ErrEmptyRoomID for the empty string and ErrDuplicateRoom if the
// ID was already declared.
// Complexity: O(1)
func (g *Graph) AddRoom(id string) error {
	if id == "" {
		return ErrEmptyRoomID
	}
	if _, exists := g.rooms[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRoom, id)
	}
	g.rooms[id] = struct{}{}

	return nil
}

// AddPathway connects two declared rooms with a colored pathway and
// returns the generated pathway ID.
//
// Validation order:
//  1. both endpoints must exist (ErrRoomNotFound),
//  2. color must be Blue or Red (ErrBadColor),
//  3. cost (DefaultCost unless overridden via WithCost) must be ≥ 0.
//
// Parallel pathways between the same rooms and self-loops are always
// permitted; a self-loop burns an alternation slot without changing room
// and is stored once in its room's adjacency list.
// Complexity: O(1) amortized.
func (g *Graph) AddPathway(from, to string, color Color, opts ...PathwayOption) (string, error) {
	if _, ok := g.rooms[from]; !ok {
		return "", fmt.Errorf("%w: %q", ErrRoomNotFound, from)
	}
	if _, ok := g.rooms[to]; !ok {
		return "", fmt.Errorf("%w: %q", ErrRoomNotFound, to)
	}
	if !color.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrBadColor, color)
	}

	g.nextPathwayID++
	p := &Pathway{
		ID:    fmt.Sprintf("p%d", g.nextPathwayID),
		From:  from,
		To:    to,
		Color: color,
		Cost:  DefaultCost,
	}
	for _, opt := range opts {
		opt(p)
	}
	// WithCost panics on negative input, but guard the invariant anyway in
	// case a caller mutates a PathwayOption of its own.
	if p.Cost < 0 {
		return "", fmt.Errorf("%w: %s→%s cost=%d", ErrNegativeCost, from, to, p.Cost)
	}

	g.pathways[p.ID] = p
	g.adjacency[from] = append(g.adjacency[from], p.ID)
	if !g.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], p.ID)
	}

	return p.ID, nil
}

// Build constructs a Graph from a room list and a pathway list in one
// shot, failing on the first invalid entry.
//
// This is the batch form of AddRoom/AddPathway: duplicate room IDs yield
// ErrDuplicateRoom, pathways referencing undeclared rooms yield
// ErrRoomNotFound, and invalid colors yield ErrBadColor. A spec Cost of 0
// means DefaultCost (see PathwaySpec).
// Complexity: O(R + P) for R rooms and P pathways.
func Build(rooms []string, pathways []PathwaySpec, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for _, id := range rooms {
		if err := g.AddRoom(id); err != nil {
			return nil, err
		}
	}
	var cost int64
	for _, spec := range pathways {
		cost = spec.Cost
		if cost == 0 {
			cost = DefaultCost
		}
		if _, err := g.AddPathway(spec.From, spec.To, spec.Color, WithCost(cost)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Directed reports whether pathways are one-way corridors.
func (g *Graph) Directed() bool { return g.directed }

// HasRoom reports whether a room with the given ID exists.
// Complexity: O(1)
func (g *Graph) HasRoom(id string) bool {
	_, ok := g.rooms[id]

	return ok
}

// RoomCount returns the number of declared rooms.
func (g *Graph) RoomCount() int { return len(g.rooms) }

// PathwayCount returns the number of declared pathways.
func (g *Graph) PathwayCount() int { return len(g.pathways) }

// Rooms returns all room IDs in sorted order for deterministic iteration.
// Complexity: O(R log R)
func (g *Graph) Rooms() []string {
	ids := make([]string, 0, len(g.rooms))
	for id := range g.rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Pathways returns every pathway, sorted by ID for deterministic iteration.
// The returned pointers reference the Graph's own pathways; treat them as
// read-only.
// Complexity: O(P log P)
func (g *Graph) Pathways() []*Pathway {
	ps := make([]*Pathway, 0, len(g.pathways))
	for _, p := range g.pathways {
		ps = append(ps, p)
	}
	sort.Slice(ps, func(i, j int) bool { return less(ps[i].ID, ps[j].ID) })

	return ps
}

// PathwayByID returns the pathway with the given ID, or ErrPathwayNotFound.
// Complexity: O(1)
func (g *Graph) PathwayByID(id string) (*Pathway, error) {
	p, ok := g.pathways[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPathwayNotFound, id)
	}

	return p, nil
}

// Neighbors returns every pathway incident to room, in declaration order.
//
// If excluding is Blue or Red, only pathways of the other color are
// returned; passing ColorNone disables the filter (every incident pathway
// qualifies). This is exactly the query an alternation-constrained search
// needs: "all moves out of room not repeating the color I arrived by".
//
// In an undirected Graph a pathway is incident to both of its endpoints;
// in a directed Graph only to its From room. Parallel pathways are
// returned individually — the caller, not the model, decides which of two
// same-colored duplicates is worth relaxing.
//
// Returns ErrRoomNotFound if room is not declared. The returned pointers
// reference the Graph's own pathways; treat them as read-only.
// Complexity: O(deg(room))
func (g *Graph) Neighbors(room string, excluding Color) ([]*Pathway, error) {
	if _, ok := g.rooms[room]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrRoomNotFound, room)
	}

	incident := g.adjacency[room]
	out := make([]*Pathway, 0, len(incident))
	var p *Pathway
	for _, id := range incident {
		p = g.pathways[id]
		if excluding.Valid() && p.Color == excluding {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

// less orders generated pathway IDs ("p1", "p2", ...) numerically, so
// Pathways() lists them in creation order rather than lexicographic order
// (where "p10" would sort before "p2").
func less(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
