// Package wallpath solves "The Wall" puzzle: given rooms connected by
// colored pathways, find the shortest route from a start room to an exit
// room such that no two consecutively traversed pathways share a color.
//
// 🚀 What is wallpath?
//
//	A small, focused library that brings together:
//		• core    — an immutable colored multigraph of rooms and pathways
//		• altpath — shortest alternating-path search over (room, last color) states
//		• puzzle  — the plain-text puzzle format and solution rendering
//		• cmd/wallpath — a CLI that reads a puzzle file and prints the route
//
// ✨ Why choose wallpath?
//
//   - Minimal API – two operations: build a graph, find a path
//   - Deterministic – identical inputs always produce the identical route
//   - Pure Go core – no cgo, no hidden state, safely re-entrant
//   - Honest outcomes – "no path" is a first-class result, not an error
//
// Quick ASCII example:
//
//	    A──blue──B
//	    │        │
//	   red      red
//	    │        │
//	    C──blue──T
//
//	Both A→C (red) then C→T (blue) and the longer A→B→C→T alternate
//	colors correctly; the engine returns the cheaper two-step route,
//	and always the same one for the same input.
//
// Dive into the package docs of core and altpath for full examples.
//
//	go get github.com/katalvlaran/wallpath
package wallpath
