// Package puzzle reads and renders the plain-text format of "The Wall"
// puzzle and turns it into a core.Graph for the altpath engine.
//
// Format: one line per room, starting with the room's name followed by
// its outgoing corridors as color:target pairs, separated by spaces.
//
//	a red:b blue:a
//	b blue:a
//
// Because each line lists a room's outgoing corridors, the parsed Graph
// is directed; a two-way corridor appears on both rooms' lines. Every
// room referenced as a target must have a line of its own, even if it
// declares no corridors — a bare name line is legal.
//
// Errors:
//
//	ErrBadSyntax        - a line does not match the format (wrapped with line number).
//	core.ErrBadColor    - a corridor names a color other than blue or red.
//	core.ErrDuplicateRoom - two lines declare the same room.
//	core.ErrRoomNotFound  - a corridor targets a room with no line of its own.
package puzzle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/wallpath/core"
)

// ErrBadSyntax indicates a puzzle line that does not match the
// "<room> <color>:<room> ..." format.
var ErrBadSyntax = errors.New("puzzle: malformed puzzle line")

// Parse reads the puzzle text from r and builds its directed Graph.
//
// Parsing runs in two passes: first every line-head room is declared,
// then corridors are added, so forward references between lines are fine
// while a target room with no line of its own fails with
// core.ErrRoomNotFound. Blank lines are skipped. All errors carry the
// 1-based line number of the offending line.
// Complexity: O(total corridors).
func Parse(r io.Reader) (*core.Graph, error) {
	type corridor struct {
		line  int
		from  string
		color core.Color
		to    string
	}

	g := core.NewGraph(core.WithDirected(true))
	corridors := make([]corridor, 0)

	// Pass 1: declare rooms, collect corridors.
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		room := fields[0]
		if err := g.AddRoom(room); err != nil {
			return nil, fmt.Errorf("puzzle: line %d: %w", lineNo, err)
		}
		for _, field := range fields[1:] {
			colorName, target, ok := strings.Cut(field, ":")
			if !ok || colorName == "" || target == "" {
				return nil, fmt.Errorf("%w %d: corridor %q is not <color>:<room>", ErrBadSyntax, lineNo, field)
			}
			color, err := core.ParseColor(colorName)
			if err != nil {
				return nil, fmt.Errorf("puzzle: line %d: %w", lineNo, err)
			}
			corridors = append(corridors, corridor{line: lineNo, from: room, color: color, to: target})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("puzzle: read failed: %w", err)
	}

	// Pass 2: wire corridors; dangling targets surface here.
	for _, c := range corridors {
		if _, err := g.AddPathway(c.from, c.to, c.color); err != nil {
			return nil, fmt.Errorf("puzzle: line %d: %w", c.line, err)
		}
	}

	return g, nil
}

// ParseString is Parse over an in-memory puzzle text.
func ParseString(s string) (*core.Graph, error) {
	return Parse(strings.NewReader(s))
}
