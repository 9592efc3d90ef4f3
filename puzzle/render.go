package puzzle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wallpath/altpath"
)

// FormatSolution renders a found route one traversal per line:
//
//	a ==(red)=> b
//	b ==(blue)=> c
//
// Zero-length routes and no-path results render as the empty string; the
// caller decides how to announce those.
func FormatSolution(res *altpath.Result) string {
	if res == nil || !res.Found || len(res.Steps) == 0 {
		return ""
	}

	var sb strings.Builder
	from := res.Rooms[0]
	for _, step := range res.Steps {
		fmt.Fprintf(&sb, "%s ==(%s)=> %s\n", from, step.Pathway.Color, step.Room)
		from = step.Room
	}

	return sb.String()
}
