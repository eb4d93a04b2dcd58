// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strings"

	"github.com/pdiddy/sourcebook/pkg/types"
)

// blockSeparator puts one blank line between page blocks.
const blockSeparator = "\n\n"

// Assemble joins the non-empty pages into "--- Page N ---" blocks in the
// order given. Pages keep their own numbers, so skipped pages leave gaps.
// It returns "" when no page has text.
func Assemble(pages []types.PageText) string {
	var b strings.Builder
	for _, p := range pages {
		if p.Text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(blockSeparator)
		}
		fmt.Fprintf(&b, "--- Page %d ---\n", p.Number)
		b.WriteString(p.Text)
	}
	return b.String()
}

// CountBlocks returns how many pages Assemble would emit a block for.
func CountBlocks(pages []types.PageText) int {
	n := 0
	for _, p := range pages {
		if p.Text != "" {
			n++
		}
	}
	return n
}
