package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	diffDelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).
			Strikethrough(true)
	diffAddStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).
			Underline(true)
)

// RenderInlineDiff renders a character-level diff of the input against the
// polished output, with deletions struck through and insertions underlined.
// Equal runs pass through unstyled.
func RenderInlineDiff(before, after string) string {
	if before == after {
		return after
	}

	d := dmp.New()
	diffs := d.DiffMain(before, after, false)
	d.DiffCleanupSemantic(diffs)

	var sb strings.Builder
	for _, df := range diffs {
		switch df.Type {
		case dmp.DiffDelete:
			sb.WriteString(diffDelStyle.Render(df.Text))
		case dmp.DiffInsert:
			sb.WriteString(diffAddStyle.Render(df.Text))
		case dmp.DiffEqual:
			sb.WriteString(df.Text)
		}
	}
	return sb.String()
}

// ChangedRuneCount returns how many runes the diff touches, used for the
// "n changes" hint next to the summary line.
func ChangedRuneCount(before, after string) int {
	if before == after {
		return 0
	}

	d := dmp.New()
	diffs := d.DiffMain(before, after, false)
	d.DiffCleanupSemantic(diffs)

	changed := 0
	for _, df := range diffs {
		if df.Type != dmp.DiffEqual {
			changed += len([]rune(df.Text))
		}
	}
	return changed
}
