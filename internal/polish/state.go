package polish

import (
	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/gateway"
)

// EditorState is the full state owned by the Orchestrator. Values handed to
// callbacks and returned by Snapshot are copies; mutation happens only inside
// the orchestrator's own operations.
type EditorState struct {
	// InputText is the user's raw text
	InputText string

	// OutputText is the corrected text from the most recently applied
	// successful result for the current input
	OutputText string

	// ChangesSummary describes what the backend changed
	ChangesSummary string

	// IsLoading is true while a request is outstanding
	IsLoading bool

	// Mode is the active correction mode
	Mode gateway.Mode

	// Tone is the active tone rewrite, or ToneNone
	Tone gateway.Tone

	// Style is the style profile applied to AI rewrites
	Style gateway.Style

	// RealtimeEnabled causes corrections to run automatically, debounced,
	// as the user types
	RealtimeEnabled bool
}

// HasOutput reports whether a correction result is currently displayed.
func (s EditorState) HasOutput() bool {
	return s.OutputText != ""
}
