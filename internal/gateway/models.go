package gateway

// Mode selects the backend correction profile for /correct.
type Mode string

const (
	ModeGrammar      Mode = "grammar"
	ModeProfessional Mode = "professional"
	ModeCasual       Mode = "casual"
)

// Modes lists all correction modes in display order.
var Modes = []Mode{ModeGrammar, ModeProfessional, ModeCasual}

// Valid reports whether the mode is one the backend accepts.
func (m Mode) Valid() bool {
	switch m {
	case ModeGrammar, ModeProfessional, ModeCasual:
		return true
	}
	return false
}

// Tone adjusts the emotional register of a rewrite.
type Tone string

const (
	// ToneNone means no tone rewrite is active.
	ToneNone Tone = ""

	ToneFriendly     Tone = "friendly"
	ToneProfessional Tone = "professional"
	ToneConfident    Tone = "confident"
	ToneCalm         Tone = "calm"
	ToneCaring       Tone = "caring"
	TonePersuasive   Tone = "persuasive"
)

// Tones lists all selectable tones in display order.
var Tones = []Tone{ToneFriendly, ToneProfessional, ToneConfident, ToneCalm, ToneCaring, TonePersuasive}

// Valid reports whether the tone is one the backend accepts.
func (t Tone) Valid() bool {
	switch t {
	case ToneFriendly, ToneProfessional, ToneConfident, ToneCalm, ToneCaring, TonePersuasive:
		return true
	}
	return false
}

// Style is a target audience/register preset influencing AI rewrites.
type Style string

const (
	StyleNeutral   Style = "neutral"
	StyleStudent   Style = "student"
	StyleCorporate Style = "corporate"
	StyleIELTS     Style = "ielts"
	StyleRomantic  Style = "romantic"
)

// Styles lists all style profiles in display order.
var Styles = []Style{StyleNeutral, StyleStudent, StyleCorporate, StyleIELTS, StyleRomantic}

// Valid reports whether the style is one the backend accepts.
func (s Style) Valid() bool {
	switch s {
	case StyleNeutral, StyleStudent, StyleCorporate, StyleIELTS, StyleRomantic:
		return true
	}
	return false
}

// Result is the normalized outcome of a correction operation. It is always
// usable: when a request fails, CorrectedText carries the original input
// unchanged and ChangesSummary explains what went wrong.
type Result struct {
	CorrectedText  string `json:"correctedText"`
	ChangesSummary string `json:"changesSummary"`
}

// Request payloads. Built fresh per call, never reused.

type correctRequest struct {
	Text string `json:"text"`
	Mode Mode   `json:"mode"`
}

type polishAIRequest struct {
	Text  string `json:"text"`
	Tone  Tone   `json:"tone,omitempty"`
	Style Style  `json:"style,omitempty"`
}

type rewriteToneRequest struct {
	Text string `json:"text"`
	Tone Tone   `json:"tone"`
}

// correctionResponse is the JSON body the backend returns on success.
// Fields are pointers so an absent field can be told apart from an empty one.
type correctionResponse struct {
	CorrectedText  *string `json:"correctedText"`
	ChangesSummary *string `json:"changesSummary"`
}

// healthResponse is the JSON body of the backend's banner route.
type healthResponse struct {
	Message string `json:"message"`
}
