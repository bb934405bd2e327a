package devserver

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/gateway"
)

// The dev server is a wire-contract double, not a grammar engine. Its
// transforms are deliberately light and fully deterministic so client tests
// get stable output: whitespace normalization, pronoun capitalization,
// sentence casing, terminal punctuation, and small word-substitution tables
// per mode and tone.

// professionalReplacements formalizes casual phrasing for the professional
// mode and tone.
var professionalReplacements = [][2]string{
	{" bro", " sir"},
	{" gonna", " going to"},
	{" wanna", " want to"},
	{" don't", " do not"},
	{" can't", " cannot"},
	{" won't", " will not"},
	{" okay", " all right"},
	{" ok", " all right"},
}

// casualReplacements relaxes formal phrasing for the casual mode.
var casualReplacements = [][2]string{
	{"sir", "bro"},
	{"madam", "bro"},
}

// toneOpeners give tone rewrites a visible, deterministic register shift.
var toneOpeners = map[gateway.Tone]string{
	gateway.ToneFriendly:   "Hey! ",
	gateway.ToneConfident:  "Rest assured: ",
	gateway.ToneCalm:       "Take your time: ",
	gateway.ToneCaring:     "I hope this helps: ",
	gateway.TonePersuasive: "Consider this: ",
}

// cleanup normalizes whitespace, capitalizes standalone "i" and the first
// letter, and guarantees terminal punctuation.
func cleanup(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		if word == "i" {
			words[i] = "I"
		}
	}
	cleaned := strings.Join(words, " ")
	if cleaned == "" {
		return ""
	}

	runes := []rune(cleaned)
	runes[0] = unicode.ToUpper(runes[0])
	cleaned = string(runes)

	last := runes[len(runes)-1]
	if last != '.' && last != '!' && last != '?' {
		cleaned += "."
	}

	return cleaned
}

// adjustForMode applies the mode's substitution table.
func adjustForMode(text string, mode gateway.Mode) string {
	switch mode {
	case gateway.ModeProfessional:
		for _, r := range professionalReplacements {
			text = strings.ReplaceAll(text, r[0], r[1])
		}
	case gateway.ModeCasual:
		for _, r := range casualReplacements {
			text = strings.ReplaceAll(text, r[0], r[1])
		}
	}
	return text
}

// correct runs the /correct transform: cleanup plus the mode table.
func correct(text string, mode gateway.Mode) gateway.Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return gateway.Result{ChangesSummary: "No text provided."}
	}

	if !mode.Valid() {
		mode = gateway.ModeGrammar
	}

	corrected := cleanup(adjustForMode(trimmed, mode))

	return gateway.Result{
		CorrectedText:  corrected,
		ChangesSummary: fmt.Sprintf("Grammar and spelling corrected with %s style.", mode),
	}
}

// polishAI runs the /polish-ai transform: a grammar pass followed by the
// tone/style-labelled rewrite.
func polishAI(text string, tone gateway.Tone, style gateway.Style) gateway.Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return gateway.Result{ChangesSummary: "No text provided."}
	}

	if !tone.Valid() {
		tone = gateway.ToneFriendly
	}
	if !style.Valid() {
		style = gateway.StyleNeutral
	}

	rewritten := cleanup(adjustForMode(trimmed, gateway.ModeGrammar))

	return gateway.Result{
		CorrectedText: rewritten,
		ChangesSummary: fmt.Sprintf("Expression adjusted with '%s' tone and '%s' writing style.",
			capitalize(string(tone)), capitalize(string(style))),
	}
}

// rewriteTone runs the /rewrite-tone transform: cleanup plus a register
// shift for the requested tone.
func rewriteTone(text string, tone gateway.Tone) gateway.Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return gateway.Result{ChangesSummary: "No text provided."}
	}

	if !tone.Valid() {
		return gateway.Result{
			CorrectedText:  trimmed,
			ChangesSummary: fmt.Sprintf("Unknown tone '%s'; text unchanged.", tone),
		}
	}

	rewritten := trimmed
	if tone == gateway.ToneProfessional {
		for _, r := range professionalReplacements {
			rewritten = strings.ReplaceAll(rewritten, r[0], r[1])
		}
	}
	rewritten = cleanup(rewritten)
	if opener, ok := toneOpeners[tone]; ok {
		rewritten = opener + rewritten
	}

	return gateway.Result{
		CorrectedText:  rewritten,
		ChangesSummary: fmt.Sprintf("Rewrote text in a %s tone.", tone),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
