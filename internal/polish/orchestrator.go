package polish

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/gateway"
	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/logging"
)

// DefaultDebounceWindow is the quiet period after the last input change
// before a realtime correction fires.
const DefaultDebounceWindow = 600 * time.Millisecond

// Gateway is the set of backend operations the orchestrator drives.
// *gateway.Client satisfies it; tests substitute a fake.
type Gateway interface {
	Correct(ctx context.Context, text string, mode gateway.Mode) (gateway.Result, error)
	PolishAI(ctx context.Context, text string, tone gateway.Tone, style gateway.Style) (gateway.Result, error)
	RewriteTone(ctx context.Context, text string, tone gateway.Tone) (gateway.Result, error)
}

// operation identifies which gateway call a request was issued for.
type operation int

const (
	opCorrect operation = iota
	opPolishAI
	opRewriteTone
)

func (op operation) String() string {
	switch op {
	case opCorrect:
		return "correct"
	case opPolishAI:
		return "polish-ai"
	case opRewriteTone:
		return "rewrite-tone"
	default:
		return "unknown"
	}
}

// Config configures a new Orchestrator.
type Config struct {
	// Gateway performs the network calls. Required.
	Gateway Gateway

	// DebounceWindow overrides the realtime quiet period (default 600ms).
	DebounceWindow time.Duration

	// OnState is invoked with a state copy after every state change.
	// Optional. Called from orchestrator goroutines; implementations must
	// be safe for that.
	OnState func(EditorState)

	// OnNotice is invoked with a transient user-visible message when a
	// request fails. Optional.
	OnNotice func(string)

	// Initial editor settings.
	Mode     gateway.Mode
	Style    gateway.Style
	Realtime bool
}

// Orchestrator translates user intent (typing, mode switches, tone clicks,
// manual polish, realtime toggling) into at most one winning network request
// at a time, and applies results safely.
//
// Every issued request carries a monotonically increasing tag; a completion
// is applied only if its tag still equals the latest issued tag, so results
// for superseded input are dropped on arrival regardless of arrival order.
type Orchestrator struct {
	mu sync.Mutex

	gw     Gateway
	window time.Duration

	state EditorState

	// timer is the pending debounce timer, nil when none is armed.
	// Stopped and replaced on every realtime input change.
	timer *time.Timer

	// latest is the tag of the most recently issued request. Bumped on
	// issue and on input clear, which logically cancels anything in flight.
	latest uint64

	onState  func(EditorState)
	onNotice func(string)
}

// New creates an Orchestrator from the given config.
func New(cfg Config) *Orchestrator {
	window := cfg.DebounceWindow
	if window <= 0 {
		window = DefaultDebounceWindow
	}

	mode := cfg.Mode
	if !mode.Valid() {
		mode = gateway.ModeGrammar
	}
	style := cfg.Style
	if !style.Valid() {
		style = gateway.StyleNeutral
	}

	return &Orchestrator{
		gw:     cfg.Gateway,
		window: window,
		state: EditorState{
			Mode:            mode,
			Style:           style,
			RealtimeEnabled: cfg.Realtime,
		},
		onState:  cfg.OnState,
		onNotice: cfg.OnNotice,
	}
}

// Snapshot returns a copy of the current editor state.
func (o *Orchestrator) Snapshot() EditorState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Close stops any pending debounce timer. In-flight requests resolve into
// discarded results.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	o.stopTimerLocked()
	o.latest++
	o.state.IsLoading = false
	st := o.state
	o.mu.Unlock()

	o.emit(st)
}

// SetInput records a new input text. Empty (after trimming) input clears the
// output, summary and active tone immediately and issues no call; with
// realtime enabled, non-empty input arms the debounce timer.
func (o *Orchestrator) SetInput(text string) {
	o.mu.Lock()
	o.state.InputText = text

	if strings.TrimSpace(text) == "" {
		o.clearOutputLocked()
		st := o.state
		o.mu.Unlock()
		o.emit(st)
		return
	}

	if o.state.RealtimeEnabled {
		o.armDebounceLocked()
	}
	st := o.state
	o.mu.Unlock()
	o.emit(st)
}

// SetMode switches the correction mode. With realtime off and non-empty
// input this triggers an immediate correction with the new mode; with
// realtime on, the debounce timer is re-armed so the stabilized text is
// re-corrected under the new mode.
func (o *Orchestrator) SetMode(mode gateway.Mode) {
	if !mode.Valid() {
		return
	}

	o.mu.Lock()
	o.state.Mode = mode

	if strings.TrimSpace(o.state.InputText) == "" {
		st := o.state
		o.mu.Unlock()
		o.emit(st)
		return
	}

	if o.state.RealtimeEnabled {
		o.armDebounceLocked()
		st := o.state
		o.mu.Unlock()
		o.emit(st)
		return
	}

	o.issueCorrectionLocked()
}

// SetStyle records the style profile applied to subsequent AI rewrites.
func (o *Orchestrator) SetStyle(style gateway.Style) {
	if !style.Valid() {
		return
	}

	o.mu.Lock()
	o.state.Style = style
	st := o.state
	o.mu.Unlock()
	o.emit(st)
}

// PolishNow triggers an immediate correction with the current input and
// mode. This is the manual path used when realtime is off.
func (o *Orchestrator) PolishNow() {
	o.mu.Lock()
	if strings.TrimSpace(o.state.InputText) == "" {
		o.clearOutputLocked()
		st := o.state
		o.mu.Unlock()
		o.emit(st)
		return
	}

	o.issueCorrectionLocked()
}

// RequestAIRewrite triggers the AI fluency rewrite on the current input,
// independent of the correction mode. The active tone and style profile
// refine the rewrite.
func (o *Orchestrator) RequestAIRewrite() {
	o.mu.Lock()
	text := o.state.InputText
	if strings.TrimSpace(text) == "" {
		o.clearOutputLocked()
		st := o.state
		o.mu.Unlock()
		o.emit(st)
		return
	}

	o.stopTimerLocked()
	tone := o.state.Tone
	style := o.state.Style
	tag := o.issueStartLocked()
	st := o.state
	o.mu.Unlock()
	o.emit(st)

	go func() {
		result, err := o.gw.PolishAI(context.Background(), text, tone, style)
		o.complete(tag, opPolishAI, result, err, gateway.ToneNone)
	}()
}

// SelectTone triggers a tone rewrite. The current output, when present, is
// the base text, so the tone layers on top of the existing polish; otherwise
// the raw input is used. The tone is set optimistically before the call
// resolves and reverted if the rewrite fails.
func (o *Orchestrator) SelectTone(tone gateway.Tone) {
	if !tone.Valid() {
		return
	}

	o.mu.Lock()
	base := o.state.OutputText
	if base == "" {
		base = o.state.InputText
	}
	if strings.TrimSpace(base) == "" {
		o.mu.Unlock()
		return
	}

	o.stopTimerLocked()
	prevTone := o.state.Tone
	o.state.Tone = tone
	tag := o.issueStartLocked()
	st := o.state
	o.mu.Unlock()
	o.emit(st)

	go func() {
		result, err := o.gw.RewriteTone(context.Background(), base, tone)
		o.complete(tag, opRewriteTone, result, err, prevTone)
	}()
}

// SetRealtime flips the realtime flag. Turning it on with non-empty input
// immediately triggers a correction; turning it off cancels any pending
// debounce timer.
func (o *Orchestrator) SetRealtime(enabled bool) {
	o.mu.Lock()
	o.state.RealtimeEnabled = enabled

	if !enabled {
		o.stopTimerLocked()
		st := o.state
		o.mu.Unlock()
		o.emit(st)
		return
	}

	if strings.TrimSpace(o.state.InputText) == "" {
		st := o.state
		o.mu.Unlock()
		o.emit(st)
		return
	}

	o.issueCorrectionLocked()
}

// armDebounceLocked stops any pending timer and arms a fresh one, so only
// the final stabilized text is sent. Caller holds the lock.
func (o *Orchestrator) armDebounceLocked() {
	o.stopTimerLocked()
	o.timer = time.AfterFunc(o.window, o.debounceFired)
}

// stopTimerLocked cancels the pending debounce timer, if any.
func (o *Orchestrator) stopTimerLocked() {
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
}

// debounceFired runs on the timer goroutine after the quiet period.
func (o *Orchestrator) debounceFired() {
	o.mu.Lock()
	o.timer = nil

	// The toggle may have flipped or the input emptied while the timer
	// was pending.
	if !o.state.RealtimeEnabled || strings.TrimSpace(o.state.InputText) == "" {
		o.mu.Unlock()
		return
	}

	o.issueCorrectionLocked()
}

// issueCorrectionLocked issues a correction request for the current input and
// mode. Caller holds the lock; it is released here.
func (o *Orchestrator) issueCorrectionLocked() {
	o.stopTimerLocked()
	text := o.state.InputText
	mode := o.state.Mode
	tag := o.issueStartLocked()
	st := o.state
	o.mu.Unlock()
	o.emit(st)

	go func() {
		result, err := o.gw.Correct(context.Background(), text, mode)
		o.complete(tag, opCorrect, result, err, gateway.ToneNone)
	}()
}

// issueStartLocked allocates the next request tag and marks the editor as
// loading. Caller holds the lock.
func (o *Orchestrator) issueStartLocked() uint64 {
	o.latest++
	o.state.IsLoading = true
	return o.latest
}

// complete applies a resolved request. Results whose tag no longer matches
// the latest issued tag are discarded silently: a newer request supersedes
// them no matter which finishes first.
func (o *Orchestrator) complete(tag uint64, op operation, result gateway.Result, err error, revertTone gateway.Tone) {
	o.mu.Lock()

	if tag != o.latest {
		logging.Debug("Discarding stale result",
			zap.String("operation", op.String()),
			zap.Uint64("tag", tag),
			zap.Uint64("latest", o.latest),
		)
		o.mu.Unlock()
		return
	}

	o.state.IsLoading = false

	var notice string
	if err != nil {
		notice = gateway.FailureSummary(err)
		if op == opRewriteTone {
			o.state.Tone = revertTone
		}
		// Prior output stays intact. Only when nothing was ever shown
		// does the fallback (original text + explanatory summary)
		// become the display.
		if !o.state.HasOutput() {
			o.state.OutputText = result.CorrectedText
			o.state.ChangesSummary = result.ChangesSummary
		}
	} else {
		o.state.OutputText = result.CorrectedText
		o.state.ChangesSummary = result.ChangesSummary
	}

	st := o.state
	o.mu.Unlock()

	if notice != "" && o.onNotice != nil {
		o.onNotice(notice)
	}
	o.emit(st)
}

// clearOutputLocked resets output, summary and tone, and invalidates any
// in-flight request so a late result cannot resurrect the cleared state.
// Caller holds the lock.
func (o *Orchestrator) clearOutputLocked() {
	o.stopTimerLocked()
	o.latest++
	o.state.OutputText = ""
	o.state.ChangesSummary = ""
	o.state.Tone = gateway.ToneNone
	o.state.IsLoading = false
}

func (o *Orchestrator) emit(st EditorState) {
	if o.onState != nil {
		o.onState(st)
	}
}
