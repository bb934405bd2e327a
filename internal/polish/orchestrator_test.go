package polish

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/gateway"
)

// testWindow keeps debounce tests fast.
const testWindow = 40 * time.Millisecond

// recordedCall captures one gateway invocation.
type recordedCall struct {
	op   string
	text string
	mode gateway.Mode
	tone gateway.Tone
}

// fakeGateway records calls and answers through pluggable functions.
type fakeGateway struct {
	mu    sync.Mutex
	calls []recordedCall

	correctFn func(text string, mode gateway.Mode) (gateway.Result, error)
	polishFn  func(text string, tone gateway.Tone, style gateway.Style) (gateway.Result, error)
	toneFn    func(text string, tone gateway.Tone) (gateway.Result, error)
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		correctFn: func(text string, mode gateway.Mode) (gateway.Result, error) {
			return gateway.Result{CorrectedText: "corrected:" + text, ChangesSummary: "Grammar corrected."}, nil
		},
		polishFn: func(text string, tone gateway.Tone, style gateway.Style) (gateway.Result, error) {
			return gateway.Result{CorrectedText: "polished:" + text, ChangesSummary: "Rewritten."}, nil
		},
		toneFn: func(text string, tone gateway.Tone) (gateway.Result, error) {
			return gateway.Result{CorrectedText: fmt.Sprintf("%s:%s", tone, text), ChangesSummary: "Tone adjusted."}, nil
		},
	}
}

func (f *fakeGateway) record(c recordedCall) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()
}

func (f *fakeGateway) Correct(_ context.Context, text string, mode gateway.Mode) (gateway.Result, error) {
	f.record(recordedCall{op: "correct", text: text, mode: mode})
	return f.correctFn(text, mode)
}

func (f *fakeGateway) PolishAI(_ context.Context, text string, tone gateway.Tone, style gateway.Style) (gateway.Result, error) {
	f.record(recordedCall{op: "polish-ai", text: text, tone: tone})
	return f.polishFn(text, tone, style)
}

func (f *fakeGateway) RewriteTone(_ context.Context, text string, tone gateway.Tone) (gateway.Result, error) {
	f.record(recordedCall{op: "rewrite-tone", text: text, tone: tone})
	return f.toneFn(text, tone)
}

func (f *fakeGateway) callsSnapshot() []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]recordedCall, len(f.calls))
	copy(out, f.calls)
	return out
}

// testHarness bundles an orchestrator with its fake gateway and captured
// notices.
type testHarness struct {
	gw      *fakeGateway
	orch    *Orchestrator
	notices chan string
}

func newHarness(realtime bool) *testHarness {
	gw := newFakeGateway()
	notices := make(chan string, 16)
	orch := New(Config{
		Gateway:        gw,
		DebounceWindow: testWindow,
		Realtime:       realtime,
		OnNotice:       func(msg string) { notices <- msg },
	})
	return &testHarness{gw: gw, orch: orch, notices: notices}
}

// waitState polls until the predicate holds or the deadline passes.
func waitState(t *testing.T, o *Orchestrator, what string, pred func(EditorState) bool) EditorState {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		st := o.Snapshot()
		if pred(st) {
			return st
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s; state = %+v", what, o.Snapshot())
	return EditorState{}
}

func TestEmptyInput_ClearsAndIssuesNoCall(t *testing.T) {
	h := newHarness(true)

	// Build up some output first
	h.orch.SetInput("hello there")
	waitState(t, h.orch, "initial output", func(s EditorState) bool { return s.HasOutput() })
	h.orch.SelectTone(gateway.ToneFriendly)
	waitState(t, h.orch, "tone applied", func(s EditorState) bool { return s.Tone == gateway.ToneFriendly && !s.IsLoading })

	before := len(h.gw.callsSnapshot())

	h.orch.SetInput("   \n\t ")

	st := h.orch.Snapshot()
	if st.OutputText != "" || st.ChangesSummary != "" {
		t.Errorf("output not cleared: %+v", st)
	}
	if st.Tone != gateway.ToneNone {
		t.Errorf("tone not reset, got %q", st.Tone)
	}

	// Nothing new should fire, even after the debounce window
	time.Sleep(3 * testWindow)
	if got := len(h.gw.callsSnapshot()); got != before {
		t.Errorf("empty input issued %d extra call(s)", got-before)
	}
}

func TestDebounce_CoalescesToFinalText(t *testing.T) {
	h := newHarness(true)

	h.orch.SetInput("h")
	h.orch.SetInput("he")
	h.orch.SetInput("hello ther")
	h.orch.SetInput("hello there")

	waitState(t, h.orch, "debounced correction", func(s EditorState) bool { return s.HasOutput() })

	calls := h.gw.callsSnapshot()
	if len(calls) != 1 {
		t.Fatalf("rapid input issued %d calls, want 1: %+v", len(calls), calls)
	}
	if calls[0].text != "hello there" {
		t.Errorf("debounced call used %q, want final text", calls[0].text)
	}
}

func TestDebounce_TimerResetsPerKeystroke(t *testing.T) {
	h := newHarness(true)

	// Keep typing at intervals shorter than the window; nothing may fire
	// until typing stops.
	for i := 0; i < 5; i++ {
		h.orch.SetInput(fmt.Sprintf("draft %d", i))
		time.Sleep(testWindow / 2)
	}
	if got := len(h.gw.callsSnapshot()); got != 0 {
		t.Errorf("correction fired mid-typing: %d call(s)", got)
	}

	waitState(t, h.orch, "final correction", func(s EditorState) bool { return s.HasOutput() })

	calls := h.gw.callsSnapshot()
	if len(calls) != 1 || calls[0].text != "draft 4" {
		t.Errorf("calls = %+v, want single call for final draft", calls)
	}
}

func TestStaleness_LastIssuedWinsRegardlessOfArrival(t *testing.T) {
	h := newHarness(false)

	gates := map[string]chan struct{}{
		"hello":       make(chan struct{}),
		"hello world": make(chan struct{}),
	}
	h.gw.correctFn = func(text string, mode gateway.Mode) (gateway.Result, error) {
		<-gates[text]
		return gateway.Result{CorrectedText: "corrected:" + text, ChangesSummary: "done"}, nil
	}

	// Request A for "hello"
	h.orch.SetInput("hello")
	h.orch.PolishNow()

	// Request B for "hello world", issued before A resolves
	h.orch.SetInput("hello world")
	h.orch.PolishNow()

	waitState(t, h.orch, "both requests issued", func(EditorState) bool {
		return len(h.gw.callsSnapshot()) == 2
	})

	// B resolves first and is applied
	close(gates["hello world"])
	waitState(t, h.orch, "B applied", func(s EditorState) bool {
		return s.OutputText == "corrected:hello world" && !s.IsLoading
	})

	// A resolves afterwards and must be discarded
	close(gates["hello"])
	time.Sleep(50 * time.Millisecond)

	st := h.orch.Snapshot()
	if st.OutputText != "corrected:hello world" {
		t.Errorf("stale result overwrote state: OutputText = %q", st.OutputText)
	}
}

func TestFailure_PriorOutputUnchanged(t *testing.T) {
	h := newHarness(false)

	h.orch.SetInput("first text")
	h.orch.PolishNow()
	waitState(t, h.orch, "first output", func(s EditorState) bool { return s.OutputText == "corrected:first text" })

	h.gw.correctFn = func(text string, mode gateway.Mode) (gateway.Result, error) {
		err := errors.New("dial tcp: connection refused")
		return gateway.Result{CorrectedText: text, ChangesSummary: gateway.FailureSummary(err)}, err
	}

	h.orch.SetInput("second text")
	h.orch.PolishNow()

	select {
	case notice := <-h.notices:
		if notice == "" {
			t.Error("failure notice should not be empty")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no failure notice raised")
	}

	st := h.orch.Snapshot()
	if st.OutputText != "corrected:first text" {
		t.Errorf("failure overwrote prior output: %q", st.OutputText)
	}
	if st.IsLoading {
		t.Error("IsLoading should clear after a failed request")
	}
}

func TestFailure_NoPriorOutput_ShowsFallback(t *testing.T) {
	h := newHarness(false)

	reqErr := errors.New("server exploded")
	h.gw.correctFn = func(text string, mode gateway.Mode) (gateway.Result, error) {
		return gateway.Result{CorrectedText: text, ChangesSummary: "Could not reach the correction server. Original text kept."}, reqErr
	}

	h.orch.SetInput("my draft")
	h.orch.PolishNow()

	st := waitState(t, h.orch, "fallback shown", func(s EditorState) bool { return s.HasOutput() })
	if st.OutputText != "my draft" {
		t.Errorf("fallback should show original input, got %q", st.OutputText)
	}
	if st.ChangesSummary == "" {
		t.Error("fallback should carry an explanatory summary")
	}
}

func TestSelectTone_UsesCurrentOutputAsBase(t *testing.T) {
	h := newHarness(false)

	h.orch.SetInput("Yo wanna grab lunch?")
	h.orch.PolishNow()
	waitState(t, h.orch, "base output", func(s EditorState) bool { return s.HasOutput() })

	h.orch.SelectTone(gateway.ToneProfessional)

	// The optimistic tone is visible before the call resolves
	if st := h.orch.Snapshot(); st.Tone != gateway.ToneProfessional {
		t.Errorf("tone not set optimistically, got %q", st.Tone)
	}

	waitState(t, h.orch, "tone result", func(s EditorState) bool { return !s.IsLoading })

	calls := h.gw.callsSnapshot()
	last := calls[len(calls)-1]
	if last.op != "rewrite-tone" {
		t.Fatalf("last call op = %s, want rewrite-tone", last.op)
	}
	if last.text != "corrected:Yo wanna grab lunch?" {
		t.Errorf("tone rewrite base = %q, want the current output, not the raw input", last.text)
	}
}

func TestSelectTone_FallsBackToRawInput(t *testing.T) {
	h := newHarness(false)

	h.orch.SetInput("plain draft")
	h.orch.SelectTone(gateway.ToneCalm)

	waitState(t, h.orch, "tone result", func(s EditorState) bool { return s.HasOutput() })

	calls := h.gw.callsSnapshot()
	if len(calls) != 1 || calls[0].text != "plain draft" {
		t.Errorf("calls = %+v, want single rewrite-tone over the raw input", calls)
	}
}

func TestSelectTone_FailureRevertsTone(t *testing.T) {
	h := newHarness(false)

	h.orch.SetInput("some text")
	h.orch.PolishNow()
	waitState(t, h.orch, "base output", func(s EditorState) bool { return s.HasOutput() })

	h.gw.toneFn = func(text string, tone gateway.Tone) (gateway.Result, error) {
		return gateway.Result{CorrectedText: text, ChangesSummary: "failed"}, errors.New("boom")
	}

	h.orch.SelectTone(gateway.ToneCaring)
	waitState(t, h.orch, "tone failure handled", func(s EditorState) bool { return !s.IsLoading })

	st := h.orch.Snapshot()
	if st.Tone != gateway.ToneNone {
		t.Errorf("failed tone rewrite should revert the tone, got %q", st.Tone)
	}
	if st.OutputText != "corrected:some text" {
		t.Errorf("failed tone rewrite should leave output intact, got %q", st.OutputText)
	}
}

func TestManualOnly_WhenRealtimeOff(t *testing.T) {
	h := newHarness(false)

	h.orch.SetInput("typed without realtime")
	time.Sleep(3 * testWindow)

	if got := len(h.gw.callsSnapshot()); got != 0 {
		t.Fatalf("typing with realtime off issued %d call(s)", got)
	}

	h.orch.PolishNow()
	waitState(t, h.orch, "manual polish", func(s EditorState) bool { return s.HasOutput() })

	calls := h.gw.callsSnapshot()
	if len(calls) != 1 || calls[0].op != "correct" {
		t.Errorf("calls = %+v, want single correct call", calls)
	}
}

func TestSetRealtime_OnWithInputTriggersImmediately(t *testing.T) {
	h := newHarness(false)

	h.orch.SetInput("pending text")
	h.orch.SetRealtime(true)

	// Immediate, not debounced: well before the window elapses
	waitState(t, h.orch, "immediate correction", func(s EditorState) bool { return s.HasOutput() })

	calls := h.gw.callsSnapshot()
	if len(calls) != 1 || calls[0].text != "pending text" {
		t.Errorf("calls = %+v", calls)
	}
}

func TestSetMode_ImmediateWhenManual(t *testing.T) {
	h := newHarness(false)

	h.orch.SetInput("dear sir")
	h.orch.SetMode(gateway.ModeProfessional)

	waitState(t, h.orch, "mode correction", func(s EditorState) bool { return s.HasOutput() })

	calls := h.gw.callsSnapshot()
	if len(calls) != 1 || calls[0].mode != gateway.ModeProfessional {
		t.Errorf("calls = %+v, want immediate correct with new mode", calls)
	}
}

func TestSetMode_DebouncedWhenRealtime(t *testing.T) {
	h := newHarness(true)

	h.orch.SetInput("some text")
	waitState(t, h.orch, "initial correction", func(s EditorState) bool { return s.HasOutput() })

	h.orch.SetMode(gateway.ModeCasual)

	// No immediate second call; the debounced path picks the mode up
	if got := len(h.gw.callsSnapshot()); got != 1 {
		t.Fatalf("mode change in realtime fired immediately: %d call(s)", got)
	}

	waitState(t, h.orch, "re-correction under new mode", func(EditorState) bool {
		calls := h.gw.callsSnapshot()
		return len(calls) == 2 && calls[1].mode == gateway.ModeCasual
	})
}

func TestClearInvalidatesInFlightRequest(t *testing.T) {
	h := newHarness(false)

	gate := make(chan struct{})
	h.gw.correctFn = func(text string, mode gateway.Mode) (gateway.Result, error) {
		<-gate
		return gateway.Result{CorrectedText: "corrected:" + text, ChangesSummary: "done"}, nil
	}

	h.orch.SetInput("about to vanish")
	h.orch.PolishNow()

	// User empties the editor while the request is in flight
	h.orch.SetInput("")
	close(gate)
	time.Sleep(50 * time.Millisecond)

	st := h.orch.Snapshot()
	if st.OutputText != "" || st.ChangesSummary != "" {
		t.Errorf("late result resurrected cleared state: %+v", st)
	}
}

func TestRequestAIRewrite_UsesInputText(t *testing.T) {
	h := newHarness(false)

	h.orch.SetInput("rough draft")
	h.orch.PolishNow()
	waitState(t, h.orch, "base output", func(s EditorState) bool { return s.HasOutput() })

	h.orch.RequestAIRewrite()
	waitState(t, h.orch, "AI rewrite", func(s EditorState) bool { return s.OutputText == "polished:rough draft" })

	calls := h.gw.callsSnapshot()
	last := calls[len(calls)-1]
	if last.op != "polish-ai" || last.text != "rough draft" {
		t.Errorf("last call = %+v, want polish-ai over the raw input", last)
	}
}
