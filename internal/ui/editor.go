package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/config"
	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/gateway"
	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/logging"
	"github.com/Shahidshaik999/Grammar-Correction-AI-by-shahid/internal/polish"
)

// Messages delivered from the orchestrator's goroutines
type stateMsg polish.EditorState
type noticeMsg string
type clearNoticeMsg struct{}

// healthMsg carries the result of the startup banner check.
type healthMsg struct {
	banner string
	err    error
}

// healthChecker is the optional banner check against the backend.
// *gateway.Client satisfies it; the orchestrator's Gateway interface
// deliberately does not require it.
type healthChecker interface {
	Health(ctx context.Context) (string, error)
}

// healthCheckTimeout bounds the startup banner request.
const healthCheckTimeout = 5 * time.Second

// noticeDuration is how long a transient failure notice stays visible.
const noticeDuration = 4 * time.Second

// editorKeyMap defines key bindings for the editor screen. Bindings avoid
// everything the textarea claims for cursor movement.
type editorKeyMap struct {
	Polish     key.Binding
	AIRewrite  key.Binding
	CycleMode  key.Binding
	CycleStyle key.Binding
	Realtime   key.Binding
	ToggleDiff key.Binding
	Copy       key.Binding
	ClearTone  key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Polish, k.AIRewrite, k.CycleMode, k.Realtime, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Polish, k.AIRewrite, k.CycleMode, k.CycleStyle},
		{k.Realtime, k.ToggleDiff, k.Copy, k.ClearTone, k.Quit},
	}
}

func newEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Polish: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "polish now"),
		),
		AIRewrite: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "ai rewrite"),
		),
		CycleMode: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "mode"),
		),
		CycleStyle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "style"),
		),
		Realtime: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "realtime"),
		),
		ToggleDiff: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "diff view"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy output"),
		),
		ClearTone: key.NewBinding(
			key.WithKeys("f10"),
			key.WithHelp("f10", "clear tone"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// toneKeys maps function keys F1-F6 onto the selectable tones.
var toneKeys = map[string]gateway.Tone{
	"f1": gateway.ToneFriendly,
	"f2": gateway.ToneProfessional,
	"f3": gateway.ToneConfident,
	"f4": gateway.ToneCalm,
	"f5": gateway.ToneCaring,
	"f6": gateway.TonePersuasive,
}

// EditorModel is the interactive polishing editor.
type EditorModel struct {
	orch   *polish.Orchestrator
	events chan tea.Msg
	health healthChecker

	state        polish.EditorState
	serverURL    string
	serverStatus string
	notice       string
	showDiff     bool

	input   textarea.Model
	output  viewport.Model
	spinner spinner.Model
	help    help.Model
	keys    editorKeyMap

	width  int
	height int
}

// NewEditorModel builds the editor with its own orchestrator wired to the
// given gateway. Editor defaults come from the settings file.
func NewEditorModel(gw polish.Gateway, settings *config.Settings, serverURL string) EditorModel {
	events := make(chan tea.Msg, 256)
	push := func(msg tea.Msg) {
		select {
		case events <- msg:
		default:
			// UI is behind; a newer state copy follows shortly
		}
	}

	orch := polish.New(polish.Config{
		Gateway:        gw,
		DebounceWindow: settings.Editor.DebounceWindow(),
		Mode:           gateway.Mode(settings.Editor.Mode),
		Style:          gateway.Style(settings.Editor.Style),
		Realtime:       settings.Editor.Realtime,
		OnState:        func(st polish.EditorState) { push(stateMsg(st)) },
		OnNotice:       func(msg string) { push(noticeMsg(msg)) },
	})

	input := textarea.New()
	input.Placeholder = "Type or paste text to polish..."
	input.ShowLineNumbers = false
	input.Focus()

	output := viewport.New(0, 8)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(PrimaryColor)

	// *gateway.Client supports the banner check; test fakes may not
	health, _ := gw.(healthChecker)

	return EditorModel{
		orch:      orch,
		events:    events,
		health:    health,
		state:     orch.Snapshot(),
		serverURL: serverURL,
		input:     input,
		output:    output,
		spinner:   sp,
		help:      help.New(),
		keys:      newEditorKeyMap(),
	}
}

// Init implements tea.Model
func (m EditorModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick, m.waitForEvent(), m.checkHealth())
}

// checkHealth requests the backend banner once at startup so the header can
// show whether the server is reachable. Returns nil when the gateway has no
// banner route.
func (m EditorModel) checkHealth() tea.Cmd {
	if m.health == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
		defer cancel()
		banner, err := m.health.Health(ctx)
		return healthMsg{banner: banner, err: err}
	}
}

// waitForEvent delivers the next orchestrator event as a tea.Msg.
func (m EditorModel) waitForEvent() tea.Cmd {
	return func() tea.Msg { return <-m.events }
}

// Update implements tea.Model
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case stateMsg:
		m.state = polish.EditorState(msg)
		m.refreshOutput()
		return m, m.waitForEvent()

	case noticeMsg:
		m.notice = string(msg)
		return m, tea.Batch(
			m.waitForEvent(),
			tea.Tick(noticeDuration, func(time.Time) tea.Msg { return clearNoticeMsg{} }),
		)

	case clearNoticeMsg:
		m.notice = ""
		return m, nil

	case healthMsg:
		if msg.err != nil {
			m.serverStatus = "offline"
		} else {
			m.serverStatus = "connected"
			logging.Debug("Backend banner", zap.String("message", msg.banner))
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if tone, ok := toneKeys[msg.String()]; ok {
		m.orch.SelectTone(tone)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.orch.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Polish):
		m.orch.PolishNow()
		return m, nil

	case key.Matches(msg, m.keys.AIRewrite):
		m.orch.RequestAIRewrite()
		return m, nil

	case key.Matches(msg, m.keys.CycleMode):
		m.orch.SetMode(nextMode(m.state.Mode))
		return m, nil

	case key.Matches(msg, m.keys.CycleStyle):
		m.orch.SetStyle(nextStyle(m.state.Style))
		return m, nil

	case key.Matches(msg, m.keys.Realtime):
		m.orch.SetRealtime(!m.state.RealtimeEnabled)
		return m, nil

	case key.Matches(msg, m.keys.ToggleDiff):
		m.showDiff = !m.showDiff
		m.refreshOutput()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		if m.state.HasOutput() {
			if err := clipboard.WriteAll(m.state.OutputText); err != nil {
				m.notice = "Clipboard unavailable."
			} else {
				m.notice = "Copied polished text to clipboard."
			}
			return m, tea.Tick(noticeDuration, func(time.Time) tea.Msg { return clearNoticeMsg{} })
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearTone):
		// Re-polish without a tone layer
		m.orch.PolishNow()
		return m, nil
	}

	// Everything else belongs to the textarea
	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.orch.SetInput(after)
	}
	return m, cmd
}

// nextMode cycles grammar -> professional -> casual -> grammar.
func nextMode(mode gateway.Mode) gateway.Mode {
	for i, candidate := range gateway.Modes {
		if candidate == mode {
			return gateway.Modes[(i+1)%len(gateway.Modes)]
		}
	}
	return gateway.ModeGrammar
}

// nextStyle cycles through the style profiles.
func nextStyle(style gateway.Style) gateway.Style {
	for i, candidate := range gateway.Styles {
		if candidate == style {
			return gateway.Styles[(i+1)%len(gateway.Styles)]
		}
	}
	return gateway.StyleNeutral
}

func (m *EditorModel) resize() {
	contentWidth := m.width
	if contentWidth > MaxContentWidth {
		contentWidth = MaxContentWidth
	}
	inner := contentWidth - 4 // borders and padding
	if inner < 20 {
		inner = 20
	}

	m.input.SetWidth(inner)
	m.input.SetHeight(6)
	m.output.Width = inner
	m.output.Height = 8
	m.help.Width = contentWidth
	m.refreshOutput()
}

// refreshOutput re-renders the output pane from the current state.
func (m *EditorModel) refreshOutput() {
	content := m.state.OutputText
	if m.showDiff && m.state.HasOutput() {
		content = RenderInlineDiff(m.state.InputText, m.state.OutputText)
	}
	width := m.output.Width
	if width <= 0 {
		width = 80
	}
	m.output.SetContent(lipgloss.NewStyle().Width(width).Render(content))
}

// View implements tea.Model
func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(RenderHeader(m.serverURL, m.serverStatus, m.width))
	b.WriteString("\n\n")

	b.WriteString(PaneLabelStyle.Render("Input"))
	b.WriteString("\n")
	b.WriteString(InputBoxStyle.Render(m.input.View()))
	b.WriteString("\n\n")

	outputLabel := "Polished"
	if m.showDiff {
		outputLabel = "Polished (diff)"
	}
	b.WriteString(PaneLabelStyle.Render(outputLabel))
	if m.state.IsLoading {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n")
	b.WriteString(OutputBoxStyle.Render(m.output.View()))
	b.WriteString("\n")

	if m.state.ChangesSummary != "" {
		summary := m.state.ChangesSummary
		if n := ChangedRuneCount(m.state.InputText, m.state.OutputText); n > 0 {
			summary = fmt.Sprintf("%s (%d changes)", summary, n)
		}
		b.WriteString(SummaryStyle.Render(summary))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderToneRow())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(NoticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderToneRow shows the F1-F6 tone chips with the active one highlighted.
func (m EditorModel) renderToneRow() string {
	parts := make([]string, 0, len(gateway.Tones)+1)
	parts = append(parts, StatusKeyStyle.Render("Tone:"))
	for i, tone := range gateway.Tones {
		label := fmt.Sprintf("F%d %s", i+1, tone)
		if tone == m.state.Tone {
			parts = append(parts, SelectedToneStyle.Render(label))
		} else {
			parts = append(parts, ToneStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// renderStatusBar shows mode, style and realtime state.
func (m EditorModel) renderStatusBar() string {
	realtime := StatusInactiveStyle.Render("realtime off")
	if m.state.RealtimeEnabled {
		realtime = StatusActiveStyle.Render("realtime on")
	}

	return strings.Join([]string{
		StatusKeyStyle.Render("Mode:") + " " + StatusValueStyle.Render(string(m.state.Mode)),
		StatusKeyStyle.Render("Style:") + " " + StatusValueStyle.Render(string(m.state.Style)),
		realtime,
	}, StatusKeyStyle.Render("  |  "))
}

// RunEditor starts the interactive editor and blocks until the user quits.
// The session's editor choices are written back to the settings file so the
// next run restores them.
func RunEditor(gw polish.Gateway, settings *config.Settings, serverURL string) error {
	model := NewEditorModel(gw, settings, serverURL)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(EditorModel); ok {
		applyEditorState(settings, m.state)
		if err := settings.Save(); err != nil {
			logging.Warn("Failed to save editor settings", zap.Error(err))
		}
	}
	return nil
}

// applyEditorState copies the session's mode, style and realtime choices
// back into the settings.
func applyEditorState(settings *config.Settings, st polish.EditorState) {
	settings.Editor.Mode = string(st.Mode)
	settings.Editor.Style = string(st.Style)
	settings.Editor.Realtime = st.RealtimeEnabled
}
