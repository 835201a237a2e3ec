// Package tui renders the interactive tutoring session.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/trendolabs/trendospeak/internal/entitlement"
	"github.com/trendolabs/trendospeak/internal/lesson"
	"github.com/trendolabs/trendospeak/internal/tutor"
	"github.com/trendolabs/trendospeak/pkg/live"

	tea "github.com/charmbracelet/bubbletea"
)

const spectrumInterval = 100 * time.Millisecond

// SessionController is the engine surface the TUI drives.
type SessionController interface {
	Connect(ctx context.Context) error
	Disconnect()
	SelectLesson(id int) error
	State() tutor.State
	ErrorMessage() string
	Messages() []tutor.Message
	ActiveLessonID() int
	Notify() <-chan struct{}
	Spectrum() []float64
}

// SubscriptionChecker resolves whether the user has paid access.
type SubscriptionChecker interface {
	HasSubscription(ctx context.Context, userID int64) bool
}

// Options configure the model beyond the controller itself.
type Options struct {
	Checker   SubscriptionChecker
	UserID    int64
	ExportDir string
}

// Model is the root bubbletea model.
type Model struct {
	ctrl SessionController
	opts Options

	lessons    []lesson.Lesson
	cursor     int
	subscribed bool

	// Engine snapshot, refreshed on engineUpdateMsg.
	state    tutor.State
	errMsg   string
	messages []tutor.Message
	spectrum []float64

	connecting   bool
	spectrumLive bool
	notice       string

	width  int
	height int
}

// New builds the model around an engine. The checker may be nil; only the
// first lesson is unlocked then until an entitlement result arrives.
func New(ctrl SessionController, opts Options) Model {
	return Model{
		ctrl:    ctrl,
		opts:    opts,
		lessons: lesson.All(),
		state:   ctrl.State(),
	}
}

// Init subscribes to engine updates and kicks off the entitlement lookup.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForEngine(m.ctrl.Notify())}
	if m.opts.Checker != nil {
		cmds = append(cmds, subscriptionCmd(m.opts.Checker, m.opts.UserID))
	}
	return tea.Batch(cmds...)
}

// waitForEngine blocks until the engine signals a change.
func waitForEngine(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return engineUpdateMsg{}
	}
}

func connectCmd(ctrl SessionController) tea.Cmd {
	return func() tea.Msg {
		return connectResultMsg{Err: ctrl.Connect(context.Background())}
	}
}

func subscriptionCmd(checker SubscriptionChecker, userID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return subscriptionMsg{Subscribed: checker.HasSubscription(ctx, userID)}
	}
}

func exportCmd(l lesson.Lesson, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := lesson.WriteStudySheet(l, dir, time.Now())
		return exportDoneMsg{Path: path, Err: err}
	}
}

func spectrumTickCmd() tea.Cmd {
	return tea.Tick(spectrumInterval, func(time.Time) tea.Msg {
		return spectrumTickMsg{}
	})
}

func clearNoticeCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case engineUpdateMsg:
		m.snapshot()
		var cmd tea.Cmd
		if m.state == tutor.StateConnected && !m.spectrumLive {
			m.spectrumLive = true
			cmd = spectrumTickCmd()
		}
		return m, tea.Batch(waitForEngine(m.ctrl.Notify()), cmd)

	case connectResultMsg:
		m.connecting = false
		m.snapshot()
		return m, nil

	case subscriptionMsg:
		m.subscribed = msg.Subscribed
		return m, nil

	case spectrumTickMsg:
		m.spectrum = m.ctrl.Spectrum()
		if m.state == tutor.StateConnected {
			return m, spectrumTickCmd()
		}
		m.spectrumLive = false
		return m, nil

	case exportDoneMsg:
		if msg.Err != nil {
			m.notice = "Export failed: " + msg.Err.Error()
		} else {
			m.notice = "Saved " + msg.Path
		}
		return m, clearNoticeCmd()

	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	return m, nil
}

// snapshot pulls current engine state into the model.
func (m *Model) snapshot() {
	m.state = m.ctrl.State()
	m.errMsg = m.ctrl.ErrorMessage()
	m.messages = m.ctrl.Messages()
	if m.state != tutor.StateConnected {
		m.spectrum = nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.ctrl.Disconnect()
		return m, tea.Quit

	case " ":
		switch m.state {
		case tutor.StateConnected, tutor.StateConnecting:
			m.ctrl.Disconnect()
			m.snapshot()
			return m, nil
		default:
			if m.connecting {
				return m, nil
			}
			m.connecting = true
			return m, connectCmd(m.ctrl)
		}

	case "j", "down":
		if m.cursor < len(m.lessons)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "enter":
		if m.cursor >= len(m.lessons) {
			return m, nil
		}
		l := m.lessons[m.cursor]
		if !entitlement.Unlocked(l.ID, m.subscribed) {
			m.notice = "This lesson requires a subscription."
			return m, clearNoticeCmd()
		}
		if err := m.ctrl.SelectLesson(l.ID); err != nil {
			m.notice = err.Error()
			return m, clearNoticeCmd()
		}
		m.snapshot()
		return m, nil

	case "e", "E":
		if m.cursor >= len(m.lessons) {
			return m, nil
		}
		return m, exportCmd(m.lessons[m.cursor], m.opts.ExportDir)
	}

	return m, nil
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderStatusBar())
	sections = append(sections, dividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderMainContent())
	sections = append(sections, dividerStyle.Render(strings.Repeat("─", m.width)))
	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render("Error: ")+errorTextStyle.Render(m.errMsg))
	}
	if m.notice != "" {
		sections = append(sections, noticeStyle.Render(m.notice))
	}
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("TRENDOSPEAK")
	sub := dimStyle.Render(" — English tutor for Uzbek speakers")
	return title + sub
}

func (m Model) renderStatusBar() string {
	var dot string
	switch m.state {
	case tutor.StateConnected:
		dot = connectedDotStyle.Render("● LIVE")
	case tutor.StateConnecting:
		dot = connectingDotStyle.Render("◐ CONNECTING")
	case tutor.StateError:
		dot = errorStyle.Render("✗ ERROR")
	default:
		dot = idleDotStyle.Render("○ OFFLINE")
	}

	var bars string
	if m.state == tutor.StateConnected {
		bars = "  " + spectrumStyle.Render(renderSpectrum(m.spectrum))
	}

	var active string
	if id := m.ctrl.ActiveLessonID(); id != 0 {
		if l, ok := lesson.ByID(id); ok {
			active = "  " + dimStyle.Render(l.Title)
		}
	}

	return dot + bars + active
}

// renderSpectrum maps analyser bins onto block glyphs.
func renderSpectrum(bins []float64) string {
	if len(bins) == 0 {
		return ""
	}
	glyphs := []rune("▁▂▃▄▅▆▇█")
	var b strings.Builder
	for _, v := range bins {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		i := int(v * float64(len(glyphs)-1))
		b.WriteRune(glyphs[i])
	}
	return b.String()
}

func (m Model) renderMainContent() string {
	sideW := m.sidePanelWidth()
	mainW := m.transcriptPanelWidth()
	contentH := m.contentHeight()

	side := m.renderLessonPanel(sideW, contentH)
	main := m.renderTranscriptPanel(mainW, contentH)
	divider := dividerStyle.Render("│")

	sideLines := strings.Split(side, "\n")
	mainLines := strings.Split(main, "\n")

	var rows []string
	for i := 0; i < contentH; i++ {
		var sl, ml string
		if i < len(sideLines) {
			sl = sideLines[i]
		}
		if i < len(mainLines) {
			ml = mainLines[i]
		}
		rows = append(rows, padRight(sl, sideW)+divider+ml)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderLessonPanel(width, height int) string {
	lines := []string{panelTitleActiveStyle.Render("DARSLAR")}

	for i, l := range m.lessons {
		unlocked := entitlement.Unlocked(l.ID, m.subscribed)
		marker := "  "
		if l.ID == m.ctrl.ActiveLessonID() {
			marker = "▸ "
		}

		label := l.Title
		if !unlocked {
			label = "🔒 " + label
		}

		var line string
		switch {
		case i == m.cursor:
			line = selectedStyle.Render("> " + marker + label)
		case !unlocked:
			line = "  " + marker + lockedStyle.Render(label)
		default:
			line = "  " + marker + label
		}
		lines = append(lines, truncateToWidth(line, width))
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderTranscriptPanel(width, height int) string {
	lines := []string{panelTitleStyle.Render(" SUHBAT")}
	contentHeight := height - 1

	if len(m.messages) == 0 {
		lines = append(lines, "")
		switch m.state {
		case tutor.StateConnected:
			lines = append(lines, dimStyle.Render("  Speak to your tutor..."))
		default:
			lines = append(lines, dimStyle.Render("  Press Space to start a session"))
		}
	} else {
		textWidth := max(10, width-10)
		var displayLines []string
		for _, msg := range m.messages {
			label := tutorLabelStyle.Render("[USTOZ]")
			if msg.Speaker == live.SpeakerUser {
				label = userLabelStyle.Render("[SIZ]  ")
			}
			text := msg.Text
			if !msg.Final {
				text += "▌"
			}
			wrapped := wrapText(text, textWidth)
			for i, wl := range wrapped {
				if !msg.Final {
					wl = partialTextStyle.Render(wl)
				}
				if i == 0 {
					displayLines = append(displayLines, " "+label+" "+wl)
				} else {
					displayLines = append(displayLines, strings.Repeat(" ", 9)+wl)
				}
			}
		}

		// Pin to the tail.
		start := 0
		if len(displayLines) > contentHeight {
			start = len(displayLines) - contentHeight
		}
		lines = append(lines, displayLines[start:]...)
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	var parts []string
	if m.state == tutor.StateConnected || m.state == tutor.StateConnecting {
		parts = append(parts, footerKeyStyle.Render("Space")+footerDescStyle.Render(" Stop"))
	} else {
		parts = append(parts, footerKeyStyle.Render("Space")+footerDescStyle.Render(" Start"))
	}
	parts = append(parts,
		footerKeyStyle.Render("j/k")+footerDescStyle.Render(" Lesson"),
		footerKeyStyle.Render("Enter")+footerDescStyle.Render(" Select"),
		footerKeyStyle.Render("e")+footerDescStyle.Render(" Export"),
		footerKeyStyle.Render("q")+footerDescStyle.Render(" Quit"),
	)
	return strings.Join(parts, "  ")
}

func (m Model) sidePanelWidth() int {
	if m.width == 0 {
		return 34
	}
	return max(24, m.width*35/100)
}

func (m Model) transcriptPanelWidth() int {
	if m.width == 0 {
		return 50
	}
	return max(30, m.width-m.sidePanelWidth()-1)
}

func (m Model) contentHeight() int {
	if m.height == 0 {
		return 18
	}
	return max(6, m.height-7)
}

func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

func truncateToWidth(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) > width-1 {
		return string(runes[:width-1]) + "…"
	}
	return s
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
