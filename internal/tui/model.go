// Package tui provides the Bubble Tea password generator interface.
package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuipass/internal/charset"
	"github.com/verte-zerg/tuipass/internal/clipboard"
	"github.com/verte-zerg/tuipass/internal/generator"
	"github.com/verte-zerg/tuipass/internal/model"
	"github.com/verte-zerg/tuipass/internal/session"
	"github.com/verte-zerg/tuipass/internal/strength"
)

const (
	// MinLength and MaxLength bound the length row.
	MinLength = 1
	MaxLength = 512
)

const (
	rowPassword = iota
	rowLength
	rowFirstGroup
)

type copyDoneMsg struct {
	err error
}

type noticeExpiredMsg struct {
	seq int
}

// Model implements the Bubble Tea generator UI.
type Model struct {
	cfg    model.Config
	gen    *generator.Generator
	clip   clipboard.Writer
	groups []charset.Group

	result model.Result
	score  model.Score
	errMsg string
	notice clipboard.Notice
	hidden bool

	password textinput.Model
	extra    textinput.Model
	exclude  textinput.Model
	focus    int

	width  int
	height int
}

// NewModel constructs a generator TUI model and produces the first password.
func NewModel(cfg model.Config, gen *generator.Generator, clip clipboard.Writer, hidden bool) *Model {
	m := &Model{
		cfg:    cfg,
		gen:    gen,
		clip:   clip,
		groups: charset.Groups(),
		hidden: hidden,
	}
	m.password = newInput("")
	m.password.Placeholder = "no password"
	m.extra = newInput("Extra chars:    ")
	m.extra.SetValue(cfg.Extra)
	m.exclude = newInput("Excluded chars: ")
	m.exclude.SetValue(cfg.Exclude)
	m.applyEcho()
	m.setFocus(rowLength)
	m.regenerate()
	return m
}

func newInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorStatic)
	return input
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case copyDoneMsg:
		if msg.err != nil {
			logErrf("failed to copy to clipboard: %v\n", msg.err)
			return m, nil
		}
		seq := m.notice.Show("copied")
		return m, tea.Tick(clipboard.NoticeDuration, func(time.Time) tea.Msg {
			return noticeExpiredMsg{seq: seq}
		})
	case noticeExpiredMsg:
		m.notice.Expire(msg.seq)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m.regenerate()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.setFocus(m.focus + 1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.setFocus(m.focus - 1)
		return m, nil
	case tea.KeyCtrlY:
		return m, m.copyPassword()
	case tea.KeyCtrlE:
		m.hidden = !m.hidden
		m.applyEcho()
		return m, nil
	}

	switch {
	case m.focus == rowPassword:
		return m, m.updatePassword(msg)
	case m.focus == rowLength:
		m.updateLength(msg)
		return m, nil
	case m.focus == m.rowExtra():
		return m, m.updateCharInput(&m.extra, msg)
	case m.focus == m.rowExclude():
		return m, m.updateCharInput(&m.exclude, msg)
	default:
		if isToggleKey(msg) {
			m.toggle(m.focus)
		}
		return m, nil
	}
}

func isToggleKey(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeySpace {
		return true
	}
	return msg.Type == tea.KeyRunes && (string(msg.Runes) == " " || string(msg.Runes) == "x")
}

func (m *Model) rowSimilar() int    { return rowFirstGroup + len(m.groups) }
func (m *Model) rowRequireAll() int { return m.rowSimilar() + 1 }
func (m *Model) rowExtra() int      { return m.rowSimilar() + 2 }
func (m *Model) rowExclude() int    { return m.rowSimilar() + 3 }
func (m *Model) rowCount() int      { return m.rowExclude() + 1 }

func (m *Model) setFocus(row int) {
	count := m.rowCount()
	if row < 0 {
		row = count - 1
	}
	if row >= count {
		row = 0
	}
	m.focus = row
	inputs := map[int]*textinput.Model{
		rowPassword:    &m.password,
		m.rowExtra():   &m.extra,
		m.rowExclude(): &m.exclude,
	}
	for r, input := range inputs {
		if r == row {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

func (m *Model) updatePassword(msg tea.KeyMsg) tea.Cmd {
	before := m.password.Value()
	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	if m.password.Value() != before {
		m.score = strength.Estimate(m.password.Value())
	}
	return cmd
}

func (m *Model) updateLength(msg tea.KeyMsg) {
	delta := 0
	switch msg.Type {
	case tea.KeyLeft:
		delta = -1
	case tea.KeyRight:
		delta = 1
	case tea.KeyPgDown:
		delta = -10
	case tea.KeyPgUp:
		delta = 10
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "-", "h":
			delta = -1
		case "+", "=", "l":
			delta = 1
		}
	}
	if delta == 0 {
		return
	}
	next := clamp(m.cfg.Length+delta, MinLength, MaxLength)
	if next == m.cfg.Length {
		return
	}
	m.cfg.Length = next
	m.regenerate()
}

func (m *Model) updateCharInput(input *textinput.Model, msg tea.KeyMsg) tea.Cmd {
	before := input.Value()
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	if input.Value() == before {
		return cmd
	}
	m.cfg.Extra = m.extra.Value()
	m.cfg.Exclude = m.exclude.Value()
	m.regenerate()
	return cmd
}

func (m *Model) toggle(row int) {
	switch {
	case row >= rowFirstGroup && row < m.rowSimilar():
		id := m.groups[row-rowFirstGroup].ID
		m.cfg = m.cfg.WithGroup(id, !m.cfg.HasGroup(id))
	case row == m.rowSimilar():
		m.cfg.ExcludeSimilar = !m.cfg.ExcludeSimilar
	case row == m.rowRequireAll():
		m.cfg.RequireAll = !m.cfg.RequireAll
	default:
		return
	}
	m.regenerate()
}

// regenerate re-evaluates the whole configuration and replaces the password.
func (m *Model) regenerate() {
	res, err := session.Evaluate(m.cfg, m.gen)
	if err != nil {
		m.errMsg = err.Error()
	} else {
		m.errMsg = ""
	}
	m.result = res
	m.password.SetValue(res.Password)
	m.score = res.Score
}

func (m *Model) copyPassword() tea.Cmd {
	text := m.password.Value()
	if text == "" {
		return nil
	}
	clip := m.clip
	return func() tea.Msg {
		return copyDoneMsg{err: clip.WriteAll(text)}
	}
}

func (m *Model) applyEcho() {
	if m.hidden {
		m.password.EchoMode = textinput.EchoPassword
		m.password.EchoCharacter = '•'
		return
	}
	m.password.EchoMode = textinput.EchoNormal
}

func (m *Model) updateLayout() {
	if m.width <= 0 {
		return
	}
	width := contentWidth(m.width)
	m.password.Width = maxInt(10, width-4)
	m.extra.Width = maxInt(10, width-len(m.extra.Prompt)-4)
	m.exclude.Width = maxInt(10, width-len(m.exclude.Prompt)-4)
}

func contentWidth(total int) int {
	width := int(float64(total) * 0.70)
	if width > 96 {
		width = 96
	}
	if width < 1 {
		width = 1
	}
	return width
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
