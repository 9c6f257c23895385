package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuipass/internal/charset"
	"github.com/verte-zerg/tuipass/internal/model"
	"github.com/verte-zerg/tuipass/internal/strength"
)

const (
	meterWidth    = 40
	previewWidth  = 28
	focusMarker   = "› "
	unfocusMarker = "  "
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	textStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	disabledStyle = mutedStyle.Copy().Strikethrough(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	emptyBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	passwordBox   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

// View implements tea.Model.
func (m *Model) View() string {
	lines := []string{titleStyle.Render("tuipass"), ""}
	lines = append(lines, m.renderPassword())
	lines = append(lines, renderMeter(m.score, meterWidth)+"  "+m.renderCount())
	lines = append(lines, "")
	lines = append(lines, m.renderRow(rowLength, fmt.Sprintf("Length  ‹ %d ›", m.cfg.Length)))
	for i, g := range m.groups {
		label := checkbox(m.cfg.HasGroup(g.ID)) + " " + padLabel(string(g.ID), 15) + mutedStyle.Render(previewMembers(g.Members, previewWidth))
		lines = append(lines, m.renderRow(rowFirstGroup+i, label))
	}
	lines = append(lines, m.renderRow(m.rowSimilar(), checkbox(m.cfg.ExcludeSimilar)+" exclude similar "+mutedStyle.Render(charset.Similar)))
	lines = append(lines, m.renderRow(m.rowRequireAll(), checkbox(m.cfg.RequireAll)+" include every selected group"))
	lines = append(lines, m.renderRow(m.rowExtra(), m.extra.View()))
	lines = append(lines, m.renderRow(m.rowExclude(), m.exclude.View()))
	lines = append(lines, "", renderHelp(m.result.CanGenerate))
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	}
	content := strings.Join(lines, "\n")
	if m.width == 0 || m.height == 0 {
		return content
	}
	content = lipgloss.NewStyle().Width(contentWidth(m.width)).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderPassword() string {
	field := m.password.View()
	if m.focus == rowPassword {
		field = focusMarker + field
	} else {
		field = unfocusMarker + field
	}
	box := passwordBox.Render(field)
	if text := m.notice.Text(); text != "" {
		box = lipgloss.JoinHorizontal(lipgloss.Center, box, " ", noticeStyle.Render(text))
	}
	return box
}

func (m *Model) renderCount() string {
	return footerStyle.Render(fmt.Sprintf("%d chars", utf8.RuneCountInString(m.password.Value())))
}

func (m *Model) renderRow(row int, content string) string {
	if row == m.focus {
		return focusedStyle.Render(focusMarker) + content
	}
	return unfocusMarker + content
}

// renderMeter draws a bar proportional to the meter fraction followed by the
// entropy and tier label, both in the tier color.
func renderMeter(score model.Score, width int) string {
	filled := int(strength.MeterFraction(score.Entropy)*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	tierStyle := lipgloss.NewStyle().Foreground(strength.Color(score.Tier))
	bar := tierStyle.Render(strings.Repeat("█", filled)) + emptyBarStyle.Render(strings.Repeat("░", width-filled))
	return bar + " " + tierStyle.Render(strength.Summary(score))
}

func renderHelp(canGenerate bool) string {
	regen := textStyle.Render("enter: regenerate")
	if !canGenerate {
		regen = disabledStyle.Render("enter: regenerate")
	}
	return regen + footerStyle.Render("  ctrl+y: copy  ctrl+e: show/hide  tab: next  space: toggle  ←/→: length  esc: quit")
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func padLabel(label string, width int) string {
	return runewidth.FillRight(label, width)
}

// previewMembers shortens a member list to width display cells.
func previewMembers(members string, width int) string {
	return runewidth.Truncate(members, width, "…")
}
