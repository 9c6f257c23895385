package strength

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuipass/internal/model"
)

// MeterCapBits is the entropy at which the meter is full.
const MeterCapBits = 200.0

var tierColors = map[model.Tier]lipgloss.Color{
	model.VeryWeak:   lipgloss.Color("#EF4444"),
	model.Weak:       lipgloss.Color("#FB923C"),
	model.Fair:       lipgloss.Color("#EAB308"),
	model.Strong:     lipgloss.Color("#84CC16"),
	model.VeryStrong: lipgloss.Color("#22C55E"),
}

// MeterFraction returns how full the meter is, in [0, 1].
func MeterFraction(bits float64) float64 {
	if bits <= 0 {
		return 0
	}
	if bits >= MeterCapBits {
		return 1
	}
	return bits / MeterCapBits
}

// Label renders a tier for people, e.g. "Very Weak".
func Label(tier model.Tier) string {
	words := strings.Split(string(tier), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Color returns the display color for tier.
func Color(tier model.Tier) lipgloss.Color {
	if c, ok := tierColors[tier]; ok {
		return c
	}
	return lipgloss.Color("#8C8C8C")
}

// FormatBits formats entropy the way it is shown next to the meter.
func FormatBits(bits float64) string {
	return fmt.Sprintf("%.2f bit", bits)
}

// Summary is the one-line score description, e.g. "36.05 bit  Very Weak".
func Summary(score model.Score) string {
	return FormatBits(score.Entropy) + "  " + Label(score.Tier)
}
