package strength

import (
	"math"
	"testing"

	"github.com/verte-zerg/tuipass/internal/model"
)

func TestEntropyZeroDiversity(t *testing.T) {
	for _, pw := range []string{"", "a", "aaaa", "ßßß"} {
		if got := Entropy(pw); got != 0 {
			t.Fatalf("Entropy(%q) = %v, want 0", pw, got)
		}
	}
}

func TestEntropyReferenceValue(t *testing.T) {
	// 11 runes, 'r' twice, nine singletons: 11*log2(11) - 2*log2(2).
	const want = 36.05374780501027
	score := Estimate("Tr0ub4dor&3")
	if math.Abs(score.Entropy-want) > 1e-9 {
		t.Fatalf("entropy = %.12f, want %.12f", score.Entropy, want)
	}
	if score.Tier != model.VeryWeak {
		t.Fatalf("tier = %s, want %s", score.Tier, model.VeryWeak)
	}
}

func TestEntropyDistinctRunes(t *testing.T) {
	// n distinct runes: n*log2(n).
	got := Entropy("abcdefgh")
	if math.Abs(got-24) > 1e-9 {
		t.Fatalf("entropy = %v, want 24", got)
	}
	got = Entropy("¡¢£¤")
	if math.Abs(got-8) > 1e-9 {
		t.Fatalf("entropy counts runes, got %v want 8", got)
	}
}

func TestEntropyPermutationInvariant(t *testing.T) {
	perms := []string{
		"aabbbcdddde!!",
		"!d!dbcbdaebad",
		"edcba!!abbddd",
		"dddd!!eabcbab",
	}
	want := Entropy(perms[0])
	for _, p := range perms[1:] {
		if got := Entropy(p); got != want {
			t.Fatalf("Entropy(%q) = %v, want %v", p, got, want)
		}
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		bits float64
		want model.Tier
	}{
		{0, model.VeryWeak},
		{39.999, model.VeryWeak},
		{40, model.Weak},
		{59.9, model.Weak},
		{60, model.Fair},
		{80, model.Strong},
		{99.99, model.Strong},
		{100, model.VeryStrong},
		{512, model.VeryStrong},
	}
	for _, tt := range tests {
		if got := TierFor(tt.bits); got != tt.want {
			t.Fatalf("TierFor(%v) = %s, want %s", tt.bits, got, tt.want)
		}
	}
}

func TestMeterFraction(t *testing.T) {
	tests := []struct {
		bits float64
		want float64
	}{
		{0, 0},
		{-1, 0},
		{50, 0.25},
		{200, 1},
		{350, 1},
	}
	for _, tt := range tests {
		if got := MeterFraction(tt.bits); got != tt.want {
			t.Fatalf("MeterFraction(%v) = %v, want %v", tt.bits, got, tt.want)
		}
	}
}

func TestLabelAndSummary(t *testing.T) {
	if got := Label(model.VeryStrong); got != "Very Strong" {
		t.Fatalf("Label() = %q", got)
	}
	if got := Label(model.Fair); got != "Fair" {
		t.Fatalf("Label() = %q", got)
	}
	got := Summary(Estimate("Tr0ub4dor&3"))
	if got != "36.05 bit  Very Weak" {
		t.Fatalf("Summary() = %q", got)
	}
}

func TestColorKnownTiers(t *testing.T) {
	if Color(model.Weak) != "#FB923C" {
		t.Fatalf("unexpected weak color %q", Color(model.Weak))
	}
	if Color("bogus") != "#8C8C8C" {
		t.Fatalf("expected fallback color")
	}
}
