package clipboard

import "testing"

func TestNoticeExpiresOnLatestSequence(t *testing.T) {
	var n Notice
	seq := n.Show("copied")
	if n.Text() != "copied" {
		t.Fatalf("expected notice text, got %q", n.Text())
	}
	if !n.Expire(seq) {
		t.Fatalf("expected expiry to apply")
	}
	if n.Text() != "" {
		t.Fatalf("expected cleared notice, got %q", n.Text())
	}
}

func TestNoticeNewShowCancelsPendingExpiry(t *testing.T) {
	var n Notice
	first := n.Show("copied")
	second := n.Show("copied")
	if n.Expire(first) {
		t.Fatalf("stale expiry must be ignored")
	}
	if n.Text() != "copied" {
		t.Fatalf("notice cleared by stale expiry")
	}
	if !n.Expire(second) {
		t.Fatalf("latest expiry should clear the notice")
	}
}
