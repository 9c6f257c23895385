package report

import (
	"bytes"
	"testing"
)

func TestTableAlignsColumns(t *testing.T) {
	table := Table{
		Headers: []string{"Group", "Size", "Members"},
		Rows: [][]string{
			{"numbers", "10", "0123456789"},
			{"quotes", "2", `"'`},
		},
		RightAlign: map[int]bool{1: true},
	}

	lines := table.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Group   Size Members" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "numbers   10 0123456789" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != `quotes     2 "'` {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestTableUsesDisplayWidth(t *testing.T) {
	table := Table{
		Headers: []string{"Password", "Bits"},
		Rows: [][]string{
			{"日本", "4.00"},
			{"ab", "2.00"},
		},
	}
	lines := table.Lines()
	if lines[1] != "日本     4.00" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "ab       2.00" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestTableWrite(t *testing.T) {
	var buf bytes.Buffer
	table := Table{Headers: []string{"A"}, Rows: [][]string{{"x"}}}
	if err := table.Write(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "A\nx\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestTableEmpty(t *testing.T) {
	if lines := (Table{}).Lines(); lines != nil {
		t.Fatalf("expected nil lines, got %v", lines)
	}
}
