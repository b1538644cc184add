package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableRendersHeadersAndRows(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTableTo(&buf, "NAME", "STATE")
	tbl.Row("GigabitEthernet2/4", "up")
	tbl.Row("lag7", "down")
	tbl.Flush()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "NAME") || !strings.Contains(lines[0], "STATE") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "----") {
		t.Errorf("divider = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "GigabitEthernet2/4") {
		t.Errorf("row = %q", lines[2])
	}
	// Columns align: STATE values start at the same offset.
	if strings.Index(lines[2], "up") != strings.Index(lines[3], "down") {
		t.Errorf("columns misaligned:\n%q\n%q", lines[2], lines[3])
	}
}

func TestTableEmptyProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTableTo(&buf, "NAME", "STATE")
	tbl.Flush()
	if buf.Len() != 0 {
		t.Errorf("empty table wrote %q", buf.String())
	}
}

func TestTableWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTableTo(&buf, "A").WithPrefix("  ")
	tbl.Row("x")
	tbl.Flush()
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if !strings.HasPrefix(line, "  ") {
			t.Errorf("line %q missing prefix", line)
		}
	}
}

func TestVisualLenStripsANSI(t *testing.T) {
	if got := visualLen("\x1b[32mPASS\x1b[0m"); got != 4 {
		t.Errorf("visualLen = %d, want 4", got)
	}
	if got := visualLen("plain"); got != 5 {
		t.Errorf("visualLen = %d, want 5", got)
	}
}
