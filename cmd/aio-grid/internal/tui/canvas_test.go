package tui

import "testing"

func TestCanvas_DrawBox(t *testing.T) {
	c := newCanvas(10, 5)
	c.drawBox(1, 1, 6, 3, "ab")

	if c.cells[1][1] != '┌' || c.cells[1][6] != '┐' {
		t.Errorf("top corners wrong: %q %q", c.cells[1][1], c.cells[1][6])
	}
	if c.cells[3][1] != '└' || c.cells[3][6] != '┘' {
		t.Errorf("bottom corners wrong: %q %q", c.cells[3][1], c.cells[3][6])
	}
	if c.cells[2][2] != 'a' || c.cells[2][3] != 'b' {
		t.Errorf("label not drawn: %q %q", c.cells[2][2], c.cells[2][3])
	}
}

func TestCanvas_DegenerateBoxFallsBackToLabel(t *testing.T) {
	c := newCanvas(10, 2)
	c.drawBox(0, 0, 8, 1, "tiny")

	if got := string(c.cells[0][:4]); got != "tiny" {
		t.Errorf("row = %q, want label", got)
	}
}

func TestCanvas_TruncatesLongLabels(t *testing.T) {
	c := newCanvas(6, 1)
	c.drawText(0, 0, 5, "abcdefgh")

	if got := string(c.cells[0][:5]); got != "abcd…" {
		t.Errorf("row = %q, want abcd…", got)
	}
}

func TestCanvas_ClipsOutOfBounds(t *testing.T) {
	c := newCanvas(4, 2)
	c.drawBox(2, 0, 6, 5, "x") // extends past both edges, must not panic
	if c.cells[0][2] != '┌' {
		t.Errorf("in-bounds corner missing: %q", c.cells[0][2])
	}
}
