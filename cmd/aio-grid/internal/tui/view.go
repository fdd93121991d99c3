package tui

import (
	"fmt"
	"strings"

	"github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/masonry"
)

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading…"
	}

	totalRows := m.historyBase() + int(m.history.Height())
	if totalRows < 1 {
		totalRows = 1
	}
	c := newCanvas(m.width, totalRows)
	drawSection(c, m.pinned, 0)
	drawSection(c, m.history, m.historyBase())

	var b strings.Builder
	b.WriteString(styleTitle.Render("aio-grid"))
	b.WriteString("  ")
	b.WriteString(styleSection.Render(fmt.Sprintf("pinned %d · history %d",
		len(m.pinned.Elements()), len(m.history.Elements()))))
	b.WriteByte('\n')
	if m.filtering {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(styleStatus.Render("↑↓←→ move · / filter · home/end jump · q quit"))
	}
	b.WriteString("\n\n")

	m.writeCanvas(&b, c)
	return b.String()
}

// writeCanvas emits the visible slice of the canvas, styling the
// focused element's span after composition.
func (m *Model) writeCanvas(b *strings.Builder, c *canvas) {
	lines := c.lines()
	rows := m.viewRows()

	maxScroll := len(lines) - rows
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}

	fx1, fx2, fy1, fy2 := m.focusSpan()
	for y := m.scroll; y < len(lines) && y < m.scroll+rows; y++ {
		line := lines[y]
		if y >= fy1 && y < fy2 && fx1 < len(line) {
			x2 := fx2
			if x2 > len(line) {
				x2 = len(line)
			}
			b.WriteString(string(line[:fx1]))
			b.WriteString(styleFocused.Render(string(line[fx1:x2])))
			b.WriteString(string(line[x2:]))
		} else {
			b.WriteString(string(line))
		}
		b.WriteByte('\n')
	}
}

// focusSpan returns the focused element's cell rectangle in canvas
// coordinates, or an empty span when nothing is focused.
func (m *Model) focusSpan() (x1, x2, y1, y2 int) {
	if m.focused == nil {
		return 0, 0, -1, -1
	}
	base := m.historyBase()
	if m.pinned.Contains(m.focused) {
		base = 0
	}
	p := m.focused.Placement
	return int(p.X), int(p.X) + int(p.Width), base + int(p.Y), base + int(p.Y) + int(p.Height)
}

func drawSection(c *canvas, section *masonry.Container, base int) {
	for _, e := range section.Elements() {
		label := ""
		if cl, ok := e.Renderable.(cell); ok {
			label = cl.label
			if cl.pinned {
				label = "★ " + label
			}
		}
		c.drawBox(int(e.Placement.X), base+int(e.Placement.Y),
			int(e.Placement.Width), int(e.Placement.Height), label)
	}
}
