package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/manifest"
)

const testDoc = `
version: "1.0.0"
sections:
  - name: pinned
    entries:
      - text: "pinned snippet"
        width: 3
        height: 1
        pinned: true
  - name: history
    entries:
      - text: "kubectl get pods"
        width: 3
        height: 1
      - text: "lorem ipsum"
        width: 3
        height: 1
      - text: "kubectl logs api"
        width: 3
        height: 2
`

func newTestModel(t *testing.T) *Model {
	t.Helper()
	mf, err := manifest.Parse([]byte(testDoc))
	if err != nil {
		t.Fatal(err)
	}
	m := newModel(Options{
		Manifest: mf,
		Columns:  2,
		Spacing:  1,
		Logger:   log.New(io.Discard),
	})
	m.Update(tea.WindowSizeMsg{Width: 81, Height: 24})
	m.runner.Pump()
	return m
}

func TestModel_SplitsPinnedFromHistory(t *testing.T) {
	m := newTestModel(t)

	if got := len(m.pinned.Elements()); got != 1 {
		t.Errorf("pinned elements = %d, want 1", got)
	}
	if got := len(m.history.Elements()); got != 3 {
		t.Errorf("history elements = %d, want 3", got)
	}
}

func TestModel_FilterNarrowsAndRestores(t *testing.T) {
	m := newTestModel(t)

	m.applyFilter("kubectl")
	if got := len(m.history.Elements()); got != 2 {
		t.Errorf("filtered elements = %d, want 2", got)
	}
	if got := len(m.pinned.Elements()); got != 1 {
		t.Errorf("pinned must be untouched by filter, got %d", got)
	}

	m.applyFilter("")
	if got := len(m.history.Elements()); got != 3 {
		t.Errorf("restored elements = %d, want 3", got)
	}
}

func TestModel_ItemForDefaultsAndProbeFailure(t *testing.T) {
	m := newTestModel(t)

	text := m.itemFor(manifest.Entry{Text: "bare"})
	if text.Width != textAspectW || text.Height != textAspectH {
		t.Errorf("text default = %vx%v", text.Width, text.Height)
	}

	broken := m.itemFor(manifest.Entry{File: "does-not-exist.png"})
	if broken.HasDimensions() {
		t.Error("unprobeable file must stay dimensionless")
	}
}
