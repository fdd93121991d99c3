// Package tui is the interactive terminal front end of the demo. It
// hosts two masonry sections (pinned above history), pumps the shared
// scheduling queue from a Bubble Tea tick, and translates arrow keys
// into spatial navigation.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/focus"
	"github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/imaging"
	"github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/manifest"
	"github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/masonry"
	"github.com/NiffirgkcaJ/all-in-one-clipboard-sub001/pkg/scheduling"
)

// Options configures a demo run.
type Options struct {
	Manifest *manifest.Manifest
	Columns  int
	Spacing  float64
	Logger   *log.Logger
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := newModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

const (
	headerRows  = 3 // title, status, blank
	sectionGap  = 1
	pumpEvery   = 16 * time.Millisecond
	textAspectW = 3.0
	textAspectH = 1.0
)

// cell is the renderable the demo attaches to each element.
type cell struct {
	label  string
	pinned bool
}

type tickMsg time.Time

// Model implements the Bubble Tea model for the grid demo.
type Model struct {
	runner  *scheduling.Runner
	pinned  *masonry.Container
	history *masonry.Container
	region  *focus.Region
	logger  *log.Logger

	// full history item list, kept for filter resets
	allHistory []masonry.Item

	input     textinput.Model
	filtering bool
	lastQuery string

	focused *masonry.Element
	scroll  int
	width   int
	height  int
}

func newModel(opts Options) *Model {
	m := &Model{
		runner: scheduling.NewRunner(),
		logger: opts.Logger,
	}

	renderer := masonry.RendererFunc(func(it masonry.Item, _ masonry.Session) any {
		return it.Data
	})

	m.pinned = masonry.New(masonry.Config{
		Columns:  opts.Columns,
		Spacing:  opts.Spacing,
		Renderer: renderer,
		Runner:   m.runner,
		Viewport: &sectionViewport{model: m, base: m.pinnedBase},
		OnFocus:  m.setFocus,
	})
	m.history = masonry.New(masonry.Config{
		Columns:  opts.Columns,
		Spacing:  opts.Spacing,
		Renderer: renderer,
		Runner:   m.runner,
		Viewport: &sectionViewport{model: m, base: m.historyBase},
		OnFocus:  m.setFocus,
	})
	m.region = focus.NewRegion(m.pinned, m.history)

	var pinnedItems []masonry.Item
	for _, g := range opts.Manifest.Sections {
		for _, e := range g.Entries {
			it := m.itemFor(e)
			if e.Pinned {
				pinnedItems = append(pinnedItems, it)
			} else {
				m.allHistory = append(m.allHistory, it)
			}
		}
	}
	m.pinned.AddItems(pinnedItems, masonry.NewSession())
	m.pinned.FinishBatch()
	m.history.AddItems(m.allHistory, masonry.NewSession())
	m.history.FinishBatch()

	ti := textinput.New()
	ti.Placeholder = "filter history"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	m.input = ti

	return m
}

// itemFor converts a manifest entry into a masonry item, probing image
// files for their intrinsic size. Entries that cannot be sized stay in
// the list without ever being placed.
func (m *Model) itemFor(e manifest.Entry) masonry.Item {
	it := masonry.Item{
		Data:   cell{label: e.Label(), pinned: e.Pinned},
		Width:  e.Width,
		Height: e.Height,
	}
	if it.HasDimensions() {
		return it
	}
	if e.File == "" {
		it.Width, it.Height = textAspectW, textAspectH
		return it
	}

	d, err := imaging.Probe(e.File)
	if err != nil {
		m.logger.Warn("could not size image, entry stays unplaced", "file", e.File, "err", err)
		return it
	}
	// Terminal cells are roughly twice as tall as wide.
	it.Width, it.Height = d.Width, d.Height/2
	return it
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(pumpEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.runner.Pump()
		if m.focused == nil {
			m.region.FocusFirst()
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := float64(msg.Width - 1)
		m.pinned.SetWidth(w)
		m.history.SetWidth(w)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateNav(msg)
	}
	return m, nil
}

func (m *Model) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.filtering = true
		m.input.Focus()
		return m, textinput.Blink
	case "home":
		m.region.FocusFirst()
	case "end":
		m.region.FocusLast()
	case "up":
		m.region.HandleKeyPress(focus.DirectionUp, m.currentHandle())
	case "down":
		m.region.HandleKeyPress(focus.DirectionDown, m.currentHandle())
	case "left":
		m.region.HandleKeyPress(focus.DirectionLeft, m.currentHandle())
	case "right":
		m.region.HandleKeyPress(focus.DirectionRight, m.currentHandle())
	}
	return m, nil
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.input.Blur()
		m.input.SetValue("")
		m.applyFilter("")
		return m, nil
	case "enter":
		m.filtering = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != m.lastQuery {
		m.applyFilter(q)
	}
	return m, cmd
}

// applyFilter rebuilds the history section from the entries whose label
// fuzzy-matches the query. Manifest order is preserved.
func (m *Model) applyFilter(query string) {
	m.lastQuery = query

	items := m.allHistory
	if strings.TrimSpace(query) != "" {
		items = nil
		for _, it := range m.allHistory {
			if fuzzy.MatchNormalizedFold(query, it.Data.(cell).label) {
				items = append(items, it)
			}
		}
	}

	m.focused = nil
	m.history.Clear()
	m.history.AddItems(items, masonry.NewSession())
	m.history.FinishBatch()
}

func (m *Model) setFocus(e *masonry.Element) {
	m.focused = e
}

// currentHandle adapts the typed focus pointer to the untyped handle
// the region expects. A nil interface, not a typed nil.
func (m *Model) currentHandle() any {
	if m.focused == nil {
		return nil
	}
	return m.focused
}

func (m *Model) pinnedBase() int  { return 0 }
func (m *Model) historyBase() int { return int(m.pinned.Height()) + sectionGap }

func (m *Model) viewRows() int {
	rows := m.height - headerRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// sectionViewport keeps the focused element inside the visible window
// by adjusting the model's scroll offset.
type sectionViewport struct {
	model *Model
	base  func() int
}

func (v *sectionViewport) EnsureVisible(handle any) {
	e, ok := handle.(*masonry.Element)
	if !ok {
		return
	}
	m := v.model
	top := v.base() + int(e.Placement.Y)
	bottom := top + int(e.Placement.Height)

	if top < m.scroll {
		m.scroll = top
	}
	if rows := m.viewRows(); bottom > m.scroll+rows {
		m.scroll = bottom - rows
	}
}
