package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"

	"kmzexport/internal/export"
	"kmzexport/internal/kml"
)

// Options configures the viewer.
type Options struct {
	// Dir is listed in the sidebar; the working directory when empty.
	Dir             string
	DefaultSymbol   kml.Symbol
	StrictNamespace bool
	// Artifacts is what the export key writes next to the loaded file.
	Artifacts export.Set
}

type Model struct {
	opts Options

	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	rows  []kml.Row
	bbox  orb.Bound
	index *rowIndex

	// symbol layer visibility
	hidden map[kml.Symbol]bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// rows table
	showAttrs bool
	tbl       table.Model
}

func New(opts Options) Model {
	if opts.DefaultSymbol == "" {
		opts.DefaultSymbol = kml.YellowDot
	}
	if opts.Artifacts == (export.Set{}) {
		opts.Artifacts = export.DefaultSet()
	}
	m := Model{
		opts:        opts,
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "kmzexport ready",
		hidden:      make(map[kml.Symbol]bool),
	}
	m.cwd = opts.Dir
	if m.cwd == "" {
		m.cwd, _ = os.Getwd()
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a file's rows at launch.
func NewWithPath(opts Options, path string) Model {
	m := New(opts)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
