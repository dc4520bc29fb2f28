package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"kmzexport/internal/kml"
)

const sidebarWidth = 28

// layout holds the map placement shared by View and mouse handling.
type layout struct {
	contentWidth, contentHeight int
	mapX, mapY                  int
	mapWidth, mapHeight         int
}

func (m Model) layout() layout {
	var lo layout
	headerHeight, footerHeight := 1, 2
	lo.contentHeight = max(4, m.height-headerHeight-footerHeight)
	lo.contentWidth = max(10, m.width)
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth + 1
	}
	lo.mapWidth = max(10, lo.contentWidth-sw)
	lo.mapHeight = lo.contentHeight
	lo.mapX = sw
	lo.mapY = headerHeight
	return lo
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentHeight-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch key := msg.String(); key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1", "2", "3":
			sym := kml.Symbols[key[0]-'1']
			m.hidden[sym] = !m.hidden[sym]
			m.status = fmt.Sprintf("%s: %v", sym, !m.hidden[sym])
		case "l":
			// toggle all layers
			anyHidden := false
			for _, s := range kml.Symbols {
				anyHidden = anyHidden || m.hidden[s]
			}
			for _, s := range kml.Symbols {
				m.hidden[s] = !anyHidden
			}
			m.status = fmt.Sprintf("layers: %v", anyHidden)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.layout().contentHeight-2)
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrsFromCurrent()
			}
		case "e":
			m.exportCurrent()
		case "i":
			if m.inspectPopup != "" {
				m.inspectPopup = ""
				break
			}
			r, ok := m.inspectNearest()
			if !ok {
				m.status = "no feature nearby"
				break
			}
			name := filepath.Base(m.selPath)
			if m.selPath == "" {
				name = "<none>"
			}
			meta := []string{
				fmt.Sprintf("file: %s", name),
				fmt.Sprintf("name: %s", r.Name),
				fmt.Sprintf("symbol: %s", r.Symbol),
				fmt.Sprintf("lat: %.6f", r.Lat),
				fmt.Sprintf("lon: %.6f", r.Lon),
				fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", m.bbox.Min[0], m.bbox.Min[1], m.bbox.Max[0], m.bbox.Max[1]),
				m.countsLine(),
			}
			m.inspectPopup = strings.Join(meta, "\n")
			m.status = "inspect popup"
		case "esc":
			m.inspectPopup = ""
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.hover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// hover tracks the pointer over the map and snaps the highlight to the
// nearest visible row.
func (m *Model) hover(x, y int) {
	lo := m.layout()
	cx, cy := x-lo.mapX, y-lo.mapY
	if cx < 0 || cx >= lo.mapWidth || cy < 0 || cy >= lo.mapHeight {
		m.hovering = false
		m.hoverHasGeo = false
		return
	}
	lon, lat, ok := m.cellToLonLat(cx, cy, lo.mapWidth, lo.mapHeight)
	m.hoverHasGeo = ok
	m.hoverLon, m.hoverLat = lon, lat
	m.hovering = false
	if !ok {
		return
	}
	i, ok := m.index.nearest(lon, lat, m.visible)
	if !ok {
		return
	}
	r := m.rows[i]
	m.hoverMicX, m.hoverMicY, m.hovering = m.screenXYMicro(r.Lon, r.Lat, lo.mapWidth, lo.mapHeight)
}
