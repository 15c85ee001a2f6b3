package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/blockedit/cmd/editexplorer/logger"
	"github.com/joshuapare/blockedit/filemodel"
)

const bytesPerRow = 16

// viewer is the bubbletea model: a row-oriented window over the file plus a
// one-line search prompt.
type viewer struct {
	m *filemodel.Model

	topRow uint64 // first visible row
	rows   uint64 // total rows in the file

	width  int
	height int

	searching  bool
	backward   bool
	input      string
	lastNeedle []byte
	lastDir    filemodel.Direction
	status     string
}

func newViewer(m *filemodel.Model) viewer {
	return viewer{
		m:    m,
		rows: (m.Length() + bytesPerRow - 1) / bytesPerRow,
	}
}

func (v viewer) Init() tea.Cmd { return nil }

func (v viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v viewer) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := uint64(v.contentHeight())
	if page == 0 {
		page = 1
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return v, tea.Quit
	case "up", "k":
		v.scrollTo(v.topRow, -1)
	case "down", "j":
		v.scrollTo(v.topRow, 1)
	case "pgup", "b":
		v.scrollTo(v.topRow, -int64(page))
	case "pgdown", "f", " ":
		v.scrollTo(v.topRow, int64(page))
	case "g":
		v.topRow = 0
	case "G":
		v.jumpToEnd()
	case "/":
		v.searching = true
		v.backward = false
		v.input = ""
	case "?":
		v.searching = true
		v.backward = true
		v.input = ""
	case "n":
		v.repeatSearch()
	}
	return v, nil
}

func (v *viewer) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		v.searching = false
	case "enter":
		v.searching = false
		v.lastNeedle = []byte(v.input)
		if v.backward {
			v.lastDir = filemodel.Backward
		} else {
			v.lastDir = filemodel.Forward
		}
		v.runSearch()
	case "backspace":
		if len(v.input) > 0 {
			v.input = v.input[:len(v.input)-1]
		}
	default:
		if msg.Type == tea.KeyRunes {
			v.input += string(msg.Runes)
		}
	}
	return *v, nil
}

func (v *viewer) runSearch() {
	if len(v.lastNeedle) == 0 {
		return
	}

	off := v.topRow * bytesPerRow
	pos, ok := v.m.Find(off, v.lastDir, v.lastNeedle)
	logger.Debug("search", "needle", string(v.lastNeedle), "dir", v.lastDir.String(),
		"from", off, "found", ok, "pos", pos)
	if !ok {
		v.status = fmt.Sprintf("not found: %q", v.lastNeedle)
		return
	}

	v.status = fmt.Sprintf("match at %#x", pos)
	v.topRow = pos / bytesPerRow
	v.clampTop()
}

func (v *viewer) repeatSearch() {
	if len(v.lastNeedle) == 0 {
		return
	}

	off := v.topRow*bytesPerRow + 1
	if v.lastDir == filemodel.Backward && v.topRow > 0 {
		off = v.topRow*bytesPerRow - 1
	}
	pos, ok := v.m.Find(off, v.lastDir, v.lastNeedle)
	if !ok {
		v.status = fmt.Sprintf("no further match: %q", v.lastNeedle)
		return
	}
	v.status = fmt.Sprintf("match at %#x", pos)
	v.topRow = pos / bytesPerRow
	v.clampTop()
}

func (v *viewer) scrollTo(row uint64, delta int64) {
	if delta < 0 && uint64(-delta) > row {
		v.topRow = 0
	} else {
		v.topRow = uint64(int64(row) + delta)
	}
	v.clampTop()
}

func (v *viewer) jumpToEnd() {
	v.topRow = v.rows
	v.clampTop()
}

func (v *viewer) clampTop() {
	visible := uint64(v.contentHeight())
	if v.rows <= visible {
		v.topRow = 0
		return
	}
	if v.topRow > v.rows-visible {
		v.topRow = v.rows - visible
	}
}

func (v viewer) contentHeight() int {
	h := v.height - 2 // status bar + prompt line
	if h < 1 {
		h = 1
	}
	return h
}

func (v viewer) View() string {
	var sb strings.Builder

	visible := v.contentHeight()
	off := v.topRow * bytesPerRow

	window := make([]byte, visible*bytesPerRow)
	n := 0
	if off < v.m.Length() {
		n, _ = v.m.Get(off, window)
	}

	for row := 0; row < visible; row++ {
		start := row * bytesPerRow
		if start >= n {
			sb.WriteString(emptyStyle.Render("~"))
			sb.WriteByte('\n')
			continue
		}
		end := start + bytesPerRow
		if end > n {
			end = n
		}
		sb.WriteString(renderRow(off+uint64(start), window[start:end]))
		sb.WriteByte('\n')
	}

	sb.WriteString(v.statusBar())
	sb.WriteByte('\n')
	sb.WriteString(v.promptLine())
	return sb.String()
}

func (v viewer) statusBar() string {
	left := fmt.Sprintf(" %s  %d bytes ", v.m.Path(), v.m.Length())
	right := fmt.Sprintf(" row %d/%d ", v.topRow+1, maxU64(v.rows, 1))
	pad := v.width - len(left) - len(right)
	if pad < 0 {
		pad = 0
	}
	return statusStyle.Render(left + strings.Repeat(" ", pad) + right)
}

func (v viewer) promptLine() string {
	if v.searching {
		prompt := "/"
		if v.backward {
			prompt = "?"
		}
		return promptStyle.Render(prompt + v.input)
	}
	return helpStyle.Render(v.status)
}

func renderRow(off uint64, chunk []byte) string {
	var hexCol, textCol strings.Builder
	for i, b := range chunk {
		if i == 8 {
			hexCol.WriteByte(' ')
		}
		fmt.Fprintf(&hexCol, "%02x ", b)

		if b >= 0x20 && b < 0x7f {
			textCol.WriteByte(b)
		} else {
			textCol.WriteByte('.')
		}
	}

	return offsetStyle.Render(fmt.Sprintf("%08x", off)) +
		"  " + fmt.Sprintf("%-49s", hexCol.String()) +
		" " + textStyle.Render(textCol.String())
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
