package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/screen-generator/internal/format/table"
	"github.com/atomicstack/screen-generator/internal/render"
	uistate "github.com/atomicstack/screen-generator/internal/ui/state"
)

const (
	defaultWidth  = 100
	defaultHeight = 24
	bottomBarRows = 2 // status line + footer/prompt
	labelWidth    = 14
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.viewSize()
	panelH := height - 1 - bottomBarRows
	if panelH < 3 {
		panelH = 3
	}

	var body string
	if m.mode == ModeHelp {
		body = m.renderPanel("Help", m.helpLines(), width, panelH, true)
	} else {
		catW := width / 4
		elemW := width / 4
		detW := width - catW - elemW
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderPanel("Categories", m.categoryLines(catW-2), catW, panelH, m.focus == PanelCategories),
			m.renderMiddlePanel(elemW, panelH),
			m.renderPanel("Details", m.detailLines(), detW, panelH, m.focus == PanelDetails),
		)
	}

	bottom := applyWidth([]styledLine{m.statusLine(), m.footerLine(width)}, width)
	return m.titleLine(width) + "\n" + body + "\n" + renderLines(bottom)
}

func (m *Model) viewSize() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (m *Model) titleLine(width int) string {
	title := "Screen Generator settings"
	if styles.Title != nil {
		title = styles.Title.Render(title)
	}
	if m.state.IsModified {
		marker := "● unapplied changes"
		if styles.Modified != nil {
			marker = styles.Modified.Render(marker)
		}
		title += "  " + marker
	}
	if lipgloss.Width(title) > width {
		title = truncate.StringWithTail(title, uint(width-1), "…")
	}
	return title
}

func (m *Model) statusLine() styledLine {
	switch {
	case m.mode == ModeConfirmQuit:
		return styledLine{text: "Discard unapplied changes? y to quit, any other key to stay", style: styles.Error}
	case m.errMsg != "":
		return styledLine{text: "Error: " + m.errMsg, style: styles.Error}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: styles.Info}
	}
	return styledLine{}
}

func (m *Model) footerLine(width int) styledLine {
	prompt := func(label string) string {
		if styles.Prompt != nil {
			return styles.Prompt.Render(label + " › ")
		}
		return label + " › "
	}
	switch m.mode {
	case ModeEdit:
		return styledLine{text: prompt(m.editor.label()) + m.editor.input.View(), raw: true}
	case ModeFind:
		return styledLine{text: prompt("find") + m.find.input.View(), raw: true}
	case ModeHelp:
		return styledLine{text: "press any key to close help", style: styles.Footer}
	}
	if !m.showFooter {
		return styledLine{}
	}
	m.help.Width = width
	return styledLine{text: m.help.ShortHelpView(m.keys.ShortHelp()), raw: true}
}

// renderPanel draws a bordered column of exactly width x height cells.
func (m *Model) renderPanel(title string, lines []styledLine, width, height int, focused bool) string {
	innerW := width - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}
	titleStyle := styles.PanelTitle
	borderStyle := styles.Border
	if focused {
		titleStyle = styles.PanelTitleFocused
		borderStyle = styles.BorderFocused
	}
	content := make([]styledLine, 0, len(lines)+1)
	content = append(content, styledLine{text: title, style: titleStyle})
	content = append(content, lines...)
	content = limitHeight(content, innerH, innerW)
	for len(content) < innerH {
		content = append(content, styledLine{})
	}
	content = applyWidth(content, innerW)

	// Pad every row to innerW visible columns so the border stays square.
	rows := strings.Split(renderLines(content), "\n")
	for i, row := range rows {
		w := lipgloss.Width(row)
		if w > innerW {
			rows[i] = truncate.StringWithTail(row, uint(innerW-1), "…")
		} else if w < innerW {
			rows[i] = row + strings.Repeat(" ", innerW-w)
		}
	}

	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	if borderStyle != nil {
		frame = frame.BorderForeground(borderStyle.GetForeground())
	}
	return frame.Render(strings.Join(rows, "\n"))
}

func (m *Model) renderMiddlePanel(width, height int) string {
	if m.mode == ModeFind {
		return m.renderPanel("Find", m.findLines(width-2), width, height, true)
	}
	return m.renderPanel("Screen elements", m.elementLines(width-2), width, height, m.focus == PanelElements)
}

func (m *Model) categoryLines(width int) []styledLine {
	if len(m.categories.Items) == 0 {
		return []styledLine{
			{text: "(no categories)", style: styles.Disabled},
			{text: "press a to add", style: styles.Disabled},
		}
	}
	return m.listLines(m.categories, width, m.focus == PanelCategories)
}

func (m *Model) elementLines(width int) []styledLine {
	if m.state.SelectedCategory == nil {
		return []styledLine{{text: "(select a category)", style: styles.Disabled}}
	}
	if len(m.elements.Items) == 0 {
		return []styledLine{{text: "(no screen elements)", style: styles.Disabled}}
	}
	return m.listLines(m.elements, width, m.focus == PanelElements)
}

func (m *Model) findLines(width int) []styledLine {
	if len(m.find.results.Items) == 0 {
		msg := "(no screen elements)"
		if q := strings.TrimSpace(m.find.input.Value()); q != "" {
			msg = fmt.Sprintf("No matches for %q", q)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	return m.listLines(m.find.results, width, true)
}

func (m *Model) listLines(l *uistate.List, width int, focused bool) []styledLine {
	start := 0
	items := l.Items
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(items) > maxItems {
		start = l.ViewportOffset
		if start < 0 {
			start = 0
		}
		if start+maxItems > len(items) {
			start = len(items) - maxItems
			l.ViewportOffset = start
		}
		items = items[start : start+maxItems]
	}
	lines := make([]styledLine, 0, len(items))
	for i, item := range items {
		label := item.Label
		if strings.TrimSpace(label) == "" {
			label = "(unnamed)"
		}
		if item.Detail != "" {
			label += " · " + item.Detail
		}
		lines = append(lines, buildItemLine(label, start+i == l.Cursor, focused, width))
	}
	return lines
}

// buildItemLine constructs a single styledLine for a list row. width is the
// target column width; when > 0 the text is padded so that the selected
// row's background spans the full panel.
func buildItemLine(label string, selected, focused bool, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
		if !focused {
			lineStyle = styles.InactiveSelection
		}
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) detailLines() []styledLine {
	e := m.state.SelectedElement
	lines := make([]styledLine, 0, int(detailFieldCount)+4)
	if e == nil {
		for f := detailField(0); f < detailFieldCount; f++ {
			lines = append(lines, styledLine{text: padLabel(f.String()) + "–", style: styles.Disabled})
		}
		lines = append(lines, styledLine{}, styledLine{text: "(select a screen element)", style: styles.Disabled})
		return lines
	}
	focused := m.focus == PanelDetails
	for f := detailField(0); f < detailFieldCount; f++ {
		value := f.value(*e)
		if f.isEnum() {
			value = "‹ " + value + " ›"
		}
		style := styles.FieldValue
		if focused && f == m.field {
			style = styles.SelectedItem
			if m.mode == ModeEdit && (m.editor.target == editElementField || m.editor.target == editTemplate) {
				value = m.editor.input.Value()
			}
		}
		lines = append(lines, styledLine{
			text:          padLabel(f.String()) + value,
			style:         style,
			prefixStyle:   styles.FieldLabel,
			highlightFrom: labelWidth,
		})
	}
	lines = append(lines, styledLine{})
	sample := "(empty template)"
	if m.state.FileNameRendered != "" {
		sample = m.state.FileNameRendered + "." + e.FileType.Extension()
	}
	lines = append(lines, styledLine{
		text:          padLabel("Sample") + sample,
		style:         styles.Sample,
		prefixStyle:   styles.FieldLabel,
		highlightFrom: labelWidth,
	})
	tokens := render.Tokens()
	placeholders := make([]string, len(tokens))
	for i, t := range tokens {
		placeholders[i] = t.Placeholder()
	}
	lines = append(lines, styledLine{text: padLabel("Placeholders") + strings.Join(placeholders, " "), style: styles.Footer})
	return lines
}

func (m *Model) helpLines() []styledLine {
	lines := []styledLine{}
	for _, row := range strings.Split(m.help.FullHelpView(m.keys.FullHelp()), "\n") {
		lines = append(lines, styledLine{text: row, raw: true})
	}
	lines = append(lines, styledLine{}, styledLine{text: "File name placeholders", style: styles.HelpTitle})
	tokens := render.Tokens()
	rows := make([][]string, len(tokens))
	for i, t := range tokens {
		rows[i] = []string{t.Placeholder(), t.Description}
		if e := m.state.SelectedElement; e != nil {
			rows[i] = append(rows[i], strconv.Quote(t.Resolve(*e)))
		}
	}
	tokenWidth := table.Widths(rows)[0] + len(table.Gap)
	for _, row := range table.Format(rows, nil) {
		lines = append(lines, styledLine{
			text:          row,
			style:         styles.Info,
			prefixStyle:   styles.HelpToken,
			highlightFrom: tokenWidth,
		})
	}
	lines = append(lines,
		styledLine{},
		styledLine{text: "Edits apply to a working copy. ctrl+s applies and saves, ctrl+r restores the last applied settings.", style: styles.Info},
	)
	return lines
}

func padLabel(label string) string {
	runes := []rune(label)
	if len(runes) >= labelWidth {
		return string(runes[:labelWidth-1]) + " "
	}
	return label + strings.Repeat(" ", labelWidth-len(runes))
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewports()
	return nil
}

// maxVisibleItems is the number of list rows that fit inside a panel: the
// height minus title bar, bottom bar, borders and the panel heading.
func (m *Model) maxVisibleItems() int {
	_, height := m.viewSize()
	remain := height - 1 - bottomBarRows - 2 - 1
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
