package tui

import (
	"fmt"
)

func (m *Model) syncTable() {
	list := m.listView()
	width := m.width
	if width <= 0 {
		width = defaultRenderWidth
	}
	filterWidth := clampInt(width-10, 10, maxFilterWidth)
	m.filterInput.Width = filterWidth
	m.commandInput.Width = filterWidth

	tableWidth := max(10, m.mainSectionContentWidth())
	columns := makeColumns(m.focus, tableWidth)
	rows := normalizeTableRows(toTableRows(list.rows), len(columns))
	columnsChanged := !equalTableColumns(m.tableColumns, columns)
	if columnsChanged {
		// Rows must match the column count before the columns change.
		if len(m.table.Rows()) > 0 {
			m.table.SetRows(nil)
		}
		m.table.SetColumns(columns)
		m.tableColumns = append(m.tableColumns[:0], columns...)
	}

	if columnsChanged || !equalTableRows(m.table.Rows(), rows) {
		m.table.SetRows(rows)
	}

	tableHeight := m.tableHeight()
	if m.table.Height() != tableHeight {
		m.table.SetHeight(tableHeight)
	}
	if m.table.Width() != tableWidth {
		m.table.SetWidth(tableWidth)
	}
	cursor := m.table.Cursor()
	if len(list.rows) == 0 {
		m.table.SetCursor(0)
	} else if cursor < 0 || cursor >= len(list.rows) {
		m.table.SetCursor(clampInt(cursor, 0, len(list.rows)-1))
	}
}

func (m Model) tableHeight() int {
	if m.height <= 0 {
		return defaultTableHeight
	}
	topLines := lineCount(m.renderTopSection())
	sectionSeparators := 1
	debugLines := 0
	if m.debug {
		// Borders, title and the fixed log rows.
		debugLines = maxVisibleLogs + 3
		sectionSeparators++
	}
	available := m.height - topLines - mainSectionTitleLines - mainSectionBorderLines - debugLines - tableChromeLines - sectionSeparators
	if available < minTableHeight {
		return minTableHeight
	}
	return available
}

func focusLabel(focus Focus) string {
	switch focus {
	case FocusImageVariants:
		return "Delivery URLs"
	case FocusVariants:
		return "Variants"
	default:
		return "Images"
	}
}

func (m Model) currentPath() string {
	switch m.focus {
	case FocusImageVariants:
		if m.hasSelectedImage {
			return "images/" + m.selectedImage.ID
		}
		return "images"
	case FocusVariants:
		return "variants"
	default:
		return fmt.Sprintf("images?page=%d", m.page)
	}
}

func (m Model) usageLabel() string {
	if !m.hasStats {
		return "-"
	}
	return fmt.Sprintf("%d/%d", m.stats.Count.Current, m.stats.Count.Allowed)
}

func (m Model) emptyBodyMessage() string {
	if m.client == nil {
		return "No account configured. Add one with `flareimg accounts add`."
	}
	if m.isLoading() {
		return "Loading..."
	}
	if m.filterInput.Value() != "" {
		return "No rows match the filter."
	}
	switch m.focus {
	case FocusImageVariants:
		return "This image has no delivery URLs."
	case FocusVariants:
		return "No variants defined."
	default:
		return "No images on this page."
	}
}
