package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

func makeColumns(focus Focus, width int) []table.Column {
	contentWidth := func(columnCount int) int {
		if columnCount <= 0 {
			return max(1, width)
		}
		// Cells are padded by one on each side.
		available := width - (2 * columnCount)
		if available < columnCount {
			return columnCount
		}
		return available
	}

	timeWidth := 16
	flagWidth := 6
	countWidth := 8
	nameWidth := 16

	switch focus {
	case FocusImageVariants:
		content := contentWidth(2)
		return []table.Column{
			{Title: "Variant", Width: nameWidth},
			{Title: "URL", Width: max(1, content-nameWidth)},
		}
	case FocusVariants:
		fitWidth := 12
		sizeWidth := 7
		metadataWidth := 10
		fixed := fitWidth + 2*sizeWidth + metadataWidth + flagWidth
		content := contentWidth(6)
		return []table.Column{
			{Title: "Name", Width: max(1, content-fixed)},
			{Title: "Fit", Width: fitWidth},
			{Title: "Width", Width: sizeWidth},
			{Title: "Height", Width: sizeWidth},
			{Title: "Metadata", Width: metadataWidth},
			{Title: "Public", Width: flagWidth},
		}
	default:
		filenameWidth := 24
		fixed := filenameWidth + timeWidth + flagWidth + countWidth
		content := contentWidth(5)
		return []table.Column{
			{Title: "ID", Width: max(1, content-fixed)},
			{Title: "Filename", Width: filenameWidth},
			{Title: "Uploaded", Width: timeWidth},
			{Title: "Signed", Width: flagWidth},
			{Title: "Variants", Width: countWidth},
		}
	}
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Foreground(colorTitleText).
		Background(colorSurface2).
		Bold(true)
	styles.Cell = lipgloss.NewStyle().Padding(0, 1)
	styles.Selected = styles.Selected.
		Foreground(colorSelected).
		Background(colorAccent).
		Bold(true)
	return styles
}
