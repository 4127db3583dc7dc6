package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/scottbass3/flareimg/internal/images"
)

func (m Model) listView() listView {
	filter := m.filterInput.Value()
	switch m.focus {
	case FocusImageVariants:
		return filterRows(deliveryHeaders(), deliveryRows(m.selectedImage), filter)
	case FocusVariants:
		return filterRows(variantHeaders(), variantRows(m.variants), filter)
	default:
		return filterRows(imageHeaders(), imageRows(m.images), filter)
	}
}

func imageHeaders() []string {
	return []string{"ID", "Filename", "Uploaded", "Signed", "Variants"}
}

func imageRows(list []images.Image) [][]string {
	if len(list) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(list))
	for _, image := range list {
		rows = append(rows, []string{
			image.ID,
			firstNonEmpty(image.Filename, "-"),
			formatTime(image.Uploaded),
			formatBool(image.RequireSignedURLs),
			formatCount(len(image.Variants)),
		})
	}
	return rows
}

func deliveryHeaders() []string {
	return []string{"Variant", "URL"}
}

func deliveryRows(image images.Image) [][]string {
	if len(image.Variants) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(image.Variants))
	for _, deliveryURL := range image.Variants {
		rows = append(rows, []string{variantNameFromURL(deliveryURL), deliveryURL})
	}
	return rows
}

func variantHeaders() []string {
	return []string{"Name", "Fit", "Width", "Height", "Metadata", "Public"}
}

func variantRows(list []images.Variant) [][]string {
	if len(list) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(list))
	for _, variant := range list {
		rows = append(rows, []string{
			variant.ID,
			firstNonEmpty(variant.Options.Fit, "-"),
			formatDimension(variant.Options.Width),
			formatDimension(variant.Options.Height),
			firstNonEmpty(variant.Options.Metadata, "-"),
			formatBool(variant.NeverRequireSignedURLs),
		})
	}
	return rows
}

// filterRows keeps rows where any cell contains filter, ignoring case.
func filterRows(headers []string, rows [][]string, filter string) listView {
	if len(rows) == 0 {
		return listView{headers: headers}
	}
	if filter == "" {
		indices := make([]int, len(rows))
		for i := range rows {
			indices[i] = i
		}
		return listView{headers: headers, rows: rows, indices: indices}
	}
	needle := strings.ToLower(filter)
	var filtered [][]string
	var indices []int
	for i, row := range rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), needle) {
				filtered = append(filtered, row)
				indices = append(indices, i)
				break
			}
		}
	}
	return listView{headers: headers, rows: filtered, indices: indices}
}

func toTableRows(rows [][]string) []table.Row {
	if len(rows) == 0 {
		return nil
	}
	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, table.Row(row))
	}
	return out
}

func normalizeTableRows(rows []table.Row, columnCount int) []table.Row {
	if len(rows) == 0 || columnCount <= 0 {
		return rows
	}
	out := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		switch {
		case len(row) == columnCount:
			out = append(out, row)
		case len(row) > columnCount:
			out = append(out, row[:columnCount])
		default:
			padded := make(table.Row, columnCount)
			copy(padded, row)
			out = append(out, padded)
		}
	}
	return out
}
