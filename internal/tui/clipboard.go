package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
)

var writeClipboard = clipboard.WriteAll

// copySelection copies the image id, delivery URL or variant name under
// the cursor.
func (m *Model) copySelection() bool {
	value, ok := m.selectionForCopy()
	if !ok {
		m.status = "Nothing selected to copy"
		return false
	}
	if err := writeClipboard(value); err != nil {
		m.status = fmt.Sprintf("Failed to copy %s: %v", value, err)
		return false
	}
	m.status = fmt.Sprintf("Copied %s", value)
	return true
}

func (m Model) selectionForCopy() (string, bool) {
	switch m.focus {
	case FocusImages:
		image, ok := m.selectedImageRow()
		return image.ID, ok && image.ID != ""
	case FocusImageVariants:
		return m.selectedDeliveryURL()
	case FocusVariants:
		variant, ok := m.selectedVariantRow()
		return variant.ID, ok && variant.ID != ""
	default:
		return "", false
	}
}
