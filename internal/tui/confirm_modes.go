package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h", "shift+tab":
		m.confirmFocus = 0
	case "right", "l", "tab":
		m.confirmFocus = 1
	case "esc", "n":
		m.clearConfirm()
		return m, nil
	case "y":
		return m.resolveConfirm(true)
	case "enter":
		return m.resolveConfirm(m.confirmFocus == 1)
	case "ctrl+c", "q":
		if m.confirmAction == confirmActionQuit {
			return m.resolveConfirm(true)
		}
		m.clearConfirm()
		return m, nil
	}
	return m, nil
}

func (m Model) openQuitConfirm() (tea.Model, tea.Cmd) {
	m.confirmAction = confirmActionQuit
	m.confirmTitle = "Quit flareimg?"
	if m.isLoading() {
		m.confirmMessage = "A request is still in progress."
	} else {
		m.confirmMessage = "Close the current session?"
	}
	m.confirmTarget = ""
	m.confirmFocus = 0
	return m, nil
}

func (m Model) openDeleteConfirm() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusImages:
		image, ok := m.selectedImageRow()
		if !ok {
			m.status = "No image selected to delete"
			return m, nil
		}
		m.confirmAction = confirmActionDeleteImage
		m.confirmTitle = "Delete image?"
		m.confirmMessage = fmt.Sprintf("%s (%s) will be removed with all its variants.", image.ID, firstNonEmpty(image.Filename, "-"))
		m.confirmTarget = image.ID
	case FocusVariants:
		variant, ok := m.selectedVariantRow()
		if !ok {
			m.status = "No variant selected to delete"
			return m, nil
		}
		m.confirmAction = confirmActionDeleteVariant
		m.confirmTitle = "Delete variant?"
		m.confirmMessage = fmt.Sprintf("Variant %s will be removed from the account.", variant.ID)
		m.confirmTarget = variant.ID
	default:
		m.status = "Nothing to delete here"
		return m, nil
	}
	m.confirmFocus = 0
	return m, nil
}

func (m Model) resolveConfirm(accept bool) (tea.Model, tea.Cmd) {
	action := m.confirmAction
	target := m.confirmTarget
	m.clearConfirm()
	if !accept {
		return m, nil
	}
	switch action {
	case confirmActionQuit:
		return m, tea.Quit
	case confirmActionDeleteImage:
		if m.client == nil {
			return m, nil
		}
		m.status = fmt.Sprintf("Deleting image %s...", target)
		m.startLoading()
		return m, deleteImageCmd(m.client, target)
	case confirmActionDeleteVariant:
		if m.client == nil {
			return m, nil
		}
		m.status = fmt.Sprintf("Deleting variant %s...", target)
		m.startLoading()
		return m, deleteVariantCmd(m.client, target)
	default:
		return m, nil
	}
}

func (m *Model) clearConfirm() {
	m.confirmAction = confirmActionNone
	m.confirmTitle = ""
	m.confirmMessage = ""
	m.confirmTarget = ""
	m.confirmFocus = 0
}

func (m Model) isConfirmModalActive() bool {
	return m.confirmAction != confirmActionNone
}
