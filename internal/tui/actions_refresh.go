package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) refreshCurrent() tea.Cmd {
	if m.client == nil {
		m.status = "No account configured"
		return nil
	}
	switch m.focus {
	case FocusImageVariants:
		if m.hasSelectedImage {
			m.status = fmt.Sprintf("Refreshing image %s...", m.selectedImage.ID)
			m.startLoading()
			return loadImageCmd(m.client, m.selectedImage.ID)
		}
		fallthrough
	case FocusImages:
		m.status = fmt.Sprintf("Refreshing images page %d...", m.page)
		m.startLoading()
		return loadImagesCmd(m.client, m.page, m.pageSize)
	default:
		m.status = "Refreshing variants..."
		m.startLoading()
		return loadOverviewCmd(m.client)
	}
}

func (m *Model) startLoading() {
	m.loadingCount++
}

func (m *Model) stopLoading() {
	if m.loadingCount > 0 {
		m.loadingCount--
	}
}

func (m Model) isLoading() bool {
	return m.loadingCount > 0
}
