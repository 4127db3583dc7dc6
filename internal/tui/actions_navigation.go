package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/flareimg/internal/images"
)

func (m *Model) handleEscape() tea.Cmd {
	if strings.TrimSpace(m.filterInput.Value()) != "" {
		m.clearFilter()
		m.syncTable()
		return nil
	}
	switch m.focus {
	case FocusImageVariants:
		m.focus = FocusImages
		m.selectedImage = images.Image{}
		m.hasSelectedImage = false
		m.status = fmt.Sprintf("Images page %d", m.page)
		m.syncTable()
		m.table.SetCursor(0)
	case FocusVariants:
		m.focus = FocusImages
		m.status = fmt.Sprintf("Images page %d", m.page)
		m.syncTable()
		m.table.SetCursor(0)
	}
	return nil
}

func (m *Model) handleEnter() tea.Cmd {
	if m.focus != FocusImages {
		return nil
	}
	image, ok := m.selectedImageRow()
	if !ok {
		return nil
	}
	if m.client == nil {
		m.status = "No account configured"
		return nil
	}
	m.status = fmt.Sprintf("Loading image %s...", image.ID)
	m.startLoading()
	return loadImageCmd(m.client, image.ID)
}

// toggleView switches between the image list and the variant list.
func (m *Model) toggleView() tea.Cmd {
	m.clearFilter()
	m.table.SetCursor(0)
	if m.focus == FocusVariants {
		m.focus = FocusImages
		m.status = fmt.Sprintf("Images page %d", m.page)
		m.syncTable()
		return nil
	}
	m.focus = FocusVariants
	m.selectedImage = images.Image{}
	m.hasSelectedImage = false
	m.status = fmt.Sprintf("%d variants", len(m.variants))
	m.syncTable()
	if len(m.variants) == 0 && m.client != nil {
		m.startLoading()
		return loadOverviewCmd(m.client)
	}
	return nil
}

func (m *Model) changePage(delta int) tea.Cmd {
	if m.focus != FocusImages {
		return nil
	}
	if m.client == nil {
		m.status = "No account configured"
		return nil
	}
	next := m.page + delta
	if next < 1 {
		m.status = "Already on the first page"
		return nil
	}
	if delta > 0 && !m.hasNextPage {
		m.status = "No more images"
		return nil
	}
	m.status = fmt.Sprintf("Loading images page %d...", next)
	m.startLoading()
	return loadImagesCmd(m.client, next, m.pageSize)
}

func (m Model) selectedIndex() (int, bool) {
	list := m.listView()
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(list.indices) {
		return 0, false
	}
	index := list.indices[cursor]
	if index < 0 {
		return 0, false
	}
	return index, true
}

func (m Model) selectedImageRow() (images.Image, bool) {
	index, ok := m.selectedIndex()
	if !ok || m.focus != FocusImages || index >= len(m.images) {
		return images.Image{}, false
	}
	return m.images[index], true
}

func (m Model) selectedVariantRow() (images.Variant, bool) {
	index, ok := m.selectedIndex()
	if !ok || m.focus != FocusVariants || index >= len(m.variants) {
		return images.Variant{}, false
	}
	return m.variants[index], true
}

func (m Model) selectedDeliveryURL() (string, bool) {
	index, ok := m.selectedIndex()
	if !ok || m.focus != FocusImageVariants || !m.hasSelectedImage || index >= len(m.selectedImage.Variants) {
		return "", false
	}
	return m.selectedImage.Variants[index], true
}
