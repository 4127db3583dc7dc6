package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/flareimg/internal/images"
)

func (m Model) updateKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.helpActive {
		return m.handleHelpKey(msg)
	}
	if isHelpShortcut(msg) &&
		!m.commandActive &&
		!m.filterActive &&
		!m.isConfirmModalActive() {
		return m.openHelp()
	}
	if m.isConfirmModalActive() {
		return m.handleConfirmKey(msg)
	}
	if m.commandActive {
		return m.handleCommandKey(msg)
	}
	return m.handleKey(msg)
}

func (m Model) updateWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.syncTable()
	return m, nil
}

func (m Model) updateImagesMsg(msg imagesMsg) (tea.Model, tea.Cmd) {
	m.stopLoading()
	if msg.err != nil {
		m.status = fmt.Sprintf("Error loading images: %v", msg.err)
		m.syncTable()
		return m, nil
	}
	m.images = msg.images
	m.page = msg.page
	m.hasNextPage = len(msg.images) >= m.pageSize
	m.selectedImage = images.Image{}
	m.hasSelectedImage = false
	m.focus = FocusImages
	m.status = fmt.Sprintf("Loaded %d images (page %d)", len(msg.images), msg.page)
	m.clearFilter()
	m.syncTable()
	m.table.SetCursor(0)
	return m, nil
}

func (m Model) updateImageMsg(msg imageMsg) (tea.Model, tea.Cmd) {
	m.stopLoading()
	if msg.err != nil {
		m.status = fmt.Sprintf("Error loading image: %v", msg.err)
		m.syncTable()
		return m, nil
	}
	m.selectedImage = msg.image
	m.hasSelectedImage = true
	for i := range m.images {
		if m.images[i].ID == msg.image.ID {
			m.images[i] = msg.image
			break
		}
	}
	m.focus = FocusImageVariants
	m.status = fmt.Sprintf("Loaded %d delivery URLs for %s", len(msg.image.Variants), msg.image.ID)
	m.clearFilter()
	m.syncTable()
	m.table.SetCursor(0)
	return m, nil
}

func (m Model) updateOverviewMsg(msg overviewMsg) (tea.Model, tea.Cmd) {
	m.stopLoading()
	if msg.err != nil {
		m.status = fmt.Sprintf("Error loading overview: %v", msg.err)
		m.syncTable()
		return m, nil
	}
	m.variants = msg.variants
	m.stats = msg.stats
	m.hasStats = true
	if m.focus == FocusVariants {
		m.status = fmt.Sprintf("Loaded %d variants", len(msg.variants))
	}
	m.syncTable()
	return m, nil
}

func (m Model) updateDeletedMsg(msg deletedMsg) (tea.Model, tea.Cmd) {
	m.stopLoading()
	kind := "image"
	if msg.action == confirmActionDeleteVariant {
		kind = "variant"
	}
	if msg.err != nil {
		m.status = fmt.Sprintf("Error deleting %s %s: %v", kind, msg.id, msg.err)
		m.syncTable()
		return m, nil
	}
	switch msg.action {
	case confirmActionDeleteImage:
		m.images = removeImage(m.images, msg.id)
		if m.hasSelectedImage && m.selectedImage.ID == msg.id {
			m.selectedImage = images.Image{}
			m.hasSelectedImage = false
			m.focus = FocusImages
		}
		if m.hasStats && m.stats.Count.Current > 0 {
			m.stats.Count.Current--
		}
	case confirmActionDeleteVariant:
		m.variants = removeVariant(m.variants, msg.id)
	}
	m.status = fmt.Sprintf("Deleted %s %s", kind, msg.id)
	m.syncTable()
	return m, nil
}

func (m Model) updateClientMsg(msg clientMsg) (tea.Model, tea.Cmd) {
	m.stopLoading()
	if msg.err != nil {
		m.status = fmt.Sprintf("Error connecting account %s: %v", msg.account, msg.err)
		m.syncTable()
		return m, nil
	}
	m.client = msg.client
	m.account = msg.account
	m.status = fmt.Sprintf("Account: %s", msg.account)
	m.startLoading()
	m.startLoading()
	m.syncTable()
	return m, tea.Batch(
		loadImagesCmd(m.client, 1, m.pageSize),
		loadOverviewCmd(m.client),
	)
}

func removeImage(list []images.Image, id string) []images.Image {
	out := list[:0]
	for _, image := range list {
		if image.ID != id {
			out = append(out, image)
		}
	}
	return out
}

func removeVariant(list []images.Variant, id string) []images.Variant {
	out := list[:0]
	for _, variant := range list {
		if variant.ID != id {
			out = append(out, variant)
		}
	}
	return out
}
