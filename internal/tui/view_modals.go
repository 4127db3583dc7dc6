package tui

import (
	"strings"

	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
)

func (m Model) renderConfirmModal() string {
	title := strings.TrimSpace(m.confirmTitle)
	if title == "" {
		title = "Confirm action"
	}
	confirmLabel := "Confirm"
	confirmButtonStyle := modalButtonStyle
	confirmButtonFocusStyle := modalButtonFocusStyle
	switch m.confirmAction {
	case confirmActionQuit:
		confirmLabel = "Quit"
		confirmButtonStyle = modalDangerButtonStyle
		confirmButtonFocusStyle = modalDangerFocusStyle
	case confirmActionDeleteImage, confirmActionDeleteVariant:
		confirmLabel = "Delete"
		confirmButtonStyle = modalDangerButtonStyle
		confirmButtonFocusStyle = modalDangerFocusStyle
	}

	cancel := modalButtonStyle.Render("Cancel")
	if m.confirmFocus == 0 {
		cancel = modalButtonFocusStyle.Render("Cancel")
	}
	confirm := confirmButtonStyle.Render(confirmLabel)
	if m.confirmFocus == 1 {
		confirm = confirmButtonFocusStyle.Render(confirmLabel)
	}
	buttonRow := lipglossv2.JoinHorizontal(
		lipglossv2.Top,
		lipglossv2.NewStyle().MarginRight(2).Render(cancel),
		confirm,
	)

	lines := []string{
		modalTitleStyle.Render(title),
	}
	if message := strings.TrimSpace(m.confirmMessage); message != "" {
		lines = append(lines, modalLabelStyle.Render(message))
	}
	lines = append(lines,
		"",
		buttonRow,
		"",
		modalHelpStyle.Render("tab/left/right move  enter choose  y/n quick select"),
	)
	return m.renderModalCard(strings.Join(lines, "\n"), 64)
}

// renderModal draws modal centered over a dimmed base view.
func (m Model) renderModal(base, modal string) string {
	width, height := m.modalViewport(base)
	background := lipglossv2.Place(width, height, lipglossv2.Left, lipglossv2.Top, modalBackdropStyle.Render(base))
	canvas := lipglossv2.NewCanvas(lipglossv2.NewLayer(background))
	canvas.AddLayers(
		lipglossv2.NewLayer(modal).
			X(max(0, (width-lipglossv2.Width(modal))/2)).
			Y(max(0, (height-lipglossv2.Height(modal))/2)).
			Z(1),
	)
	return canvas.Render()
}

func (m Model) renderModalCard(content string, maxWidth int) string {
	return modalPanelStyle.Width(m.modalWidth(maxWidth)).Render(content)
}

func (m Model) modalWidth(maxWidth int) int {
	width, _ := m.modalViewport("")
	if width <= 2 {
		return width
	}
	modalWidth := width - 8
	if modalWidth < 24 {
		modalWidth = width - 2
	}
	if maxWidth > 0 && modalWidth > maxWidth {
		modalWidth = maxWidth
	}
	if modalWidth < 12 {
		modalWidth = 12
	}
	return modalWidth
}

func (m Model) modalViewport(base string) (int, int) {
	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height
	if height <= 0 {
		height = max(24, lineCount(base))
	}
	return width, height
}
