package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderApp() string {
	sections := []string{
		m.renderTopSection(),
		m.renderMainSection(),
	}
	if m.debug {
		sections = append(sections, m.renderLogs())
	}
	return strings.Join(sections, "\n")
}

func (m Model) renderTopSection() string {
	statusValue := firstNonEmpty(m.status, "-")
	statusLine := statusStyle.Render(statusValue)
	if m.isLoading() {
		statusLine = statusLoadingStyle.Render("Loading")
		if statusValue != "-" {
			statusLine = statusLoadingStyle.Render("Loading " + statusValue)
		}
	}
	headerLine := lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render("flareimg"), statusLine)
	metaLine := lipgloss.JoinHorizontal(
		lipgloss.Top,
		metaLabelStyle.Render("Account"),
		metaValueStyle.Render(firstNonEmpty(m.account, "-")),
		metaLabelStyle.Render("Path"),
		metaValueStyle.Render(firstNonEmpty(m.currentPath(), "/")),
		metaLabelStyle.Render("Usage"),
		metaValueStyle.Render(m.usageLabel()),
	)
	lines := []string{
		headerLine,
		metaLine,
	}
	if inputLine := m.renderModeInputLine(); inputLine != "" {
		lines = append(lines, modeInputStyle.Render(inputLine))
	}
	lines = append(lines, shortcutHintStyle.Render(m.shortcutHintLine()))
	return topSectionStyle.Width(sectionPanelWidth(m.width)).Render(strings.Join(lines, "\n"))
}

func (m Model) renderMainSection() string {
	panelWidth := sectionPanelWidth(m.width)
	titleLabel := focusLabel(m.focus)
	body := m.renderBody()
	if m.helpActive {
		titleLabel = "Help"
		body = m.renderHelpSectionBody()
	}
	title := mainSectionTitleStyle.Render(strings.ToUpper(titleLabel))
	titleLine := mainSectionTitleLine.
		Width(m.mainSectionContentWidth()).
		Align(lipgloss.Center).
		Render(title)
	return mainSectionStyle.Width(panelWidth).Render(titleLine + "\n" + body)
}

func sectionPanelWidth(width int) int {
	if width <= 0 {
		width = defaultRenderWidth
	}
	panelWidth := width - 2
	if panelWidth < 24 {
		panelWidth = width
	}
	if panelWidth < 1 {
		panelWidth = 1
	}
	return panelWidth
}

func (m Model) mainSectionContentWidth() int {
	contentWidth := sectionPanelWidth(m.width) - mainSectionHChromeChars
	if contentWidth < 1 {
		return 1
	}
	return contentWidth
}

func (m Model) renderModeInputLine() string {
	if m.commandActive {
		line := m.commandInput.View()
		if len(m.commandMatches) > 0 {
			line += "   " + strings.Join(m.commandMatches, " ")
		}
		return line
	}
	if m.filterActive {
		return m.filterInput.View()
	}
	if value := strings.TrimSpace(m.filterInput.Value()); value != "" {
		return m.filterInput.Prompt + value
	}
	return ""
}

func (m Model) renderBody() string {
	view := m.table.View()
	if len(m.table.Rows()) == 0 {
		return view + "\n" + emptyStyle.Render(m.emptyBodyMessage())
	}
	return view
}
