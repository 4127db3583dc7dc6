package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) renderHelpSectionBody() string {
	lines := []string{
		helpFooterStyle.Render(fmt.Sprintf("Current page: %s", m.shortcutPageTitle(false))),
		"",
		helpHeadingStyle.Render("Shortcuts"),
	}
	lines = append(lines, renderHelpEntries(m.currentPageHelpEntries())...)
	lines = append(lines,
		"",
		helpHeadingStyle.Render("Commands"),
	)
	lines = append(lines, renderCommandHelpEntries(availableCommands())...)
	lines = append(lines,
		"",
		helpFooterStyle.Render("Press esc, ?, f1, or enter to close help."),
	)
	return strings.Join(lines, "\n")
}

func renderHelpEntries(entries []helpEntry) []string {
	if len(entries) == 0 {
		return []string{helpFooterStyle.Render("No shortcuts available.")}
	}
	maxKey := 8
	for _, entry := range entries {
		maxKey = max(maxKey, len(entry.Keys))
	}
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, helpItemStyle.Render(fmt.Sprintf("%-*s  %s", maxKey, entry.Keys, entry.Action)))
	}
	return lines
}

func renderCommandHelpEntries(entries []commandHelp) []string {
	if len(entries) == 0 {
		return []string{helpFooterStyle.Render("No commands available.")}
	}
	maxCommand := 12
	for _, entry := range entries {
		maxCommand = max(maxCommand, len(entry.Command))
	}
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, helpItemStyle.Render(fmt.Sprintf(":%-*s  %s", maxCommand, entry.Command, entry.Usage)))
	}
	return lines
}

func (m Model) openHelp() (tea.Model, tea.Cmd) {
	m.helpActive = true
	return m, nil
}

func (m Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isShortcut(msg, shortcutCloseHelp):
		m.helpActive = false
		return m, nil
	case isShortcut(msg, shortcutQuit):
		m.helpActive = false
		return m.openQuitConfirm()
	default:
		return m, nil
	}
}

func isHelpShortcut(msg tea.KeyMsg) bool {
	return isShortcut(msg, shortcutOpenHelp)
}
