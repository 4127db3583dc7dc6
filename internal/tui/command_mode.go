package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/flareimg/internal/config"
	"github.com/scottbass3/flareimg/internal/images"
)

func (m Model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.openQuitConfirm()
	case "esc":
		return m.exitCommandMode()
	case "tab":
		if len(m.commandMatches) > 0 {
			m.commandInput.SetValue(m.commandMatches[m.commandIndex])
			m.commandInput.CursorEnd()
			return m, nil
		}
	case "up":
		if len(m.commandMatches) > 0 {
			m.commandIndex--
			if m.commandIndex < 0 {
				m.commandIndex = len(m.commandMatches) - 1
			}
		}
		return m, nil
	case "down":
		if len(m.commandMatches) > 0 {
			m.commandIndex = (m.commandIndex + 1) % len(m.commandMatches)
		}
		return m, nil
	case "enter":
		return m.runCommand()
	}

	before := m.commandInput.Value()
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	if m.commandInput.Value() != before {
		m.commandIndex = 0
		m.commandMatches = matchCommands(commandToken(m.commandInput.Value()))
	}
	return m, cmd
}

func (m Model) enterCommandMode() (tea.Model, tea.Cmd) {
	m.commandPrevFilterActive = m.filterActive
	if m.filterActive {
		m.stopFilterEditing()
	}
	m.commandActive = true
	m.commandInput.SetValue("")
	cmd := m.commandInput.Focus()
	m.commandInput.CursorEnd()
	m.commandMatches = matchCommands("")
	m.commandIndex = 0
	m.syncTable()
	return m, cmd
}

func (m Model) exitCommandMode() (tea.Model, tea.Cmd) {
	m.resetCommandInput()
	var cmd tea.Cmd
	if m.commandPrevFilterActive {
		m.filterActive = true
		cmd = m.filterInput.Focus()
		m.filterInput.CursorEnd()
	}
	m.commandPrevFilterActive = false
	m.syncTable()
	return m, cmd
}

func (m Model) runCommand() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.commandInput.Value())
	if input == "" {
		return m.exitCommandMode()
	}

	m.resetCommandInput()
	m.commandPrevFilterActive = false
	m.syncTable()

	cmdName, args := parseCommand(input)
	command, ok := resolveCommand(cmdName)
	if !ok {
		m.status = fmt.Sprintf("Unknown command: %s", cmdName)
		return m, nil
	}
	return command.Run(m, args)
}

func (m *Model) resetCommandInput() {
	m.commandActive = false
	m.commandInput.Blur()
	m.commandInput.SetValue("")
	m.commandMatches = nil
	m.commandIndex = 0
}

// switchAccount drops the loaded data and connects to the named account.
func (m Model) switchAccount(name string) (tea.Model, tea.Cmd) {
	index, ok := config.IndexOf(m.accounts, name)
	if !ok {
		m.status = fmt.Sprintf("Unknown account: %s", strings.TrimSpace(name))
		return m, nil
	}
	if m.connect == nil {
		m.status = "Account switching is not available"
		return m, nil
	}
	account := m.accounts[index].Name

	m.client = nil
	m.account = account
	m.images = nil
	m.page = 1
	m.hasNextPage = false
	m.variants = nil
	m.stats = images.Stats{}
	m.hasStats = false
	m.selectedImage = images.Image{}
	m.hasSelectedImage = false
	m.focus = FocusImages
	m.clearFilter()
	m.status = fmt.Sprintf("Connecting to %s...", account)
	m.startLoading()
	m.syncTable()
	return m, connectCmd(m.connect, account)
}

func accountNames(m Model) []string {
	if len(m.accounts) == 0 {
		return nil
	}
	names := make([]string, 0, len(m.accounts))
	for _, account := range m.accounts {
		if account.Name != "" {
			names = append(names, account.Name)
		}
	}
	return names
}

func parseCommand(input string) (string, []string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

func commandToken(input string) string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
