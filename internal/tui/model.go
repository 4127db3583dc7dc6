package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/flareimg/internal/config"
)

// NewModel builds the browser for client. connect is used by the account
// command and may be nil.
func NewModel(client Client, account string, accounts []config.Account, connect Connector, debug bool, logCh <-chan string) Model {
	status := "No account configured"
	if client != nil {
		status = fmt.Sprintf("Account: %s", firstNonEmpty(account, "-"))
	}

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter"
	filter.CharLimit = 64
	filter.Blur()

	tbl := table.New()
	tbl.SetStyles(tableStyles())
	tbl.SetHeight(defaultTableHeight)
	tbl.Focus()

	commandInput := textinput.New()
	commandInput.Prompt = ":"
	commandInput.Placeholder = "images | variants | stats | account <name>"
	commandInput.CharLimit = 64
	commandInput.Blur()

	m := Model{
		status:       status,
		focus:        FocusImages,
		account:      strings.TrimSpace(account),
		accounts:     accounts,
		connect:      connect,
		client:       client,
		page:         1,
		pageSize:     defaultPageSize,
		filterInput:  filter,
		table:        tbl,
		commandInput: commandInput,
		debug:        debug,
		logCh:        logCh,
		logMax:       maxLogLines,
	}
	if client != nil {
		// Matches the two loads started by Init.
		m.loadingCount = 2
	}
	m.syncTable()
	return m
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.client != nil {
		cmds = append(cmds,
			loadImagesCmd(m.client, m.page, m.pageSize),
			loadOverviewCmd(m.client),
		)
	}
	if m.logCh != nil {
		cmds = append(cmds, listenLogs(m.logCh))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.updateWindowSizeMsg(msg)
	case imagesMsg:
		return m.updateImagesMsg(msg)
	case imageMsg:
		return m.updateImageMsg(msg)
	case overviewMsg:
		return m.updateOverviewMsg(msg)
	case deletedMsg:
		return m.updateDeletedMsg(msg)
	case clientMsg:
		return m.updateClientMsg(msg)
	case logMsg:
		m.appendLog(string(msg))
		return m, listenLogs(m.logCh)
	}
	return m, nil
}

func (m Model) View() string {
	base := m.renderApp()
	if m.isConfirmModalActive() {
		return m.renderModal(base, m.renderConfirmModal())
	}
	return base
}
