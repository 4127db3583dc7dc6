package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/flareimg/internal/images"
)

type commandDescriptor struct {
	Name    string
	Aliases []string
	Help    []commandHelp
	Run     func(Model, []string) (tea.Model, tea.Cmd)
}

func commandRegistry() []commandDescriptor {
	return []commandDescriptor{
		{
			Name: "help",
			Help: []commandHelp{
				{Command: "help", Usage: "Open the help page"},
			},
			Run: runHelpCommand,
		},
		{
			Name:    "images",
			Aliases: []string{"img"},
			Help: []commandHelp{
				{Command: "images", Usage: "Show the first page of images"},
				{Command: "images <page>", Usage: "Show a page of images"},
			},
			Run: runImagesCommand,
		},
		{
			Name:    "variants",
			Aliases: []string{"var"},
			Help: []commandHelp{
				{Command: "variants", Usage: "Show the variant list"},
			},
			Run: runVariantsCommand,
		},
		{
			Name: "stats",
			Help: []commandHelp{
				{Command: "stats", Usage: "Refresh usage statistics"},
			},
			Run: runStatsCommand,
		},
		{
			Name:    "account",
			Aliases: []string{"acc"},
			Help: []commandHelp{
				{Command: "account", Usage: "List configured accounts"},
				{Command: "account <name>", Usage: "Switch to account by name"},
			},
			Run: runAccountCommand,
		},
	}
}

func availableCommands() []commandHelp {
	registry := commandRegistry()
	entries := make([]commandHelp, 0, len(registry)*2)
	for _, cmd := range registry {
		entries = append(entries, cmd.Help...)
	}
	return entries
}

func resolveCommand(name string) (commandDescriptor, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return commandDescriptor{}, false
	}
	for _, descriptor := range commandRegistry() {
		if descriptor.Name == needle {
			return descriptor, true
		}
		for _, alias := range descriptor.Aliases {
			if alias == needle {
				return descriptor, true
			}
		}
	}
	return commandDescriptor{}, false
}

func commandSuggestions() []string {
	registry := commandRegistry()
	out := make([]string, 0, len(registry)*2)
	for _, descriptor := range registry {
		out = append(out, descriptor.Name)
		out = append(out, descriptor.Aliases...)
	}
	return out
}

func matchCommands(prefix string) []string {
	candidates := commandSuggestions()
	if prefix == "" {
		return candidates
	}
	prefix = strings.ToLower(prefix)
	out := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, prefix) {
			out = append(out, candidate)
		}
	}
	return out
}

func runHelpCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	return m.openHelp()
}

func runImagesCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	page := 1
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 1 {
			m.status = fmt.Sprintf("Invalid page: %s", args[0])
			return m, nil
		}
		page = parsed
	}
	if m.client == nil {
		m.status = "No account configured"
		return m, nil
	}
	m.focus = FocusImages
	m.clearFilter()
	m.status = fmt.Sprintf("Loading images page %d...", page)
	m.startLoading()
	m.syncTable()
	return m, loadImagesCmd(m.client, page, m.pageSize)
}

func runVariantsCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	m.focus = FocusVariants
	m.selectedImage = images.Image{}
	m.hasSelectedImage = false
	m.clearFilter()
	m.syncTable()
	m.table.SetCursor(0)
	if m.client == nil {
		m.status = "No account configured"
		return m, nil
	}
	m.status = "Refreshing variants..."
	m.startLoading()
	return m, loadOverviewCmd(m.client)
}

func runStatsCommand(m Model, _ []string) (tea.Model, tea.Cmd) {
	if m.client == nil {
		m.status = "No account configured"
		return m, nil
	}
	m.status = "Refreshing usage statistics..."
	m.startLoading()
	return m, loadOverviewCmd(m.client)
}

func runAccountCommand(m Model, args []string) (tea.Model, tea.Cmd) {
	if len(args) == 0 {
		names := accountNames(m)
		if len(names) == 0 {
			m.status = "No accounts configured"
		} else {
			m.status = "Accounts: " + strings.Join(names, ", ")
		}
		return m, nil
	}
	return m.switchAccount(strings.Join(args, " "))
}
