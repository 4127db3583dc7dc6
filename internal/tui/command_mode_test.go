package tui

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/flareimg/internal/config"
)

func typeCommand(t *testing.T, m Model, input string) (Model, tea.Cmd) {
	t.Helper()
	next, _ := m.enterCommandMode()
	m = next.(Model)
	m.commandInput.SetValue(input)
	next, cmd := m.handleCommandKey(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func TestMatchCommands(t *testing.T) {
	tests := []struct {
		prefix string
		want   []string
	}{
		{prefix: "va", want: []string{"variants", "var"}},
		{prefix: "ACC", want: []string{"account", "acc"}},
		{prefix: "zzz", want: []string{}},
	}
	for _, tt := range tests {
		got := matchCommands(tt.prefix)
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("matchCommands(%q): expected %v, got %v", tt.prefix, tt.want, got)
		}
	}
	if len(matchCommands("")) != len(commandSuggestions()) {
		t.Fatalf("expected empty prefix to match every command")
	}
}

func TestRunUnknownCommand(t *testing.T) {
	m, cmd := typeCommand(t, newTestModel(sampleClient()), "frobnicate now")
	if cmd != nil {
		t.Fatalf("expected no command")
	}
	if m.status != "Unknown command: frobnicate" {
		t.Fatalf("unexpected status %q", m.status)
	}
	if m.commandActive {
		t.Fatalf("expected command input to close")
	}
}

func TestCommandEscapeRestoresFilter(t *testing.T) {
	m := newTestModel(sampleClient())
	m.filterActive = true

	next, _ := m.enterCommandMode()
	m = next.(Model)
	if m.filterActive {
		t.Fatalf("expected filter editing to pause")
	}
	next, _ = m.handleCommandKey(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.commandActive || !m.filterActive {
		t.Fatalf("expected filter editing to resume")
	}
}

func TestCommandTabCompletes(t *testing.T) {
	m := newTestModel(sampleClient())
	next, _ := m.enterCommandMode()
	m = next.(Model)
	next, _ = m.handleCommandKey(keyRunes("st"))
	m = next.(Model)
	next, _ = m.handleCommandKey(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.commandInput.Value() != "stats" {
		t.Fatalf("expected stats, got %q", m.commandInput.Value())
	}
}

func TestImagesCommand(t *testing.T) {
	client := sampleClient()
	m, cmd := typeCommand(t, newTestModel(client), "images 3")
	m = runCmd(t, m, cmd)

	if m.page != 3 {
		t.Fatalf("expected page 3, got %d", m.page)
	}
	if client.listRequests[0].PerPage != defaultPageSize {
		t.Fatalf("expected per page %d, got %d", defaultPageSize, client.listRequests[0].PerPage)
	}

	m, cmd = typeCommand(t, m, "images zero")
	if cmd != nil || m.status != "Invalid page: zero" {
		t.Fatalf("unexpected result for invalid page: %q", m.status)
	}
}

func TestVariantsCommand(t *testing.T) {
	m, cmd := typeCommand(t, newTestModel(sampleClient()), "var")
	m = runCmd(t, m, cmd)
	if m.focus != FocusVariants {
		t.Fatalf("expected focus variants, got %v", m.focus)
	}
	if len(m.table.Rows()) != 2 {
		t.Fatalf("expected 2 variant rows, got %d", len(m.table.Rows()))
	}
}

func TestAccountCommand(t *testing.T) {
	accounts := []config.Account{
		{Name: "prod", AccountID: "acc-prod", APIKey: "k1"},
		{Name: "staging", AccountID: "acc-staging", APIKey: "k2"},
	}
	staging := sampleClient()
	var connected string
	connect := func(name string) (Client, error) {
		connected = name
		if name == "broken" {
			return nil, errors.New("no key")
		}
		return staging, nil
	}

	m := NewModel(sampleClient(), "prod", accounts, connect, false, nil)
	m.loadingCount = 0

	listed, cmd := typeCommand(t, m, "account")
	if cmd != nil || listed.status != "Accounts: prod, staging" {
		t.Fatalf("unexpected account listing %q", listed.status)
	}

	unknown, cmd := typeCommand(t, m, "account nope")
	if cmd != nil || unknown.status != "Unknown account: nope" {
		t.Fatalf("unexpected status %q", unknown.status)
	}

	switched, cmd := typeCommand(t, m, "account STAGING")
	if switched.client != nil || len(switched.images) != 0 {
		t.Fatalf("expected previous account data to be dropped")
	}
	switched = runCmd(t, switched, cmd)

	if connected != "staging" {
		t.Fatalf("expected connect for staging, got %q", connected)
	}
	if switched.account != "staging" || switched.client != Client(staging) {
		t.Fatalf("expected staging client, got account %q", switched.account)
	}
	if switched.loadingCount != 2 {
		t.Fatalf("expected images and overview loads, got %d", switched.loadingCount)
	}
}

func TestAccountCommandConnectError(t *testing.T) {
	accounts := []config.Account{{Name: "broken"}}
	connect := func(string) (Client, error) { return nil, errors.New("no key") }
	m := NewModel(nil, "", accounts, connect, false, nil)

	m, cmd := typeCommand(t, m, "account broken")
	m = runCmd(t, m, cmd)

	if !strings.Contains(m.status, "Error connecting account broken: no key") {
		t.Fatalf("unexpected status %q", m.status)
	}
	if m.client != nil || m.isLoading() {
		t.Fatalf("expected no client and no pending load")
	}
}
