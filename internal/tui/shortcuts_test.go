package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCurrentPageHelpEntriesArePageScoped(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*Model)
		wantIn     []string
		wantAbsent []string
	}{
		{
			name:  "images",
			setup: func(m *Model) {},
			wantIn: []string{
				"Open selected image delivery URLs",
				"Load next page of images",
				"Delete selected item",
			},
			wantAbsent: []string{
				"Go back one level",
			},
		},
		{
			name: "delivery urls",
			setup: func(m *Model) {
				m.focus = FocusImageVariants
			},
			wantIn: []string{
				"Go back one level",
				"Copy selected id or URL",
			},
			wantAbsent: []string{
				"Delete selected item",
				"Load next page of images",
			},
		},
		{
			name: "variants",
			setup: func(m *Model) {
				m.focus = FocusVariants
			},
			wantIn: []string{
				"Delete selected item",
				"Switch between images and variants",
			},
			wantAbsent: []string{
				"Open selected image delivery URLs",
			},
		},
		{
			name: "filter input",
			setup: func(m *Model) {
				m.filterActive = true
			},
			wantIn: []string{
				"Set filter text",
				"Apply and close filter input",
				"Open command input",
			},
			wantAbsent: []string{
				"Open help",
				"Refresh current data",
			},
		},
		{
			name: "command input",
			setup: func(m *Model) {
				m.commandActive = true
			},
			wantIn: []string{
				"Autocomplete command",
				"Run command",
			},
			wantAbsent: []string{
				"Filter current list",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(nil, "", nil, nil, false, nil)
			tt.setup(&m)
			var actions []string
			for _, entry := range m.currentPageHelpEntries() {
				actions = append(actions, entry.Action)
			}
			joined := strings.Join(actions, "\n")
			for _, want := range tt.wantIn {
				if !strings.Contains(joined, want) {
					t.Fatalf("expected %q in help entries, got:\n%s", want, joined)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(joined, absent) {
					t.Fatalf("expected %q to be absent, got:\n%s", absent, joined)
				}
			}
		})
	}
}

func TestShortcutHintLine(t *testing.T) {
	m := NewModel(nil, "", nil, nil, false, nil)
	hint := m.shortcutHintLine()
	if !strings.HasPrefix(hint, "Shortcuts: ") {
		t.Fatalf("unexpected prefix in %q", hint)
	}
	for _, want := range []string{"? help", "n next", "x delete", "tab switch"} {
		if !strings.Contains(hint, want) {
			t.Fatalf("expected %q in %q", want, hint)
		}
	}

	m.helpActive = true
	if hint := m.shortcutHintLine(); hint != "Help: esc/? close   q quit" {
		t.Fatalf("unexpected help hint %q", hint)
	}
}

func TestHelpOpensAndCloses(t *testing.T) {
	m := NewModel(nil, "", nil, nil, false, nil)

	next, _ := m.Update(keyRunes("?"))
	m = next.(Model)
	if !m.helpActive {
		t.Fatalf("expected help to open")
	}
	if !strings.Contains(m.renderHelpSectionBody(), ":account <name>") {
		t.Fatalf("expected command help in help page")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.helpActive {
		t.Fatalf("expected help to close")
	}
}

func TestHelpShortcutIgnoredWhileFiltering(t *testing.T) {
	m := NewModel(nil, "", nil, nil, false, nil)
	m.filterActive = true
	m.filterInput.Focus()

	next, _ := m.Update(keyRunes("?"))
	m = next.(Model)
	if m.helpActive {
		t.Fatalf("expected help to stay closed")
	}
	if m.filterInput.Value() != "?" {
		t.Fatalf("expected ? typed into filter, got %q", m.filterInput.Value())
	}
}
