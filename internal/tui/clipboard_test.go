package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCopySelection(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*Model)
		wantCopy string
	}{
		{
			name:     "image id",
			setup:    func(m *Model) {},
			wantCopy: "img-1",
		},
		{
			name: "delivery url",
			setup: func(m *Model) {
				m.focus = FocusImageVariants
				m.selectedImage = m.images[0]
				m.hasSelectedImage = true
				m.syncTable()
				m.table.SetCursor(1)
			},
			wantCopy: "https://imagedelivery.net/hash/img-1/thumb",
		},
		{
			name: "variant name",
			setup: func(m *Model) {
				m.focus = FocusVariants
				m.variants = sortedVariants(sampleClient().variants)
				m.syncTable()
			},
			wantCopy: "public",
		},
	}

	original := writeClipboard
	t.Cleanup(func() { writeClipboard = original })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var copied string
			writeClipboard = func(value string) error {
				copied = value
				return nil
			}

			m := newTestModel(sampleClient())
			tt.setup(&m)
			next, _ := m.handleKey(keyRunes("c"))
			m = next.(Model)

			if copied != tt.wantCopy {
				t.Fatalf("expected copy %q, got %q", tt.wantCopy, copied)
			}
			if m.status != "Copied "+tt.wantCopy {
				t.Fatalf("unexpected status %q", m.status)
			}
		})
	}
}

func TestCopySelectionFailures(t *testing.T) {
	original := writeClipboard
	t.Cleanup(func() { writeClipboard = original })
	writeClipboard = func(string) error { return errors.New("no display") }

	m := newTestModel(sampleClient())
	if m.copySelection() {
		t.Fatalf("expected copy to fail")
	}
	if !strings.Contains(m.status, "Failed to copy img-1: no display") {
		t.Fatalf("unexpected status %q", m.status)
	}

	empty := NewModel(nil, "", nil, nil, false, nil)
	next, _ := empty.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if status := next.(Model).status; status != "Nothing selected to copy" {
		t.Fatalf("unexpected status %q", status)
	}
}
