package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/flareimg/internal/images"
)

func TestEnterOpensDeliveryURLs(t *testing.T) {
	m := newTestModel(sampleClient())

	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	m = runCmd(t, next.(Model), cmd)

	if m.focus != FocusImageVariants {
		t.Fatalf("expected focus on delivery URLs, got %v", m.focus)
	}
	if !m.hasSelectedImage || m.selectedImage.ID != "img-1" {
		t.Fatalf("expected img-1 selected, got %q", m.selectedImage.ID)
	}
	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "thumb" {
		t.Fatalf("expected variant name thumb, got %q", rows[1][0])
	}
	if m.currentPath() != "images/img-1" {
		t.Fatalf("expected path images/img-1, got %q", m.currentPath())
	}
	if m.isLoading() {
		t.Fatalf("expected loading to stop")
	}
}

func TestEnterReportsMissingImage(t *testing.T) {
	client := sampleClient()
	m := newTestModel(client)
	client.images = nil

	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	m = runCmd(t, next.(Model), cmd)

	if m.focus != FocusImages {
		t.Fatalf("expected focus to stay on images, got %v", m.focus)
	}
	if !strings.Contains(m.status, "error 5404") {
		t.Fatalf("expected normalized error in status, got %q", m.status)
	}
}

func TestHandleEscapeFromDeliveryURLs(t *testing.T) {
	m := newTestModel(sampleClient())
	m.focus = FocusImageVariants
	m.selectedImage = m.images[0]
	m.hasSelectedImage = true
	m.syncTable()

	m.handleEscape()

	if m.focus != FocusImages {
		t.Fatalf("expected focus images, got %v", m.focus)
	}
	if m.hasSelectedImage {
		t.Fatalf("expected selected image to be cleared")
	}
	if len(m.table.Rows()) != 2 {
		t.Fatalf("expected image rows, got %d", len(m.table.Rows()))
	}
}

func TestHandleEscapeClearsFilterFirst(t *testing.T) {
	m := newTestModel(sampleClient())
	m.focus = FocusVariants
	m.filterInput.SetValue("thumb")

	m.handleEscape()

	if m.focus != FocusVariants {
		t.Fatalf("expected focus to stay on variants, got %v", m.focus)
	}
	if m.filterInput.Value() != "" {
		t.Fatalf("expected filter to be cleared")
	}
}

func TestFilterMatchesAnyColumn(t *testing.T) {
	m := newTestModel(sampleClient())
	m.filterInput.SetValue("DOG")
	m.syncTable()

	rows := m.table.Rows()
	if len(rows) != 1 || rows[0][0] != "img-2" {
		t.Fatalf("expected only img-2, got %v", rows)
	}
	image, ok := m.selectedImageRow()
	if !ok || image.ID != "img-2" {
		t.Fatalf("expected selection to map back to img-2, got %q", image.ID)
	}
}

func TestChangePage(t *testing.T) {
	client := sampleClient()
	m := newTestModel(client)

	if cmd := m.changePage(-1); cmd != nil {
		t.Fatalf("expected no command before the first page")
	}
	if cmd := m.changePage(1); cmd != nil {
		t.Fatalf("expected no command without a next page")
	}
	if m.status != "No more images" {
		t.Fatalf("unexpected status %q", m.status)
	}

	m.pageSize = 2
	m.hasNextPage = true
	cmd := m.changePage(1)
	m = runCmd(t, m, cmd)

	if m.page != 2 {
		t.Fatalf("expected page 2, got %d", m.page)
	}
	last := client.listRequests[len(client.listRequests)-1]
	if last.Page != 2 || last.PerPage != 2 {
		t.Fatalf("unexpected list request %+v", last)
	}
	if m.currentPath() != "images?page=2" {
		t.Fatalf("unexpected path %q", m.currentPath())
	}
}

func TestToggleViewLoadsVariantsAndStats(t *testing.T) {
	m := newTestModel(sampleClient())

	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	m = runCmd(t, next.(Model), cmd)

	if m.focus != FocusVariants {
		t.Fatalf("expected focus variants, got %v", m.focus)
	}
	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][0] != "public" || rows[1][0] != "thumb" {
		t.Fatalf("expected variants sorted by name, got %v", rows)
	}
	if m.usageLabel() != "2/100000" {
		t.Fatalf("unexpected usage %q", m.usageLabel())
	}

	next, cmd = m.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if cmd != nil {
		t.Fatalf("expected no reload when returning to images")
	}
	if m.focus != FocusImages {
		t.Fatalf("expected focus images, got %v", m.focus)
	}
}

func TestOverviewErrorKeepsData(t *testing.T) {
	client := sampleClient()
	client.statsErr = errors.New("boom")
	m := newTestModel(client)
	m.variants = []images.Variant{{ID: "old"}}

	m = runCmd(t, m, loadOverviewCmd(client))

	if !strings.Contains(m.status, "stats: boom") {
		t.Fatalf("unexpected status %q", m.status)
	}
	if len(m.variants) != 1 || m.variants[0].ID != "old" {
		t.Fatalf("expected previous variants to be kept")
	}
	if m.hasStats {
		t.Fatalf("expected stats to stay unset")
	}
}

func TestAppendLogKeepsTail(t *testing.T) {
	m := NewModel(nil, "", nil, nil, true, nil)
	m.logMax = 3
	for _, entry := range []string{"a", "", "b", "c", "d"} {
		m.appendLog(entry)
	}
	if strings.Join(m.logs, ",") != "b,c,d" {
		t.Fatalf("unexpected logs %v", m.logs)
	}
	if !strings.Contains(m.View(), "Requests") {
		t.Fatalf("expected debug pane in view")
	}
}

func TestViewShowsHeader(t *testing.T) {
	m := newTestModel(sampleClient())
	m.stats = images.Stats{Count: images.StatsCount{Allowed: 10, Current: 4}}
	m.hasStats = true

	view := m.View()
	for _, want := range []string{"flareimg", "prod", "4/10", "IMAGES", "img-1"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}
}

func TestNewModelWithoutClient(t *testing.T) {
	m := NewModel(nil, "", nil, nil, false, nil)
	if m.Init() != nil {
		t.Fatalf("expected no initial command")
	}
	if m.refreshCurrent() != nil {
		t.Fatalf("expected no refresh without a client")
	}
	if !strings.Contains(m.emptyBodyMessage(), "No account configured") {
		t.Fatalf("unexpected empty message %q", m.emptyBodyMessage())
	}
}

func TestFirstImageLoadSelectsFirstRow(t *testing.T) {
	client := sampleClient()
	m := NewModel(client, "prod", nil, nil, false, nil)

	next, _ := m.Update(loadImagesCmd(client, 1, defaultPageSize)())
	m = next.(Model)

	if len(m.table.Rows()) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(m.table.Rows()))
	}
	if m.table.Cursor() != 0 {
		t.Fatalf("expected cursor on first row, got %d", m.table.Cursor())
	}
	if image, ok := m.selectedImageRow(); !ok || image.ID != "img-1" {
		t.Fatalf("expected img-1 selected, got %q (ok=%v)", image.ID, ok)
	}

	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	m = runCmd(t, next.(Model), cmd)
	if m.focus != FocusImageVariants {
		t.Fatalf("expected focus on delivery URLs, got %v", m.focus)
	}
}

func TestSyncTableRecoversNegativeCursor(t *testing.T) {
	m := NewModel(nil, "", nil, nil, false, nil)
	// An empty bubbles table clamps SetCursor(0) to -1.
	m.table.SetCursor(0)
	m.images = []images.Image{{ID: "img-1"}, {ID: "img-2"}}
	m.syncTable()

	if m.table.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", m.table.Cursor())
	}
}
