package tui

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/flareimg/internal/images"
)

type fakeClient struct {
	mu sync.Mutex

	images   []images.Image
	variants map[string]images.Variant
	stats    images.Stats
	statsErr error

	listRequests []images.ListImagesRequest
	deleted      []string
}

func (f *fakeClient) ListImages(_ context.Context, req images.ListImagesRequest) (*images.Response[images.ImageList], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listRequests = append(f.listRequests, req)
	return &images.Response[images.ImageList]{Success: true, Result: images.ImageList{Images: f.images}}, nil
}

func (f *fakeClient) GetImage(_ context.Context, id string) (*images.Response[images.Image], error) {
	for _, image := range f.images {
		if image.ID == id {
			return &images.Response[images.Image]{Success: true, Result: image}, nil
		}
	}
	return nil, &images.Error{Kind: images.KindAPI, Code: "5404", Message: "Image not found", Operation: images.OpImageGet, StatusCode: 404}
}

func (f *fakeClient) DeleteImage(_ context.Context, id string) (*images.Response[json.RawMessage], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, "image:"+id)
	return &images.Response[json.RawMessage]{Success: true}, nil
}

func (f *fakeClient) ListVariants(context.Context) (*images.Response[images.VariantList], error) {
	return &images.Response[images.VariantList]{Success: true, Result: images.VariantList{Variants: f.variants}}, nil
}

func (f *fakeClient) DeleteVariant(_ context.Context, id string) (*images.Response[json.RawMessage], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, "variant:"+id)
	return &images.Response[json.RawMessage]{Success: true}, nil
}

func (f *fakeClient) GetStats(context.Context) (*images.Response[images.Stats], error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return &images.Response[images.Stats]{Success: true, Result: f.stats}, nil
}

func sampleClient() *fakeClient {
	return &fakeClient{
		images: []images.Image{
			{
				ID:       "img-1",
				Filename: "cat.png",
				Uploaded: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
				Variants: []string{
					"https://imagedelivery.net/hash/img-1/public",
					"https://imagedelivery.net/hash/img-1/thumb",
				},
			},
			{ID: "img-2", Filename: "dog.jpg", RequireSignedURLs: true},
		},
		variants: map[string]images.Variant{
			"thumb":  {ID: "thumb", Options: images.VariantOptions{Fit: "cover", Width: 100, Height: 100}},
			"public": {ID: "public", Options: images.VariantOptions{Fit: "scale-down", Metadata: "keep"}},
		},
		stats: images.Stats{Count: images.StatsCount{Allowed: 100000, Current: 2}},
	}
}

// newTestModel returns a model with the sample images loaded and no
// request in flight.
func newTestModel(client *fakeClient) Model {
	m := NewModel(client, "prod", nil, nil, false, nil)
	m.loadingCount = 0
	m.images = append(m.images, client.images...)
	m.syncTable()
	return m
}

func keyRunes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

// runCmd executes cmd and feeds the resulting message back into m.
func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command, got nil")
	}
	next, _ := m.Update(cmd())
	return next.(Model)
}
