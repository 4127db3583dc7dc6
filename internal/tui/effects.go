package tui

import (
	"context"
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/scottbass3/flareimg/internal/images"
)

func listenLogs(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return logMsg(msg)
	}
}

func (m *Model) appendLog(entry string) {
	if entry == "" {
		return
	}
	m.logs = append(m.logs, entry)
	if m.logMax > 0 && len(m.logs) > m.logMax {
		m.logs = m.logs[len(m.logs)-m.logMax:]
	}
}

func connectCmd(connect Connector, account string) tea.Cmd {
	return func() tea.Msg {
		client, err := connect(account)
		return clientMsg{account: account, client: client, err: err}
	}
}

func loadImagesCmd(client Client, page, perPage int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := client.ListImages(ctx, images.ListImagesRequest{Page: page, PerPage: perPage})
		if err != nil {
			return imagesMsg{page: page, err: err}
		}
		return imagesMsg{page: page, images: resp.Result.Images}
	}
}

func loadImageCmd(client Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := client.GetImage(ctx, id)
		if err != nil {
			return imageMsg{err: err}
		}
		return imageMsg{image: resp.Result}
	}
}

// loadOverviewCmd fetches variants and usage statistics in parallel.
func loadOverviewCmd(client Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var msg overviewMsg
		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			resp, err := client.ListVariants(groupCtx)
			if err != nil {
				return fmt.Errorf("variants: %w", err)
			}
			msg.variants = sortedVariants(resp.Result.Variants)
			return nil
		})
		group.Go(func() error {
			resp, err := client.GetStats(groupCtx)
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}
			msg.stats = resp.Result
			return nil
		})
		msg.err = group.Wait()
		return msg
	}
}

func deleteImageCmd(client Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		_, err := client.DeleteImage(ctx, id)
		return deletedMsg{action: confirmActionDeleteImage, id: id, err: err}
	}
}

func deleteVariantCmd(client Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		_, err := client.DeleteVariant(ctx, id)
		return deletedMsg{action: confirmActionDeleteVariant, id: id, err: err}
	}
}

func sortedVariants(variants map[string]images.Variant) []images.Variant {
	if len(variants) == 0 {
		return nil
	}
	out := make([]images.Variant, 0, len(variants))
	for key, variant := range variants {
		if variant.ID == "" {
			variant.ID = key
		}
		out = append(out, variant)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
