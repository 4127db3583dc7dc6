package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"golang.org/x/sync/errgroup"

	"github.com/scottbass3/flareimg/internal/images"
)

const maxParallel = 8

// uploadFlags are shared by the commands that create images.
type uploadFlags struct {
	id        *string
	name      *string
	metadata  *map[string]string
	signed    *bool
	signedSet bool
}

func registerUploadFlags(cmd *kingpin.CmdClause) *uploadFlags {
	flags := &uploadFlags{}
	flags.id = cmd.Flag("id", "Custom image id").String()
	flags.name = cmd.Flag("name", "File name sent with the upload").String()
	flags.metadata = cmd.Flag("meta", "Metadata entry, repeatable").PlaceHolder("KEY=VALUE").StringMap()
	flags.signed = cmd.Flag("require-signed-urls", "Require signed delivery URLs").IsSetByUser(&flags.signedSet).Bool()
	return flags
}

func (f *uploadFlags) request() images.CreateImageRequest {
	req := images.CreateImageRequest{
		ID:       strings.TrimSpace(*f.id),
		FileName: strings.TrimSpace(*f.name),
		Metadata: metadataPayload(*f.metadata),
	}
	if f.signedSet {
		req.RequireSignedURLs = images.Bool(*f.signed)
	}
	return req
}

type imagesCommands struct {
	parent *kingpin.CmdClause

	list        *kingpin.CmdClause
	listPage    *int
	listPerPage *int

	get    *kingpin.CmdClause
	getIDs *[]string

	download    *kingpin.CmdClause
	downloadID  *string
	downloadOut *string

	upload      *kingpin.CmdClause
	uploadPath  *string
	uploadFlags *uploadFlags

	uploadURL      *kingpin.CmdClause
	uploadURLArg   *string
	uploadURLFlags *uploadFlags

	direct       *kingpin.CmdClause
	directFlags  *uploadFlags
	directExpiry *time.Duration

	update          *kingpin.CmdClause
	updateID        *string
	updateMetadata  *map[string]string
	updateSigned    *bool
	updateSignedSet bool

	remove    *kingpin.CmdClause
	removeIDs *[]string
}

func newImagesCommands(parent *kingpin.CmdClause) *imagesCommands {
	c := &imagesCommands{parent: parent}

	c.list = parent.Command("list", "List images").Alias("ls")
	c.listPage = c.list.Flag("page", "Page number").Default("1").Int()
	c.listPerPage = c.list.Flag("per-page", "Images per page").Default("10").Int()

	c.get = parent.Command("get", "Show image details")
	c.getIDs = c.get.Arg("id", "Image ids").Required().Strings()

	c.download = parent.Command("download", "Download the original image")
	c.downloadID = c.download.Arg("id", "Image id").Required().String()
	c.downloadOut = c.download.Flag("out", "Output file, - for stdout").Short('o').Default("-").String()

	c.upload = parent.Command("upload", "Upload an image file")
	c.uploadPath = c.upload.Arg("file", "Image file").Required().ExistingFile()
	c.uploadFlags = registerUploadFlags(c.upload)

	c.uploadURL = parent.Command("upload-url", "Import an image from a URL")
	c.uploadURLArg = c.uploadURL.Arg("url", "Image URL").Required().String()
	c.uploadURLFlags = registerUploadFlags(c.uploadURL)

	c.direct = parent.Command("direct-upload", "Reserve a one-time upload URL")
	c.directFlags = registerUploadFlags(c.direct)
	c.directExpiry = c.direct.Flag("expiry", "Time until the upload URL expires (default 30m)").Duration()

	c.update = parent.Command("update", "Update image metadata or access")
	c.updateID = c.update.Arg("id", "Image id").Required().String()
	c.updateMetadata = c.update.Flag("meta", "Metadata entry, repeatable").PlaceHolder("KEY=VALUE").StringMap()
	c.updateSigned = c.update.Flag("require-signed-urls", "Require signed delivery URLs").IsSetByUser(&c.updateSignedSet).Bool()

	c.remove = parent.Command("delete", "Delete images").Alias("rm")
	c.removeIDs = c.remove.Arg("id", "Image ids").Required().Strings()
	return c
}

func (c *imagesCommands) handles(cmd string) bool {
	return strings.HasPrefix(cmd, c.parent.FullCommand()+" ")
}

func (c *imagesCommands) run(ctx context.Context, s *session, cmd string) error {
	client, err := s.client()
	if err != nil {
		return err
	}

	switch cmd {
	case c.list.FullCommand():
		resp, err := client.ListImages(ctx, images.ListImagesRequest{Page: *c.listPage, PerPage: *c.listPerPage})
		if err != nil {
			return err
		}
		return printJSON(s.out, resp)
	case c.get.FullCommand():
		results, err := fanOut(ctx, *c.getIDs, client.GetImage)
		if err != nil {
			return err
		}
		return printResults(s, results)
	case c.download.FullCommand():
		data, err := client.DownloadImage(ctx, *c.downloadID)
		if err != nil {
			return err
		}
		if *c.downloadOut == "-" {
			_, err = s.out.Write(data)
			return err
		}
		return os.WriteFile(*c.downloadOut, data, 0o644)
	case c.upload.FullCommand():
		resp, err := client.CreateImageFromFile(ctx, c.uploadFlags.request(), *c.uploadPath)
		if err != nil {
			return err
		}
		return printJSON(s.out, resp)
	case c.uploadURL.FullCommand():
		resp, err := client.CreateImageFromURL(ctx, c.uploadURLFlags.request(), *c.uploadURLArg)
		if err != nil {
			return err
		}
		return printJSON(s.out, resp)
	case c.direct.FullCommand():
		resp, err := client.CreateDirectUpload(ctx, c.directUploadRequest(time.Now()))
		if err != nil {
			return err
		}
		return printJSON(s.out, resp)
	case c.update.FullCommand():
		req := images.UpdateImageRequest{Metadata: metadataPayload(*c.updateMetadata)}
		if c.updateSignedSet {
			req.RequireSignedURLs = images.Bool(*c.updateSigned)
		}
		resp, err := client.UpdateImage(ctx, *c.updateID, req)
		if err != nil {
			return err
		}
		return printJSON(s.out, resp)
	case c.remove.FullCommand():
		results, err := fanOut(ctx, *c.removeIDs, client.DeleteImage)
		if err != nil {
			return err
		}
		return printResults(s, results)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (c *imagesCommands) directUploadRequest(now time.Time) images.CreateDirectUploadRequest {
	upload := c.directFlags.request()
	req := images.CreateDirectUploadRequest{
		ID:                upload.ID,
		Metadata:          upload.Metadata,
		RequireSignedURLs: upload.RequireSignedURLs,
	}
	if *c.directExpiry > 0 {
		expiry := now.Add(*c.directExpiry).UTC()
		req.Expiry = &expiry
	}
	return req
}

// fanOut calls fn once per id, at most maxParallel at a time, and returns
// the results in id order. The first failure cancels the rest.
func fanOut[T any](ctx context.Context, ids []string, fn func(context.Context, string) (T, error)) ([]T, error) {
	results := make([]T, len(ids))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxParallel)
	for i, id := range ids {
		group.Go(func() error {
			result, err := fn(groupCtx, id)
			if err != nil {
				return fmt.Errorf("%s: %w", id, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func printResults[T any](s *session, results []T) error {
	if len(results) == 1 {
		return printJSON(s.out, results[0])
	}
	return printJSON(s.out, results)
}

func metadataPayload(entries map[string]string) map[string]any {
	if len(entries) == 0 {
		return nil
	}
	out := make(map[string]any, len(entries))
	for key, value := range entries {
		out[key] = value
	}
	return out
}
