package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/scottbass3/flareimg/internal/images"
)

var (
	fitModes      = []string{"scale-down", "contain", "cover", "crop", "pad"}
	metadataModes = []string{"keep", "copyright", "none"}
)

type variantFlags struct {
	fit       *string
	metadata  *string
	width     *int
	height    *int
	public    *bool
	publicSet bool
}

func registerVariantFlags(cmd *kingpin.CmdClause) *variantFlags {
	flags := &variantFlags{}
	flags.fit = cmd.Flag("fit", "Resize mode").Default("scale-down").Enum(fitModes...)
	flags.metadata = cmd.Flag("metadata", "Metadata kept in delivered images").Default("none").Enum(metadataModes...)
	flags.width = cmd.Flag("width", "Maximum width in pixels").Int()
	flags.height = cmd.Flag("height", "Maximum height in pixels").Int()
	flags.public = cmd.Flag("never-require-signed-urls", "Serve this variant without signed URLs").IsSetByUser(&flags.publicSet).Bool()
	return flags
}

func (f *variantFlags) options() images.VariantOptions {
	return images.VariantOptions{
		Fit:      *f.fit,
		Metadata: *f.metadata,
		Width:    *f.width,
		Height:   *f.height,
	}
}

func (f *variantFlags) neverRequireSignedURLs() *bool {
	if !f.publicSet {
		return nil
	}
	return images.Bool(*f.public)
}

type variantsCommands struct {
	parent *kingpin.CmdClause

	list *kingpin.CmdClause

	get   *kingpin.CmdClause
	getID *string

	create      *kingpin.CmdClause
	createID    *string
	createFlags *variantFlags

	update      *kingpin.CmdClause
	updateID    *string
	updateFlags *variantFlags

	remove    *kingpin.CmdClause
	removeIDs *[]string
}

func newVariantsCommands(parent *kingpin.CmdClause) *variantsCommands {
	c := &variantsCommands{parent: parent}

	c.list = parent.Command("list", "List variants").Alias("ls")

	c.get = parent.Command("get", "Show a variant")
	c.getID = c.get.Arg("id", "Variant id").Required().String()

	c.create = parent.Command("create", "Create a variant")
	c.createID = c.create.Arg("id", "Variant id").Required().String()
	c.createFlags = registerVariantFlags(c.create)

	c.update = parent.Command("update", "Replace the options of a variant")
	c.updateID = c.update.Arg("id", "Variant id").Required().String()
	c.updateFlags = registerVariantFlags(c.update)

	c.remove = parent.Command("delete", "Delete variants").Alias("rm")
	c.removeIDs = c.remove.Arg("id", "Variant ids").Required().Strings()
	return c
}

func (c *variantsCommands) handles(cmd string) bool {
	return strings.HasPrefix(cmd, c.parent.FullCommand()+" ")
}

func (c *variantsCommands) run(ctx context.Context, s *session, cmd string) error {
	client, err := s.client()
	if err != nil {
		return err
	}

	var resp any
	switch cmd {
	case c.list.FullCommand():
		resp, err = client.ListVariants(ctx)
	case c.get.FullCommand():
		resp, err = client.GetVariant(ctx, *c.getID)
	case c.create.FullCommand():
		resp, err = client.CreateVariant(ctx, images.CreateVariantRequest{
			ID:                     *c.createID,
			Options:                c.createFlags.options(),
			NeverRequireSignedURLs: c.createFlags.neverRequireSignedURLs(),
		})
	case c.update.FullCommand():
		resp, err = client.UpdateVariant(ctx, *c.updateID, images.UpdateVariantRequest{
			Options:                c.updateFlags.options(),
			NeverRequireSignedURLs: c.updateFlags.neverRequireSignedURLs(),
		})
	case c.remove.FullCommand():
		var results []*images.Response[json.RawMessage]
		results, err = fanOut(ctx, *c.removeIDs, client.DeleteVariant)
		if err != nil {
			return err
		}
		return printResults(s, results)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		return err
	}
	return printJSON(s.out, resp)
}

func runStats(ctx context.Context, s *session) error {
	client, err := s.client()
	if err != nil {
		return err
	}
	resp, err := client.GetStats(ctx)
	if err != nil {
		return err
	}
	return printJSON(s.out, resp)
}
