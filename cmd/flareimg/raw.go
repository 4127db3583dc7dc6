package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/samber/lo"

	"github.com/scottbass3/flareimg/internal/images"
)

// rawCommand runs any registered operation with caller supplied arguments.
type rawCommand struct {
	cmd *kingpin.CmdClause

	operation *string
	args      *[]string
	query     *map[string]string
	headers   *map[string]string
	body      *string
	file      *string
}

func newRawCommand(cmd *kingpin.CmdClause) *rawCommand {
	names := lo.Map(images.Operations(), func(op images.Operation, _ int) string {
		return op.String()
	})
	return &rawCommand{
		cmd:       cmd,
		operation: cmd.Arg("operation", "Operation, one of "+strings.Join(names, ", ")).Required().Enum(names...),
		args:      cmd.Flag("arg", "Path argument, repeatable").Strings(),
		query:     cmd.Flag("query", "Query parameter, repeatable").PlaceHolder("KEY=VALUE").StringMap(),
		headers:   cmd.Flag("header", "Extra request header, repeatable").PlaceHolder("KEY=VALUE").StringMap(),
		body:      cmd.Flag("body", "JSON object merged into the request body").String(),
		file:      cmd.Flag("file", "File sent as the upload part").ExistingFile(),
	}
}

func (r *rawCommand) run(ctx context.Context, s *session) error {
	op, err := images.ParseOperation(*r.operation)
	if err != nil {
		return err
	}
	req, err := r.request()
	if err != nil {
		return err
	}

	client, err := s.client()
	if err != nil {
		return err
	}
	if op == images.OpImageDownload {
		return client.Execute(ctx, op, req, s.out)
	}

	var out json.RawMessage
	if err := client.Execute(ctx, op, req, &out); err != nil {
		return err
	}
	return printJSON(s.out, out)
}

func (r *rawCommand) request() (images.Request, error) {
	body, err := parseBody(*r.body)
	if err != nil {
		return images.Request{}, err
	}
	if *r.file != "" {
		data, err := os.ReadFile(*r.file)
		if err != nil {
			return images.Request{}, fmt.Errorf("read %s: %w", *r.file, err)
		}
		if body == nil {
			body = images.Payload{}
		}
		body["file"] = images.FilePart{Name: filepath.Base(*r.file), Data: data}
	}

	req := images.Request{
		PathArgs: *r.args,
		Headers:  *r.headers,
		Body:     body,
	}
	if len(*r.query) > 0 {
		req.Query = lo.MapValues(*r.query, func(value string, _ string) any {
			return value
		})
	}
	return req, nil
}

func parseBody(raw string) (images.Payload, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var body images.Payload
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return nil, fmt.Errorf("parse body: %w", err)
	}
	return body, nil
}
