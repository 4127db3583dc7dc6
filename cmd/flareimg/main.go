package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/alecthomas/kingpin/v2"
	log "github.com/sirupsen/logrus"

	"github.com/scottbass3/flareimg/internal/config"
	"github.com/scottbass3/flareimg/internal/images"
	"github.com/scottbass3/flareimg/internal/logutils"
)

func main() {
	var (
		app = kingpin.New("flareimg", "A command-line client for Cloudflare Images")

		configPath   = app.Flag("config", "Path to config file").Default(config.DefaultPath()).String()
		accountName  = app.Flag("account", "Configured account to use").Short('a').Envar("FLAREIMG_ACCOUNT").String()
		apiKey       = app.Flag("api-key", "API token, overrides the configured account").String()
		accountID    = app.Flag("account-id", "Account id, overrides the configured account").String()
		baseURL      = app.Flag("base-url", "API root").Default(images.DefaultBaseURL).Envar("FLAREIMG_BASE_URL").String()
		logResponses = app.Flag("log-responses", "Log every successful response at debug level").Bool()
		logErrors    = app.Flag("log-errors", "Log every failed request").Bool()
		// Logging
		logLevel  = app.Flag("log-level", "Log-Level, must be one of [DEBUG, INFO, WARN, ERROR]").Default("INFO").Envar("LOG_LEVEL").Enum(logutils.Levels...)
		logFormat = app.Flag("log-format", "Log-Format, must be one of [TEXT, JSON]").Default("TEXT").Envar("LOG_FORMAT").Enum(logutils.Formats...)
	)
	app.HelpFlag.Short('h')

	imagesCmd := newImagesCommands(app.Command("images", "Manage images").Alias("image"))
	variantsCmd := newVariantsCommands(app.Command("variants", "Manage variants").Alias("variant"))
	statsCmd := app.Command("stats", "Show image usage statistics")
	rawCmd := newRawCommand(app.Command("raw", "Run any operation with a raw payload"))
	accountsCmd := newAccountsCommands(app.Command("accounts", "Manage configured accounts").Alias("account"))
	browseCmd := app.Command("browse", "Browse images and variants interactively")
	browseDebug := browseCmd.Flag("debug", "Show the request log pane").Bool()

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	if err := logutils.Configure(log.StandardLogger(), *logLevel, *logFormat); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := &session{
		configPath:   *configPath,
		accountName:  *accountName,
		apiKey:       *apiKey,
		accountID:    *accountID,
		baseURL:      *baseURL,
		logResponses: *logResponses,
		logErrors:    *logErrors,
		out:          os.Stdout,
	}

	var err error
	switch {
	case imagesCmd.handles(cmd):
		err = imagesCmd.run(ctx, session, cmd)
	case variantsCmd.handles(cmd):
		err = variantsCmd.run(ctx, session, cmd)
	case cmd == statsCmd.FullCommand():
		err = runStats(ctx, session)
	case cmd == rawCmd.cmd.FullCommand():
		err = rawCmd.run(ctx, session)
	case accountsCmd.handles(cmd):
		err = accountsCmd.run(session, cmd)
	case cmd == browseCmd.FullCommand():
		err = runBrowse(session, *browseDebug)
	}
	if err != nil {
		fail(err)
	}
}

// fail logs err with the normalized API fields when present and exits.
func fail(err error) {
	if apiErr, ok := images.AsError(err); ok {
		log.WithFields(log.Fields{
			"operation": apiErr.Operation.String(),
			"code":      apiErr.Code,
			"status":    apiErr.StatusCode,
			"kind":      apiErr.Kind.String(),
		}).Fatal(apiErr.Message)
	}
	log.Fatal(err)
}
