package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/scottbass3/flareimg/internal/config"
	"github.com/scottbass3/flareimg/internal/images"
	"github.com/scottbass3/flareimg/internal/tui"
)

func runBrowse(s *session, debug bool) error {
	cfg, err := s.loadConfig()
	if err != nil {
		return err
	}

	var logCh chan string
	if debug {
		logCh = make(chan string, 256)
		s.requestLogger = makeRequestLogger(logCh)
	}

	// The terminal belongs to the program from here on.
	log.SetOutput(io.Discard)

	var client tui.Client
	accountName := ""
	account, err := resolveAccount(cfg, s.accountName, s.apiKey, s.accountID)
	switch {
	case err == nil:
		c, err := s.newClient(cfg, account)
		if err != nil {
			return err
		}
		client = c
		accountName = account.Name
	case errors.Is(err, config.ErrNoCredentials):
	default:
		return err
	}

	connect := func(name string) (tui.Client, error) {
		account, err := resolveAccount(cfg, name, "", "")
		if err != nil {
			return nil, err
		}
		client, err := s.newClient(cfg, account)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	var readCh <-chan string
	if logCh != nil {
		readCh = logCh
	}
	program := tea.NewProgram(
		tui.NewModel(client, accountName, cfg.Accounts, connect, debug, readCh),
		tea.WithAltScreen(),
	)
	_, err = program.Run()
	return err
}

func makeRequestLogger(ch chan<- string) images.RequestLogger {
	return func(entry images.RequestLog) {
		line := formatRequestLog(entry)
		select {
		case ch <- line:
		default:
		}
	}
}

func formatRequestLog(entry images.RequestLog) string {
	var b strings.Builder
	b.WriteString(entry.Method)
	b.WriteString(" ")
	b.WriteString(entry.URL)
	if entry.Status > 0 {
		b.WriteString(" -> ")
		b.WriteString(strconv.Itoa(entry.Status))
	}
	if len(entry.Headers) == 0 {
		return b.String()
	}

	b.WriteString(" | ")
	keys := make([]string, 0, len(entry.Headers))
	for key := range entry.Headers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for i, key := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", key, strings.Join(entry.Headers[key], ","))
	}
	return b.String()
}
