package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/scottbass3/flareimg/internal/config"
	"github.com/scottbass3/flareimg/internal/images"
)

// session holds the global flags shared by every command.
type session struct {
	configPath   string
	accountName  string
	apiKey       string
	accountID    string
	baseURL      string
	logResponses bool
	logErrors    bool

	out           io.Writer
	requestLogger images.RequestLogger
}

func (s *session) loadConfig() (config.Config, error) {
	cfg, err := config.Ensure(s.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config %s: %w", s.configPath, err)
	}
	return cfg, nil
}

// client builds a client for the account selected by the global flags.
func (s *session) client() (*images.Client, error) {
	cfg, err := s.loadConfig()
	if err != nil {
		return nil, err
	}
	account, err := resolveAccount(cfg, s.accountName, s.apiKey, s.accountID)
	if err != nil {
		return nil, err
	}
	return s.newClient(cfg, account)
}

func (s *session) newClient(cfg config.Config, account config.Account) (*images.Client, error) {
	opts := []images.Option{
		images.WithBaseURL(s.baseURL),
		images.WithLogger(log.WithField("account", account.Name)),
		images.WithResponseLogging(cfg.LogResponses || s.logResponses),
		images.WithErrorLogging(cfg.LogErrors || s.logErrors),
	}
	if s.requestLogger != nil {
		opts = append(opts, images.WithRequestLogger(s.requestLogger))
	}
	return images.New(images.Credentials{APIKey: account.APIKey, AccountID: account.AccountID}, opts...)
}

// resolveAccount applies the credential flags on top of the config. Without
// an account name the flags act like the environment overrides.
func resolveAccount(cfg config.Config, name, apiKey, accountID string) (config.Account, error) {
	apiKey = strings.TrimSpace(apiKey)
	accountID = strings.TrimSpace(accountID)
	if strings.TrimSpace(name) == "" {
		if apiKey != "" {
			cfg.Env.APIKey = apiKey
		}
		if accountID != "" {
			cfg.Env.AccountID = accountID
		}
		if cfg.Env.Name == "" {
			cfg.Env.Name = "env"
		}
		return cfg.Resolve("")
	}

	account, err := cfg.Resolve(name)
	if err != nil {
		return config.Account{}, err
	}
	if apiKey != "" {
		account.APIKey = apiKey
	}
	if accountID != "" {
		account.AccountID = accountID
	}
	return account, nil
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
