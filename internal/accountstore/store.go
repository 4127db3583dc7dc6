package accountstore

import (
	"strings"

	"github.com/scottbass3/flareimg/internal/config"
)

type Account = config.Account

// Store persists accounts in the flareimg config file, keeping the other
// settings untouched.
type Store struct {
	path string
}

func New(path string) Store {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = config.DefaultPath()
	}
	return Store{path: trimmed}
}

func (s Store) Ensure() ([]Account, error) {
	cfg, err := config.Ensure(s.path)
	if err != nil {
		return nil, err
	}
	return cfg.Accounts, nil
}

func (s Store) Save(accounts []Account) error {
	cfg, err := config.Ensure(s.path)
	if err != nil {
		return err
	}
	cfg.Accounts = append([]Account{}, accounts...)
	return config.Save(s.path, cfg)
}
