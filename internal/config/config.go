package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "FLAREIMG"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNoCredentials   = errors.New("no account configured: add one or set FLAREIMG_API_KEY and FLAREIMG_ACCOUNT_ID")
)

type Config struct {
	LogResponses bool      `mapstructure:"log_responses" yaml:"log_responses"`
	LogErrors    bool      `mapstructure:"log_errors" yaml:"log_errors"`
	Accounts     []Account `mapstructure:"accounts" yaml:"accounts"`

	// Env holds credentials taken from the environment. Never saved.
	Env Account `mapstructure:"-" yaml:"-"`
}

// Account is one set of Cloudflare credentials. APIKey may reference
// environment variables as ${NAME}; they are expanded on Resolve.
type Account struct {
	Name      string `mapstructure:"name" yaml:"name"`
	AccountID string `mapstructure:"account_id" yaml:"account_id"`
	APIKey    string `mapstructure:"api_key" yaml:"api_key"`
}

func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "flareimg", "config.yaml")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", "flareimg", "config.yaml")
	}
	return "config.yaml"
}

func Load(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetDefault("log_responses", false)
	v.SetDefault("log_errors", false)
	_ = v.BindEnv("api_key")
	_ = v.BindEnv("account_id")

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("invalid config YAML: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	for i := range cfg.Accounts {
		cfg.Accounts[i] = trimAccount(cfg.Accounts[i])
		if cfg.Accounts[i].Name == "" {
			return Config{}, fmt.Errorf("account %d missing name", i+1)
		}
		if cfg.Accounts[i].AccountID == "" {
			return Config{}, fmt.Errorf("account %q missing account_id", cfg.Accounts[i].Name)
		}
		if cfg.Accounts[i].APIKey == "" {
			return Config{}, fmt.Errorf("account %q missing api_key", cfg.Accounts[i].Name)
		}
	}

	cfg.Env = Account{
		Name:      "env",
		AccountID: strings.TrimSpace(v.GetString("account_id")),
		APIKey:    strings.TrimSpace(v.GetString("api_key")),
	}
	return cfg, nil
}

// Ensure creates an empty config at path when none exists, then loads it.
func Ensure(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(path, Config{}); err != nil {
			return Config{}, err
		}
	} else if err != nil {
		return Config{}, err
	}
	return Load(path)
}

func Save(path string, cfg Config) error {
	if cfg.Accounts == nil {
		cfg.Accounts = []Account{}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o600)
}

// Resolve picks the credentials a client binds to. A named account must
// exist. Without a name, environment credentials override the first
// configured account.
func (c Config) Resolve(name string) (Account, error) {
	var account Account
	if strings.TrimSpace(name) != "" {
		index, ok := IndexOf(c.Accounts, name)
		if !ok {
			return Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, strings.TrimSpace(name))
		}
		account = c.Accounts[index]
	} else {
		if len(c.Accounts) > 0 {
			account = c.Accounts[0]
		}
		if c.Env.APIKey != "" {
			account.APIKey = c.Env.APIKey
		}
		if c.Env.AccountID != "" {
			account.AccountID = c.Env.AccountID
		}
		if account.Name == "" {
			account.Name = c.Env.Name
		}
	}

	account.APIKey = strings.TrimSpace(os.ExpandEnv(account.APIKey))
	account.AccountID = strings.TrimSpace(account.AccountID)
	if account.APIKey == "" || account.AccountID == "" {
		return Account{}, ErrNoCredentials
	}
	return account, nil
}

// IndexOf finds an account by name, ignoring case.
func IndexOf(accounts []Account, name string) (int, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, false
	}
	for i, account := range accounts {
		if strings.EqualFold(strings.TrimSpace(account.Name), trimmed) {
			return i, true
		}
	}
	return 0, false
}

func trimAccount(account Account) Account {
	return Account{
		Name:      strings.TrimSpace(account.Name),
		AccountID: strings.TrimSpace(account.AccountID),
		APIKey:    strings.TrimSpace(account.APIKey),
	}
}
