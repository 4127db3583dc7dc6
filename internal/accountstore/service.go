package accountstore

import (
	"fmt"
	"strings"

	"github.com/scottbass3/flareimg/internal/config"
)

// Service contains pure account CRUD and validation logic.
type Service struct {
	store Store
}

func NewService(path string) Service {
	return Service{store: New(path)}
}

func (s Service) Load() ([]Account, error) {
	return s.store.Ensure()
}

func (s Service) Save(accounts []Account) error {
	return s.store.Save(accounts)
}

func (s Service) Add(existing []Account, candidate Account) ([]Account, int, error) {
	normalized, err := normalizeAccount(candidate)
	if err != nil {
		return nil, -1, err
	}
	if err := ensureUniqueName(existing, normalized.Name, -1); err != nil {
		return nil, -1, err
	}
	updated := append(append([]Account{}, existing...), normalized)
	return updated, len(updated) - 1, nil
}

func (s Service) Edit(existing []Account, index int, candidate Account) ([]Account, error) {
	if index < 0 || index >= len(existing) {
		return nil, fmt.Errorf("invalid account selection")
	}
	normalized, err := normalizeAccount(candidate)
	if err != nil {
		return nil, err
	}
	if err := ensureUniqueName(existing, normalized.Name, index); err != nil {
		return nil, err
	}
	updated := append([]Account{}, existing...)
	updated[index] = normalized
	return updated, nil
}

func (s Service) RemoveByName(existing []Account, name string) ([]Account, Account, int, error) {
	index, ok := ResolveByName(existing, name)
	if !ok {
		return nil, Account{}, -1, fmt.Errorf("%w: %s", config.ErrAccountNotFound, strings.TrimSpace(name))
	}
	removed := existing[index]
	updated := make([]Account, 0, len(existing)-1)
	updated = append(updated, existing[:index]...)
	updated = append(updated, existing[index+1:]...)
	return updated, removed, index, nil
}

// ResolveByName matches the account name first, then the account id.
func ResolveByName(accounts []Account, name string) (int, bool) {
	if index, ok := config.IndexOf(accounts, name); ok {
		return index, true
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, false
	}
	for i, account := range accounts {
		if strings.EqualFold(strings.TrimSpace(account.AccountID), trimmed) {
			return i, true
		}
	}
	return 0, false
}

// MaskKey hides all but the last four characters of an api key.
func MaskKey(key string) string {
	trimmed := strings.TrimSpace(key)
	if strings.HasPrefix(trimmed, "${") {
		return trimmed
	}
	if len(trimmed) <= 4 {
		return strings.Repeat("*", len(trimmed))
	}
	return strings.Repeat("*", len(trimmed)-4) + trimmed[len(trimmed)-4:]
}

func normalizeAccount(candidate Account) (Account, error) {
	name := strings.TrimSpace(candidate.Name)
	accountID := strings.TrimSpace(candidate.AccountID)
	apiKey := strings.TrimSpace(candidate.APIKey)
	if name == "" {
		return Account{}, fmt.Errorf("account name is required")
	}
	if strings.ContainsAny(name, " \t") {
		return Account{}, fmt.Errorf("account name must not contain spaces")
	}
	if accountID == "" {
		return Account{}, fmt.Errorf("account id is required")
	}
	if apiKey == "" {
		return Account{}, fmt.Errorf("api key is required")
	}
	return Account{Name: name, AccountID: accountID, APIKey: apiKey}, nil
}

func ensureUniqueName(existing []Account, name string, skip int) error {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i, account := range existing {
		if i == skip {
			continue
		}
		if strings.ToLower(strings.TrimSpace(account.Name)) == needle {
			return fmt.Errorf("account %q already exists", name)
		}
	}
	return nil
}
