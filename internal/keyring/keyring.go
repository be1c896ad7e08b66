// Package keyring stores provider API keys in the OS keyring so they
// never have to live in the config file.
package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

// service namespaces our entries in the OS keyring.
const service = "praxis"

var (
	// ErrNotFound is returned when no key is stored for the provider.
	ErrNotFound = errors.New("no API key in keyring")
	// ErrUnavailable is returned when the OS keyring cannot be reached.
	ErrUnavailable = errors.New("OS keyring is not available")
)

// SetAPIKey stores the API key for a provider.
func SetAPIKey(provider, key string) error {
	provider = strings.TrimSpace(provider)
	if provider == "" {
		return errors.New("provider is required")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("API key is empty")
	}
	if err := keyring.Set(service, provider, key); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// APIKey retrieves the stored key for a provider.
func APIKey(provider string) (string, error) {
	key, err := keyring.Get(service, strings.TrimSpace(provider))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return key, nil
}

// DeleteAPIKey removes the stored key for a provider.
func DeleteAPIKey(provider string) error {
	if err := keyring.Delete(service, strings.TrimSpace(provider)); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
