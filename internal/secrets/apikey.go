package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups the app's secrets in the OS keychain.
	KeyringService = "jobcatalog"

	DefaultAccount = "jobcatalog:listings-api"

	// EnvAPIKey is consulted when the keychain has no entry.
	EnvAPIKey = "JOBCATALOG_API_KEY"
)

var ErrNotFound = errors.New("listings API key not found (set it in keychain or via " + EnvAPIKey + ")")

func account(a string) string {
	if a = strings.TrimSpace(a); a != "" {
		return a
	}
	return DefaultAccount
}

// GetAPIKey reads the keychain first, then the environment.
func GetAPIKey(keyringAccount string) (string, error) {
	key, err := keyring.Get(KeyringService, account(keyringAccount))
	if err == nil && strings.TrimSpace(key) != "" {
		return strings.TrimSpace(key), nil
	}

	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		return v, nil
	}
	return "", ErrNotFound
}

func SetAPIKey(keyringAccount, key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(KeyringService, account(keyringAccount), strings.TrimSpace(key))
}

func DeleteAPIKey(keyringAccount string) error {
	err := keyring.Delete(KeyringService, account(keyringAccount))
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
