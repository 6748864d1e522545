// Package auth persists and resolves bot credentials, preferring configuration and falling back to the system keyring.
package auth

import (
	"errors"
	"fmt"

	"github.com/anisan-cli/anibot/constant"
	"github.com/anisan-cli/anibot/key"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

const service = constant.Anibot

// Secret names a credential stored in the keyring.
type Secret struct {
	// User is the keyring account name.
	User string
	// ConfigKey is consulted before the keyring.
	ConfigKey string
	// Label is shown in prompts and status output.
	Label string
}

var (
	DiscordToken = Secret{User: "discord-token", ConfigKey: key.DiscordToken, Label: "Discord bot token"}
	MALClientID  = Secret{User: "mal-client-id", ConfigKey: key.MALClientID, Label: "MyAnimeList client ID"}
)

// Secrets lists every credential the bot needs to run.
var Secrets = []Secret{DiscordToken, MALClientID}

// ErrMissing is returned by Resolve when neither configuration nor keyring holds the secret.
var ErrMissing = errors.New("credential not configured")

// Set persists the secret value to the system keyring.
func Set(s Secret, value string) error {
	return keyring.Set(service, s.User, value)
}

// Get retrieves the secret from the system keyring.
func Get(s Secret) (string, error) {
	return keyring.Get(service, s.User)
}

// Delete removes the secret from the system keyring. Deleting an absent secret is not an error.
func Delete(s Secret) error {
	if err := keyring.Delete(service, s.User); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

// Resolve returns the configured value of the secret, or the keyring value when configuration leaves it empty.
func Resolve(s Secret) (string, error) {
	if v := viper.GetString(s.ConfigKey); v != "" {
		return v, nil
	}

	v, err := Get(s)
	if errors.Is(err, keyring.ErrNotFound) || (err == nil && v == "") {
		return "", fmt.Errorf("%s: %w (set %s or run \"%s auth set\")", s.Label, ErrMissing, s.ConfigKey, constant.Anibot)
	}
	if err != nil {
		return "", fmt.Errorf("%s: keyring: %w", s.Label, err)
	}
	return v, nil
}
