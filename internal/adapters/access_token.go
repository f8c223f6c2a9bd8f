package adapters

import (
	"context"
	"strings"
)

// AccessTokenKey is the settings key holding the current access token.
const AccessTokenKey = "access_token"

// SettingsReader is the part of a key-value settings store the token
// adapter needs. *viper.Viper satisfies it.
type SettingsReader interface {
	GetString(key string) string
	IsSet(key string) bool
}

// SettingsTokenAdapter reads the access token from the process settings.
// A blank value counts as not configured.
type SettingsTokenAdapter struct {
	settings SettingsReader
	key      string
}

func NewSettingsTokenAdapter(settings SettingsReader) SettingsTokenAdapter {
	return SettingsTokenAdapter{settings: settings, key: AccessTokenKey}
}

func (a SettingsTokenAdapter) AccessToken(_ context.Context) (string, bool, error) {
	if a.settings == nil || !a.settings.IsSet(a.key) {
		return "", false, nil
	}
	token := a.settings.GetString(a.key)
	if strings.TrimSpace(token) == "" {
		return "", false, nil
	}
	return token, true, nil
}
