package upstream

import "time"

type Config struct {
	BaseURL string
	Timeout time.Duration

	// Service credentials for the client-credentials flow. Used only when the
	// request context carries no caller token.
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

func (c Config) hasServiceCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.TokenURL != ""
}
