package config

import (
	"fmt"
	"os"
)

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig]. The terminal client talks to the backend directly and
// needs nothing else.
type ClientConfig struct {
	// Version is shown on the build info screen.
	Version string
	// BaaS contains backend endpoint and timeout.
	BaaS BaaS
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// Unlike [GetStructuredConfig] it ignores server-only groups, so a client
// started next to a server .env does not fail on server settings.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withFile().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	cfg.applyDefaults()

	clientCfg := &ClientConfig{
		Version: cfg.App.Version,
		BaaS:    cfg.BaaS,
	}

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) validate() error {
	return validateBaaS(cfg.BaaS.URL, cfg.BaaS.AnonKey)
}
