// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ClientConfig is the configuration view used by the fortnote CLI.
type ClientConfig struct {
	// App contains application-level settings.
	App App
	// Storage is used when Adapter.HTTPAddress is empty.
	Storage Storage
	// Adapter, when its address is set, routes every command to a server.
	Adapter Adapter
}

// Remote reports whether the CLI should talk to a server.
func (c *ClientConfig) Remote() bool {
	return c.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Adapter: cfg.Adapter,
	}

	return clientCfg, clientCfg.validate()
}
