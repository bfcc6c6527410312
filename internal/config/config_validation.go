// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// defaultTokenDuration is the token lifetime used when no duration is
// configured through any source.
const defaultTokenDuration = time.Hour

// applyDefaults fills in values that have a sensible fallback and are
// therefore not required from the operator.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The signing secret, issuer, audience, database DSN, and listen address
// are all external collaborators: they must be supplied by the operator
// and are never hard-coded.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenAudience == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
