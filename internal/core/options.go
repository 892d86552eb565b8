/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// options.go: functional options for Encode/Decode.
package core

import (
	"errors"
	"math"
	"os"

	"github.com/dustin/go-humanize"
)

// Config carries per-call overrides to Encode/Decode.
type Config struct {
	// Argon2MemoryCeiling bounds kdf_params.m_cost (KiB) accepted from
	// untrusted metadata during Decode. Zero disables the check. Defaults
	// to DefaultArgon2MemoryCeiling, further overridable by the
	// NCRYPT_ARGON2_MEMORY_CEILING environment variable.
	Argon2MemoryCeiling uint32
}

// Option configures a single Encode or Decode call.
type Option func(*Config)

// newConfig builds the default Config, applying the environment override
// before opts so a caller-supplied Option always wins over the ambient
// setting.
func newConfig(opts ...Option) (*Config, error) {
	ceiling := DefaultArgon2MemoryCeiling
	if envLimit, exists := os.LookupEnv("NCRYPT_ARGON2_MEMORY_CEILING"); exists {
		limit, err := humanize.ParseBytes(envLimit)
		if err != nil {
			return nil, errors.New("NCRYPT_ARGON2_MEMORY_CEILING: " + err.Error())
		}
		limitKiB := limit / 1024
		if limitKiB > uint64(math.MaxUint32) {
			return nil, errors.New("NCRYPT_ARGON2_MEMORY_CEILING too large: exceeds uint32 KiB range")
		}
		ceiling = uint32(limitKiB)
	}

	cfg := &Config{Argon2MemoryCeiling: ceiling}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg, nil
}

// WithArgon2MemoryCeiling overrides the decode-side m_cost ceiling (in
// KiB). Pass 0 to disable the check entirely (trusted-input use cases
// only).
func WithArgon2MemoryCeiling(ceilingKiB uint32) Option {
	return func(cfg *Config) {
		cfg.Argon2MemoryCeiling = ceilingKiB
	}
}
