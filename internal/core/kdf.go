/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// kdf.go: Argon2id key derivation and parameters for ncrypt.
package core

import (
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/nmoreaux/ncrypt/internal/ncerr"
)

// KeySize is the length in bytes of the symmetric key taken from the front
// of the Argon2id output.
const KeySize = 32

// DefaultArgon2MemoryCeiling bounds kdf_params.m_cost accepted from
// untrusted container metadata during decode, in KiB. It is set to the
// very_slow preset's memory cost so all five documented presets remain
// decodable by default; callers that legitimately need more can raise it
// with WithArgon2MemoryCeiling or NCRYPT_ARGON2_MEMORY_CEILING.
const DefaultArgon2MemoryCeiling uint32 = 512_000

// KdfParameters fully determines the Argon2id cost for a derivation.
type KdfParameters struct {
	MCost      uint32 // memory cost, KiB
	TCost      uint32 // iterations
	PCost      uint32 // parallelism lanes
	HashLength uint32 // derived output length, bytes (>= 32)
}

// NewKdfParameters constructs a KdfParameters value. It does not validate;
// call Validate before use.
func NewKdfParameters(mCost, tCost, pCost, hashLength uint32) KdfParameters {
	return KdfParameters{MCost: mCost, TCost: tCost, PCost: pCost, HashLength: hashLength}
}

// Validate checks the invariants Argon2id itself requires plus the
// format's own minimums: m_cost >= 8*p_cost, t_cost >= 1, p_cost >= 1,
// hash_length >= 32.
func (p KdfParameters) Validate() error {
	if p.PCost < 1 {
		return ncerr.Wrap("kdf params", fmt.Errorf("%w: p_cost must be >= 1", ncerr.ErrBadMetadata))
	}
	if p.PCost > 255 {
		return ncerr.Wrap("kdf params", fmt.Errorf("%w: p_cost must fit in a byte (<= 255)", ncerr.ErrBadMetadata))
	}
	if p.MCost < 8*p.PCost {
		return ncerr.Wrap("kdf params", fmt.Errorf("%w: m_cost must be >= 8*p_cost", ncerr.ErrBadMetadata))
	}
	if p.TCost < 1 {
		return ncerr.Wrap("kdf params", fmt.Errorf("%w: t_cost must be >= 1", ncerr.ErrBadMetadata))
	}
	if p.HashLength < KeySize {
		return ncerr.Wrap("kdf params", fmt.Errorf("%w: hash_length must be >= %d", ncerr.ErrBadMetadata, KeySize))
	}
	return nil
}

// CheckCeiling returns ErrKdfCeilingExceeded if p.MCost exceeds ceilingKiB.
// A zero ceiling disables the check (unbounded).
func (p KdfParameters) CheckCeiling(ceilingKiB uint32) error {
	if ceilingKiB == 0 {
		return nil
	}
	if p.MCost > ceilingKiB {
		return ncerr.ErrKdfCeilingExceeded
	}
	return nil
}

// Named presets spanning interactive to very-slow-deliberate cost. The
// codec itself does not enforce a specific preset; any parameters Validate
// accepts are legal.

// PresetVeryFast returns the very_fast preset (m=24000, t=3, p=2, len=64).
func PresetVeryFast() KdfParameters { return NewKdfParameters(24_000, 3, 2, 64) }

// PresetFast returns the fast preset (m=64000, t=4, p=2, len=64).
func PresetFast() KdfParameters { return NewKdfParameters(64_000, 4, 2, 64) }

// PresetBalanced returns the balanced preset (m=128000, t=4, p=2, len=64).
func PresetBalanced() KdfParameters { return NewKdfParameters(128_000, 4, 2, 64) }

// PresetSlow returns the slow preset (m=256000, t=4, p=2, len=64).
func PresetSlow() KdfParameters { return NewKdfParameters(256_000, 4, 2, 64) }

// PresetVerySlow returns the very_slow preset (m=512000, t=4, p=2, len=64).
func PresetVerySlow() KdfParameters { return NewKdfParameters(512_000, 4, 2, 64) }

// DeriveKey runs Argon2id (Algorithm = Argon2id, Version = 0x13, both fixed
// by golang.org/x/crypto/argon2) over password and salt under params, and
// truncates the output to the first KeySize bytes.
func DeriveKey(password []byte, salt []byte, params KdfParameters) ([]byte, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(password) == 0 {
		return nil, ncerr.Wrap("derive key", fmt.Errorf("%w: password must not be empty", ncerr.ErrKdfFailure))
	}

	raw := argon2.IDKey(password, salt, params.TCost, params.MCost, uint8(params.PCost), params.HashLength)
	if len(raw) < KeySize {
		return nil, ncerr.Wrap("derive key", fmt.Errorf("%w: argon2 output shorter than key size", ncerr.ErrKdfFailure))
	}
	key := make([]byte, KeySize)
	copy(key, raw[:KeySize])
	return key, nil
}
