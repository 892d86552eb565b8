/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// Package ncrypt provides a self-describing, password-authenticated
// container format for encrypting and decrypting arbitrary in-memory byte
// buffers.
//
// A container binds a password-derived key (via the memory-hard Argon2id
// KDF) to an XChaCha20-Poly1305 AEAD ciphertext, with the caller-supplied
// username bound in as additional authenticated data. Decoding with the
// wrong username, the wrong password, or a tampered blob all fail the same
// opaque way -- there is no oracle that lets a caller distinguish them.
//
// # Basic Usage
//
//	creds := ncrypt.NewCredentials("alice", "correct horse battery staple", "correct horse battery staple")
//	blob, err := ncrypt.EncryptData(ncrypt.PresetBalanced(), []byte("secret document"), creds)
//	if err != nil {
//	    return err
//	}
//
//	creds = ncrypt.NewCredentials("alice", "correct horse battery staple", "correct horse battery staple")
//	plaintext, err := ncrypt.DecryptData(blob, creds)
//	if err != nil {
//	    return err
//	}
//
// Credentials are consumed by EncryptData and DecryptData: both zero the
// username, password, and confirmation fields before returning, on every
// path including panics, and the caller must treat the Credentials value
// as unusable afterward.
//
// # Key Derivation Presets
//
// KdfParameters has five documented presets ranging from PresetVeryFast to
// PresetVerySlow; EncryptData accepts any parameters that pass
// KdfParameters.Validate -- the container does not pin a specific preset.
//
// # Security Considerations
//
//   - Credentials are destroyed (zeroed) unconditionally after every call;
//     do not retain a reference to a Credentials value across calls.
//   - A decode failure (ErrAeadFailure) deliberately does not distinguish
//     wrong password, wrong username, or tampered ciphertext/metadata.
//   - The codec operates on whole in-memory buffers only; there is no
//     streaming support for files larger than memory.
//
// For the on-disk container layout, see internal/core/format.go and
// internal/core/metadata.go.
package ncrypt

import (
	"github.com/nmoreaux/ncrypt/internal/core"
	"github.com/nmoreaux/ncrypt/internal/hash"
	"github.com/nmoreaux/ncrypt/internal/ncerr"
)

// Credentials is the (username, password, confirm) secret container
// (re-exported from internal/core).
type Credentials = core.Credentials

// KdfParameters fully determines the Argon2id cost of a derivation
// (re-exported from internal/core).
type KdfParameters = core.KdfParameters

// Option configures a single EncryptData or DecryptData call
// (re-exported from internal/core).
type Option = core.Option

// NewCredentials constructs a Credentials from three plain strings.
func NewCredentials(username, password, confirm string) *Credentials {
	return core.NewCredentials(username, password, confirm)
}

// NewKdfParameters constructs a KdfParameters with explicit values. Call
// Validate (or rely on EncryptData/DecryptData to validate) before use.
func NewKdfParameters(mCost, tCost, pCost, hashLength uint32) KdfParameters {
	return core.NewKdfParameters(mCost, tCost, pCost, hashLength)
}

// PresetVeryFast, PresetFast, PresetBalanced, PresetSlow, and
// PresetVerySlow are the documented KdfParameters presets.
var (
	PresetVeryFast = core.PresetVeryFast
	PresetFast     = core.PresetFast
	PresetBalanced = core.PresetBalanced
	PresetSlow     = core.PresetSlow
	PresetVerySlow = core.PresetVerySlow
)

// WithArgon2MemoryCeiling overrides the decode-side ceiling on
// kdf_params.m_cost read from untrusted container metadata (re-exported
// from internal/core).
var WithArgon2MemoryCeiling = core.WithArgon2MemoryCeiling

// Sentinel errors returned by EncryptData and DecryptData, for callers
// that want to branch on the failure kind with errors.Is. ErrAeadFailure
// is the one kind that is deliberately not more specific than this: wrong
// password, wrong username, and ciphertext/metadata tampering all report
// as ErrAeadFailure, since telling them apart would let a caller use
// repeated decode attempts to probe for the right credentials. The other
// kinds stay as specific as the codec can tell.
var (
	ErrBadMagic    = ncerr.ErrBadMagic
	ErrTruncated   = ncerr.ErrTruncated
	ErrBadMetadata = ncerr.ErrBadMetadata
	ErrKdfFailure  = ncerr.ErrKdfFailure
	ErrAeadFailure = ncerr.ErrAeadFailure
)

// InvalidCredentialsError reports a pre-cryptographic validation failure
// (re-exported from internal/ncerr).
type InvalidCredentialsError = ncerr.InvalidCredentialsError

// EncryptData encrypts plaintext under credentials and params, producing
// a self-describing container blob. credentials is consumed: its fields
// are zeroed before this function returns, regardless of outcome.
//
// A non-nil error is one of ErrBadMagic, ErrTruncated, ErrBadMetadata,
// ErrKdfFailure, ErrAeadFailure, or *InvalidCredentialsError -- check with
// errors.Is/errors.As rather than comparing message strings. The exceptions
// are a malformed NCRYPT_ARGON2_MEMORY_CEILING value and a failure of the OS
// random source, which are returned wrapped without any of these kinds.
func EncryptData(params KdfParameters, plaintext []byte, credentials *Credentials, opts ...Option) ([]byte, error) {
	blob, err := core.Encode(params, plaintext, credentials, opts...)
	if err != nil {
		return nil, ncerr.SanitizeError(err)
	}
	return blob, nil
}

// DecryptData decrypts a container blob produced by EncryptData.
// credentials is consumed the same way as in EncryptData. See EncryptData
// for the set of errors this can return.
func DecryptData(blob []byte, credentials *Credentials, opts ...Option) ([]byte, error) {
	plaintext, err := core.Decode(blob, credentials, opts...)
	if err != nil {
		return nil, ncerr.SanitizeError(err)
	}
	return plaintext, nil
}

// HashText computes the hex-encoded SHA3-256 digest of text, for the
// companion text-hashing panel shipped alongside the container codec
// (re-exported from internal/hash).
func HashText(text string) string {
	return hash.Sha3_256(text)
}
