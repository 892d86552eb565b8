/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// Package ncerr defines the stable, user-visible error taxonomy for the
// ncrypt container codec, plus a sanitizer that strips internal detail
// before an error is shown outside the core.
package ncerr

import (
	"errors"
	"fmt"
)

// Sentinel errors. Wrap these with fmt.Errorf("%w", ...) rather than
// constructing new error values so that errors.Is keeps working across the
// codec boundary.
var (
	// ErrBadMagic is returned when a blob's first 8 bytes are not nCrypt1\0.
	ErrBadMagic = errors.New("ncrypt: bad magic")

	// ErrTruncated is returned when length fields are inconsistent with the
	// size of the buffer actually supplied.
	ErrTruncated = errors.New("ncrypt: truncated container")

	// ErrBadMetadata is returned when the metadata section fails to
	// deserialize, or fails an invariant (nonce length, salt length, kdf
	// ceiling).
	ErrBadMetadata = errors.New("ncrypt: bad metadata")

	// ErrKdfCeilingExceeded is folded into ErrBadMetadata at the public
	// boundary (see SanitizeError) but kept distinguishable internally so
	// tests can assert the ceiling path specifically without invoking
	// Argon2id.
	ErrKdfCeilingExceeded = fmt.Errorf("%w: kdf memory cost exceeds configured ceiling", ErrBadMetadata)

	// ErrKdfFailure is returned when Argon2id itself refuses the supplied
	// parameters or fails internally.
	ErrKdfFailure = errors.New("ncrypt: kdf failure")

	// ErrAeadFailure is returned by both seal and open failures. For
	// decode this single value subsumes wrong password, wrong username,
	// and ciphertext/metadata tampering: exposing which of the three
	// occurred would let a caller use repeated decode attempts to probe
	// for the right password or username, so all three collapse into one
	// kind before they ever reach the caller.
	ErrAeadFailure = errors.New("ncrypt: aead failure")
)

// InvalidCredentialsReason enumerates why a Credentials value failed
// Validate.
type InvalidCredentialsReason string

const (
	ReasonEmptyUsername     InvalidCredentialsReason = "empty_username"
	ReasonEmptyPassword     InvalidCredentialsReason = "empty_password"
	ReasonEmptyConfirm      InvalidCredentialsReason = "empty_confirm"
	ReasonPasswordMismatch  InvalidCredentialsReason = "password_mismatch"
)

// InvalidCredentialsError reports a pre-cryptographic validation failure.
// Unlike AeadFailure, this is safe to show verbatim to a caller: it never
// reveals anything about ciphertext, key material, or stored metadata.
type InvalidCredentialsError struct {
	Reason InvalidCredentialsReason
}

func (e *InvalidCredentialsError) Error() string {
	switch e.Reason {
	case ReasonEmptyUsername:
		return "ncrypt: username must not be empty"
	case ReasonEmptyPassword:
		return "ncrypt: password must not be empty"
	case ReasonEmptyConfirm:
		return "ncrypt: confirmation must not be empty"
	case ReasonPasswordMismatch:
		return "ncrypt: password and confirmation do not match"
	default:
		return "ncrypt: invalid credentials"
	}
}

// NewInvalidCredentials builds an InvalidCredentialsError for reason.
func NewInvalidCredentials(reason InvalidCredentialsReason) *InvalidCredentialsError {
	return &InvalidCredentialsError{Reason: reason}
}

// IsInvalidCredentials reports whether err is an InvalidCredentialsError.
func IsInvalidCredentials(err error) bool {
	var ice *InvalidCredentialsError
	return errors.As(err, &ice)
}

// Wrap adds operation context to an error without discarding it for
// errors.Is/errors.As.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// SanitizeError trims an error down to a message safe to display outside
// the core, while keeping it wrapped so errors.Is/errors.As against the
// sentinels above still works for every kind except ErrKdfCeilingExceeded,
// which is reported as plain ErrBadMetadata. Wrong
// password, wrong username, and ciphertext/metadata tampering all collapse
// into the single ErrAeadFailure kind upstream of this function (see
// codec.go); SanitizeError does not add any further detail to that kind,
// since exposing which of those three occurred would let a caller use
// decode as an oracle.
func SanitizeError(err error) error {
	if err == nil {
		return nil
	}

	var ice *InvalidCredentialsError
	if errors.As(err, &ice) {
		return ice
	}

	switch {
	case errors.Is(err, ErrBadMagic):
		return fmt.Errorf("not an ncrypt container: %w", ErrBadMagic)
	case errors.Is(err, ErrTruncated):
		return fmt.Errorf("ncrypt container is truncated: %w", ErrTruncated)
	case errors.Is(err, ErrBadMetadata):
		return fmt.Errorf("ncrypt container metadata is invalid: %w", ErrBadMetadata)
	case errors.Is(err, ErrKdfFailure):
		return fmt.Errorf("key derivation failed: %w", ErrKdfFailure)
	case errors.Is(err, ErrAeadFailure):
		return fmt.Errorf("decryption failed: wrong credentials or corrupted file: %w", ErrAeadFailure)
	default:
		return fmt.Errorf("ncrypt operation failed: %w", err)
	}
}
