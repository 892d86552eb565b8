/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// cipher.go: XChaCha20-Poly1305 AEAD wrapper for ncrypt.
//
// XChaCha20-Poly1305 is chosen over AES-GCM for its 24-byte nonce, which
// permits safe random nonce generation per file without a birthday-bound
// concern at the scale of a personal file store.
package core

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/nmoreaux/ncrypt/internal/ncerr"
)

// GenerateNonce draws a fresh 24-byte XChaCha20 nonce from the OS CSPRNG.
// It must never be derived deterministically (e.g. from the username):
// a nonce tied to a stable value repeats across every encode for that
// value and breaks the AEAD's reuse guarantee.
func GenerateNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, ncerr.Wrap("generate nonce", err)
	}
	return nonce, nil
}

// GenerateSalt draws a fresh random salt of SaltSize bytes from the OS
// CSPRNG.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, ncerr.Wrap("generate salt", err)
	}
	return salt, nil
}

// Seal encrypts plaintext under key and nonce, binding aad, and returns
// ciphertext with the 16-byte Poly1305 tag appended.
func Seal(key, nonce, aad, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, ncerr.Wrap("seal", fmt.Errorf("%w: nonce must be %d bytes", ncerr.ErrAeadFailure, aead.NonceSize()))
	}
	return aead.Seal(nil, nonce, plaintext, aad), nil
}

// Open decrypts ciphertext (which must include the trailing tag) under key
// and nonce, verifying aad, and returns the plaintext. Any failure -- wrong
// key, wrong nonce, wrong aad, or tampered ciphertext -- is reported as the
// single opaque ErrAeadFailure; callers must not attempt to distinguish
// these cases, since doing so would turn repeated decode attempts into an
// oracle for the right key or aad.
func Open(key, nonce, aad, ciphertext []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, ncerr.Wrap("open", ncerr.ErrAeadFailure)
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, ncerr.Wrap("open", ncerr.ErrAeadFailure)
	}
	return plaintext, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ncerr.Wrap("cipher", fmt.Errorf("%w: key must be %d bytes", ncerr.ErrAeadFailure, KeySize))
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, ncerr.Wrap("cipher", fmt.Errorf("%w: %v", ncerr.ErrAeadFailure, err))
	}
	return aead, nil
}
