/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// credentials.go: the (username, password, confirm) secret container and
// its zeroization lifecycle.
package core

import (
	"crypto/sha256"
	"encoding/hex"
	"runtime"

	"github.com/nmoreaux/ncrypt/internal/ncerr"
	"github.com/nmoreaux/ncrypt/secure"
)

// Credentials holds the three owned secret byte-strings used to encrypt or
// decrypt a container: username, password, and confirm. None of the three
// is considered valid when empty, and password must equal confirm.
//
// Credentials is consumed by-convention: once passed to Encode or Decode,
// the caller must not continue to use it -- the codec destroys it
// unconditionally before returning, on every path including panics.
type Credentials struct {
	username []byte
	password []byte
	confirm  []byte

	destroyed bool
}

// NewCredentials constructs a Credentials from three plain strings. The
// strings are copied into owned, independently zeroizable byte slices.
func NewCredentials(username, password, confirm string) *Credentials {
	c := &Credentials{
		username: []byte(username),
		password: []byte(password),
		confirm:  []byte(confirm),
	}
	// Go has no destructor, so a finalizer is the closest backstop against
	// a caller that drops a Credentials without ever calling Encode/Decode
	// or Destroy. It is not a substitute for the codec's unconditional
	// defer-based destroy -- finalizers run at an unspecified, possibly
	// much later, time.
	runtime.SetFinalizer(c, (*Credentials).Destroy)
	return c
}

// Username returns the current username bytes. The returned slice aliases
// internal storage; callers must not retain it past Destroy.
func (c *Credentials) Username() []byte { return c.username }

// Password returns the current password bytes. See Username for aliasing
// caveats.
func (c *Credentials) Password() []byte { return c.password }

// Confirm returns the current confirmation bytes. See Username for
// aliasing caveats.
func (c *Credentials) Confirm() []byte { return c.confirm }

// SetUsername replaces the username.
func (c *Credentials) SetUsername(username string) { c.username = []byte(username) }

// SetPassword replaces the password.
func (c *Credentials) SetPassword(password string) { c.password = []byte(password) }

// SetConfirm replaces the confirmation.
func (c *Credentials) SetConfirm(confirm string) { c.confirm = []byte(confirm) }

// CopyPasswordToConfirm copies the current password into confirm, for a
// "repeat password" UI flow.
func (c *Credentials) CopyPasswordToConfirm() {
	c.confirm = append(c.confirm[:0], c.password...)
}

// Validate checks that none of the three fields is empty, and that
// password == confirm.
func (c *Credentials) Validate() error {
	switch {
	case len(c.username) == 0:
		return ncerr.NewInvalidCredentials(ncerr.ReasonEmptyUsername)
	case len(c.password) == 0:
		return ncerr.NewInvalidCredentials(ncerr.ReasonEmptyPassword)
	case len(c.confirm) == 0:
		return ncerr.NewInvalidCredentials(ncerr.ReasonEmptyConfirm)
	case !secure.SecureCompare(c.password, c.confirm):
		return ncerr.NewInvalidCredentials(ncerr.ReasonPasswordMismatch)
	}
	return nil
}

// DeriveUsernameSalt computes SHA-256 over the UTF-8 username bytes and
// hex-encodes the 32-byte digest to a 64-character ASCII salt string.
//
// This is exposed for legacy-format decode tooling built outside this
// package; the current container format uses a random per-file salt stored
// in the container metadata instead, and Encode/Decode never call this.
func (c *Credentials) DeriveUsernameSalt() string {
	sum := sha256.Sum256(c.username)
	return hex.EncodeToString(sum[:])
}

// Destroy overwrites the bytes of all three fields with zeros and
// truncates them to length zero. Idempotent.
func (c *Credentials) Destroy() {
	if c.destroyed {
		return
	}
	secure.Zero(c.username)
	secure.Zero(c.password)
	secure.Zero(c.confirm)
	c.username = c.username[:0]
	c.password = c.password[:0]
	c.confirm = c.confirm[:0]
	c.destroyed = true
	runtime.SetFinalizer(c, nil)
}
