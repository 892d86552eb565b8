/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// keybuffer.go: memory-safe holder for the ephemeral derived key.
package core

import (
	"sync"

	"github.com/nmoreaux/ncrypt/secure"
)

// keyBuffer holds the 32-byte symmetric key derived from Argon2id output
// for the duration of a single Encode or Decode call. It attempts to lock
// the backing memory against swap (best effort) and guarantees the key is
// zeroed on Destroy regardless of how the call ends.
type keyBuffer struct {
	mu     sync.Mutex
	buf    []byte
	zeroed bool
	unlock func()
}

// newKeyBuffer takes ownership of a copy of key.
func newKeyBuffer(key []byte) *keyBuffer {
	buf := make([]byte, len(key))
	copy(buf, key)

	unlock := func() {}
	if err := secure.LockMemory(buf); err == nil {
		unlock = func() { _ = secure.UnlockMemory(buf) }
	}

	return &keyBuffer{buf: buf, unlock: unlock}
}

// Bytes returns the key bytes. The slice aliases internal storage and must
// not be retained past Destroy.
func (k *keyBuffer) Bytes() []byte {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.buf
}

// Destroy zeroes the key, unlocks its memory, and marks the buffer
// destroyed. Idempotent.
func (k *keyBuffer) Destroy() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.zeroed {
		return
	}
	secure.Zero(k.buf)
	k.zeroed = true
	if k.unlock != nil {
		k.unlock()
	}
}
