/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// Package hash implements the text-hashing panel shipped alongside the
// container codec. It is independent of the credentials/KDF/cipher core and
// carries no invariants beyond determinism.
package hash

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Sha3_256 returns the hex-encoded SHA3-256 digest of text.
func Sha3_256(text string) string {
	sum := sha3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
