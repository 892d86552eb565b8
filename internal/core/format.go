/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// format.go: container file format constants for ncrypt.
package core

const (
	// MagicBytes is the 8-byte container signature "nCrypt1\0".
	MagicBytes = "nCrypt1\x00"

	// MagicSize is len(MagicBytes).
	MagicSize = len(MagicBytes)

	// MetaLenSize is the width of the little-endian meta_len field.
	MetaLenSize = 4

	// HeaderSize is the offset at which the metadata record begins:
	// 8 bytes magic + 4 bytes meta_len.
	HeaderSize = MagicSize + MetaLenSize

	// SaltSize is the size in bytes of the random per-file password salt.
	SaltSize = 16

	// NonceSize is the XChaCha20-Poly1305 nonce size.
	NonceSize = 24

	// TagSize is the Poly1305 authentication tag size appended to
	// ciphertext by Seal.
	TagSize = 16

	// MinSaltDecodedLen and MaxSaltDecodedLen bound the decoded length of
	// password_salt accepted from untrusted metadata.
	MinSaltDecodedLen = 4
	MaxSaltDecodedLen = 64
)
