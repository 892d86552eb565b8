/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// metadata.go: the container metadata record and its binary encoding.
//
// Fixed-width little-endian integers, with a uint64 length prefix for each
// variable-length field, in a fixed field order: password_salt,
// cipher_nonce, kdf_params (m_cost, t_cost, p_cost, hash_length). The
// layout is a documented wire format, not a self-describing one, so it is
// hand-rolled rather than built on a reflection-based codec.
package core

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/nmoreaux/ncrypt/internal/ncerr"
)

// saltEncoding is the PHC-style base64-url-unpadded SaltString convention
// used for password_salt. Strict decoding rejects non-zero padding bits, so
// each salt has exactly one accepted encoding.
var saltEncoding = base64.RawURLEncoding.Strict()

// ContainerMetadata is the deserialized form of the metadata record
// embedded between the header and the ciphertext.
type ContainerMetadata struct {
	// PasswordSalt is the base64-url-unpadded SaltString encoding of the
	// random per-file salt.
	PasswordSalt string
	// CipherNonce is the raw 24-byte XChaCha20 nonce.
	CipherNonce []byte
	// KdfParams are the Argon2id parameters used to derive the key.
	KdfParams KdfParameters
}

// Validate checks that password_salt decodes to between 4 and 64 bytes,
// cipher_nonce is exactly 24 bytes, and kdf_params pass their own Validate.
func (m ContainerMetadata) Validate() error {
	decodedSalt, err := saltEncoding.DecodeString(m.PasswordSalt)
	if err != nil {
		return ncerr.Wrap("metadata", fmt.Errorf("%w: password_salt is not valid base64url: %v", ncerr.ErrBadMetadata, err))
	}
	if len(decodedSalt) < MinSaltDecodedLen || len(decodedSalt) > MaxSaltDecodedLen {
		return ncerr.Wrap("metadata", fmt.Errorf("%w: password_salt decodes to %d bytes, want %d..%d", ncerr.ErrBadMetadata, len(decodedSalt), MinSaltDecodedLen, MaxSaltDecodedLen))
	}
	if len(m.CipherNonce) != NonceSize {
		return ncerr.Wrap("metadata", fmt.Errorf("%w: cipher_nonce must be %d bytes, got %d", ncerr.ErrBadMetadata, NonceSize, len(m.CipherNonce)))
	}
	if err := m.KdfParams.Validate(); err != nil {
		return err
	}
	return nil
}

// DecodedSalt returns the raw salt bytes backing PasswordSalt.
func (m ContainerMetadata) DecodedSalt() ([]byte, error) {
	return saltEncoding.DecodeString(m.PasswordSalt)
}

// encodeSaltString encodes raw salt bytes using the PHC SaltString
// convention.
func encodeSaltString(salt []byte) string {
	return saltEncoding.EncodeToString(salt)
}

// marshalMetadata serializes m using the pinned packed-struct-with-u64-
// length-prefixes convention. Round-trip with unmarshalMetadata is
// byte-identical.
func marshalMetadata(m ContainerMetadata) ([]byte, error) {
	saltBytes := []byte(m.PasswordSalt)

	buf := make([]byte, 0, 8+len(saltBytes)+8+len(m.CipherNonce)+4*4)
	buf = appendLenPrefixed(buf, saltBytes)
	buf = appendLenPrefixed(buf, m.CipherNonce)
	buf = appendU32(buf, m.KdfParams.MCost)
	buf = appendU32(buf, m.KdfParams.TCost)
	buf = appendU32(buf, m.KdfParams.PCost)
	buf = appendU32(buf, m.KdfParams.HashLength)
	return buf, nil
}

// unmarshalMetadata parses a metadata record produced by marshalMetadata.
func unmarshalMetadata(data []byte) (ContainerMetadata, error) {
	var m ContainerMetadata

	saltBytes, rest, err := readLenPrefixed(data)
	if err != nil {
		return m, ncerr.Wrap("metadata", fmt.Errorf("%w: password_salt: %v", ncerr.ErrBadMetadata, err))
	}
	nonce, rest, err := readLenPrefixed(rest)
	if err != nil {
		return m, ncerr.Wrap("metadata", fmt.Errorf("%w: cipher_nonce: %v", ncerr.ErrBadMetadata, err))
	}

	const paramsWidth = 4 * 4
	if len(rest) != paramsWidth {
		return m, ncerr.Wrap("metadata", fmt.Errorf("%w: kdf_params: expected %d trailing bytes, got %d", ncerr.ErrBadMetadata, paramsWidth, len(rest)))
	}
	mCost := binary.LittleEndian.Uint32(rest[0:4])
	tCost := binary.LittleEndian.Uint32(rest[4:8])
	pCost := binary.LittleEndian.Uint32(rest[8:12])
	hashLength := binary.LittleEndian.Uint32(rest[12:16])

	m.PasswordSalt = string(saltBytes)
	m.CipherNonce = nonce
	m.KdfParams = NewKdfParameters(mCost, tCost, pCost, hashLength)
	return m, nil
}

func appendU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendU64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendLenPrefixed(buf []byte, field []byte) []byte {
	buf = appendU64(buf, uint64(len(field)))
	return append(buf, field...)
}

// readLenPrefixed reads one uint64-length-prefixed field from the front of
// data and returns the field and the remaining bytes.
func readLenPrefixed(data []byte) (field, rest []byte, err error) {
	if len(data) < 8 {
		return nil, nil, fmt.Errorf("truncated length prefix")
	}
	length := binary.LittleEndian.Uint64(data[0:8])
	if length > math.MaxInt32 {
		return nil, nil, fmt.Errorf("implausible field length %d", length)
	}
	data = data[8:]
	if uint64(len(data)) < length {
		return nil, nil, fmt.Errorf("truncated field: want %d bytes, have %d", length, len(data))
	}
	return data[:length], data[length:], nil
}
