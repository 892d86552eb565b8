/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// codec.go: the Encode and Decode state machines.
//
// Both operate on whole in-memory buffers only -- there is no streaming or
// chunking. Each call runs the state sequence
// Init -> Validated -> KeyDerived -> Sealed/Opened -> Destroyed, and the
// transition into Destroyed (credentials zeroization) is unconditional:
// it happens on success, on any returned error, and on panic recovery.
package core

import (
	"encoding/binary"

	"github.com/nmoreaux/ncrypt/internal/ncerr"
	"github.com/nmoreaux/ncrypt/secure"
)

// Encode consumes credentials (the caller must not use it again after this
// call returns) and produces the container byte sequence:
// HEADER || meta_len || meta || ciphertext.
func Encode(params KdfParameters, plaintext []byte, credentials *Credentials, opts ...Option) (blob []byte, err error) {
	defer func() {
		credentials.Destroy()
		if r := recover(); r != nil {
			err = ncerr.Wrap("encode", ncerr.ErrKdfFailure)
		}
	}()

	if _, cfgErr := newConfig(opts...); cfgErr != nil {
		return nil, ncerr.Wrap("encode", cfgErr)
	}

	// State: Init -> Validated
	if valErr := credentials.Validate(); valErr != nil {
		return nil, valErr
	}

	// Salt must be fresh per call: reusing one across encodes with the same
	// password would let two ciphertexts leak that they share a key.
	salt, err := GenerateSalt()
	if err != nil {
		return nil, ncerr.Wrap("encode", err)
	}

	// State: Validated -> KeyDerived
	key, err := DeriveKey(credentials.Password(), salt, params)
	if err != nil {
		return nil, err
	}
	kb := newKeyBuffer(key)
	secure.Zero(key)
	defer kb.Destroy()

	// Nonce must be fresh per call: XChaCha20-Poly1305 loses all security
	// guarantees if a nonce is ever reused under the same key.
	nonce, err := GenerateNonce()
	if err != nil {
		return nil, ncerr.Wrap("encode", err)
	}

	// aad is the raw UTF-8 username bytes, captured before credentials
	// are destroyed in the deferred call above.
	aad := append([]byte(nil), credentials.Username()...)

	// State: KeyDerived -> Sealed
	ciphertext, err := Seal(kb.Bytes(), nonce, aad, plaintext)
	secure.Zero(aad)
	if err != nil {
		return nil, err
	}

	meta := ContainerMetadata{
		PasswordSalt: encodeSaltString(salt),
		CipherNonce:  nonce,
		KdfParams:    params,
	}
	metaBytes, err := marshalMetadata(meta)
	if err != nil {
		return nil, ncerr.Wrap("encode", err)
	}

	out := make([]byte, 0, HeaderSize+len(metaBytes)+len(ciphertext))
	out = append(out, []byte(MagicBytes)...)
	var metaLen [MetaLenSize]byte
	binary.LittleEndian.PutUint32(metaLen[:], uint32(len(metaBytes)))
	out = append(out, metaLen[:]...)
	out = append(out, metaBytes...)
	out = append(out, ciphertext...)

	return out, nil
}

// Decode consumes credentials (the caller must not use it again after this
// call returns) and returns the plaintext recovered from blob.
func Decode(blob []byte, credentials *Credentials, opts ...Option) (plaintext []byte, err error) {
	defer func() {
		credentials.Destroy()
		if r := recover(); r != nil {
			err = ncerr.Wrap("decode", ncerr.ErrAeadFailure)
		}
	}()

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, ncerr.Wrap("decode", err)
	}

	// State: Init -> Validated (credentials)
	if valErr := credentials.Validate(); valErr != nil {
		return nil, valErr
	}

	if len(blob) < HeaderSize {
		return nil, ncerr.ErrTruncated
	}
	if string(blob[:MagicSize]) != MagicBytes {
		return nil, ncerr.ErrBadMagic
	}

	metaLen := binary.LittleEndian.Uint32(blob[MagicSize : MagicSize+MetaLenSize])
	if uint64(HeaderSize)+uint64(metaLen) > uint64(len(blob)) {
		return nil, ncerr.ErrTruncated
	}

	metaStart := HeaderSize
	metaEnd := HeaderSize + int(metaLen)
	meta, err := unmarshalMetadata(blob[metaStart:metaEnd])
	if err != nil {
		return nil, err
	}

	// State: Validated (metadata)
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	if err := meta.KdfParams.CheckCeiling(cfg.Argon2MemoryCeiling); err != nil {
		return nil, err
	}

	salt, err := meta.DecodedSalt()
	if err != nil {
		return nil, ncerr.Wrap("decode", err)
	}

	// State: Validated -> KeyDerived
	key, err := DeriveKey(credentials.Password(), salt, meta.KdfParams)
	if err != nil {
		return nil, err
	}
	kb := newKeyBuffer(key)
	secure.Zero(key)
	defer kb.Destroy()

	aad := append([]byte(nil), credentials.Username()...)

	// State: KeyDerived -> Opened
	plaintext, err = Open(kb.Bytes(), meta.CipherNonce, aad, blob[metaEnd:])
	secure.Zero(aad)
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}

