/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

package ncrypt_test

import (
	"bytes"
	"testing"

	"github.com/nmoreaux/ncrypt"
)

func TestIntegration_FullWorkflow(t *testing.T) {
	plaintext := []byte("Integration test data for full workflow")

	blob, err := ncrypt.EncryptData(ncrypt.PresetFast(), plaintext, ncrypt.NewCredentials("alice", "correct horse battery staple", "correct horse battery staple"))
	if err != nil {
		t.Fatalf("EncryptData failed: %v", err)
	}

	got, err := ncrypt.DecryptData(blob, ncrypt.NewCredentials("alice", "correct horse battery staple", "correct horse battery staple"))
	if err != nil {
		t.Fatalf("DecryptData failed: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatal("round-trip mismatch")
	}
}

func TestEncryptData_InvalidCredentials(t *testing.T) {
	_, err := ncrypt.EncryptData(ncrypt.PresetVeryFast(), []byte("data"), ncrypt.NewCredentials("alice", "one", "two"))
	if err == nil {
		t.Fatal("expected EncryptData to fail on mismatched password/confirm")
	}
}

func TestDecryptData_WrongPassword(t *testing.T) {
	blob, err := ncrypt.EncryptData(ncrypt.PresetVeryFast(), []byte("data"), ncrypt.NewCredentials("alice", "right-password", "right-password"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = ncrypt.DecryptData(blob, ncrypt.NewCredentials("alice", "wrong-password", "wrong-password"))
	if err == nil {
		t.Fatal("expected DecryptData to fail with wrong password")
	}
}

func TestDecryptData_CorruptedData(t *testing.T) {
	blob, err := ncrypt.EncryptData(ncrypt.PresetVeryFast(), []byte("data"), ncrypt.NewCredentials("alice", "p", "p"))
	if err != nil {
		t.Fatal(err)
	}
	blob[len(blob)-1] ^= 0xFF

	_, err = ncrypt.DecryptData(blob, ncrypt.NewCredentials("alice", "p", "p"))
	if err == nil {
		t.Fatal("expected DecryptData to fail on corrupted ciphertext")
	}
}

func TestDecryptData_NonContainerInput(t *testing.T) {
	_, err := ncrypt.DecryptData([]byte("not a container"), ncrypt.NewCredentials("alice", "p", "p"))
	if err == nil {
		t.Fatal("expected DecryptData to fail on non-container input")
	}
}

func TestHashText_Deterministic(t *testing.T) {
	if ncrypt.HashText("hello") != ncrypt.HashText("hello") {
		t.Fatal("expected HashText to be deterministic")
	}
	if ncrypt.HashText("hello") == ncrypt.HashText("world") {
		t.Fatal("expected different inputs to hash differently")
	}
}
