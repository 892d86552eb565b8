/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// benchmark_test.go: performance benchmarks for Encode/Decode under the
// documented Argon2id presets.
package benchmark

import (
	"testing"

	"github.com/nmoreaux/ncrypt"
)

func benchmarkEncode(b *testing.B, params ncrypt.KdfParameters, size int) {
	plaintext := make([]byte, size)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		creds := ncrypt.NewCredentials("bench-user", "bench-password", "bench-password")
		if _, err := ncrypt.EncryptData(params, plaintext, creds); err != nil {
			b.Fatalf("EncryptData failed: %v", err)
		}
	}
}

// BenchmarkEncode_VeryFast_1KB benchmarks the cheapest preset against a
// small buffer, giving the lowest per-call cost; the very_fast Argon2id
// derivation still dominates the AEAD/codec work at this size.
func BenchmarkEncode_VeryFast_1KB(b *testing.B) {
	benchmarkEncode(b, ncrypt.PresetVeryFast(), 1024)
}

// BenchmarkEncode_Balanced_1MB benchmarks the default preset against a
// representative document-sized buffer.
func BenchmarkEncode_Balanced_1MB(b *testing.B) {
	benchmarkEncode(b, ncrypt.PresetBalanced(), 1*1024*1024)
}

// BenchmarkEncode_Balanced_16MB exercises the AEAD path over a larger
// buffer; Argon2id cost stays constant per call so this isolates
// ChaCha20-Poly1305 throughput.
func BenchmarkEncode_Balanced_16MB(b *testing.B) {
	if testing.Short() {
		b.Skip("skipping large-buffer benchmark in short mode")
	}
	benchmarkEncode(b, ncrypt.PresetBalanced(), 16*1024*1024)
}

// BenchmarkEncode_VerySlow_1KB benchmarks the most expensive documented
// preset, giving an upper bound on per-call Argon2id latency.
func BenchmarkEncode_VerySlow_1KB(b *testing.B) {
	benchmarkEncode(b, ncrypt.PresetVerySlow(), 1024)
}

func BenchmarkDecode_Balanced_1MB(b *testing.B) {
	plaintext := make([]byte, 1*1024*1024)
	blob, err := ncrypt.EncryptData(ncrypt.PresetBalanced(), plaintext, ncrypt.NewCredentials("bench-user", "bench-password", "bench-password"))
	if err != nil {
		b.Fatalf("setup EncryptData failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		creds := ncrypt.NewCredentials("bench-user", "bench-password", "bench-password")
		if _, err := ncrypt.DecryptData(blob, creds); err != nil {
			b.Fatalf("DecryptData failed: %v", err)
		}
	}
}
