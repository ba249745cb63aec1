// SPDX-License-Identifier: MIT

package microlz

import (
	"bytes"
	"fmt"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("microlz benchmark text payload "), 128),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
	}
}

func benchmarkConfigSet() []Config {
	return []Config{
		{Window: 8, Lookahead: 7},
		{Window: 11, Lookahead: 6},
	}
}

func BenchmarkCompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		for _, cfg := range benchmarkConfigSet() {
			name := fmt.Sprintf("%s/W%d-L%d", inputName, cfg.Window, cfg.Lookahead)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := Compress(inputData, cfg); err != nil {
						b.Fatalf("Compress failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		for _, cfg := range benchmarkConfigSet() {
			compressed, err := Compress(inputData, cfg)
			if err != nil {
				b.Fatalf("setup Compress failed for %s: %v", inputName, err)
			}

			name := fmt.Sprintf("%s/W%d-L%d", inputName, cfg.Window, cfg.Lookahead)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := Decompress(compressed, cfg, len(inputData)); err != nil {
						b.Fatalf("Decompress failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	for inputName, inputData := range benchmarkInputSets() {
		for _, cfg := range benchmarkConfigSet() {
			name := fmt.Sprintf("%s/W%d-L%d", inputName, cfg.Window, cfg.Lookahead)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					compressed, err := Compress(inputData, cfg)
					if err != nil {
						b.Fatalf("Compress failed: %v", err)
					}
					if _, err := Decompress(compressed, cfg, len(inputData)); err != nil {
						b.Fatalf("Decompress failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkCompress_IndexVsLinearScan(b *testing.B) {
	inputData := bytes.Repeat([]byte("index acceleration comparison payload "), 400)
	variants := map[string]bool{"indexed": false, "linear-scan": true}

	for name, disableIndex := range variants {
		cfg := Config{Window: 10, Lookahead: 7, DisableIndex: disableIndex}
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(inputData)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Compress(inputData, cfg); err != nil {
					b.Fatalf("Compress failed: %v", err)
				}
			}
		})
	}
}
