package ktx

import (
	"path/filepath"
	"testing"
)

// benchHeader describes a 1024x1024 RGBA8 texture with a full mip chain.
func benchHeader() Header {
	h := rgba8Header(1024, 1024)
	h.NumberOfMipmapLevels = h.MaxLevel()
	return h
}

// benchPayloadBytes computes total payload bytes for throughput reporting.
func benchPayloadBytes(images [][]byte) int64 {
	var total int64
	for _, p := range images {
		total += int64(len(p))
	}

	return total
}

func BenchmarkSerialize(b *testing.B) {
	h := benchHeader()
	images := levelImages(h)
	kvs := KeyValues{NewStringKeyValue(KeyOrientation, "S=r,T=d")}
	size, err := StorageSize(h, kvs)
	if err != nil {
		b.Fatalf("storage size: %v", err)
	}
	dst := make([]byte, size)

	b.Run("Alloc", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(benchPayloadBytes(images))
		b.ResetTimer()

		for b.Loop() {
			if _, err := Serialize(h, kvs, images); err != nil {
				b.Fatalf("serialize: %v", err)
			}
		}
	})

	b.Run("Into", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(benchPayloadBytes(images))
		b.ResetTimer()

		for b.Loop() {
			if _, err := WriteInto(dst, h, kvs, images); err != nil {
				b.Fatalf("write into: %v", err)
			}
		}
	})
}

func BenchmarkParse(b *testing.B) {
	h := benchHeader()
	images := levelImages(h)
	data, err := Serialize(h, nil, images)
	if err != nil {
		b.Fatalf("serialize: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for b.Loop() {
		if _, err := Parse(data); err != nil {
			b.Fatalf("parse: %v", err)
		}
	}
}

func BenchmarkFile(b *testing.B) {
	h := benchHeader()
	k, err := Create(h, nil, levelImages(h))
	if err != nil {
		b.Fatalf("create: %v", err)
	}

	for _, tc := range []struct {
		name string
		opts *WriteOptions
	}{
		{name: "COPY", opts: &WriteOptions{}},
		{name: "LZ4", opts: &WriteOptions{Compress: true}},
	} {
		path := filepath.Join(b.TempDir(), "bench.ktx")

		b.Run("Write"+tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(k.Size()))
			b.ResetTimer()

			for b.Loop() {
				if err := WriteFile(path, k, tc.opts); err != nil {
					b.Fatalf("write: %v", err)
				}
			}
		})

		b.Run("Read"+tc.name, func(b *testing.B) {
			if err := WriteFile(path, k, tc.opts); err != nil {
				b.Fatalf("prepare input file: %v", err)
			}

			b.ReportAllocs()
			b.SetBytes(int64(k.Size()))
			b.ResetTimer()

			for b.Loop() {
				if _, err := ReadFile(path); err != nil {
					b.Fatalf("read: %v", err)
				}
			}
		})
	}
}
