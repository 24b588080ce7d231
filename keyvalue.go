package ktx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// Well-known metadata keys.
const (
	// KeyOrientation describes texel axis directions, e.g. "S=r,T=d".
	KeyOrientation = "KTXorientation"
	// KeyWriter names the tool that produced the file.
	KeyWriter = "KTXwriter"
)

// KeyValue is one metadata entry. Value holds the raw stored bytes, including
// a trailing NUL when the writer stored a C string.
type KeyValue struct {
	Key   string `json:"key" yaml:"key"`
	Value []byte `json:"value" yaml:"value"`
}

// NewStringKeyValue builds an entry whose value is a NUL-terminated string.
func NewStringKeyValue(key, value string) KeyValue {
	v := make([]byte, len(value)+1)
	copy(v, value)
	return KeyValue{Key: key, Value: v}
}

// String returns the value as text with one trailing NUL removed.
func (kv KeyValue) String() string {
	return string(bytes.TrimSuffix(kv.Value, []byte{0}))
}

// entrySize returns the keyAndValueByteSize field of the entry.
func (kv KeyValue) entrySize() uint64 {
	return uint64(len(kv.Key)) + 1 + uint64(len(kv.Value))
}

// serializedSize returns the bytes the entry occupies, padding included.
func (kv KeyValue) serializedSize() uint64 {
	return 4 + align4(kv.entrySize())
}

func (kv KeyValue) validate() error {
	if kv.Key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKeyValue)
	}
	if strings.IndexByte(kv.Key, 0) >= 0 {
		return fmt.Errorf("%w: key %q contains NUL", ErrInvalidKeyValue, kv.Key)
	}

	return nil
}

// KeyValues is an ordered metadata list in file order.
type KeyValues []KeyValue

// Size returns the serialized size of the list, equal to bytesOfKeyValueData.
func (kvs KeyValues) Size() uint64 {
	var total uint64
	for _, kv := range kvs {
		total += kv.serializedSize()
	}

	return total
}

// Get returns the value of the first entry with the given key.
func (kvs KeyValues) Get(key string) ([]byte, bool) {
	for _, kv := range kvs {
		if kv.Key == key {
			return kv.Value, true
		}
	}

	return nil, false
}

// GetString returns the first value for key as text.
func (kvs KeyValues) GetString(key string) (string, bool) {
	for _, kv := range kvs {
		if kv.Key == key {
			return kv.String(), true
		}
	}

	return "", false
}

// parseKeyValues decodes the key-value block. Values alias block.
func parseKeyValues(block []byte) (KeyValues, error) {
	var (
		kvs KeyValues
		off uint64
	)

	end := uint64(len(block))
	for off < end {
		if end-off < 4 {
			return nil, fmt.Errorf("%w: key-value entry at %d: size field needs 4 bytes, have %d",
				ErrTruncatedData, off, end-off)
		}

		size := uint64(binary.LittleEndian.Uint32(block[off:]))
		off += 4
		if size > end-off {
			return nil, fmt.Errorf("%w: key-value entry at %d: %d bytes, block has %d left",
				ErrTruncatedData, off-4, size, end-off)
		}

		entry := block[off : off+size]
		nul := bytes.IndexByte(entry, 0)
		if nul <= 0 {
			return nil, fmt.Errorf("%w: %w: entry at %d", ErrMalformedHeader, ErrMalformedKeyValue, off-4)
		}

		kvs = append(kvs, KeyValue{
			Key:   string(entry[:nul]),
			Value: entry[nul+1:],
		})

		off += size
		pad := padding4(size)
		if pad > end-off {
			return nil, fmt.Errorf("%w: key-value entry padding at %d: need %d bytes, have %d",
				ErrTruncatedData, off, pad, end-off)
		}
		off += pad
	}

	return kvs, nil
}

// writeKeyValues encodes kvs into dst, which must hold kvs.Size() bytes.
// Padding of each entry is computed from that entry alone.
func writeKeyValues(dst []byte, kvs KeyValues) int {
	off := 0
	for _, kv := range kvs {
		size := kv.entrySize()
		binary.LittleEndian.PutUint32(dst[off:], uint32(size))
		off += 4
		off += copy(dst[off:], kv.Key)
		dst[off] = 0
		off++
		off += copy(dst[off:], kv.Value)
		for range padding4(size) {
			dst[off] = 0
			off++
		}
	}

	return off
}
