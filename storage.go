package ktx

// Storage owns the bytes of one container. Headers are decoded out of it by
// value; key-value values and mip data are views into it and stay valid for
// as long as the Storage is reachable. Storage must not be modified once a
// KTX has been read from it.
type Storage struct {
	bytes []byte
}

// NewStorage allocates zeroed storage of the given size.
func NewStorage(size int) *Storage {
	if size < 0 {
		size = 0
	}

	return &Storage{bytes: make([]byte, size)}
}

// CopyStorage creates storage holding a copy of src.
func CopyStorage(src []byte) *Storage {
	b := make([]byte, len(src))
	copy(b, src)
	return &Storage{bytes: b}
}

// WrapStorage takes ownership of src without copying it.
// The caller must not modify src afterwards.
func WrapStorage(src []byte) *Storage {
	return &Storage{bytes: src}
}

// Bytes returns the stored bytes. The slice must be treated as read-only.
func (s *Storage) Bytes() []byte {
	if s == nil {
		return nil
	}

	return s.bytes
}

// Size returns the number of stored bytes.
func (s *Storage) Size() int {
	if s == nil {
		return 0
	}

	return len(s.bytes)
}
