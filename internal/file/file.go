package file

import (
	"fmt"
	"io"
	"os"

	"go.dw1.io/mmapfile"

	"go.dw1.io/x/wyhash"
)

var (
	_ io.Reader   = (*File)(nil)
	_ io.ReaderAt = (*File)(nil)
	_ io.Closer   = (*File)(nil)
)

// File wraps either a read-only memory-mapped file (preferred) or a plain
// os.File.
type File struct {
	mm *mmapfile.MmapFile
	os *os.File
}

// Open maps the file into memory when supported; otherwise it falls back to
// os.Open. If mmap setup fails for any reason, the os.File path is
// returned instead.
func Open(name string) (*File, error) {
	mf, err := mmapfile.Open(name)
	if err == nil {
		return &File{mm: mf}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return &File{os: f}, nil
}

func (f *File) Read(p []byte) (int, error) {
	if f.mm != nil {
		return f.mm.Read(p)
	}

	return f.os.Read(p)
}

// ReadAt reads starting at absolute offset without moving the current offset.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	if f.mm != nil {
		return f.mm.ReadAt(p, off)
	}

	return f.os.ReadAt(p, off)
}

// Close releases resources held by the file.
func (f *File) Close() error {
	if f.mm != nil {
		return f.mm.Close()
	}

	return f.os.Close()
}

// Bytes exposes the mmap'd region when available; nil is returned for the
// os.File fallback because zero-copy access is unavailable there.
func (f *File) Bytes() []byte {
	if f.mm != nil {
		return f.mm.Bytes()
	}

	return nil
}

// Len returns the mapped length, or the file size for the os.File fallback.
func (f *File) Len() (int, error) {
	if f.mm != nil {
		return f.mm.Len(), nil
	}

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}

	return int(info.Size()), nil
}

// Name returns the original file name.
func (f *File) Name() string {
	if f.mm != nil {
		return f.mm.Name()
	}

	return f.os.Name()
}

// Stat retrieves file information.
func (f *File) Stat() (os.FileInfo, error) {
	if f.mm != nil {
		return f.mm.Stat()
	}

	return f.os.Stat()
}

// Key returns the whole file as a hash key after checking its size against
// h. Mapped files are returned without copying.
func (f *File) Key(h *wyhash.Hasher) ([]byte, error) {
	n, err := f.Len()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name(), err)
	}
	if err := h.CheckSize(n); err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name(), err)
	}

	if data := f.Bytes(); data != nil {
		return data, nil
	}

	buf := make([]byte, n)
	read, err := f.ReadAt(buf, 0)
	if err != nil && !(err == io.EOF && read == n) {
		return nil, fmt.Errorf("%s: %w", f.Name(), err)
	}

	return buf[:read], nil
}

// Sum64 hashes the contents of the named file with h and returns the digest
// together with the number of bytes hashed.
func Sum64(h *wyhash.Hasher, name string) (uint64, int, error) {
	f, err := Open(name)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	key, err := f.Key(h)
	if err != nil {
		return 0, 0, err
	}

	digest, err := h.Sum64(key)
	if err != nil {
		return 0, 0, err
	}

	return digest, len(key), nil
}
