// Package file opens inputs for hashing, preferring memory-mapped I/O via
// [mmapfile] and falling back to [os.File] when mmap is unavailable or
// unsuitable (empty files, special files, unsupported platforms).
//
// When the mapping succeeds, [File.Bytes] gives zero-copy access to the
// whole file, so a key can be hashed without copying it into a staging
// buffer. The returned slice is only valid until [File.Close].
package file
