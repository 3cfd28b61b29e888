// Package zwrap takes something we can read and seek and optionally
// wraps it, so reads come through a gzip decompressor if the data was
// compressed. Alignment files arrive mapped into memory, so we usually
// get a bytes.Reader.
package zwrap

import (
	"compress/gzip"
	"io"
)

const (
	gzipID1 = 0x1f
	gzipID2 = 0x8b
)

// Rdr is what we return.
type Rdr struct {
	rs   io.ReadSeeker
	zrdr *gzip.Reader
}

// Close closes the decompressor. The underlying source belongs to the
// caller and is not touched.
func (r *Rdr) Close() error {
	if r.zrdr == nil {
		return nil
	}
	return r.zrdr.Close()
}

// Read makes sure we read from the compressed stream and
// not the underlying one.
func (r *Rdr) Read(p []byte) (int, error) {
	if r.zrdr != nil {
		return r.zrdr.Read(p)
	}
	return r.rs.Read(p)
}

// Compressed says if we are decompressing.
func (r *Rdr) Compressed() bool { return r.zrdr != nil }

// Wrap insists on compressed data.
func Wrap(rs io.ReadSeeker) (*Rdr, error) {
	zrdr, err := gzip.NewReader(rs)
	if err != nil {
		return nil, err
	}
	return &Rdr{rs: rs, zrdr: zrdr}, nil
}

// WrapMaybe decides if the stream is compressed by looking at the
// first two bytes and wraps it if necessary. Either way, we start
// reading from the beginning.
func WrapMaybe(rs io.ReadSeeker) (*Rdr, error) {
	var magic [2]byte
	n, err := io.ReadFull(rs, magic[:])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if n == 2 && magic[0] == gzipID1 && magic[1] == gzipID2 {
		return Wrap(rs)
	}
	return &Rdr{rs: rs}, nil
}
