// Package zwrap opens an input and hands back a ReadCloser which does
// the right thing whether the data is compressed or not. Upon calling
// Close, the decompressor is closed, followed by the underlying file.
// Plain files are memory mapped. I benchmarked this against a bufio
// reader for DSSP files of a few MB. The mapping was never slower.
package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"

	"github.com/andrew-torda/rstrdata/pkg/rderr"
	"github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/zstd"
)

// What we found when we looked at the first bytes
const (
	Plain byte = iota
	Gzip
	Zstd
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// closerFunc lets a function with no return value, like the zstd
// decoder's Close, act as an io.Closer.
type closerFunc func()

func (f closerFunc) Close() error { f(); return nil }

// Fp is what we return. rdr is what we read from. The others are
// closed in order, decompressor, mapping, backing file. Any of them
// may be nil.
type Fp struct {
	rdr  io.Reader
	zrdr io.Closer
	mm   mmap.MMap
	fp   io.Closer
	kind byte
}

// Read makes sure we read from the decompressed or mapped stream and
// not the underlying file.
func (fc *Fp) Read(p []byte) (int, error) { return fc.rdr.Read(p) }

// Kind says if the input was Plain, Gzip or Zstd.
func (fc *Fp) Kind() byte { return fc.kind }

// Mapped is true if we are reading from a memory mapping.
func (fc *Fp) Mapped() bool { return fc.mm != nil }

// Close closes the decompressor, then the mapping, then the underlying
// backing file. All of them are closed, even if one fails.
func (fc *Fp) Close() error {
	var s string
	if fc.zrdr != nil {
		if e := fc.zrdr.Close(); e != nil { // Close decompressor
			s = e.Error()
		}
		fc.zrdr = nil
	}
	if fc.mm != nil {
		if e := fc.mm.Unmap(); e != nil {
			s = s + " " + e.Error()
		}
		fc.mm = nil
	}
	if fc.fp != nil {
		if e := fc.fp.Close(); e != nil { // and backing file
			s = s + " " + e.Error()
		}
		fc.fp = nil
	}
	if s == "" {
		return nil
	}
	return errors.New(s)
}

// sniff looks at the first bytes of some data
func sniff(b []byte) byte {
	switch {
	case bytes.HasPrefix(b, gzipMagic):
		return Gzip
	case bytes.HasPrefix(b, zstdMagic):
		return Zstd
	}
	return Plain
}

// decomp puts a decompressor in front of rdr if kind says we need one.
func (fc *Fp) decomp(rdr io.Reader) error {
	switch fc.kind {
	case Gzip:
		zr, err := gzip.NewReader(rdr)
		if err != nil {
			return err
		}
		fc.rdr, fc.zrdr = zr, zr
	case Zstd:
		zr, err := zstd.NewReader(rdr)
		if err != nil {
			return err
		}
		fc.rdr, fc.zrdr = zr, closerFunc(zr.Close)
	default:
		fc.rdr = rdr
	}
	return nil
}

// Wrap takes a stream like stdin or an http body, looks at the first
// few bytes and puts a decompressor in front if necessary. It cannot
// map a stream, so it reads through a bufio.Reader.
func Wrap(rc io.ReadCloser) (*Fp, error) {
	br := bufio.NewReader(rc)
	b, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF { // A short stream is fine. It is just not compressed.
		rc.Close()
		return nil, err
	}
	fc := &Fp{fp: rc, kind: sniff(b)}
	if err := fc.decomp(br); err != nil {
		fc.Close()
		return nil, err
	}
	return fc, nil
}

// Open opens a file. If fname is "" or "-", read from standard input.
// A missing or unreadable file gives an error which satisfies
// errors.Is(err, rderr.ErrFileNotFound).
func Open(fname string) (*Fp, error) {
	if fname == "" || fname == "-" {
		return Wrap(io.NopCloser(os.Stdin))
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, rderr.NotFound(fname, err)
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, rderr.NotFound(fname, err)
	}
	if fi.IsDir() {
		fp.Close()
		return nil, rderr.NotFound(fname, errors.New("is a directory"))
	}
	if !fi.Mode().IsRegular() || fi.Size() == 0 { // pipes and empty files
		return Wrap(fp) //                           cannot be mapped
	}

	var magic [4]byte
	n, _ := fp.ReadAt(magic[:], 0)
	fc := &Fp{fp: fp, kind: sniff(magic[:n])}
	if fc.kind != Plain {
		if err := fc.decomp(bufio.NewReader(fp)); err != nil {
			fc.Close()
			return nil, err
		}
		return fc, nil
	}
	if mm, err := mmap.Map(fp, mmap.RDONLY, 0); err == nil {
		fc.mm = mm
		fc.rdr = bytes.NewReader(mm)
	} else { // Some file systems will not map. Just read.
		fc.rdr = fp
	}
	return fc, nil
}

// Compile time check
var _ io.ReadCloser = (*Fp)(nil)
