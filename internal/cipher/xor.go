// Package cipher implements the repeating-key XOR cipher applied to
// encrypted config files, as a golang.org/x/text/transform.Transformer so it
// can be layered on any reader or writer.
package cipher

import (
	"bytes"
	"errors"
	"io"

	"golang.org/x/text/transform"
)

// Tag is written at offset 0 of an encrypted file. Everything after it is
// enciphered.
const Tag = "OECF"

// DefaultKey is the key a store starts with.
const DefaultKey = "Orx Default Encryption Key =)"

var errEmptyKey = errors.New("cipher: empty key")

// XOR is a stream cipher: byte n of the stream is XORed with byte n of the
// key, the key repeating from its start. Encryption and decryption are the
// same operation.
type XOR struct {
	key    []byte
	cursor int
}

var _ transform.Transformer = (*XOR)(nil)

// New returns a cipher positioned at the start of key. The key is copied.
func New(key []byte) (*XOR, error) {
	if len(key) == 0 {
		return nil, errEmptyKey
	}
	return &XOR{key: bytes.Clone(key)}, nil
}

// Apply enciphers p in place and advances the cursor.
func (x *XOR) Apply(p []byte) {
	for i := range p {
		p[i] ^= x.key[x.cursor]
		x.cursor++
		if x.cursor == len(x.key) {
			x.cursor = 0
		}
	}
}

// Transform implements transform.Transformer.
func (x *XOR) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	n := copy(dst, src)
	x.Apply(dst[:n])
	if n < len(src) {
		err = transform.ErrShortDst
	}
	return n, n, err
}

// Reset implements transform.Transformer. It moves the cursor back to the
// start of the key.
func (x *XOR) Reset() { x.cursor = 0 }

// Cursor returns the key offset the next byte is XORed with.
func (x *XOR) Cursor() int { return x.cursor }

// HasTag reports whether data starts with Tag.
func HasTag(data []byte) bool {
	return bytes.HasPrefix(data, []byte(Tag))
}

// NewReader returns a reader deciphering r from the start of key.
func NewReader(r io.Reader, key []byte) (io.Reader, error) {
	x, err := New(key)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, x), nil
}

// NewWriter writes Tag to w and returns a writer enciphering everything
// written after it. Close flushes the writer; it does not close w.
func NewWriter(w io.Writer, key []byte) (io.WriteCloser, error) {
	x, err := New(key)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(w, Tag); err != nil {
		return nil, err
	}
	return transform.NewWriter(w, x), nil
}
