// Package charset resolves character encodings by name and converts text
// streams between them and UTF-8.
package charset

import (
	"io"
	"strings"

	"github.com/mitsuki31/jmbuilder/jmerrors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Default is used when no encoding name is given.
const Default = "UTF-8"

// Lookup returns the encoding registered under name. IANA names are tried
// first, then WHATWG labels. An empty name selects UTF-8.
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return unicode.UTF8, nil
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	return nil, jmerrors.InvalidArgument("charset.Lookup", "unknown encoding %q", name)
}

func isUTF8(enc encoding.Encoding) bool {
	return enc == unicode.UTF8
}

// NewReader returns a reader that decodes r from the named encoding into
// UTF-8.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if isUTF8(enc) {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// NewWriter returns a writer that encodes UTF-8 input into the named
// encoding. The caller must Close it to flush buffered output; closing does
// not close w.
func NewWriter(w io.Writer, name string) (io.WriteCloser, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if isUTF8(enc) {
		return nopCloser{w}, nil
	}
	return transform.NewWriter(w, enc.NewEncoder()), nil
}

// Decode converts data from the named encoding into UTF-8.
func Decode(data []byte, name string) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if isUTF8(enc) {
		return data, nil
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, jmerrors.Parse("charset.Decode", "", "cannot decode "+name, err)
	}
	return out, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
