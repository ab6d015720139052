// Package properties parses Java-style properties files into an ordered
// Table.
//
// A file holds one "key=value" or "key: value" pair per line. Lines
// starting with '#' and blank lines are ignored. The delimiter is '=' unless
// no line contains one, in which case ':' is used for the whole file. Only
// the first delimiter on a line splits it, so values may contain further
// delimiters. Escape sequences and line continuations are not supported.
package properties

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitsuki31/jmbuilder/charset"
	"github.com/mitsuki31/jmbuilder/jmerrors"
	"github.com/mitsuki31/jmbuilder/lines"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("jmbuilder.properties")

type Option func(*loader)

// WithEncoding sets the character encoding of the source. Defaults to
// UTF-8.
func WithEncoding(name string) Option {
	return func(l *loader) {
		l.encoding = name
	}
}

// WithName sets the source name reported by Table.Name and in errors.
func WithName(name string) Option {
	return func(l *loader) {
		l.name = name
	}
}

type loader struct {
	name     string
	encoding string
}

func newLoader(opts []Option) *loader {
	l := &loader{encoding: charset.Default}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and parses the properties file at path.
func Load(path string, opts ...Option) (*Table, error) {
	if err := jmerrors.CheckFile("properties.Load", path); err != nil {
		return nil, err
	}

	l := newLoader(opts)
	if l.name == "" {
		if abs, err := filepath.Abs(path); err == nil {
			l.name = abs
		} else {
			l.name = path
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	log.Debugf("read %d bytes from %s", len(data), path)

	return l.parse(data)
}

// Read parses properties from an already open stream. The stream is read to
// the end but not closed.
func Read(r io.Reader, opts ...Option) (*Table, error) {
	if r == nil {
		return nil, jmerrors.InvalidArgument("properties.Read", "reader cannot be nil")
	}

	// A nil *os.File fails here with os.ErrInvalid, before Name is called.
	data, err := io.ReadAll(r)
	if errors.Is(err, os.ErrInvalid) {
		return nil, jmerrors.InvalidArgument("properties.Read", "reader is not usable: %v", err)
	}
	if err != nil {
		return nil, fmt.Errorf("read properties: %w", err)
	}

	l := newLoader(opts)
	if l.name == "" {
		if f, ok := r.(interface{ Name() string }); ok {
			l.name = f.Name()
		}
	}
	return l.parse(data)
}

func (l *loader) parse(data []byte) (*Table, error) {
	data, err := charset.Decode(data, l.encoding)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	t := NewTable()
	t.name = l.name

	contents, err := cleanLines(string(data))
	if err != nil {
		return nil, err
	}
	if len(contents) == 0 {
		return t, nil
	}

	delim := "="
	if !anyContains(contents, delim) {
		delim = ":"
	}

	for i, line := range contents {
		key, value, ok := strings.Cut(line, delim)
		if !ok {
			log.Debugf("%s: entry %d has no %q delimiter: %q", l.name, i+1, delim, line)
			return nil, jmerrors.Parse("properties.parse", l.name, "unable to unpack keys and values", nil)
		}
		t.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	log.Debugf("parsed %d properties from %s", t.Len(), l.name)
	return t, nil
}

// cleanLines trims every line and drops comment and blank lines.
func cleanLines(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}

	raw := strings.Split(text, "\n")
	contents := make([]string, len(raw))
	for i, line := range raw {
		contents[i] = strings.TrimSpace(line)
	}

	contents, err := lines.RemoveComments(contents, lines.DefaultCommentDelim)
	if err != nil || len(contents) == 0 {
		return nil, err
	}
	return lines.RemoveBlanks(contents)
}

func anyContains(contents []string, delim string) bool {
	for _, line := range contents {
		if strings.Contains(line, delim) {
			return true
		}
	}
	return false
}
