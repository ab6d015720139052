package manifest

import (
	"fmt"
	"io"
	"time"

	"github.com/mitsuki31/jmbuilder/charset"
	"github.com/mitsuki31/jmbuilder/jmerrors"
	"github.com/mitsuki31/jmbuilder/pom"
	"github.com/mitsuki31/jmbuilder/properties"
)

type Option func(*fixer)

// WithClock sets the time source for maven.build.timestamp.
func WithClock(now func() time.Time) Option {
	return func(f *fixer) {
		f.now = now
	}
}

// WithEncoding sets the encoding of the written manifest. Defaults to UTF-8.
func WithEncoding(name string) Option {
	return func(f *fixer) {
		f.encoding = name
	}
}

// WithInputEncoding sets the encoding of the manifest template. Defaults to
// UTF-8.
func WithInputEncoding(name string) Option {
	return func(f *fixer) {
		f.inputEncoding = name
	}
}

// WithDescriptorEncoding forces the encoding of the project descriptor
// instead of the one declared in its XML prolog.
func WithDescriptorEncoding(name string) Option {
	return func(f *fixer) {
		f.descriptorEncoding = name
	}
}

type fixer struct {
	now                func() time.Time
	encoding           string
	inputEncoding      string
	descriptorEncoding string
}

// Fix resolves the placeholders of the manifest at inputPath against the
// descriptor at descriptorPath and writes the result to outputPath, or back
// to inputPath when outputPath is empty.
//
// Nothing is written unless both files load. The output replaces the
// destination atomically.
func Fix(descriptorPath, inputPath, outputPath string, opts ...Option) error {
	const op = "manifest.Fix"

	if inputPath == "" {
		return jmerrors.InvalidArgument(op, "input manifest path cannot be empty")
	}
	if err := jmerrors.CheckFile(op, inputPath); err != nil {
		return err
	}
	if outputPath == "" {
		outputPath = inputPath
	}

	f := &fixer{
		now:           time.Now,
		encoding:      charset.Default,
		inputEncoding: charset.Default,
	}
	for _, opt := range opts {
		opt(f)
	}
	if _, err := charset.Lookup(f.encoding); err != nil {
		return err
	}

	tbl, err := properties.Load(inputPath, properties.WithEncoding(f.inputEncoding))
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}

	var pomOpts []pom.Option
	if f.descriptorEncoding != "" {
		pomOpts = append(pomOpts, pom.WithEncoding(f.descriptorEncoding))
	}
	d, err := pom.Parse(descriptorPath, pomOpts...)
	if err != nil {
		return fmt.Errorf("load project descriptor: %w", err)
	}

	n := Resolve(tbl, NewValues(d, f.now()))

	if err := writeFile(outputPath, func(w io.Writer) error {
		enc, err := charset.NewWriter(w, f.encoding)
		if err != nil {
			return err
		}
		if err := Write(enc, tbl); err != nil {
			return err
		}
		return enc.Close()
	}); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	log.Infof("wrote %d entries (%d resolved) to %s", tbl.Len(), n, outputPath)
	return nil
}
