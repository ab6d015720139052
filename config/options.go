package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitsuki31/jmbuilder/jmerrors"
	"gopkg.in/yaml.v3"
)

// Options are the user settings read from jmbuilder.yaml. Command-line flags
// take precedence over them.
type Options struct {
	Log      LogOptions      `yaml:"log"`
	Manifest ManifestOptions `yaml:"manifest"`
}

type LogOptions struct {
	// Verbosity is passed to commonlog.Configure. Higher values log more.
	Verbosity int `yaml:"verbosity"`
	// File receives log output instead of stderr.
	File string `yaml:"file"`
}

type ManifestOptions struct {
	POM                string `yaml:"pom"`
	Input              string `yaml:"input"`
	Output             string `yaml:"output"`
	Encoding           string `yaml:"encoding"`
	InputEncoding      string `yaml:"inputEncoding"`
	DescriptorEncoding string `yaml:"descriptorEncoding"`
}

// LoadOptions reads a YAML options file. Unknown keys are rejected.
func LoadOptions(path string) (*Options, error) {
	const op = "config.LoadOptions"

	if err := jmerrors.CheckFile(op, path); err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, jmerrors.Parse(op, path, fmt.Sprintf("unsupported options format %q, expected YAML", ext), nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var opts Options
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return &Options{}, nil
		}
		return nil, jmerrors.Parse(op, path, "invalid options", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, jmerrors.Parse(op, path, "multiple documents or trailing content", nil)
	}

	log.Debugf("loaded options from %s", path)
	return &opts, nil
}

// Merge returns o with every non-zero field of over applied on top.
func (o Options) Merge(over Options) Options {
	if over.Log.Verbosity != 0 {
		o.Log.Verbosity = over.Log.Verbosity
	}
	o.Log.File = pick(o.Log.File, over.Log.File)

	m, om := &o.Manifest, over.Manifest
	m.POM = pick(m.POM, om.POM)
	m.Input = pick(m.Input, om.Input)
	m.Output = pick(m.Output, om.Output)
	m.Encoding = pick(m.Encoding, om.Encoding)
	m.InputEncoding = pick(m.InputEncoding, om.InputEncoding)
	m.DescriptorEncoding = pick(m.DescriptorEncoding, om.DescriptorEncoding)
	return o
}

func pick(base, over string) string {
	if over != "" {
		return over
	}
	return base
}
