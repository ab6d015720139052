package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/mitsuki31/jmbuilder/jmerrors"
)

//go:embed setup.json
var defaultSetup []byte

// Version is the frozen major.minor.patch version from the setup file.
type Version struct {
	Major, Minor, Patch int
}

// At returns the version component at index 0, 1 or 2.
func (v Version) At(i int) (int, error) {
	switch i {
	case 0:
		return v.Major, nil
	case 1:
		return v.Minor, nil
	case 2:
		return v.Patch, nil
	}
	return 0, jmerrors.InvalidArgument("config.Version.At", "index out of range: %d", i)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Setup describes the jmbuilder program itself.
type Setup struct {
	ProgramName string
	Version     Version
	Author      string
	License     string
}

// LoadSetup reads setup.json from the configuration directory. The copy
// embedded in the binary is used when the file does not exist.
func LoadSetup(paths Paths) (*Setup, error) {
	_, err := fs.Stat(paths.ConfDir.AsFS(), SetupFileName)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("%s not found, using built-in setup", paths.SetupFile())
		return DefaultSetup()
	}

	d, err := ParseJSON(paths.SetupFile())
	if err != nil {
		return nil, err
	}
	return ParseSetup(d)
}

// DefaultSetup returns the setup embedded in the binary.
func DefaultSetup() (*Setup, error) {
	d, err := decodeJSON(defaultSetup)
	if err != nil {
		return nil, jmerrors.Parse("config.DefaultSetup", SetupFileName, "malformed JSON", err)
	}
	return ParseSetup(d)
}

// ParseSetup extracts the setup fields from a decoded setup.json.
func ParseSetup(d Dict) (*Setup, error) {
	var s Setup
	var err error

	if s.ProgramName, err = d.String("Program-Name"); err != nil {
		return nil, err
	}
	if s.Author, err = d.String("Author"); err != nil {
		return nil, err
	}
	if s.License, err = d.String("License"); err != nil {
		return nil, err
	}

	ver, err := d.Ints("Version")
	if err != nil {
		return nil, err
	}
	if len(ver) != 3 {
		return nil, jmerrors.TypeMismatch("config.ParseSetup", "Version has %d components, expected 3", len(ver))
	}
	s.Version = Version{Major: ver[0], Minor: ver[1], Patch: ver[2]}

	return &s, nil
}
