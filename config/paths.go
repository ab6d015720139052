package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// EnvHome overrides the base directory returned by DefaultPaths.
	EnvHome = "JMBUILDER_HOME"

	SetupFileName   = "setup.json"
	OptionsFileName = "jmbuilder.yaml"
)

// Dir is a directory path.
type Dir string

func (d Dir) AsString() string {
	return string(d)
}

// AsFS returns the directory as a file system rooted at d.
func (d Dir) AsFS() fs.FS {
	return os.DirFS(string(d))
}

// Join returns the path of name inside d.
func (d Dir) Join(name ...string) string {
	return filepath.Join(append([]string{string(d)}, name...)...)
}

// Paths is the directory layout jmbuilder works in. Build it once at
// startup and pass it to whatever needs it.
type Paths struct {
	BaseDir Dir
	TmpDir  Dir
	LogsDir Dir
	ConfDir Dir
}

// NewPaths derives the layout under base: tmp/, logs/ and .config/.
func NewPaths(base string) Paths {
	return Paths{
		BaseDir: Dir(base),
		TmpDir:  Dir(filepath.Join(base, "tmp")),
		LogsDir: Dir(filepath.Join(base, "logs")),
		ConfDir: Dir(filepath.Join(base, ".config")),
	}
}

// DefaultPaths uses $JMBUILDER_HOME as the base directory, falling back to
// the directory of the running executable.
func DefaultPaths() (Paths, error) {
	if home := os.Getenv(EnvHome); home != "" {
		abs, err := filepath.Abs(home)
		if err != nil {
			return Paths{}, fmt.Errorf("resolve %s: %w", EnvHome, err)
		}
		return NewPaths(abs), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return Paths{}, fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return NewPaths(filepath.Dir(exe)), nil
}

func (p Paths) SetupFile() string {
	return p.ConfDir.Join(SetupFileName)
}

func (p Paths) OptionsFile() string {
	return p.ConfDir.Join(OptionsFileName)
}
