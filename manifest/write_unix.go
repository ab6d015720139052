//go:build !windows

package manifest

import (
	"fmt"
	"io"

	"github.com/google/renameio/v2"
)

// writeFile replaces path with the output of fill. renameio writes to a
// temporary file in the same directory, fsyncs it and renames it over path,
// so a failed fill leaves path untouched.
func writeFile(path string, fill func(io.Writer) error) error {
	pending, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			log.Debugf("cleanup pending file for %s: %v", path, err)
		}
	}()

	if err := fill(pending); err != nil {
		return err
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}
	return nil
}
