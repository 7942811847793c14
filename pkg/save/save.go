// Package save persists output documents to disk.
package save

import (
	"os"
	"path/filepath"

	"github.com/agentstation/teammap/pkg/errors"
)

const fileMode = 0644

// File writes data to path, fully replacing any previous content.
// The data goes to a temporary file in the target directory followed by
// a rename, so a reader never observes a partial document and the
// previous content survives any failure before the rename.
func File(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.WrapWrite(path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.WrapWrite(path, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return errors.WrapWrite(path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapWrite(path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.WrapWrite(path, err)
	}
	return nil
}
