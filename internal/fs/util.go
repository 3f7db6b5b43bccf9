package fs

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/akeil/multitouch/internal/logging"
)

// WriteFile writes the output of the given function to path.
//
// The data is first written to a temporary file next to path which is
// then moved into place, so path never holds partial output.
func WriteFile(path string, write func(w io.Writer) error) error {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := ioutil.TempFile(dir, "."+name+".*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	err = write(tmp)
	if err == nil {
		err = tmp.Close()
	} else {
		tmp.Close()
	}
	if err != nil {
		os.Remove(tmpPath)
		return err
	}

	err = Move(tmpPath, path)
	if err != nil {
		os.Remove(tmpPath)
	}
	return err
}

// Move moves a file from src to dst.
// It tries os.Rename() first and falls back on "copy and delete".
//
// If src cannot be deleted after a successful copy,
// NO error is returned and src remains as it was.
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	// Rename may have failed when moving across file systems
	// so try again w/ copy & delete.
	logging.Debug("Rename failed for %v -> %v, fall back on copy and delete", src, dst)
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, r)
	if err != nil {
		w.Close()
		return err
	}
	err = w.Close()
	if err != nil {
		return err
	}

	// A bit untidy, but we carry on even if we fail to clean up behind us.
	ignoredErr := os.Remove(src)
	if ignoredErr != nil {
		logging.Error("Failed to remove file %v", src)
	}

	return nil
}
