// Package fsutil provides safe directory creation and file copy/link
// helpers with the warning semantics the scan workflow expects.
package fsutil

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// MakeDirs creates dirname and any missing parents. An existing directory
// is a warning, an existing non-directory an error.
func MakeDirs(dirname string, logger *log.Logger) error {
	logger = ensureLogger(logger)

	info, err := os.Stat(dirname)
	if err == nil {
		if !info.IsDir() {
			return errors.Errorf("%s exists but is not a directory", dirname)
		}
		logger.Printf("warning: directory %s already exists", dirname)
		return nil
	}

	if err := os.MkdirAll(dirname, 0755); err != nil {
		return errors.Wrapf(err, "could not create directory %s", dirname)
	}
	return nil
}

// Copy copies source to destination, or symlinks it when link is true.
// Copying to the same path is a no-op. A missing or non-regular source is
// an error. Copying overwrites an existing destination with a warning;
// linking over an existing destination is an error.
func Copy(source, destination string, link bool, logger *log.Logger) error {
	logger = ensureLogger(logger)

	absSrc, err := filepath.Abs(source)
	if err != nil {
		return err
	}
	absDst, err := filepath.Abs(destination)
	if err != nil {
		return err
	}
	if absSrc == absDst {
		return nil
	}

	verb := "copy"
	if link {
		verb = "link"
	}

	info, err := os.Stat(source)
	if err != nil {
		return errors.Wrapf(err, "couldn't %s file %s", verb, source)
	}
	if !info.Mode().IsRegular() {
		return errors.Errorf("couldn't %s file %s; it is not a file", verb, source)
	}

	if link {
		if _, err := os.Lstat(destination); err == nil {
			return errors.Errorf("destination file %s already exists; it will not be overwritten by a link", destination)
		}
		if err := os.Symlink(absSrc, destination); err != nil {
			return errors.Wrapf(err, "couldn't link file %s to %s", source, destination)
		}
		return nil
	}

	if _, err := os.Stat(destination); err == nil {
		logger.Printf("warning: destination file %s already exists; it will be overwritten.", destination)
	}

	in, err := os.Open(source)
	if err != nil {
		return errors.Wrapf(err, "couldn't copy file %s to %s", source, destination)
	}
	defer in.Close()

	out, err := os.Create(destination)
	if err != nil {
		return errors.Wrapf(err, "couldn't copy file %s to %s", source, destination)
	}
	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Wrapf(err, "couldn't copy file %s to %s", source, destination)
	}
	return nil
}

func ensureLogger(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard, "", 0)
	}
	return l
}
