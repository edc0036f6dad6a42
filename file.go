package ledger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// DecodeFile opens, decodes and validates the log stored in path.
// A missing file is reported with an error wrapping fs.ErrNotExist.
func DecodeFile(path string) (*Events, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	events, err := DecodeEvents(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	l, err := TryFromSequence(events)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger file %q: %w", path, err)
	}
	return l, nil
}

// InitFile creates path holding an empty log. It fails if the file already exists.
func InitFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("could not initialize ledger file %q: %w", path, err)
	}
	return f.Close()
}

// SaveFile rewrites path with the whole log.
//
// The log is written to a temporary file in the same directory first, then
// renamed over path, so readers see either the old or the new log.
func SaveFile(path string, l *Events) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = EncodeEvents(w, l); err != nil {
		return fmt.Errorf("could not encode ledger %q: %w", path, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("could not write ledger %q: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("could not sync ledger %q: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("could not close ledger %q: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("could not set permissions on ledger %q: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace ledger file %q: %w", path, err)
	}
	return nil
}
