package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// File persists one JSON document at a fixed path. Save writes a temp file
// next to the target and renames it over, so readers never see a partial
// write.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

// Load unmarshals the document into v. A missing file is not an error: v is
// left untouched so the caller starts from its zero state.
func (f *File) Load(v any) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", f.path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", f.path, err)
	}

	return nil
}

func (f *File) Save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}

	return nil
}
