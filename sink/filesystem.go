package sink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemSink writes artifacts below a directory on the local filesystem.
type FilesystemSink struct {
	Root string

	// Mode is the file permission mode (default: 0644).
	Mode os.FileMode

	// Overwrite replaces existing files. When false an existing file is an error.
	Overwrite bool
}

// NewFilesystemSink returns a sink that overwrites files below root.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{Root: root, Mode: 0o644, Overwrite: true}
}

// WriteFile writes content atomically through a temp file in the target directory.
func (s *FilesystemSink) WriteFile(ctx context.Context, name string, content []byte) error {
	if err := ValidatePath(name); err != nil {
		return fmt.Errorf("invalid path %q: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.resolve(name)
	if err != nil {
		return err
	}
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	tmp, err := s.writeTemp(dir, content)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if s.Overwrite {
		if err := os.Rename(tmp, target); err != nil {
			_ = os.Remove(tmp)
			return fmt.Errorf("rename temp file: %w", err)
		}
		return nil
	}

	// Link fails with EEXIST when the target is already present.
	err = os.Link(tmp, target)
	_ = os.Remove(tmp)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("file already exists: %q", name)
	}
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	return nil
}

func (s *FilesystemSink) resolve(name string) (string, error) {
	root, err := filepath.Abs(s.Root)
	if err != nil {
		return "", fmt.Errorf("resolve root directory: %w", err)
	}
	target := filepath.Join(root, filepath.FromSlash(name))
	if !strings.HasPrefix(target, root+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes root directory: %q", name)
	}
	return target, nil
}

func (s *FilesystemSink) writeTemp(dir string, content []byte) (string, error) {
	f, err := os.CreateTemp(dir, ".helpgen-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	name := f.Name()

	_, writeErr := f.Write(content)
	closeErr := f.Close()
	switch {
	case writeErr != nil:
		err = fmt.Errorf("write temp file: %w", writeErr)
	case closeErr != nil:
		err = fmt.Errorf("close temp file: %w", closeErr)
	}
	if err == nil {
		mode := s.Mode
		if mode == 0 {
			mode = 0o644
		}
		if chmodErr := os.Chmod(name, mode); chmodErr != nil {
			err = fmt.Errorf("set file mode: %w", chmodErr)
		}
	}
	if err != nil {
		_ = os.Remove(name)
		return "", err
	}
	return name, nil
}
