// Package sink provides destinations for generated artifacts.
package sink

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
)

// OutputSink receives generated artifact content.
// Implementations must be safe for concurrent calls.
type OutputSink interface {
	// WriteFile stores content under the slash-separated relative name.
	WriteFile(ctx context.Context, name string, content []byte) error
}

// ValidatePath reports whether name is acceptable as an artifact name.
// Names are relative, slash separated, clean and free of ".." elements.
func ValidatePath(name string) error {
	if name == "" {
		return errors.New("path is empty")
	}
	if name == "." {
		return errors.New("path names the root directory")
	}
	if strings.HasPrefix(name, "/") || strings.Contains(name, `\`) {
		return errors.New("absolute paths not allowed")
	}
	if len(name) >= 2 && name[1] == ':' && isDriveLetter(name[0]) {
		return errors.New("absolute paths not allowed")
	}
	for _, elem := range strings.Split(name, "/") {
		if elem == ".." {
			return errors.New("path traversal not allowed")
		}
	}
	if cleaned := path.Clean(name); cleaned != name {
		return fmt.Errorf("path is not clean (expected %q, got %q)", cleaned, name)
	}
	return nil
}

func isDriveLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// ContentType returns the media type recorded for an artifact name.
func ContentType(name string) string {
	switch path.Ext(name) {
	case ".json":
		return "application/json"
	case ".ts":
		return "application/typescript"
	default:
		return "application/octet-stream"
	}
}

// MultiSink fans each write out to every wrapped sink in order.
// The first failure stops the fan-out.
type MultiSink []OutputSink

// WriteFile implements OutputSink.
func (m MultiSink) WriteFile(ctx context.Context, name string, content []byte) error {
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.WriteFile(ctx, name, content); err != nil {
			return err
		}
	}
	return nil
}
