// Package kittyconf reads and rewrites the font directives in kitty's
// configuration file.
package kittyconf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/kittyfont/kittyfont/internal/application/port"
	"github.com/kittyfont/kittyfont/internal/domain/entity"
	"github.com/kittyfont/kittyfont/internal/logging"
)

const filePerm = 0644

// Directive keys recognized in kitty.conf
const (
	keyFontFamily = "font_family"
	keyFontSize   = "font_size"
)

// ErrConfigNotFound indicates the kitty configuration file does not exist at
// the configured path.
var ErrConfigNotFound = errors.New("kitty configuration file not found")

// Store reads and rewrites kitty.conf. It implements
// repository.FontSettingsRepository. Every mutation rewrites exactly one
// directive line and leaves all other bytes of the file untouched.
type Store struct {
	path     string
	reloader port.ConfigReloader
}

// New creates a store for the given kitty.conf path. A leading ~ is expanded
// when the file is opened. The reloader may be nil in which case no reload
// signal is sent after mutations.
func New(path string, reloader port.ConfigReloader) *Store {
	return &Store{path: path, reloader: reloader}
}

// Path returns the configured (unexpanded) kitty.conf path.
func (s *Store) Path() string {
	return s.path
}

// Current reads the font directives as they stand on disk. The last
// occurrence of a directive wins. A missing font_family yields an empty
// family; a missing or malformed font_size yields entity.SizeUnknown.
func (s *Store) Current(ctx context.Context) (*entity.FontSettings, error) {
	content, err := s.read()
	if err != nil {
		return nil, err
	}

	settings := &entity.FontSettings{SizeText: entity.SizeUnknown}
	for _, line := range strings.Split(content, "\n") {
		if value, ok := directiveValue(line, keyFontFamily); ok {
			settings.Family = value
		}
		if value, ok := directiveValue(line, keyFontSize); ok {
			if _, err := strconv.ParseFloat(value, 64); err == nil {
				settings.SizeText = value
			} else {
				settings.SizeText = entity.SizeUnknown
			}
		}
	}

	log := logging.FromContext(ctx)
	log.Debug().
		Str("family", settings.Family).
		Str("size", settings.SizeText).
		Msg("read font settings")

	return settings, nil
}

// ReplaceFamily rewrites the font_family directive to the given installed
// display name.
func (s *Store) ReplaceFamily(ctx context.Context, display string) error {
	return s.rewrite(ctx, keyFontFamily, display)
}

// ReplaceSize rewrites the font_size directive.
func (s *Store) ReplaceSize(ctx context.Context, points float64) error {
	return s.rewrite(ctx, keyFontSize, entity.FormatSize(points))
}

// rewrite replaces the value of the first line matching key, preserving the
// line's leading whitespace and every other line byte for byte. When no line
// matches, a new directive is appended. A reload signal follows every
// successful write.
func (s *Store) rewrite(ctx context.Context, key, value string) error {
	content, err := s.read()
	if err != nil {
		return err
	}

	lines := strings.Split(content, "\n")
	replaced := false
	for i, line := range lines {
		if _, ok := directiveValue(line, key); !ok {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		lines[i] = indent + key + " " + value
		replaced = true
		break
	}

	if !replaced {
		// Append the directive, keeping the file newline terminated.
		if len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		lines = append(lines, key+" "+value, "")
	}

	path, err := ExpandPath(s.path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log := logging.FromContext(ctx)
	log.Info().Str("key", key).Str("value", value).Bool("appended", !replaced).Msg("rewrote kitty.conf directive")

	if s.reloader != nil {
		if err := s.reloader.Reload(ctx); err != nil {
			// The directive is already on disk; a failed signal should not
			// report the mutation as lost.
			log.Warn().Err(err).Msg("failed to signal kitty to reload")
		}
	}

	return nil
}

// read loads the whole configuration file.
func (s *Store) read() (string, error) {
	path, err := ExpandPath(s.path)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// directiveValue reports whether the line's first token equals key, and if so
// returns the remainder of the line with surrounding whitespace trimmed.
// Comments and directives that merely share a prefix do not match.
func directiveValue(line, key string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, key) {
		return "", false
	}
	rest := trimmed[len(key):]
	if rest == "" {
		return "", true
	}
	if !unicode.IsSpace(rune(rest[0])) {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// ExpandPath resolves a leading ~ to the current user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
