package inifile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/yaklabco/goeditorconfig/pkg/fsutil"
)

// Reader loads a config file.
type Reader interface {
	Read(ctx context.Context, path string) (*File, error)
}

// IniReader is the Reader backed by gopkg.in/ini.v1.
type IniReader struct{}

// NewReader returns the default Reader.
func NewReader() *IniReader {
	return &IniReader{}
}

// Read loads and parses the file at path. A missing, unreadable or directory
// path yields an error wrapping ErrUnreadable; malformed content yields a
// *SyntaxError.
func (r *IniReader) Read(ctx context.Context, path string) (*File, error) {
	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	return Parse(path, content)
}

// loadOptions configures ini.v1 for the EditorConfig dialect.
func loadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		AllowNonUniqueSections:  true,
		IgnoreInlineComment:     true,
		IgnoreContinuation:      true,
		PreserveSurroundedQuote: true,
		KeyValueDelimiters:      "=:",
	}
}

// Parse parses content as the config file at path.
func Parse(path string, content []byte) (*File, error) {
	source, masked := mask(content)

	parsed, err := ini.LoadSources(loadOptions(), source)
	if err != nil {
		return nil, &SyntaxError{Path: path, Line: lineOf(content, err), Err: err}
	}

	file := &File{Path: path}
	for idx, section := range parsed.Sections() {
		name := masked.restore(section.Name())
		if idx == 0 {
			// ini.v1 always opens with its implicit default section.
			name = ""
		}

		for _, key := range section.Keys() {
			entry := Entry{Section: name, Name: key.Name(), Value: masked.restore(key.Value())}
			if idx == 0 {
				file.Preamble = append(file.Preamble, entry)
				continue
			}
			file.Entries = append(file.Entries, entry)
		}
	}

	return file, nil
}

// maskMark delimits placeholders. It is not whitespace, so ini.v1 keeps it.
const maskMark = "\x1f"

// masks maps placeholders back to the text they replaced.
type masks map[string]string

func (m masks) restore(text string) string {
	if original, ok := m[text]; ok {
		return original
	}
	return text
}

// mask replaces text ini.v1 would reject or reinterpret with placeholders:
// values opening with a backtick or """ (ini.v1 quoting) and empty "[]"
// headers. Line structure is kept so error lines stay accurate.
func mask(content []byte) ([]byte, masks) {
	masked := masks{}
	lines := strings.Split(string(content), "\n")

	placeholder := func(original string) string {
		key := fmt.Sprintf("%s%d%s", maskMark, len(masked), maskMark)
		masked[key] = original
		return key
	}

	for idx, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", trimmed[0] == '#', trimmed[0] == ';':
			continue
		case trimmed == "[]":
			lines[idx] = "[" + placeholder("") + "]"
		case trimmed[0] == '[':
			continue
		default:
			delim := strings.IndexAny(line, "=:")
			if delim < 0 {
				continue
			}
			value := strings.TrimSpace(line[delim+1:])
			if strings.HasPrefix(value, "`") || strings.HasPrefix(value, `"""`) {
				lines[idx] = line[:delim+1] + " " + placeholder(value)
			}
		}
	}

	if len(masked) == 0 {
		return content, masked
	}
	return []byte(strings.Join(lines, "\n")), masked
}

// lineOf recovers the 1-based line a parser error refers to.
// ini.v1 reports the offending text rather than its position.
func lineOf(content []byte, err error) int {
	var text string

	var delim ini.ErrDelimiterNotFound
	var emptyKey ini.ErrEmptyKeyName
	switch {
	case errors.As(err, &delim):
		text = delim.Line
	case errors.As(err, &emptyKey):
		text = emptyKey.Line
	default:
		_, after, found := strings.Cut(err.Error(), ": ")
		if !found {
			return 0
		}
		text = after
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	return firstLine(content, func(line string) bool { return line == text })
}

func firstLine(content []byte, match func(string) bool) int {
	for idx, line := range strings.Split(string(content), "\n") {
		if match(strings.TrimSpace(line)) {
			return idx + 1
		}
	}
	return 0
}
