// Package langdetect identifies the language of a file from its name and
// content. It uses go-enry, the linguist port, so names match the ones
// GitHub shows for a repository.
package langdetect

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// Detect returns the language of the file. Returns "" for binary content or
// when no strategy is confident.
func Detect(filename string, content []byte) string {
	if len(content) > 0 && enry.IsBinary(content) {
		return ""
	}

	name := filepath.Base(filename)

	// Strategy 1: well-known file names (Makefile, Dockerfile, ...).
	if lang, safe := enry.GetLanguageByFilename(name); safe {
		return lang
	}

	// Strategy 2: shebang, so extensionless scripts are recognised.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return lang
	}

	// Strategy 3: unambiguous extension.
	if lang, safe := enry.GetLanguageByExtension(name); safe {
		return lang
	}

	// Strategy 4: let enry weigh all candidates including the classifier.
	if len(content) == 0 {
		return ""
	}
	return enry.GetLanguage(name, content)
}

// Skip reports whether the slash-separated relative path should be left out
// of a survey: vendored trees and dot files.
func Skip(relPath string) bool {
	return enry.IsVendor(relPath) || enry.IsDotFile(relPath)
}

// Generated reports whether the file looks machine generated.
func Generated(relPath string, content []byte) bool {
	return enry.IsGenerated(relPath, content)
}
