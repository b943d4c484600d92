package generate_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goeditorconfig/pkg/editorconfig"
	"github.com/yaklabco/goeditorconfig/pkg/generate"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func sampleTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.go":          "package main\n",
		"pkg/util/util.go": "package util\n",
		"Makefile":         "all:\n\tgo build ./...\n",
		"scripts/run.py":   "print('hello')\n",
		"README.txt":       "plain words\n",
		"vendor/dep/x.rb":  "puts 1\n",
		".hidden/tool.js":  "console.log(1)\n",
	})
	return root
}

func TestScan(t *testing.T) {
	t.Parallel()

	survey, err := generate.Scan(context.Background(), sampleTree(t), generate.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Makefile", "Python"}, survey.Languages())

	goUsage := survey.Usages["Go"]
	assert.Equal(t, 2, goUsage.Files)
	assert.Equal(t, []string{"go"}, goUsage.Extensions)
	assert.Empty(t, goUsage.Names)

	assert.Equal(t, []string{"Makefile"}, survey.Usages["Makefile"].Names)
}

func TestScan_MaxFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.go": "package a\n", "b.go": "package b\n", "c.go": "package c\n"})

	survey, err := generate.Scan(context.Background(), root, generate.Options{MaxFiles: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, survey.Usages["Go"].Files)
}

func TestScan_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := generate.Scan(ctx, sampleTree(t), generate.Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		usage generate.Usage
		want  string
	}{
		{"nothing", generate.Usage{}, ""},
		{"one extension", generate.Usage{Extensions: []string{"go"}}, "*.go"},
		{"extensions", generate.Usage{Extensions: []string{"c", "h"}}, "*.{c,h}"},
		{"one name", generate.Usage{Names: []string{"Makefile"}}, "Makefile"},
		{"names", generate.Usage{Names: []string{"GNUmakefile", "Makefile"}}, "{GNUmakefile,Makefile}"},
		{"mixed", generate.Usage{Extensions: []string{"mk"}, Names: []string{"Makefile"}}, "{*.mk,Makefile}"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, generate.Pattern(&testCase.usage))
		})
	}
}

func TestRender_Strict(t *testing.T) {
	t.Parallel()

	survey, err := generate.Scan(context.Background(), sampleTree(t), generate.Options{})
	require.NoError(t, err)

	want := generate.Header + `

root = true

[*]
end_of_line = lf

[*.go]
indent_style = tab
tab_width = 4

[*.py]
indent_style = space
indent_size = 4

[Makefile]
indent_style = tab
tab_width = 4
`
	assert.Equal(t, want, string(generate.Render(survey, generate.Options{Strict: true})))
}

func TestRender_Defaults(t *testing.T) {
	t.Parallel()

	survey := &generate.Survey{Usages: map[string]*generate.Usage{
		"Markdown":  {Language: "Markdown", Files: 1, Extensions: []string{"md"}},
		"Batchfile": {Language: "Batchfile", Files: 1, Extensions: []string{"bat", "cmd"}},
	}}

	got := string(generate.Render(survey, generate.Options{}))
	assert.Contains(t, got, "[*]\nend_of_line = lf\ncharset = utf-8\ninsert_final_newline = true\ntrim_trailing_whitespace = true\n")
	assert.Contains(t, got, "[*.md]\nindent_style = space\nindent_size = 2\ntrim_trailing_whitespace = false\n")
	assert.Contains(t, got, "[*.{bat,cmd}]\nindent_style = space\nindent_size = 4\nend_of_line = crlf\n")
}

func TestRender_NilSurvey(t *testing.T) {
	t.Parallel()

	got := string(generate.Render(nil, generate.Options{Strict: true}))
	assert.Equal(t, generate.Header+"\n\nroot = true\n\n[*]\nend_of_line = lf\n", got)
}

// Strict output resolves to conforming sets for every surveyed file.
func TestRender_StrictConforms(t *testing.T) {
	t.Parallel()

	root := sampleTree(t)
	survey, err := generate.Scan(context.Background(), root, generate.Options{})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".editorconfig"), generate.Render(survey, generate.Options{Strict: true}), 0o644))

	tests := []struct {
		file  string
		style string
		width string
	}{
		{"main.go", "tab", "4"},
		{"pkg/util/util.go", "tab", "4"},
		{"Makefile", "tab", "4"},
		{"scripts/run.py", "space", "4"},
	}

	for _, testCase := range tests {
		t.Run(testCase.file, func(t *testing.T) {
			t.Parallel()

			props, err := editorconfig.Resolve(filepath.Join(root, filepath.FromSlash(testCase.file)), "")
			require.NoError(t, err)
			require.NoError(t, editorconfig.Check(props))

			style, _ := props.Get("indent_style")
			width, _ := props.Get("tab_width")
			assert.Equal(t, testCase.style, style)
			assert.Equal(t, testCase.width, width)
		})
	}
}
