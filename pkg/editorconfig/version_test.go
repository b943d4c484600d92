package editorconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goeditorconfig/pkg/editorconfig"
)

func TestVersion_Compare(t *testing.T) {
	t.Parallel()

	base := editorconfig.Version{Major: 0, Minor: 12, Subminor: 1}

	assert.Equal(t, 0, base.Compare(base))
	assert.Equal(t, -1, base.Compare(editorconfig.Version{Major: 1}))
	assert.Equal(t, 1, base.Compare(editorconfig.Version{Major: 0, Minor: 11, Subminor: 9}))
	assert.Equal(t, -1, base.Compare(editorconfig.Version{Major: 0, Minor: 12, Subminor: 2}))
}

func TestParseVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    editorconfig.Version
		wantErr bool
	}{
		{"0.12.1", editorconfig.Version{Major: 0, Minor: 12, Subminor: 1}, false},
		{"1", editorconfig.Version{Major: 1}, false},
		{" 2.3 ", editorconfig.Version{Major: 2, Minor: 3}, false},
		{"1.2.3.4", editorconfig.Version{}, true},
		{"one", editorconfig.Version{}, true},
		{"1.-2", editorconfig.Version{}, true},
		{"", editorconfig.Version{}, true},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			got, err := editorconfig.ParseVersion(testCase.input)
			if testCase.wantErr {
				require.ErrorIs(t, err, editorconfig.ErrInvalidVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestCurrentVersion(t *testing.T) {
	t.Parallel()

	current := editorconfig.CurrentVersion()
	assert.False(t, current.IsZero())

	parsed, err := editorconfig.ParseVersion(current.String())
	require.NoError(t, err)
	assert.Equal(t, current, parsed)
}
