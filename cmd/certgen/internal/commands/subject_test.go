package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MrE-Fog/certgenMF/internal/certgen"
)

func writeSubjectFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "subject.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSubjectFlags_FlagsOnly(t *testing.T) {
	flags := &SubjectFlags{
		Country:    "US",
		Org:        "Acme",
		CommonName: "acme.test",
	}

	attrs, err := flags.Attributes()
	require.NoError(t, err)

	require.Equal(t, certgen.Attributes{
		"C":  {"US"},
		"O":  {"Acme"},
		"CN": {"acme.test"},
	}, attrs)
}

func TestSubjectFlags_FileScalarsAndSequences(t *testing.T) {
	path := writeSubjectFile(t, `
C: US
OU:
  - Eng
  - Legacy
CN: acme.test
`)
	flags := &SubjectFlags{SubjectFile: path}

	attrs, err := flags.Attributes()
	require.NoError(t, err)

	require.Equal(t, certgen.Attributes{
		"C":  {"US"},
		"OU": {"Eng", "Legacy"},
		"CN": {"acme.test"},
	}, attrs)
	require.Equal(t, "Eng", attrs.Get("OU"))
}

func TestSubjectFlags_FlagsOverrideFile(t *testing.T) {
	path := writeSubjectFile(t, `
CN: from-file.test
O: FileOrg
`)
	flags := &SubjectFlags{
		SubjectFile: path,
		CommonName:  "from-flag.test",
	}

	attrs, err := flags.Attributes()
	require.NoError(t, err)

	require.Equal(t, "from-flag.test", attrs.Get("CN"))
	require.Equal(t, "FileOrg", attrs.Get("O"))
}

func TestSubjectFlags_FileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not a mapping",
			content: "- just\n- a\n- list\n",
		},
		{
			name:    "non-string scalar",
			content: "CN:\n  nested: mapping\n",
		},
		{
			name:    "non-string list element",
			content: "OU:\n  - Eng\n  - 42\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := &SubjectFlags{SubjectFile: writeSubjectFile(t, tt.content)}
			_, err := flags.Attributes()
			require.Error(t, err)
		})
	}
}

func TestSubjectFlags_MissingFile(t *testing.T) {
	flags := &SubjectFlags{SubjectFile: filepath.Join(t.TempDir(), "missing.yaml")}

	_, err := flags.Attributes()
	require.Error(t, err)
}

func TestPipelineFlags_RunPrefix(t *testing.T) {
	flags := &PipelineFlags{Prefix: "fixed"}
	require.Equal(t, "fixed", flags.runPrefix())

	flags = &PipelineFlags{}
	first := flags.runPrefix()
	second := flags.runPrefix()
	require.True(t, len(first) > len("certgen-"))
	require.NotEqual(t, first, second)
}
