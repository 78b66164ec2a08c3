package certgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MrE-Fog/certgenMF/internal/tmpfile"
)

const wantPreamble = `[ req ]
default_bits           = 1024
default_keyfile        = keyfile.pem
distinguished_name     = req_distinguished_name
prompt                 = no

[ req_distinguished_name ]
`

func TestRenderConfig_PreambleOnly(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attributes
	}{
		{
			name:  "no attributes",
			attrs: Attributes{},
		},
		{
			name:  "nil attributes",
			attrs: nil,
		},
		{
			name: "only unrecognized keys",
			attrs: Attributes{
				"emailAddress": {"ops@acme.test"},
				"serialNumber": {"42"},
				"cn":           {"lowercase is not recognized"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, wantPreamble, RenderConfig(tt.attrs, 0))
		})
	}
}

func TestRenderConfig_SubjectLines(t *testing.T) {
	attrs := Attributes{
		"C":  {"US"},
		"ST": {"CA"},
		"O":  {"Acme"},
		"OU": {"Eng", "Legacy"},
		"CN": {"acme.test"},
	}

	doc := RenderConfig(attrs, 0)

	require.True(t, strings.HasPrefix(doc, wantPreamble))
	require.Contains(t, doc, "C = US\n")
	require.Contains(t, doc, "ST = CA\n")
	require.Contains(t, doc, "O = Acme\n")
	require.Contains(t, doc, "OU = Eng\n")
	require.Contains(t, doc, "CN = acme.test\n")
	require.NotContains(t, doc, "L = ")
	require.NotContains(t, doc, "Legacy")
}

func TestRenderConfig_EachKeyAppearsOnce(t *testing.T) {
	attrs := Attributes{"CN": {"acme.test"}}

	doc := RenderConfig(attrs, 0)

	require.Equal(t, 1, strings.Count(doc, "CN = "))
}

func TestRenderConfig_BitsOverride(t *testing.T) {
	doc := RenderConfig(Attributes{}, 2048)

	require.Contains(t, doc, "default_bits           = 2048\n")
	require.NotContains(t, doc, "= 1024")
}

func TestWriteConfig_WritesDocument(t *testing.T) {
	gen := &Generator{Files: tmpfile.NewRegistry(t.TempDir())}
	attrs := Attributes{"CN": {"acme.test"}}

	path, err := gen.WriteConfig(tmpfile.Spec{Prefix: "t1-", Suffix: ".cfg"}, attrs)
	require.NoError(t, err)

	base := filepath.Base(path)
	require.True(t, strings.HasPrefix(base, "t1-"), "got %q", base)
	require.True(t, strings.HasSuffix(base, ".cfg"), "got %q", base)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, RenderConfig(attrs, 0), string(content))
}

func TestWriteConfig_AllocationFailure(t *testing.T) {
	gen := &Generator{Files: tmpfile.NewRegistry(filepath.Join(t.TempDir(), "missing"))}

	_, err := gen.WriteConfig(tmpfile.Spec{Prefix: "t1-", Suffix: ".cfg"}, Attributes{})
	require.ErrorIs(t, err, tmpfile.ErrAllocate)
}
