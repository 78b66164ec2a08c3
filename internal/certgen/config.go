package certgen

import (
	"fmt"
	"os"
	"strings"

	"github.com/MrE-Fog/certgenMF/internal/tmpfile"
)

// DefaultBits is the RSA modulus size used when a Generator does not
// override it. It matches the config document's historical default.
const DefaultBits = 1024

// RenderConfig produces the openssl request configuration document for the
// given subject attributes: a fixed [ req ] preamble followed by one line per
// recognized distinguished-name key present in attrs. The output format is
// what openssl req expects; prompt = no keeps runs non-interactive.
func RenderConfig(attrs Attributes, bits int) string {
	if bits <= 0 {
		bits = DefaultBits
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[ req ]\n")
	fmt.Fprintf(&b, "default_bits           = %d\n", bits)
	fmt.Fprintf(&b, "default_keyfile        = keyfile.pem\n")
	fmt.Fprintf(&b, "distinguished_name     = req_distinguished_name\n")
	fmt.Fprintf(&b, "prompt                 = no\n")
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "[ req_distinguished_name ]\n")

	for _, key := range subjectKeys {
		if attrs.Has(key) {
			fmt.Fprintf(&b, "%s = %s\n", key, attrs.Get(key))
		}
	}

	return b.String()
}

// WriteConfig allocates an ephemeral file per spec and writes the request
// configuration document for attrs into it, returning the file's location.
func (g *Generator) WriteConfig(spec tmpfile.Spec, attrs Attributes) (string, error) {
	path, err := g.Files.Create(spec)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(RenderConfig(attrs, g.Bits)), 0o600); err != nil {
		return "", fmt.Errorf("%w: %v", ErrArtifactIO, err)
	}
	return path, nil
}
