package commands

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/MrE-Fog/certgenMF/internal/certgen"
	"github.com/MrE-Fog/certgenMF/internal/openssl"
	"github.com/MrE-Fog/certgenMF/internal/tmpfile"
)

type Globals struct {
	Debug   bool
	Version string
}

// PipelineFlags carries the knobs shared by every command that runs the
// issuance pipeline.
type PipelineFlags struct {
	Prefix  string `help:"Artifact file name prefix; defaults to a unique per-run value." env:"CERTGEN_PREFIX"`
	Keep    bool   `help:"Keep pipeline artifacts on disk after the run." env:"CERTGEN_KEEP"`
	Bits    int    `help:"RSA modulus size in bits." default:"1024" env:"CERTGEN_BITS"`
	OpenSSL string `help:"openssl binary to invoke." default:"openssl" env:"CERTGEN_OPENSSL"`
	TempDir string `help:"Directory for pipeline artifacts; defaults to the system temp directory." env:"CERTGEN_TMPDIR"`
}

func (p *PipelineFlags) generator() (*certgen.Generator, *tmpfile.Registry) {
	files := tmpfile.NewRegistry(p.TempDir)
	gen := &certgen.Generator{
		Tool:  &openssl.Tool{Bin: p.OpenSSL},
		Files: files,
		Bits:  p.Bits,
	}
	return gen, files
}

// runPrefix returns the configured prefix, or a unique one so concurrent
// invocations never collide on artifact names.
func (p *PipelineFlags) runPrefix() string {
	if p.Prefix != "" {
		return p.Prefix
	}
	return "certgen-" + uuid.NewString()[:8]
}

// writePEM writes data to path, or to stdout when path is empty.
func writePEM(path string, data []byte, perm os.FileMode) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
