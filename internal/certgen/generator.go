// Package certgen issues X.509 certificates signed by a caller-supplied CA.
// The heavy lifting is delegated to openssl; this package owns the pipeline:
// stage sequencing, request-config synthesis, ephemeral artifact naming and
// first-failure-wins error propagation.
//
// A full run chains four stages, each producing one artifact consumed
// downstream: private key, request config, CSR, then the signed certificate.
// Stages never delete each other's artifacts; lifetime is entirely the
// tmpfile.Registry's concern, so a failed run leaves its partial artifacts
// in place under the registry's usual keep/cleanup policy.
package certgen

import (
	"context"
	"fmt"
	"os"

	"github.com/MrE-Fog/certgenMF/internal/openssl"
	"github.com/MrE-Fog/certgenMF/internal/tmpfile"
)

// Generator runs certificate issuance pipelines. Tool and Files must be set;
// Bits defaults to DefaultBits when zero. A Generator is stateless across
// runs and safe for concurrent use as long as each run uses a distinct
// artifact prefix.
type Generator struct {
	Tool  *openssl.Tool
	Files *tmpfile.Registry
	// Bits is the RSA modulus size for generated keys and the config
	// document's default_bits line.
	Bits int
}

func (g *Generator) bits() int {
	if g.Bits <= 0 {
		return DefaultBits
	}
	return g.Bits
}

// GenerateKey allocates an ephemeral file per spec and generates an RSA
// private key into it, returning the key's location.
func (g *Generator) GenerateKey(ctx context.Context, spec tmpfile.Spec) (string, error) {
	path, err := g.Files.Create(spec)
	if err != nil {
		return "", err
	}
	if err := g.Tool.GenerateRSAKey(ctx, path, g.bits()); err != nil {
		return "", err
	}
	return path, nil
}

// GenerateCSR allocates an ephemeral file per spec and generates a CSR into
// it from the key and request config at the given locations. Both inputs
// must already exist; the pipeline guarantees that ordering.
func (g *Generator) GenerateCSR(ctx context.Context, spec tmpfile.Spec, keyPath, configPath string) (string, error) {
	path, err := g.Files.Create(spec)
	if err != nil {
		return "", err
	}
	if err := g.Tool.GenerateCSR(ctx, keyPath, configPath, path); err != nil {
		return "", err
	}
	return path, nil
}

// SignCert allocates an ephemeral file per spec and signs the CSR at
// csrPath with the CA key and certificate, returning the signed
// certificate's location.
func (g *Generator) SignCert(ctx context.Context, spec tmpfile.Spec, csrPath, caKeyPath, caCertPath string) (string, error) {
	path, err := g.Files.Create(spec)
	if err != nil {
		return "", err
	}
	if err := g.Tool.SignCSR(ctx, csrPath, caKeyPath, caCertPath, path); err != nil {
		return "", err
	}
	return path, nil
}

// GenerateCert runs the full pipeline: key, request config, CSR, signed
// certificate. The first failing stage aborts the rest and its error is
// returned unmodified; artifacts created before the failure stay on disk
// under the registry's cleanup policy. Intermediate artifacts (config, CSR)
// are not returned but share that same lifecycle.
//
// Artifact names derive from prefix with stage-specific infixes, so
// concurrent runs with distinct prefixes never collide.
func (g *Generator) GenerateCert(ctx context.Context, prefix string, keep bool, attrs Attributes, caKeyPath, caCertPath string) (string, string, error) {
	spec := tmpfile.Spec{Prefix: prefix + "-", Suffix: ".pem", Keep: keep}

	keyPath, err := g.GenerateKey(ctx, spec)
	if err != nil {
		return "", "", err
	}

	spec.Suffix = ".cfg"
	configPath, err := g.WriteConfig(spec, attrs)
	if err != nil {
		return "", "", err
	}

	spec.Suffix = ".pem"
	spec.Prefix = prefix + "-csr-"
	csrPath, err := g.GenerateCSR(ctx, spec, keyPath, configPath)
	if err != nil {
		return "", "", err
	}

	spec.Prefix = prefix + "-cert-"
	certPath, err := g.SignCert(ctx, spec, csrPath, caKeyPath, caCertPath)
	if err != nil {
		return "", "", err
	}

	return keyPath, certPath, nil
}

// GenerateRequest runs the first three stages only, producing a key and a
// CSR for submission to an external CA.
func (g *Generator) GenerateRequest(ctx context.Context, prefix string, keep bool, attrs Attributes) (string, string, error) {
	spec := tmpfile.Spec{Prefix: prefix + "-", Suffix: ".pem", Keep: keep}

	keyPath, err := g.GenerateKey(ctx, spec)
	if err != nil {
		return "", "", err
	}

	spec.Suffix = ".cfg"
	configPath, err := g.WriteConfig(spec, attrs)
	if err != nil {
		return "", "", err
	}

	spec.Suffix = ".pem"
	spec.Prefix = prefix + "-csr-"
	csrPath, err := g.GenerateCSR(ctx, spec, keyPath, configPath)
	if err != nil {
		return "", "", err
	}

	return keyPath, csrPath, nil
}

// GenerateCertBuffers runs GenerateCert and reads the resulting key and
// certificate fully into memory, returning (keyPEM, certPEM). A read failure
// is reported as ErrArtifactIO even when the pipeline itself succeeded; the
// run is not retried.
func (g *Generator) GenerateCertBuffers(ctx context.Context, prefix string, keep bool, attrs Attributes, caKeyPath, caCertPath string) ([]byte, []byte, error) {
	keyPath, certPath, err := g.GenerateCert(ctx, prefix, keep, attrs, caKeyPath, caCertPath)
	if err != nil {
		return nil, nil, err
	}

	certPEM, err := os.ReadFile(certPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrArtifactIO, err)
	}
	keyPEM, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrArtifactIO, err)
	}

	return keyPEM, certPEM, nil
}
