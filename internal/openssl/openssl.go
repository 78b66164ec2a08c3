// Package openssl drives the openssl command line tool for RSA key
// generation, CSR generation and certificate signing. Every invocation uses
// an explicit argument vector; subject values and file paths never pass
// through a shell.
package openssl

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// DefaultBin is the binary invoked when Tool.Bin is empty.
const DefaultBin = "openssl"

// Tool invokes a PEM-producing openssl (or compatible, e.g. LibreSSL)
// binary. The zero value uses DefaultBin from PATH.
type Tool struct {
	// Bin is the binary name or path to invoke.
	Bin string
}

// GenerateRSAKey writes a PEM-encoded RSA private key of the given modulus
// size to keyPath.
func (t *Tool) GenerateRSAKey(ctx context.Context, keyPath string, bits int) error {
	return t.run(ctx, "genrsa", "-out", keyPath, strconv.Itoa(bits))
}

// GenerateCSR writes a PEM-encoded certificate signing request to csrPath,
// built from the private key at keyPath and the request configuration
// document at configPath. The config document must carry prompt = no so the
// run needs no terminal.
func (t *Tool) GenerateCSR(ctx context.Context, keyPath, configPath, csrPath string) error {
	return t.run(ctx, "req", "-new", "-key", keyPath, "-config", configPath, "-out", csrPath)
}

// SignCSR signs the CSR at csrPath with the CA key and certificate, writing
// the PEM-encoded certificate to certPath. A serial file is created next to
// the CA certificate if the CA has no serial state yet.
func (t *Tool) SignCSR(ctx context.Context, csrPath, caKeyPath, caCertPath, certPath string) error {
	return t.run(ctx,
		"x509", "-req",
		"-in", csrPath,
		"-CA", caCertPath,
		"-CAkey", caKeyPath,
		"-CAcreateserial",
		"-out", certPath)
}

func (t *Tool) bin() string {
	if t.Bin == "" {
		return DefaultBin
	}
	return t.Bin
}

func (t *Tool) run(ctx context.Context, args ...string) error {
	// #nosec G204 - fixed subcommand names with path arguments, no shell involved
	cmd := exec.CommandContext(ctx, t.bin(), args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			diag := strings.TrimSpace(string(output))
			if diag == "" {
				diag = exitErr.String()
			}
			return fmt.Errorf("%w: %s %s: %s", ErrToolFailed, t.bin(), args[0], diag)
		}
		return fmt.Errorf("%w: %s: %v", ErrToolStart, t.bin(), err)
	}

	log.Debug().Str("bin", t.bin()).Strs("args", args).Msg("openssl invocation completed")
	return nil
}
