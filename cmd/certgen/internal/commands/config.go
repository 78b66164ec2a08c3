package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/MrE-Fog/certgenMF/internal/certgen"
)

// ConfigCmd renders the CSR config document to stdout without running the
// pipeline, for inspection and debugging.
type ConfigCmd struct {
	Subject SubjectFlags `embed:""`
	Bits    int          `help:"RSA modulus size in bits." default:"1024" env:"CERTGEN_BITS"`
}

func (c *ConfigCmd) Run(ctx context.Context, globals *Globals) error {
	attrs, err := c.Subject.Attributes()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprint(os.Stdout, certgen.RenderConfig(attrs, c.Bits)); err != nil {
		return err
	}
	return nil
}
