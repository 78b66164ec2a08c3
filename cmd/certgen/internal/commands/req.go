package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

type ReqCmd struct {
	Subject  SubjectFlags  `embed:""`
	Pipeline PipelineFlags `embed:""`

	OutKey string `help:"Write the private key to this path instead of stdout."`
	OutCSR string `help:"Write the CSR to this path instead of stdout." name:"out-csr"`
}

func (c *ReqCmd) Run(ctx context.Context, globals *Globals) error {
	attrs, err := c.Subject.Attributes()
	if err != nil {
		return err
	}

	gen, files := c.Pipeline.generator()
	defer func() {
		if err := files.Cleanup(); err != nil {
			log.Warn().Err(err).Msg("Artifact cleanup incomplete")
		}
	}()

	prefix := c.Pipeline.runPrefix()
	log.Info().Str("prefix", prefix).Str("cn", attrs.Get("CN")).Msg("Generating key and CSR")

	keyPath, csrPath, err := gen.GenerateRequest(ctx, prefix, c.Pipeline.Keep, attrs)
	if err != nil {
		return err
	}

	keyPEM, err := os.ReadFile(keyPath)
	if err != nil {
		return fmt.Errorf("failed to read generated key: %w", err)
	}
	csrPEM, err := os.ReadFile(csrPath)
	if err != nil {
		return fmt.Errorf("failed to read generated CSR: %w", err)
	}

	if err := writePEM(c.OutKey, keyPEM, 0o600); err != nil {
		return err
	}
	if err := writePEM(c.OutCSR, csrPEM, 0o644); err != nil {
		return err
	}

	log.Info().Str("key", c.OutKey).Str("csr", c.OutCSR).Msg("CSR generated")
	return nil
}
