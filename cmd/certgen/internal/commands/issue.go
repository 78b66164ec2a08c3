package commands

import (
	"context"

	"github.com/rs/zerolog/log"
)

type IssueCmd struct {
	Subject  SubjectFlags  `embed:""`
	Pipeline PipelineFlags `embed:""`

	CAKey  string `help:"Path to the CA private key." required:"" env:"CERTGEN_CA_KEY" type:"existingfile"`
	CACert string `help:"Path to the CA certificate." required:"" env:"CERTGEN_CA_CERT" type:"existingfile"`

	OutKey  string `help:"Write the issued private key to this path instead of stdout."`
	OutCert string `help:"Write the issued certificate to this path instead of stdout."`
}

func (c *IssueCmd) Run(ctx context.Context, globals *Globals) error {
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
	log.Info().
		Str("prefix", prefix).
		Str("cn", attrs.Get("CN")).
		Str("ca_cert", c.CACert).
		Msg("Issuing certificate")

	keyPEM, certPEM, err := gen.GenerateCertBuffers(ctx, prefix, c.Pipeline.Keep, attrs, c.CAKey, c.CACert)
	if err != nil {
		return err
	}

	if err := writePEM(c.OutKey, keyPEM, 0o600); err != nil {
		return err
	}
	if err := writePEM(c.OutCert, certPEM, 0o644); err != nil {
		return err
	}

	log.Info().
		Str("key", c.OutKey).
		Str("cert", c.OutCert).
		Bool("keep_artifacts", c.Pipeline.Keep).
		Msg("Certificate issued")

	return nil
}
