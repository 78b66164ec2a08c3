package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	"github.com/MrE-Fog/certgenMF/cmd/certgen/internal/commands"
	"github.com/MrE-Fog/certgenMF/internal/logger"
)

var (
	version = "dev"
	cli     struct {
		Issue   commands.IssueCmd  `cmd:"" help:"Issue a certificate signed by a CA"`
		Req     commands.ReqCmd    `cmd:"" help:"Generate a private key and CSR for an external CA"`
		Config  commands.ConfigCmd `cmd:"" help:"Render the CSR config document"`
		Debug   bool               `help:"Enable debug mode."`
		Version kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	log.Logger = logger.Setup(cli.Debug)
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
}
