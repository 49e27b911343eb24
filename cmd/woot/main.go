package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dearkafka/woot/cmd/woot/internal/call"
	"github.com/dearkafka/woot/cmd/woot/internal/gen"
	"github.com/dearkafka/woot/cmd/woot/internal/spec"
)

type CLI struct {
	Version  VersionCmd  `cmd:"" help:"Print version information."`
	Describe DescribeCmd `cmd:"" help:"List resources and actions."`
	Call     call.Cmd    `cmd:"" help:"Call an action and print the response."`
	OpenAPI  spec.Cmd    `cmd:"" name:"openapi" help:"Export the actions as an OpenAPI document."`
	Gen      gen.Cmd     `cmd:"" help:"Generate typed Go wrappers for the actions."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(out io.Writer) error {
	fmt.Fprintln(out, Version())
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("woot"),
		kong.Description("Chatwoot API client."),
		kong.UsageOnError(),
		kong.Vars{"version": Version()},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
