// Package spec implements "woot openapi".
package spec

import (
	"fmt"
	"io"
	"os"

	"github.com/dearkafka/woot/chatwoot"
	"github.com/dearkafka/woot/openapi"
)

type Cmd struct {
	Format string `help:"Output format." enum:"yaml,json" default:"yaml" short:"f"`
	Out    string `help:"Write to file instead of stdout." short:"o" type:"path"`
	Title  string `help:"Document title." default:"Chatwoot API"`
	Server string `help:"Server URL." env:"WOOT_URL"`
}

func (c *Cmd) Run(out io.Writer) error {
	doc, err := openapi.Build(chatwoot.Registry, openapi.Info{
		Title:     c.Title,
		ServerURL: c.Server,
	})
	if err != nil {
		return err
	}

	var data []byte
	switch c.Format {
	case "json":
		data, err = openapi.JSON(doc)
		data = append(data, '\n')
	default:
		data, err = openapi.YAML(doc)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.Format, err)
	}

	if c.Out != "" {
		return os.WriteFile(c.Out, data, 0o644)
	}
	_, err = out.Write(data)
	return err
}
