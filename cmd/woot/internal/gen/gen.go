// Package gen implements "woot gen".
package gen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dearkafka/woot/chatwoot"
	"github.com/dearkafka/woot/wootgen"
)

type Cmd struct {
	Out     string `arg:"" optional:"" help:"Output file (default: stdout)." type:"path"`
	Package string `help:"Package name of the generated file." short:"p" default:"wootapi"`
	PkgPath string `help:"Import path of the generated package." name:"pkg-path"`
}

func (c *Cmd) Run(out io.Writer) error {
	command := "woot gen -p " + c.Package
	if c.Out != "" {
		command += " " + filepath.Base(c.Out)
	}
	src, err := wootgen.Generate(chatwoot.Registry, wootgen.Options{
		Package: c.Package,
		PkgPath: c.PkgPath,
		Command: command,
	})
	if err != nil {
		if len(src) > 0 {
			fmt.Fprint(os.Stderr, string(src))
		}
		return err
	}

	if c.Out == "" {
		_, err = out.Write(src)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.Out), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return os.WriteFile(c.Out, src, 0o644)
}
