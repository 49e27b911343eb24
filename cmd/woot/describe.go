package main

import (
	"fmt"
	"io"

	"github.com/dearkafka/woot"
)

type DescribeCmd struct {
	Resource string `arg:"" optional:"" help:"Resource to describe (default: all)."`
	Action   string `arg:"" optional:"" help:"Action to show the signature of."`
}

func (c *DescribeCmd) Run(out io.Writer) error {
	client := woot.New(woot.NewConfig("", ""))
	if c.Resource == "" {
		fmt.Fprint(out, client.Describe())
		return nil
	}
	r := client.Resource(c.Resource)
	if r == nil {
		return fmt.Errorf("%w: %s", woot.ErrUnknownResource, c.Resource)
	}
	if c.Action == "" {
		fmt.Fprint(out, r.Describe())
		return nil
	}
	a := r.Action(c.Action)
	if a == nil {
		return fmt.Errorf("%w: %s.%s", woot.ErrUnknownAction, c.Resource, c.Action)
	}
	d := a.Descriptor()
	fmt.Fprintf(out, "%s.%s: %s %s\n", r.Name(), a.Name(), d.Method, d.URL)
	for _, p := range a.Params() {
		req := ""
		if p.Required {
			req = " (required)"
		}
		fmt.Fprintf(out, "  %-5s %s %s%s\n", p.Kind, p.Name, p.Type, req)
	}
	return nil
}
