// Package call implements "woot call".
package call

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dearkafka/woot"
	"github.com/dearkafka/woot/middleware"
)

type Cmd struct {
	URL       string        `help:"Chatwoot base URL." env:"WOOT_URL" required:""`
	AccessKey string        `help:"API access token." env:"WOOT_ACCESS_KEY" name:"access-key" required:""`
	Timeout   time.Duration `help:"Request timeout." default:"60s"`
	Form      bool          `help:"Send bodies form encoded instead of JSON."`
	Validate  bool          `help:"Check arguments against their schema rules before sending."`
	Verbose   bool          `help:"Log requests to stderr." short:"v"`
	Output    string        `help:"Output format." enum:"json,yaml" default:"json" short:"o"`
	UserAgent string        `help:"User-Agent header." default:"woot/${version}" name:"user-agent"`

	Resource string   `arg:"" help:"Resource name, e.g. contacts."`
	Action   string   `arg:"" help:"Action name, e.g. get."`
	Args     []string `arg:"" optional:"" help:"Keyword arguments: key=string or key:=json."`
}

func (c *Cmd) Run(out io.Writer) error {
	args, err := ParseArgs(c.Args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := woot.NewConfig(c.URL, c.AccessKey).
		WithTimeout(c.Timeout).
		WithJSONEncodeBody(!c.Form).
		WithLogger(logger).
		WithInterceptor(middleware.Headers(middleware.HeadersConfig{UserAgent: c.UserAgent})).
		WithInterceptor(middleware.Logging(logger))
	if c.Validate {
		cfg = cfg.WithValidation()
	}

	res, err := woot.New(cfg).Call(context.Background(), c.Resource, c.Action, args)
	if err != nil {
		var te *woot.TransportError
		if errors.As(err, &te) && te.Response != nil {
			if werr := write(out, c.Output, te.Response.Body); werr != nil {
				return werr
			}
		}
		return err
	}
	return write(out, c.Output, res.Body)
}

// ParseArgs parses command line keyword arguments. "key=value" passes value
// as a string; "key:=value" parses value as JSON.
func ParseArgs(list []string) (woot.Args, error) {
	args := make(woot.Args, len(list))
	for _, kv := range list {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" || key == ":" {
			return nil, fmt.Errorf("invalid argument %q: want key=value or key:=json", kv)
		}
		if name, isJSON := strings.CutSuffix(key, ":"); isJSON {
			var v any
			if err := json.Unmarshal([]byte(value), &v); err != nil {
				return nil, fmt.Errorf("invalid JSON for %s: %w", name, err)
			}
			args[name] = v
			continue
		}
		args[key] = value
	}
	return args, nil
}

func write(out io.Writer, format string, body any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(body); err != nil {
			return err
		}
		return enc.Close()
	default:
		if s, ok := body.(string); ok {
			_, err := fmt.Fprintln(out, s)
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(body)
	}
}
