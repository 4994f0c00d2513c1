// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/poiesic/termfinder"
	"github.com/poiesic/termfinder/core"
	"github.com/poiesic/termfinder/export"
	"github.com/poiesic/termfinder/resolve"
	"github.com/poiesic/termfinder/umls"
	"github.com/urfave/cli/v2"
)

func main() {
	// A missing .env is fine; flags and the environment still apply.
	_ = godotenv.Load()

	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "termfinder",
		Usage:     "Look up clinical terms in the UMLS Metathesaurus",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "lookup",
				Usage:     "Resolve a term into source vocabulary codes",
				ArgsUsage: "[term...]",
				Action:    lookupCommand,
				Flags:     lookupFlags(),
			},
		},
	}
}

func lookupFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "api-key",
			Usage:   "UTS API key",
			EnvVars: []string{"UMLS_API_KEY"},
		},
		&cli.StringFlag{
			Name:    "base-url",
			Usage:   "UTS REST API base URL",
			EnvVars: []string{"UMLS_BASE_URL"},
			Value:   umls.DefaultBaseURL,
		},
		&cli.StringFlag{
			Name:    "version",
			Usage:   "UMLS release to query",
			EnvVars: []string{"UMLS_VERSION"},
			Value:   umls.DefaultVersion,
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Timeout for each UTS request",
			Value: umls.DefaultTimeout,
		},
		&cli.StringSliceFlag{
			Name:  "sabs",
			Usage: "Source vocabularies to return atoms from (repeatable or comma separated)",
			Value: cli.NewStringSlice(core.DefaultSources()...),
		},
		&cli.StringSliceFlag{
			Name:  "fallback-sabs",
			Usage: "Source vocabularies of the restricted fallback search",
			Value: cli.NewStringSlice(resolve.DefaultFallbackSources()...),
		},
		&cli.BoolFlag{
			Name:  "no-fallback",
			Usage: "Skip the restricted fallback search",
		},
		&cli.IntFlag{
			Name:  "max-pages",
			Usage: "Maximum search pages requested in the unrestricted pass",
			Value: resolve.DefaultMaxPages,
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "Maximum candidate concepts taken from each search pass",
			Value: resolve.DefaultPassLimit,
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (text, json, fhir)",
			Value:   string(export.FormatText),
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "Print each lookup step to stderr",
		},
	}
}

func lookupCommand(c *cli.Context) error {
	format, err := export.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	apiKey := c.String("api-key")
	if strings.TrimSpace(apiKey) == "" {
		return fmt.Errorf("%w: pass --api-key or set UMLS_API_KEY", umls.ErrAPIKeyRequired)
	}

	cfg := umls.NewConfig(
		umls.WithAPIKey(apiKey),
		umls.WithBaseURL(c.String("base-url")),
		umls.WithVersion(c.String("version")),
		umls.WithTimeout(c.Duration("timeout")),
	)

	resolverOpts := []resolve.Option{
		resolve.WithPassLimit(c.Int("limit")),
		resolve.WithMaxPages(c.Int("max-pages")),
	}
	if c.Bool("no-fallback") {
		resolverOpts = append(resolverOpts, resolve.WithFallbackSources())
	} else {
		resolverOpts = append(resolverOpts, resolve.WithFallbackSources(c.StringSlice("fallback-sabs")...))
	}

	finderOpts := []termfinder.FinderOption{
		termfinder.WithResolverOptions(resolverOpts...),
	}
	if c.Bool("trace") {
		finderOpts = append(finderOpts, termfinder.WithMonitor(resolve.NewTraceMonitor(c.App.ErrWriter)))
	}

	finder, err := termfinder.NewFinder(cfg, finderOpts...)
	if err != nil {
		return err
	}
	defer finder.Close()

	term := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(term) == "" {
		term, err = promptTerm(c.App.Reader, c.App.Writer)
		if err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	req := core.NewResolutionRequest(term, c.StringSlice("sabs")...)
	res, err := finder.Lookup(ctx, req)
	if err != nil {
		return err
	}
	slog.Debug("lookup complete",
		"term", req.Term(),
		"found", res.Found(),
		"elapsed", time.Since(start))

	return export.Write(c.App.Writer, format, res)
}

// promptTerm reads a single line from r after printing a prompt to w.
func promptTerm(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, "Enter search term: ")
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading search term: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", core.ErrEmptyTerm
	}
	return line, nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
