package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/qtwr/typewright/internal/logutil"
	"github.com/qtwr/typewright/runner"
	"github.com/qtwr/typewright/source"
)

var (
	flagSrc      string
	flagSrcLang  string
	flagLang     string
	flagTopLevel string
	flagExtra    []string
	flagOutput   string
	flagTimeout  int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate types once, without the TUI",
	Long: `Run quicktype once and print the result to stdout.

The source may be a file, a directory, a URL, or "-" for stdin.

Examples:
  # From a local sample
  typewright run --src sample.json --lang go

  # From a URL, TypeScript output with extra quicktype flags
  typewright run --src https://api.example.com/order --lang typescript \
    --flag just-types --flag acronym-style=original

  # From stdin into a file
  cat sample.json | typewright run --src - --lang rust --output order.rs`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runOnce,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&flagSrc, "src", "", "input file, directory, URL, or - for stdin")
	f.StringVar(&flagSrcLang, "src-lang", "", "source language (json, schema, typescript, graphql, postman)")
	f.StringVar(&flagLang, "lang", "", "target language (required)")
	f.StringVar(&flagTopLevel, "top-level", "", "name for the top-level generated type")
	f.StringSliceVar(&flagExtra, "flag", nil, "extra quicktype flag, name or name=value (repeatable)")
	f.StringVar(&flagOutput, "output", "", "write output to this file instead of stdout")
	f.IntVar(&flagTimeout, "timeout", 0, "timeout in milliseconds (0 uses the config value)")
}

func runOnce(cmd *cobra.Command, args []string) error {
	if flagSrc == "" {
		return fmt.Errorf("--src is required")
	}
	if flagLang == "" {
		return fmt.Errorf("--lang is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, closeLog, err := logutil.New(cfg.DebugLog, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	in := detectInput(flagSrc)
	payload, err := source.Load(cmd.Context(), in, os.Stdin)
	if err != nil {
		return err
	}

	srcLang := flagSrcLang
	if srcLang == "" {
		srcLang = cfg.SrcLang
	}
	timeout := flagTimeout
	if timeout == 0 {
		timeout = cfg.TimeoutMS
	}

	opts := runner.Options{
		Tool:     cfg.Tool,
		SrcLang:  srcLang,
		Lang:     flagLang,
		TopLevel: flagTopLevel,
		Flags:    parseExtraFlags(flagExtra),
		Timeout:  time.Duration(timeout) * time.Millisecond,
	}

	log.Debugw("running quicktype", "args", opts.Args(payload.Paths))
	res, err := runner.Run(cmd.Context(), opts, payload.Data, payload.Paths)
	if err != nil {
		// Surface the tool's own diagnostics alongside the failure.
		if strings.TrimSpace(res.Output) != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), strings.TrimSpace(res.Output))
		}
		return err
	}

	if flagOutput != "" {
		if err := os.WriteFile(flagOutput, []byte(res.Output), 0o644); err != nil {
			return fmt.Errorf("write output: %s", err)
		}
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), res.Output)
	return nil
}

// detectInput maps the --src value to a source kind: "-" is stdin, anything
// that parses with an http(s) scheme is a URL, an existing directory is a
// directory, and everything else is treated as a file path.
func detectInput(src string) source.Input {
	if src == "-" {
		return source.Input{Kind: source.KindStdin}
	}
	if u, err := url.Parse(src); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return source.Input{Kind: source.KindURL, Value: src}
	}
	if info, err := os.Stat(src); err == nil && info.IsDir() {
		return source.Input{Kind: source.KindDir, Value: src}
	}
	return source.Input{Kind: source.KindFile, Value: src}
}

func parseExtraFlags(raw []string) []runner.Flag {
	var flags []runner.Flag
	for _, f := range raw {
		name, value, _ := strings.Cut(f, "=")
		if name == "" {
			continue
		}
		flags = append(flags, runner.Flag{Name: name, Value: value})
	}
	return flags
}
