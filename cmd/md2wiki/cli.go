package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	md2wiki "github.com/tmatias/go-md2wiki"
	"github.com/tmatias/go-md2wiki/internal/config"
)

// run resolves configuration and input, converts, and writes output.
func run(flags *cliFlags, args []string, env *Environment) error {
	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	flavorName := cfg.Flavor
	if flags.flavor != "" {
		flavorName = flags.flavor
	}
	flavor, err := md2wiki.ParseFlavor(flavorName)
	if err != nil {
		return err
	}

	shift := cfg.HeadingShift
	if flags.shiftSet {
		shift = flags.headingShift
	}
	toc := cfg.TOC
	if flags.tocSet {
		toc = flags.toc
	}

	markdown, err := readInput(args, env)
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Converting %d bytes to %s markup\n", len(markdown), flavor)
	}

	out, closeOut, err := openOutput(flags.output, env)
	if err != nil {
		return err
	}

	svc := md2wiki.New(md2wiki.WithFlavor(flavor))
	bw := bufio.NewWriter(out)
	convErr := svc.ConvertTo(context.Background(), bw, md2wiki.Input{
		Markdown:     markdown,
		HeadingShift: shift,
		TOC:          toc,
	})
	if convErr == nil {
		convErr = bw.Flush()
	}
	if err := closeOut(); err != nil && convErr == nil {
		convErr = err
	}
	if convErr != nil {
		return convErr
	}

	if flags.output != "" && flags.verbose {
		fmt.Fprintf(env.Stderr, "Created %s\n", flags.output)
	}
	return nil
}

// resolveConfig loads the config file named by -c, or defaults.
func resolveConfig(flags *cliFlags) (*config.Config, error) {
	if flags.config == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(flags.config)
}

// readInput takes the first positional arg as an input file; without
// one it reads piped stdin, and on a terminal it falls back to $EDITOR.
func readInput(args []string, env *Environment) (string, error) {
	if len(args) > 0 {
		content, err := os.ReadFile(args[0]) // #nosec G304 -- input path is user-provided
		if err != nil {
			return "", fmt.Errorf("reading input file: %w", err)
		}
		return string(content), nil
	}

	if !env.StdinIsTerminal() {
		content, err := io.ReadAll(env.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(content), nil
	}

	return env.Editor()
}

// openOutput returns the sink for converted markup and a close func.
func openOutput(path string, env *Environment) (io.Writer, func() error, error) {
	if path == "" {
		return env.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path) // #nosec G304 -- output path is user-provided
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}
