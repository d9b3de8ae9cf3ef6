package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command line flags.
type cliFlags struct {
	flavor       string
	headingShift int
	toc          bool
	output       string
	config       string
	verbose      bool
	version      bool

	// Set from FlagSet.Changed after parsing, so a config file value
	// only applies when the flag was not given explicitly.
	shiftSet bool
	tocSet   bool
}

// parseFlags parses command line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2wiki", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.flavor, "flavor", "f", "", "markup flavor: jira or confluence")
	fs.IntVarP(&f.headingShift, "modify-headings", "m", 0, "shift every heading level by N (may be negative)")
	fs.BoolVar(&f.toc, "toc", false, "emit a {toc} macro before the document")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	f.shiftSet = fs.Changed("modify-headings")
	f.tocSet = fs.Changed("toc")

	return f, fs.Args(), nil
}

// printUsage writes the usage text.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: md2wiki [flags] [input.md]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Converts Markdown to Atlassian (Jira/Confluence) wiki markup.")
	fmt.Fprintln(w, "Reads the input file, or stdin when piped; with neither, opens $EDITOR.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
