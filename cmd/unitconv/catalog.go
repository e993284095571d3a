package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/sambeau/unitconv/internal/catalogdoc"
)

func runCatalog(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("catalog", flag.ContinueOnError)
	flags.SetOutput(stderr)
	html := flags.Bool("html", false, "render the catalogue as an HTML fragment")
	flags.Bool("markdown", false, "render the catalogue as Markdown (default)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *html {
		out, err := catalogdoc.HTML()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, out)
		return nil
	}

	fmt.Fprintln(stdout, catalogdoc.Markdown())
	return nil
}
