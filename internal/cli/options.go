package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexivanou/carryon-checker/internal/model"
)

// Format selects how results are written
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Options is a parsed command line of the check command
type Options struct {
	Request model.CheckRequest
	Format  Format
	// Catalog ranks the suitcase catalogue instead of checking one suitcase
	Catalog bool
}

// ParseArgs parses the check command line. defaultLang is used when -lang is not given.
func ParseArgs(args []string, defaultLang string, output io.Writer) (*Options, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		width   = fs.Float64("w", 0, "Suitcase width in cm")
		height  = fs.Float64("h", 0, "Suitcase height in cm")
		depth   = fs.Float64("d", 0, "Suitcase depth in cm")
		weight  = fs.String("weight", "", "Suitcase weight in kg (optional)")
		lang    = fs.String("lang", defaultLang, "Region labels: ja or en")
		format  = fs.String("format", string(FormatText), "Output format: text or json")
		similar = fs.Bool("similar", false, "List catalogue suitcases of similar size")
		catalog = fs.Bool("catalog", false, "Rank the suitcase catalogue")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := &Options{
		Format:  Format(strings.ToLower(*format)),
		Catalog: *catalog,
		Request: model.CheckRequest{
			Suitcase: model.Suitcase{Width: *width, Height: *height, Depth: *depth},
			Lang:     *lang,
			Similar:  *similar,
		},
	}

	if opts.Format != FormatText && opts.Format != FormatJSON {
		return nil, fmt.Errorf("unknown output format %q", *format)
	}
	if *lang != "ja" && *lang != "en" {
		return nil, fmt.Errorf("unknown language %q", *lang)
	}

	if *weight != "" {
		w, err := strconv.ParseFloat(*weight, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", *weight, errors.Unwrap(err))
		}
		opts.Request.Suitcase.Weight = &w
	}

	return opts, nil
}
