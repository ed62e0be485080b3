package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/colorspiral/config"
	"github.com/katalvlaran/colorspiral/spiral"
	"github.com/katalvlaran/colorspiral/swatch"
)

// cli holds the parsed command line.
type cli struct {
	k       int
	keys    string
	cfg     string
	format  string
	pngPath string
	layout  string
	columns int
	cell    int
	size    int

	opts []spiral.Option
}

// errUsage marks bad flag values; the usage text has already been shown.
var errUsage = errors.New("invalid usage")

func parseArgs(args []string, stderr io.Writer) (cli, error) {
	var c cli
	fs := flag.NewFlagSet("colorspiral", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&c.k, "k", 8, "Number of colours to generate. Ignored when -keys is set.")
	fs.StringVar(&c.keys, "keys", "", "Comma-separated category names; prints one colour per name.")
	fs.StringVar(&c.cfg, "config", "", "TOML parameter file. Flags given explicitly override it.")
	fs.StringVar(&c.format, "format", "text", "Output format. Legal values are 'text', 'hex' and 'json'.")
	fs.StringVar(&c.pngPath, "png", "", "Also render the colours to this PNG file.")
	fs.StringVar(&c.layout, "layout", "grid", "PNG layout. Legal values are 'grid' and 'disc'.")
	fs.IntVar(&c.columns, "columns", swatch.DefaultColumns, "Grid cells per row.")
	fs.IntVar(&c.cell, "cell", swatch.DefaultCell, "Grid cell edge in pixels.")
	fs.IntVar(&c.size, "size", swatch.DefaultSize, "Disc image edge in pixels.")

	a := fs.Float64("a", spiral.DefaultA, "Spiral parameter a: initial direction and radius scale (>= 0).")
	b := fs.Float64("b", spiral.DefaultB, "Spiral parameter b: rate of revolution (> 0).")
	vInit := fs.Float64("v-init", spiral.DefaultVInit, "Brightness at the start of the path, in [0,1].")
	vFinal := fs.Float64("v-final", spiral.DefaultVFinal, "Brightness at the end of the path, in [0,1].")
	jitter := fs.Float64("jitter", spiral.DefaultJitter, "Brightness jitter amplitude, in [0,1].")
	offset := fs.Float64("offset", spiral.DefaultOffset, "Fraction of the path skipped before sampling, in (0,1).")
	seed := fs.Int64("seed", 0, "Seed for the jitter source. 0 uses an unseeded source, overriding any seed in -config.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return c, err
		}
		return c, errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return c, errUsage
	}

	if c.cfg != "" {
		f, err := config.Load(c.cfg)
		if err != nil {
			return c, err
		}
		c.opts = append(c.opts, f.Options()...)
	}

	// Explicit flags win over the file; untouched flags keep the file's values.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			c.opts = append(c.opts, spiral.WithA(*a))
		case "b":
			c.opts = append(c.opts, spiral.WithB(*b))
		case "v-init":
			c.opts = append(c.opts, spiral.WithVInit(*vInit))
		case "v-final":
			c.opts = append(c.opts, spiral.WithVFinal(*vFinal))
		case "jitter":
			c.opts = append(c.opts, spiral.WithJitter(*jitter))
		case "offset":
			c.opts = append(c.opts, spiral.WithOffset(*offset))
		case "seed":
			if *seed != 0 {
				c.opts = append(c.opts, spiral.WithSeed(*seed))
			} else {
				c.opts = append(c.opts, spiral.WithAmbientRand())
			}
		}
	})

	switch c.format {
	case "text", "hex", "json":
	default:
		fmt.Fprintln(stderr, "Invalid value for flag -format. Legal values are 'text', 'hex' and 'json'.")
		return c, errUsage
	}
	switch c.layout {
	case "grid", "disc":
	default:
		fmt.Fprintln(stderr, "Invalid value for flag -layout. Legal values are 'grid' and 'disc'.")
		return c, errUsage
	}
	return c, nil
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, tty bool) int {
	c, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	} else if errors.Is(err, errUsage) {
		return 2
	} else if err != nil {
		fmt.Fprintln(stderr, errorStyle.Render("Error:"), err)
		return 1
	}

	entries, err := c.generate()
	if err != nil {
		fmt.Fprintln(stderr, errorStyle.Render("Error:"), err)
		return 1
	}

	switch c.format {
	case "hex":
		for _, e := range entries {
			fmt.Fprintln(stdout, e.Color.Hex())
		}
	case "json":
		if err := writeJSON(stdout, entries); err != nil {
			fmt.Fprintln(stderr, errorStyle.Render("Error:"), err)
			return 1
		}
	default:
		fmt.Fprint(stdout, textTable(entries, tty))
	}

	if c.pngPath != "" {
		if err := c.render(entries); err != nil {
			fmt.Fprintln(stderr, errorStyle.Render("Error:"), err)
			return 1
		}
	}
	return 0
}

// entry is one labelled colour.
type entry struct {
	Label string
	Color spiral.Color
}

func (c cli) generate() ([]entry, error) {
	if c.keys == "" {
		colors, err := spiral.Colors(c.k, c.opts...)
		if err != nil {
			return nil, err
		}
		out := make([]entry, len(colors))
		for i, col := range colors {
			out[i] = entry{Label: fmt.Sprint(i + 1), Color: col}
		}
		return out, nil
	}

	keys := strings.Split(c.keys, ",")
	for i := range keys {
		keys[i] = strings.TrimSpace(keys[i])
	}
	byKey, err := spiral.ColorMap(keys, c.opts...)
	if err != nil {
		return nil, err
	}
	// First occurrence fixes the order; the colour is the mapping's.
	seen := map[string]struct{}{}
	var out []entry
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, entry{Label: k, Color: byKey[k]})
	}
	return out, nil
}

func (c cli) render(entries []entry) error {
	colors := make([]spiral.Color, len(entries))
	for i, e := range entries {
		colors[i] = e.Color
	}

	var (
		img image.Image
		err error
	)
	if c.layout == "disc" {
		img, err = swatch.Disc(colors, swatch.WithSize(c.size))
	} else {
		img, err = swatch.Grid(colors, swatch.WithCell(c.cell), swatch.WithColumns(c.columns))
	}
	if err != nil {
		return err
	}

	f, err := os.Create(c.pngPath)
	if err != nil {
		return err
	}
	if err := swatch.EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type jsonEntry struct {
	Label string     `json:"label"`
	RGB   [3]float64 `json:"rgb"`
	Hex   string     `json:"hex"`
}

func writeJSON(w io.Writer, entries []entry) error {
	out := make([]jsonEntry, len(entries))
	for i, e := range entries {
		out[i] = jsonEntry{Label: e.Label, RGB: [3]float64{e.Color.R, e.Color.G, e.Color.B}, Hex: e.Color.Hex()}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
