// Command datamatrix loads a labeled matrix from a text/CSV/TSV file
// (optionally gzipped) and prints its shape, labels and values. It is a thin
// front-end over the library: all parsing decisions live in the builder.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/datamatrix"
	"github.com/spf13/pflag"
)

func main() {
	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, "datamatrix:", err)
		os.Exit(1)
	}
	if settings.Input == "" {
		fmt.Fprintln(os.Stderr, "datamatrix: --input is required")
		pflag.Usage()
		os.Exit(1)
	}

	b, err := configureBuilder(settings)
	if err != nil {
		fmt.Fprintln(os.Stderr, "datamatrix:", err)
		os.Exit(1)
	}

	m, err := b.FromFile(settings.Input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "datamatrix:", err)
		os.Exit(1)
	}

	fmt.Printf("%d x %d matrix from %s\n", m.NRows(), m.NCols(), settings.Input)
	fmt.Printf("rows: %s\n", strings.Join(m.RowLabels(), ", "))
	fmt.Printf("cols: %s\n", strings.Join(m.ColLabels(), ", "))
	fmt.Print(m)
}

// configureBuilder maps resolved settings onto the fluent builder.
func configureBuilder(settings buildSettings) (datamatrix.Builder, error) {
	b := datamatrix.NewBuilder().
		LabelColumns(settings.RowLabelCol, settings.ColLabelCol).
		DataColumn(settings.DataCol).
		Symmetric(settings.Symmetric).
		SkipHeader(settings.SkipHeader).
		StrictIndices(settings.Strict)

	if settings.RowIndexCol >= 0 && settings.ColIndexCol >= 0 {
		b = b.IndexColumns(settings.RowIndexCol, settings.ColIndexCol)
	}
	if settings.Labels != "" {
		b = b.Labels(strings.Split(settings.Labels, ","))
	}
	if settings.Separator != "" {
		runes := []rune(settings.Separator)
		if len(runes) != 1 {
			return datamatrix.Builder{}, fmt.Errorf("separator must be a single character, got %q", settings.Separator)
		}
		b = b.Separator(runes[0])
	}

	return b, nil
}
