package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookscollector/internal/collector"
	"github.com/mrlokans/bookscollector/internal/config"
)

type GenresCommand struct {
	JSON bool

	Catalog config.Catalog
	Out     io.Writer
}

func NewGenresCommand() *GenresCommand {
	return &GenresCommand{
		Catalog: config.NewConfig().Catalog,
		Out:     os.Stdout,
	}
}

func (cmd *GenresCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("genres", flag.ExitOnError)

	fs.BoolVar(&cmd.JSON, "json", false, "Print genres as JSON")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s genres [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print the configured genre allow-list and mark age-restricted genres.\n")
		fmt.Fprintf(os.Stderr, "Set CATALOG_GENRES and CATALOG_AGE_RESTRICTED_GENRES to change them.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *GenresCommand) Run() error {
	books, err := collector.NewWithConfig(cmd.Catalog)
	if err != nil {
		return fmt.Errorf("failed to load genres: %w", err)
	}

	if cmd.JSON {
		enc := json.NewEncoder(cmd.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string][]string{
			"genres":         books.Genres(),
			"age_restricted": books.AgeRestrictedGenres(),
		})
	}

	for i, genre := range books.Genres() {
		marker := ""
		if books.IsAgeRestricted(genre) {
			marker = " (18+)"
		}
		fmt.Fprintf(cmd.Out, "%d. %s%s\n", i+1, genre, marker)
	}
	fmt.Fprintf(cmd.Out, "\nTitles: %d-%d characters\n", cmd.Catalog.MinTitleLength, cmd.Catalog.MaxTitleLength)
	return nil
}
