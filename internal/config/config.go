package config

import (
	"strings"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Catalog
		ReadOnly
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Catalog struct {
		Genres              []string `validate:"required,min=1,unique,dive,required"`
		AgeRestrictedGenres []string `validate:"unique,dive,required"`
		MinTitleLength      int      `validate:"min=1"`
		MaxTitleLength      int      `validate:"gtefield=MinTitleLength"`
	}
	ReadOnly struct {
		Enabled bool // Reject every write request with 403
	}
)

// DefaultCatalog returns the built-in genre configuration.
func DefaultCatalog() Catalog {
	return Catalog{
		Genres:              SplitList(DefaultGenres),
		AgeRestrictedGenres: SplitList(DefaultAgeRestrictedGenres),
		MinTitleLength:      DefaultMinTitleLength,
		MaxTitleLength:      DefaultMaxTitleLength,
	}
}

// SplitList splits a comma-separated value, trimming blanks and dropping empty items.
func SplitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	// Catalog defaults
	v.SetDefault("catalog_genres", DefaultGenres)
	v.SetDefault("catalog_age_restricted_genres", DefaultAgeRestrictedGenres)
	v.SetDefault("catalog_min_title_length", DefaultMinTitleLength)
	v.SetDefault("catalog_max_title_length", DefaultMaxTitleLength)

	v.SetDefault("read_only_mode", false)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		// Lists are read as strings: viper splits slices on whitespace,
		// and genre names may contain spaces.
		Catalog: Catalog{
			Genres:              SplitList(v.GetString("CATALOG_GENRES")),
			AgeRestrictedGenres: SplitList(v.GetString("CATALOG_AGE_RESTRICTED_GENRES")),
			MinTitleLength:      v.GetInt("CATALOG_MIN_TITLE_LENGTH"),
			MaxTitleLength:      v.GetInt("CATALOG_MAX_TITLE_LENGTH"),
		},
		ReadOnly: ReadOnly{
			Enabled: v.GetBool("READ_ONLY_MODE"),
		},
	}
}
