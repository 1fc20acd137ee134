package config

// Catalog defaults.
const (
	// DefaultGenres is the genre allow-list, in display order.
	DefaultGenres = "Фантастика,Ужасы,Детективы,Мультфильмы,Комедии"

	// DefaultAgeRestrictedGenres are the genres not suitable for children.
	DefaultAgeRestrictedGenres = "Ужасы,Детективы"

	DefaultMinTitleLength = 1
	DefaultMaxTitleLength = 40
)
