// Package collector keeps the in-memory book catalog: a title to genre
// mapping plus an ordered favourites list drawn from the catalog.
//
// Every mutation validates its input and silently ignores what it cannot
// apply. Mutating methods report whether they changed anything, so callers
// that care can tell an add from a no-op; nothing here returns an error once
// the collector is built.
//
// # Usage
//
//	c := collector.New()
//	c.AddNewBook("Дюна")
//	c.SetBookGenre("Дюна", "Фантастика")
//	c.AddBookInFavorites("Дюна")
//	children := c.GetBooksForChildren()
//
// A BooksCollector is safe for concurrent use. Catalog and favourites share
// one lock, so a favourite can never point at a title that is not yet
// visible in the catalog.
package collector
