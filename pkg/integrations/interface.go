package integrations

import "github.com/prasetya/naskah/pkg/data"

// Builder turns a manuscript into a distributable file and returns its path.
type Builder interface {
	Build(book *data.Book, chapters []data.Chapter, settings data.Settings) (string, error)
}
