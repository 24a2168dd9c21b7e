package entity

import "errors"

type (
	Author struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	Book struct {
		ID            string `json:"id"`
		Title         string `json:"title"`
		AuthorID      string `json:"authorId"`
		PublishedYear int    `json:"publishedYear"`
	}

	// BookPatch holds the optional fields of an update. Empty Title and
	// AuthorName mean "keep"; a nil PublishedYear means "keep", zero is a value.
	BookPatch struct {
		Title         string
		AuthorName    string
		PublishedYear *int
	}
)

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrAuthorNotFound = errors.New("author not found")
)
