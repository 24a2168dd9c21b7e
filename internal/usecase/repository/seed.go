package repository

import "github.com/project/bookshelf/internal/entity"

// SeedAuthors returns the authors the store starts with.
func SeedAuthors() []entity.Author {
	return []entity.Author{
		{ID: "1", Name: "J.K. Rowling"},
		{ID: "2", Name: "George R.R. Martin"},
		{ID: "3", Name: "J.R.R. Tolkien"},
		{ID: "4", Name: "Stephen King"},
		{ID: "5", Name: "Agatha Christie"},
	}
}

// SeedBooks returns the books the store starts with.
func SeedBooks() []entity.Book {
	return []entity.Book{
		{ID: "1", Title: "Harry Potter and the Philosopher's Stone", AuthorID: "1", PublishedYear: 1997},
		{ID: "2", Title: "Harry Potter and the Chamber of Secrets", AuthorID: "1", PublishedYear: 1998},
		{ID: "3", Title: "A Game of Thrones", AuthorID: "2", PublishedYear: 1996},
		{ID: "4", Title: "A Clash of Kings", AuthorID: "2", PublishedYear: 1998},
		{ID: "5", Title: "The Hobbit", AuthorID: "3", PublishedYear: 1937},
		{ID: "6", Title: "The Lord of the Rings", AuthorID: "3", PublishedYear: 1954},
		{ID: "7", Title: "The Shining", AuthorID: "4", PublishedYear: 1977},
		{ID: "8", Title: "It", AuthorID: "4", PublishedYear: 1986},
		{ID: "9", Title: "Murder on the Orient Express", AuthorID: "5", PublishedYear: 1934},
		{ID: "10", Title: "The Murder of Roger Ackroyd", AuthorID: "5", PublishedYear: 1926},
	}
}
