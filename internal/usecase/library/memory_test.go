package library

import (
	"context"
	"testing"

	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/usecase/repository"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMemoryUseCase() *libraryImpl {
	logger := zap.NewNop()
	store := repository.NewMemoryRepository(logger, repository.IDStrategySequence, repository.SeedAuthors(), repository.SeedBooks())
	transactor := repository.NewTransactor(store, logger)

	return New(logger, transactor, store, store)
}

func TestSeedRelationships(t *testing.T) {
	t.Parallel()

	uc := newMemoryUseCase()
	ctx := context.Background()

	book, err := uc.Book(ctx, "5")
	require.NoError(t, err)
	require.NotNil(t, book)
	require.Equal(t, "The Hobbit", book.Title)

	author, err := uc.BookAuthor(ctx, *book)
	require.NoError(t, err)
	require.Equal(t, &entity.Author{ID: "3", Name: "J.R.R. Tolkien"}, author)

	books, err := uc.AuthorBooks(ctx, *author)
	require.NoError(t, err)
	require.Len(t, books, 2)
	require.Equal(t, "5", books[0].ID)
	require.Equal(t, "6", books[1].ID)
}

func TestGetEveryBook(t *testing.T) {
	t.Parallel()

	uc := newMemoryUseCase()
	ctx := context.Background()

	books, err := uc.Books(ctx)
	require.NoError(t, err)
	require.Len(t, books, 10)

	for _, stored := range books {
		book, err := uc.Book(ctx, stored.ID)
		require.NoError(t, err)
		require.Equal(t, &stored, book)
	}

	book, err := uc.Book(ctx, "11")
	require.NoError(t, err)
	require.Nil(t, book)
}

func TestAddBookReusesAuthor(t *testing.T) {
	t.Parallel()

	uc := newMemoryUseCase()
	ctx := context.Background()

	first, err := uc.AddBook(ctx, "T", "NewName", 2000)
	require.NoError(t, err)

	author, err := uc.BookAuthor(ctx, first)
	require.NoError(t, err)
	require.Equal(t, "NewName", author.Name)

	second, err := uc.AddBook(ctx, "T2", "NewName", 2001)
	require.NoError(t, err)
	require.Equal(t, first.AuthorID, second.AuthorID)
	require.NotEqual(t, first.ID, second.ID)

	authors, err := uc.Authors(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 6)

	books, err := uc.AuthorBooks(ctx, *author)
	require.NoError(t, err)
	require.Equal(t, []entity.Book{first, second}, books)
}

func TestUpdateBookMerge(t *testing.T) {
	t.Parallel()

	uc := newMemoryUseCase()
	ctx := context.Background()
	zero := 0

	book, err := uc.UpdateBook(ctx, "7", entity.BookPatch{PublishedYear: &zero})
	require.NoError(t, err)
	require.Equal(t, &entity.Book{ID: "7", Title: "The Shining", AuthorID: "4", PublishedYear: 0}, book)

	book, err = uc.UpdateBook(ctx, "7", entity.BookPatch{Title: "Doctor Sleep", AuthorName: "Agatha Christie"})
	require.NoError(t, err)
	require.Equal(t, &entity.Book{ID: "7", Title: "Doctor Sleep", AuthorID: "5", PublishedYear: 0}, book)

	stored, err := uc.Book(ctx, "7")
	require.NoError(t, err)
	require.Equal(t, book, stored)

	book, err = uc.UpdateBook(ctx, "42", entity.BookPatch{Title: "x"})
	require.NoError(t, err)
	require.Nil(t, book)

	authors, err := uc.Authors(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 5)
}

func TestDeleteBookCounts(t *testing.T) {
	t.Parallel()

	uc := newMemoryUseCase()
	ctx := context.Background()

	removed, err := uc.DeleteBook(ctx, "42")
	require.NoError(t, err)
	require.False(t, removed)

	books, err := uc.Books(ctx)
	require.NoError(t, err)
	require.Len(t, books, 10)

	removed, err = uc.DeleteBook(ctx, "3")
	require.NoError(t, err)
	require.True(t, removed)

	books, err = uc.Books(ctx)
	require.NoError(t, err)
	require.Len(t, books, 9)

	book, err := uc.Book(ctx, "3")
	require.NoError(t, err)
	require.Nil(t, book)

	_, err = uc.AddBook(ctx, "A Storm of Swords", "George R.R. Martin", 2000)
	require.NoError(t, err)

	books, err = uc.Books(ctx)
	require.NoError(t, err)
	require.Len(t, books, 10)
}
