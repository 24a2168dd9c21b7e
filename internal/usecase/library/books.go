package library

import (
	"context"
	"errors"

	"github.com/project/bookshelf/internal/entity"
	"go.uber.org/zap"
)

func (l *libraryImpl) Books(ctx context.Context) ([]entity.Book, error) {
	l.logger.Info("List books request is being made to the store.")
	books, err := l.booksRepository.ListBooks(ctx)

	if err != nil {
		return nil, l.convertErr(err)
	}

	return books, nil
}

func (l *libraryImpl) Book(ctx context.Context, id string) (*entity.Book, error) {
	l.logger.Info("Get book request is being made to the store.", zap.String("id", id))
	book, err := l.booksRepository.FindBookByID(ctx, id)

	if errors.Is(err, entity.ErrBookNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, l.convertErr(err)
	}

	return &book, nil
}

// BookAuthor resolves the author field of a book. A dangling author id
// resolves to nil.
func (l *libraryImpl) BookAuthor(ctx context.Context, book entity.Book) (*entity.Author, error) {
	author, err := l.authorRepository.FindAuthorByID(ctx, book.AuthorID)

	if errors.Is(err, entity.ErrAuthorNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, l.convertErr(err)
	}

	return &author, nil
}

func (l *libraryImpl) AddBook(ctx context.Context, title string, authorName string, publishedYear int) (entity.Book, error) {
	var book entity.Book

	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		l.logger.Info("Add book request is being made to the store.")

		author, txErr := l.resolveAuthor(ctx, authorName)

		if txErr != nil {
			return txErr
		}

		book, txErr = l.booksRepository.AppendBook(ctx, entity.Book{
			Title:         title,
			AuthorID:      author.ID,
			PublishedYear: publishedYear,
		})

		return txErr
	})

	if err != nil {
		return entity.Book{}, l.convertErr(err)
	}

	return book, nil
}

func (l *libraryImpl) UpdateBook(ctx context.Context, id string, patch entity.BookPatch) (*entity.Book, error) {
	var (
		book  entity.Book
		found = true
	)

	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		l.logger.Info("Update book request is being made to the store.", zap.String("id", id))

		existing, txErr := l.booksRepository.FindBookByID(ctx, id)

		if errors.Is(txErr, entity.ErrBookNotFound) {
			found = false
			return nil
		}

		if txErr != nil {
			return txErr
		}

		book = existing

		if patch.Title != "" {
			book.Title = patch.Title
		}

		if patch.AuthorName != "" {
			author, txErr := l.resolveAuthor(ctx, patch.AuthorName)

			if txErr != nil {
				return txErr
			}

			book.AuthorID = author.ID
		}

		if patch.PublishedYear != nil {
			book.PublishedYear = *patch.PublishedYear
		}

		book, txErr = l.booksRepository.ReplaceBook(ctx, book)

		return txErr
	})

	if err != nil {
		return nil, l.convertErr(err)
	}

	if !found {
		return nil, nil
	}

	return &book, nil
}

func (l *libraryImpl) DeleteBook(ctx context.Context, id string) (bool, error) {
	l.logger.Info("Delete book request is being made to the store.", zap.String("id", id))
	removed, err := l.booksRepository.RemoveBookByID(ctx, id)

	if err != nil {
		return false, l.convertErr(err)
	}

	return removed, nil
}
