package library

import (
	"context"
	"errors"

	"github.com/project/bookshelf/internal/entity"
	"go.uber.org/zap"
)

func (l *libraryImpl) Authors(ctx context.Context) ([]entity.Author, error) {
	l.logger.Info("List authors request is being made to the store.")
	authors, err := l.authorRepository.ListAuthors(ctx)

	if err != nil {
		return nil, l.convertErr(err)
	}

	return authors, nil
}

func (l *libraryImpl) Author(ctx context.Context, id string) (*entity.Author, error) {
	l.logger.Info("Get author request is being made to the store.", zap.String("id", id))
	author, err := l.authorRepository.FindAuthorByID(ctx, id)

	if errors.Is(err, entity.ErrAuthorNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, l.convertErr(err)
	}

	return &author, nil
}

// AuthorBooks resolves the books field of an author. It reads the store on
// every call.
func (l *libraryImpl) AuthorBooks(ctx context.Context, author entity.Author) ([]entity.Book, error) {
	books, err := l.booksRepository.FindBooksByAuthorID(ctx, author.ID)

	if err != nil {
		return nil, l.convertErr(err)
	}

	return books, nil
}

// resolveAuthor finds an author by exact name or registers a new one.
// Callers run it inside a transaction so the lookup and the append are atomic.
func (l *libraryImpl) resolveAuthor(ctx context.Context, name string) (entity.Author, error) {
	author, err := l.authorRepository.FindAuthorByName(ctx, name)

	if err == nil {
		return author, nil
	}

	if !errors.Is(err, entity.ErrAuthorNotFound) {
		return entity.Author{}, err
	}

	author, err = l.authorRepository.AppendAuthor(ctx, name)

	if err != nil {
		return entity.Author{}, err
	}

	l.logger.Info("New author registered.", zap.String("id", author.ID))

	return author, nil
}
