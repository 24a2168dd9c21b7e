package repository

//go:generate ../../../bin/mockgen --build_flags=--mod=mod -destination=../../../generated/mocks/repository_mock.go -package=mocks . AuthorRepository,BooksRepository,Transactor

import (
	"context"

	"github.com/project/bookshelf/internal/entity"
)

type (
	AuthorRepository interface {
		ListAuthors(ctx context.Context) ([]entity.Author, error)
		FindAuthorByID(ctx context.Context, id string) (entity.Author, error)
		FindAuthorByName(ctx context.Context, name string) (entity.Author, error)
		AppendAuthor(ctx context.Context, name string) (entity.Author, error)
	}

	BooksRepository interface {
		ListBooks(ctx context.Context) ([]entity.Book, error)
		FindBookByID(ctx context.Context, id string) (entity.Book, error)
		FindBooksByAuthorID(ctx context.Context, authorID string) ([]entity.Book, error)
		AppendBook(ctx context.Context, book entity.Book) (entity.Book, error)
		ReplaceBook(ctx context.Context, book entity.Book) (entity.Book, error)
		RemoveBookByID(ctx context.Context, id string) (bool, error)
	}

	Transactor interface {
		WithTx(context.Context, func(ctx context.Context) error) error
	}

	// IDGenerator hands out ids for one collection. Implementations are
	// called with the store's write lock held.
	IDGenerator interface {
		NextID() string
	}
)

type IDStrategy int

const (
	IDStrategyUndefined IDStrategy = iota
	IDStrategySequence
	IDStrategyUUID
)

func (s IDStrategy) String() string {
	switch s {
	case IDStrategySequence:
		return "sequence"
	case IDStrategyUUID:
		return "uuid"
	default:
		return "undefined"
	}
}

func ParseIDStrategy(s string) (IDStrategy, bool) {
	switch s {
	case IDStrategySequence.String():
		return IDStrategySequence, true
	case IDStrategyUUID.String():
		return IDStrategyUUID, true
	default:
		return IDStrategyUndefined, false
	}
}
