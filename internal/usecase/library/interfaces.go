package library

//go:generate ../../../bin/mockgen --build_flags=--mod=mod -destination=../../../generated/mocks/use_case_mock.go -package=mocks . AuthorUseCase,BooksUseCase

import (
	"context"

	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/usecase/repository"
	"go.uber.org/zap"
)

type (
	AuthorUseCase interface {
		Authors(ctx context.Context) ([]entity.Author, error)
		Author(ctx context.Context, id string) (*entity.Author, error)
		AuthorBooks(ctx context.Context, author entity.Author) ([]entity.Book, error)
	}

	BooksUseCase interface {
		Books(ctx context.Context) ([]entity.Book, error)
		Book(ctx context.Context, id string) (*entity.Book, error)
		BookAuthor(ctx context.Context, book entity.Book) (*entity.Author, error)
		AddBook(ctx context.Context, title string, authorName string, publishedYear int) (entity.Book, error)
		UpdateBook(ctx context.Context, id string, patch entity.BookPatch) (*entity.Book, error)
		DeleteBook(ctx context.Context, id string) (bool, error)
	}
)

var _ AuthorUseCase = (*libraryImpl)(nil)
var _ BooksUseCase = (*libraryImpl)(nil)

type libraryImpl struct {
	logger           *zap.Logger
	transactor       repository.Transactor
	authorRepository repository.AuthorRepository
	booksRepository  repository.BooksRepository
}

func New(
	logger *zap.Logger,
	transactor repository.Transactor,
	authorRepository repository.AuthorRepository,
	booksRepository repository.BooksRepository,
) *libraryImpl {
	return &libraryImpl{
		logger:           logger,
		transactor:       transactor,
		authorRepository: authorRepository,
		booksRepository:  booksRepository,
	}
}
