package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/project/bookshelf/internal/entity"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var _ AuthorRepository = (*memoryImpl)(nil)
var _ BooksRepository = (*memoryImpl)(nil)

// memoryImpl keeps authors and books in insertion order. One RWMutex
// guards both slices; see transactorImpl for multi-step writes.
type memoryImpl struct {
	logger *zap.Logger

	mu      sync.RWMutex
	authors []entity.Author
	books   []entity.Book

	authorIDs IDGenerator
	bookIDs   IDGenerator
}

func NewMemoryRepository(
	logger *zap.Logger,
	strategy IDStrategy,
	authors []entity.Author,
	books []entity.Book,
) *memoryImpl {
	r := &memoryImpl{
		logger:  logger,
		authors: make([]entity.Author, 0, len(authors)),
		books:   make([]entity.Book, 0, len(books)),
	}

	r.authors = append(r.authors, authors...)
	r.books = append(r.books, books...)

	r.authorIDs = NewIDGenerator(strategy, lo.Map(authors, func(a entity.Author, _ int) string { return a.ID }))
	r.bookIDs = NewIDGenerator(strategy, lo.Map(books, func(b entity.Book, _ int) string { return b.ID }))

	return r
}

func (r *memoryImpl) inTx(ctx context.Context) bool {
	tx, err := extractTx(ctx)
	return err == nil && tx.store == r
}

func (r *memoryImpl) lock(ctx context.Context) func() {
	if r.inTx(ctx) {
		return func() {}
	}

	r.mu.Lock()
	return r.mu.Unlock
}

func (r *memoryImpl) rlock(ctx context.Context) func() {
	if r.inTx(ctx) {
		return func() {}
	}

	r.mu.RLock()
	return r.mu.RUnlock
}

func (r *memoryImpl) ListAuthors(ctx context.Context) ([]entity.Author, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	return slices.Clone(r.authors), nil
}

func (r *memoryImpl) FindAuthorByID(ctx context.Context, id string) (entity.Author, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	author, ok := lo.Find(r.authors, func(a entity.Author) bool { return a.ID == id })
	if !ok {
		return entity.Author{}, entity.ErrAuthorNotFound
	}

	return author, nil
}

func (r *memoryImpl) FindAuthorByName(ctx context.Context, name string) (entity.Author, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	author, ok := lo.Find(r.authors, func(a entity.Author) bool { return a.Name == name })
	if !ok {
		return entity.Author{}, entity.ErrAuthorNotFound
	}

	return author, nil
}

func (r *memoryImpl) AppendAuthor(ctx context.Context, name string) (entity.Author, error) {
	unlock := r.lock(ctx)
	defer unlock()

	author := entity.Author{
		ID:   r.authorIDs.NextID(),
		Name: name,
	}

	r.authors = append(r.authors, author)
	r.logger.Debug("Author appended to the store.", zap.String("id", author.ID))

	return author, nil
}

func (r *memoryImpl) ListBooks(ctx context.Context) ([]entity.Book, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	return slices.Clone(r.books), nil
}

func (r *memoryImpl) FindBookByID(ctx context.Context, id string) (entity.Book, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	book, ok := lo.Find(r.books, func(b entity.Book) bool { return b.ID == id })
	if !ok {
		return entity.Book{}, entity.ErrBookNotFound
	}

	return book, nil
}

func (r *memoryImpl) FindBooksByAuthorID(ctx context.Context, authorID string) ([]entity.Book, error) {
	unlock := r.rlock(ctx)
	defer unlock()

	return lo.Filter(r.books, func(b entity.Book, _ int) bool { return b.AuthorID == authorID }), nil
}

func (r *memoryImpl) AppendBook(ctx context.Context, book entity.Book) (entity.Book, error) {
	unlock := r.lock(ctx)
	defer unlock()

	book.ID = r.bookIDs.NextID()

	r.books = append(r.books, book)
	r.logger.Debug("Book appended to the store.", zap.String("id", book.ID))

	return book, nil
}

func (r *memoryImpl) ReplaceBook(ctx context.Context, book entity.Book) (entity.Book, error) {
	unlock := r.lock(ctx)
	defer unlock()

	_, idx, ok := lo.FindIndexOf(r.books, func(b entity.Book) bool { return b.ID == book.ID })
	if !ok {
		return entity.Book{}, entity.ErrBookNotFound
	}

	r.books[idx] = book
	r.logger.Debug("Book replaced in the store.", zap.String("id", book.ID))

	return book, nil
}

func (r *memoryImpl) RemoveBookByID(ctx context.Context, id string) (bool, error) {
	unlock := r.lock(ctx)
	defer unlock()

	_, idx, ok := lo.FindIndexOf(r.books, func(b entity.Book) bool { return b.ID == id })
	if !ok {
		return false, nil
	}

	r.books = slices.Delete(r.books, idx, idx+1)
	r.logger.Debug("Book removed from the store.", zap.String("id", id))

	return true, nil
}
