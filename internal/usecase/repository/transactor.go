package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/project/bookshelf/internal/entity"
	"go.uber.org/zap"
)

var _ Transactor = (*transactorImpl)(nil)

// transactorImpl serializes multi-step writes on a memory store. The write
// lock is held for the whole callback; on error both collections are put
// back the way they were. Ids already handed out are not reclaimed.
type transactorImpl struct {
	logger *zap.Logger
	store  *memoryImpl
}

func NewTransactor(store *memoryImpl, logger *zap.Logger) *transactorImpl {
	return &transactorImpl{
		store:  store,
		logger: logger,
	}
}

func (t *transactorImpl) WithTx(ctx context.Context, f func(ctx context.Context) error) error {
	if tx, err := extractTx(ctx); err == nil && tx.store == t.store {
		return f(ctx)
	}

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	ctxWithTx, tx := injectTx(ctx, t.store)

	err := f(ctxWithTx)

	if err != nil {
		tx.rollback()
		t.logger.Error("Error while executing function, transaction rolled back.", zap.Error(err))
		return fmt.Errorf("function execution error: %w", err)
	}

	return nil
}

type memoryTx struct {
	store   *memoryImpl
	authors []entity.Author
	books   []entity.Book
}

func (tx *memoryTx) rollback() {
	tx.store.authors = tx.authors
	tx.store.books = tx.books
}

// injectTx must be called with the store's write lock held.
func injectTx(ctx context.Context, store *memoryImpl) (context.Context, *memoryTx) {
	tx := &memoryTx{
		store:   store,
		authors: slices.Clone(store.authors),
		books:   slices.Clone(store.books),
	}

	return context.WithValue(ctx, txInjector{}, tx), tx
}

type txInjector struct{}

var ErrTxNotFound = errors.New("transaction is not found in context")

func extractTx(ctx context.Context) (*memoryTx, error) {
	tx, ok := ctx.Value(txInjector{}).(*memoryTx)

	if !ok {
		return nil, ErrTxNotFound
	}

	return tx, nil
}
