package library

import (
	"context"
	"errors"
	"testing"

	"github.com/project/bookshelf/generated/mocks"
	"github.com/project/bookshelf/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func getDefaultBookUseCaseWithTx(
	ctrl *gomock.Controller,
	booksRepository *mocks.MockBooksRepository,
	authorRepository *mocks.MockAuthorRepository,
	transactor *mocks.MockTransactor,
) *libraryImpl {
	logger := zap.NewNop()

	return New(logger, transactor, authorRepository, booksRepository)
}

func getDefaultBookUseCase(ctrl *gomock.Controller, booksRepository *mocks.MockBooksRepository) *libraryImpl {
	transactor := mocks.NewMockTransactor(ctrl)
	authorRepo := mocks.NewMockAuthorRepository(ctrl)

	return getDefaultBookUseCaseWithTx(ctrl, booksRepository, authorRepo, transactor)
}

func passThroughTx(ctx context.Context, f func(ctx context.Context) error) error {
	return f(ctx)
}

func requireStatusCode(t *testing.T, expectedError error, err error) {
	t.Helper()

	if expectedError == nil {
		require.NoError(t, err)
		return
	}

	s, ok := status.FromError(err)
	expS, expOk := status.FromError(expectedError)
	require.Equal(t, expOk, ok)
	require.Equal(t, expS.Code(), s.Code())
}

func TestBooks(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name             string
		expectedResponse []entity.Book
		repositoryError  error
		expectedError    error
	}{
		{
			name: "Run without errors",
			expectedResponse: []entity.Book{
				{ID: "1", Title: "Test", AuthorID: "1", PublishedYear: 2000},
				{ID: "2", Title: "Test 2", AuthorID: "1", PublishedYear: 2001},
			},
		},
		{
			name:             "Run with empty store",
			expectedResponse: []entity.Book{},
		},
		{
			name:            "Run with internal errors",
			repositoryError: errors.New("test"),
			expectedError:   status.Error(codes.Internal, "test"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			ctx := context.Background()

			bookRepo := mocks.NewMockBooksRepository(ctrl)
			bookRepo.EXPECT().ListBooks(ctx).Return(tc.expectedResponse, tc.repositoryError)

			uc := getDefaultBookUseCase(ctrl, bookRepo)
			books, err := uc.Books(ctx)

			requireStatusCode(t, tc.expectedError, err)
			if tc.expectedError == nil {
				require.Equal(t, tc.expectedResponse, books)
			}
		})
	}
}

func TestBook(t *testing.T) {
	t.Parallel()

	stored := entity.Book{ID: "5", Title: "The Hobbit", AuthorID: "3", PublishedYear: 1937}

	testCases := []struct {
		name             string
		id               string
		repositoryBook   entity.Book
		repositoryError  error
		expectedResponse *entity.Book
		expectedError    error
	}{
		{
			name:             "Run without errors",
			id:               "5",
			repositoryBook:   stored,
			expectedResponse: &stored,
		},
		{
			name:             "Run with not found",
			id:               "42",
			repositoryError:  entity.ErrBookNotFound,
			expectedResponse: nil,
		},
		{
			name:            "Run with internal errors",
			id:              "5",
			repositoryError: errors.New("test"),
			expectedError:   status.Error(codes.Internal, "test"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			ctx := context.Background()

			bookRepo := mocks.NewMockBooksRepository(ctrl)
			bookRepo.EXPECT().FindBookByID(ctx, tc.id).Return(tc.repositoryBook, tc.repositoryError)

			uc := getDefaultBookUseCase(ctrl, bookRepo)
			book, err := uc.Book(ctx, tc.id)

			requireStatusCode(t, tc.expectedError, err)
			if tc.expectedError == nil {
				require.Equal(t, tc.expectedResponse, book)
			}
		})
	}
}

func TestBookAuthor(t *testing.T) {
	t.Parallel()

	tolkien := entity.Author{ID: "3", Name: "J.R.R. Tolkien"}

	testCases := []struct {
		name             string
		book             entity.Book
		repositoryAuthor entity.Author
		repositoryError  error
		expectedResponse *entity.Author
		expectedError    error
	}{
		{
			name:             "Run without errors",
			book:             entity.Book{ID: "5", AuthorID: "3"},
			repositoryAuthor: tolkien,
			expectedResponse: &tolkien,
		},
		{
			name:             "Run with dangling author id",
			book:             entity.Book{ID: "5", AuthorID: "42"},
			repositoryError:  entity.ErrAuthorNotFound,
			expectedResponse: nil,
		},
		{
			name:            "Run with internal errors",
			book:            entity.Book{ID: "5", AuthorID: "3"},
			repositoryError: errors.New("test"),
			expectedError:   status.Error(codes.Internal, "test"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			ctx := context.Background()

			authorRepo := mocks.NewMockAuthorRepository(ctrl)
			authorRepo.EXPECT().FindAuthorByID(ctx, tc.book.AuthorID).Return(tc.repositoryAuthor, tc.repositoryError)

			uc := getDefaultBookUseCaseWithTx(ctrl, mocks.NewMockBooksRepository(ctrl), authorRepo, mocks.NewMockTransactor(ctrl))
			author, err := uc.BookAuthor(ctx, tc.book)

			requireStatusCode(t, tc.expectedError, err)
			if tc.expectedError == nil {
				require.Equal(t, tc.expectedResponse, author)
			}
		})
	}
}

func TestAddBook(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		authorName      string
		existingAuthor  *entity.Author
		findError       error
		appendError     error
		bookError       error
		expectedBook    entity.Book
		expectedError   error
		expectAppendOne bool
	}{
		{
			name:           "Run with existing author",
			authorName:     "J.R.R. Tolkien",
			existingAuthor: &entity.Author{ID: "3", Name: "J.R.R. Tolkien"},
			expectedBook:   entity.Book{ID: "11", Title: "Test", AuthorID: "3", PublishedYear: 2000},
		},
		{
			name:            "Run with new author",
			authorName:      "New Name",
			findError:       entity.ErrAuthorNotFound,
			expectAppendOne: true,
			expectedBook:    entity.Book{ID: "11", Title: "Test", AuthorID: "6", PublishedYear: 2000},
		},
		{
			name:          "Run with lookup errors",
			authorName:    "New Name",
			findError:     errors.New("test"),
			expectedError: status.Error(codes.Internal, "test"),
		},
		{
			name:            "Run with append author errors",
			authorName:      "New Name",
			findError:       entity.ErrAuthorNotFound,
			expectAppendOne: true,
			appendError:     errors.New("test"),
			expectedError:   status.Error(codes.Internal, "test"),
		},
		{
			name:           "Run with append book errors",
			authorName:     "J.R.R. Tolkien",
			existingAuthor: &entity.Author{ID: "3", Name: "J.R.R. Tolkien"},
			bookError:      errors.New("test"),
			expectedError:  status.Error(codes.Internal, "test"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			ctx := context.Background()

			transactor := mocks.NewMockTransactor(ctrl)
			transactor.EXPECT().WithTx(ctx, gomock.Any()).DoAndReturn(passThroughTx)

			authorRepo := mocks.NewMockAuthorRepository(ctrl)
			found := entity.Author{}
			if tc.existingAuthor != nil {
				found = *tc.existingAuthor
			}
			authorRepo.EXPECT().FindAuthorByName(ctx, tc.authorName).Return(found, tc.findError)

			if tc.expectAppendOne {
				authorRepo.EXPECT().AppendAuthor(ctx, tc.authorName).
					Return(entity.Author{ID: "6", Name: tc.authorName}, tc.appendError)
			}

			bookRepo := mocks.NewMockBooksRepository(ctrl)
			if tc.findError == nil || (tc.expectAppendOne && tc.appendError == nil) {
				authorID := "6"
				if tc.existingAuthor != nil {
					authorID = tc.existingAuthor.ID
				}

				bookRepo.EXPECT().AppendBook(ctx, entity.Book{Title: "Test", AuthorID: authorID, PublishedYear: 2000}).
					DoAndReturn(func(_ context.Context, book entity.Book) (entity.Book, error) {
						book.ID = "11"
						return book, tc.bookError
					})
			}

			uc := getDefaultBookUseCaseWithTx(ctrl, bookRepo, authorRepo, transactor)
			book, err := uc.AddBook(ctx, "Test", tc.authorName, 2000)

			requireStatusCode(t, tc.expectedError, err)
			if tc.expectedError == nil {
				require.Equal(t, tc.expectedBook, book)
			}
		})
	}
}

func TestUpdateBook(t *testing.T) {
	t.Parallel()

	existing := entity.Book{ID: "5", Title: "The Hobbit", AuthorID: "3", PublishedYear: 1937}
	zero := 0
	year := 2001

	testCases := []struct {
		name          string
		id            string
		patch         entity.BookPatch
		findError     error
		newAuthor     bool
		expectedBook  *entity.Book
		expectedError error
	}{
		{
			name:         "Run with empty patch",
			id:           "5",
			patch:        entity.BookPatch{},
			expectedBook: &existing,
		},
		{
			name:         "Run with title and year",
			id:           "5",
			patch:        entity.BookPatch{Title: "There and Back Again", PublishedYear: &year},
			expectedBook: &entity.Book{ID: "5", Title: "There and Back Again", AuthorID: "3", PublishedYear: 2001},
		},
		{
			name:         "Run with explicit zero year",
			id:           "5",
			patch:        entity.BookPatch{PublishedYear: &zero},
			expectedBook: &entity.Book{ID: "5", Title: "The Hobbit", AuthorID: "3", PublishedYear: 0},
		},
		{
			name:         "Run with new author",
			id:           "5",
			patch:        entity.BookPatch{AuthorName: "New Name"},
			newAuthor:    true,
			expectedBook: &entity.Book{ID: "5", Title: "The Hobbit", AuthorID: "6", PublishedYear: 1937},
		},
		{
			name:         "Run with not found",
			id:           "42",
			findError:    entity.ErrBookNotFound,
			expectedBook: nil,
		},
		{
			name:          "Run with internal errors",
			id:            "5",
			findError:     errors.New("test"),
			expectedError: status.Error(codes.Internal, "test"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			ctx := context.Background()

			transactor := mocks.NewMockTransactor(ctrl)
			transactor.EXPECT().WithTx(ctx, gomock.Any()).DoAndReturn(passThroughTx)

			bookRepo := mocks.NewMockBooksRepository(ctrl)
			found := existing
			if tc.findError != nil {
				found = entity.Book{}
			}
			bookRepo.EXPECT().FindBookByID(ctx, tc.id).Return(found, tc.findError)

			authorRepo := mocks.NewMockAuthorRepository(ctrl)
			if tc.newAuthor {
				authorRepo.EXPECT().FindAuthorByName(ctx, tc.patch.AuthorName).Return(entity.Author{}, entity.ErrAuthorNotFound)
				authorRepo.EXPECT().AppendAuthor(ctx, tc.patch.AuthorName).Return(entity.Author{ID: "6", Name: tc.patch.AuthorName}, nil)
			}

			if tc.expectedBook != nil {
				bookRepo.EXPECT().ReplaceBook(ctx, *tc.expectedBook).Return(*tc.expectedBook, nil)
			}

			uc := getDefaultBookUseCaseWithTx(ctrl, bookRepo, authorRepo, transactor)
			book, err := uc.UpdateBook(ctx, tc.id, tc.patch)

			requireStatusCode(t, tc.expectedError, err)
			if tc.expectedError == nil {
				require.Equal(t, tc.expectedBook, book)
			}
		})
	}
}

func TestDeleteBook(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		removed         bool
		repositoryError error
		expectedError   error
	}{
		{name: "Run with removal", removed: true},
		{name: "Run with missing id", removed: false},
		{name: "Run with internal errors", repositoryError: errors.New("test"), expectedError: status.Error(codes.Internal, "test")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			ctx := context.Background()

			bookRepo := mocks.NewMockBooksRepository(ctrl)
			bookRepo.EXPECT().RemoveBookByID(ctx, "5").Return(tc.removed, tc.repositoryError)

			uc := getDefaultBookUseCase(ctrl, bookRepo)
			removed, err := uc.DeleteBook(ctx, "5")

			requireStatusCode(t, tc.expectedError, err)
			require.Equal(t, tc.removed, removed)
		})
	}
}
