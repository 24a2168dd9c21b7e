package controller

import (
	"context"

	"github.com/project/bookshelf/internal/entity"
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/structpb"
)

func authorFields(author entity.Author) map[string]*structpb.Value {
	return map[string]*structpb.Value{
		"id":   structpb.NewStringValue(author.ID),
		"name": structpb.NewStringValue(author.Name),
	}
}

func bookFields(book entity.Book) map[string]*structpb.Value {
	return map[string]*structpb.Value{
		"id":            structpb.NewStringValue(book.ID),
		"title":         structpb.NewStringValue(book.Title),
		"authorId":      structpb.NewStringValue(book.AuthorID),
		"publishedYear": structpb.NewNumberValue(float64(book.PublishedYear)),
	}
}

func object(fields map[string]*structpb.Value) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{Fields: fields})
}

func list(values []*structpb.Value) *structpb.Value {
	return structpb.NewListValue(&structpb.ListValue{Values: values})
}

// bookValue renders a book, resolving the author field when it is asked for.
func (i *implementation) bookValue(ctx context.Context, book entity.Book, expand []string) (*structpb.Value, error) {
	fields := bookFields(book)

	if lo.Contains(expand, expandAuthor) {
		author, err := i.booksUseCase.BookAuthor(ctx, book)

		if err != nil {
			return nil, err
		}

		if author == nil {
			fields[expandAuthor] = structpb.NewNullValue()
		} else {
			fields[expandAuthor] = object(authorFields(*author))
		}
	}

	return object(fields), nil
}

func (i *implementation) bookValues(ctx context.Context, books []entity.Book, expand []string) (*structpb.Value, error) {
	values := make([]*structpb.Value, 0, len(books))

	for _, book := range books {
		value, err := i.bookValue(ctx, book, expand)

		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return list(values), nil
}

// authorValue renders an author, resolving the books field when it is asked for.
func (i *implementation) authorValue(ctx context.Context, author entity.Author, expand []string) (*structpb.Value, error) {
	fields := authorFields(author)

	if lo.Contains(expand, expandBooks) {
		books, err := i.authorUseCase.AuthorBooks(ctx, author)

		if err != nil {
			return nil, err
		}

		fields[expandBooks] = list(lo.Map(books, func(book entity.Book, _ int) *structpb.Value {
			return object(bookFields(book))
		}))
	}

	return object(fields), nil
}

func (i *implementation) authorValues(ctx context.Context, authors []entity.Author, expand []string) (*structpb.Value, error) {
	values := make([]*structpb.Value, 0, len(authors))

	for _, author := range authors {
		value, err := i.authorValue(ctx, author, expand)

		if err != nil {
			return nil, err
		}

		values = append(values, value)
	}

	return list(values), nil
}
