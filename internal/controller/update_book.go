package controller

import (
	"context"

	"github.com/project/bookshelf/internal/entity"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func (i *implementation) UpdateBook(ctx context.Context, request *structpb.Struct) (*structpb.Value, error) {
	i.logger.Info("Validating update book request.")

	var args updateBookArgs
	if err := decodeArgs(request, &args); err != nil {
		i.logger.Error("Error during validating update book request.", zap.Error(err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	book, err := i.booksUseCase.UpdateBook(ctx, *args.ID, entity.BookPatch{
		Title:         lo.FromPtr(args.Title),
		AuthorName:    lo.FromPtr(args.Author),
		PublishedYear: args.PublishedYear,
	})

	if err != nil {
		i.logger.Error("Error during update book request.", zap.Error(err))
		return nil, err
	}

	if book == nil {
		i.logger.Info("Update book request has passed, book is absent.", zap.String("id", *args.ID))
		return structpb.NewNullValue(), nil
	}

	resp, err := i.bookValue(ctx, *book, args.Expand)

	if err != nil {
		i.logger.Error("Error during resolving book fields.", zap.Error(err))
		return nil, err
	}

	i.logger.Info("Update book request has passed successfully.")

	return resp, nil
}
