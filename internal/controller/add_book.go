package controller

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func (i *implementation) AddBook(ctx context.Context, request *structpb.Struct) (*structpb.Value, error) {
	i.logger.Info("Validating add book request")

	var args addBookArgs
	if err := decodeArgs(request, &args); err != nil {
		i.logger.Error("Error during validating add book request.", zap.Error(err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	book, err := i.booksUseCase.AddBook(ctx, *args.Title, *args.Author, *args.PublishedYear)

	if err != nil {
		i.logger.Error("Error during add book request.", zap.Error(err))
		return nil, err
	}

	resp, err := i.bookValue(ctx, book, args.Expand)

	if err != nil {
		i.logger.Error("Error during resolving book fields.", zap.Error(err))
		return nil, err
	}

	i.logger.Info("Add book request has passed successfully", zap.String("id", book.ID))

	return resp, nil
}
