package controller

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func (i *implementation) Book(ctx context.Context, request *structpb.Struct) (*structpb.Value, error) {
	i.logger.Info("Validating get book request.")

	var args bookArgs
	if err := decodeArgs(request, &args); err != nil {
		i.logger.Error("Error during validating get book request.", zap.Error(err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	book, err := i.booksUseCase.Book(ctx, *args.ID)

	if err != nil {
		i.logger.Error("Error during get book request.", zap.Error(err))
		return nil, err
	}

	if book == nil {
		i.logger.Info("Get book request has passed, book is absent.", zap.String("id", *args.ID))
		return structpb.NewNullValue(), nil
	}

	resp, err := i.bookValue(ctx, *book, args.Expand)

	if err != nil {
		i.logger.Error("Error during resolving book fields.", zap.Error(err))
		return nil, err
	}

	i.logger.Info("Get book request has passed successfully.")

	return resp, nil
}
