package controller

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func (i *implementation) Books(ctx context.Context, request *structpb.Struct) (*structpb.Value, error) {
	i.logger.Info("Validating list books request.")

	var args bookListArgs
	if err := decodeArgs(request, &args); err != nil {
		i.logger.Error("Error during validating list books request.", zap.Error(err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	books, err := i.booksUseCase.Books(ctx)

	if err != nil {
		i.logger.Error("Error during list books request.", zap.Error(err))
		return nil, err
	}

	resp, err := i.bookValues(ctx, books, args.Expand)

	if err != nil {
		i.logger.Error("Error during resolving book fields.", zap.Error(err))
		return nil, err
	}

	i.logger.Info("List books request has passed successfully.", zap.Int("count", len(books)))

	return resp, nil
}
