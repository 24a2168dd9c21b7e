package controller

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func (i *implementation) DeleteBook(ctx context.Context, request *structpb.Struct) (*structpb.Value, error) {
	i.logger.Info("Validating delete book request.")

	var args deleteBookArgs
	if err := decodeArgs(request, &args); err != nil {
		i.logger.Error("Error during validating delete book request.", zap.Error(err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	removed, err := i.booksUseCase.DeleteBook(ctx, *args.ID)

	if err != nil {
		i.logger.Error("Error during delete book request.", zap.Error(err))
		return nil, err
	}

	i.logger.Info("Delete book request has passed successfully.", zap.Bool("removed", removed))

	return structpb.NewBoolValue(removed), nil
}
