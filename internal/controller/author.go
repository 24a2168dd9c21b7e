package controller

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func (i *implementation) Author(ctx context.Context, request *structpb.Struct) (*structpb.Value, error) {
	i.logger.Info("Validating get author request.")

	var args authorArgs
	if err := decodeArgs(request, &args); err != nil {
		i.logger.Error("Error during validating get author request.", zap.Error(err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	author, err := i.authorUseCase.Author(ctx, *args.ID)

	if err != nil {
		i.logger.Error("Error during get author request.", zap.Error(err))
		return nil, err
	}

	if author == nil {
		i.logger.Info("Get author request has passed, author is absent.", zap.String("id", *args.ID))
		return structpb.NewNullValue(), nil
	}

	resp, err := i.authorValue(ctx, *author, args.Expand)

	if err != nil {
		i.logger.Error("Error during resolving author fields.", zap.Error(err))
		return nil, err
	}

	i.logger.Info("Get author request has passed successfully.")

	return resp, nil
}
