package controller

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func (i *implementation) Authors(ctx context.Context, request *structpb.Struct) (*structpb.Value, error) {
	i.logger.Info("Validating list authors request.")

	var args authorListArgs
	if err := decodeArgs(request, &args); err != nil {
		i.logger.Error("Error during validating list authors request.", zap.Error(err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	authors, err := i.authorUseCase.Authors(ctx)

	if err != nil {
		i.logger.Error("Error during list authors request.", zap.Error(err))
		return nil, err
	}

	resp, err := i.authorValues(ctx, authors, args.Expand)

	if err != nil {
		i.logger.Error("Error during resolving author fields.", zap.Error(err))
		return nil, err
	}

	i.logger.Info("List authors request has passed successfully.", zap.Int("count", len(authors)))

	return resp, nil
}
