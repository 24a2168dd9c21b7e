package library

import (
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// convertErr turns an unexpected store failure into a gRPC status.
// Not-found never reaches here: lookups report it as an absent result.
func (l *libraryImpl) convertErr(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	l.logger.Error("Unexpected store error.", zap.Error(err))
	return status.Error(codes.Internal, err.Error())
}
