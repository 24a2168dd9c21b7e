// Package gateway exposes the Library gRPC service as HTTP/JSON.
//
// Every operation is served as POST /v1/{operation}. The request body is
// the JSON argument object (it may be empty) and the response body is the
// operation's result: an object, a list, a boolean or null.
package gateway

import (
	"errors"
	"io"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/project/bookshelf/internal/controller"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const Pattern = "/v1/{operation}"

var operations = map[string]string{
	"books":      "Books",
	"book":       "Book",
	"authors":    "Authors",
	"author":     "Author",
	"addBook":    "AddBook",
	"updateBook": "UpdateBook",
	"deleteBook": "DeleteBook",
}

// NewServeMux returns a gateway mux forwarding operations to conn.
func NewServeMux(logger *zap.Logger, conn grpc.ClientConnInterface, opts ...runtime.ServeMuxOption) (*runtime.ServeMux, error) {
	mux := runtime.NewServeMux(opts...)

	if err := mux.HandlePath(http.MethodPost, Pattern, forward(logger, mux, conn)); err != nil {
		return nil, err
	}

	return mux, nil
}

func forward(logger *zap.Logger, mux *runtime.ServeMux, conn grpc.ClientConnInterface) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
		ctx := r.Context()
		inbound, outbound := runtime.MarshalerForRequest(mux, r)

		operation := pathParams["operation"]
		method, ok := operations[operation]

		if !ok {
			logger.Info("Unknown operation requested.", zap.String("operation", operation))
			runtime.HTTPError(ctx, mux, outbound, w, r, status.Errorf(codes.NotFound, "unknown operation %q", operation))
			return
		}

		request := &structpb.Struct{}

		if err := inbound.NewDecoder(r.Body).Decode(request); err != nil && !errors.Is(err, io.EOF) {
			logger.Error("Error while decoding gateway request body.", zap.Error(err))
			runtime.HTTPError(ctx, mux, outbound, w, r, status.Error(codes.InvalidArgument, err.Error()))
			return
		}

		response := new(structpb.Value)

		if err := conn.Invoke(ctx, controller.FullMethod(method), request, response); err != nil {
			logger.Error("Error while forwarding gateway request.", zap.String("operation", operation), zap.Error(err))
			runtime.HTTPError(ctx, mux, outbound, w, r, err)
			return
		}

		buf, err := outbound.Marshal(response)

		if err != nil {
			logger.Error("Error while encoding gateway response.", zap.Error(err))
			runtime.HTTPError(ctx, mux, outbound, w, r, status.Error(codes.Internal, err.Error()))
			return
		}

		w.Header().Set("Content-Type", outbound.ContentType(response))

		if _, err = w.Write(buf); err != nil {
			logger.Error("Error while writing gateway response.", zap.Error(err))
		}
	}
}
