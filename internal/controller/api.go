package controller

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name. Every method takes
// its arguments as a Struct and answers with a Value that is an object, a
// list, a bool or null.
const ServiceName = "bookshelf.v1.Library"

type LibraryServer interface {
	Books(context.Context, *structpb.Struct) (*structpb.Value, error)
	Book(context.Context, *structpb.Struct) (*structpb.Value, error)
	Authors(context.Context, *structpb.Struct) (*structpb.Value, error)
	Author(context.Context, *structpb.Struct) (*structpb.Value, error)
	AddBook(context.Context, *structpb.Struct) (*structpb.Value, error)
	UpdateBook(context.Context, *structpb.Struct) (*structpb.Value, error)
	DeleteBook(context.Context, *structpb.Struct) (*structpb.Value, error)
}

func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func RegisterLibraryServer(s grpc.ServiceRegistrar, srv LibraryServer) {
	s.RegisterService(&LibraryServiceDesc, srv)
}

type unaryMethod func(LibraryServer, context.Context, *structpb.Struct) (*structpb.Value, error)

func unaryHandler(
	method string,
	call unaryMethod,
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return call(srv.(LibraryServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(LibraryServer), ctx, req.(*structpb.Struct))
		}

		return interceptor(ctx, in, info, handler)
	}
}

var LibraryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LibraryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Books", Handler: unaryHandler("Books", LibraryServer.Books)},
		{MethodName: "Book", Handler: unaryHandler("Book", LibraryServer.Book)},
		{MethodName: "Authors", Handler: unaryHandler("Authors", LibraryServer.Authors)},
		{MethodName: "Author", Handler: unaryHandler("Author", LibraryServer.Author)},
		{MethodName: "AddBook", Handler: unaryHandler("AddBook", LibraryServer.AddBook)},
		{MethodName: "UpdateBook", Handler: unaryHandler("UpdateBook", LibraryServer.UpdateBook)},
		{MethodName: "DeleteBook", Handler: unaryHandler("DeleteBook", LibraryServer.DeleteBook)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bookshelf/v1/library.proto",
}
