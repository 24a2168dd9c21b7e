package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/project/bookshelf/config"
	"github.com/project/bookshelf/internal/controller"
	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/gateway"
	"github.com/project/bookshelf/internal/usecase/library"
	"github.com/project/bookshelf/internal/usecase/repository"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

const shutdownTimeout = 3
const readHeaderTimeout = 10

func Run(logger *zap.Logger, cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	authors, books := seedData(cfg)
	repo := repository.NewMemoryRepository(logger, cfg.Store.IDStrategy, authors, books)
	transactor := repository.NewTransactor(repo, logger)

	useCases := library.New(logger, transactor, repo, repo)

	ctrl := controller.New(logger, useCases, useCases)

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(logRequests(logger)))
	reflection.Register(grpcServer)
	controller.RegisterLibraryServer(grpcServer, ctrl)

	go runGrpc(cfg, logger, grpcServer)

	conn, err := grpc.NewClient("localhost:"+cfg.GRPC.Port, grpc.WithTransportCredentials(insecure.NewCredentials()))

	if err != nil {
		logger.Error("can not create grpc client for gateway", zap.Error(err))
		return
	}

	defer func() {
		if err := conn.Close(); err != nil {
			logger.Error("Error while closing gateway connection.", zap.Error(err))
		}
	}()

	mux, err := gateway.NewServeMux(logger, conn)

	if err != nil {
		logger.Error("can not register grpc gateway", zap.Error(err))
		return
	}

	restServer := &http.Server{
		Addr:              ":" + cfg.GRPC.GatewayPort,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout * time.Second,
	}

	go runRest(logger, restServer)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("gateway shutdown error", zap.Error(err))
	}

	grpcServer.GracefulStop()
}

func seedData(cfg *config.Config) ([]entity.Author, []entity.Book) {
	if !cfg.Store.Seed {
		return nil, nil
	}

	return repository.SeedAuthors(), repository.SeedBooks()
}

func logRequests(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		logger.Info("grpc request served",
			zap.String("method", info.FullMethod),
			zap.Stringer("code", status.Code(err)),
			zap.Duration("elapsed", time.Since(start)),
		)

		return resp, err
	}
}

func runRest(logger *zap.Logger, server *http.Server) {
	logger.Info("gateway listening at port", zap.String("port", server.Addr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("gateway listen error", zap.Error(err))
	}
}

func runGrpc(cfg *config.Config, logger *zap.Logger, s *grpc.Server) {
	port := ":" + cfg.GRPC.Port
	lis, err := net.Listen("tcp", port)

	if err != nil {
		logger.Error("can not open tcp socket", zap.Error(err))
		os.Exit(-1)
	}

	logger.Info("grpc server listening at port", zap.String("port", port))

	if err = s.Serve(lis); err != nil {
		logger.Error("grpc server listen error", zap.Error(err))
	}
}
