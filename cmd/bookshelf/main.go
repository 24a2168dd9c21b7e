package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/project/bookshelf/config"
	"github.com/project/bookshelf/internal/app"
	"github.com/project/bookshelf/internal/entity"
	"github.com/project/bookshelf/internal/usecase/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	root := &cobra.Command{
		Use:   "bookshelf",
		Short: "In-memory author and book query service",
	}

	root.AddCommand(newServeCmd(), newSeedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	var development bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC service and its HTTP gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return fmt.Errorf("can not read config: %w", err)
			}

			logger, err := newLogger(development)
			if err != nil {
				return fmt.Errorf("can not create logger: %w", err)
			}

			defer func() {
				_ = logger.Sync()
			}()

			app.Run(logger, cfg)

			return nil
		},
	}

	cmd.Flags().BoolVar(&development, "dev", false, "human readable debug logging")

	return cmd
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the data the store starts with as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(struct {
				Authors []entity.Author `json:"authors"`
				Books   []entity.Book   `json:"books"`
			}{
				Authors: repository.SeedAuthors(),
				Books:   repository.SeedBooks(),
			})
		},
	}
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
