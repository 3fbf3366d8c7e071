package cli

import (
	"context"
	"log/slog"

	"nagoyameshi/cmd/bootstrap"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	app := fx.New(
		bootstrap.Module,
		bootstrap.ServerModule,
	)

	if err := app.Start(ctx); err != nil {
		slog.Error("アプリケーションの起動に失敗しました", "error", err)
		return err
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", err)
	}

	slog.Info("アプリケーションが正常に停止しました")
	return nil
}
