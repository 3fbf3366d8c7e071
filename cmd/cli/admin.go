package cli

import (
	"context"
	"log/slog"

	"nagoyameshi/cmd/bootstrap"
	"nagoyameshi/cmd/bootstrap/components"
	"nagoyameshi/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// newAdminCommand provisions administrator accounts; there is no HTTP route for it.
func newAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage administrator accounts",
	}

	var email, password string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an administrator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			var auth commands.AuthCommands
			app := fx.New(
				fx.NopLogger,
				bootstrap.ConfigModule,
				bootstrap.LoggerModule,
				bootstrap.DBModule,
				bootstrap.JWTModule,
				components.PersistenceModule,
				components.UseCaseModule,
				bootstrap.BillingModule,
				fx.Populate(&auth),
			)
			if err := app.Start(ctx); err != nil {
				return err
			}
			defer func() { _ = app.Stop(context.Background()) }()

			id, err := auth.CreateAdmin(ctx, email, password)
			if err != nil {
				return err
			}
			slog.Info("管理者を作成しました", "admin_id", id, "email", email)
			return nil
		},
	}
	create.Flags().StringVar(&email, "email", "", "administrator email")
	create.Flags().StringVar(&password, "password", "", "administrator password (8+ characters)")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)
	return cmd
}
