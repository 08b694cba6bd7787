package cli

import (
	"context"
	"fmt"

	"github.com/avdeyev/authgate/internal/client/config"
	"github.com/avdeyev/authgate/internal/client/service"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Short: "CLI client для работы с AuthGate",
		Long:  `AuthGate — сервис аутентификации с журналом входов. Клиент позволяет зарегистрироваться, войти, посмотреть свою историю входов и выйти; токен сессии хранится в системном keyring.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return fmt.Errorf("init viper: %v", err)
			}
			application, err := service.NewContainer(cfg)
			if err != nil {
				return fmt.Errorf("init container: %v", err)
			}
			cmd.SetContext(service.SaveToContext(cmd.Context(), application))
			return nil
		},
	}

	config.BindFlags(rootCmd)

	rootCmd.AddCommand(
		RegisterCmd(),
		LoginCmd(),
		LogoutCmd(),
		WhoamiCmd(),
		HistoryCmd(),
	)

	return rootCmd
}

func InitCli(ctx context.Context) error {
	rootCmd := NewRootCmd()
	return rootCmd.ExecuteContext(ctx)
}
