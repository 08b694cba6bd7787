package cli

import (
	"fmt"

	"github.com/avdeyev/authgate/internal/client/config"
	"github.com/avdeyev/authgate/internal/client/service"
	"github.com/spf13/cobra"
)

func LogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Выход и удаление токена из keyring",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := service.FromContext(cmd.Context())

			if err := s.Auth.Logout(cmd.Context()); err != nil {
				return err
			}

			fmt.Println("Выход выполнен успешно")
			return nil
		},
	}

	config.BindFlags(cmd)

	return cmd
}
