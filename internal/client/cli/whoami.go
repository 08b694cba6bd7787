package cli

import (
	"fmt"

	"github.com/avdeyev/authgate/internal/client/config"
	"github.com/avdeyev/authgate/internal/client/service"
	"github.com/spf13/cobra"
)

func WhoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Проверка текущей сессии",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := service.FromContext(cmd.Context())

			resp, err := s.Auth.Check(cmd.Context())
			if err != nil {
				return err
			}

			if !resp.Authenticated || resp.User == nil {
				fmt.Println("Вы не авторизованы")
				return nil
			}

			fmt.Printf("Вы вошли как %s <%s> (id %d)\n", resp.User.Username, resp.User.Email, resp.User.ID)
			return nil
		},
	}

	config.BindFlags(cmd)

	return cmd
}
