package cli

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/avdeyev/authgate/internal/client/config"
	"github.com/avdeyev/authgate/internal/client/models"
	"github.com/avdeyev/authgate/internal/client/service"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func LoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Авторизация",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := service.FromContext(cmd.Context())

			e, _ := cmd.Flags().GetString("email")
			p, _ := cmd.Flags().GetString("password")

			if e == "" {
				fmt.Print("Введите email: ")
				_, err := fmt.Scanln(&e)
				if err != nil {
					return fmt.Errorf("ошибка чтения email: %w", err)
				}
			}

			if p == "" {
				fmt.Print("Введите пароль: ")
				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("ошибка чтения пароля: %w", err)
				}
				p = string(bytePassword)
				fmt.Println()
			}

			if e == "" || p == "" {
				return errors.New("email и пароль обязательны")
			}

			resp, err := s.Auth.Login(cmd.Context(), models.LoginRequest{
				Email:    e,
				Password: p,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s: %s <%s>\n", resp.Message, resp.User.Username, resp.User.Email)
			return nil
		},
	}

	config.BindFlags(cmd)

	cmd.Flags().StringP("email", "e", "", "Email пользователя (можно ввести интерактивно)")
	cmd.Flags().StringP("password", "p", "", "Пароль пользователя (рекомендуется интерактивный ввод)")

	return cmd
}
