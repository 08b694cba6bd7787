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

func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := service.FromContext(cmd.Context())

			u, _ := cmd.Flags().GetString("username")
			e, _ := cmd.Flags().GetString("email")
			p, _ := cmd.Flags().GetString("password")
			img, _ := cmd.Flags().GetString("image")

			if u == "" {
				fmt.Print("Введите имя пользователя: ")
				_, err := fmt.Scanln(&u)
				if err != nil {
					return fmt.Errorf("ошибка чтения имени: %w", err)
				}
			}

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

			if u == "" || e == "" || p == "" {
				return errors.New("имя, email и пароль обязательны")
			}

			resp, err := s.Auth.Register(cmd.Context(), models.RegisterRequest{
				Username: u,
				Email:    e,
				Password: p,
				Image:    img,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s: %s <%s>\n", resp.Message, resp.User.Username, resp.User.Email)
			return nil
		},
	}

	config.BindFlags(cmd)

	cmd.Flags().StringP("username", "u", "", "Имя нового пользователя (можно ввести интерактивно)")
	cmd.Flags().StringP("email", "e", "", "Email нового пользователя (можно ввести интерактивно)")
	cmd.Flags().StringP("password", "p", "", "Пароль нового пользователя (рекомендуется интерактивный ввод)")
	cmd.Flags().StringP("image", "i", "", "URL аватара")

	return cmd
}
