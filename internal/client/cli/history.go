package cli

import (
	"fmt"

	"github.com/avdeyev/authgate/internal/client/config"
	"github.com/avdeyev/authgate/internal/client/service"
	"github.com/spf13/cobra"
)

func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Собственная история входов",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := service.FromContext(cmd.Context())

			limit, _ := cmd.Flags().GetInt("limit")

			records, err := s.Auth.History(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println("История входов пуста")
				return nil
			}

			for _, rec := range records {
				fmt.Printf("%s\t%s\t%s\n", rec.LoginTime.Format("2006-01-02 15:04:05"), rec.IPAddress, rec.UserAgent)
			}
			return nil
		},
	}

	config.BindFlags(cmd)

	cmd.Flags().IntP("limit", "n", 0, "Сколько записей показать (максимум 100)")

	return cmd
}
