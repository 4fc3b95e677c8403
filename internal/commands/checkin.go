package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"innkeeper/internal/tenant"
)

// CheckinCmd redeems a reservation token and provisions the tenant.
func CheckinCmd(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Redeem a reservation token and provision the tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(logger)
			if err != nil {
				return err
			}

			token, _ := cmd.Flags().GetString("token")
			walletID, _ := cmd.Flags().GetString("wallet-id")

			ten, err := svc.CheckIn(cmd.Context(), token, walletID)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(tenant.TenantSchemaFromRecord(ten), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().String("token", "", "Reservation token issued on approval")
	cmd.Flags().String("wallet-id", "", "Wallet identifier to bind the tenant to")
	_ = cmd.MarkFlagRequired("token")
	_ = cmd.MarkFlagRequired("wallet-id")

	return cmd
}
