package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"innkeeper/internal/tenant"
)

// TenantsCmd lists tenants, or looks one up by wallet id.
func TenantsCmd(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenants",
		Short: "List provisioned tenants",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(logger)
			if err != nil {
				return err
			}

			walletID, _ := cmd.Flags().GetString("wallet")
			if walletID != "" {
				ten, err := svc.GetTenantByWallet(cmd.Context(), walletID)
				if err != nil {
					return err
				}
				out, err := json.MarshalIndent(tenant.TenantSchemaFromRecord(ten), "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			state, _ := cmd.Flags().GetString("state")
			tenants, err := svc.ListTenants(cmd.Context(), state)
			if err != nil {
				return err
			}

			if len(tenants) == 0 {
				fmt.Println("No tenants found.")
				return nil
			}

			fmt.Printf("%-36s  %-8s  %-24s  %-36s\n", "Tenant", "State", "Tenant Name", "Wallet")
			for _, ten := range tenants {
				fmt.Printf("%-36s  %-8s  %-24s  %-36s\n",
					ten.TenantID(), ten.State, ten.TenantName, ten.WalletID)
			}
			return nil
		},
	}

	cmd.Flags().String("state", "", "Filter by state (active, deleted)")
	cmd.Flags().String("wallet", "", "Look up the tenant bound to a wallet id")

	return cmd
}
