package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ReservationsCmd lists reservations, optionally filtered by state.
func ReservationsCmd(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "List tenant reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(logger)
			if err != nil {
				return err
			}

			state, _ := cmd.Flags().GetString("state")
			reservations, err := svc.ListReservations(cmd.Context(), state)
			if err != nil {
				return err
			}

			if len(reservations) == 0 {
				fmt.Println("No reservations found.")
				return nil
			}

			fmt.Printf("%-36s  %-10s  %-24s  %-24s\n", "Reservation", "State", "Tenant Name", "Contact Email")
			for _, res := range reservations {
				fmt.Printf("%-36s  %-10s  %-24s  %-24s\n",
					res.ReservationID(), res.State, res.TenantName, res.ContactEmail)
			}
			return nil
		},
	}

	cmd.Flags().String("state", "", "Filter by state (requested, approved, completed)")

	return cmd
}
