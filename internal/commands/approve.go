package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ApproveCmd approves a requested reservation and prints the issued
// token.
func ApproveCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "approve [reservation-id]",
		Short: "Approve a reservation and issue its token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(logger)
			if err != nil {
				return err
			}

			res, err := svc.ApproveReservation(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Reservation %s approved\n", res.ReservationID())
			fmt.Printf("  token:   %s\n", res.ReservationToken)
			fmt.Printf("  expires: %s\n", res.ReservationTokenExpiry)
			return nil
		},
	}
}
