package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"innkeeper/internal/tenant"
)

// ReserveCmd files a new tenancy request.
func ReserveCmd(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Request a new tenant reservation",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(logger)
			if err != nil {
				return err
			}

			req := tenant.ReservationRequest{}
			req.TenantName, _ = cmd.Flags().GetString("tenant-name")
			req.TenantReason, _ = cmd.Flags().GetString("reason")
			req.ContactName, _ = cmd.Flags().GetString("contact-name")
			req.ContactEmail, _ = cmd.Flags().GetString("contact-email")
			req.ContactPhone, _ = cmd.Flags().GetString("contact-phone")

			res, err := svc.CreateReservation(cmd.Context(), req)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(tenant.ReservationSchemaFromRecord(res), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().String("tenant-name", "", "Proposed name of the tenant")
	cmd.Flags().String("reason", "", "Reason for requesting a tenant")
	cmd.Flags().String("contact-name", "", "Contact name for the request")
	cmd.Flags().String("contact-email", "", "Contact email for the request")
	cmd.Flags().String("contact-phone", "", "Contact phone number for the request")
	_ = cmd.MarkFlagRequired("tenant-name")
	_ = cmd.MarkFlagRequired("reason")
	_ = cmd.MarkFlagRequired("contact-name")
	_ = cmd.MarkFlagRequired("contact-email")
	_ = cmd.MarkFlagRequired("contact-phone")

	return cmd
}
