package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdtaxation/adminctl/internal/platform"
	"github.com/sdtaxation/adminctl/internal/ux"
)

var subscriptionCmd = &cobra.Command{
	Use:     "subscription",
	Aliases: []string{"sub"},
	Short:   "Manage company subscriptions",
	Long: `Manage the subscriptions tying companies to plans.

Subcommands:
  list         List subscriptions
  get          Show one subscription
  by-company   Show the subscription of a company
  assign       Assign a plan to a company
  update       Update a subscription
  delete       Delete a subscription

Examples:
  adminctl subscription list --status active
  adminctl subscription assign --company c1 --plan p1 --end-date 2026-12-31
  adminctl subscription update s1 --status cancelled`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var subListFlags struct {
	status  string
	company string
}

var subListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		resp, err := a.client.Subscriptions(cmd.Context(), platform.SubscriptionFilter{
			Status:    subListFlags.status,
			CompanyID: subListFlags.company,
		})
		if err != nil {
			return ux.EnhanceError(err)
		}

		f, err := formatter(cmd)
		if err != nil {
			return err
		}
		if flagOutput == "text" || flagOutput == "" {
			return f.Format(ux.SubscriptionTable(resp.Data))
		}
		return f.Format(resp.Data)
	},
}

var subGetCmd = &cobra.Command{
	Use:   "get <subscription-id>",
	Short: "Show one subscription",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		resp, err := a.client.Subscription(cmd.Context(), args[0])
		if err != nil {
			return ux.EnhanceError(err)
		}

		f, err := formatter(cmd)
		if err != nil {
			return err
		}
		if flagOutput == "text" || flagOutput == "" {
			return f.Format(ux.SubscriptionTable{resp.Data})
		}
		return f.Format(resp.Data)
	},
}

var subByCompanyCmd = &cobra.Command{
	Use:   "by-company <company-id>",
	Short: "Show the subscription of a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		resp, err := a.client.SubscriptionByCompany(cmd.Context(), args[0])
		if err != nil {
			return ux.EnhanceError(err)
		}

		f, err := formatter(cmd)
		if err != nil {
			return err
		}
		if flagOutput == "text" || flagOutput == "" {
			return f.Format(ux.SubscriptionTable{resp.Data})
		}
		return f.Format(resp.Data)
	},
}

var subAssignFlags struct {
	company   string
	plan      string
	startDate string
	endDate   string
	autoRenew bool
	notes     string
}

var subAssignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign a plan to a company",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		fl := &subAssignFlags
		if fl.company == "" || fl.plan == "" || fl.endDate == "" {
			return fmt.Errorf("--company, --plan and --end-date are required")
		}

		resp, err := a.client.AssignSubscription(cmd.Context(), platform.AssignSubscriptionRequest{
			Company:   fl.company,
			Plan:      fl.plan,
			StartDate: fl.startDate,
			EndDate:   fl.endDate,
			AutoRenew: fl.autoRenew,
			Notes:     fl.notes,
		})
		if err != nil {
			return ux.EnhanceError(err)
		}
		a.notifier.Success("subscription %s assigned to %s", resp.Data.ID, resp.Data.Company.Name)
		return nil
	},
}

var subUpdateFlags struct {
	endDate   string
	status    string
	autoRenew bool
	notes     string
}

var subUpdateCmd = &cobra.Command{
	Use:   "update <subscription-id>",
	Short: "Update a subscription",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		fl := &subUpdateFlags
		req := platform.UpdateSubscriptionRequest{
			EndDate: fl.endDate,
			Status:  fl.status,
			Notes:   fl.notes,
		}
		if cmd.Flags().Changed("auto-renew") {
			v := fl.autoRenew
			req.AutoRenew = &v
		}

		resp, err := a.client.UpdateSubscription(cmd.Context(), args[0], req)
		if err != nil {
			return ux.EnhanceError(err)
		}
		a.notifier.Success("subscription %s updated", resp.Data.ID)
		return nil
	},
}

var subDeleteCmd = &cobra.Command{
	Use:   "delete <subscription-id>",
	Short: "Delete a subscription",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		if !confirmed(cmd, fmt.Sprintf("Delete subscription %s?", args[0])) {
			a.notifier.Info("aborted")
			return nil
		}

		if _, err := a.client.DeleteSubscription(cmd.Context(), args[0]); err != nil {
			return ux.EnhanceError(err)
		}
		a.notifier.Success("subscription %s deleted", args[0])
		return nil
	},
}

func init() {
	subListCmd.Flags().StringVar(&subListFlags.status, "status", "", "filter by status (active, expired, cancelled, suspended)")
	subListCmd.Flags().StringVar(&subListFlags.company, "company", "", "filter by company id")

	fl := &subAssignFlags
	subAssignCmd.Flags().StringVar(&fl.company, "company", "", "company id")
	subAssignCmd.Flags().StringVar(&fl.plan, "plan", "", "plan id")
	subAssignCmd.Flags().StringVar(&fl.startDate, "start-date", "", "start date (YYYY-MM-DD, default today)")
	subAssignCmd.Flags().StringVar(&fl.endDate, "end-date", "", "end date (YYYY-MM-DD)")
	subAssignCmd.Flags().BoolVar(&fl.autoRenew, "auto-renew", false, "renew automatically at the end date")
	subAssignCmd.Flags().StringVar(&fl.notes, "notes", "", "free-form notes")

	uf := &subUpdateFlags
	subUpdateCmd.Flags().StringVar(&uf.endDate, "end-date", "", "new end date (YYYY-MM-DD)")
	subUpdateCmd.Flags().StringVar(&uf.status, "status", "", "new status (active, expired, cancelled, suspended)")
	subUpdateCmd.Flags().BoolVar(&uf.autoRenew, "auto-renew", false, "toggle auto renewal")
	subUpdateCmd.Flags().StringVar(&uf.notes, "notes", "", "free-form notes")

	subscriptionCmd.AddCommand(subListCmd)
	subscriptionCmd.AddCommand(subGetCmd)
	subscriptionCmd.AddCommand(subByCompanyCmd)
	subscriptionCmd.AddCommand(subAssignCmd)
	subscriptionCmd.AddCommand(subUpdateCmd)
	subscriptionCmd.AddCommand(subDeleteCmd)
	rootCmd.AddCommand(subscriptionCmd)
}
