package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdtaxation/adminctl/internal/platform"
	"github.com/sdtaxation/adminctl/internal/ux"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage subscription plans",
	Long: `Manage the subscription plans companies can be put on.

Subcommands:
  list     List plans
  get      Show one plan
  create   Create a plan
  update   Update a plan
  delete   Delete a plan

Examples:
  adminctl plan list --active
  adminctl plan create --name Pro --price 4999 --duration 12
  adminctl plan delete p1 --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var (
	planActiveOnly   bool
	planInactiveOnly bool
)

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		var isActive *bool
		switch {
		case planActiveOnly && planInactiveOnly:
			return fmt.Errorf("--active and --inactive are mutually exclusive")
		case planActiveOnly:
			v := true
			isActive = &v
		case planInactiveOnly:
			v := false
			isActive = &v
		}

		resp, err := a.client.Plans(cmd.Context(), isActive)
		if err != nil {
			return ux.EnhanceError(err)
		}

		f, err := formatter(cmd)
		if err != nil {
			return err
		}
		if flagOutput == "text" || flagOutput == "" {
			return f.Format(ux.PlanTable(resp.Data))
		}
		return f.Format(resp.Data)
	},
}

var planGetCmd = &cobra.Command{
	Use:   "get <plan-id>",
	Short: "Show one plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		resp, err := a.client.Plan(cmd.Context(), args[0])
		if err != nil {
			return ux.EnhanceError(err)
		}

		f, err := formatter(cmd)
		if err != nil {
			return err
		}
		if flagOutput == "text" || flagOutput == "" {
			return f.Format(ux.PlanTable{resp.Data})
		}
		return f.Format(resp.Data)
	},
}

var planWriteFlags struct {
	name         string
	description  string
	price        float64
	currency     string
	duration     int
	features     []string
	maxEmployees int
	maxAdmins    int
	inactive     bool
}

func planRequest(cmd *cobra.Command) platform.CreatePlanRequest {
	fl := &planWriteFlags
	req := platform.CreatePlanRequest{
		PlanName:    fl.name,
		Description: fl.description,
		Price:       fl.price,
		Currency:    fl.currency,
		Duration:    fl.duration,
		Features:    fl.features,
		MaxAdmins:   fl.maxAdmins,
	}
	if cmd.Flags().Changed("max-employees") {
		v := fl.maxEmployees
		req.MaxEmployees = &v
	}
	if cmd.Flags().Changed("inactive") {
		active := !fl.inactive
		req.IsActive = &active
	}
	return req
}

var planCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		fl := &planWriteFlags
		if fl.name == "" || fl.price <= 0 || fl.duration <= 0 {
			return fmt.Errorf("--name, a positive --price and a positive --duration are required")
		}

		resp, err := a.client.CreatePlan(cmd.Context(), planRequest(cmd))
		if err != nil {
			return ux.EnhanceError(err)
		}
		a.notifier.Success("plan %s created (%s)", resp.Data.PlanName, resp.Data.ID)
		return nil
	},
}

var planUpdateCmd = &cobra.Command{
	Use:   "update <plan-id>",
	Short: "Update a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		resp, err := a.client.UpdatePlan(cmd.Context(), args[0], planRequest(cmd))
		if err != nil {
			return ux.EnhanceError(err)
		}
		a.notifier.Success("plan %s updated", resp.Data.ID)
		return nil
	},
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <plan-id>",
	Short: "Delete a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		if !confirmed(cmd, fmt.Sprintf("Delete plan %s?", args[0])) {
			a.notifier.Info("aborted")
			return nil
		}

		if _, err := a.client.DeletePlan(cmd.Context(), args[0]); err != nil {
			return ux.EnhanceError(err)
		}
		a.notifier.Success("plan %s deleted", args[0])
		return nil
	},
}

func registerPlanWriteFlags(cmd *cobra.Command) {
	fl := &planWriteFlags
	cmd.Flags().StringVar(&fl.name, "name", "", "plan name")
	cmd.Flags().StringVar(&fl.description, "description", "", "plan description")
	cmd.Flags().Float64Var(&fl.price, "price", 0, "plan price")
	cmd.Flags().StringVar(&fl.currency, "currency", "INR", "price currency")
	cmd.Flags().IntVar(&fl.duration, "duration", 0, "duration in months")
	cmd.Flags().StringSliceVar(&fl.features, "feature", nil, "plan feature (repeatable)")
	cmd.Flags().IntVar(&fl.maxEmployees, "max-employees", 0, "employee cap (0 for unlimited)")
	cmd.Flags().IntVar(&fl.maxAdmins, "max-admins", 0, "admin cap")
	cmd.Flags().BoolVar(&fl.inactive, "inactive", false, "create or mark the plan inactive")
}

func init() {
	planListCmd.Flags().BoolVar(&planActiveOnly, "active", false, "only active plans")
	planListCmd.Flags().BoolVar(&planInactiveOnly, "inactive", false, "only inactive plans")
	registerPlanWriteFlags(planCreateCmd)
	registerPlanWriteFlags(planUpdateCmd)

	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planGetCmd)
	planCmd.AddCommand(planCreateCmd)
	planCmd.AddCommand(planUpdateCmd)
	planCmd.AddCommand(planDeleteCmd)
	rootCmd.AddCommand(planCmd)
}
