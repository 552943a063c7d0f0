package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdtaxation/adminctl/internal/platform"
	"github.com/sdtaxation/adminctl/internal/ux"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage company administrators",
	Long: `Manage company administrator accounts.

Subcommands:
  list     List all admins
  create   Create an admin for a company
  update   Update an admin
  delete   Remove an admin

Examples:
  adminctl admin list
  adminctl admin create --fullname "Priya Shah" --username priya --email priya@acme.in --company c1 --password secret
  adminctl admin delete a1 --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all admins",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		resp, err := a.client.Admins(cmd.Context())
		if err != nil {
			return ux.EnhanceError(err)
		}

		f, err := formatter(cmd)
		if err != nil {
			return err
		}
		if flagOutput == "text" || flagOutput == "" {
			return f.Format(ux.AdminTable(resp.Data))
		}
		return f.Format(resp.Data)
	},
}

var adminCreateFlags struct {
	fullname   string
	username   string
	email      string
	role       string
	password   string
	phone      string
	department string
	area       string
	company    string
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin for a company",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		fl := &adminCreateFlags
		if fl.fullname == "" || fl.username == "" || fl.email == "" || fl.password == "" || fl.company == "" {
			return fmt.Errorf("--fullname, --username, --email, --password and --company are required")
		}

		resp, err := a.client.CreateAdmin(cmd.Context(), platform.CreateAdminRequest{
			FullName:         fl.fullname,
			Username:         fl.username,
			Email:            fl.email,
			Role:             fl.role,
			Password:         fl.password,
			OriginalPassword: fl.password,
			Phone:            fl.phone,
			Department:       fl.department,
			AdminArea:        fl.area,
			Company:          fl.company,
		})
		if err != nil {
			return ux.EnhanceError(err)
		}
		a.notifier.Success("admin %s created (%s)", resp.Data.FullName, resp.Data.ID)
		return nil
	},
}

var adminUpdateFlags struct {
	fullname   string
	username   string
	email      string
	role       string
	phone      string
	department string
	area       string
	company    string
}

var adminUpdateCmd = &cobra.Command{
	Use:   "update <admin-id>",
	Short: "Update an admin",
	Long:  "Update an admin. Only the flags you set are sent; everything else stays unchanged.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		fl := &adminUpdateFlags
		resp, err := a.client.UpdateAdmin(cmd.Context(), args[0], platform.UpdateAdminRequest{
			FullName:   fl.fullname,
			Username:   fl.username,
			Email:      fl.email,
			Role:       fl.role,
			Phone:      fl.phone,
			Department: fl.department,
			AdminArea:  fl.area,
			Company:    fl.company,
		})
		if err != nil {
			return ux.EnhanceError(err)
		}
		a.notifier.Success("admin %s updated", resp.Data.ID)
		return nil
	},
}

var adminDeleteCmd = &cobra.Command{
	Use:   "delete <admin-id>",
	Short: "Remove an admin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		if !confirmed(cmd, fmt.Sprintf("Delete admin %s?", args[0])) {
			a.notifier.Info("aborted")
			return nil
		}

		if _, err := a.client.DeleteAdmin(cmd.Context(), args[0]); err != nil {
			return ux.EnhanceError(err)
		}
		a.notifier.Success("admin %s deleted", args[0])
		return nil
	},
}

func init() {
	fl := &adminCreateFlags
	adminCreateCmd.Flags().StringVar(&fl.fullname, "fullname", "", "full name")
	adminCreateCmd.Flags().StringVar(&fl.username, "username", "", "login username")
	adminCreateCmd.Flags().StringVar(&fl.email, "email", "", "email address")
	adminCreateCmd.Flags().StringVar(&fl.role, "role", "admin", "role")
	adminCreateCmd.Flags().StringVar(&fl.password, "password", "", "initial password")
	adminCreateCmd.Flags().StringVar(&fl.phone, "phone", "", "phone number")
	adminCreateCmd.Flags().StringVar(&fl.department, "department", "", "department")
	adminCreateCmd.Flags().StringVar(&fl.area, "area", "", "admin area")
	adminCreateCmd.Flags().StringVar(&fl.company, "company", "", "company id the admin belongs to")

	uf := &adminUpdateFlags
	adminUpdateCmd.Flags().StringVar(&uf.fullname, "fullname", "", "full name")
	adminUpdateCmd.Flags().StringVar(&uf.username, "username", "", "login username")
	adminUpdateCmd.Flags().StringVar(&uf.email, "email", "", "email address")
	adminUpdateCmd.Flags().StringVar(&uf.role, "role", "", "role")
	adminUpdateCmd.Flags().StringVar(&uf.phone, "phone", "", "phone number")
	adminUpdateCmd.Flags().StringVar(&uf.department, "department", "", "department")
	adminUpdateCmd.Flags().StringVar(&uf.area, "area", "", "admin area")
	adminUpdateCmd.Flags().StringVar(&uf.company, "company", "", "company id")

	adminCmd.AddCommand(adminListCmd)
	adminCmd.AddCommand(adminCreateCmd)
	adminCmd.AddCommand(adminUpdateCmd)
	adminCmd.AddCommand(adminDeleteCmd)
	rootCmd.AddCommand(adminCmd)
}
