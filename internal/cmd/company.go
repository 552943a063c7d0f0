package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdtaxation/adminctl/internal/errors"
	"github.com/sdtaxation/adminctl/internal/pincode"
	"github.com/sdtaxation/adminctl/internal/platform"
	"github.com/sdtaxation/adminctl/internal/ux"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage tenant companies",
	Long: `Manage tenant companies on the platform.

Subcommands:
  list     List all companies
  get      Show one company
  create   Onboard a new company
  update   Update a company
  delete   Remove a company

Examples:
  adminctl company list
  adminctl company create --name "Acme Tax LLP" --email billing@acme.in --phone +91-9000000000 --pincode 411001
  adminctl company delete c1 --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var companyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all companies",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		resp, err := a.client.Companies(cmd.Context())
		if err != nil {
			return ux.EnhanceError(err)
		}

		f, err := formatter(cmd)
		if err != nil {
			return err
		}
		if flagOutput == "text" || flagOutput == "" {
			return f.Format(ux.CompanyTable(resp.Data))
		}
		return f.Format(resp.Data)
	},
}

var companyGetCmd = &cobra.Command{
	Use:   "get <company-id>",
	Short: "Show one company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		resp, err := a.client.Company(cmd.Context(), args[0])
		if err != nil {
			return ux.EnhanceError(err)
		}

		f, err := formatter(cmd)
		if err != nil {
			return err
		}
		if flagOutput == "text" || flagOutput == "" {
			return f.Format(ux.CompanyTable{resp.Data})
		}
		return f.Format(resp.Data)
	},
}

var companyCreateFlags struct {
	name         string
	email        string
	phone        string
	street       string
	city         string
	state        string
	country      string
	zip          string
	pin          string
	website      string
	gstNumber    string
	fiscalYear   string
	industry     string
	constitution string
	logoPath     string
}

var companyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Onboard a new company",
	Long: `Onboard a new company.

The address can be filled from an Indian postal PIN code with --pincode:
city, state and country are looked up and merged with any explicitly
set address flags (explicit flags win). A logo image can be attached
with --logo.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		fl := &companyCreateFlags
		if fl.name == "" || fl.email == "" || fl.phone == "" {
			return fmt.Errorf("--name, --email and --phone are required")
		}

		addr := platform.CompanyAddress{
			Street:  fl.street,
			City:    fl.city,
			State:   fl.state,
			Country: fl.country,
			ZipCode: fl.zip,
		}
		if fl.pin != "" {
			res, err := a.pincodes.Lookup(cmd.Context(), fl.pin)
			if err != nil {
				return ux.EnhanceError(err)
			}
			if len(res.PostOffices) == 0 {
				return fmt.Errorf("pincode %s resolved to no post offices", fl.pin)
			}
			looked := pincode.ExtractAddress(res.PostOffices[0])
			if addr.City == "" {
				addr.City = looked.City
			}
			if addr.State == "" {
				addr.State = looked.State
			}
			if addr.Country == "" {
				addr.Country = looked.Country
			}
			if addr.ZipCode == "" {
				addr.ZipCode = fl.pin
			}
		}

		req := platform.CreateCompanyRequest{
			Name:                   fl.name,
			Email:                  fl.email,
			Phone:                  fl.phone,
			Address:                addr,
			Website:                fl.website,
			GSTNumber:              fl.gstNumber,
			FiscalYear:             fl.fiscalYear,
			Industry:               fl.industry,
			ConstitutionOfBusiness: fl.constitution,
		}
		if fl.logoPath != "" {
			logo, err := os.Open(fl.logoPath)
			if err != nil {
				return errors.NewFileNotFoundError(fl.logoPath)
			}
			defer logo.Close()
			req.Logo = logo
			req.LogoName = fl.logoPath
		}

		resp, err := a.client.CreateCompany(cmd.Context(), req)
		if err != nil {
			return ux.EnhanceError(err)
		}

		a.notifier.Success("company %s created (%s)", resp.Data.Name, resp.Data.ID)
		return nil
	},
}

var companyUpdateFlags struct {
	name    string
	email   string
	phone   string
	street  string
	city    string
	state   string
	country string
	zip     string
	website string
}

var companyUpdateCmd = &cobra.Command{
	Use:   "update <company-id>",
	Short: "Update a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		// The update endpoint replaces the record, so unset flags are
		// backfilled from the current state.
		current, err := a.client.Company(cmd.Context(), args[0])
		if err != nil {
			return ux.EnhanceError(err)
		}

		fl := &companyUpdateFlags
		req := platform.UpdateCompanyRequest{
			Name:    orDefault(fl.name, current.Data.Name),
			Email:   orDefault(fl.email, current.Data.Email),
			Phone:   orDefault(fl.phone, current.Data.Phone),
			Website: orDefault(fl.website, current.Data.Website),
			Address: platform.CompanyAddress{
				Street:  orDefault(fl.street, current.Data.Address.Street),
				City:    orDefault(fl.city, current.Data.Address.City),
				State:   orDefault(fl.state, current.Data.Address.State),
				Country: orDefault(fl.country, current.Data.Address.Country),
				ZipCode: orDefault(fl.zip, current.Data.Address.ZipCode),
			},
		}

		resp, err := a.client.UpdateCompany(cmd.Context(), args[0], req)
		if err != nil {
			return ux.EnhanceError(err)
		}
		a.notifier.Success("company %s updated", resp.Data.ID)
		return nil
	},
}

var companyDeleteCmd = &cobra.Command{
	Use:   "delete <company-id>",
	Short: "Remove a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}
		if err := requireSession(cmd.Context(), a); err != nil {
			return ux.EnhanceError(err)
		}

		if !confirmed(cmd, fmt.Sprintf("Delete company %s? This cannot be undone.", args[0])) {
			a.notifier.Info("aborted")
			return nil
		}

		if _, err := a.client.DeleteCompany(cmd.Context(), args[0]); err != nil {
			return ux.EnhanceError(err)
		}
		a.notifier.Success("company %s deleted", args[0])
		return nil
	},
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func init() {
	fl := &companyCreateFlags
	companyCreateCmd.Flags().StringVar(&fl.name, "name", "", "company name")
	companyCreateCmd.Flags().StringVar(&fl.email, "email", "", "company email")
	companyCreateCmd.Flags().StringVar(&fl.phone, "phone", "", "company phone")
	companyCreateCmd.Flags().StringVar(&fl.street, "street", "", "street address")
	companyCreateCmd.Flags().StringVar(&fl.city, "city", "", "city")
	companyCreateCmd.Flags().StringVar(&fl.state, "state", "", "state")
	companyCreateCmd.Flags().StringVar(&fl.country, "country", "", "country")
	companyCreateCmd.Flags().StringVar(&fl.zip, "zip", "", "postal code")
	companyCreateCmd.Flags().StringVar(&fl.pin, "pincode", "", "Indian PIN code used to autofill the address")
	companyCreateCmd.Flags().StringVar(&fl.website, "website", "", "company website")
	companyCreateCmd.Flags().StringVar(&fl.gstNumber, "gst-number", "", "GST registration number")
	companyCreateCmd.Flags().StringVar(&fl.fiscalYear, "fiscal-year", "", "fiscal year, e.g. 2025-2026")
	companyCreateCmd.Flags().StringVar(&fl.industry, "industry", "", "industry")
	companyCreateCmd.Flags().StringVar(&fl.constitution, "constitution", "", "constitution of business")
	companyCreateCmd.Flags().StringVar(&fl.logoPath, "logo", "", "path to a logo image")

	uf := &companyUpdateFlags
	companyUpdateCmd.Flags().StringVar(&uf.name, "name", "", "company name")
	companyUpdateCmd.Flags().StringVar(&uf.email, "email", "", "company email")
	companyUpdateCmd.Flags().StringVar(&uf.phone, "phone", "", "company phone")
	companyUpdateCmd.Flags().StringVar(&uf.street, "street", "", "street address")
	companyUpdateCmd.Flags().StringVar(&uf.city, "city", "", "city")
	companyUpdateCmd.Flags().StringVar(&uf.state, "state", "", "state")
	companyUpdateCmd.Flags().StringVar(&uf.country, "country", "", "country")
	companyUpdateCmd.Flags().StringVar(&uf.zip, "zip", "", "postal code")
	companyUpdateCmd.Flags().StringVar(&uf.website, "website", "", "company website")

	companyCmd.AddCommand(companyListCmd)
	companyCmd.AddCommand(companyGetCmd)
	companyCmd.AddCommand(companyCreateCmd)
	companyCmd.AddCommand(companyUpdateCmd)
	companyCmd.AddCommand(companyDeleteCmd)
	rootCmd.AddCommand(companyCmd)
}
