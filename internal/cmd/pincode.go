package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdtaxation/adminctl/internal/pincode"
	"github.com/sdtaxation/adminctl/internal/ux"
)

// pincodeResult is the lookup payload for all output formats.
type pincodeResult struct {
	Pincode     string            `json:"pincode" yaml:"pincode"`
	Message     string            `json:"message" yaml:"message"`
	PostOffices []pincode.Address `json:"post_offices" yaml:"post_offices"`
}

func (r pincodeResult) String() string {
	if len(r.PostOffices) == 0 {
		return fmt.Sprintf("%s: no post offices found", r.Pincode)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", r.Pincode, r.Message)
	for _, po := range r.PostOffices {
		fmt.Fprintf(&b, "  %s, %s, %s\n", po.City, po.State, po.Country)
	}
	return strings.TrimRight(b.String(), "\n")
}

var pincodeCmd = &cobra.Command{
	Use:   "pincode <pin>",
	Short: "Look up an Indian postal PIN code",
	Long: `Look up an Indian postal PIN code against the public postal API.
Useful for filling company addresses.

Examples:
  adminctl pincode 411001
  adminctl pincode 411001 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp()
		if err != nil {
			return err
		}

		// Public API, no session needed.
		res, err := a.pincodes.Lookup(cmd.Context(), args[0])
		if err != nil {
			return ux.EnhanceError(err)
		}

		out := pincodeResult{Pincode: args[0], Message: res.Message}
		for _, po := range res.PostOffices {
			out.PostOffices = append(out.PostOffices, pincode.ExtractAddress(po))
		}

		f, err := formatter(cmd)
		if err != nil {
			return err
		}
		return f.Format(out)
	},
}

func init() {
	rootCmd.AddCommand(pincodeCmd)
}
