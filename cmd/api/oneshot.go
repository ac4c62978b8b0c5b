package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	appver "github.com/bryanwahyu/global-sentinel/internal/application/verification"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario>",
	Short: "Run one crisis simulation and print it as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		sim, err := a.svc.Simulation.Run(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printJSON(cmd, sim)
	},
}

var verifyThreatID string

var verifyCmd = &cobra.Command{
	Use:   "verify <claim>",
	Short: "Fact-check one claim and print the verdict as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.svc.Verification.Verify(cmd.Context(), appver.VerifyCommand{
			ThreatID: verifyThreatID,
			Claim:    strings.Join(args, " "),
			UserID:   "cli",
		})
		if err != nil {
			return err
		}
		return printJSON(cmd, res)
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyThreatID, "threat", "", "Threat id the claim belongs to")
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
