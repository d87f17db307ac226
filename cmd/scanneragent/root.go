package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "scanneragent",
	Short: "Distributed sensitive-data scanner agent",
	Long: `scanneragent discovers objects across a set of configured data
sources, classifies their content against a customer-defined catalog of
PII, PHI, and credential recognizers, and reports findings back to the
control plane. It runs as a long-lived daemon (scan) or a single pass
(once) against a fixed set of classifications.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(onceCmd)
	rootCmd.AddCommand(versionCmd)
}
