package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qtwr/typewright/runner"
)

var checkCmd = &cobra.Command{
	Use:           "check",
	Short:         "Verify the quicktype installation",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		version, err := runner.Check(cfg.Tool)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "quicktype %s (%s)\n", version, cfg.Tool)
		return nil
	},
}
