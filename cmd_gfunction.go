package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ghx_sizing/ghx"
)

func (a *app) gfunctionCmd() *cobra.Command {
	var (
		config string
		holes  int
		ratio  float64
		output string
	)

	cmd := &cobra.Command{
		Use:   "gfunction",
		Short: "Export the g-function of a bore field as CSV",
		Long: `gfunction prints the 27 (ln(t/ts), g) pairs of a bore field, selected by
configuration, hole count and spacing-to-depth ratio.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ghx.ParseBoreConfig(config)
			if err != nil {
				return err
			}
			if cfg == ghx.ConfigAuto {
				cfg, holes, _, err = ghx.ValidateConfiguration(cfg, holes)
				if err != nil {
					return err
				}
			}

			c, err := ghx.SelectGFunction(cfg, holes, ratio)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"config": cfg, "holes": holes, "ratio": ratio}).Debug("selected g-function")

			if output != "" {
				return writeGFunctionFile(output, c)
			}
			return c.WriteCSV(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&config, "config", "auto", "bore configuration")
	cmd.Flags().IntVar(&holes, "holes", 1, "number of bore holes")
	cmd.Flags().Float64Var(&ratio, "ratio", 0.1, "bore spacing over bore depth")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV file, stdout if empty")
	return cmd
}
