package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ghx_sizing/ghx"
)

func (a *app) sizeCmd() *cobra.Command {
	var (
		asJSON  bool
		si      bool
		gfnPath string
	)

	cmd := &cobra.Command{
		Use:   "size [project.yaml]",
		Short: "Size the ground heat exchanger of one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			res, err := a.sizeProject(args[0])
			if err != nil {
				return err
			}

			if gfnPath != "" {
				if err := writeGFunctionFile(gfnPath, res.GFunction); err != nil {
					return err
				}
				a.log.WithField("path", gfnPath).Info("saved g-function")
			}

			st, err := a.openStore()
			if err != nil {
				return err
			}
			if st != nil {
				defer st.Close()
			}
			if err := a.record(st, res); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(res); err != nil {
					return err
				}
			} else {
				writeReport(out, res)
				if si {
					fmt.Fprintln(out)
					writeSIReport(out, res.SI())
				}
			}

			a.log.Infof("elapsed_time: %v", time.Since(start))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	cmd.Flags().BoolVar(&si, "si", false, "also print the result in SI units")
	cmd.Flags().StringVar(&gfnPath, "gfunction", "", "write the g-function to this CSV file")
	return cmd
}

func writeGFunctionFile(path string, c ghx.GFunctionCurve) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.WriteCSV(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
