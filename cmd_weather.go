package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ghx_sizing/ghx"
	"ghx_sizing/weather"
)

func (a *app) weatherCmd() *cobra.Command {
	var interval, format string

	cmd := &cobra.Command{
		Use:   "weather [weather.csv]",
		Short: "Compute design statistics from a weather file",
		Long: `weather reads one year of dry-bulb temperatures, either a CSV file
(month, day, hour, temperature in C) or a HASP file, and prints the design
statistics as a YAML block for the weather section of a project file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itv, err := weather.ParseInterval(interval)
			if err != nil {
				return err
			}
			f, err := weather.ParseFormat(format)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"path": args[0], "format": f}).Info("loading weather data")

			ws, err := weather.LoadStatistics(args[0], f, itv)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(struct {
				Statistics ghx.WeatherStatistics `yaml:"statistics"`
			}{ws}); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	cmd.Flags().StringVar(&interval, "interval", "1h", "time step of a csv file (1h, 30m, 15m)")
	cmd.Flags().StringVar(&format, "format", "csv", "file layout (csv, hasp)")
	return cmd
}
