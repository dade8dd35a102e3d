package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ghx_sizing/ghx"
	"ghx_sizing/project"
	"ghx_sizing/store"
)

// app holds the state shared by the subcommands.
type app struct {
	log      *logrus.Logger
	logLevel string
	dbPath   string
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}
	a.log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	})

	root := &cobra.Command{
		Use:          "ghx-sizing",
		Short:        "Vertical ground heat exchanger sizing",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := logrus.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log.SetLevel(lvl)
			a.log.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log", "warning", "log level (debug, info, warning, error)")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "sizing history database, empty to disable history")

	root.AddCommand(a.sizeCmd())
	root.AddCommand(a.batchCmd())
	root.AddCommand(a.gfunctionCmd())
	root.AddCommand(a.weatherCmd())
	root.AddCommand(a.historyCmd())
	return root
}

// openStore opens the history database, or returns nil when history is off.
func (a *app) openStore() (*store.Store, error) {
	if a.dbPath == "" {
		return nil, nil
	}
	a.log.WithField("db", a.dbPath).Debug("opening history")
	return store.Open(a.dbPath)
}

// sizeProject loads a project file and sizes it.
func (a *app) sizeProject(path string) (*ghx.SizingResult, error) {
	log := a.log.WithField("project", path)
	log.Debug("reading project")

	p, err := project.Load(path)
	if err != nil {
		return nil, err
	}
	if p.Weather.File != "" {
		log.WithField("weather", p.WeatherPath()).Info("loading weather data")
	}
	in, err := p.Input()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.WithFields(logrus.Fields{
		"heating": in.Capacity.Heating,
		"cooling": in.Capacity.Cooling,
		"config":  in.BoreField.Config,
		"holes":   in.BoreField.Holes,
		"depth":   in.BoreField.Depth,
	}).Info("sizing")

	res, err := ghx.Size(in)
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		a.log.WithFields(logrus.Fields{"code": w.Code, "equipment": res.Name}).Warn(w.Message)
	}
	return res, nil
}

// record saves a result to the history database if one is open.
func (a *app) record(st *store.Store, res *ghx.SizingResult) error {
	if st == nil {
		return nil
	}
	id, err := st.Save(res, time.Now())
	if err != nil {
		return fmt.Errorf("saving %s: %w", res.Name, err)
	}
	a.log.WithFields(logrus.Fields{"id": id, "project": res.Name}).Debug("saved to history")
	return nil
}
