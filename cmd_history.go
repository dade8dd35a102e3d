package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ghx_sizing/store"
)

func (a *app) historyCmd() *cobra.Command {
	var (
		limit int
		name  string
		show  int64
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored sizings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			if st == nil {
				return errors.New("history needs --db")
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			if show > 0 {
				res, err := st.Result(show)
				if err != nil {
					return err
				}
				writeReport(out, res)
				return nil
			}

			var records []store.Record
			if name != "" {
				records, err = st.ByName(name)
			} else {
				records, err = st.Recent(limit)
			}
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tPROJECT\tCREATED\tCONFIG\tHOLES\tDEPTH (ft)\tTOTAL (ft)\tWARNINGS")
			for _, r := range records {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%g\t%g\t%d\n",
					r.ID, r.Name, r.Created().Format("2006-01-02 15:04"), r.Config,
					r.NumBoreHoles, r.BoreDepth, r.TotalLength, r.Warnings)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of sizings to list")
	cmd.Flags().StringVar(&name, "name", "", "list only this project")
	cmd.Flags().Int64Var(&show, "show", 0, "print the stored result with this id")
	return cmd
}
