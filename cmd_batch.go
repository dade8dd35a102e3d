package main

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/cheggaaa/pb.v1"

	"ghx_sizing/ghx"
)

type batchJob struct {
	index int
	path  string
}

type batchResult struct {
	index int
	path  string
	res   *ghx.SizingResult
	err   error
}

func (a *app) batchCmd() *cobra.Command {
	var (
		workers  int
		progress bool
	)

	cmd := &cobra.Command{
		Use:   "batch [project.yaml...]",
		Short: "Size many projects in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			if workers < 1 {
				workers = 1
			}

			st, err := a.openStore()
			if err != nil {
				return err
			}
			if st != nil {
				defer st.Close()
			}

			bar := pb.New(len(args))
			bar.ShowTimeLeft = false
			bar.Output = cmd.ErrOrStderr()
			if !progress {
				bar.Output = io.Discard
			}
			bar.Start()

			results := a.runBatch(args, workers, bar)
			bar.FinishPrint(fmt.Sprintf("sized %d projects", len(args)))

			failed := 0
			for _, r := range results {
				if r.err != nil {
					failed++
					a.log.WithField("project", r.path).Error(r.err)
					continue
				}
				if err := a.record(st, r.res); err != nil {
					return err
				}
			}

			writeBatchTable(cmd.OutOrStdout(), results)
			a.log.Infof("elapsed_time: %v", time.Since(start))

			if failed > 0 {
				return fmt.Errorf("%d of %d projects failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "number of parallel workers")
	cmd.Flags().BoolVar(&progress, "progress", true, "show a progress bar")
	return cmd
}

/*
Sizes projects on a pool of workers.

	Args:
		paths: project files
		workers: pool size
		bar: progress bar, advanced once per project

	Returns:
		one result per path, in the order of paths
*/
func (a *app) runBatch(paths []string, workers int, bar *pb.ProgressBar) []batchResult {
	jobs := make(chan batchJob, len(paths))
	for i, p := range paths {
		jobs <- batchJob{index: i, path: p}
	}
	close(jobs)

	results := make(chan batchResult, len(paths))
	var wg sync.WaitGroup
	for w := 0; w < workers && w < len(paths); w++ {
		wg.Add(1)
		go a.batchWorker(&wg, jobs, results, bar)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	ordered := make([]batchResult, len(paths))
	for r := range results {
		ordered[r.index] = r
	}
	return ordered
}

func (a *app) batchWorker(wg *sync.WaitGroup, jobs <-chan batchJob, results chan<- batchResult, bar *pb.ProgressBar) {
	defer wg.Done()

	for job := range jobs {
		res, err := a.sizeProject(job.path)
		results <- batchResult{index: job.index, path: job.path, res: res, err: err}
		bar.Increment()
	}
}

func writeBatchTable(w io.Writer, results []batchResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PROJECT\tCONFIG\tHOLES\tDEPTH (ft)\tTOTAL (ft)\tWARNINGS")
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(tw, "%s\terror: %v\n", r.path, r.err)
			continue
		}
		l := r.res.Layout
		fmt.Fprintf(tw, "%s\t%s\t%d\t%g\t%g\t%d\n",
			r.res.Name, l.Config, l.NumBoreHoles, l.BoreDepth, l.TotalLength(), len(r.res.Warnings))
	}
	tw.Flush()
}
