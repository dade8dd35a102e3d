package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"ghx_sizing/ghx"
)

// writeReport prints the sizing result as an aligned key/value listing.
func writeReport(w io.Writer, res *ghx.SizingResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	l := res.Layout
	fmt.Fprintf(tw, "project\t%s\n", res.Name)
	fmt.Fprintf(tw, "configuration\t%s\n", l.Config)
	fmt.Fprintf(tw, "bore holes\t%d\n", l.NumBoreHoles)
	fmt.Fprintf(tw, "bore depth\t%g ft\n", l.BoreDepth)
	fmt.Fprintf(tw, "total length\t%g ft (%.1f ft required)\n", l.TotalLength(), res.BoreLength.Total)
	fmt.Fprintf(tw, "spacing/depth\t%.4f\n", l.SpacingToDepthRatio)
	fmt.Fprintf(tw, "loop flow\t%g gpm\n", res.LoopFlow)
	fmt.Fprintf(tw, "design EWT\tcooling %g F, heating %g F\n",
		res.DesignTemperatures.CHWDesign, res.DesignTemperatures.HWDesign)
	fmt.Fprintf(tw, "resistances\tpipe %.4f, borehole %.4f, ground %.4f hr-ft-F/Btu\n",
		res.Resistances.Pipe, res.Resistances.Borehole, res.Resistances.Ground)
	fmt.Fprintf(tw, "EIR\tcooling %.4f, heating %.4f\n", res.CoolingEIR, res.HeatingEIR)
	tw.Flush()

	for _, warn := range res.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
}

// writeSIReport prints the SI form of a result.
func writeSIReport(w io.Writer, si ghx.SIReport) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "bore depth\t%.2f m\n", si.BoreDepth.Value())
	fmt.Fprintf(tw, "total length\t%.2f m\n", si.TotalLength.Value())
	fmt.Fprintf(tw, "loop flow\t%.6f m3/s\n", si.LoopFlow.Value())
	fmt.Fprintf(tw, "design EWT\tcooling %.2f K, heating %.2f K\n", si.CHWDesign.Value(), si.HWDesign.Value())
	fmt.Fprintf(tw, "resistances\tpipe %.4f, borehole %.4f, ground %.4f m-K/W\n",
		si.PipeR.Value(), si.BoreholeR.Value(), si.GroundR.Value())
	tw.Flush()
}
