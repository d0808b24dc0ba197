package timing

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteTable prints an aligned summary of results to w: one row per case
// with composition, dispatcher timing, the solver value, and — when the
// sub-operations were measured — the agreement flag and fast-path speedup.
func WriteTable(w io.Writer, results []Result) error {
	if len(results) == 0 {
		return ErrNoResults
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tSIZE\tHOUSES\tOBSTACLES\tTIME (s)\tVALUE\tAGREE\tSPEEDUP")
	for _, r := range results {
		agree, speedup := "-", "-"
		if r.SubMeasured {
			agree = fmt.Sprintf("%t", r.Agree)
			speedup = fmt.Sprintf("%.2fx", r.Speedup)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.4f±%.4f\t%d\t%s\t%s\n",
			r.Case.Name, r.Case.Size(), r.Houses, r.Obstacles,
			r.Auto.Mean, r.Auto.StdDev, r.Value, agree, speedup)
	}

	return tw.Flush()
}
