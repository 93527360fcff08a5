package cli

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/alexivanou/carryon-checker/internal/compat"
	"github.com/alexivanou/carryon-checker/internal/model"
)

func writeCheckText(out io.Writer, resp *model.CheckResponse, lang string) error {
	w := bufio.NewWriter(out)
	s := resp.Suitcase

	fmt.Fprintln(w, "=== Carry-on Compatibility ===")
	fmt.Fprintf(w, "Suitcase:        %s x %s x %s cm", formatFloat(s.Width), formatFloat(s.Height), formatFloat(s.Depth))
	if s.Weight != nil {
		fmt.Fprintf(w, ", %s kg", formatFloat(*s.Weight))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total length:    %s cm\n", formatFloat(resp.TotalLength))
	fmt.Fprintf(w, "Volume:          %s cm3\n", formatFloat(resp.Report.Volume))
	fmt.Fprintf(w, "Compatible:      %d / %d (%.1f%%)\n",
		len(resp.Results.Compatible), resp.Report.TotalAirlines, resp.Report.CompatibilityRate)
	fmt.Fprintln(w)

	if len(resp.Results.Compatible) == 0 {
		fmt.Fprintln(w, "No compatible airlines found.")
	} else {
		fmt.Fprintln(w, "--- Compatible airlines ---")
		regions := make([]string, 0, len(resp.Report.RegionBreakdown))
		for region := range resp.Report.RegionBreakdown {
			regions = append(regions, region)
		}
		sort.Strings(regions)

		for _, region := range regions {
			fmt.Fprintf(w, "%s:\n", region)
			for _, r := range resp.Report.RegionBreakdown[region] {
				fmt.Fprintf(w, "  %-4s %-30s %-13s %-11s %s\n",
					r.ICAO, airlineName(r, lang), r.RouteType, r.SeatCondition, formatRestrictions(r.Restrictions))
			}
		}
	}
	fmt.Fprintln(w)

	a := resp.Report.RestrictionAnalysis
	fmt.Fprintln(w, "--- Incompatible rules ---")
	fmt.Fprintf(w, "Total:           %d\n", len(resp.Results.Incompatible))
	fmt.Fprintf(w, "Dimensions:      %d\n", a.DimensionIssues)
	fmt.Fprintf(w, "Total length:    %d\n", a.LengthIssues)
	fmt.Fprintf(w, "Weight:          %d\n", a.WeightIssues)

	if len(resp.Similar) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "--- Similar suitcases ---")
		for _, c := range resp.Similar {
			fmt.Fprintf(w, "  %-30s %s x %s x %s cm\n",
				suitcaseName(c, lang), formatFloat(c.Width), formatFloat(c.Height), formatFloat(c.Depth))
		}
	}

	return w.Flush()
}

func writeCatalogText(out io.Writer, rankings []model.CatalogRanking, lang string) error {
	w := bufio.NewWriter(out)

	fmt.Fprintln(w, "=== Suitcase Catalogue ===")
	if len(rankings) == 0 {
		fmt.Fprintln(w, "No catalogue suitcases loaded.")
	}
	for i, r := range rankings {
		c := r.Suitcase
		fmt.Fprintf(w, "%3d. %-30s %s x %s x %s cm  %d/%d (%.1f%%)\n",
			i+1, suitcaseName(c, lang),
			formatFloat(c.Width), formatFloat(c.Height), formatFloat(c.Depth),
			r.Compatible, r.Total, r.CompatibilityRate)
	}

	return w.Flush()
}

func airlineName(r model.EvaluationResult, lang string) string {
	if lang == "ja" && r.NameJa != "" {
		return r.NameJa
	}
	return r.NameEn
}

func suitcaseName(c model.CatalogSuitcase, lang string) string {
	if lang == "ja" && c.NameJa != "" {
		return c.NameJa
	}
	return c.NameEn
}

func formatRestrictions(r model.Restrictions) string {
	s := formatLimit(&r.Width) + "x" + formatLimit(&r.Height) + "x" + formatLimit(&r.Depth) + " cm"
	if r.Length != nil {
		s += ", total " + formatLimit(r.Length) + " cm"
	}
	if r.Weight != nil {
		s += ", " + formatLimit(r.Weight) + " kg"
	}
	return s
}

func formatLimit(l *model.Limit) string {
	if l == nil {
		return compat.NotApplicable
	}
	if !l.Valid() {
		return "?"
	}
	return formatFloat(float64(*l))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
