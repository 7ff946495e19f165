package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

func render(w io.Writer, format string, data interface{}) error {
	if format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	}
	switch v := data.(type) {
	case []RecommendationRow:
		return recommendationTable(w, v)
	case *Explanation:
		return explanationDetail(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func recommendationTable(w io.Writer, rows []RecommendationRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No mentors matched.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tMENTOR\tNAME\tLOCATION\tSCORE\tREASONS")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			row.Rank, row.MentorID, row.Name, row.Location, formatScore(row.Score), strings.Join(row.Reasons, "; "))
	}
	return tw.Flush()
}

func explanationDetail(w io.Writer, e *Explanation) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Student:\t%s\n", e.StudentID)
	fmt.Fprintf(tw, "Mentor:\t%s (%s)\n", e.MentorID, e.Name)
	fmt.Fprintf(tw, "Score:\t%s\n", formatScore(e.Score))
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(e.Reasons) == 0 {
		_, err := fmt.Fprintln(w, "No matching criteria.")
		return err
	}
	fmt.Fprintln(w, "Reasons:")
	for _, reason := range e.Reasons {
		fmt.Fprintf(w, "  - %s\n", reason)
	}
	return nil
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}
