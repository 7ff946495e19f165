package cli

import (
	"github.com/spf13/cobra"

	"github.com/noah-isme/mentor-match-api/internal/matching"
)

type recommendOptions struct {
	studentID string
	limit     int
	subjects  []string
	languages []string
	levels    []string
	location  string
	duration  string
}

// RecommendationRow is one ranked mentor in command output.
type RecommendationRow struct {
	Rank     int      `json:"rank"`
	MentorID string   `json:"mentorId"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Score    float64  `json:"score"`
	Reasons  []string `json:"reasons"`
}

func newRecommendCommand(root *rootOptions) *cobra.Command {
	opts := &recommendOptions{}
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank mentors for a student",
		Long: `Rank mentors for a student, best match first.

Examples:
  matchctl recommend --student s-1
  matchctl recommend --student s-1 --limit 3 --language English
  matchctl recommend --student s-1 --subject Physics,Chemistry -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := LoadCatalog(root.catalogPath)
			if err != nil {
				return err
			}
			rows, err := recommend(catalog, opts)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), root.outputFmt, rows)
		},
	}

	cmd.Flags().StringVar(&opts.studentID, "student", "", "student id (required)")
	cmd.Flags().IntVar(&opts.limit, "limit", 6, "maximum number of mentors")
	cmd.Flags().StringSliceVar(&opts.subjects, "subject", nil, "only mentors teaching any of these subjects")
	cmd.Flags().StringSliceVar(&opts.languages, "language", nil, "only mentors speaking any of these languages")
	cmd.Flags().StringSliceVar(&opts.levels, "level", nil, "only mentors teaching any of these student levels")
	cmd.Flags().StringVar(&opts.location, "location", "", "only mentors whose location contains this text")
	cmd.Flags().StringVar(&opts.duration, "duration", "", "only mentors offering this session duration")
	_ = cmd.MarkFlagRequired("student")
	return cmd
}

func recommend(catalog *Catalog, opts *recommendOptions) ([]RecommendationRow, error) {
	student, err := catalog.Student(opts.studentID)
	if err != nil {
		return nil, err
	}
	filter := matching.FilterOptions{
		SessionDuration: opts.duration,
		Subjects:        opts.subjects,
		Languages:       opts.languages,
		StudentLevels:   opts.levels,
		Location:        opts.location,
	}
	profile := student.Profile()
	mentors := matching.Recommend(profile, catalog.Records(), filter, opts.limit)

	rows := make([]RecommendationRow, len(mentors))
	for i, record := range mentors {
		mentor, _ := catalog.Mentor(record.ID)
		result := matching.Score(profile, record)
		rows[i] = RecommendationRow{
			Rank:     i + 1,
			MentorID: record.ID,
			Name:     mentor.Name,
			Location: mentor.Location,
			Score:    result.Score,
			Reasons:  result.Reasons,
		}
	}
	return rows, nil
}
