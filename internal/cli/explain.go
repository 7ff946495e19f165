package cli

import (
	"github.com/spf13/cobra"

	"github.com/noah-isme/mentor-match-api/internal/matching"
)

// Explanation is the score breakdown for a single pair.
type Explanation struct {
	StudentID string   `json:"studentId"`
	MentorID  string   `json:"mentorId"`
	Name      string   `json:"name"`
	Score     float64  `json:"score"`
	Reasons   []string `json:"reasons"`
}

func newExplainCommand(root *rootOptions) *cobra.Command {
	var studentID, mentorID string
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show why a mentor scores the way it does for a student",
		Long: `Score one mentor against one student and list the reasons.

Examples:
  matchctl explain --student s-1 --mentor m-2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := LoadCatalog(root.catalogPath)
			if err != nil {
				return err
			}
			explanation, err := explain(catalog, studentID, mentorID)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), root.outputFmt, explanation)
		},
	}
	cmd.Flags().StringVar(&studentID, "student", "", "student id (required)")
	cmd.Flags().StringVar(&mentorID, "mentor", "", "mentor id (required)")
	_ = cmd.MarkFlagRequired("student")
	_ = cmd.MarkFlagRequired("mentor")
	return cmd
}

func explain(catalog *Catalog, studentID, mentorID string) (*Explanation, error) {
	student, err := catalog.Student(studentID)
	if err != nil {
		return nil, err
	}
	mentor, err := catalog.Mentor(mentorID)
	if err != nil {
		return nil, err
	}
	result := matching.Score(student.Profile(), mentor.Record())
	return &Explanation{
		StudentID: student.ID,
		MentorID:  mentor.ID,
		Name:      mentor.Name,
		Score:     result.Score,
		Reasons:   result.Reasons,
	}, nil
}
