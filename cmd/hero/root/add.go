package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/engine"
	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/ui"
)

func newAddCmd() *cobra.Command {
	var desc string
	var diff string
	var due string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			difficulty, err := engine.ParseDifficulty(diff)
			if err != nil {
				return err
			}
			deadline, err := parseDeadline(due)
			if err != nil {
				return err
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := svc.CreateTask(ctx, engine.CreateTaskInput{
				Title:       args[0],
				Description: desc,
				Difficulty:  difficulty,
				Deadline:    deadline,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"),
				t.Title,
				ui.DifficultyText(t.Difficulty),
				ui.Muted.Render("due "+t.Deadline.Format("2006-01-02")))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+t.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&desc, "desc", "D", "", "Task description")
	cmd.Flags().StringVarP(&diff, "diff", "d", "easy", "Difficulty (easy|medium|hard|expert)")
	cmd.Flags().StringVar(&due, "due", "", "Deadline as YYYY-MM-DD (default: tomorrow)")

	return cmd
}

func parseDeadline(due string) (time.Time, error) {
	if due == "" {
		return time.Now().AddDate(0, 0, 1), nil
	}
	t, err := time.Parse("2006-01-02", due)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --due (want YYYY-MM-DD): %w", err)
	}
	return t, nil
}
