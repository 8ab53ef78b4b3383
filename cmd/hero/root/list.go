package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/state"
	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/ui"
)

func newListCmd() *cobra.Command {
	var showDone bool
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var tasks []state.Task
			if search != "" {
				tasks = svc.SearchTasks(search)
			} else {
				tasks = svc.Tasks()
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTask, "Tasks"))
			shown := 0
			for _, t := range tasks {
				if t.Completed && !showDone {
					continue
				}
				shown++
				fmt.Fprintf(cmd.OutOrStdout(), "- [%s] %s %s %s\n",
					ui.DoneText(t.Completed),
					t.Title,
					ui.DifficultyText(t.Difficulty),
					ui.Muted.Render(fmt.Sprintf("due %s · %s", t.Deadline.Format("2006-01-02"), t.ID)))
			}
			if shown == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(nothing to show)"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showDone, "all", "a", false, "Include completed tasks")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Fuzzy-search task titles")

	return cmd
}
