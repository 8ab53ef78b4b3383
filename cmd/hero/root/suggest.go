package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/ui"
)

func newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest tasks based on your completion history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBulb, "Suggestions"))
			for _, t := range svc.Suggestions() {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n",
					t.Title,
					ui.DifficultyText(t.Difficulty),
					ui.Muted.Render("due "+t.Deadline.Format("2006-01-02")))
				if t.Description != "" {
					fmt.Fprintln(cmd.OutOrStdout(), "  "+ui.Muted.Render(t.Description))
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Accept one with `hero add <title>`."))
			return nil
		},
	}

	return cmd
}
