package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteTask(ctx, args[0])
			if err != nil {
				return err
			}
			if res.AlreadyCompleted {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Already done — nothing awarded."))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s +%d XP, +%d coins\n",
				ui.Good.Render(ui.IconDone+" Completed!"), res.XPAwarded, res.CoinsAwarded)
			if res.FirstTask {
				fmt.Fprintf(cmd.OutOrStdout(), "%s First Task badge earned (+50 XP, +10 coins)\n", ui.Gold.Render(ui.IconBadge))
			}
			for _, title := range res.ChallengesCompleted {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Challenge complete: %s\n", ui.Gold.Render(ui.IconTrophy), title)
			}
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s Level %d → %d\n",
					ui.IconSparkle, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			return nil
		},
	}

	return cmd
}
