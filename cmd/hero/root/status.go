package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/engine"
	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show profile, progress and avatar",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			u := svc.UserProfile()
			next := engine.XPForNextLevel(u.Level)

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, u.Username))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", u.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("%d / %d", u.XP, next)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Coins", fmt.Sprintf("%s %d", ui.IconCoin, u.Coins)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Completed", u.CompletedTasks))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d day(s)", ui.IconFire, u.StreakDays)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconBadge+" Badges"))
			if len(u.Rewards) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(none yet — complete a task!)"))
			}
			for _, r := range u.Rewards {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", r.Name, ui.Muted.Render(r.Description))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconAvatar+" Avatar (equipped)"))
			for _, item := range u.Avatar.Items {
				if !item.Equipped {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s: %s\n", item.Type, item.Name)
			}
			return nil
		},
	}

	return cmd
}
