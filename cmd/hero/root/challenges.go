package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/ui"
)

func newChallengesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenges",
		Short: "Show challenges and their progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconFlag, "Challenges"))
			for _, c := range svc.Challenges() {
				status := ui.Warn.Render(fmt.Sprintf("%d/%d", c.CurrentCount, c.TargetCount))
				if c.Completed {
					status = ui.Good.Render("completed " + ui.IconTrophy)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n", c.Title, status,
					ui.Muted.Render(fmt.Sprintf("until %s · %s", c.Deadline.Format("2006-01-02"), c.ID)))
				fmt.Fprintln(cmd.OutOrStdout(), "  "+ui.Muted.Render(c.Description+" → "+c.Reward.Name))
			}
			return nil
		},
	}

	cmd.AddCommand(newChallengeJoinCmd(), newChallengeCompleteCmd())
	return cmd
}

func newChallengeJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <challenge_id>",
		Short: "Join a challenge",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("challenge_id is required")
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

			if err := svc.JoinChallenge(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Joined. Progress counts automatically as you complete tasks."))
			return nil
		},
	}
}

func newChallengeCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <challenge_id>",
		Short: "Request challenge completion",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("challenge_id is required")
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

			if err := svc.CompleteChallenge(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Noted. Challenges complete on their own when the target is reached."))
			return nil
		},
	}
}
