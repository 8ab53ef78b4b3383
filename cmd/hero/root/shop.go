package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/engine"
	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse, unlock and equip avatar items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			u := svc.UserProfile()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconAvatar, "Avatar Shop"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Coins", fmt.Sprintf("%s %d", ui.IconCoin, u.Coins)))
			fmt.Fprintln(cmd.OutOrStdout(), "")
			for _, item := range u.Avatar.Items {
				equipped := ""
				if item.Equipped {
					equipped = " " + ui.Gold.Render("(equipped)")
				}
				cost := item.UnlockLevel * engine.UnlockCostPerLevel
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s [%s] %s %s%s\n",
					item.ID,
					item.Name,
					item.Type,
					ui.LockText(item.Unlocked),
					ui.Muted.Render(fmt.Sprintf("lvl %d · %d coins", item.UnlockLevel, cost)),
					equipped)
			}
			return nil
		},
	}

	cmd.AddCommand(newShopUnlockCmd(), newShopEquipCmd())
	return cmd
}

func newShopUnlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock <item_id>",
		Short: "Unlock an avatar item (costs coins, gated by level)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item_id is required")
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

			if svc.UnlockItem(ctx, args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconUnlock+" Unlocked "+args[0]))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconLock+" Not unlocked (unknown item, already owned, or level/coins too low)."))
			return nil
		},
	}
}

func newShopEquipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equip <item_id>",
		Short: "Equip an unlocked avatar item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item_id is required")
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

			if svc.EquipItem(ctx, args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSparkle+" Equipped "+args[0]))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Not equipped (unknown item or still locked)."))
			return nil
		},
	}
}
