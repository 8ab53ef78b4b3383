package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashutosh-gunjal-001/gamified-daily-task-manager/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "hero",
	Short:         "Gamified daily task manager",
	Long:          "TaskHero is a local-first task tracker with RPG progression: tasks pay XP and coins, coins unlock avatar items, and challenges pay bonus rewards.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoneCmd(),
		newRmCmd(),
		newListCmd(),
		newSuggestCmd(),
		newStatusCmd(),
		newShopCmd(),
		newChallengesCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
