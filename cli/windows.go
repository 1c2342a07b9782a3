package cli

import (
	"fmt"

	"github.com/desktop-next/desktopcli/commands"
	"github.com/spf13/cobra"
)

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List application windows",
	Long:  `List visible application windows. System chrome (taskbars, docks, menu bars) is hidden unless --show-system is given; minimized windows are hidden unless --include-minimized is given.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.WindowsCommand(commands.WindowsRequest{
			IncludeMinimized: includeMinimized,
			FilterSystem:     !showSystem,
		})
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(windowsCmd)

	// windows command flags
	windowsCmd.Flags().BoolVar(&includeMinimized, "include-minimized", false, "include minimized windows")
	windowsCmd.Flags().BoolVar(&showSystem, "show-system", false, "include system/chrome windows")
}
