package cli

import (
	"fmt"

	"github.com/desktop-next/desktopcli/commands"
	"github.com/spf13/cobra"
)

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List connected monitors",
	Long:  `List all connected monitors in enumeration order. The first monitor is reported as primary.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.MonitorsCommand()
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(monitorsCmd)
}
