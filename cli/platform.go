package cli

import (
	"github.com/desktop-next/desktopcli/commands"
	"github.com/spf13/cobra"
)

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Print the capture platform",
	Long:  `Prints the platform identifier used for capture backend and blocklist selection: macos, windows, linux or unknown.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printJson(commands.PlatformCommand())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(platformCmd)
}
