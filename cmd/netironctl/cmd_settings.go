package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsClearCmd)
	rootCmd.AddCommand(settingsCmd)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return emitJSON(userSettings)
		}
		fmt.Printf("default device: %s\n", userSettings.DefaultDevice)
		fmt.Printf("inventory:      %s\n", userSettings.GetInventoryPath())
		fmt.Printf("capture addr:   %s\n", captureRedisAddr())
		fmt.Printf("capture db:     %d\n", userSettings.CaptureDB)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting (device, inventory, capture-addr)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "device":
			userSettings.DefaultDevice = args[1]
		case "inventory":
			userSettings.InventoryPath = args[1]
		case "capture-addr":
			userSettings.CaptureAddr = args[1]
		default:
			return fmt.Errorf("unknown setting %q", args[0])
		}
		return userSettings.Save()
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		userSettings.Clear()
		return userSettings.Save()
	},
}
