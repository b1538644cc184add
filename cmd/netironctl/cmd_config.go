package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netadapt/netiron/pkg/cli"
)

var (
	mergeFile   string
	mergeInline string
)

func init() {
	configMergeCmd.Flags().StringVarP(&mergeFile, "file", "f", "", "Candidate config file")
	configMergeCmd.Flags().StringVar(&mergeInline, "config", "", "Candidate config as a literal string")
	configCmd.AddCommand(configGetCmd, configMergeCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Device configuration",
}

var configGetCmd = &cobra.Command{
	Use:   "get [startup|running|all]",
	Short: "Retrieve device configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		retrieve := "all"
		if len(args) == 1 {
			retrieve = args[0]
		}
		configs, err := d.GetConfig(retrieve)
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(configs)
		}
		for _, store := range []string{"startup", "running", "candidate"} {
			if configs[store] == "" {
				continue
			}
			fmt.Println(cli.Bold("! " + store))
			fmt.Println(configs[store])
		}
		return nil
	},
}

var configMergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge a candidate config into the running config",
	Long: `Stage a candidate from --file or --config and commit it.
The device pulls the candidate over TFTP from this host, so the device
must be able to reach us on UDP port 69.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.LoadMergeCandidate(mergeFile, mergeInline); err != nil {
			return err
		}
		if err := d.CommitConfig(); err != nil {
			d.DiscardConfig()
			return err
		}
		fmt.Println(cli.Green("merged"))
		return nil
	},
}
