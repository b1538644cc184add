package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/netadapt/netiron/pkg/cli"
)

func init() {
	rootCmd.AddCommand(runCmd, ipsCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <command>...",
	Short: "Run raw CLI commands on the device",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		outputs, err := d.CLI(args)
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(outputs)
		}
		for _, command := range args {
			fmt.Println(cli.Bold("! " + command))
			fmt.Println(outputs[command])
		}
		return nil
	},
}

var ipsCmd = &cobra.Command{
	Use:   "ips",
	Short: "Show interface IP addressing",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		interfaces, err := d.GetInterfacesIP()
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(interfaces)
		}

		names := make([]string, 0, len(interfaces))
		for name := range interfaces {
			names = append(names, name)
		}
		sort.Strings(names)

		t := cli.NewTable("INTERFACE", "ADDRESS", "VRF", "ACL")
		for _, name := range names {
			addrs := interfaces[name]
			for ip, length := range addrs.IPv4 {
				t.Row(name, ip+"/"+strconv.Itoa(length), addrs.VRF, addrs.ACL)
			}
			for ip, length := range addrs.IPv6 {
				t.Row(name, ip+"/"+strconv.Itoa(length), addrs.VRF, addrs.ACL)
			}
		}
		t.Flush()
		return nil
	},
}
