package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netadapt/netiron/pkg/cli"
)

func init() {
	bgpCmd.AddCommand(bgpNeighborsCmd, bgpDetailCmd)
	rootCmd.AddCommand(bgpCmd, routeCmd)
}

var bgpCmd = &cobra.Command{
	Use:   "bgp",
	Short: "BGP peer state",
}

var bgpNeighborsCmd = &cobra.Command{
	Use:   "neighbors",
	Short: "Show BGP peers across both address families",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		summary, err := d.GetBGPNeighbors()
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(summary)
		}

		fmt.Printf("Router ID: %s  Local AS: %d\n", summary.RouterID, summary.LocalAS)
		t := cli.NewTable("NEIGHBOR", "AS", "STATE", "UPTIME", "ACCEPTED", "FILTERED", "SENT")
		for _, addr := range summary.Order {
			peer := summary.Peers[addr]
			state := peer.State
			if peer.IsEstablished() {
				state = cli.Green(state)
			} else if !peer.IsEnabled() {
				state = cli.Dim(state)
			} else {
				state = cli.Red(state)
			}
			accepted, filtered, sent := "-", "-", "-"
			if peer.Counters != nil {
				accepted = strconv.Itoa(peer.Counters.Accepted)
				filtered = strconv.Itoa(peer.Counters.Filtered)
				sent = strconv.Itoa(peer.Counters.Sent)
			}
			t.Row(addr, strconv.Itoa(peer.RemoteAS), state, peer.Uptime, accepted, filtered, sent)
		}
		t.Flush()
		return nil
	},
}

var bgpDetailCmd = &cobra.Command{
	Use:   "detail [neighbor]",
	Short: "Show per-peer session detail grouped by VRF and AS",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		neighbor := ""
		if len(args) == 1 {
			neighbor = args[0]
		}
		groups, err := d.GetBGPNeighborsDetail(neighbor)
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(groups)
		}

		for vrf, byAS := range groups {
			fmt.Printf("%s\n", cli.Bold("VRF "+vrf))
			t := cli.NewTable("NEIGHBOR", "AS", "TYPE", "STATE", "UPTIME", "LOCAL", "REMOTE PORT").WithPrefix("  ")
			for as, peers := range byAS {
				for _, p := range peers {
					typ := "iBGP"
					if p.External {
						typ = "eBGP"
					}
					t.Row(p.RemoteAddress, strconv.Itoa(as), typ, p.State, p.Uptime,
						p.LocalAddress, strconv.Itoa(p.RemotePort))
				}
			}
			t.Flush()
		}
		return nil
	},
}

var routeCmd = &cobra.Command{
	Use:   "route <prefix>",
	Short: "Look up BGP routes for a prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		table, err := d.LookupBGPRoutes(args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(table)
		}

		t := cli.NewTable("#", "PREFIX", "NEXT HOP", "MED", "LOCPRF", "WEIGHT", "STATUS", "AS PATH")
		for _, r := range table.Routes {
			status := r.Status
			if r.Best {
				status = cli.Green(status)
			}
			t.Row(strconv.Itoa(r.Index), r.Prefix, r.NextHop,
				strconv.Itoa(r.MED), strconv.Itoa(r.LocalPref), strconv.Itoa(r.Weight),
				status, strings.Join(r.ASPath, " "))
		}
		t.Flush()
		return nil
	},
}
