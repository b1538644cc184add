package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/netadapt/netiron/pkg/cli"
	"github.com/netadapt/netiron/pkg/netiron"
)

var probeOpts netiron.ProbeOptions

func init() {
	for _, cmd := range []*cobra.Command{pingCmd, tracerouteCmd} {
		cmd.Flags().StringVar(&probeOpts.Source, "source", "", "Source IP address")
		cmd.Flags().StringVar(&probeOpts.VRF, "vrf", "", "VRF to probe in")
		cmd.Flags().IntVar(&probeOpts.TTL, "ttl", 0, "Max hops")
		cmd.Flags().IntVar(&probeOpts.Timeout, "timeout", 0, "Probe timeout")
	}
	pingCmd.Flags().IntVar(&probeOpts.Count, "count", 0, "Probe count")
	pingCmd.Flags().IntVar(&probeOpts.Size, "size", 0, "Payload size in bytes")
	rootCmd.AddCommand(pingCmd, tracerouteCmd)
}

var pingCmd = &cobra.Command{
	Use:   "ping <destination>",
	Short: "Ping from the device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		result, err := d.Ping(args[0], &probeOpts)
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(result)
		}

		received := result.ProbesSent - result.PacketLoss
		fmt.Printf("%d probes sent, %d received, %d lost\n",
			result.ProbesSent, received, result.PacketLoss)
		if received > 0 {
			fmt.Printf("rtt min/avg/max = %.0f/%.0f/%.0f ms\n",
				result.RTTMin, result.RTTAvg, result.RTTMax)
		}
		return nil
	},
}

var tracerouteCmd = &cobra.Command{
	Use:   "traceroute <destination>",
	Short: "Trace the path from the device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		result, err := d.Traceroute(args[0], &probeOpts)
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(result)
		}

		hopNums := make([]int, 0, len(result.Hops))
		for n := range result.Hops {
			hopNums = append(hopNums, n)
		}
		sort.Ints(hopNums)

		t := cli.NewTable("HOP", "HOST", "IP", "RTT1", "RTT2", "RTT3")
		for _, n := range hopNums {
			hop := result.Hops[n]
			t.Row(fmt.Sprintf("%d", n), hop.HostName, hop.IPAddress,
				hop.RTTs[0], hop.RTTs[1], hop.RTTs[2])
		}
		t.Flush()
		return nil
	},
}
