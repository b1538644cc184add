package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netadapt/netiron/pkg/cli"
	"github.com/netadapt/netiron/pkg/netiron"
)

func init() {
	rootCmd.AddCommand(
		factsCmd, interfacesCmd, vlansCmd, interfaceVlansCmd, arpCmd,
		ndCmd, macCmd, environmentCmd, countersCmd, lldpCmd,
		instancesCmd, staticRoutesCmd, usersCmd, ntpCmd, snmpCmd,
	)
}

func emitJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var factsCmd = &cobra.Command{
	Use:   "facts",
	Short: "Show device identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		facts, err := d.GetFacts()
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(facts)
		}
		fmt.Printf("Device: %s\n", cli.Bold(facts.Hostname))
		fmt.Printf("Vendor: %s\n", facts.Vendor)
		fmt.Printf("Model: %s\n", facts.Model)
		fmt.Printf("Serial: %s\n", facts.SerialNumber)
		fmt.Printf("OS Version: %s\n", facts.OSVersion)
		fmt.Printf("Uptime: %.0fs\n", facts.UptimeSeconds)
		fmt.Printf("Interfaces: %d\n", len(facts.Interfaces))
		return nil
	},
}

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "Show the interface table",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		ifaces, err := d.GetInterfaces()
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(ifaces)
		}

		names := make([]string, 0, len(ifaces))
		for name := range ifaces {
			names = append(names, name)
		}
		sort.Strings(names)

		t := cli.NewTable("INTERFACE", "LINK", "SPEED", "MTU", "MPLS", "DESCRIPTION")
		for _, name := range names {
			iface := ifaces[name]
			link := string(iface.Link)
			switch iface.Link {
			case netiron.LinkUp:
				link = cli.Green(link)
			case netiron.LinkDown:
				link = cli.Red(link)
			}
			mpls := ""
			if iface.MPLSEnabled {
				mpls = "yes"
			}
			t.Row(name, link, iface.SpeedRaw, strconv.Itoa(iface.MTU), mpls, iface.Description)
		}
		t.Flush()
		return nil
	},
}

var vlansCmd = &cobra.Command{
	Use:   "vlans",
	Short: "Show VLANs and their membership",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		vlans, err := d.GetVLANs()
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(vlans)
		}

		t := cli.NewTable("VLAN", "NAME", "INTERFACES")
		for _, id := range netiron.VLANIDs(vlans) {
			vlan := vlans[id]
			t.Row(strconv.Itoa(vlan.ID), vlan.Name, strings.Join(vlan.Interfaces, " "))
		}
		t.Flush()
		return nil
	},
}

var interfaceVlansCmd = &cobra.Command{
	Use:   "interface-vlans",
	Short: "Show per-interface VLAN membership",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		membership, err := d.GetInterfacesVLANs()
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(membership)
		}

		names := make([]string, 0, len(membership))
		for name := range membership {
			names = append(names, name)
		}
		sort.Strings(names)

		t := cli.NewTable("INTERFACE", "MODE", "ACCESS", "NATIVE", "TRUNK VLANS")
		for _, name := range names {
			m := membership[name]
			trunk := make([]string, len(m.TrunkVLANs))
			for i, id := range m.TrunkVLANs {
				trunk[i] = strconv.Itoa(id)
			}
			t.Row(name, m.Mode, vlanCell(m.AccessVLAN), vlanCell(m.NativeVLAN),
				strings.Join(trunk, " "))
		}
		t.Flush()
		return nil
	},
}

// vlanCell renders an optional VLAN id, -1 meaning unset.
func vlanCell(id int) string {
	if id < 0 {
		return "-"
	}
	return strconv.Itoa(id)
}

var arpCmd = &cobra.Command{
	Use:   "arp [vrf]",
	Short: "Show the ARP table",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		vrf := ""
		if len(args) == 1 {
			vrf = args[0]
		}
		table, err := d.GetARPTable(vrf)
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(table)
		}

		t := cli.NewTable("IP", "MAC", "AGE", "INTERFACE")
		for _, e := range table {
			t.Row(e.IP, e.MAC, fmt.Sprintf("%.0f", e.Age), e.Interface)
		}
		t.Flush()
		return nil
	},
}

var ndCmd = &cobra.Command{
	Use:   "nd",
	Short: "Show the IPv6 neighbor table",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		table, err := d.GetIPv6NeighborsTable()
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(table)
		}

		t := cli.NewTable("IP", "MAC", "STATE", "AGE", "INTERFACE")
		for _, e := range table {
			t.Row(e.IP, e.MAC, e.State, fmt.Sprintf("%.0f", e.Age), e.Interface)
		}
		t.Flush()
		return nil
	},
}

var macCmd = &cobra.Command{
	Use:   "mac",
	Short: "Show the MAC address table",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		table, err := d.GetMACAddressTable()
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(table)
		}

		t := cli.NewTable("MAC", "INTERFACE", "VLAN", "TYPE")
		for _, e := range table {
			typ := "dynamic"
			if e.Static {
				typ = "static"
			}
			t.Row(e.MAC, e.Interface, strconv.Itoa(e.VLAN), typ)
		}
		t.Flush()
		return nil
	},
}

var environmentCmd = &cobra.Command{
	Use:     "environment",
	Aliases: []string{"env"},
	Short:   "Show chassis health",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		env, err := d.GetEnvironment()
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(env)
		}

		fmt.Printf("CPU: %d%%\n", env.CPUUsagePct)
		fmt.Printf("Memory: %d / %d bytes used\n", env.Memory.Used, env.Memory.Available)

		t := cli.NewTable("SENSOR", "TEMP", "STATE")
		for name, sensor := range env.Temperature {
			state := cli.Green("ok")
			if sensor.IsCritical {
				state = cli.Red("critical")
			} else if sensor.IsAlert {
				state = cli.Yellow("alert")
			}
			t.Row(name, fmt.Sprintf("%.1fC", sensor.Celsius), state)
		}
		t.Flush()

		t = cli.NewTable("FAN", "STATUS", "SPEED")
		for name, fan := range env.Fans {
			status := cli.Green("ok")
			if !fan.OK {
				status = cli.Red("failed")
			}
			t.Row(name, status, fan.Speed)
		}
		t.Flush()

		t = cli.NewTable("PSU", "STATUS", "CAPACITY")
		for name, psu := range env.Power {
			status := cli.Green("ok")
			if !psu.OK {
				status = cli.Red("failed")
			}
			t.Row(name, status, psu.Capacity)
		}
		t.Flush()
		return nil
	},
}

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Show interface traffic counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		counters, err := d.GetInterfacesCounters()
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(counters)
		}

		names := make([]string, 0, len(counters))
		for name := range counters {
			names = append(names, name)
		}
		sort.Strings(names)

		t := cli.NewTable("INTERFACE", "RX-OCTETS", "TX-OCTETS", "RX-ERR", "TX-ERR")
		for _, name := range names {
			c := counters[name]
			t.Row(name,
				strconv.FormatUint(c.RxOctets, 10),
				strconv.FormatUint(c.TxOctets, 10),
				strconv.FormatUint(c.RxErrors, 10),
				strconv.FormatUint(c.TxErrors, 10))
		}
		t.Flush()
		return nil
	},
}

var lldpCmd = &cobra.Command{
	Use:   "lldp",
	Short: "Show LLDP neighbors",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		neighbors, err := d.GetLLDPNeighbors()
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(neighbors)
		}

		t := cli.NewTable("LOCAL PORT", "REMOTE SYSTEM", "REMOTE PORT")
		for local, remotes := range neighbors {
			for _, r := range remotes {
				t.Row(local, r.Hostname, r.Port)
			}
		}
		t.Flush()
		return nil
	},
}

var instancesCmd = &cobra.Command{
	Use:   "instances [name]",
	Short: "Show network instances (VRFs)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		instances, err := d.GetNetworkInstances(name)
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(instances)
		}

		t := cli.NewTable("NAME", "TYPE", "RD", "INTERFACES")
		for _, inst := range instances {
			t.Row(inst.Name, inst.Type, inst.RouteDistinguisher, strings.Join(inst.Interfaces, " "))
		}
		t.Flush()
		return nil
	},
}

var staticRoutesCmd = &cobra.Command{
	Use:   "static-routes",
	Short: "Show configured static routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		routes, err := d.GetStaticRoutes()
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(routes)
		}

		t := cli.NewTable("PREFIX", "NEXT HOP", "VRF")
		for _, r := range routes {
			t.Row(r.Prefix, r.NextHop, r.VRF)
		}
		t.Flush()
		return nil
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Show local accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		users, err := d.GetUsers()
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(users)
		}

		t := cli.NewTable("USERNAME", "LEVEL")
		for name, u := range users {
			t.Row(name, strconv.Itoa(u.Level))
		}
		t.Flush()
		return nil
	},
}

var ntpCmd = &cobra.Command{
	Use:   "ntp",
	Short: "Show NTP associations",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		stats, err := d.GetNTPStats()
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(stats)
		}

		t := cli.NewTable("REMOTE", "REF ID", "ST", "SYNC", "DELAY", "OFFSET", "JITTER")
		for _, s := range stats {
			sync := ""
			if s.Synchronized {
				sync = cli.Green("*")
			}
			t.Row(s.Remote, s.ReferenceID, strconv.Itoa(s.Stratum), sync,
				fmt.Sprintf("%.3f", s.Delay), fmt.Sprintf("%.3f", s.Offset), fmt.Sprintf("%.3f", s.Jitter))
		}
		t.Flush()
		return nil
	},
}

var snmpCmd = &cobra.Command{
	Use:   "snmp",
	Short: "Show SNMP configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDriver()
		if err != nil {
			return err
		}
		defer d.Close()

		info, err := d.GetSNMPInformation()
		if err != nil {
			return err
		}
		if jsonOutput {
			return emitJSON(info)
		}

		fmt.Printf("Chassis ID: %s\n", info.ChassisID)
		fmt.Printf("Contact: %s\n", info.Contact)
		fmt.Printf("Location: %s\n", info.Location)

		t := cli.NewTable("COMMUNITY", "MODE", "ACL")
		for name, c := range info.Communities {
			t.Row(name, c.Mode, c.ACL)
		}
		t.Flush()
		return nil
	},
}
