// Netironctl - Brocade/Foundry NetIron CLI adapter
//
// A CLI tool for reading normalized state from NetIron routers:
//   - interfaces, VLANs, BGP peers and routes
//   - ARP/ND, MAC table, environment, counters
//   - config merge over TFTP
//   - session capture to Redis and offline replay
//
// Devices are selected by inventory name:
//
//	netironctl -d <device> <noun> [args]
//
// Examples:
//
//	netironctl -d edge1 interfaces
//	netironctl -d edge1 bgp neighbors
//	netironctl -d edge1 route 203.0.113.0/24
//	netironctl -d edge1 ping 203.0.113.1 --count 10
//	netironctl -d edge1 --capture pre-maintenance interfaces
//	netironctl --replay pre-maintenance interfaces
package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/netadapt/netiron/pkg/netiron"
	"github.com/netadapt/netiron/pkg/settings"
	"github.com/netadapt/netiron/pkg/util"
	"github.com/netadapt/netiron/pkg/version"
)

var (
	// Context flags
	deviceName string // -d, --device
	hostFlag   string // -H, --host (bypass inventory)
	userFlag   string // -u, --user
	familyFlag string

	// Option flags
	verbose     bool
	jsonOutput  bool
	captureName string
	replayName  string

	userSettings *settings.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "netironctl",
	Short:         "Brocade NetIron CLI adapter",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Netironctl reads normalized state from Brocade/Foundry NetIron routers.

Select a device from the inventory with -d, or dial directly with -H.

  netironctl -d <device> <noun> [args]`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}

		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}
		if deviceName == "" {
			deviceName = userSettings.DefaultDevice
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&deviceName, "device", "d", "", "Inventory device name")
	rootCmd.PersistentFlags().StringVarP(&hostFlag, "host", "H", "", "Device hostname (bypass inventory)")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "Login username")
	rootCmd.PersistentFlags().StringVar(&familyFlag, "family", "", "Device family: MLX or CER")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "JSON output")
	rootCmd.PersistentFlags().StringVar(&captureName, "capture", "", "Record the session to Redis under this name")
	rootCmd.PersistentFlags().StringVar(&replayName, "replay", "", "Replay a recorded session instead of dialing")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

// openDriver builds a session from the flags: a replay channel over a
// recorded capture, or a live SSH session from inventory or -H.
func openDriver() (*netiron.Driver, error) {
	if replayName != "" {
		outputs, err := netiron.LoadCapture(captureRedisAddr(), userSettings.CaptureDB, replayName)
		if err != nil {
			return nil, err
		}
		d := netiron.New("replay:"+replayName, "", "", nil)
		d.OpenWith(netiron.NewReplayChannel(outputs))
		return d, nil
	}

	host := hostFlag
	user := userFlag
	password := os.Getenv("NETIRON_PASSWORD")
	opts := netiron.Options{Family: netiron.Family(strings.ToUpper(familyFlag))}

	if host == "" {
		if deviceName == "" {
			return nil, fmt.Errorf("no device selected: use -d or -H")
		}
		inv, err := settings.LoadInventory(userSettings.GetInventoryPath())
		if err != nil {
			return nil, fmt.Errorf("loading inventory: %w", err)
		}
		entry, err := inv.Lookup(deviceName)
		if err != nil {
			return nil, err
		}
		host = entry.Hostname
		if user == "" {
			user = entry.Username
		}
		if password == "" {
			password = entry.Password
		}
		opts.Port = entry.Port
		if entry.TimeoutSeconds > 0 {
			opts.Timeout = time.Duration(entry.TimeoutSeconds) * time.Second
		}
		if opts.Family == "" {
			opts.Family = netiron.Family(strings.ToUpper(entry.Family))
		}
	}

	if password == "" {
		fmt.Fprintf(os.Stderr, "Password for %s@%s: ", user, host)
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, err
		}
		password = string(raw)
	}

	if captureName != "" {
		recorder, err := netiron.NewRedisRecorder(captureRedisAddr(), userSettings.CaptureDB, captureName)
		if err != nil {
			return nil, fmt.Errorf("starting capture: %w", err)
		}
		opts.Recorder = recorder
	}

	d := netiron.New(host, user, password, &opts)
	if err := d.Open(); err != nil {
		return nil, err
	}
	return d, nil
}

func captureRedisAddr() string {
	if userSettings.CaptureAddr != "" {
		return userSettings.CaptureAddr
	}
	return "localhost:6379"
}
