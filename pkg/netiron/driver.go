// Package netiron adapts the free-text CLI of Brocade/Foundry NetIron
// routers (MLX, CER) into a normalized, vendor-neutral data model:
// interfaces, VLANs, BGP peers and routes, ARP/neighbor tables,
// environment sensors, and counters.
//
// The device renders the same information inconsistently across
// commands, so the package is organized around three engines: a
// declarative template table that extracts flat records from raw
// output (templates.go, extract.go), a name normalizer that
// canonicalizes the device's interface spellings (names.go), and
// per-domain reconcilers that merge several command outputs into one
// coherent entity map (interfaces.go, vlans.go, bgp.go, ...).
//
// All command traffic for one device flows through a single sequential
// session; expensive outputs are fetched once per session and shared
// by every reconciler (cache.go).
package netiron

import (
	"strings"
	"time"

	"github.com/netadapt/netiron/pkg/util"
)

// Family selects the device family; a few outputs (MAC table) differ
// between chassis generations.
type Family string

const (
	FamilyMLX Family = "MLX"
	FamilyCER Family = "CER"
)

// Command keys shared by multiple reconcilers. These are also the
// cache keys, so two reconcilers naming the same key observe the same
// snapshot.
const (
	cmdShowInterface      = "show interface"
	cmdShowInterfaceBrief = "show int brief wide"
	cmdShowVLAN           = "show vlan"
	cmdShowLAGConfig      = "show running-config lag"
	cmdShowMPLSConfig     = "show mpls config"
	cmdShowMPLSInterface  = "show mpls interface brief"
)

// Options tune a driver session. The zero value is usable.
type Options struct {
	Port            int           // SSH port, default 22
	Timeout         time.Duration // connect + default command budget, default 60s
	ShowCommandWait time.Duration // budget for known-slow show commands, default 3×Timeout
	Family          Family        // default MLX
	Recorder        Recorder      // optional session capture sink
}

func (o *Options) fillDefaults() {
	if o.Port == 0 {
		o.Port = 22
	}
	if o.Timeout == 0 {
		o.Timeout = 60 * time.Second
	}
	if o.ShowCommandWait == 0 {
		o.ShowCommandWait = 3 * o.Timeout
	}
	if o.Family == "" {
		o.Family = FamilyMLX
	}
}

// Driver is one device session. It is not safe for concurrent use:
// the underlying channel is a single request/response stream, and the
// session caches (raw outputs, interface map) rely on sequential
// access.
type Driver struct {
	Hostname string

	username string
	password string
	opts     Options

	ch    Channel
	cache *commandCache

	// ifMap maps "slot/port" to the full Ethernet interface name,
	// built once per session from the interface listing.
	ifMap map[string]string

	mergeCandidate string
}

// New creates a driver for a device. No connection is made until Open.
func New(hostname, username, password string, opts *Options) *Driver {
	var o Options
	if opts != nil {
		o = *opts
	}
	o.fillDefaults()
	return &Driver{
		Hostname: hostname,
		username: username,
		password: password,
		opts:     o,
	}
}

// Open connects to the device over SSH.
func (d *Driver) Open() error {
	ch, err := dialSSH(d.Hostname, d.opts.Port, d.username, d.password, d.opts.Timeout)
	if err != nil {
		return err
	}
	d.attach(ch)
	util.WithDevice(d.Hostname).Info("session opened")
	return nil
}

// OpenWith attaches an existing channel instead of dialing, e.g. a
// ReplayChannel over a recorded capture.
func (d *Driver) OpenWith(ch Channel) {
	d.attach(ch)
}

func (d *Driver) attach(ch Channel) {
	d.ch = ch
	d.cache = newCommandCache(d.send, d.opts.ShowCommandWait)
	d.ifMap = nil
}

// Close tears down the session.
func (d *Driver) Close() error {
	if d.ch == nil {
		return nil
	}
	err := d.ch.Close()
	d.ch = nil
	d.cache = nil
	return err
}

// IsAlive reports whether the session has a usable channel.
func (d *Driver) IsAlive() bool {
	return d.ch != nil
}

// send issues one command with the given wait budget, recording the
// conversation when a capture sink is attached.
func (d *Driver) send(command string, wait time.Duration) (string, error) {
	if d.ch == nil {
		return "", util.ErrNotConnected
	}
	out, err := d.ch.SendTimed(command, wait)
	if err != nil {
		return "", err
	}
	if d.opts.Recorder != nil {
		d.opts.Recorder.Record(command, out)
	}
	return out, nil
}

func (d *Driver) sendDefault(command string) (string, error) {
	return d.send(command, d.opts.Timeout)
}

// CLI executes arbitrary commands and returns their raw output keyed
// by command. A command the device rejects fails the whole call.
func (d *Driver) CLI(commands []string) (map[string]string, error) {
	result := make(map[string]string, len(commands))
	for _, command := range commands {
		out, err := d.sendDefault(command)
		if err != nil {
			return nil, err
		}
		if strings.Contains(out, "Invalid input") {
			return nil, util.NewCommandError(command, "invalid input")
		}
		result[command] = out
	}
	return result, nil
}
