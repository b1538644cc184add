package netiron

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/pin/tftp/v3"

	"github.com/netadapt/netiron/pkg/util"
)

// ErrNoMergeCandidate reports a commit without a loaded candidate.
var ErrNoMergeCandidate = errors.New("no merge candidate loaded")

// The filename the device is told to copy. The TFTP handler only
// serves this name, so a stray client on the open port gets nothing.
const mergeCandidateFile = "merge_candidate"

// LoadMergeCandidate stages configuration to be merged into the
// running config, from a file or a literal string, never both. The
// device has no candidate datastore; the candidate lives in the
// session until committed or discarded.
func (d *Driver) LoadMergeCandidate(filename, config string) error {
	if filename != "" && config != "" {
		return fmt.Errorf("both filename and config given: %w", util.ErrInvalidInput)
	}
	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return err
		}
		d.mergeCandidate = string(data)
		return nil
	}
	if config == "" {
		return fmt.Errorf("empty candidate: %w", util.ErrInvalidInput)
	}
	d.mergeCandidate = config
	return nil
}

// LoadReplaceCandidate is unsupported: the platform cannot atomically
// replace a running config.
func (d *Driver) LoadReplaceCandidate(string, string) error {
	return fmt.Errorf("config replacement: %w", util.ErrUnsupported)
}

// CompareConfig is unsupported: without a candidate datastore the
// device has nothing to diff against.
func (d *Driver) CompareConfig() (string, error) {
	return "", fmt.Errorf("config compare: %w", util.ErrUnsupported)
}

// CommitConfig pushes the merge candidate into the running config.
// The device can only pull config over TFTP, so a short-lived TFTP
// server is run for the duration of the copy, serving exactly the
// candidate, and the device is told to fetch from our own address.
func (d *Driver) CommitConfig() error {
	if d.mergeCandidate == "" {
		return ErrNoMergeCandidate
	}
	if d.ch == nil {
		return util.ErrNotConnected
	}

	localIP, err := d.localAddress()
	if err != nil {
		return err
	}

	server := tftp.NewServer(d.serveCandidate, nil)
	server.SetTimeout(5 * time.Second)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe(":69")
	}()
	defer server.Shutdown()

	command := fmt.Sprintf("copy tftp running-config %s %s", localIP, mergeCandidateFile)
	out, err := d.send(command, d.opts.ShowCommandWait)
	if err != nil {
		return err
	}
	select {
	case err := <-serveErr:
		return fmt.Errorf("tftp server: %w", err)
	default:
	}
	if strings.Contains(out, "Error") || strings.Contains(out, "failed") {
		return util.NewCommandError(command, out)
	}
	util.WithDevice(d.Hostname).Info("merge candidate committed")
	return nil
}

func (d *Driver) serveCandidate(filename string, rf io.ReaderFrom) error {
	if filename != mergeCandidateFile {
		return fmt.Errorf("unknown file %q", filename)
	}
	_, err := rf.ReadFrom(strings.NewReader(d.mergeCandidate))
	return err
}

// DiscardConfig drops the staged candidate.
func (d *Driver) DiscardConfig() {
	d.mergeCandidate = ""
}

// GetConfig retrieves the requested datastores: "startup", "running",
// or "all". The candidate slot always reflects the staged merge
// candidate, which only exists session-side.
func (d *Driver) GetConfig(retrieve string) (map[string]string, error) {
	configs := map[string]string{
		"startup":   "",
		"running":   "",
		"candidate": d.mergeCandidate,
	}

	if retrieve == "startup" || retrieve == "all" {
		out, err := d.send("show configuration", d.opts.ShowCommandWait)
		if err != nil {
			return nil, err
		}
		configs["startup"] = out
	}
	if retrieve == "running" || retrieve == "all" {
		out, err := d.send("show running-config", d.opts.ShowCommandWait)
		if err != nil {
			return nil, err
		}
		configs["running"] = out
	}
	return configs, nil
}

// localAddress finds the local IP the device can reach us on, by
// routing a throwaway datagram toward the device itself.
func (d *Driver) localAddress() (string, error) {
	conn, err := net.Dial("udp", net.JoinHostPort(d.Hostname, "69"))
	if err != nil {
		return "", util.NewConnectionError(d.Hostname, err)
	}
	defer conn.Close()
	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "", util.NewConnectionError(d.Hostname, errors.New("no local udp address"))
	}
	return addr.IP.String(), nil
}
