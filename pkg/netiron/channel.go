package netiron

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/netadapt/netiron/pkg/util"
)

// Channel is the command channel the driver consumes: a single
// request/response text stream with no multiplexing. Implementations
// must be used strictly sequentially; the driver never has two
// commands in flight on one channel.
type Channel interface {
	// Send issues a command and returns the raw text response.
	Send(command string) (string, error)
	// SendTimed issues a command with an explicit maximum-wait budget
	// for known-slow commands.
	SendTimed(command string, wait time.Duration) (string, error)
	Close() error
}

// promptRe matches the device prompt at the end of accumulated output:
// "SSH@hostname#" or "hostname>".
var promptRe = regexp.MustCompile(`(?m)^[^\r\n]{0,64}[#>]\s*$`)

// sshChannel drives an interactive shell over SSH. The device CLI is
// prompt-driven, so each command is written to the PTY and output is
// read until the prompt reappears.
type sshChannel struct {
	host    string
	client  *ssh.Client
	session *ssh.Session
	stdin   io.WriteCloser
	out     chan []byte
	timeout time.Duration
	pending bytes.Buffer
}

// dialSSH opens the interactive session and disables paging so that
// multi-screen command output arrives in one read.
func dialSSH(host string, port int, user, pass string, timeout time.Duration) (Channel, error) {
	config := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.Password(pass),
		},
		// Device host keys rotate with supervisor swaps; verification
		// is handled at the bastion layer.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         timeout,
	}

	client, err := ssh.Dial("tcp", fmt.Sprintf("%s:%d", host, port), config)
	if err != nil {
		return nil, util.NewConnectionError(host, err)
	}

	session, err := client.NewSession()
	if err != nil {
		client.Close()
		return nil, util.NewConnectionError(host, err)
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:          0,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	if err := session.RequestPty("vt100", 200, 512, modes); err != nil {
		session.Close()
		client.Close()
		return nil, util.NewConnectionError(host, err)
	}

	stdin, err := session.StdinPipe()
	if err != nil {
		session.Close()
		client.Close()
		return nil, util.NewConnectionError(host, err)
	}
	stdout, err := session.StdoutPipe()
	if err != nil {
		session.Close()
		client.Close()
		return nil, util.NewConnectionError(host, err)
	}

	if err := session.Shell(); err != nil {
		session.Close()
		client.Close()
		return nil, util.NewConnectionError(host, err)
	}

	ch := &sshChannel{
		host:    host,
		client:  client,
		session: session,
		stdin:   stdin,
		out:     make(chan []byte, 16),
		timeout: timeout,
	}

	go func() {
		buf := make([]byte, 65536)
		for {
			n, err := stdout.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				ch.out <- chunk
			}
			if err != nil {
				close(ch.out)
				return
			}
		}
	}()

	// Swallow the login banner up to the first prompt, then turn off
	// paging for the rest of the session.
	if _, err := ch.readUntilPrompt(timeout); err != nil {
		ch.Close()
		return nil, err
	}
	if _, err := ch.Send("skip-page-display"); err != nil {
		ch.Close()
		return nil, err
	}

	return ch, nil
}

func (c *sshChannel) Send(command string) (string, error) {
	return c.SendTimed(command, c.timeout)
}

func (c *sshChannel) SendTimed(command string, wait time.Duration) (string, error) {
	if _, err := c.stdin.Write([]byte(command + "\n")); err != nil {
		return "", util.NewConnectionError(c.host, err)
	}
	raw, err := c.readUntilPrompt(wait)
	if err != nil {
		return "", err
	}
	return cleanOutput(command, raw), nil
}

func (c *sshChannel) Close() error {
	if c.session != nil {
		c.session.Close()
	}
	return c.client.Close()
}

// readUntilPrompt accumulates output until the device prompt appears
// or the wait budget is exhausted.
func (c *sshChannel) readUntilPrompt(wait time.Duration) (string, error) {
	deadline := time.NewTimer(wait)
	defer deadline.Stop()

	for {
		if promptRe.MatchString(c.pending.String()) {
			out := c.pending.String()
			c.pending.Reset()
			return out, nil
		}
		select {
		case chunk, ok := <-c.out:
			if !ok {
				return "", util.NewConnectionError(c.host, fmt.Errorf("channel closed: %w", util.ErrConnectionClosed))
			}
			c.pending.Write(chunk)
		case <-deadline.C:
			return "", util.NewConnectionError(c.host, fmt.Errorf("no prompt within %s", wait))
		}
	}
}

// cleanOutput strips the echoed command and the trailing prompt line
// from a raw response.
func cleanOutput(command, raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(raw, "\n")
	if len(lines) > 0 && strings.Contains(lines[0], command) {
		lines = lines[1:]
	}
	if n := len(lines); n > 0 && promptRe.MatchString(lines[n-1]) {
		lines = lines[:n-1]
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
