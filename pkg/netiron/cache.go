package netiron

import "time"

// sendFunc issues one command on the session with a wait budget.
type sendFunc func(command string, wait time.Duration) (string, error)

// commandCache memoizes raw command outputs for one device session.
// Several reconcilers read the same underlying outputs (interface
// table, VLAN table, LAG config, MPLS config); the cache guarantees
// they all observe one consistent snapshot instead of racing fetches
// that could see device state shift mid-query.
//
// Entries never expire. Callers that need fresh data use fetch, which
// re-issues the command and replaces the stored text. No lock is held:
// command issuance on a session is strictly sequential, so the cache
// is only ever touched by one reconciler at a time.
type commandCache struct {
	send    sendFunc
	wait    time.Duration
	entries map[string]string
}

func newCommandCache(send sendFunc, wait time.Duration) *commandCache {
	return &commandCache{
		send:    send,
		wait:    wait,
		entries: make(map[string]string),
	}
}

// getOrFetch returns the stored output for command, fetching and
// storing it on first use.
func (c *commandCache) getOrFetch(command string) (string, error) {
	if out, ok := c.entries[command]; ok {
		return out, nil
	}
	return c.fetch(command)
}

// fetch bypasses the cache, issues the command, and stores the result.
func (c *commandCache) fetch(command string) (string, error) {
	out, err := c.send(command, c.wait)
	if err != nil {
		return "", err
	}
	c.entries[command] = out
	return out, nil
}
