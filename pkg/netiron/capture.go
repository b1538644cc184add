package netiron

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/netadapt/netiron/pkg/util"
)

// Recorder receives every (command, raw output) pair issued on a
// session. Recording failures are logged, never surfaced: capture is
// diagnostic, not load-bearing.
type Recorder interface {
	Record(command, output string)
}

const captureKeyPrefix = "netiron|capture|"

// RedisRecorder archives a session's command conversation into a Redis
// hash keyed by session name, one field per command. Archived sessions
// can be replayed offline through ReplayChannel, pushing the recorded
// text back through the same parsing pipeline.
type RedisRecorder struct {
	client  *redis.Client
	key     string
	timeout time.Duration
}

// NewRedisRecorder connects to Redis and binds the recorder to a
// session name. An existing capture under the same name is replaced.
func NewRedisRecorder(addr string, db int, session string) (*RedisRecorder, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	r := &RedisRecorder{
		client:  client,
		key:     captureKeyPrefix + session,
		timeout: 5 * time.Second,
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if err := client.Del(ctx, r.key).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("resetting capture %s: %w", session, err)
	}
	return r, nil
}

// Record stores one command/output pair.
func (r *RedisRecorder) Record(command, output string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if err := r.client.HSet(ctx, r.key, command, output).Err(); err != nil {
		util.Warnf("capture: recording %q failed: %v", command, err)
	}
}

// Close releases the Redis connection.
func (r *RedisRecorder) Close() error {
	return r.client.Close()
}

// LoadCapture fetches a previously recorded session as a command ->
// output map, suitable for NewReplayChannel.
func LoadCapture(addr string, db int, session string) (map[string]string, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	outputs, err := client.HGetAll(ctx, captureKeyPrefix+session).Result()
	if err != nil {
		return nil, fmt.Errorf("loading capture %s: %w", session, err)
	}
	if len(outputs) == 0 {
		return nil, fmt.Errorf("capture %s: %w", session, util.ErrLookupFailed)
	}
	return outputs, nil
}

// ReplayChannel satisfies Channel from a recorded command -> output
// map. Commands absent from the capture fail the same way a broken
// transport would, so replayed sessions exercise the error paths too.
type ReplayChannel struct {
	Outputs map[string]string
}

// NewReplayChannel wraps a capture map in a Channel.
func NewReplayChannel(outputs map[string]string) *ReplayChannel {
	return &ReplayChannel{Outputs: outputs}
}

func (c *ReplayChannel) Send(command string) (string, error) {
	out, ok := c.Outputs[command]
	if !ok {
		return "", util.NewConnectionError("replay", fmt.Errorf("command %q not in capture", command))
	}
	return out, nil
}

func (c *ReplayChannel) SendTimed(command string, _ time.Duration) (string, error) {
	return c.Send(command)
}

func (c *ReplayChannel) Close() error { return nil }
