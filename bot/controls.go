package bot

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const selectAction = "select"

var (
	errUnknownControl = errors.New("unknown or expired control")
	errNotOwner       = errors.New("control belongs to another user")
)

// ControlFunc handles a click on a live control. id is the control's own key.
type ControlFunc func(ctx context.Context, x *exchange, id uuid.UUID, action string, values []string) error

type control struct {
	owner   string
	command string
	oneShot bool
	handle  ControlFunc
	expires time.Time
}

// Controls keeps the interactive components of sent messages. Each entry
// belongs to the user who caused it and lapses after an idle timeout.
type Controls struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[uuid.UUID]*control
}

// NewControls returns an empty registry whose entries lapse after ttl without use.
func NewControls(ttl time.Duration) *Controls {
	return &Controls{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[uuid.UUID]*control),
	}
}

// Add registers a control sent in reply to command. One-shot controls are
// removed on their first accepted click.
func (c *Controls) Add(owner, command string, oneShot bool, handle ControlFunc) uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prune()

	id := uuid.New()
	c.entries[id] = &control{
		owner:   owner,
		command: command,
		oneShot: oneShot,
		handle:  handle,
		expires: c.now().Add(c.ttl),
	}
	return id
}

// Claim resolves a click by user. Accepted clicks extend the idle timeout.
func (c *Controls) Claim(id uuid.UUID, user string) (ControlFunc, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prune()

	entry, ok := c.entries[id]
	if !ok {
		return nil, errUnknownControl
	}
	if entry.owner != user {
		return nil, errNotOwner
	}

	if entry.oneShot {
		delete(c.entries, id)
	} else {
		entry.expires = c.now().Add(c.ttl)
	}

	return entry.handle, nil
}

// Command is the command a live control was sent for, or "" when id is unknown.
func (c *Controls) Command(id uuid.UUID) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[id]; ok {
		return entry.command
	}
	return ""
}

// Remove drops a control.
func (c *Controls) Remove(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, id)
}

// Len is the number of live controls.
func (c *Controls) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prune()
	return len(c.entries)
}

func (c *Controls) prune() {
	now := c.now()
	for id, entry := range c.entries {
		if !now.Before(entry.expires) {
			delete(c.entries, id)
		}
	}
}

func customID(id uuid.UUID, action string) string {
	return id.String() + ":" + action
}

func parseCustomID(s string) (id uuid.UUID, action string, ok bool) {
	raw, action, found := strings.Cut(s, ":")
	if !found {
		return uuid.Nil, "", false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, "", false
	}

	return id, action, true
}
