package bot

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Access holds the allowed and admin user sets. An empty allowed set leaves
// the bot open to everyone. Admins are always allowed. It is mutated only
// from the update loop, so it carries no lock.
type Access struct {
	allowed map[int64]bool
	admins  map[int64]bool
}

// NewAccess builds the access sets from id lists.
func NewAccess(allowed, admins []int64) *Access {
	a := &Access{
		allowed: make(map[int64]bool),
		admins:  make(map[int64]bool),
	}
	for _, id := range allowed {
		a.allowed[id] = true
	}
	for _, id := range admins {
		a.admins[id] = true
	}
	return a
}

// Open reports whether the bot accepts messages from anyone.
func (a *Access) Open() bool {
	return len(a.allowed) == 0
}

// Allowed reports whether the user may talk to the bot.
func (a *Access) Allowed(id int64) bool {
	if a.Open() {
		return true
	}
	return a.allowed[id] || a.admins[id]
}

// Admin reports whether the user may run admin commands.
func (a *Access) Admin(id int64) bool {
	return a.admins[id]
}

// Add puts the user on the allowed list. It reports whether the user was
// newly added.
func (a *Access) Add(id int64) bool {
	if a.allowed[id] {
		return false
	}
	a.allowed[id] = true
	return true
}

// Remove takes the user off the allowed list. It reports whether the user
// was on it.
func (a *Access) Remove(id int64) bool {
	if !a.allowed[id] {
		return false
	}
	delete(a.allowed, id)
	return true
}

// List returns the allowed user ids in ascending order.
func (a *Access) List() []int64 {
	ids := make([]int64, 0, len(a.allowed))
	for id := range a.allowed {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Counts returns the allowed and admin set sizes.
func (a *Access) Counts() (allowed, admins int) {
	return len(a.allowed), len(a.admins)
}

// ParseUserIDs parses a comma separated list of Telegram user ids. Invalid
// entries are logged and skipped.
func ParseUserIDs(s string) []int64 {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			log.Warn("Skipping invalid user id", "value", part)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
