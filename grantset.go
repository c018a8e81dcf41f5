package ranks

import (
	"sync"
	"time"
)

// GrantSet holds the grants of a single owner: a permanent set plus a
// map of temporary grants with expiry timestamps. The same structure
// backs both a user's permissions and a user's group memberships.
//
// A token lives in at most one of the two layers at any time, and the
// permanent layer always wins: adding a temporary grant for a token
// that is already permanent is a no-op, and promoting a token to
// permanent drops any temporary entry for it.
//
// Expired temporary grants are semantically absent the moment they
// expire. Every accessor that reads the temporary layer purges expired
// entries first, so stale grants never leak out between sweeps.
type GrantSet struct {
	mu sync.Mutex

	permanent *stringSet
	expiry    map[string]time.Time
	tempOrder []string
}

func NewGrantSet() *GrantSet {
	return &GrantSet{
		permanent: newStringSet(),
		expiry:    make(map[string]time.Time),
	}
}

// AddPermanent inserts a permanent grant. Idempotent. Any temporary
// entry for the same token is dropped.
func (g *GrantSet) AddPermanent(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.removeTemporary(token)
	g.permanent.add(token)
}

// AddTemporary inserts a temporary grant expiring at expiresAt. If the
// token is already permanent this is a no-op.
func (g *GrantSet) AddTemporary(token string, expiresAt time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.purgeExpired(time.Now())

	if g.permanent.contains(token) {
		return
	}

	if _, ok := g.expiry[token]; !ok {
		g.tempOrder = append(g.tempOrder, token)
	}
	g.expiry[token] = expiresAt
}

// Remove removes the token from both layers.
func (g *GrantSet) Remove(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.permanent.remove(token)
	g.removeTemporary(token)
}

// RemoveTemporary removes only the temporary entry, leaving a permanent
// grant of the same token untouched.
func (g *GrantSet) RemoveTemporary(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.removeTemporary(token)
}

// Contains reports whether the token is permanent or has a live
// temporary entry.
func (g *GrantSet) Contains(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.purgeExpired(time.Now())

	if g.permanent.contains(token) {
		return true
	}
	_, ok := g.expiry[token]
	return ok
}

// Effective returns the permanent grants followed by the live temporary
// grants, in insertion order.
func (g *GrantSet) Effective() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.purgeExpired(time.Now())

	effective := g.permanent.values()
	effective = append(effective, g.tempOrder...)
	return effective
}

// Permanent returns the permanent grants in insertion order.
func (g *GrantSet) Permanent() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.permanent.values()
}

// Temporary returns the live temporary grants and their expiry times.
func (g *GrantSet) Temporary() map[string]time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.purgeExpired(time.Now())

	temporary := make(map[string]time.Time, len(g.expiry))
	for token, expiresAt := range g.expiry {
		temporary[token] = expiresAt
	}
	return temporary
}

// RemoveExpired removes every temporary grant whose expiry is at or
// before now and returns the removed tokens. The sweeper calls this
// with its own clock; racing a lazy purge is harmless since both paths
// delete the same entries.
func (g *GrantSet) RemoveExpired(now time.Time) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var removed []string
	for _, token := range g.tempOrder {
		if !g.expiry[token].After(now) {
			removed = append(removed, token)
		}
	}
	for _, token := range removed {
		g.removeTemporary(token)
	}
	return removed
}

// Clear resets both layers.
func (g *GrantSet) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.permanent.clear()
	g.expiry = make(map[string]time.Time)
	g.tempOrder = nil
}

// IsEmpty reports whether the set holds no grants at all, expired
// temporaries excluded.
func (g *GrantSet) IsEmpty() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.purgeExpired(time.Now())

	return g.permanent.len() == 0 && len(g.expiry) == 0
}

func (g *GrantSet) purgeExpired(now time.Time) {
	for i := 0; i < len(g.tempOrder); {
		token := g.tempOrder[i]
		if !g.expiry[token].After(now) {
			delete(g.expiry, token)
			g.tempOrder = append(g.tempOrder[:i], g.tempOrder[i+1:]...)
			continue
		}
		i++
	}
}

func (g *GrantSet) removeTemporary(token string) {
	if _, ok := g.expiry[token]; !ok {
		return
	}

	delete(g.expiry, token)
	for i, t := range g.tempOrder {
		if t == token {
			g.tempOrder = append(g.tempOrder[:i], g.tempOrder[i+1:]...)
			break
		}
	}
}
