package ranks

import (
	"strings"
	"sync"
)

// Group is a named collection of permanent permissions with optional
// inheritance from parent groups. Group names and permission tokens are
// normalized to lowercase at write time.
type Group struct {
	name string

	mu          sync.Mutex
	permissions *stringSet
	inheritance *stringSet
	priority    int
	meta        map[string]string
}

func NewGroup(name string) *Group {
	return &Group{
		name:        strings.ToLower(name),
		permissions: newStringSet(),
		inheritance: newStringSet(),
		meta:        make(map[string]string),
	}
}

func (g *Group) Name() string {
	return g.name
}

func (g *Group) AddPermission(permission string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.permissions.add(strings.ToLower(permission))
}

func (g *Group) RemovePermission(permission string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.permissions.remove(strings.ToLower(permission))
}

func (g *Group) HasPermission(permission string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.permissions.contains(strings.ToLower(permission))
}

// Permissions returns the group's own permissions in insertion order,
// inherited permissions excluded.
func (g *Group) Permissions() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.permissions.values()
}

// AddInheritance records parent as a group to inherit from. A group
// never inherits from itself; such an edit is silently ignored. Longer
// cycles are allowed and handled by the resolver.
func (g *Group) AddInheritance(parent string) {
	lowered := strings.ToLower(parent)
	if lowered == g.name {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.inheritance.add(lowered)
}

func (g *Group) RemoveInheritance(parent string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.inheritance.remove(strings.ToLower(parent))
}

func (g *Group) Inherits(parent string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.inheritance.contains(strings.ToLower(parent))
}

// Inheritance returns the parent group names in insertion order.
func (g *Group) Inheritance() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.inheritance.values()
}

// Priority orders groups for presentation purposes (primary group,
// prefix selection). It never affects whether a permission resolves.
func (g *Group) Priority() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.priority
}

func (g *Group) SetPriority(priority int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.priority = priority
}

// Meta returns the metadata value for key, or "" if unset.
func (g *Group) Meta(key string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.meta[key]
}

// SetMeta sets a metadata value. An empty value deletes the key.
func (g *Group) SetMeta(key, value string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if value == "" {
		delete(g.meta, key)
		return
	}
	g.meta[key] = value
}

// MetaMap returns a copy of the group's metadata.
func (g *Group) MetaMap() map[string]string {
	g.mu.Lock()
	defer g.mu.Unlock()

	meta := make(map[string]string, len(g.meta))
	for k, v := range g.meta {
		meta[k] = v
	}
	return meta
}
