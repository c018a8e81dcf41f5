package ranks

import (
	"strings"
	"sync"
)

// World is one authorization scope: a namespace of users and groups,
// both keyed by lowercase name, plus the permission resolution engine
// over them. A few world names are special to the surrounding system
// ("global", per-instance names); the World itself treats all names
// uniformly.
type World struct {
	name string

	mu     sync.RWMutex
	users  map[string]*User
	groups map[string]*Group
}

func NewWorld(name string) *World {
	return &World{
		name:   strings.ToLower(name),
		users:  make(map[string]*User),
		groups: make(map[string]*Group),
	}
}

func (w *World) Name() string {
	return w.name
}

// User returns the named user, creating it if it does not exist.
// Absence of a user is a normal condition in an administrative tool, so
// lookups never fail.
func (w *World) User(name string) *User {
	lowered := strings.ToLower(name)

	w.mu.Lock()
	defer w.mu.Unlock()

	user, ok := w.users[lowered]
	if !ok {
		user = NewUser(lowered)
		w.users[lowered] = user
	}
	return user
}

func (w *World) HasUser(name string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	_, ok := w.users[strings.ToLower(name)]
	return ok
}

// Users returns all users in the world in unspecified order.
func (w *World) Users() []*User {
	w.mu.RLock()
	defer w.mu.RUnlock()

	users := make([]*User, 0, len(w.users))
	for _, user := range w.users {
		users = append(users, user)
	}
	return users
}

func (w *World) RemoveUser(name string) bool {
	lowered := strings.ToLower(name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.users[lowered]; !ok {
		return false
	}
	delete(w.users, lowered)
	return true
}

// Group returns the named group, creating it if it does not exist.
func (w *World) Group(name string) *Group {
	lowered := strings.ToLower(name)

	w.mu.Lock()
	defer w.mu.Unlock()

	group, ok := w.groups[lowered]
	if !ok {
		group = NewGroup(lowered)
		w.groups[lowered] = group
	}
	return group
}

func (w *World) HasGroup(name string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	_, ok := w.groups[strings.ToLower(name)]
	return ok
}

// Groups returns all groups in the world in unspecified order.
func (w *World) Groups() []*Group {
	w.mu.RLock()
	defer w.mu.RUnlock()

	groups := make([]*Group, 0, len(w.groups))
	for _, group := range w.groups {
		groups = append(groups, group)
	}
	return groups
}

func (w *World) RemoveGroup(name string) bool {
	lowered := strings.ToLower(name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.groups[lowered]; !ok {
		return false
	}
	delete(w.groups, lowered)
	return true
}

// ClearGroups drops every group in the world. Used when reloading
// groups from storage.
func (w *World) ClearGroups() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.groups = make(map[string]*Group)
}

// HasPermission resolves whether the named user holds the permission in
// this world:
//
//  1. An unknown user resolves false; users are never created here.
//  2. A direct effective grant of the permission resolves true.
//  3. A direct effective grant of the negated token ("-" + permission)
//     resolves false, before any group is consulted.
//  4. The user's effective groups are walked in membership insertion
//     order. The first group whose inheritance graph settles the
//     permission wins: true for a grant, false for a negation. Within
//     one graph, each visited group's own negation is consulted before
//     its grant and before its parents, so a negation at a closer
//     level shadows a grant inherited from further up.
//  5. Otherwise false.
//
// Group resolution is a depth-first search over the inheritance graph
// with a per-call visited map, so arbitrarily deep inheritance and any
// cycle, self-referential or longer, terminates.
func (w *World) HasPermission(userName, permission string) bool {
	lowered := strings.ToLower(userName)
	token := strings.ToLower(permission)
	negated := "-" + token

	w.mu.RLock()
	user, ok := w.users[lowered]
	w.mu.RUnlock()
	if !ok {
		return false
	}

	if user.HasPermission(token) {
		return true
	}
	if user.HasPermission(negated) {
		return false
	}

	for _, groupName := range user.Groups() {
		if granted, settled := w.resolveGroup(strings.ToLower(groupName), token, negated, make(map[string]bool)); settled {
			return granted
		}
	}

	return false
}

// GroupHasPermission resolves whether the named group holds the token,
// directly or through inheritance, with the group's own negation
// shadowing an inherited grant. A group that does not exist resolves
// false without error.
func (w *World) GroupHasPermission(groupName, token string) bool {
	lowered := strings.ToLower(token)
	granted, _ := w.resolveGroup(strings.ToLower(groupName), lowered, "-"+lowered, make(map[string]bool))
	return granted
}

// resolveGroup settles a token for one group's inheritance graph. Each
// visited group's negation is consulted before its grant, and both
// before its parents, so a verdict at a closer level wins. A group
// already on the current path is skipped, which bounds the search on
// any cycle.
func (w *World) resolveGroup(groupName, token, negated string, visited map[string]bool) (granted, settled bool) {
	if visited[groupName] {
		return false, false
	}
	visited[groupName] = true

	w.mu.RLock()
	group, ok := w.groups[groupName]
	w.mu.RUnlock()
	if !ok {
		return false, false
	}

	if group.HasPermission(negated) {
		return false, true
	}
	if group.HasPermission(token) {
		return true, true
	}

	for _, parent := range group.Inheritance() {
		if granted, settled := w.resolveGroup(parent, token, negated, visited); settled {
			return granted, true
		}
	}

	return false, false
}
