package ranks

import (
	"strings"
	"sync"
	"time"
)

// User is a principal: a GrantSet of permissions, a GrantSet of group
// memberships and arbitrary string metadata. Names, permission tokens
// and group names are normalized to lowercase at write time.
type User struct {
	name string

	permissions *GrantSet
	groups      *GrantSet

	mu   sync.Mutex
	meta map[string]string
}

func NewUser(name string) *User {
	return &User{
		name:        strings.ToLower(name),
		permissions: NewGrantSet(),
		groups:      NewGrantSet(),
		meta:        make(map[string]string),
	}
}

func (u *User) Name() string {
	return u.name
}

func (u *User) AddPermission(permission string) {
	u.permissions.AddPermanent(strings.ToLower(permission))
}

func (u *User) AddTemporaryPermission(permission string, expiresAt time.Time) {
	u.permissions.AddTemporary(strings.ToLower(permission), expiresAt)
}

func (u *User) RemovePermission(permission string) {
	u.permissions.Remove(strings.ToLower(permission))
}

func (u *User) RemoveTemporaryPermission(permission string) {
	u.permissions.RemoveTemporary(strings.ToLower(permission))
}

// HasPermission reports whether the user directly holds the permission,
// permanently or through a live temporary grant. Group inheritance is
// the World's concern, not the User's.
func (u *User) HasPermission(permission string) bool {
	return u.permissions.Contains(strings.ToLower(permission))
}

// Permissions returns the effective permissions: permanent plus live
// temporary, in insertion order.
func (u *User) Permissions() []string {
	return u.permissions.Effective()
}

func (u *User) PermanentPermissions() []string {
	return u.permissions.Permanent()
}

func (u *User) TemporaryPermissions() map[string]time.Time {
	return u.permissions.Temporary()
}

// ClearPermissions removes all permissions, permanent and temporary.
func (u *User) ClearPermissions() {
	u.permissions.Clear()
}

func (u *User) AddGroup(group string) {
	u.groups.AddPermanent(strings.ToLower(group))
}

func (u *User) AddTemporaryGroup(group string, expiresAt time.Time) {
	u.groups.AddTemporary(strings.ToLower(group), expiresAt)
}

func (u *User) RemoveGroup(group string) {
	u.groups.Remove(strings.ToLower(group))
}

func (u *User) RemoveTemporaryGroup(group string) {
	u.groups.RemoveTemporary(strings.ToLower(group))
}

func (u *User) InGroup(group string) bool {
	return u.groups.Contains(strings.ToLower(group))
}

// Groups returns the effective group memberships in insertion order.
func (u *User) Groups() []string {
	return u.groups.Effective()
}

func (u *User) PermanentGroups() []string {
	return u.groups.Permanent()
}

func (u *User) TemporaryGroups() map[string]time.Time {
	return u.groups.Temporary()
}

// SetGroups replaces all group memberships, temporary included, with
// the given groups as permanent memberships.
func (u *User) SetGroups(groups []string) {
	u.groups.Clear()
	for _, group := range groups {
		u.groups.AddPermanent(strings.ToLower(group))
	}
}

// ClearGroups removes all group memberships, permanent and temporary.
// A user with no groups is unranked; assigning a default group is the
// caller's policy.
func (u *User) ClearGroups() {
	u.groups.Clear()
}

// Unranked reports whether the user has no effective group membership.
func (u *User) Unranked() bool {
	return u.groups.IsEmpty()
}

// ExpireGrants removes every temporary permission and group whose
// expiry is at or before now, returning the removed tokens.
func (u *User) ExpireGrants(now time.Time) (permissions, groups []string) {
	return u.permissions.RemoveExpired(now), u.groups.RemoveExpired(now)
}

// Meta returns the metadata value for key, or "" if unset.
func (u *User) Meta(key string) string {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.meta[key]
}

// SetMeta sets a metadata value. An empty value deletes the key.
func (u *User) SetMeta(key, value string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if value == "" {
		delete(u.meta, key)
		return
	}
	u.meta[key] = value
}

func (u *User) ClearMeta() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.meta = make(map[string]string)
}

// MetaMap returns a copy of the user's metadata.
func (u *User) MetaMap() map[string]string {
	u.mu.Lock()
	defer u.mu.Unlock()

	meta := make(map[string]string, len(u.meta))
	for k, v := range u.meta {
		meta[k] = v
	}
	return meta
}
