package ranks

import (
	"strings"
	"sync"
)

// Track is an ordered ladder of group names used for promotion and
// demotion. The track itself only answers neighbor queries; which
// groups a user ends up in is the caller's policy (see TrackType).
type Track struct {
	name string

	mu     sync.Mutex
	groups []string
}

func NewTrack(name string) *Track {
	return &Track{
		name: strings.ToLower(name),
	}
}

func (t *Track) Name() string {
	return t.name
}

// Groups returns the track's groups lowest to highest.
func (t *Track) Groups() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	groups := make([]string, len(t.groups))
	copy(groups, t.groups)
	return groups
}

// AddGroup appends a group to the top of the track. Duplicates are not
// rejected here; keeping a track free of them is the caller's job.
func (t *Track) AddGroup(group string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.groups = append(t.groups, strings.ToLower(group))
}

// InsertGroup inserts a group at the given position. An index at or
// past the end appends.
func (t *Track) InsertGroup(index int, group string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	lowered := strings.ToLower(group)
	if index < 0 {
		index = 0
	}
	if index >= len(t.groups) {
		t.groups = append(t.groups, lowered)
		return
	}

	t.groups = append(t.groups, "")
	copy(t.groups[index+1:], t.groups[index:])
	t.groups[index] = lowered
}

// RemoveGroup removes the first occurrence of group from the track.
func (t *Track) RemoveGroup(group string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	lowered := strings.ToLower(group)
	for i, g := range t.groups {
		if g == lowered {
			t.groups = append(t.groups[:i], t.groups[i+1:]...)
			return true
		}
	}
	return false
}

func (t *Track) ContainsGroup(group string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.indexOf(group) != -1
}

// NextGroup returns the group above current, or false if current is not
// on the track or is already the highest group.
func (t *Track) NextGroup(current string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(current)
	if i == -1 || i == len(t.groups)-1 {
		return "", false
	}
	return t.groups[i+1], true
}

// PreviousGroup returns the group below current, or false if current is
// not on the track or is already the lowest group.
func (t *Track) PreviousGroup(current string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(current)
	if i <= 0 {
		return "", false
	}
	return t.groups[i-1], true
}

// IsHighestGroup reports whether group is the last group on the track.
// Empty tracks report false for any input.
func (t *Track) IsHighestGroup(group string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.groups) == 0 {
		return false
	}
	return strings.ToLower(group) == t.groups[len(t.groups)-1]
}

// IsLowestGroup reports whether group is the first group on the track.
// Empty tracks report false for any input.
func (t *Track) IsLowestGroup(group string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.groups) == 0 {
		return false
	}
	return strings.ToLower(group) == t.groups[0]
}

func (t *Track) indexOf(group string) int {
	lowered := strings.ToLower(group)
	for i, g := range t.groups {
		if g == lowered {
			return i
		}
	}
	return -1
}

// TrackType selects how a promotion or demotion rewrites a user's group
// memberships.
type TrackType string

const (
	// TrackTypeSingle clears all of the user's groups and adds exactly
	// the target group.
	TrackTypeSingle TrackType = "single"

	// TrackTypeMulti adds the target group, leaving existing groups
	// intact.
	TrackTypeMulti TrackType = "multi"

	// TrackTypeReplace removes the matched on-track group, if any, and
	// adds the target group. Off-track groups are untouched.
	TrackTypeReplace TrackType = "replace"
)

// ParseTrackType maps a configuration string to a TrackType. Unknown
// values fall back to single.
func ParseTrackType(s string) TrackType {
	switch TrackType(strings.ToLower(s)) {
	case TrackTypeMulti:
		return TrackTypeMulti
	case TrackTypeReplace:
		return TrackTypeReplace
	default:
		return TrackTypeSingle
	}
}
