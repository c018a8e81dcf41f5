package registry

import (
	"context"
	"errors"

	"code.cloudfoundry.org/lager"

	ranks "github.com/frizzlenpop/FrizzlenRanks"
)

var (
	ErrEmptyTrack    = errors.New("track has no groups")
	ErrNotOnTrack    = errors.New("user holds no group on the track")
	ErrTopOfTrack    = errors.New("user is already at the top of the track")
	ErrBottomOfTrack = errors.New("user is already at the bottom of the track")
)

// Promote moves the user one group up the track and returns the group
// they landed in. A user holding no group on the track starts at the
// bottom. How existing memberships are rewritten is governed by the
// configured track type.
func (r *Registry) Promote(ctx context.Context, logger lager.Logger, worldName, userName, trackName string) (string, error) {
	logger = logger.Session("promote", lager.Data{
		"world": worldName,
		"user":  userName,
		"track": trackName,
	})

	track, err := r.Track(trackName)
	if err != nil {
		return "", err
	}
	groups := track.Groups()
	if len(groups) == 0 {
		return "", ErrEmptyTrack
	}

	world := r.World(worldName)
	user := world.User(userName)

	current := firstOnTrack(user, track)
	target := groups[0]
	if current != "" {
		next, ok := track.NextGroup(current)
		if !ok {
			return "", ErrTopOfTrack
		}
		target = next
	}

	r.applyTrackMove(user, current, target, false)
	r.UserEdited(ctx, logger, world.Name(), userName)
	logger.Debug(success, lager.Data{"group": target})
	return target, nil
}

// Demote moves the user one group down the track and returns the group
// they landed in. A user holding no group on the track cannot be
// demoted.
func (r *Registry) Demote(ctx context.Context, logger lager.Logger, worldName, userName, trackName string) (string, error) {
	logger = logger.Session("demote", lager.Data{
		"world": worldName,
		"user":  userName,
		"track": trackName,
	})

	track, err := r.Track(trackName)
	if err != nil {
		return "", err
	}
	if len(track.Groups()) == 0 {
		return "", ErrEmptyTrack
	}

	world := r.World(worldName)
	user := world.User(userName)

	current := firstOnTrack(user, track)
	if current == "" {
		return "", ErrNotOnTrack
	}
	target, ok := track.PreviousGroup(current)
	if !ok {
		return "", ErrBottomOfTrack
	}

	r.applyTrackMove(user, current, target, true)
	r.UserEdited(ctx, logger, world.Name(), userName)
	logger.Debug(success, lager.Data{"group": target})
	return target, nil
}

// applyTrackMove rewrites the user's memberships per the track type.
// single replaces everything with the target; multi accumulates on
// promotion but sheds the matched group on demotion; replace swaps the
// matched on-track group for the target and leaves the rest alone.
func (r *Registry) applyTrackMove(user *ranks.User, current, target string, demoting bool) {
	switch r.conf.PromotionPolicy() {
	case ranks.TrackTypeMulti:
		if demoting && current != "" {
			user.RemoveGroup(current)
		}
		user.AddGroup(target)
	case ranks.TrackTypeReplace:
		if current != "" {
			user.RemoveGroup(current)
		}
		user.AddGroup(target)
	default:
		user.SetGroups([]string{target})
	}
}

// firstOnTrack returns the user's first effective group that the track
// contains, or "".
func firstOnTrack(user *ranks.User, track *ranks.Track) string {
	for _, group := range user.Groups() {
		if track.ContainsGroup(group) {
			return group
		}
	}
	return ""
}
