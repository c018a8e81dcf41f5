package registry

import (
	"strings"

	ranks "github.com/frizzlenpop/FrizzlenRanks"
)

// CreateTrack registers a new empty track. Unlike users and groups,
// tracks are administrative objects and must be created explicitly.
func (r *Registry) CreateTrack(name string) (*ranks.Track, error) {
	lowered := strings.ToLower(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tracks[lowered]; ok {
		return nil, ranks.ErrTrackAlreadyExists
	}
	track := ranks.NewTrack(lowered)
	r.tracks[lowered] = track
	return track, nil
}

func (r *Registry) Track(name string) (*ranks.Track, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	track, ok := r.tracks[strings.ToLower(name)]
	if !ok {
		return nil, ranks.ErrTrackNotFound
	}
	return track, nil
}

func (r *Registry) RemoveTrack(name string) error {
	lowered := strings.ToLower(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tracks[lowered]; !ok {
		return ranks.ErrTrackNotFound
	}
	delete(r.tracks, lowered)
	return nil
}

// Tracks returns all tracks in unspecified order.
func (r *Registry) Tracks() []*ranks.Track {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tracks := make([]*ranks.Track, 0, len(r.tracks))
	for _, track := range r.tracks {
		tracks = append(tracks, track)
	}
	return tracks
}

func (r *Registry) trackSnapshot() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string][]string, len(r.tracks))
	for name, track := range r.tracks {
		snapshot[name] = track.Groups()
	}
	return snapshot
}
