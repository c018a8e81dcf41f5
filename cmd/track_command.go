package cmd

import (
	"context"
	"fmt"
	"strings"
)

type TrackCommand struct {
	Create TrackCreateCommand `command:"create" description:"Create a new track"`
	Delete TrackDeleteCommand `command:"delete" description:"Delete a track"`
	Add    TrackAddCommand    `command:"add" description:"Add a group to a track"`
	Remove TrackRemoveCommand `command:"remove" description:"Remove a group from a track"`
	List   TrackListCommand   `command:"list" description:"List tracks and their groups"`
}

type TrackCreateCommand struct {
	Engine EngineFlag

	Args struct {
		Track string `positional-arg-name:"TRACK"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd TrackCreateCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	if _, err := reg.CreateTrack(cmd.Args.Track); err != nil {
		return err
	}
	return reg.SaveAll(ctx, logger)
}

type TrackDeleteCommand struct {
	Engine EngineFlag

	Args struct {
		Track string `positional-arg-name:"TRACK"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd TrackDeleteCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	if err := reg.RemoveTrack(cmd.Args.Track); err != nil {
		return err
	}
	return reg.SaveAll(ctx, logger)
}

type TrackAddCommand struct {
	Engine EngineFlag

	Position int `long:"position" description:"Insert at this position instead of appending" default:"-1"`

	Args struct {
		Track string `positional-arg-name:"TRACK"`
		Group string `positional-arg-name:"GROUP"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd TrackAddCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	track, err := reg.Track(cmd.Args.Track)
	if err != nil {
		return err
	}

	if cmd.Position < 0 {
		track.AddGroup(cmd.Args.Group)
	} else {
		track.InsertGroup(cmd.Position, cmd.Args.Group)
	}
	return reg.SaveAll(ctx, logger)
}

type TrackRemoveCommand struct {
	Engine EngineFlag

	Args struct {
		Track string `positional-arg-name:"TRACK"`
		Group string `positional-arg-name:"GROUP"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd TrackRemoveCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	track, err := reg.Track(cmd.Args.Track)
	if err != nil {
		return err
	}

	track.RemoveGroup(cmd.Args.Group)
	return reg.SaveAll(ctx, logger)
}

type TrackListCommand struct {
	Engine EngineFlag
}

func (cmd TrackListCommand) Execute([]string) error {
	ctx := context.Background()
	_, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	for _, track := range reg.Tracks() {
		fmt.Printf("%s: %s\n", track.Name(), strings.Join(track.Groups(), " -> "))
	}
	return nil
}
