package cmd

import (
	"context"
	"fmt"
)

type PromoteCommand struct {
	Engine EngineFlag

	World string `long:"world" description:"World to edit" default:"global"`

	Args struct {
		User  string `positional-arg-name:"USER"`
		Track string `positional-arg-name:"TRACK"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd PromoteCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	group, err := reg.Promote(ctx, logger, cmd.World, cmd.Args.User, cmd.Args.Track)
	if err != nil {
		return err
	}
	fmt.Printf("%s is now %s\n", cmd.Args.User, group)

	if !reg.Config().AutoSave {
		return reg.SaveWorld(ctx, logger, cmd.World)
	}
	return nil
}

type DemoteCommand struct {
	Engine EngineFlag

	World string `long:"world" description:"World to edit" default:"global"`

	Args struct {
		User  string `positional-arg-name:"USER"`
		Track string `positional-arg-name:"TRACK"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd DemoteCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	group, err := reg.Demote(ctx, logger, cmd.World, cmd.Args.User, cmd.Args.Track)
	if err != nil {
		return err
	}
	fmt.Printf("%s is now %s\n", cmd.Args.User, group)

	if !reg.Config().AutoSave {
		return reg.SaveWorld(ctx, logger, cmd.World)
	}
	return nil
}
