package cmd

import (
	"context"
	"fmt"

	"code.cloudfoundry.org/lager"

	"github.com/frizzlenpop/FrizzlenRanks/registry"
)

type GroupCommand struct {
	Perm     GroupPermCommand     `command:"perm" description:"Add or remove a group permission"`
	Inherit  GroupInheritCommand  `command:"inherit" description:"Add or remove an inherited parent group"`
	Priority GroupPriorityCommand `command:"priority" description:"Set a group's priority"`
	Meta     GroupMetaCommand     `command:"meta" description:"Read or write group metadata"`
}

type GroupPermCommand struct {
	Engine EngineFlag

	World string `long:"world" description:"World to edit" default:"global"`

	Args struct {
		Group      string `positional-arg-name:"GROUP"`
		Action     string `positional-arg-name:"ACTION"`
		Permission string `positional-arg-name:"PERMISSION"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd GroupPermCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	group := reg.World(cmd.World).Group(cmd.Args.Group)
	switch cmd.Args.Action {
	case "add":
		group.AddPermission(cmd.Args.Permission)
	case "remove":
		group.RemovePermission(cmd.Args.Permission)
	default:
		return ErrUnknownAction
	}

	return finishGroupEdit(ctx, logger, reg, cmd.World)
}

type GroupInheritCommand struct {
	Engine EngineFlag

	World string `long:"world" description:"World to edit" default:"global"`

	Args struct {
		Group  string `positional-arg-name:"GROUP"`
		Action string `positional-arg-name:"ACTION"`
		Parent string `positional-arg-name:"PARENT"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd GroupInheritCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	group := reg.World(cmd.World).Group(cmd.Args.Group)
	switch cmd.Args.Action {
	case "add":
		group.AddInheritance(cmd.Args.Parent)
	case "remove":
		group.RemoveInheritance(cmd.Args.Parent)
	default:
		return ErrUnknownAction
	}

	return finishGroupEdit(ctx, logger, reg, cmd.World)
}

type GroupPriorityCommand struct {
	Engine EngineFlag

	World string `long:"world" description:"World to edit" default:"global"`

	Args struct {
		Group    string `positional-arg-name:"GROUP"`
		Priority int    `positional-arg-name:"PRIORITY"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd GroupPriorityCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	reg.World(cmd.World).Group(cmd.Args.Group).SetPriority(cmd.Args.Priority)

	return finishGroupEdit(ctx, logger, reg, cmd.World)
}

type GroupMetaCommand struct {
	Engine EngineFlag

	World  string `long:"world" description:"World to edit" default:"global"`
	Delete bool   `long:"delete" description:"Delete the key instead of reading it"`

	Args struct {
		Group string `positional-arg-name:"GROUP"`
		Key   string `positional-arg-name:"KEY"`
		Value string `positional-arg-name:"VALUE"`
	} `positional-args:"yes" required:"2"`
}

func (cmd GroupMetaCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	group := reg.World(cmd.World).Group(cmd.Args.Group)
	switch {
	case cmd.Delete:
		group.SetMeta(cmd.Args.Key, "")
	case cmd.Args.Value == "":
		fmt.Println(group.Meta(cmd.Args.Key))
		return nil
	default:
		group.SetMeta(cmd.Args.Key, cmd.Args.Value)
	}

	return finishGroupEdit(ctx, logger, reg, cmd.World)
}

func finishGroupEdit(ctx context.Context, logger lager.Logger, reg *registry.Registry, worldName string) error {
	reg.GroupEdited(ctx, logger, worldName)
	if !reg.Config().AutoSave {
		return reg.SaveWorld(ctx, logger, worldName)
	}
	return nil
}
