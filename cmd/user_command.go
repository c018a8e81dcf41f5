package cmd

import (
	"context"
	"fmt"
	"time"

	"code.cloudfoundry.org/lager"

	ranks "github.com/frizzlenpop/FrizzlenRanks"
	"github.com/frizzlenpop/FrizzlenRanks/registry"
)

type UserCommand struct {
	Perm      UserPermCommand      `command:"perm" description:"Add or remove a user permission"`
	TempPerm  UserTempPermCommand  `command:"tempperm" description:"Grant a temporary user permission"`
	Group     UserGroupCommand     `command:"group" description:"Add or remove a user group membership"`
	TempGroup UserTempGroupCommand `command:"tempgroup" description:"Grant a temporary group membership"`
	SetGroup  UserSetGroupCommand  `command:"setgroup" description:"Replace all of a user's groups"`
	Meta      UserMetaCommand      `command:"meta" description:"Read or write user metadata"`
}

type UserPermCommand struct {
	Engine EngineFlag

	World string `long:"world" description:"World to edit" default:"global"`

	Args struct {
		User       string `positional-arg-name:"USER"`
		Action     string `positional-arg-name:"ACTION"`
		Permission string `positional-arg-name:"PERMISSION"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd UserPermCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	user := reg.World(cmd.World).User(cmd.Args.User)
	switch cmd.Args.Action {
	case "add":
		user.AddPermission(cmd.Args.Permission)
	case "remove":
		user.RemovePermission(cmd.Args.Permission)
	default:
		return ErrUnknownAction
	}

	return finishUserEdit(ctx, logger, reg, cmd.World, cmd.Args.User)
}

type UserTempPermCommand struct {
	Engine EngineFlag

	World string `long:"world" description:"World to edit" default:"global"`

	Args struct {
		User       string `positional-arg-name:"USER"`
		Permission string `positional-arg-name:"PERMISSION"`
		Duration   string `positional-arg-name:"DURATION"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd UserTempPermCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	duration, err := ranks.ParseDuration(cmd.Args.Duration)
	if err != nil {
		return err
	}

	now := time.Now()
	expiresAt := now.Add(duration)
	reg.World(cmd.World).User(cmd.Args.User).AddTemporaryPermission(cmd.Args.Permission, expiresAt)
	fmt.Printf("expires in %s\n", ranks.FormatRemaining(expiresAt, now))

	return finishUserEdit(ctx, logger, reg, cmd.World, cmd.Args.User)
}

type UserGroupCommand struct {
	Engine EngineFlag

	World string `long:"world" description:"World to edit" default:"global"`

	Args struct {
		User   string `positional-arg-name:"USER"`
		Action string `positional-arg-name:"ACTION"`
		Group  string `positional-arg-name:"GROUP"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd UserGroupCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	user := reg.World(cmd.World).User(cmd.Args.User)
	switch cmd.Args.Action {
	case "add":
		user.AddGroup(cmd.Args.Group)
	case "remove":
		user.RemoveGroup(cmd.Args.Group)
	default:
		return ErrUnknownAction
	}

	return finishUserEdit(ctx, logger, reg, cmd.World, cmd.Args.User)
}

type UserTempGroupCommand struct {
	Engine EngineFlag

	World string `long:"world" description:"World to edit" default:"global"`

	Args struct {
		User     string `positional-arg-name:"USER"`
		Group    string `positional-arg-name:"GROUP"`
		Duration string `positional-arg-name:"DURATION"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd UserTempGroupCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	duration, err := ranks.ParseDuration(cmd.Args.Duration)
	if err != nil {
		return err
	}

	now := time.Now()
	expiresAt := now.Add(duration)
	reg.World(cmd.World).User(cmd.Args.User).AddTemporaryGroup(cmd.Args.Group, expiresAt)
	fmt.Printf("expires in %s\n", ranks.FormatRemaining(expiresAt, now))

	return finishUserEdit(ctx, logger, reg, cmd.World, cmd.Args.User)
}

type UserSetGroupCommand struct {
	Engine EngineFlag

	World string `long:"world" description:"World to edit" default:"global"`

	Args struct {
		User   string   `positional-arg-name:"USER"`
		Groups []string `positional-arg-name:"GROUP"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd UserSetGroupCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	reg.World(cmd.World).User(cmd.Args.User).SetGroups(cmd.Args.Groups)

	return finishUserEdit(ctx, logger, reg, cmd.World, cmd.Args.User)
}

type UserMetaCommand struct {
	Engine EngineFlag

	World  string `long:"world" description:"World to edit" default:"global"`
	Delete bool   `long:"delete" description:"Delete the key instead of reading it"`

	Args struct {
		User  string `positional-arg-name:"USER"`
		Key   string `positional-arg-name:"KEY"`
		Value string `positional-arg-name:"VALUE"`
	} `positional-args:"yes" required:"2"`
}

// Execute reads the key when no value is given, writes it otherwise.
// --delete clears the key.
func (cmd UserMetaCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	user := reg.World(cmd.World).User(cmd.Args.User)
	switch {
	case cmd.Delete:
		user.SetMeta(cmd.Args.Key, "")
	case cmd.Args.Value == "":
		fmt.Println(user.Meta(cmd.Args.Key))
		return nil
	default:
		user.SetMeta(cmd.Args.Key, cmd.Args.Value)
	}

	return finishUserEdit(ctx, logger, reg, cmd.World, cmd.Args.User)
}

// finishUserEdit runs the post-edit sequence and, when auto-save is
// off, still persists the world: a one-shot command that does not save
// would silently lose its edit.
func finishUserEdit(ctx context.Context, logger lager.Logger, reg *registry.Registry, worldName, userName string) error {
	reg.UserEdited(ctx, logger, worldName, userName)
	if !reg.Config().AutoSave {
		return reg.SaveWorld(ctx, logger, worldName)
	}
	return nil
}
