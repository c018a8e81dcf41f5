package cmd

import (
	"context"
	"fmt"
)

type CheckCommand struct {
	Engine EngineFlag

	World string `long:"world" description:"World to resolve in" default:"global"`

	Args struct {
		User       string `positional-arg-name:"USER"`
		Permission string `positional-arg-name:"PERMISSION"`
	} `positional-args:"yes" required:"yes"`
}

func (cmd CheckCommand) Execute([]string) error {
	ctx := context.Background()
	_, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	if reg.World(cmd.World).HasPermission(cmd.Args.User, cmd.Args.Permission) {
		fmt.Println("granted")
	} else {
		fmt.Println("denied")
	}
	return nil
}
