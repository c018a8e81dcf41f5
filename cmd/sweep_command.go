package cmd

import (
	"context"
	"fmt"

	"code.cloudfoundry.org/clock"

	"github.com/frizzlenpop/FrizzlenRanks/sweeper"
)

type SweepCommand struct {
	Engine EngineFlag
}

// Execute runs a single sweep over the stored worlds and persists the
// purged state.
func (cmd SweepCommand) Execute([]string) error {
	ctx := context.Background()
	logger, reg, err := cmd.Engine.Open(ctx, component)
	if err != nil {
		return err
	}

	period, err := reg.Config().SweepPeriod()
	if err != nil {
		return err
	}

	summary := sweeper.New(reg, period, clock.NewClock()).Sweep(logger)
	fmt.Printf("swept %d users (%d permissions, %d groups)\n",
		summary.Affected, summary.Permissions, summary.Groups)

	return reg.SaveAll(ctx, logger)
}
