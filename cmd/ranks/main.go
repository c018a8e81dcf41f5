package main

import (
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/frizzlenpop/FrizzlenRanks/cmd"
)

type options struct {
	Check   cmd.CheckCommand   `command:"check" description:"Resolve whether a user holds a permission"`
	User    cmd.UserCommand    `command:"user" description:"Edit a user's permissions, groups and metadata"`
	Group   cmd.GroupCommand   `command:"group" description:"Edit a group's permissions, inheritance and metadata"`
	Track   cmd.TrackCommand   `command:"track" description:"Manage promotion tracks"`
	Promote cmd.PromoteCommand `command:"promote" description:"Promote a user along a track"`
	Demote  cmd.DemoteCommand  `command:"demote" description:"Demote a user along a track"`
	Sweep   cmd.SweepCommand   `command:"sweep" description:"Purge expired temporary grants"`
	Backup  cmd.BackupCommand  `command:"backup" description:"Snapshot the stored data files"`
	Migrate cmd.MigrateCommand `command:"migrate" description:"Apply SQL schema migrations"`
}

func main() {
	parser := flags.NewParser(&options{}, flags.Default)
	parser.NamespaceDelimiter = "-"

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}
