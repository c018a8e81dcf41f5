package cmd

import "errors"

var ErrUnknownAction = errors.New("action must be add or remove")
