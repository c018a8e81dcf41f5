package ranks

import (
	"github.com/frizzlenpop/FrizzlenRanks/errdefs"
)

var (
	ErrTrackNotFound      = errdefs.NewErrNotFound("track")
	ErrTrackAlreadyExists = errdefs.NewErrAlreadyExists("track")
	ErrGroupNotFound      = errdefs.NewErrNotFound("group")
	ErrWorldNotFound      = errdefs.NewErrNotFound("world")
	ErrUserNotFound       = errdefs.NewErrNotFound("user")
)
