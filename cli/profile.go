package cli

import (
	"github.com/alecthomas/kong"
	"github.com/pkg/profile"
)

type profileConfig struct {
	Mode string `default:"off" enum:"off,cpu,mem" help:"Enable profile capture."`
	Dir  string `default:"."                      help:"Profile output directory."`
}

func (*profileConfig) group() kong.Group {
	var group kong.Group

	group.Key = "profile"
	group.Title = "Profiling options"

	return group
}

// start begins profile capture and returns the corresponding stop
// function.
func (f *profileConfig) start() func() {
	var opts []func(*profile.Profile)

	switch f.Mode {
	case "cpu":
		opts = append(opts, profile.CPUProfile)
	case "mem":
		opts = append(opts, profile.MemProfile)
	default:
		return func() {}
	}

	opts = append(opts, profile.ProfilePath(f.Dir), profile.Quiet)

	return profile.Start(opts...).Stop
}
