package cli

import (
	"github.com/spf13/pflag"

	"github.com/roach88/events/internal/event"
)

// dateValue is a pflag.Value for optional YYYY-MM-DD flags. The target
// pointer stays nil until the flag is set.
type dateValue struct {
	target **event.Date
}

var _ pflag.Value = dateValue{}

func (v dateValue) String() string {
	if v.target == nil || *v.target == nil {
		return ""
	}
	return (*v.target).String()
}

func (v dateValue) Set(s string) error {
	d, err := event.ParseDate(s)
	if err != nil {
		return err
	}
	*v.target = &d
	return nil
}

func (v dateValue) Type() string {
	return "date"
}

// dateFlag registers an optional date flag bound to target.
func dateFlag(flags *pflag.FlagSet, target **event.Date, name, usage string) {
	flags.Var(dateValue{target: target}, name, usage+" (YYYY-MM-DD)")
}
