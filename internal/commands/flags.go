package commands

import (
	"strconv"

	"tasker/internal/service"
)

// optString is a flag.Value that remembers whether it was given.
type optString struct {
	value string
	set   bool
}

func (o *optString) String() string { return o.value }

func (o *optString) Set(s string) error {
	o.value, o.set = s, true
	return nil
}

func (o *optString) optional() service.Optional[string] {
	if !o.set {
		return service.Optional[string]{}
	}
	return service.Some(o.value)
}

// optBool is a boolean flag.Value that remembers whether it was given.
type optBool struct {
	value bool
	set   bool
}

func (o *optBool) String() string   { return strconv.FormatBool(o.value) }
func (o *optBool) IsBoolFlag() bool { return true }

func (o *optBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	o.value, o.set = v, true
	return nil
}
