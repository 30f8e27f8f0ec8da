package main

import (
	"github.com/spf13/pflag"

	"github.com/provide-io/bytekit/go/bytekit/pkg/breaker"
)

// keyRangeValue is a pflag.Value for --keys.
type keyRangeValue struct {
	r   breaker.KeyRange
	set bool
}

var _ pflag.Value = (*keyRangeValue)(nil)

func (v *keyRangeValue) String() string {
	if !v.set {
		return breaker.PrintableKeys.String()
	}
	return v.r.String()
}

func (v *keyRangeValue) Set(s string) error {
	r, err := breaker.ParseKeyRange(s)
	if err != nil {
		return err
	}
	v.r, v.set = r, true
	return nil
}

func (v *keyRangeValue) Type() string { return "keys" }
