package qtest

import (
	"fmt"
	"strconv"
)

// Options tune a Console. A zero Length or Seed takes its default.
type Options struct {
	Verbose int   // 0 errors only, 1 queue after each change, 2 everything
	Length  int   // size of the buffer handed to remove, terminator included
	JSON    bool  // show and the final summary print JSON
	Seed    int64 // seed for RAND strings
}

const (
	defaultLength = 1024
	defaultSeed   = 1
)

func defaultOptions() Options {
	return Options{
		Verbose: 1,
		Length:  defaultLength,
		Seed:    defaultSeed,
	}
}

func (o Options) withDefaults() Options {
	d := defaultOptions()
	if o.Verbose < 0 {
		o.Verbose = 0
	}
	if o.Length <= 0 {
		o.Length = d.Length
	}
	if o.Seed == 0 {
		o.Seed = d.Seed
	}
	return o
}

// set changes one option by name.
func (o *Options) set(name, value string) error {
	switch name {
	case "verbose":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("verbose %q: %w", value, ErrArgument)
		}
		o.Verbose = n
	case "length":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("length %q: %w", value, ErrArgument)
		}
		o.Length = n
	case "json":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("json %q: %w", value, ErrArgument)
		}
		o.JSON = b
	case "seed":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("seed %q: %w", value, ErrArgument)
		}
		o.Seed = n
	default:
		return fmt.Errorf("option %q: %w", name, ErrArgument)
	}
	return nil
}

func (o Options) String() string {
	return fmt.Sprintf("verbose=%d length=%d json=%t seed=%d", o.Verbose, o.Length, o.JSON, o.Seed)
}
