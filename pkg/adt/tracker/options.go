package tracker

import (
	"errors"

	"github.com/hashicorp/go-hclog"
)

const defaultName = "tracker"

// getOpts iterates the inbound Options and returns a struct
func getOpts(opt ...Option) (*options, error) {
	opts := getDefaultOptions()
	for _, o := range opt {
		if o != nil {
			if err := o(&opts); err != nil {
				return nil, err
			}
		}
	}
	return &opts, nil
}

// Option configures a Tracker
type Option func(*options) error

type options struct {
	withName   string
	withLogger hclog.Logger
}

func getDefaultOptions() options {
	return options{
		withName:   defaultName,
		withLogger: hclog.NewNullLogger(),
	}
}

// WithName sets the sub-logger name used for this tracker's log lines.
func WithName(name string) Option {
	return func(o *options) error {
		if name == "" {
			return errors.New("tracker name cannot be empty")
		}
		o.withName = name
		return nil
	}
}

// WithLogger overrides the default null logger.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		o.withLogger = logger
		return nil
	}
}
