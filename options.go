package rlzjb

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Options configures decompression.
type Options struct {
	// AllowShortOutput: if true, a stream that ends before outLen bytes were produced
	// returns the shorter output instead of ErrShortOutput.
	// Invalid back-references are rejected either way.
	AllowShortOutput bool
	// MaxOutLen rejects larger outLen values with ErrOutLenTooLarge (0 = no limit).
	MaxOutLen int
	// Logger receives failed decodes at debug level. Nil discards.
	Logger logrus.FieldLogger
	// Metrics records decode outcomes. Nil disables metrics.
	Metrics *Metrics
}

// DefaultOptions returns options for strict decoding: short output is an error, no size limit.
func DefaultOptions() *Options {
	return &Options{}
}

// LenientOptions returns options that accept a stream ending before outLen bytes (best effort).
func LenientOptions() *Options {
	return &Options{AllowShortOutput: true}
}

// discardLogger is used when Options.Logger is nil.
var discardLogger = func() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}()

// logger returns the configured logger scoped to this package.
func (o *Options) logger() logrus.FieldLogger {
	l := o.Logger
	if l == nil {
		l = discardLogger
	}

	return l.WithField("component", "rlzjb")
}
