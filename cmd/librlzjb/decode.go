package main

import (
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/woozymasta/rlzjb"
)

// logLevelEnv selects the adapter log level (logrus level names).
const logLevelEnv = "RLZJB_LOG_LEVEL"

var log = newLogger(os.Getenv(logLevelEnv))

// newLogger returns a stderr logger at the named level, falling back to warn.
func newLogger(level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)

	if level == "" {
		return l
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		l.WithError(err).Warnf("invalid %s, using warn", logLevelEnv)
		return l
	}

	l.SetLevel(parsed)

	return l
}

// toLen converts a size_t argument to int, rejecting values above math.MaxInt.
func toLen(v uint64, name string) (int, bool) {
	if v > math.MaxInt {
		log.WithField(name, v).Warn("argument out of range")
		return 0, false
	}

	return int(v), true
}

// decode runs one decode for the C entry point. A nil src means a null pointer.
// ok is false for every failure; the reason is only logged.
func decode(src []byte, size int) (out []byte, ok bool) {
	entry := log.WithField("component", "librlzjb")

	if size < 0 {
		entry.WithField("size", size).Warn("target size out of range")
		return nil, false
	}

	res := rlzjb.DecompressResult(src, size, &rlzjb.Options{Logger: log})
	if !res.Success {
		entry.WithError(res.Err()).WithFields(logrus.Fields{
			"input_len": len(src),
			"size":      size,
		}).Debug("decompress_external failed")

		return nil, false
	}

	out, err := res.Take()
	if err != nil {
		entry.WithError(err).Error("result ownership lost")
		return nil, false
	}

	return out, true
}
