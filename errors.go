// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/rlzjb

package rlzjb

import "github.com/pkg/errors"

// ErrMalformedInput is the root of every stream format error.
// Use errors.Is(err, ErrMalformedInput) to tell bad input apart from caller or I/O errors.
var ErrMalformedInput = errors.New("malformed input")

// Format errors. Each one satisfies errors.Is(err, ErrMalformedInput).
var (
	ErrUnexpectedEOF      = errors.WithMessage(ErrMalformedInput, "unexpected end of input inside back-reference")
	ErrZeroDistance       = errors.WithMessage(ErrMalformedInput, "back-reference distance is zero")
	ErrLookBehindUnderrun = errors.WithMessage(ErrMalformedInput, "back-reference points before start of output")
	ErrShortOutput        = errors.WithMessage(ErrMalformedInput, "input exhausted before output length reached")
)

// Argument and ownership errors.
var (
	ErrNilInput          = errors.New("input is nil")
	ErrNilReader         = errors.New("reader is nil")
	ErrNilOutLenProvider = errors.New("outLen provider is nil")
	ErrNoProgress        = errors.New("block consumed no input before end of stream")
	ErrNegativeOutLen    = errors.New("output length must be non-negative")
	ErrOutLenTooLarge    = errors.New("output length exceeds MaxOutLen")
	ErrNotOwned          = errors.New("result holds no buffer")
	ErrReleased          = errors.New("result buffer already released")
)
