// SPDX-License-Identifier: MIT

package microlz

import "errors"

// Sentinel errors for construction and misuse (spec §7).
var (
	// ErrInvalidWindowBits is returned when Config.Window is outside [MinWindowBits, MaxWindowBits].
	ErrInvalidWindowBits = errors.New("microlz: window bits out of range")
	// ErrInvalidLookaheadBits is returned when Config.Lookahead is outside [MinLookaheadBits, Window].
	ErrInvalidLookaheadBits = errors.New("microlz: lookahead bits out of range")
	// ErrInvalidInputBufferSize is returned when a decoder's input buffer size is not positive.
	ErrInvalidInputBufferSize = errors.New("microlz: input buffer size must be positive")

	// ErrNilInput is returned by Sink when given a nil slice.
	ErrNilInput = errors.New("microlz: input slice is nil")
	// ErrNilOutput is returned by Poll when given a nil slice.
	ErrNilOutput = errors.New("microlz: output slice is nil")
	// ErrEmptyOutput is returned by Poll when given a non-nil, zero-length slice.
	ErrEmptyOutput = errors.New("microlz: output slice has zero capacity")

	// ErrEncoderFinishing is returned by Encoder.Sink after Finish has been called.
	ErrEncoderFinishing = errors.New("microlz: sink called after finish")
	// ErrEncoderBusy is returned by Encoder.Sink when the encoder is not in its
	// not-full state (it must be drained via Poll first).
	ErrEncoderBusy = errors.New("microlz: sink called while encoder buffer is not accepting input")

	// ErrOutLenNegative is returned by Decompress when given a negative outLenHint.
	ErrOutLenNegative = errors.New("microlz: output length hint must be non-negative")
)

// SinkStatus is the result of a Sink call.
type SinkStatus uint8

const (
	// SinkOK indicates bytes were accepted (possibly zero of them).
	SinkOK SinkStatus = iota
	// SinkFull indicates the decoder's input region is saturated; no bytes
	// were accepted. Drain via Poll and retry. Encoders never return this;
	// they report readiness to drain via state instead.
	SinkFull
)

// PollStatus is the result of a Poll call.
type PollStatus uint8

const (
	// PollMore indicates the output buffer filled; call Poll again with a
	// fresh buffer for more output.
	PollMore PollStatus = iota
	// PollEmpty indicates the machine stalled: either more input is
	// required, or (check Done()/state) the stream is fully drained.
	PollEmpty
)

// FinishStatus is the result of a Finish call.
type FinishStatus uint8

const (
	// FinishMore indicates Poll must still be called to drain remaining output.
	FinishMore FinishStatus = iota
	// FinishDone indicates the stream has been fully drained.
	FinishDone
)
