// SPDX-License-Identifier: MIT

package microlz

// encoderState is the encoder's state-machine node (spec §4.1).
type encoderState uint8

const (
	stateNotFull encoderState = iota
	stateFilled
	stateSearch
	stateYieldTagBit
	stateYieldLiteral
	stateYieldBRIndex
	stateYieldBRLength
	stateSaveBacklog
	stateFlushBits
	stateDone
)

// indexNone marks the end of a byte-chain index list.
const indexNone = -1

// Encoder compresses a byte stream incrementally: Sink feeds input, Poll
// drains compressed output, Finish signals end-of-stream. See the package
// doc comment for the calling convention.
type Encoder struct {
	cfg Config

	// buffer holds backlog (older data, [0, windowSize)) and active (most
	// recently sunk data, [windowSize, 2*windowSize)) halves back to back.
	buffer []byte
	// index[i] is the previous buffer offset < i holding the same byte
	// value as buffer[i], or indexNone. nil when Config.DisableIndex.
	index []int32

	inputSize      int
	matchScanIndex int

	isFinishing    bool
	hasLiteral     bool
	onFinalLiteral bool
	backlogPartial bool
	backlogFilled  bool

	matchPos    int
	matchLength int

	currentByte byte
	bitIndex    byte

	outgoingBits      uint32
	outgoingBitsCount uint8

	state encoderState
}

// NewEncoder constructs an Encoder for the given configuration. Returns an
// error if Window or Lookahead are out of bounds.
func NewEncoder(cfg Config) (*Encoder, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := &Encoder{cfg: cfg}
	e.buffer = make([]byte, 2*cfg.windowSize())
	if !cfg.DisableIndex {
		e.index = make([]int32, 2*cfg.windowSize())
	}
	e.Reset()
	return e, nil
}

// Reset clears all mutable state, retaining configuration and allocated buffers.
func (e *Encoder) Reset() {
	e.inputSize = 0
	e.matchScanIndex = 0
	e.isFinishing = false
	e.hasLiteral = false
	e.onFinalLiteral = false
	e.backlogPartial = false
	e.backlogFilled = false
	e.matchPos = 0
	e.matchLength = 0
	e.currentByte = 0
	e.bitIndex = 0x80
	e.outgoingBits = 0
	e.outgoingBitsCount = 0
	e.state = stateNotFull
}

// Done reports whether the encoder has emitted every bit of the stream
// (Finish was called and Poll has fully drained the output).
func (e *Encoder) Done() bool {
	return e.state == stateDone
}

// activeBase is the buffer offset where the active half begins.
func (e *Encoder) activeBase() int {
	return e.cfg.windowSize()
}

// Sink copies as many bytes as fit into the free space of the active half.
func (e *Encoder) Sink(p []byte) (int, SinkStatus, error) {
	if p == nil {
		return 0, SinkOK, ErrNilInput
	}
	if e.isFinishing {
		return 0, SinkOK, ErrEncoderFinishing
	}
	if e.state != stateNotFull {
		return 0, SinkOK, ErrEncoderBusy
	}

	ws := e.cfg.windowSize()
	writeOffset := e.activeBase() + e.inputSize
	room := ws - e.inputSize

	n := room
	if len(p) < n {
		n = len(p)
	}
	if n > 0 {
		copy(e.buffer[writeOffset:], p[:n])
		e.inputSize += n
	}

	if n == room {
		e.state = stateFilled
	}
	return n, SinkOK, nil
}

// Finish signals end-of-input. If the encoder was idle (NOT_FULL), the
// buffered bytes are queued for processing. Idempotent.
func (e *Encoder) Finish() FinishStatus {
	e.isFinishing = true
	if e.state == stateNotFull {
		e.state = stateFilled
	}
	if e.state == stateDone {
		return FinishDone
	}
	return FinishMore
}

// Poll drives the state machine, writing compressed bytes into out until
// either out fills (PollMore) or the machine stalls needing more input or
// reaching the end of the stream (PollEmpty).
func (e *Encoder) Poll(out []byte) (int, PollStatus, error) {
	if out == nil {
		return 0, PollEmpty, ErrNilOutput
	}
	if len(out) == 0 {
		return 0, PollEmpty, ErrEmptyOutput
	}

	outPos := 0
	for {
		switch e.state {
		case stateNotFull:
			return outPos, PollEmpty, nil

		case stateFilled:
			if !e.cfg.DisableIndex {
				e.buildIndex()
			}
			e.state = stateSearch

		case stateSearch:
			e.state = e.stepSearch()

		case stateYieldTagBit:
			ns, ok := e.stepYieldTagBit(out, &outPos)
			if !ok {
				return outPos, PollMore, nil
			}
			e.state = ns

		case stateYieldLiteral:
			ns, ok := e.stepYieldLiteral(out, &outPos)
			if !ok {
				return outPos, PollMore, nil
			}
			e.state = ns

		case stateYieldBRIndex:
			ns, ok := e.stepYieldBRIndex(out, &outPos)
			if !ok {
				return outPos, PollMore, nil
			}
			e.state = ns

		case stateYieldBRLength:
			ns, ok := e.stepYieldBRLength(out, &outPos)
			if !ok {
				return outPos, PollMore, nil
			}
			e.state = ns

		case stateSaveBacklog:
			e.state = e.stepSaveBacklog()

		case stateFlushBits:
			ns, ok := e.stepFlushBits(out, &outPos)
			if !ok {
				return outPos, PollMore, nil
			}
			e.state = ns
			if e.state == stateDone {
				// Open Question #1 decision: a FLUSH_BITS that resolves in
				// one step returns immediately rather than looping once
				// more to notice DONE — see SPEC_FULL.md.
				return outPos, PollEmpty, nil
			}

		case stateDone:
			return outPos, PollEmpty, nil
		}
	}
}

// pushBits writes up to 8 bits (MSB-first, top bit of "bits" at position
// count-1) into the output stream. If this call would complete the
// in-progress output byte, the completed byte is written to
// out[*outPos]; if there is no room, pushBits mutates nothing and
// returns false so the caller can retry after Poll is called again with
// fresh output space.
func (e *Encoder) pushBits(out []byte, outPos *int, count int, bits uint32) bool {
	if count == 0 {
		return true
	}

	if count >= bitSlotsRemaining(e.bitIndex) && *outPos >= len(out) {
		return false
	}

	for i := count - 1; i >= 0; i-- {
		if bits&(1<<uint(i)) != 0 {
			e.currentByte |= e.bitIndex
		}
		e.bitIndex >>= 1
		if e.bitIndex == 0 {
			out[*outPos] = e.currentByte
			*outPos++
			e.currentByte = 0
			e.bitIndex = 0x80
		}
	}
	return true
}

// bitSlotsRemaining returns how many more single-bit pushes complete the
// byte currently being assembled.
func bitSlotsRemaining(bitIndex byte) int {
	n := 0
	for m := bitIndex; m != 0; m >>= 1 {
		n++
	}
	return n
}

// pushOutgoingBits pushes up to 8 bits of the staged outgoingBits field
// (MSB-first) and reports how many bits were pushed. A return of (0, true)
// means the field was already fully drained before this call.
func (e *Encoder) pushOutgoingBits(out []byte, outPos *int) (int, bool) {
	var count int
	var bits uint32
	if e.outgoingBitsCount > 8 {
		count = 8
		bits = e.outgoingBits >> (e.outgoingBitsCount - 8)
	} else {
		count = int(e.outgoingBitsCount)
		bits = e.outgoingBits
	}
	if count == 0 {
		return 0, true
	}
	if !e.pushBits(out, outPos, count, bits) {
		return 0, false
	}
	e.outgoingBitsCount -= uint8(count)
	return count, true
}
