// SPDX-License-Identifier: MIT

package microlz

// decoderState is the decoder's state-machine node (spec §4.2). TAG_BIT's
// antecedent EMPTY/INPUT_AVAILABLE bookkeeping states collapse into
// stateDecEmpty plus the Sink/Poll transition logic below: Go extracts an
// arbitrary-width bit field in one call, so there is no need for the
// MSB/LSB split states a byte-at-a-time C decoder uses either.
type decoderState uint8

const (
	stateDecEmpty decoderState = iota
	stateDecTagBit
	stateDecYieldLiteral
	stateDecBackrefIndex
	stateDecBackrefCount
	stateDecYieldBackref
)

// Decoder decompresses a byte stream produced by an Encoder with matching
// Config. See the package doc comment for the calling convention.
type Decoder struct {
	cfg Config
	ibs int

	// buffers holds the input ring in [0, ibs) and the circular history
	// window in [ibs, ibs+windowSize).
	buffers []byte

	inputSize  int
	inputIndex int

	currentByte byte
	bitIndex    byte // 0 means "load the next input byte"

	bitsNeeded int
	bitsAcc    uint32

	headIndex   int
	outputIndex int
	outputCount int

	state decoderState
}

// NewDecoder constructs a Decoder for the given configuration and input
// ring-buffer size. inputBufferSize must be positive; it bounds how many
// compressed bytes may be buffered between Poll calls.
func NewDecoder(cfg Config, inputBufferSize int) (*Decoder, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if inputBufferSize <= 0 {
		return nil, ErrInvalidInputBufferSize
	}

	d := &Decoder{cfg: cfg, ibs: inputBufferSize}
	d.buffers = make([]byte, inputBufferSize+cfg.windowSize())
	d.Reset()
	return d, nil
}

// Reset clears all mutable state, retaining configuration and allocated buffers.
func (d *Decoder) Reset() {
	d.inputSize = 0
	d.inputIndex = 0
	d.currentByte = 0
	d.bitIndex = 0
	d.bitsNeeded = 0
	d.bitsAcc = 0
	d.headIndex = 0
	d.outputIndex = 0
	d.outputCount = 0
	d.state = stateDecEmpty
}

// Sink copies as many compressed bytes as fit into the free space of the
// input ring. Returns SinkFull with n=0 if the ring has no room.
func (d *Decoder) Sink(p []byte) (int, SinkStatus, error) {
	if p == nil {
		return 0, SinkOK, ErrNilInput
	}

	room := d.ibs - d.inputSize
	if room <= 0 {
		return 0, SinkFull, nil
	}

	n := room
	if len(p) < n {
		n = len(p)
	}
	if n > 0 {
		copy(d.buffers[d.inputSize:], p[:n])
		d.inputSize += n
		if d.state == stateDecEmpty {
			d.state = stateDecTagBit
			d.inputIndex = 0
		}
	}
	return n, SinkOK, nil
}

// Finish reports whether the decoder can safely stop: either it is idle
// (EMPTY), or it is mid-field on a backref index/count with nothing left
// sunk — which only happens when trailing zero padding at the end of a
// byte-aligned stream was decoded as the start of a spurious back-reference
// field (spec §4.2, §7).
func (d *Decoder) Finish() FinishStatus {
	switch d.state {
	case stateDecEmpty:
		return FinishDone
	case stateDecBackrefIndex, stateDecBackrefCount:
		if d.inputSize == 0 {
			return FinishDone
		}
	}
	return FinishMore
}

// Poll drives the state machine, writing decompressed bytes into out
// until either out fills (PollMore) or the machine stalls needing more
// input (PollEmpty).
func (d *Decoder) Poll(out []byte) (int, PollStatus, error) {
	if out == nil {
		return 0, PollEmpty, ErrNilOutput
	}
	if len(out) == 0 {
		return 0, PollEmpty, ErrEmptyOutput
	}

	outPos := 0
	for {
		switch d.state {
		case stateDecEmpty:
			return outPos, PollEmpty, nil

		case stateDecTagBit:
			bits, ok := d.getBits(1)
			if !ok {
				return outPos, PollEmpty, nil
			}
			if bits == markLiteral {
				d.state = stateDecYieldLiteral
			} else {
				d.state = stateDecBackrefIndex
			}

		case stateDecBackrefIndex:
			bits, ok := d.getBits(int(d.cfg.Window))
			if !ok {
				return outPos, PollEmpty, nil
			}
			d.outputIndex = int(bits) + 1
			d.state = stateDecBackrefCount

		case stateDecBackrefCount:
			bits, ok := d.getBits(int(d.cfg.Lookahead))
			if !ok {
				return outPos, PollEmpty, nil
			}
			d.outputCount = int(bits) + 1
			d.state = stateDecYieldBackref

		case stateDecYieldLiteral:
			if outPos >= len(out) {
				return outPos, PollMore, nil
			}
			bits, ok := d.getBits(8)
			if !ok {
				return outPos, PollEmpty, nil
			}
			c := byte(bits)
			out[outPos] = c
			outPos++
			d.writeHistory(c)
			d.state = d.nextAfterYield()

		case stateDecYieldBackref:
			for d.outputCount > 0 {
				if outPos >= len(out) {
					return outPos, PollMore, nil
				}
				c := d.historyByte(d.headIndex - d.outputIndex)
				out[outPos] = c
				outPos++
				d.writeHistory(c)
				d.outputCount--
			}
			d.state = d.nextAfterYield()
		}
	}
}

// nextAfterYield routes back to TAG_BIT if more compressed data (whole
// bytes or leftover bits of the current byte) remains, otherwise EMPTY.
func (d *Decoder) nextAfterYield() decoderState {
	if d.inputIndex < d.inputSize || d.bitIndex != 0 {
		return stateDecTagBit
	}
	return stateDecEmpty
}

// historyByte reads the circular history window at absolute position pos
// (which may be negative relative to headIndex; the mask normalizes it).
func (d *Decoder) historyByte(pos int) byte {
	mask := d.cfg.windowSize() - 1
	return d.buffers[d.ibs+(pos&mask)]
}

// writeHistory appends c to the circular history window and advances the head.
func (d *Decoder) writeHistory(c byte) {
	mask := d.cfg.windowSize() - 1
	d.buffers[d.ibs+(d.headIndex&mask)] = c
	d.headIndex++
}
