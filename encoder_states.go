// SPDX-License-Identifier: MIT

package microlz

// stepSearch scans forward from matchScanIndex for the longest eligible
// back-reference, or falls through to a single literal byte (spec §4.1
// SEARCH). It performs no I/O.
func (e *Encoder) stepSearch() encoderState {
	lookahead := e.cfg.maxMatchLen()
	rem := e.inputSize - e.matchScanIndex

	// Keep a full lookahead unscanned, but never more than half the window:
	// with Lookahead == Window a full lookahead is the whole active half and
	// the scan could never advance.
	boundary := lookahead
	if half := e.cfg.windowSize() / 2; boundary > half {
		boundary = half
	}

	if e.isFinishing {
		if rem <= 0 {
			return stateSaveBacklog
		}
	} else if rem <= boundary {
		return stateSaveBacklog
	}

	needle := e.activeBase() + e.matchScanIndex
	start := e.searchStart(needle)

	maxLen := lookahead
	if rem < maxLen {
		maxLen = rem
	}

	pos, length, found := e.findLongestMatch(start, needle, maxLen)
	if !found {
		e.hasLiteral = true
		e.matchLength = 0
		e.matchScanIndex++
		return stateYieldTagBit
	}

	e.matchPos = needle - pos
	e.matchLength = length
	e.hasLiteral = false
	return stateYieldTagBit
}

// searchStart picks the earliest buffer offset eligible as a match
// candidate for needle, per the backlog-fill state (spec §4.1 SEARCH,
// "start selection").
func (e *Encoder) searchStart(needle int) int {
	ws := e.cfg.windowSize()
	switch {
	case e.backlogFilled:
		return needle - ws + 1
	case e.backlogPartial:
		s := needle - ws + 1
		if lookahead := e.cfg.maxMatchLen(); s < lookahead {
			s = lookahead
		}
		return s
	default:
		return e.activeBase()
	}
}

// stepYieldTagBit emits the 1-bit tag selecting literal or back-reference
// and stages the field that follows.
func (e *Encoder) stepYieldTagBit(out []byte, outPos *int) (encoderState, bool) {
	if e.matchLength == 0 {
		if !e.pushBits(out, outPos, 1, markLiteral) {
			return stateYieldTagBit, false
		}
		return stateYieldLiteral, true
	}

	if !e.pushBits(out, outPos, 1, markBackref) {
		return stateYieldTagBit, false
	}
	e.outgoingBits = uint32(e.matchPos - 1)
	e.outgoingBitsCount = e.cfg.Window
	return stateYieldBRIndex, true
}

// stepYieldLiteral emits the 8 literal data bits for the byte at
// matchScanIndex-1.
func (e *Encoder) stepYieldLiteral(out []byte, outPos *int) (encoderState, bool) {
	c := e.buffer[e.activeBase()+e.matchScanIndex-1]
	if !e.pushBits(out, outPos, 8, uint32(c)) {
		return stateYieldLiteral, false
	}
	e.hasLiteral = false

	if e.onFinalLiteral {
		return stateFlushBits, true
	}
	if e.matchLength > 0 {
		return stateYieldTagBit, true
	}
	return stateSearch, true
}

// stepYieldBRIndex drains the staged (distance-1) field, W bits wide.
func (e *Encoder) stepYieldBRIndex(out []byte, outPos *int) (encoderState, bool) {
	n, ok := e.pushOutgoingBits(out, outPos)
	if !ok {
		return stateYieldBRIndex, false
	}
	if n > 0 {
		return stateYieldBRIndex, true
	}
	e.outgoingBits = uint32(e.matchLength - 1)
	e.outgoingBitsCount = e.cfg.Lookahead
	return stateYieldBRLength, true
}

// stepYieldBRLength drains the staged (length-1) field, L bits wide, then
// advances the scan past the matched run.
func (e *Encoder) stepYieldBRLength(out []byte, outPos *int) (encoderState, bool) {
	n, ok := e.pushOutgoingBits(out, outPos)
	if !ok {
		return stateYieldBRLength, false
	}
	if n > 0 {
		return stateYieldBRLength, true
	}
	e.matchScanIndex += e.matchLength
	e.matchLength = 0
	return stateSearch, true
}

// stepSaveBacklog runs the non-finishing backlog shift, or routes a
// finishing encoder toward its last literal (if any) or flush (spec §4.1
// SAVE_BACKLOG).
func (e *Encoder) stepSaveBacklog() encoderState {
	if e.isFinishing {
		if e.hasLiteral {
			e.onFinalLiteral = true
			return stateYieldTagBit
		}
		return stateFlushBits
	}

	e.shiftBacklog()
	e.matchScanIndex = 0
	return stateNotFull
}

// shiftBacklog slides the whole two-half buffer left by matchScanIndex
// bytes in one contiguous copy: the discarded prefix is the oldest
// matchScanIndex bytes of the backlog (as many bytes as SEARCH has already
// scanned), and everything from matchScanIndex onward (the backlog's
// still-useful tail, the scanned part of active, then its unscanned part)
// moves down as one unbroken run. A two-step copy that relocates the
// backlog and active halves to different destinations would shift them by
// different effective offsets and duplicate the unscanned tail, which
// corrupts the needle-pos distance computation findLongestMatch relies on.
// The first few shifts leave stale bytes at the front of the backlog
// (there's no real history yet to fill it); searchStart's clamp to
// maxMatchLen while backlogPartial keeps those bytes out of reach until
// they age out of the window entirely.
func (e *Encoder) shiftBacklog() {
	msi := e.matchScanIndex
	copy(e.buffer[0:], e.buffer[msi:])
	e.inputSize -= msi

	if e.backlogPartial {
		e.backlogPartial = false
		e.backlogFilled = true
	} else {
		e.backlogPartial = true
	}
}

// stepFlushBits writes out any partially-filled final byte.
func (e *Encoder) stepFlushBits(out []byte, outPos *int) (encoderState, bool) {
	if e.bitIndex == 0x80 {
		return stateDone, true
	}
	if *outPos >= len(out) {
		return stateFlushBits, false
	}
	out[*outPos] = e.currentByte
	*outPos++
	return stateDone, true
}
