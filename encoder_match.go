// SPDX-License-Identifier: MIT

package microlz

// breakEvenLength is the shortest match worth encoding: a 1-bit tag plus a
// W-bit distance and an L-bit length only pays for itself once it replaces
// more than a couple of literal bytes (spec §4.1, break-even point).
const breakEvenLength = 2

// buildIndex rebuilds the byte-chain match index over the currently valid
// buffer range [0, activeBase+inputSize). index[i] points at the most
// recent earlier offset sharing buffer[i]'s value, or indexNone.
func (e *Encoder) buildIndex() {
	var last [256]int32
	for i := range last {
		last[i] = indexNone
	}

	end := e.activeBase() + e.inputSize
	for i := 0; i < end; i++ {
		v := e.buffer[i]
		e.index[i] = last[v]
		last[v] = int32(i)
	}
}

// findLongestMatch searches candidate positions in [start, needle) for the
// longest run matching buffer[needle:needle+maxLen), breaking ties toward
// the most recently seen (smallest distance) candidate.
func (e *Encoder) findLongestMatch(start, needle, maxLen int) (bestPos, bestLen int, found bool) {
	if maxLen < 1 || start >= needle {
		return 0, 0, false
	}

	visit := func(pos int) bool {
		length := e.matchLenAt(pos, needle, maxLen)
		if length > bestLen {
			bestLen = length
			bestPos = pos
		}
		return bestLen >= maxLen
	}

	if e.cfg.DisableIndex || e.index == nil {
		for pos := needle - 1; pos >= start; pos-- {
			if visit(pos) {
				break
			}
		}
	} else {
		for pos := e.index[needle]; pos >= int32(start); pos = e.index[pos] {
			if visit(int(pos)) {
				break
			}
		}
	}

	if bestLen <= breakEvenLength {
		return 0, 0, false
	}
	return bestPos, bestLen, true
}

// matchLenAt returns the length of the common prefix of buffer[pos:] and
// buffer[needle:], capped at maxLen.
func (e *Encoder) matchLenAt(pos, needle, maxLen int) int {
	buf := e.buffer
	n := 0
	for n < maxLen && buf[pos+n] == buf[needle+n] {
		n++
	}
	return n
}
