// SPDX-License-Identifier: MIT

/*
Package microlz implements a streaming, bounded-memory LZSS-style codec
suitable for environments where only a few kilobytes of RAM are available.

An Encoder and a Decoder share one bitstream format: each symbol is a
1-bit tag (literal or back-reference) followed by either 8 literal data
bits or a (distance, length) pair stored as value-minus-one. There is no
header, trailer, checksum, or length prefix — callers must frame the
stream externally.

Both sides are incremental, non-blocking state machines driven by two
primitives, Sink (feed input) and Poll (drain output), plus Finish to
signal end-of-stream:

	enc, _ := microlz.NewEncoder(microlz.Config{Window: 8, Lookahead: 7})
	enc.Sink(data)
	enc.Finish()
	for {
		n, status, _ := enc.Poll(out)
		// consume out[:n]
		if status == microlz.PollEmpty && enc.Done() {
			break
		}
	}

Decompression mirrors this with a Decoder constructed with the same
Window/Lookahead as the encoder that produced the stream, plus an input
buffer size:

	dec, _ := microlz.NewDecoder(microlz.Config{Window: 8, Lookahead: 7}, 64)
	dec.Sink(compressed)
	dec.Finish()
	for {
		n, status, _ := dec.Poll(out)
		// consume out[:n]
		if status == microlz.PollEmpty {
			break
		}
	}

Compress and Decompress wrap this loop for callers that already hold the
whole input in memory.

Neither side performs any internal locking: a single Encoder or Decoder
instance must not be used from more than one goroutine concurrently.
*/
package microlz
