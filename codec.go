// SPDX-License-Identifier: MIT

package microlz

// drainChunkSize is the internal Poll buffer size used by the one-shot
// Compress/Decompress helpers.
const drainChunkSize = 4096

// Compress encodes src in a single call, using cfg. It is a convenience
// wrapper around NewEncoder/Sink/Poll/Finish for callers that already
// hold the whole input in memory; streaming callers should drive an
// Encoder directly.
func Compress(src []byte, cfg Config) ([]byte, error) {
	enc, err := NewEncoder(cfg)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(src)+len(src)/2+4)
	buf := make([]byte, drainChunkSize)

	sunk := 0
	for sunk < len(src) {
		n, _, err := enc.Sink(src[sunk:])
		if err != nil {
			return nil, err
		}
		sunk += n
		out = drainEncoder(enc, buf, out)
	}

	enc.Finish()
	out = drainEncoder(enc, buf, out)
	return out, nil
}

func drainEncoder(enc *Encoder, buf, out []byte) []byte {
	for {
		n, status, _ := enc.Poll(buf)
		out = append(out, buf[:n]...)
		if status == PollEmpty {
			return out
		}
	}
}

// Decompress decodes src in a single call, using cfg. outLenHint sizes the
// initial output allocation; it need not be exact. It is a convenience
// wrapper around NewDecoder/Sink/Poll/Finish for callers that already hold
// the whole compressed payload in memory.
func Decompress(src []byte, cfg Config, outLenHint int) ([]byte, error) {
	if outLenHint < 0 {
		return nil, ErrOutLenNegative
	}

	ibs := len(src)
	if ibs == 0 {
		ibs = 1
	}
	dec, err := NewDecoder(cfg, ibs)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, outLenHint)
	buf := make([]byte, drainChunkSize)

	sunk := 0
	for sunk < len(src) {
		n, _, err := dec.Sink(src[sunk:])
		if err != nil {
			return nil, err
		}
		sunk += n
		out = drainDecoder(dec, buf, out)
	}

	dec.Finish()
	out = drainDecoder(dec, buf, out)
	return out, nil
}

func drainDecoder(dec *Decoder, buf, out []byte) []byte {
	for {
		n, status, _ := dec.Poll(buf)
		out = append(out, buf[:n]...)
		if status == PollEmpty {
			return out
		}
	}
}
