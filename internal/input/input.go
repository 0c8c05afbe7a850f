// Package input turns raw terminal bytes into quit requests and mouse clicks.
package input

import (
	"bufio"
	"bytes"
	"strconv"
)

// Click is a left-button press at a 1-based terminal cell.
type Click struct {
	Col, Row int
}

// Input represents the current frame's input state.
type Input struct {
	Quit   bool
	Clicks []Click
	// Closed is set once the underlying reader has ended.
	Closed bool
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	pending []byte
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 256)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// An escape sequence split across reads is held back until it completes.
func ReadInput(s *Stream) Input {
	buf := s.pending
	s.pending = nil

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in, rest := Parse(buf)
	if !s.closed {
		s.pending = rest
	}
	in.Closed = s.closed
	return in
}

// maxPending bounds how many bytes of an unfinished escape sequence are held
// back for the next read. Anything longer is not a sequence we understand.
const maxPending = 32

// Parse decodes buf. It returns the decoded input and any trailing bytes that
// look like the start of an unfinished escape sequence.
func Parse(buf []byte) (Input, []byte) {
	var in Input
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			switch b {
			case 'q', 'Q', '\x03':
				in.Quit = true
			}
			continue
		}

		if i+1 >= len(buf) {
			return in, hold(buf[i:])
		}
		if buf[i+1] != '[' {
			continue
		}
		if i+2 >= len(buf) {
			return in, hold(buf[i:])
		}
		if buf[i+2] != '<' {
			// other CSI sequences (arrows etc.) end in a final byte 0x40-0x7e
			j := i + 2
			for j < len(buf) && (buf[j] < 0x40 || buf[j] > 0x7e) {
				j++
			}
			if j >= len(buf) {
				return in, hold(buf[i:])
			}
			i = j
			continue
		}

		click, n, ok := parseSGRMouse(buf[i:])
		if n == 0 {
			return in, hold(buf[i:])
		}
		if ok {
			in.Clicks = append(in.Clicks, click)
		}
		i += n - 1
	}
	return in, nil
}

// hold returns rest for the next read, or nil once it outgrows maxPending.
func hold(rest []byte) []byte {
	if len(rest) > maxPending {
		return nil
	}
	return rest
}

// parseSGRMouse decodes ESC [ < btn ; col ; row (M|m). n is the number of
// bytes consumed, or 0 when buf ends before the terminator. A byte outside
// [0-9;] other than the terminator ends the sequence as invalid and is not
// consumed. ok is set only for a left-button press without motion.
func parseSGRMouse(buf []byte) (c Click, n int, ok bool) {
	end := 3
	for end < len(buf) && (buf[end] == ';' || (buf[end] >= '0' && buf[end] <= '9')) {
		end++
	}
	if end >= len(buf) {
		return Click{}, 0, false
	}
	if buf[end] != 'M' && buf[end] != 'm' {
		return Click{}, end, false
	}
	n = end + 1

	params, valid := parseSGRParams(buf[3:end])
	if !valid {
		return Click{}, n, false
	}
	btn := params[0]
	press := buf[end] == 'M'
	motion := btn&32 != 0
	if !press || motion || btn&3 != 0 || btn&64 != 0 {
		return Click{}, n, false
	}
	return Click{Col: params[1], Row: params[2]}, n, true
}

// parseSGRParams parses "btn;col;row".
func parseSGRParams(b []byte) ([3]int, bool) {
	var out [3]int
	parts := bytes.Split(b, []byte{';'})
	if len(parts) != 3 {
		return out, false
	}
	for i, p := range parts {
		v, err := strconv.Atoi(string(p))
		if err != nil || v < 0 {
			return out, false
		}
		out[i] = v
	}
	return out, true
}
