package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParseQuit(t *testing.T) {
	for _, s := range []string{"q", "Q", "\x03", "xxq"} {
		in, rest := Parse([]byte(s))
		if !in.Quit || rest != nil {
			t.Errorf("Parse(%q) = %+v, %q; want quit", s, in, rest)
		}
	}
	if in, _ := Parse([]byte("abc")); in.Quit {
		t.Error("plain letters should not quit")
	}
}

func TestParseClicks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Click
	}{
		{"left press", "\x1b[<0;12;7M", []Click{{12, 7}}},
		{"release ignored", "\x1b[<0;12;7m", nil},
		{"right ignored", "\x1b[<2;12;7M", nil},
		{"motion ignored", "\x1b[<32;12;7M", nil},
		{"wheel ignored", "\x1b[<64;12;7M", nil},
		{"two clicks", "\x1b[<0;1;1M\x1b[<0;1;1m\x1b[<0;40;20M", []Click{{1, 1}, {40, 20}}},
		{"garbage params", "\x1b[<0;x;7M", nil},
		{"arrow skipped", "\x1b[A\x1b[<0;3;4M", []Click{{3, 4}}},
	}
	for _, tt := range tests {
		in, rest := Parse([]byte(tt.in))
		if rest != nil {
			t.Errorf("%s: leftover %q", tt.name, rest)
		}
		if len(in.Clicks) != len(tt.want) {
			t.Errorf("%s: Clicks = %v, want %v", tt.name, in.Clicks, tt.want)
			continue
		}
		for i := range tt.want {
			if in.Clicks[i] != tt.want[i] {
				t.Errorf("%s: Clicks[%d] = %v, want %v", tt.name, i, in.Clicks[i], tt.want[i])
			}
		}
		if in.Quit {
			t.Errorf("%s: sequence bytes read as quit", tt.name)
		}
	}
}

func TestParseKeepsPartialSequence(t *testing.T) {
	for _, s := range []string{"\x1b", "\x1b[", "\x1b[<0;5", "\x1b[1;5"} {
		_, rest := Parse([]byte("q" + s))
		if string(rest) != s {
			t.Errorf("Parse(%q) rest = %q, want %q", s, rest, s)
		}
	}
}

func TestParseUnterminatedMouseSequence(t *testing.T) {
	for _, s := range []string{"\x1b[<0;5q", "\x1b[<0;5qqqq", "\x1b[<q"} {
		in, rest := Parse([]byte(s))
		if !in.Quit {
			t.Errorf("Parse(%q) Quit = false, want true", s)
		}
		if rest != nil {
			t.Errorf("Parse(%q) rest = %q, want nil", s, rest)
		}
	}

	in, _ := Parse([]byte("\x1b[<0;5x\x1b[<0;8;2M"))
	if len(in.Clicks) != 1 || in.Clicks[0] != (Click{8, 2}) {
		t.Errorf("Clicks = %v, want [{8 2}] after an invalid sequence", in.Clicks)
	}
}

func TestParseDropsOverlongPending(t *testing.T) {
	long := "\x1b[<" + strings.Repeat("1;", maxPending)
	if _, rest := Parse([]byte(long)); rest != nil {
		t.Errorf("rest = %d bytes, want nil", len(rest))
	}

	s := &Stream{ch: make(chan byte, 256)}
	for _, b := range []byte(long) {
		s.ch <- b
	}
	ReadInput(s)
	if len(s.pending) != 0 {
		t.Errorf("pending = %d bytes, want 0", len(s.pending))
	}
	s.ch <- 'q'
	if in := ReadInput(s); !in.Quit {
		t.Error("quit lost after an overlong sequence")
	}
}

func TestReadInputJoinsSplitSequence(t *testing.T) {
	s := &Stream{ch: make(chan byte, 64)}
	for _, b := range []byte("\x1b[<0;9") {
		s.ch <- b
	}
	if in := ReadInput(s); len(in.Clicks) != 0 {
		t.Fatalf("Clicks = %v before the sequence completed", in.Clicks)
	}
	for _, b := range []byte(";3M") {
		s.ch <- b
	}
	in := ReadInput(s)
	if len(in.Clicks) != 1 || in.Clicks[0] != (Click{9, 3}) {
		t.Errorf("Clicks = %v, want [{9 3}]", in.Clicks)
	}
}

func TestStreamReportsClosed(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("q")))

	deadline := time.Now().Add(2 * time.Second)
	quit := false
	for time.Now().Before(deadline) {
		in := ReadInput(s)
		quit = quit || in.Quit
		if in.Closed {
			if !quit {
				t.Error("quit key lost before close")
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("stream never reported closed")
}
