package gpio

import (
	"testing"
	"time"
)

func TestPinValid(t *testing.T) {
	tests := []struct {
		name string
		pin  Pin
		want bool
	}{
		{"direct pin in range", MCUPin(41), true},
		{"direct pin at ceiling", MCUPin(99), true},
		{"direct pin above ceiling", MCUPin(100), false},
		{"mux channel in range", MuxPin(15), true},
		{"mux channel above range", MuxPin(16), false},
	}
	for _, tt := range tests {
		if got := tt.pin.Valid(); got != tt.want {
			t.Errorf("%s: Valid() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDirectReaderFiltersBounce(t *testing.T) {
	line := NewSimLine()
	r := NewDirectReader(line)

	now := time.Now()
	r.now = func() time.Time { return now }
	r.Initialize()

	if !r.Read() {
		t.Fatal("initial level should be high (pull-up idle)")
	}

	// Line drops; within the interval the stable value must not move.
	line.Set(false)
	r.Update()
	now = now.Add(DebounceInterval / 2)
	r.Update()
	if !r.Read() {
		t.Error("level changed before the debounce interval elapsed")
	}

	// Hold past the interval: the new level is promoted.
	now = now.Add(DebounceInterval)
	r.Update()
	if r.Read() {
		t.Error("level not promoted after a full debounce interval")
	}
}

func TestDirectReaderGlitchRestartsWindow(t *testing.T) {
	line := NewSimLine()
	r := NewDirectReader(line)

	now := time.Now()
	r.now = func() time.Time { return now }
	r.Initialize()

	line.Set(false)
	r.Update()
	now = now.Add(DebounceInterval - time.Millisecond)

	// Glitch back high just before promotion.
	line.Set(true)
	r.Update()
	line.Set(false)
	now = now.Add(time.Millisecond)
	r.Update()

	if !r.Read() {
		t.Error("glitch did not restart the stability window")
	}
}

func TestMultiplexerRoutesChannels(t *testing.T) {
	port := NewSimMuxPort()
	mux := NewMultiplexer(port)
	mux.now = func() time.Time { return time.Now() }
	mux.sleep = func(time.Duration) {}

	port.Channel(3).Set(false)

	if mux.ReadChannel(3) {
		t.Error("channel 3 should read low")
	}
	if !mux.ReadChannel(4) {
		t.Error("channel 4 should read high")
	}
	// Same channel again, no switch in between.
	if !mux.ReadChannel(4) {
		t.Error("repeated read of channel 4 should stay high")
	}
}

func TestMultiplexerSettleWait(t *testing.T) {
	port := NewSimMuxPort()
	mux := NewMultiplexer(port)

	now := time.Now()
	var slept time.Duration
	mux.now = func() time.Time { return now }
	mux.sleep = func(d time.Duration) { slept += d }

	mux.ReadChannel(5) // switch away from 0, read immediately
	if slept < SettleTime {
		t.Errorf("read after switch slept %v, want at least %v", slept, SettleTime)
	}

	// Once settled, repeat reads do not wait again.
	slept = 0
	mux.ReadChannel(5)
	if slept != 0 {
		t.Errorf("settled read slept %v, want 0", slept)
	}
}

type recordingMuxPort struct {
	*SimMuxPort
	selects []uint8
}

func (p *recordingMuxPort) Select(channel uint8) {
	p.selects = append(p.selects, channel)
	p.SimMuxPort.Select(channel)
}

func TestMultiplexerDrivesInitialChannel(t *testing.T) {
	port := &recordingMuxPort{SimMuxPort: NewSimMuxPort()}
	mux := NewMultiplexer(port)

	if len(port.selects) != 1 || port.selects[0] != 0 {
		t.Fatalf("construction drove selects %v, want [0]", port.selects)
	}

	// The fresh selection is not trusted until the settle window passes.
	var slept time.Duration
	mux.sleep = func(d time.Duration) { slept += d }
	mux.now = func() time.Time { return mux.lastSwitch }

	mux.ReadChannel(0)
	if slept < SettleTime {
		t.Errorf("first read slept %v, want at least %v", slept, SettleTime)
	}
}

func TestMultiplexerIgnoresInvalidChannel(t *testing.T) {
	port := NewSimMuxPort()
	mux := NewMultiplexer(port)
	mux.sleep = func(time.Duration) {}

	port.Channel(0).Set(false)
	if got := mux.ReadChannel(200); got {
		t.Error("out-of-range channel should fall back to the current channel (0, low)")
	}
}
