package gpio

import "time"

// Line is one raw digital input as the hardware exposes it. Read returns the
// electrical level: true = high.
type Line interface {
	Read() bool
}

// PinReader is a debounce-aware digital input source. Readers that need
// periodic sampling (bounce filtering) do it in Update, called once per tick.
type PinReader interface {
	Read() bool
	Initialize()
	Update()
}

// DirectReader reads a direct MCU pin through a bounce filter: the reported
// level only follows the raw line once it has held steady for the debounce
// interval.
type DirectReader struct {
	line     Line
	interval time.Duration

	initialized bool
	stable      bool
	candidate   bool
	lastFlip    time.Time

	now func() time.Time
}

// NewDirectReader wraps a raw line with the default bounce interval.
func NewDirectReader(line Line) *DirectReader {
	return &DirectReader{
		line:     line,
		interval: DebounceInterval,
		now:      time.Now,
	}
}

func (r *DirectReader) Initialize() {
	if r.initialized {
		return
	}
	level := r.line.Read()
	r.stable = level
	r.candidate = level
	r.lastFlip = r.now()
	r.initialized = true
}

// Update samples the raw line. A level change restarts the stability window;
// the stable value is promoted once the window has fully elapsed.
func (r *DirectReader) Update() {
	if !r.initialized {
		return
	}

	raw := r.line.Read()
	if raw != r.candidate {
		r.candidate = raw
		r.lastFlip = r.now()
		return
	}
	if raw != r.stable && r.now().Sub(r.lastFlip) >= r.interval {
		r.stable = raw
	}
}

func (r *DirectReader) Read() bool {
	if !r.initialized {
		r.Initialize()
	}
	return r.stable
}

// MuxReader reads one multiplexer channel. Debouncing is the multiplexer's
// settle window; there is no per-reader state to update.
type MuxReader struct {
	channel     uint8
	mux         *Multiplexer
	initialized bool
}

// NewMuxReader binds a channel on a shared multiplexer.
func NewMuxReader(channel uint8, mux *Multiplexer) *MuxReader {
	return &MuxReader{channel: channel, mux: mux}
}

func (r *MuxReader) Initialize() {
	r.initialized = true
}

func (r *MuxReader) Update() {}

func (r *MuxReader) Read() bool {
	if !r.initialized {
		r.Initialize()
	}
	return r.mux.ReadChannel(r.channel)
}
