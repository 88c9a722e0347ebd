package gpio

import "time"

// MuxPort is the hardware face of a CD74HC4067-style multiplexer: four select
// lines collapsed into Select, and one shared signal line.
type MuxPort interface {
	// Select routes the given channel (0-15) to the signal line.
	Select(channel uint8)
	// Signal reads the shared output line's electrical level.
	Signal() bool
}

// Multiplexer adds the channel-settle discipline on top of a MuxPort: after
// switching channels the signal line is not trusted until the settle window
// has passed. Reads inside the window block for the remainder, which is a
// handful of microseconds on the reference hardware.
type Multiplexer struct {
	port MuxPort

	current    uint8
	lastSwitch time.Time
	ready      bool

	now   func() time.Time
	sleep func(time.Duration)
}

// NewMultiplexer drives the port to channel 0 rather than assuming it; the
// first read waits out the settle window.
func NewMultiplexer(port MuxPort) *Multiplexer {
	m := &Multiplexer{
		port:  port,
		now:   time.Now,
		sleep: time.Sleep,
	}
	m.port.Select(0)
	m.lastSwitch = m.now()
	return m
}

func (m *Multiplexer) selectChannel(channel uint8) {
	if channel >= MaxChannels {
		return
	}
	if channel == m.current && m.ready {
		return
	}
	if channel != m.current {
		m.port.Select(channel)
		m.current = channel
		m.lastSwitch = m.now()
		m.ready = false
	}
}

func (m *Multiplexer) readSignal() bool {
	if !m.ready {
		elapsed := m.now().Sub(m.lastSwitch)
		if elapsed < SettleTime {
			m.sleep(SettleTime - elapsed)
		}
		m.ready = true
	}
	return m.port.Signal()
}

// ReadChannel selects the channel, waits out any remaining settle time and
// samples the signal line.
func (m *Multiplexer) ReadChannel(channel uint8) bool {
	m.selectChannel(channel)
	return m.readSignal()
}
