package gpio

import "sync/atomic"

// SimLine is a settable Line for bench rigs and tests. With pull-up wiring
// the idle level is high, so new lines start high (released).
type SimLine struct {
	level atomic.Bool
}

// NewSimLine returns a line idling at the pull-up level.
func NewSimLine() *SimLine {
	l := &SimLine{}
	l.level.Store(true)
	return l
}

// Set drives the line: true = high (released under pull-up wiring),
// false = low (pressed).
func (l *SimLine) Set(high bool) {
	l.level.Store(high)
}

func (l *SimLine) Read() bool {
	return l.level.Load()
}

// SimMuxPort is a MuxPort backed by 16 settable channel levels.
type SimMuxPort struct {
	channels [MaxChannels]*SimLine
	selected atomic.Uint32
}

// NewSimMuxPort returns a port with every channel at the pull-up level.
func NewSimMuxPort() *SimMuxPort {
	p := &SimMuxPort{}
	for i := range p.channels {
		p.channels[i] = NewSimLine()
	}
	return p
}

// Channel exposes one channel line so a rig can drive it directly.
func (p *SimMuxPort) Channel(n uint8) *SimLine {
	return p.channels[n%MaxChannels]
}

func (p *SimMuxPort) Select(channel uint8) {
	p.selected.Store(uint32(channel % MaxChannels))
}

func (p *SimMuxPort) Signal() bool {
	return p.channels[p.selected.Load()].Read()
}
