// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package profiler records per-frame timing events on a capture or preview
// loop and writes them out as a plain text video log.
//
// Usage:
//
//	prof := profiler.New(profiler.WithLogger(log))
//	for frame := range frames {
//	    prof.BeginNextFrame()
//	    nv12.MirrorPlanes(frame, preview)
//	    prof.AddFrameEvent("mirror")
//	    luma := nv12.ComputeLuminance(preview.Y)
//	    prof.AddFrameEvent("luminance")
//	}
//	prof.WriteVideoLog(os.Stdout)
package profiler

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMaxFrames is how many frames a profiler keeps: ten seconds at 30fps.
const DefaultMaxFrames = 300

// Event is one named point in time within a frame.
type Event struct {
	Desc   string
	Offset time.Duration // since the frame began
}

// FrameRecord is the timing history of one frame.
type FrameRecord struct {
	Number uint32
	Start  time.Time
	// Duration runs until the next frame began, or until the last event
	// while the frame is still open.
	Duration time.Duration
	Events   []Event
}

// Summary aggregates the retained frames.
type Summary struct {
	Frames       int
	Events       int
	MeanDuration time.Duration
	MaxDuration  time.Duration
}

// Profiler collects frame records. It is safe for concurrent use.
type Profiler struct {
	mu        sync.Mutex
	log       *zap.Logger
	now       func() time.Time
	maxFrames int

	session uuid.UUID
	frames  []FrameRecord
	open    bool
	next    uint32
}

// Option configures a Profiler.
type Option func(*Profiler)

// WithLogger sends frame boundaries and events to log at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(p *Profiler) {
		if log != nil {
			p.log = log
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}

// WithMaxFrames bounds the number of retained frames; older frames are
// dropped first.
func WithMaxFrames(n int) Option {
	return func(p *Profiler) {
		if n > 0 {
			p.maxFrames = n
		}
	}
}

// New creates a Profiler with a fresh session id.
func New(opts ...Option) *Profiler {
	p := &Profiler{
		log:       zap.NewNop(),
		now:       time.Now,
		maxFrames: DefaultMaxFrames,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.session = uuid.New()
	return p
}

var shared = sync.OnceValue(func() *Profiler { return New() })

// Shared returns the process-wide profiler.
func Shared() *Profiler {
	return shared()
}

// Session returns the id of the current recording session.
func (p *Profiler) Session() uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session
}

// Reset drops every frame and starts a new session.
func (p *Profiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frames = p.frames[:0]
	p.open = false
	p.next = 0
	p.session = uuid.New()
	p.log.Debug("profiler reset", zap.Stringer("session", p.session))
}

// BeginNextFrame starts the frame after the last one begun.
func (p *Profiler) BeginNextFrame() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.begin(p.next)
}

// BeginFrame starts frame number n, closing the previous frame.
func (p *Profiler) BeginFrame(n uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.begin(n)
}

func (p *Profiler) begin(n uint32) {
	now := p.now()
	if p.open {
		last := &p.frames[len(p.frames)-1]
		last.Duration = now.Sub(last.Start)
		p.log.Debug("frame done",
			zap.Stringer("session", p.session),
			zap.Uint32("frame", last.Number),
			zap.Duration("duration", last.Duration))
	}
	if len(p.frames) == p.maxFrames {
		copy(p.frames, p.frames[1:])
		p.frames = p.frames[:len(p.frames)-1]
	}
	p.frames = append(p.frames, FrameRecord{Number: n, Start: now})
	p.open = true
	p.next = n + 1
}

// AddFrameEvent records desc at the current time in the open frame. An
// event before any frame has begun opens the next frame.
func (p *Profiler) AddFrameEvent(desc string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		p.begin(p.next)
	}
	cur := &p.frames[len(p.frames)-1]
	off := p.now().Sub(cur.Start)
	cur.Events = append(cur.Events, Event{Desc: desc, Offset: off})
	cur.Duration = off
	p.log.Debug("frame event",
		zap.Uint32("frame", cur.Number),
		zap.String("event", desc),
		zap.Duration("offset", off))
}

// Frames returns a copy of the retained frames, oldest first.
func (p *Profiler) Frames() []FrameRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]FrameRecord, len(p.frames))
	for i, f := range p.frames {
		out[i] = f
		out[i].Events = append([]Event(nil), f.Events...)
	}
	return out
}

// Summary aggregates the retained frames.
func (p *Profiler) Summary() Summary {
	p.mu.Lock()
	defer p.mu.Unlock()
	var s Summary
	var total time.Duration
	for _, f := range p.frames {
		s.Frames++
		s.Events += len(f.Events)
		total += f.Duration
		s.MaxDuration = max(s.MaxDuration, f.Duration)
	}
	if s.Frames > 0 {
		s.MeanDuration = total / time.Duration(s.Frames)
	}
	return s
}

// WriteVideoLog writes the retained frames to w, one line per frame and one
// indented line per event:
//
//	session 6f1c...
//	frame 12 start 15:04:05.000000 duration 4.210ms
//	  +1.032ms mirror
func (p *Profiler) WriteVideoLog(w io.Writer) error {
	frames := p.Frames()
	session := p.Session()

	if _, err := fmt.Fprintf(w, "session %s\n", session); err != nil {
		return errors.Wrap(err, "write video log")
	}
	for _, f := range frames {
		if _, err := fmt.Fprintf(w, "frame %d start %s duration %s\n",
			f.Number, f.Start.Format("15:04:05.000000"), formatMillis(f.Duration)); err != nil {
			return errors.Wrapf(err, "write video log frame %d", f.Number)
		}
		for _, e := range f.Events {
			if _, err := fmt.Fprintf(w, "  +%s %s\n", formatMillis(e.Offset), e.Desc); err != nil {
				return errors.Wrapf(err, "write video log frame %d", f.Number)
			}
		}
	}
	return nil
}

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.3fms", float64(d)/float64(time.Millisecond))
}
