package lcd

import (
	"fmt"
	"strings"
)

// Recorder is a Display that keeps track of every call made to it. If FailOn is set, the call with that name returns
// Err instead of being recorded.
type Recorder struct {
	Calls  []string
	FailOn string
	Err    error
	Closed bool
}

func (r *Recorder) Home() error {
	return r.record("home")
}

func (r *Recorder) MoveTo(l Line, col int) error {
	return r.record("move", l.String(), fmt.Sprint(col))
}

func (r *Recorder) WriteString(s string) error {
	return r.record("write", fmt.Sprintf("%q", s))
}

func (r *Recorder) Clear() error {
	return r.record("clear")
}

func (r *Recorder) Backlight(on bool) error {
	return r.record("backlight", fmt.Sprint(on))
}

func (r *Recorder) Power(on bool) error {
	return r.record("power", fmt.Sprint(on))
}

func (r *Recorder) Close() error {
	r.Closed = true
	return nil
}

// NoInteraction is true if no hardware call has reached the recorder.
func (r *Recorder) NoInteraction() bool {
	return len(r.Calls) == 0
}

func (r *Recorder) record(name string, args ...string) error {
	if r.Closed {
		return ErrClosed
	}
	if r.FailOn == name {
		return r.Err
	}
	r.Calls = append(r.Calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return nil
}
