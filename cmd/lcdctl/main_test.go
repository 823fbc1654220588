package main

import (
	"bytes"
	"errors"
	"github.com/callebjorkell/lcdctl/internal/lcd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

type fakeHardware struct {
	recorder *lcd.Recorder
	opened   bool
	bus      string
}

func (f *fakeHardware) open(bus string) (lcd.Display, error) {
	f.opened = true
	f.bus = bus
	return f.recorder, nil
}

func runWith(t *testing.T, args ...string) (*fakeHardware, string, error) {
	t.Helper()
	hw := &fakeHardware{recorder: &lcd.Recorder{}}
	out := &bytes.Buffer{}
	args = append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, args...)
	err := run(args, hw.open, out)
	return hw, out.String(), err
}

func TestRun(t *testing.T) {
	tt := []struct {
		name  string
		args  []string
		calls []string
	}{
		{
			"write",
			[]string{"write", "--message", "Hi"},
			[]string{`home`, `write "Hi"`},
		},
		{
			"sensor",
			[]string{"sensor", "--humidity", "45.0", "--temperature", "72.5"},
			[]string{`home`, `write "Temp:     72.50F"`, `move L2 0`, `write "Humidity: 45.00%"`},
		},
		{
			"data alias",
			[]string{"data", "--humidity", "45", "--temperature", "72.5"},
			[]string{`home`, `write "Temp:     72.50F"`, `move L2 0`, `write "Humidity: 45.00%"`},
		},
		{
			"sensor in celsius",
			[]string{"sensor", "--humidity", "50", "--temperature", "20", "--celsius"},
			[]string{`home`, `write "Temp:     68.00F"`, `move L2 0`, `write "Humidity: 50.00%"`},
		},
		{
			"clear",
			[]string{"clear"},
			[]string{"clear"},
		},
		{
			"backlight on",
			[]string{"backlight", "--on"},
			[]string{"backlight true"},
		},
		{
			"backlight off",
			[]string{"backlight", "--off"},
			[]string{"backlight false"},
		},
		{
			"backlight with both states prefers on",
			[]string{"backlight", "--on", "--off"},
			[]string{"backlight true"},
		},
		{
			"display off",
			[]string{"display", "--off"},
			[]string{"power false"},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			hw, out, err := runWith(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.calls, hw.recorder.Calls)
			assert.True(t, hw.recorder.Closed)
			assert.Equal(t, "Ran successfully!\n", out)
		})
	}
}

func TestRunRejectsBeforeHardware(t *testing.T) {
	tt := []struct {
		name string
		args []string
		err  error
	}{
		{"unknown command", []string{"blink"}, nil},
		{"write without message", []string{"write"}, nil},
		{"sensor without temperature", []string{"sensor", "--humidity", "45"}, nil},
		{"sensor with bad number", []string{"sensor", "--humidity", "wet", "--temperature", "72"}, nil},
		{"backlight without state", []string{"backlight"}, ErrMissingState},
		{"display without state", []string{"display"}, ErrMissingState},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			hw, out, err := runWith(t, tc.args...)
			require.Error(t, err)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			}
			assert.False(t, hw.opened)
			assert.True(t, hw.recorder.NoInteraction())
			assert.Empty(t, out)
		})
	}
}

func TestRunHardwareFailure(t *testing.T) {
	fail := errors.New("i2c: remote i/o error")
	hw := &fakeHardware{recorder: &lcd.Recorder{FailOn: "clear", Err: fail}}
	out := &bytes.Buffer{}

	err := run([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "clear"}, hw.open, out)
	assert.ErrorIs(t, err, fail)
	assert.True(t, hw.recorder.Closed)
	assert.Empty(t, out.String())
}

func TestRunOpenFailure(t *testing.T) {
	fail := errors.New("no i2c bus found")
	open := func(string) (lcd.Display, error) {
		return nil, fail
	}

	err := run([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "clear"}, open, &bytes.Buffer{})
	assert.ErrorIs(t, err, fail)
}

func TestRunUsesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lcdctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bus: /dev/i2c-1\ncelsius: true\n"), 0o600))

	hw := &fakeHardware{recorder: &lcd.Recorder{}}
	err := run([]string{"--config", path, "sensor", "--humidity", "45", "--temperature", "0"}, hw.open, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "/dev/i2c-1", hw.bus)
	assert.Contains(t, hw.recorder.Calls, `write "Temp:     32.00F"`)
}

func TestRunVersion(t *testing.T) {
	hw, out, err := runWith(t, "version")
	require.NoError(t, err)
	assert.False(t, hw.opened)
	assert.Equal(t, "lcdctl: dev\n", out)
}

func TestResolveUnknownCommand(t *testing.T) {
	c := newCLI()
	_, err := c.resolve("blink", &Config{})
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestToggle(t *testing.T) {
	tt := []struct {
		name    string
		on, off bool
		result  bool
		err     error
	}{
		{"on", true, false, true, nil},
		{"off", false, true, false, nil},
		{"both", true, true, true, nil},
		{"neither", false, false, false, ErrMissingState},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			on, err := toggle(tc.on, tc.off)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.result, on)
		})
	}
}
