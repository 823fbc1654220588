//go:build pi

package lcd

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/hd44780"
	"periph.io/x/devices/v3/pcf857x"
	"periph.io/x/host/v3"
	"time"
)

// Expander pins of the PCF8574 backpack.
const (
	registerSelectionPin = 0
	readWritePin         = 1
	clockEdgePin         = 2
	backlightPin         = 3
	data4Pin             = 4
	data5Pin             = 5
	data6Pin             = 6
	data7Pin             = 7

	command = gpio.Low

	clearDisplay   = 0x01
	displayControl = 0x08
	displayOnBit   = 0x04

	signalPulse = 500000 * time.Nanosecond
	signalDelay = 500000 * time.Nanosecond
	clearDelay  = 2 * time.Millisecond
)

type backpack struct {
	bus               i2c.BusCloser
	dev               *hd44780.Dev
	registerSelection gpio.PinOut
	clockEdge         gpio.PinOut
	backlight         gpio.PinOut
	dataPins          [4]gpio.PinOut
}

// Open initializes periph and connects to the PCF8574 backpack on the given I2C bus. An empty bus name picks the
// first available bus.
func Open(bus string) (Display, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("unable to initialize periph: %w", err)
	}

	log.Debugf("Opening I2C bus %q", bus)
	b, err := i2creg.Open(bus)
	if err != nil {
		return nil, fmt.Errorf("unable to open i2c bus %q: %w", bus, err)
	}

	log.Infof("Initializing %s LCD at 0x%02x", DeviceType, Address)
	pcf, err := pcf857x.New(b, Address, pcf857x.PCF8574)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("unable to open %s: %w", DeviceType, err)
	}

	// R/W is wired on the backpack. Only writes are used.
	if err := pcf.Pins[readWritePin].Out(gpio.Low); err != nil {
		b.Close()
		return nil, fmt.Errorf("unable to set write mode: %w", err)
	}

	p := &backpack{
		bus:               b,
		registerSelection: pcf.Pins[registerSelectionPin],
		clockEdge:         pcf.Pins[clockEdgePin],
		backlight:         pcf.Pins[backlightPin],
	}
	p.dataPins[0] = pcf.Pins[data4Pin]
	p.dataPins[1] = pcf.Pins[data5Pin]
	p.dataPins[2] = pcf.Pins[data6Pin]
	p.dataPins[3] = pcf.Pins[data7Pin]

	p.dev, err = hd44780.New(p.dataPins[:], p.registerSelection, p.clockEdge)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("unable to initialize LCD: %w", err)
	}

	return p, nil
}

func (b *backpack) Home() error {
	return b.dev.SetCursor(0, 0)
}

func (b *backpack) MoveTo(l Line, col int) error {
	return b.dev.SetCursor(uint8(l), uint8(col))
}

func (b *backpack) WriteString(s string) error {
	return b.dev.Print(s)
}

func (b *backpack) Clear() error {
	if err := b.sendByte(clearDisplay, command); err != nil {
		return err
	}
	time.Sleep(clearDelay)
	return nil
}

func (b *backpack) Backlight(on bool) error {
	return b.backlight.Out(gpio.Level(on))
}

func (b *backpack) Power(on bool) error {
	bits := byte(displayControl)
	if on {
		bits |= displayOnBit
	}
	return b.sendByte(bits, command)
}

func (b *backpack) Close() error {
	return b.bus.Close()
}

// sendByte writes a full byte in 4-bit mode, high nibble first.
func (b *backpack) sendByte(bits byte, mode gpio.Level) error {
	if err := b.registerSelection.Out(mode); err != nil {
		return err
	}
	if err := b.pulseNibble(bits >> 4); err != nil {
		return err
	}
	return b.pulseNibble(bits & 0x0f)
}

func (b *backpack) pulseNibble(bits byte) error {
	for i, pin := range b.dataPins {
		if err := pin.Out(gpio.Level(bits&(1<<uint(i)) != 0)); err != nil {
			return err
		}
	}
	time.Sleep(signalDelay)
	if err := b.clockEdge.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(signalPulse)
	if err := b.clockEdge.Out(gpio.Low); err != nil {
		return err
	}
	time.Sleep(signalDelay)
	return nil
}
