package main

import (
	"errors"
	"fmt"
	"github.com/callebjorkell/lcdctl/internal/lcd"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	ErrUnknownCommand = errors.New("unrecognized command")
	ErrMissingState   = errors.New("one of --on or --off must be given")
)

type cli struct {
	app        *kingpin.Application
	debug      *bool
	configPath *string

	write   *kingpin.CmdClause
	message *string

	sensor      *kingpin.CmdClause
	humidity    *float64
	temperature *float64
	celsius     *bool

	clear *kingpin.CmdClause

	backlight    *kingpin.CmdClause
	backlightOn  *bool
	backlightOff *bool

	display    *kingpin.CmdClause
	displayOn  *bool
	displayOff *bool

	version *kingpin.CmdClause
}

func newCLI() *cli {
	c := &cli{}
	c.app = kingpin.New("lcdctl", "Control the 16x2 LCD on the PCF8574 I2C backpack")
	c.debug = c.app.Flag("debug", "Turn on debug logging.").Bool()
	c.configPath = c.app.Flag("config", "Path to the configuration file.").Default(defaultConfigPath).String()

	c.write = c.app.Command("write", "Write a message to the display, starting at the top left corner.")
	c.message = c.write.Flag("message", "Text to write. Use \\n to continue on the second line.").Required().String()

	c.sensor = c.app.Command("sensor", "Show a humidity and temperature reading.").Alias("data")
	c.humidity = c.sensor.Flag("humidity", "Relative humidity in percent.").Required().Float64()
	c.temperature = c.sensor.Flag("temperature", "Temperature in Fahrenheit.").Required().Float64()
	c.celsius = c.sensor.Flag("celsius", "The temperature is given in Celsius and will be converted.").Bool()

	c.clear = c.app.Command("clear", "Clear the display.")

	c.backlight = c.app.Command("backlight", "Turn the backlight on or off.")
	c.backlightOn = c.backlight.Flag("on", "Turn the backlight on.").Bool()
	c.backlightOff = c.backlight.Flag("off", "Turn the backlight off.").Bool()

	c.display = c.app.Command("display", "Turn the display on or off. The content is kept while off.")
	c.displayOn = c.display.Flag("on", "Turn the display on.").Bool()
	c.displayOff = c.display.Flag("off", "Turn the display off.").Bool()

	c.version = c.app.Command("version", "Show current version.")

	return c
}

type operation func(c *lcd.Controller) error

// resolve turns a parsed command into the call to make. Nothing here touches the display, so invalid invocations are
// rejected before the hardware is opened.
func (c *cli) resolve(cmd string, conf *Config) (operation, error) {
	switch cmd {
	case c.write.FullCommand():
		msg := *c.message
		return func(l *lcd.Controller) error {
			return l.Write(msg)
		}, nil
	case c.sensor.FullCommand():
		humidity, temperature := *c.humidity, *c.temperature
		if *c.celsius || conf.Celsius {
			temperature = lcd.CelsiusToFahrenheit(temperature)
		}
		return func(l *lcd.Controller) error {
			return l.WriteSensor(humidity, temperature)
		}, nil
	case c.clear.FullCommand():
		return func(l *lcd.Controller) error {
			return l.Clear()
		}, nil
	case c.backlight.FullCommand():
		on, err := toggle(*c.backlightOn, *c.backlightOff)
		if err != nil {
			return nil, fmt.Errorf("backlight: %w", err)
		}
		return func(l *lcd.Controller) error {
			return l.Backlight(on)
		}, nil
	case c.display.FullCommand():
		on, err := toggle(*c.displayOn, *c.displayOff)
		if err != nil {
			return nil, fmt.Errorf("display: %w", err)
		}
		return func(l *lcd.Controller) error {
			return l.Power(on)
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
}

// toggle picks the requested state. --on wins when both are given.
func toggle(on, off bool) (bool, error) {
	switch {
	case on:
		return true, nil
	case off:
		return false, nil
	}
	return false, ErrMissingState
}
