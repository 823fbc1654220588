package lcd

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"strings"
)

const sensorTemplate = "Temp:     %.2fF\r\nHumidity: %.2f%%"

// FormatSensor renders a humidity (%) and temperature (°F) reading as two display lines.
func FormatSensor(humidity, temperature float64) string {
	return fmt.Sprintf(sensorTemplate, temperature, humidity)
}

func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// Controller runs the supported operations against a Display.
type Controller struct {
	display Display
}

func NewController(d Display) *Controller {
	return &Controller{display: d}
}

// Write resets the cursor and writes msg from the top left corner, the way RPLCD's write_string does: a \r returns to
// the first column, a \n moves down a line keeping the column, and text reaching the end of a line continues on the
// next one. Writing past the last line wraps around to the first. A \r or \n directly after such an automatic line
// break is ignored, so a full 16 character line can still be ended with \r\n.
func (c *Controller) Write(msg string) error {
	log.Debugf("Writing %q", msg)
	if err := c.display.Home(); err != nil {
		return fmt.Errorf("unable to reset cursor: %w", err)
	}

	var (
		pending   strings.Builder
		row, col  int
		moved     bool
		lineBreak bool
	)
	flush := func() error {
		if pending.Len() == 0 {
			return nil
		}
		defer pending.Reset()
		if err := c.display.WriteString(pending.String()); err != nil {
			return fmt.Errorf("unable to write to display: %w", err)
		}
		return nil
	}

	for _, r := range msg {
		switch r {
		case '\n':
			if !lineBreak {
				row = (row + 1) % Rows
				moved = true
			}
		case '\r':
			if !lineBreak {
				col = 0
				moved = true
			}
		default:
			if moved {
				if err := flush(); err != nil {
					return err
				}
				if err := c.display.MoveTo(Line(row), col); err != nil {
					return fmt.Errorf("unable to move cursor to %v: %w", Line(row), err)
				}
				moved = false
			}
			pending.WriteRune(r)
			lineBreak = false
			col++
			if col >= Columns {
				if err := flush(); err != nil {
					return err
				}
				row, col = (row+1)%Rows, 0
				moved, lineBreak = true, true
			}
		}
	}
	return flush()
}

func (c *Controller) WriteSensor(humidity, temperature float64) error {
	return c.Write(FormatSensor(humidity, temperature))
}

func (c *Controller) Clear() error {
	log.Debug("Clearing display")
	if err := c.display.Clear(); err != nil {
		return fmt.Errorf("unable to clear display: %w", err)
	}
	return nil
}

func (c *Controller) Backlight(on bool) error {
	log.Debugf("Setting backlight enabled to %v", on)
	if err := c.display.Backlight(on); err != nil {
		return fmt.Errorf("unable to set backlight: %w", err)
	}
	return nil
}

func (c *Controller) Power(on bool) error {
	log.Debugf("Setting display on to %v", on)
	if err := c.display.Power(on); err != nil {
		return fmt.Errorf("unable to switch display: %w", err)
	}
	return nil
}

func (c *Controller) Close() error {
	return c.display.Close()
}
