package lcd

import "errors"

// Line is a row on the display, counted from the top.
type Line int

func (l Line) String() string {
	switch l {
	case Line1:
		return "L1"
	case Line2:
		return "L2"
	}
	return "N/A"
}

const (
	Line1 Line = 0
	Line2 Line = 1

	// DeviceType is the I/O expander on the backpack.
	DeviceType = "PCF8574"
	// Address is the I2C address the backpack is strapped to. Other addresses are not supported.
	Address uint16 = 0x27

	Rows    = 2
	Columns = 16
)

var ErrClosed = errors.New("display is closed")

// Display is the set of driver calls the controller needs. Implementations talk to the actual hardware (pi build) or
// just print what would have happened.
type Display interface {
	// Home moves the cursor to the first column of the first line.
	Home() error
	// MoveTo moves the cursor to the given column (counted from 0) of a line.
	MoveTo(l Line, col int) error
	WriteString(s string) error
	Clear() error
	Backlight(on bool) error
	// Power turns the display itself on or off. Content is kept while off.
	Power(on bool) error
	Close() error
}
