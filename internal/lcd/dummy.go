//go:build !pi

package lcd

import (
	"fmt"
)

type dummy struct {
	closed bool
}

// Open returns a display that only prints what it is asked to do. Build with the pi tag to drive the real hardware.
func Open(bus string) (Display, error) {
	fmt.Printf("Starting the LCD (%s at 0x%02x on bus %q)\n", DeviceType, Address, bus)
	return &dummy{}, nil
}

func (d *dummy) Home() error {
	return d.print("Cursor home")
}

func (d *dummy) MoveTo(l Line, col int) error {
	return d.print(fmt.Sprintf("Cursor to line %v, column %d", l, col))
}

func (d *dummy) WriteString(s string) error {
	return d.print(fmt.Sprintf("Write %q", s))
}

func (d *dummy) Clear() error {
	return d.print("Clear display")
}

func (d *dummy) Backlight(on bool) error {
	return d.print(fmt.Sprintf("Backlight enabled: %v", on))
}

func (d *dummy) Power(on bool) error {
	return d.print(fmt.Sprintf("Display on: %v", on))
}

func (d *dummy) Close() error {
	d.closed = true
	return nil
}

func (d *dummy) print(msg string) error {
	if d.closed {
		return ErrClosed
	}
	fmt.Println(msg)
	return nil
}
