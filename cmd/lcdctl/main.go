package main

import (
	"fmt"
	"github.com/callebjorkell/lcdctl/internal/lcd"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

type colorFormatter struct {
	log.TextFormatter
}

func (f *colorFormatter) Format(entry *log.Entry) ([]byte, error) {
	var levelColor int
	switch entry.Level {
	case log.DebugLevel, log.TraceLevel:
		levelColor = 90 // dark grey
	case log.WarnLevel:
		levelColor = 33 // yellow
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		levelColor = 91 // bright red
	default:
		levelColor = 39 // default
	}
	return []byte(fmt.Sprintf("\x1b[%dm%s\x1b[0m\n", levelColor, entry.Message)), nil
}

type opener func(bus string) (lcd.Display, error)

func main() {
	log.SetFormatter(&colorFormatter{})

	if err := run(os.Args[1:], lcd.Open, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, open opener, out io.Writer) error {
	c := newCLI()
	cmd, err := c.app.Parse(args)
	if err != nil {
		return fmt.Errorf("%v: Try --help", err)
	}

	if *c.debug {
		log.Info("Enabling debug output...")
		log.SetLevel(log.DebugLevel)
	}

	if cmd == c.version.FullCommand() {
		showVersion(out)
		return nil
	}

	conf, err := readConfig(*c.configPath)
	if err != nil {
		return err
	}

	act, err := c.resolve(cmd, conf)
	if err != nil {
		return err
	}

	d, err := open(conf.Bus)
	if err != nil {
		return err
	}
	ctl := lcd.NewController(d)
	defer func() {
		if err := ctl.Close(); err != nil {
			log.Warn("Unable to close display: ", err)
		}
	}()

	if err := act(ctl); err != nil {
		return err
	}

	fmt.Fprintln(out, "Ran successfully!")
	return nil
}
