//go:build debug
// +build debug

package dbg

import (
	"fmt"
	"log"
	"os"
)

type debugLogger struct {
	logger *log.Logger
}

func init() {
	backend = &debugLogger{logger: log.New(os.Stderr, "", log.Lshortfile)}
}

func (d *debugLogger) Printf(format string, a ...interface{}) {
	d.logger.Output(3, fmt.Sprintf(format, a...))
}

func (d *debugLogger) Println(a ...interface{}) {
	d.logger.Output(3, fmt.Sprintln(a...))
}
