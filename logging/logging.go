// Package logging contains the singleton logger that we use globally.
// It has little else since every other package depends on it.
package logging

import (
	"os"

	"gopkg.in/op/go-logging.v1"
)

// Log is the shared logger.
var Log = logging.MustGetLogger("scribe")

func init() {
	Init("WARNING")
}

// Init sets up a stderr backend at the given level. An unknown level name
// falls back to WARNING.
func Init(level string) {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.WARNING
	}
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter("%{time:15:04:05.000} %{level:7s}: %{message}"))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
}
