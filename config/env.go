package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/automoto/maverick2d/shared/flight"
	"github.com/automoto/maverick2d/shared/protocol"
	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvHost        = "MAVERICK_HOST"
	EnvPort        = "MAVERICK_PORT"
	EnvFormat      = "MAVERICK_FORMAT"
	EnvStepOrder   = "MAVERICK_STEP_ORDER"
	EnvSendTimeout = "MAVERICK_SEND_TIMEOUT"
	EnvOffline     = "MAVERICK_OFFLINE"
	EnvLogFile     = "MAVERICK_LOG_FILE"
	EnvLogDebug    = "MAVERICK_LOG_DEBUG"
)

// LoadDotEnv loads variables from the given files into the process
// environment. Missing files are not an error; variables already set win.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides the global configuration from the environment. Every
// malformed value is reported; well-formed ones are still applied.
func ApplyEnv() error {
	var errs []error

	if v, ok := lookup(EnvHost); ok {
		Net.Host = v
	}
	if v, ok := lookup(EnvPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			errs = append(errs, fmt.Errorf("%s: invalid port %q", EnvPort, v))
		} else {
			Net.Port = port
		}
	}
	if v, ok := lookup(EnvFormat); ok {
		f, err := protocol.ParseFormat(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvFormat, err))
		} else {
			Net.Format = f
		}
	}
	if v, ok := lookup(EnvStepOrder); ok {
		order, valid := flight.ParseStepOrder(v)
		if !valid {
			errs = append(errs, fmt.Errorf("%s: unknown step order %q", EnvStepOrder, v))
		} else {
			Flight.StepOrder = order
		}
	}
	if v, ok := lookup(EnvSendTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			errs = append(errs, fmt.Errorf("%s: invalid duration %q", EnvSendTimeout, v))
		} else {
			Net.SendTimeout = d
		}
	}
	if v, ok := lookup(EnvOffline); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvOffline, err))
		} else {
			Net.Offline = b
		}
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		Log.File = strings.TrimSpace(v) // empty disables the file sink
	}
	if v, ok := lookup(EnvLogDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvLogDebug, err))
		} else {
			Log.Debug = b
		}
	}

	return errors.Join(errs...)
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
