// Package config holds every tunable of the emulator. Defaults match the
// reference hardware; a yaml file can override any of them, which also
// lets tests run the state machines at compressed time scales.
package config

import (
	"os"
	"time"

	"github.com/go-yaml/yaml"
)

type Config struct {
	// Tick period of the interrupt context, in nanoseconds when set
	// from yaml. Two ticks produce one full refresh of the multiplexed
	// two-digit display.
	TickPeriod time.Duration `yaml:"TickPeriod"`

	// Door animation phase lengths, in ticks. Each of the three phases
	// (closed hold, opening hold, closing hold) runs this long.
	PhaseHoldTicks int `yaml:"PhaseHoldTicks"`

	// The door tone is a short pulse within the opening hold.
	DoorToneTicks int `yaml:"DoorToneTicks"`

	// Length of the request-acknowledged tone.
	AckToneTicks int `yaml:"AckToneTicks"`

	// Ticks between cab sub-steps for the two speed settings.
	FastStepTicks int `yaml:"FastStepTicks"`
	SlowStepTicks int `yaml:"SlowStepTicks"`

	// Tone generator frequency presets, Hz.
	AckToneHz  int `yaml:"AckToneHz"`
	DoorToneHz int `yaml:"DoorToneHz"`

	// Mirror of all console logs. Empty disables the mirror.
	LogFile string `yaml:"LogFile"`
}

func Default() Config {
	return Config{
		TickPeriod:     500 * time.Microsecond,
		PhaseHoldTicks: 800,
		DoorToneTicks:  100,
		AckToneTicks:   100,
		FastStepTicks:  125,
		SlowStepTicks:  300,
		AckToneHz:      3000,
		DoorToneHz:     500,
		LogFile:        "liftsim.log",
	}
}

// Load reads path and overlays it on the defaults. A missing file is not
// an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	c := Default()
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&c); err != nil {
		return Default(), err
	}
	return c, nil
}
