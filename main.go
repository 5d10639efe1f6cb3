package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"liftsim/cab"
	"liftsim/clog"
	"liftsim/config"
	"liftsim/input"
	"liftsim/iodevice"
	"liftsim/motion"
	"liftsim/render"
	"liftsim/request"
	"liftsim/segdisp"
	"liftsim/sequencer"
	"liftsim/term"
	"liftsim/tick"
)

// Cadence of the cooperative main loop. The loop only polls and
// redraws; all timing-sensitive work is measured in ticks.
const loopPeriod = time.Millisecond

// loadEnvFile applies an optional .env holding LIFTSIM_CONFIG /
// LIFTSIM_LOG overrides. No .env is the normal case; any other failure
// means the file exists but could not be used, which deserves a note.
func loadEnvFile() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		clog.Yellow.Println("could not read .env:", err)
	}
}

func main() {
	loadEnvFile()

	cfgPath := os.Getenv("LIFTSIM_CONFIG")
	if cfgPath == "" {
		cfgPath = "liftsim.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		clog.Fatal("could not read config ", cfgPath, ": ", err)
	}

	logPath := os.Getenv("LIFTSIM_LOG")
	if logPath == "" {
		logPath = cfg.LogFile
	}
	if logPath != "" {
		if err := clog.SetLogFile(logPath); err != nil {
			clog.Yellow.Println("no log file:", err)
		}
	}

	in, err := input.New()
	if err != nil {
		clog.Fatal("could not open keyboard: ", err)
	}
	defer in.Close()

	st := cab.NewState()
	dev := term.NewDevice(os.Stdout, cfg.AckToneHz, cfg.DoorToneHz)
	out := dev.Output()

	seq := sequencer.New(st, out, cfg)
	mux := segdisp.NewMux(st, out)
	src := tick.NewSource(cfg.TickPeriod, seq.Tick, mux.Tick)

	rnd := render.New(out)
	mc := motion.New(st, cfg, src.Ticks)
	rm := request.New(st, rnd)

	clog.Magenta.Println("--- elevator emulator ---")
	clog.Printf("config: %s, tick period %v", cfgPath, cfg.TickPeriod)

	dev.Clear()
	defer dev.Restore()
	dev.Banner("Elevator emulator - press any key to start")
	in.WaitForAny()

	// The scene is about to own the terminal; console logs go to the
	// file mirror only from here on.
	clog.SetOutput(log.New(io.Discard, "", 0))

	dev.Clear()
	dev.Banner("0-3: request  arrows: destination  space: speed  q: quit")
	rnd.DrawStatic(st.Position())
	withP, withoutP := rm.Counters()
	rnd.StatusText(st.Snapshot(), withP, withoutP)
	out.DoorLamp(false)

	src.Start()
	defer src.Stop()

	run(in.Input(), in.Quit(), st, mc, rm, rnd)
}

// run is the cooperative main loop: advance the cab if the doors allow,
// consume input, redraw what changed.
func run(
	in iodevice.InputDevice,
	quit <-chan struct{},
	st *cab.State,
	mc *motion.Controller,
	rm *request.Manager,
	rnd *render.Renderer,
) {
	ticker := time.NewTicker(loopPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return
		case <-ticker.C:
			if mc.Step(in.SpeedToggle()) {
				rnd.DrawCab(st.Position())
			}
			if floor, ok := in.Button(); ok {
				rm.HandleInput(floor, in.DestinationSelector())
			}
			rm.Update()

			withP, withoutP := rm.Counters()
			rnd.StatusText(st.Snapshot(), withP, withoutP)
		}
	}
}
