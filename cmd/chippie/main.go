// Package main implements the Chippie CHIP-8 emulator CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"

	"github.com/chippie-emu/chippie/emu"
	"github.com/chippie-emu/chippie/gui"
	"github.com/chippie-emu/chippie/loader"
	"github.com/chippie-emu/chippie/timing/clock"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

type optionFlags struct {
	builtin  string
	headless bool
	cycles   uint64
	disasm   bool
	scale    int

	debug       bool
	quiet       bool
	showVersion bool
}

func main() {
	options, romArg := readArguments()
	logger := createLogger(options)

	if options.showVersion {
		fmt.Printf("chippie %s\n", buildinfo.Version(version, commit, date))
		return
	}

	rom, err := loadROM(options, romArg)
	if err != nil {
		logger.Fatal(err.Error())
	}

	interp := emu.NewInterpreter()
	if err := interp.LoadROM(rom.Data); err != nil {
		logger.Fatal("Loading ROM failed", log.Err(err))
	}

	logger.Debug("ROM loaded",
		log.String("name", rom.Name),
		log.String("bytes", fmt.Sprintf("%d", len(rom.Data))))

	switch {
	case options.disasm:
		printListing(interp, len(rom.Data))

	case options.headless:
		runClocked(logger, interp, options.cycles)

	default:
		runWindowed(logger, interp, rom.Name, options.scale)
	}
}

func readArguments() (optionFlags, string) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	options := optionFlags{}

	flags.StringVar(&options.builtin, "builtin", "", "run a built-in demo program instead of a ROM file")
	flags.BoolVar(&options.headless, "headless", false, "run without a window on the simulation clock")
	flags.Uint64Var(&options.cycles, "cycles", 50000, "cycle budget for a headless run, 0 for unbounded")
	flags.BoolVar(&options.disasm, "disasm", false, "print a disassembly listing of the ROM and exit")
	flags.IntVar(&options.scale, "scale", 12, "window pixel scale factor")
	flags.BoolVar(&options.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&options.quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&options.showVersion, "version", false, "print the version and exit")

	err := flags.Parse(os.Args[1:])
	args := flags.Args()

	if err != nil || (len(args) == 0 && options.builtin == "" && !options.showVersion) {
		fmt.Printf("usage: chippie [options] <rom file>\n\n")
		flags.PrintDefaults()
		fmt.Printf("\nbuilt-in programs: %s\n", strings.Join(loader.BuiltinNames(), ", "))
		os.Exit(1)
	}

	romArg := ""
	if len(args) > 0 {
		romArg = args[0]
	}
	return options, romArg
}

func createLogger(options optionFlags) *log.Logger {
	cfg := log.DefaultConfig()
	if options.debug {
		cfg.Level = log.DebugLevel
	} else if options.quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func loadROM(options optionFlags, romArg string) (*loader.ROM, error) {
	if options.builtin != "" {
		rom, ok := loader.Builtin(options.builtin)
		if !ok {
			return nil, fmt.Errorf("unknown built-in program %q, available: %s",
				options.builtin, strings.Join(loader.BuiltinNames(), ", "))
		}
		return rom, nil
	}

	return loader.Load(romArg)
}

// printListing disassembles the loaded ROM region the way the diagnostic
// panel renders it: one instruction per even address, blank where the two
// bytes decode to nothing.
func printListing(interp *emu.Interpreter, romLen int) {
	end := int(emu.BaseAddress) + romLen

	for address := int(emu.BaseAddress); address < end; address += 2 {
		inst, err := interp.PeekInstruction(uint16(address))
		if err != nil {
			fmt.Printf("%04x:\n", address)
			continue
		}
		fmt.Printf("%04x:  %s\n", address, inst)
	}
}

func runClocked(logger *log.Logger, interp *emu.Interpreter, cycles uint64) {
	runner := clock.NewRunner(interp, clock.WithMaxCycles(cycles))

	stats, err := runner.Run()
	if err != nil {
		var pcErr emu.ProgramCounterOutOfBoundsError
		if errors.As(err, &pcErr) {
			logger.Error("Run ended", log.Err(err))
		} else {
			logger.Error("Run failed", log.Err(err))
		}
	}

	logger.Info("Headless run finished",
		log.String("cycles", fmt.Sprintf("%d", stats.Cycles)),
		log.String("instructions", fmt.Sprintf("%d", stats.Instructions)),
		log.String("simulated", fmt.Sprintf("%.3fs", float64(stats.SimulatedTime))))
}

func runWindowed(logger *log.Logger, interp *emu.Interpreter, name string, scale int) {
	ctx := app.Context()

	window, err := gui.New(interp, logger, "chippie - "+name, scale)
	if err != nil {
		logger.Fatal("Creating window failed", log.Err(err))
	}
	defer window.Destroy()

	if err := window.Run(ctx); err != nil {
		logger.Fatal("Front end failed", log.Err(err))
	}
}
