package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/ezrec/docore/cpu"
	"github.com/ezrec/docore/emulator"
	"github.com/ezrec/docore/memory"
	"github.com/ezrec/docore/translate"
)

var f = translate.From

func init() {
	exe, _ := os.Executable()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(exe)))
	log.SetOutput(os.Stderr)
}

// capacityOf checks that the -c flag fits a memory capacity.
func capacityOf(capacity uint) (value uint32, err error) {
	if uint64(capacity) > math.MaxUint32 {
		err = errors.New(f("memory capacity %v exceeds %v slots", capacity, uint64(math.MaxUint32)))
		return
	}

	value = uint32(capacity)
	return
}

func main() {
	var instruction string
	var kind string
	var capacity uint
	var width uint
	var registers int
	var zero bool
	var debug bool
	var verbose bool

	flag.StringVar(&instruction, "i", "", "do-core1 instruction to execute (hex word such as 0201, $(ADD << 8 | 0x01), or 'add r0 r1')")
	flag.StringVar(&kind, "m", memory.KIND_DENSE.String(), "Memory kind (dense or sparse)")
	flag.UintVar(&capacity, "c", 0, "Memory capacity, in slots (0 for the default)")
	flag.UintVar(&width, "w", memory.DEFAULT_WIDTH, "Dense memory slot width, in bits (8 or 16)")
	flag.IntVar(&registers, "r", cpu.MAX_REGISTER_INDEX+1, "Register count")
	flag.BoolVar(&zero, "z", false, "Zero the registers, instead of R<n> = n * 0x10")
	flag.BoolVar(&debug, "d", false, "Pretty-print the emulator state")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatal(f("unknown arguments: %v", flag.Args()))
	}

	if len(instruction) == 0 {
		log.Fatal(f("missing -i instruction"))
	}

	mem_kind, err := memory.ParseKind(kind)
	if err != nil {
		log.Fatal(err)
	}

	mem_capacity, err := capacityOf(capacity)
	if err != nil {
		log.Fatal(err)
	}

	policy := cpu.INIT_PATTERN
	if zero {
		policy = cpu.INIT_ZERO
	}

	emu, err := emulator.NewEmulator(emulator.Config{
		Registers: registers,
		Init:      policy,
		Kind:      mem_kind,
		Capacity:  mem_capacity,
		Width:     width,
	})
	if err != nil {
		log.Fatal(err)
	}
	emu.Verbose = verbose

	word, err := emu.Assemble(instruction)
	if err != nil {
		log.Fatal(err)
	}

	printer := pp.New()
	printer.SetColoringEnabled(term.IsTerminal(int(os.Stdout.Fd())))

	dump := func(preamble string) {
		err := emu.Dump(os.Stdout, preamble)
		if err != nil {
			log.Fatal(err)
		}
		if debug {
			printer.Println(emu.Snapshot())
		}
	}

	dump(f("Initial CPU State"))

	err = emu.Process(word)
	if err != nil {
		log.Fatal(err)
	}

	dump(f("Final CPU State"))
}
