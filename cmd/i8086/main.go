// main.go - i8086 CLI front-end: load a flat binary image and drive the
// core, or disassemble one.
//
// The subcommand/flag layout follows oisee-z80-optimizer's cmd/z80opt
// (cobra.Command tree with RunE and Flags().*Var registration).
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jay94ks/v86/cpu"
	"github.com/jay94ks/v86/hostbus"
	"github.com/spf13/cobra"
)

const memSize = 1 << 20 // 1 MiB real-mode address space

func main() {
	rootCmd := &cobra.Command{
		Use:   "i8086",
		Short: "i8086 real-mode instruction set interpreter",
	}

	var loadSeg, loadOff uint16
	var csInit, ipInit uint16
	var perf bool

	runCmd := &cobra.Command{
		Use:   "run [image]",
		Short: "Load a flat binary image and run it until halted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, mem, err := loadImage(args[0], loadSeg, loadOff, csInit, ipInit)
			if err != nil {
				return err
			}
			runLoop(c, mem, perf)
			return nil
		},
	}
	runCmd.Flags().Uint16Var(&loadSeg, "load-seg", 0, "segment to load the image at")
	runCmd.Flags().Uint16Var(&loadOff, "load-off", 0x100, "offset within load-seg to load the image at")
	runCmd.Flags().Uint16Var(&csInit, "cs", 0, "initial CS")
	runCmd.Flags().Uint16Var(&ipInit, "ip", 0x100, "initial IP")
	runCmd.Flags().BoolVar(&perf, "perf", false, "report instructions/sec once the run halts")

	var steps int
	stepCmd := &cobra.Command{
		Use:   "step [image]",
		Short: "Load a flat binary image and single-step it, dumping state each step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := loadImage(args[0], loadSeg, loadOff, csInit, ipInit)
			if err != nil {
				return err
			}
			for i := 0; i < steps && !c.State().Halted; i++ {
				c.Step()
				dumpState(c)
			}
			return nil
		},
	}
	stepCmd.Flags().Uint16Var(&loadSeg, "load-seg", 0, "segment to load the image at")
	stepCmd.Flags().Uint16Var(&loadOff, "load-off", 0x100, "offset within load-seg to load the image at")
	stepCmd.Flags().Uint16Var(&csInit, "cs", 0, "initial CS")
	stepCmd.Flags().Uint16Var(&ipInit, "ip", 0x100, "initial IP")
	stepCmd.Flags().IntVar(&steps, "steps", 1, "number of instructions to step")

	var disasmCount int
	var disasmAt uint32
	disasmCmd := &cobra.Command{
		Use:   "disasm [image]",
		Short: "Disassemble instructions starting at a file offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			d := &disasm{
				pos: disasmAt,
				read: func(addr uint32) byte {
					if int(addr) < len(data) {
						return data[addr]
					}
					return 0
				},
			}
			for i := 0; i < disasmCount; i++ {
				fmt.Println(d.line())
			}
			return nil
		},
	}
	disasmCmd.Flags().IntVar(&disasmCount, "count", 10, "number of instructions to disassemble")
	disasmCmd.Flags().Uint32Var(&disasmAt, "at", 0, "starting file offset")

	rootCmd.AddCommand(runCmd, stepCmd, disasmCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadImage(path string, loadSeg, loadOff, cs, ip uint16) (*cpu.CPU, *hostbus.FlatMemory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read image: %w", err)
	}

	mem := hostbus.NewFlatMemory(memSize)
	mem.Load(cpu.Linear(loadSeg, loadOff), data)

	c := cpu.New()
	c.SetMemory(mem)
	c.SetPort(hostbus.NullPort{})
	c.Segs.Set(cpu.SegCS, cs)
	c.Regs.SetIP16(ip)

	return c, mem, nil
}

func runLoop(c *cpu.CPU, mem *hostbus.FlatMemory, perf bool) {
	_ = mem
	start := time.Now()
	var count uint64
	for !c.State().Halted {
		c.Step()
		count++
	}
	if perf {
		elapsed := time.Since(start).Seconds()
		if elapsed > 0 {
			fmt.Printf("i8086: %.0f instructions in %.3fs (%.2f MIPS)\n",
				float64(count), elapsed, float64(count)/elapsed/1_000_000)
		}
	}
	dumpState(c)
}

func dumpState(c *cpu.CPU) {
	s := c.State()
	fmt.Printf("CS:IP=%04X:%04X AX=%04X CX=%04X DX=%04X BX=%04X SP=%04X BP=%04X SI=%04X DI=%04X FLAGS=%08X halted=%v\n",
		s.CS, uint16(s.EIP), uint16(s.AX), uint16(s.CX), uint16(s.DX), uint16(s.BX),
		uint16(s.SP), uint16(s.BP), uint16(s.SI), uint16(s.DI), uint32(s.Flags), s.Halted)
}
