package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/qainar-projects/infoutils/pkg/collector/mem"
	"github.com/qainar-projects/infoutils/pkg/report"
)

// MeminfoCmd builds the meminfo root command.
func MeminfoCmd() *cli.Command {
	return &cli.Command{
		Name:  "meminfo",
		Usage: "Display information about system memory usage",
		Description: `Prints physical memory accounting, and optionally swap state
and the top memory-consuming processes.

Examples:
  meminfo           Show basic memory information
  meminfo -a        Show comprehensive memory report
  meminfo -p        Show memory usage with top processes

QCO InfoUtils home page: <` + homePage + `>`,
		Flags: []cli.Flag{
			allFlag(),
			detailedFlag("show detailed memory breakdown"),
			&cli.BoolFlag{Name: "processes", Aliases: []string{"p"}, Usage: "show top memory consuming processes"},
			&cli.BoolFlag{Name: "swap", Aliases: []string{"s"}, Usage: "show swap space information"},
			noColorFlag(),
			versionFlag(),
		},
		Action: runMeminfo,
	}
}

func runMeminfo(ctx context.Context, cmd *cli.Command) error {
	if err := rejectArgs(cmd); err != nil {
		return err
	}
	if cmd.Bool("version") {
		printVersion("meminfo")
		return nil
	}

	cfg := loadConfig()
	p := newPrinter(cmd, cfg)

	all := cmd.Bool("all")
	c := &mem.Collector{}

	renderMemory(ctx, p, c, cmd.Bool("detailed") || all, cmd.Bool("swap") || all)
	if cmd.Bool("processes") || all {
		renderProcesses(ctx, p, c, cfg.ProcessLimit)
	}
	return nil
}

func renderMemory(ctx context.Context, p *report.Printer, c *mem.Collector, detailed, showSwap bool) {
	info, err := c.Memory(ctx)
	if err != nil {
		p.Warning("could not read memory information")
		return
	}

	usedKB := info.UsedKB()
	usedPct := report.Percent(usedKB, info.TotalKB)

	p.Section("Memory Information")

	p.AnnotatedRow("Total", report.KiloBytes(info.TotalKB), fmt.Sprintf("%d kB", info.TotalKB))
	p.AnnotatedRow("Available", report.KiloBytes(info.AvailableKB), fmt.Sprintf("%d kB", info.AvailableKB))
	p.AnnotatedRow("Used", report.KiloBytes(usedKB), fmt.Sprintf("%d kB, %d%%", usedKB, int(usedPct)))
	p.AnnotatedRow("Free", report.KiloBytes(info.FreeKB), fmt.Sprintf("%d kB", info.FreeKB))

	if detailed {
		p.AnnotatedRow("Buffers", report.KiloBytes(info.BuffersKB), fmt.Sprintf("%d kB", info.BuffersKB))
		p.AnnotatedRow("Cached", report.KiloBytes(info.CachedKB), fmt.Sprintf("%d kB", info.CachedKB))
		if info.ShmemKB > 0 {
			p.AnnotatedRow("Shared", report.KiloBytes(info.ShmemKB), fmt.Sprintf("%d kB", info.ShmemKB))
		}
		if info.SReclaimableKB > 0 || info.SUnreclaimKB > 0 {
			p.AnnotatedRow("Slab reclaimable", report.KiloBytes(info.SReclaimableKB), fmt.Sprintf("%d kB", info.SReclaimableKB))
			p.AnnotatedRow("Slab unreclaimable", report.KiloBytes(info.SUnreclaimKB), fmt.Sprintf("%d kB", info.SUnreclaimKB))
		}
	}

	if info.SwapTotalKB > 0 || showSwap {
		renderSwap(p, info)
	}
}

func renderSwap(p *report.Printer, info *mem.Memory) {
	p.Blank()
	p.Section("Swap Information")

	if info.SwapTotalKB == 0 {
		p.Println("No swap space configured")
		return
	}

	swapUsedKB := info.SwapUsedKB()
	swapPct := report.Percent(swapUsedKB, info.SwapTotalKB)

	p.AnnotatedRow("Total", report.KiloBytes(info.SwapTotalKB), fmt.Sprintf("%d kB", info.SwapTotalKB))
	p.AnnotatedRow("Free", report.KiloBytes(info.SwapFreeKB), fmt.Sprintf("%d kB", info.SwapFreeKB))
	p.AnnotatedRow("Used", report.KiloBytes(swapUsedKB), fmt.Sprintf("%d kB, %d%%", swapUsedKB, int(swapPct)))
	if info.SwapCachedKB > 0 {
		p.AnnotatedRow("Cached", report.KiloBytes(info.SwapCachedKB), fmt.Sprintf("%d kB", info.SwapCachedKB))
	}
}

func renderProcesses(ctx context.Context, p *report.Printer, c *mem.Collector, limit int) {
	p.Blank()
	p.Section("Top Memory Consumers")

	procs, err := c.TopProcesses(ctx, limit)
	if err != nil {
		slog.Warn("could not read all process information", "error", err)
	}

	p.Printf("%-8s%-16s%-12s%s\n", "PID", "COMMAND", "MEMORY", "CMDLINE")
	p.Rule()

	for _, proc := range procs {
		name := proc.Name
		if len(name) > 15 {
			name = name[:15]
		}
		p.Printf("%-8d%-16s%-12s%s\n", proc.PID, name, report.KiloBytes(proc.MemoryKB), proc.Cmdline)
	}
}
