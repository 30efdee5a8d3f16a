package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/qainar-projects/infoutils/pkg/collector/cpu"
	"github.com/qainar-projects/infoutils/pkg/report"
)

// CpuinfoCmd builds the cpuinfo root command.
func CpuinfoCmd() *cli.Command {
	return &cli.Command{
		Name:  "cpuinfo",
		Usage: "Display information about system CPU",
		Description: `Prints a processor summary, and optionally load, frequency
scaling and topology details.

Examples:
  cpuinfo           Show basic CPU information
  cpuinfo -a        Show comprehensive CPU report
  cpuinfo -l        Show CPU information with load

QCO InfoUtils home page: <` + homePage + `>`,
		Flags: []cli.Flag{
			allFlag(),
			detailedFlag("show detailed CPU information"),
			&cli.BoolFlag{Name: "frequencies", Aliases: []string{"f"}, Usage: "show CPU frequency information"},
			&cli.BoolFlag{Name: "load", Aliases: []string{"l"}, Usage: "show CPU load information"},
			&cli.BoolFlag{Name: "topology", Aliases: []string{"t"}, Usage: "show CPU topology information"},
			noColorFlag(),
			versionFlag(),
		},
		Action: runCpuinfo,
	}
}

func runCpuinfo(ctx context.Context, cmd *cli.Command) error {
	if err := rejectArgs(cmd); err != nil {
		return err
	}
	if cmd.Bool("version") {
		printVersion("cpuinfo")
		return nil
	}

	cfg := loadConfig()
	p := newPrinter(cmd, cfg)

	all := cmd.Bool("all")
	detailed := cmd.Bool("detailed") || all
	c := &cpu.Collector{}

	renderCPU(ctx, p, c, detailed)
	if cmd.Bool("load") || all {
		renderLoad(ctx, p, c, detailed)
	}
	if cmd.Bool("frequencies") || all {
		renderFrequency(ctx, p, c)
	}
	if cmd.Bool("topology") || all {
		renderTopology(ctx, p, c, detailed)
	}
	return nil
}

func renderCPU(ctx context.Context, p *report.Printer, c *cpu.Collector, detailed bool) {
	info, err := c.Info(ctx)
	if err != nil {
		p.Warning("could not read all CPU information")
		if info == nil {
			return
		}
	}

	p.Section("CPU Information")

	if info.ModelName != "" {
		p.Row("Model", info.ModelName)
	}
	if info.VendorID != "" {
		p.Row("Vendor", info.VendorID)
	}
	if info.LogicalCores > 0 {
		p.Printf("%-18s%d\n", "Logical cores:", info.LogicalCores)
	}
	if info.PhysicalCores > 0 && info.PhysicalCores != info.LogicalCores {
		p.Printf("%-18s%d\n", "Physical cores:", info.PhysicalCores)
	}
	if info.MHz > 0 {
		p.Row("Base frequency", report.Frequency(info.MHz))
	}
	if info.CacheSize != "" {
		p.Row("Cache size", info.CacheSize)
	}

	if detailed {
		if info.Family != "" {
			p.Row("CPU family", info.Family)
		}
		if info.Model != "" {
			p.Row("Model", info.Model)
		}
		if info.Stepping != "" {
			p.Row("Stepping", info.Stepping)
		}
		if info.Microcode != "" {
			p.Row("Microcode", info.Microcode)
		}
		if len(info.Flags) > 0 {
			p.Println("Features:")
			printFlagGrid(p, info.Flags)
		}
	}
}

// printFlagGrid lays CPU feature flags out in four columns of width 15.
func printFlagGrid(p *report.Printer, flags []string) {
	const cols = 4
	for i := 0; i < len(flags); i += cols {
		var b strings.Builder
		b.WriteString("  ")
		for j := 0; j < cols && i+j < len(flags); j++ {
			fmt.Fprintf(&b, "%-15s", flags[i+j])
		}
		p.Println(strings.TrimRight(b.String(), " "))
	}
}

func renderLoad(ctx context.Context, p *report.Printer, c *cpu.Collector, detailed bool) {
	load, err := c.Load(ctx)
	if err != nil {
		p.Warning("could not read CPU load")
		return
	}

	p.Blank()
	p.Section("CPU Load")

	p.Row("Load average", fmt.Sprintf("%.2f, %.2f, %.2f", load.Load1, load.Load5, load.Load15))
	p.Row("CPU usage", fmt.Sprintf("%.1f%%", load.Usage))

	if detailed {
		p.Printf("%-18s%d jiffies\n", "User time:", load.User)
		p.Printf("%-18s%d jiffies\n", "System time:", load.System)
		p.Printf("%-18s%d jiffies\n", "Idle time:", load.Idle)
		p.Printf("%-18s%d jiffies\n", "I/O wait time:", load.IOWait)
	}
}

func renderFrequency(ctx context.Context, p *report.Printer, c *cpu.Collector) {
	freq, err := c.Frequency(ctx)

	p.Blank()
	p.Section("CPU Frequency")

	if err != nil || freq == nil {
		p.Warning("CPU frequency information not available")
		p.Println("This may require cpufreq driver support or root privileges")
		return
	}

	if freq.CurrentMHz > 0 {
		p.Row("Current", report.Frequency(freq.CurrentMHz))
	}
	if freq.MinMHz > 0 {
		p.Row("Minimum", report.Frequency(freq.MinMHz))
	}
	if freq.MaxMHz > 0 {
		p.Row("Maximum", report.Frequency(freq.MaxMHz))
	}
	if freq.Governor != "" {
		p.Row("Governor", freq.Governor)
	}
	if freq.Driver != "" {
		p.Row("Driver", freq.Driver)
	}
}

func renderTopology(ctx context.Context, p *report.Printer, c *cpu.Collector, detailed bool) {
	p.Blank()
	p.Section("CPU Topology")

	topo, err := c.Topology(ctx)
	if err != nil {
		p.Warning("could not read topology information")
		return
	}

	p.Printf("%-18s%d\n", "Sockets:", len(topo.Sockets))
	p.Printf("%-18s%d\n", "Cores per socket:", topo.CoresPerSocket())

	if detailed {
		for _, id := range topo.SocketIDs() {
			cpus := make([]string, 0, len(topo.Sockets[id]))
			for _, n := range topo.Sockets[id] {
				cpus = append(cpus, strconv.Itoa(n))
			}
			p.Printf("Socket %d: CPUs %s\n", id, strings.Join(cpus, ", "))
		}
	}
}
