package cli

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/qainar-projects/infoutils/pkg/collector/disk"
	"github.com/qainar-projects/infoutils/pkg/report"
)

// DisklsCmd builds the diskls root command.
func DisklsCmd() *cli.Command {
	return &cli.Command{
		Name:  "diskls",
		Usage: "Display information about system disks and storage",
		Description: `Prints per-device block storage details, and optionally space
usage, mount points and type groupings.

Examples:
  diskls            Show basic disk information
  diskls -a         Show comprehensive disk report
  diskls -u         Show disk usage information

QCO InfoUtils home page: <` + homePage + `>`,
		Flags: []cli.Flag{
			allFlag(),
			detailedFlag("show detailed disk information"),
			&cli.BoolFlag{Name: "mounts", Aliases: []string{"m"}, Usage: "show mount point information"},
			&cli.BoolFlag{Name: "types", Aliases: []string{"t"}, Usage: "show disk types and filesystems"},
			&cli.BoolFlag{Name: "usage", Aliases: []string{"u"}, Usage: "show disk space usage"},
			noColorFlag(),
			versionFlag(),
		},
		Action: runDiskls,
	}
}

func runDiskls(ctx context.Context, cmd *cli.Command) error {
	if err := rejectArgs(cmd); err != nil {
		return err
	}
	if cmd.Bool("version") {
		printVersion("diskls")
		return nil
	}

	cfg := loadConfig()
	p := newPrinter(cmd, cfg)

	all := cmd.Bool("all")
	detailed := cmd.Bool("detailed") || all
	c := &disk.Collector{}

	renderDisks(ctx, p, c, detailed)
	if cmd.Bool("usage") || all {
		renderUsage(ctx, p, c)
	}
	if cmd.Bool("mounts") || all {
		renderMounts(ctx, p, c, detailed)
	}
	if cmd.Bool("types") || all {
		renderTypes(ctx, p, c)
	}
	return nil
}

func renderDisks(ctx context.Context, p *report.Printer, c *disk.Collector, detailed bool) {
	disks, err := c.Devices(ctx)

	p.Section("Disk Information")

	if err != nil {
		p.Warning("could not read all disk information")
		return
	}
	if len(disks) == 0 {
		p.Println("No disks found")
		return
	}

	var stats map[string]disk.Stats
	if detailed {
		stats, _ = c.Stats(ctx)
	}

	for _, d := range disks {
		p.Heading(d.Device)

		if d.Model != "" {
			p.SubRow("Model", d.Model)
		}
		if d.Vendor != "" {
			p.SubRow("Vendor", d.Vendor)
		}
		p.SubRow("Type", d.Type)

		size := report.Bytes(d.SizeBytes)
		if detailed {
			size += p.Dim(fmt.Sprintf(" (%d bytes)", d.SizeBytes))
		}
		p.SubRow("Size", size)

		if d.Removable {
			p.SubRow("Removable", "Yes")
		}

		if detailed {
			if d.Scheduler != "" {
				p.SubRow("Scheduler", d.Scheduler)
			}
			if d.QueueDepth > 0 {
				p.SubRow("Queue depth", fmt.Sprintf("%d", d.QueueDepth))
			}
			if len(d.Partitions) > 0 {
				p.SubRow("Partitions", joinBasenames(d.Partitions))
			}
			if st, ok := stats[path.Base(d.Device)]; ok {
				p.SubRow("Reads", fmt.Sprintf("%d completed, %d merged", st.ReadsCompleted, st.ReadsMerged))
				p.SubRow("Writes", fmt.Sprintf("%d completed, %d merged", st.WritesCompleted, st.WritesMerged))
				p.SubRow("I/O time", fmt.Sprintf("%d ms", st.TimeIOMs))
			}
		}

		p.Blank()
	}
}

func renderUsage(ctx context.Context, p *report.Printer, c *disk.Collector) {
	parts, _ := c.Partitions(ctx)

	p.Blank()
	p.Section("Disk Usage")

	if len(parts) == 0 {
		p.Println("No mounted partitions found")
		return
	}

	p.Printf("%-20s%-15s%-15s%-15s%-8s%s\n", "DEVICE", "SIZE", "USED", "AVAILABLE", "USE%", "MOUNTED ON")
	p.Rule()

	for _, part := range parts {
		device := part.Device
		if len(device) > 19 {
			device = device[:19]
		}
		p.Printf("%-20s%-15s%-15s%-15s%-7.0f%%%s\n",
			device,
			report.Bytes(part.TotalBytes),
			report.Bytes(part.UsedBytes),
			report.Bytes(part.AvailableBytes),
			part.UsagePercent,
			part.Mountpoint)
	}
}

func renderMounts(ctx context.Context, p *report.Printer, c *disk.Collector, detailed bool) {
	parts, _ := c.Partitions(ctx)

	p.Blank()
	p.Section("Mount Information")

	for _, part := range parts {
		p.Heading(part.Device)
		p.SubRow("Mount point", part.Mountpoint)
		p.SubRow("Filesystem", part.Filesystem)
		if detailed {
			p.SubRow("Mount options", part.MountOptions)
		}
		p.Blank()
	}
}

func renderTypes(ctx context.Context, p *report.Printer, c *disk.Collector) {
	disks, _ := c.Devices(ctx)
	parts, _ := c.Partitions(ctx)

	p.Blank()
	p.Section("Disk Types and Filesystems")

	byType := make(map[string][]string)
	for _, d := range disks {
		byType[d.Type] = append(byType[d.Type], path.Base(d.Device))
	}
	p.Heading("Disk Types:")
	printGroups(p, byType)

	p.Blank()

	byFS := make(map[string][]string)
	for _, part := range parts {
		byFS[part.Filesystem] = append(byFS[part.Filesystem], path.Base(part.Device))
	}
	p.Heading("Filesystems:")
	printGroups(p, byFS)
}

// printGroups renders a grouped name list with sorted keys so output
// does not depend on map iteration order.
func printGroups(p *report.Printer, groups map[string][]string) {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		p.Printf("  %-16s\n", k+":")
		p.Println("    " + strings.Join(groups[k], ", "))
	}
}

func joinBasenames(paths []string) string {
	names := make([]string, 0, len(paths))
	for _, s := range paths {
		names = append(names, path.Base(s))
	}
	return strings.Join(names, ", ")
}
