package cli

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/qainar-projects/infoutils/pkg/collector/host"
	"github.com/qainar-projects/infoutils/pkg/report"
)

// OsinfoCmd builds the osinfo root command.
func OsinfoCmd() *cli.Command {
	return &cli.Command{
		Name:  "osinfo",
		Usage: "Display information about the operating system",
		Description: `Prints kernel and host identity, and optionally distribution,
user and environment details.

Examples:
  osinfo            Show basic system information
  osinfo -a         Show comprehensive system report
  osinfo -r         Show distribution information

QCO InfoUtils home page: <` + homePage + `>`,
		Flags: []cli.Flag{
			allFlag(),
			detailedFlag("show detailed system information"),
			&cli.BoolFlag{Name: "environment", Aliases: []string{"e"}, Usage: "show environment information"},
			&cli.BoolFlag{Name: "distro", Aliases: []string{"r"}, Usage: "show distribution information"},
			&cli.BoolFlag{Name: "users", Aliases: []string{"u"}, Usage: "show user information"},
			noColorFlag(),
			versionFlag(),
		},
		Action: runOsinfo,
	}
}

func runOsinfo(ctx context.Context, cmd *cli.Command) error {
	if err := rejectArgs(cmd); err != nil {
		return err
	}
	if cmd.Bool("version") {
		printVersion("osinfo")
		return nil
	}

	cfg := loadConfig()
	p := newPrinter(cmd, cfg)

	all := cmd.Bool("all")
	detailed := cmd.Bool("detailed") || all
	c := &host.Collector{}

	renderSystem(ctx, p, c, detailed)
	if cmd.Bool("distro") || all {
		renderDistro(ctx, p, c, detailed)
	}
	if cmd.Bool("users") || all {
		renderUsers(ctx, p, c)
	}
	if cmd.Bool("environment") || all {
		renderEnvironment(p, c, detailed)
	}
	return nil
}

func renderSystem(ctx context.Context, p *report.Printer, c *host.Collector, detailed bool) {
	sys, err := c.System(ctx)
	if err != nil {
		p.Warning("could not read system information")
		return
	}
	distro, _ := c.Distro(ctx)

	p.Section("System Information")

	switch {
	case distro != nil && distro.PrettyName != "":
		p.Row("Operating System", distro.PrettyName)
	case distro != nil && distro.Name != "":
		os := distro.Name
		if distro.Version != "" {
			os += " " + distro.Version
		}
		p.Row("Operating System", os)
	}

	if sys.KernelName != "" && sys.KernelRelease != "" {
		p.Row("Kernel", sys.KernelName+" "+sys.KernelRelease)
	}
	if sys.Architecture != "" {
		p.Row("Architecture", sys.Architecture)
	}
	if sys.Hostname != "" {
		hostname := sys.Hostname
		if sys.DomainName != "" && sys.DomainName != "(none)" {
			hostname += "." + sys.DomainName
		}
		p.Row("Hostname", hostname)
	}
	if sys.UptimeSeconds > 0 {
		p.Row("Uptime", report.Duration(sys.UptimeSeconds))
	}

	if detailed {
		if sys.KernelVersion != "" {
			p.Row("Kernel version", sys.KernelVersion)
		}
		if !sys.BootTime.IsZero() {
			p.Row("Booted", sys.BootTime.Format("Mon Jan 2 15:04:05 2006"))
		}
		if sys.Timezone != "" {
			p.Row("Timezone", sys.Timezone)
		}
		if banner := c.KernelBanner(); banner != "" {
			p.Row("Kernel info", banner)
		}
	}
}

func renderDistro(ctx context.Context, p *report.Printer, c *host.Collector, detailed bool) {
	info, err := c.Distro(ctx)
	if err != nil {
		p.Warning("could not read distribution information")
		return
	}

	p.Blank()
	p.Section("Distribution Information")

	if info.Name != "" {
		p.Row("Name", info.Name)
	}
	if info.Version != "" {
		p.Row("Version", info.Version)
	}
	if info.ID != "" {
		p.Row("ID", info.ID)
	}
	if info.VersionCodename != "" {
		p.Row("Codename", info.VersionCodename)
	}

	if detailed {
		if info.IDLike != "" {
			p.Row("Based on", info.IDLike)
		}
		if info.VersionID != "" {
			p.Row("Version ID", info.VersionID)
		}
		if info.HomeURL != "" {
			p.Row("Home URL", info.HomeURL)
		}
		if info.SupportURL != "" {
			p.Row("Support URL", info.SupportURL)
		}
	}
}

func renderUsers(ctx context.Context, p *report.Printer, c *host.Collector) {
	info, err := c.User(ctx)
	if err != nil {
		p.Warning("could not read user information")
		return
	}

	p.Blank()
	p.Section("User Information")

	if info.CurrentUser != "" {
		p.Row("Current user", info.CurrentUser)
	}
	if info.CurrentGroup != "" {
		p.Row("Primary group", info.CurrentGroup)
	}
	if info.HomeDirectory != "" {
		p.Row("Home directory", info.HomeDirectory)
	}
	if info.Shell != "" {
		p.Row("Shell", info.Shell)
	}
	if info.UserCount > 0 {
		p.Printf("%-18s%d\n", "Total users:", info.UserCount)
	}
	if info.GroupCount > 0 {
		p.Printf("%-18s%d\n", "Total groups:", info.GroupCount)
	}
	if len(info.LoggedIn) > 0 {
		p.Row("Logged in", strings.Join(info.LoggedIn, ", "))
	}
}

func renderEnvironment(p *report.Printer, c *host.Collector, detailed bool) {
	info := c.Environment()

	p.Blank()
	p.Section("Environment Information")

	if info.Lang != "" {
		p.Row("Language", info.Lang)
	}
	if info.DesktopSession != "" {
		p.Row("Desktop session", info.DesktopSession)
	}
	if info.WindowManager != "" {
		p.Row("Desktop environment", info.WindowManager)
	}
	if info.Editor != "" {
		p.Row("Default editor", info.Editor)
	}
	if info.Shell != "" {
		p.Row("Default shell", info.Shell)
	}

	if detailed {
		if info.Pager != "" {
			p.Row("Pager", info.Pager)
		}
		if info.Browser != "" {
			p.Row("Browser", info.Browser)
		}
		if info.Path != "" {
			p.Println("PATH:")
			for _, dir := range strings.Split(info.Path, ":") {
				p.Println("  " + dir)
			}
		}
	}
}
