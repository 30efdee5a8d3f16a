package main

import "github.com/qainar-projects/infoutils/pkg/cli"

func main() {
	cli.Main(cli.CpuinfoCmd())
}
