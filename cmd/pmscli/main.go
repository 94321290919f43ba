package main

import (
	"github.com/robotalks/pms.go/pkg/cli/sh"
	"github.com/robotalks/pms.go/pkg/l1/env"

	_ "github.com/robotalks/pms.go/pkg/cli/cmds/sensor"
)

//go-build: CGO_ENABLED=0

func init() {
	env.SetupFlags()
}

func main() {
	sh.Main()
}
