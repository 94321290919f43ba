package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/robotalks/pms.go/pkg/framework"
	"github.com/robotalks/pms.go/pkg/l1/env"
)

func init() {
	env.SetupFlags()
}

func main() {
	flag.Parse()

	e := env.NewConfig().MustNewEnv()
	framework.NewRunner().HandleSignals().RunOrFail(e.Runnables()...)
}
