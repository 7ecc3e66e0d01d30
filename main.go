// Package main is the entry point for the lonesnake-release helper.
package main

import (
	"github.com/pwalch/lonesnake-release/cmd"
	"github.com/pwalch/lonesnake-release/config"
	"github.com/pwalch/lonesnake-release/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
