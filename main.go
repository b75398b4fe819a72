// Package main is the entry point for the embycon playback companion.
package main

import (
	"github.com/samber/lo"
	"github.com/yeahme49/plugin.video.embycon/cmd"
	"github.com/yeahme49/plugin.video.embycon/config"
	"github.com/yeahme49/plugin.video.embycon/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
