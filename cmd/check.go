// Package cmd implements the command-line interface for embycon.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/viper"
	"github.com/yeahme49/plugin.video.embycon/key"
)

// CheckDependencies verifies the availability of required system dependencies.
// The current implementation validates the presence of the configured player
// in the system PATH.
func CheckDependencies() {
	playerName := viper.GetString(key.Player)
	if _, err := exec.LookPath(playerName); err != nil {
		printMissingDependencyError(playerName)
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install " + dep
	case "linux":
		installCmd = "sudo apt install " + dep
	case "windows":
		installCmd = "scoop install " + dep
	}

	_, _ = fmt.Fprintf(os.Stderr, "✗ required dependency '%s' was not found in your PATH\n", dep)
	if installCmd != "" {
		_, _ = fmt.Fprintf(os.Stderr, "  to install it, try running: %s\n", installCmd)
	}
}
