// Package util provides a collection of domain-agnostic utility functions.
package util

import (
	"fmt"
	"time"

	"github.com/yeahme49/plugin.video.embycon/filesystem"
)

// FormatSeconds renders a duration in seconds as h:mm:ss for display in resume prompts.
func FormatSeconds(seconds int) string {
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// PadIndex renders an episode or season number zero padded to two digits.
func PadIndex(n int) string {
	return fmt.Sprintf("%02d", n)
}

// Delete removes a directory tree using the active filesystem backend.
func Delete(path string) error {
	return filesystem.API().RemoveAll(path)
}
