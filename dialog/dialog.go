// Package dialog provides the user-facing selection and confirmation prompts.
//
// All prompts block until the user answers or cancels. The interface exists so
// the playback pipeline can be driven by scripted doubles in tests.
package dialog

import (
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/yeahme49/plugin.video.embycon/log"
)

// Cancelled is the index returned by Select when the user backs out.
const Cancelled = -1

// Dialog presents choices and yes/no questions to the user.
type Dialog interface {
	// Select shows a labeled list and returns the chosen index, or Cancelled.
	Select(title string, options []string) int

	// Confirm asks a yes/no question. Backing out counts as no.
	Confirm(title, question string) bool

	// ConfirmTimeout asks a yes/no question that auto-dismisses as "no"
	// once the timeout elapses without an answer.
	ConfirmTimeout(title, question string, timeout time.Duration) bool
}

// Survey is the production Dialog backed by interactive terminal prompts.
type Survey struct{}

func (Survey) Select(title string, options []string) int {
	if len(options) == 0 {
		return Cancelled
	}

	var choice string
	prompt := &survey.Select{
		Message: title,
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		if err != terminal.InterruptErr {
			log.Errorf("select prompt: %v", err)
		}
		return Cancelled
	}

	for i, option := range options {
		if option == choice {
			return i
		}
	}
	return Cancelled
}

func (Survey) Confirm(title, question string) bool {
	var response bool
	prompt := &survey.Confirm{
		Message: title + " " + question,
	}
	if err := survey.AskOne(prompt, &response); err != nil {
		if err != terminal.InterruptErr {
			log.Errorf("confirm prompt: %v", err)
		}
		return false
	}
	return response
}

func (s Survey) ConfirmTimeout(title, question string, timeout time.Duration) bool {
	answer := make(chan bool, 1)
	go func() {
		answer <- s.Confirm(title, question)
	}()

	select {
	case response := <-answer:
		return response
	case <-time.After(timeout):
		// The prompt goroutine stays blocked on stdin until the next keypress;
		// its late answer is discarded via the buffered channel.
		log.Debugf("confirm prompt timed out after %v", timeout)
		return false
	}
}
