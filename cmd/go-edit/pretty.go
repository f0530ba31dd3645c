// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd004-technology-stack R3 (styled terminal output).
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// renderer styles operation messages for terminals. Styling is disabled
// when stdout is not a tty or --no-color is set, so piped output stays
// byte-identical to the engine's message.
type renderer struct {
	enabled bool
	success lipgloss.Style
	failure lipgloss.Style
}

func newRenderer(noColor bool) *renderer {
	enabled := !noColor && isatty.IsTerminal(os.Stdout.Fd())
	return &renderer{
		enabled: enabled,
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// Print writes the message, styling the headline line when enabled.
func (r *renderer) Print(message string, failed bool) {
	if !r.enabled {
		fmt.Println(message)
		return
	}

	headline, rest, hasRest := strings.Cut(message, "\n")
	style := r.success
	if failed {
		style = r.failure
	}
	fmt.Println(style.Render(headline))
	if hasRest {
		fmt.Println(rest)
	}
}
