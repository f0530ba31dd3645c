// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd004-technology-stack R2 (operation subcommands).
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/go-edit/pkg/edit"
	"github.com/petar-djukic/go-edit/pkg/types"
)

// failurePrefixes mark messages that should exit non-zero. The operations
// report semantic failures as strings, not errors, so the CLI pattern
// matches on prefixes the same way an agent's tool layer does.
var failurePrefixes = []string{"Invalid", "No replacement was performed"}

func newEditor() *edit.Editor {
	return &edit.Editor{
		WorkDir:        viper.GetString("workdir"),
		ContextLines:   viper.GetInt("context-lines"),
		FuzzyTolerance: viper.GetFloat64("fuzzy-tolerance"),
	}
}

// emit prints the operation's message and exits non-zero on semantic
// failures.
func emit(message string) error {
	out := newRenderer(viper.GetBool("no-color"))
	failed := false
	for _, prefix := range failurePrefixes {
		if strings.HasPrefix(message, prefix) {
			failed = true
			break
		}
	}
	out.Print(message, failed)
	if failed {
		os.Exit(1)
	}
	return nil
}

// newViewCmd creates the "view" command.
func newViewCmd() *cobra.Command {
	var viewRange []int

	cmd := &cobra.Command{
		Use:   "view <path>",
		Short: "Show a file with line numbers, or a directory listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := newEditor().View(args[0], viewRange)
			if err != nil {
				return err
			}
			return emit(message)
		},
	}

	cmd.Flags().IntSliceVar(&viewRange, "range", nil, "1-based line range start,end (-1 end means EOF)")
	return cmd
}

// newCreateCmd creates the "create" command.
func newCreateCmd() *cobra.Command {
	var fileText string
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a new file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := resolveText(fileText, fromFile)
			if err != nil {
				return err
			}
			message, err := newEditor().Create(args[0], text)
			if err != nil {
				return err
			}
			return emit(message)
		},
	}

	cmd.Flags().StringVar(&fileText, "text", "", "File content")
	cmd.Flags().StringVar(&fromFile, "text-file", "", "Read file content from this path ('-' for stdin)")
	return cmd
}

// newStrReplaceCmd creates the "str-replace" command.
func newStrReplaceCmd() *cobra.Command {
	var oldStr, newStr string
	var oldFile, newFile string
	var startLine int

	cmd := &cobra.Command{
		Use:   "str-replace <path>",
		Short: "Replace an approximate old string with a new string",
		Long: "str-replace locates old_str in the file through a chain of matching tiers " +
			"(exact, whitespace-normalized, contiguous-run, fuzzy-line) and splices in new_str verbatim.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldText, err := resolveText(oldStr, oldFile)
			if err != nil {
				return err
			}
			newText, err := resolveText(newStr, newFile)
			if err != nil {
				return err
			}

			req := types.EditRequest{
				Path:    args[0],
				OldText: oldText,
				NewText: newText,
			}
			if cmd.Flags().Changed("start-line") {
				req.StartLineHint = &startLine
			}

			message, err := newEditor().StrReplace(req)
			if err != nil {
				return err
			}
			return emit(message)
		},
	}

	cmd.Flags().StringVar(&oldStr, "old", "", "Text to locate")
	cmd.Flags().StringVar(&newStr, "new", "", "Replacement text")
	cmd.Flags().StringVar(&oldFile, "old-file", "", "Read old text from this path ('-' for stdin)")
	cmd.Flags().StringVar(&newFile, "new-file", "", "Read replacement text from this path")
	cmd.Flags().IntVar(&startLine, "start-line", 0, "Approximate 1-based line where the match starts")
	return cmd
}

// newInsertCmd creates the "insert" command.
func newInsertCmd() *cobra.Command {
	var insertLine int
	var newStr string

	cmd := &cobra.Command{
		Use:   "insert <path>",
		Short: "Insert lines after a given line number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := newEditor().Insert(args[0], insertLine, newStr)
			if err != nil {
				return err
			}
			return emit(message)
		},
	}

	cmd.Flags().IntVar(&insertLine, "line", 0, "Insert after this 1-based line (0 inserts at the top)")
	cmd.Flags().StringVar(&newStr, "text", "", "Lines to insert")
	cmd.MarkFlagRequired("text")
	return cmd
}

// resolveText returns inline text, or reads it from a file when a path was
// given ('-' reads stdin). Inline text wins when both are set.
func resolveText(inline, fromFile string) (string, error) {
	if inline != "" || fromFile == "" {
		return inline, nil
	}
	if fromFile == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(fromFile)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", fromFile, err)
	}
	return string(data), nil
}
