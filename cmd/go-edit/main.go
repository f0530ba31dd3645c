// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command go-edit exposes the fuzzy structural patch engine as a CLI:
// view, create, str-replace, and insert against files on disk.
//
// Implements: prd004-technology-stack R1-R4.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/go-edit/internal/logging"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "go-edit",
		Short: "Fuzzy structural patch engine for coding-assistant edits",
		Long: "go-edit locates an approximate old string inside a source file and replaces it " +
			"with a new string, tolerating re-indentation, whitespace drift, echoed line-number " +
			"prefixes, and partial line drift.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool("debug") {
				logging.SetLevel("debug")
			}
		},
	}

	// Global flags.
	rootCmd.PersistentFlags().String("workdir", ".", "Directory relative paths resolve against")
	rootCmd.PersistentFlags().Int("context-lines", 4, "Snippet context lines around an edit")
	rootCmd.PersistentFlags().Float64("fuzzy-tolerance", 0.05, "Fuzzy tier per-line edit-distance tolerance")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable styled output")

	// Bind flags to viper.
	viper.BindPFlag("workdir", rootCmd.PersistentFlags().Lookup("workdir"))
	viper.BindPFlag("context-lines", rootCmd.PersistentFlags().Lookup("context-lines"))
	viper.BindPFlag("fuzzy-tolerance", rootCmd.PersistentFlags().Lookup("fuzzy-tolerance"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))

	// Env vars: GO_EDIT_WORKDIR, GO_EDIT_CONTEXT_LINES, etc.
	viper.SetEnvPrefix("GO_EDIT")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".go-edit")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newStrReplaceCmd())
	rootCmd.AddCommand(newInsertCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print go-edit version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("go-edit %s\n", version)
		},
	}
}
