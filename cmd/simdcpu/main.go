// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/simdcpu/cpu"
	"github.com/ezrec/simdcpu/script"
	"github.com/ezrec/simdcpu/snapshot"
	"github.com/ezrec/simdcpu/translate"
)

func main() {
	var base uint64
	var verbose bool
	var lang string

	rootCmd := &cobra.Command{
		Use:   "simdcpu",
		Short: "x86-64 SIMD register and memory state workbench",
		Long: `Sets up, inspects and compares the architectural state of an x86-64 CPU
with AVX-512 vector registers, using Starlark scripts.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if len(lang) != 0 {
				if err := translate.SetLanguage(lang); err != nil {
					log.Fatalf("--lang %v: %v", lang, err)
				}
			}
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().Uint64Var(&base, "base", cpu.DEFAULT_BASE, "Memory base address")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "Message language (BCP 47 tag)")

	newScript := func() *script.Script {
		c := cpu.NewCpu(base)
		c.Verbose = verbose
		c.Memory.Verbose = verbose
		sc := script.NewScript(c)
		sc.Verbose = verbose
		return sc
	}

	var snapshotFile string
	var restoreFile string
	var tree bool

	runCmd := &cobra.Command{
		Use:   "run FILE.star",
		Short: "Run a script and show the resulting state",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			sc := newScript()
			if len(restoreFile) != 0 {
				restore(sc.Cpu, restoreFile)
			}

			src, err := os.ReadFile(args[0])
			if err != nil {
				log.Fatalf("%v: %v", args[0], err)
			}

			err = sc.Exec(args[0], src)
			if err != nil {
				log.Fatalf("%v: %v", args[0], err)
			}

			if tree {
				fmt.Print(sc.Cpu.Tree().String())
			} else {
				fmt.Println(sc.Cpu.String())
			}

			if len(snapshotFile) != 0 {
				save(sc.Cpu, snapshotFile)
			}
		},
	}
	runCmd.Flags().StringVarP(&snapshotFile, "snapshot", "s", "", "Save the final state to a JSON file")
	runCmd.Flags().StringVarP(&restoreFile, "restore", "r", "", "Load the initial state from a JSON file")
	runCmd.Flags().BoolVarP(&tree, "tree", "t", false, "Print the final state as a tree")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive Starlark session",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			sc := newScript()
			if len(restoreFile) != 0 {
				restore(sc.Cpu, restoreFile)
			}
			err := repl(sc, os.Stdout)
			if err != nil {
				log.Fatal(err)
			}
		},
	}
	replCmd.Flags().StringVarP(&restoreFile, "restore", "r", "", "Load the initial state from a JSON file")

	diffCmd := &cobra.Command{
		Use:   "diff A.json B.json",
		Short: "Compare two saved states",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := os.ReadFile(args[0])
			if err != nil {
				log.Fatalf("%v: %v", args[0], err)
			}
			b, err := os.ReadFile(args[1])
			if err != nil {
				log.Fatalf("%v: %v", args[1], err)
			}

			same, report, err := snapshot.Diff(a, b)
			if err != nil {
				log.Fatalf("diff: %v", err)
			}
			if !same {
				fmt.Print(report)
				os.Exit(1)
			}
		},
	}

	rootCmd.AddCommand(runCmd, replCmd, diffCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func restore(c *cpu.Cpu, filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}

	st, err := snapshot.Unmarshal(data)
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}

	err = st.Restore(c)
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}
}

func save(c *cpu.Cpu, filename string) {
	data, err := snapshot.Capture(c).Marshal()
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}

	err = os.WriteFile(filename, data, 0o644)
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}
}
