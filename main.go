package main

import (
	"fmt"
	"os"
	"strings"

	"pepfeat_go/acc_profile"
	"pepfeat_go/benchmark"
	"pepfeat_go/check"
	"pepfeat_go/config"
	"pepfeat_go/pep_gen"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Pepfeat - Custom Help Menu
Usage:
  pepfeat <tool> [options]

Tools:
  acc_profile		Encode peptides and compute ACC feature vectors (CSV output)
  pep_gen		Generate random peptide lists for testing
  check			Run diagnostic self-test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Pepfeat - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tPepfeat:\t\t%s\n", config.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tACC Profile:\t\t%s\n", config.ACC_Profile)
	fmt.Printf("\tPeptide Generator:\t%s\n", config.Pep_Gen)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.Check)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executible-specific help flags
	for _, arg := range os.Args[1:] {
		if len(os.Args) < 3 {
			if arg == "-h" || arg == "-help" {
				printCustomHelp()
			}
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "acc_profile":
			acc_profile.Run(cleanedArgs)
		case "pep_gen":
			pep_gen.Run(cleanedArgs)
		case "check":
			check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("pepfeat %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
