/*
Axion CLI Calculator - Cobra Command Structure
===============================================

This file implements the Cobra-based command structure for Axion calculator.
The root command launches the interactive REPL over the dimensional
expression language: every line is scanned, built into an expression
tree, and evaluated to a (scalar, unit) pair.
*/

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"axion/catalog"
	"axion/history"
	"axion/lineparser"
	"axion/settings"
	"axion/unit"

	"github.com/spf13/cobra"
)

const banner = `
  ╔═╗─┐ ┬┬┌─┐┌┐┌
  ╠═╣┌┴┬┘││ ││││
  ╩ ╩┴ └─┴└─┘┘└┘
`

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

var rootCmd = &cobra.Command{
	Use:   "axion",
	Short: "Axion - A CGS dimensional calculator",
	Long: colorCyan + banner + colorReset + `
` + colorBold + `Axion` + colorReset + ` evaluates physical-quantity expressions in the CGS system:
  ` + colorGreen + `✓` + colorReset + ` Dimensional arithmetic with automatic unit algebra
  ` + colorGreen + `✓` + colorReset + ` Built-in physical constants and elementary functions
  ` + colorGreen + `✓` + colorReset + ` Calculation history and session management
  ` + colorGreen + `✓` + colorReset + ` Customizable output precision`,
	Run: startREPL,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// startREPL launches the interactive calculator session.
func startREPL(cmd *cobra.Command, args []string) {
	scanner := bufio.NewScanner(os.Stdin)

	printWelcome()

	for {
		fmt.Print(colorCyan + "» " + colorReset)

		if !scanner.Scan() {
			fmt.Println(colorYellow + "\nGoodbye!" + colorReset)
			break
		}

		input := strings.TrimSpace(scanner.Text())

		if input == "" {
			continue
		}

		switch {
		case input == "exit" || input == "quit":
			fmt.Println(colorYellow + "Goodbye!" + colorReset)
			return

		case input == "clear" || input == "cls":
			clearScreen()
			printWelcome()
			continue

		case input == "help":
			printHelp()
			continue

		case input == "history":
			if err := history.Show(); err != nil {
				fmt.Printf(colorRed+"Error displaying history: %v\n"+colorReset, err)
			}
			continue

		case strings.HasPrefix(input, "precision "):
			handlePrecision(input)
			continue

		default:
			handleExpression(input)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Printf(colorRed+"Input error: %v\n"+colorReset, err)
	}
}

func printWelcome() {
	fmt.Println(colorCyan + banner + colorReset)
	fmt.Println(colorBold + "  A CGS Dimensional Calculator" + colorReset)
	fmt.Println(colorDim + "  Type 'help' for commands or 'exit' to quit\n" + colorReset)
}

func printHelp() {
	fmt.Println(colorCyan + "╔════════════════════════════════════════════════════════════╗" + colorReset)
	fmt.Println(colorCyan + "║" + colorBold + "                    AXION CALCULATOR                       " + colorReset + colorCyan + "║" + colorReset)
	fmt.Println(colorCyan + "╚════════════════════════════════════════════════════════════╝" + colorReset)
	fmt.Println()

	fmt.Println(colorYellow + "┌─ BASIC COMMANDS ─────────────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorGreen+"<expression>"+colorReset, "Evaluate a dimensional expression")
	fmt.Printf("│ %-25s %s\n", colorGreen+"help"+colorReset, "Show this help message")
	fmt.Printf("│ %-25s %s\n", colorGreen+"exit"+colorReset, "Exit the calculator")
	fmt.Printf("│ %-25s %s\n", colorGreen+"clear"+colorReset, "Clear terminal screen")
	fmt.Printf("│ %-25s %s\n", colorGreen+"history"+colorReset, "Display calculation history")
	fmt.Printf("│ %-25s %s\n", colorGreen+"precision <n>"+colorReset, "Set decimal precision (0-20)")
	fmt.Println(colorYellow + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()

	printGroup(colorPurple, "NUMBERS", namesOf(catalog.NUMBERS))
	printGroup(colorBlue, "CONSTANTS", namesOf(catalog.CONSTANTS))
	printGroup(colorGreen, "FUNCTIONS", namesOf(catalog.FUNCTIONS))
	printGroup(colorCyan, "UNITS", namesOf(catalog.UNITS))

	fmt.Println(colorYellow + "┌─ EXAMPLES ───────────────────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorBold+"Basic:"+colorReset, "3*4+5, (2^3)^2")
	fmt.Printf("│ %-25s %s\n", colorBold+"Units:"+colorReset, "3cm * 4cm, 1cm + 1s  (errors)")
	fmt.Printf("│ %-25s %s\n", colorBold+"Functions:"+colorReset, "sqrt(4cm^2), sin(pi/2)")
	fmt.Printf("│ %-25s %s\n", colorBold+"Physics:"+colorReset, "electron_mass * c^2")
	fmt.Println(colorYellow + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()
}

// printGroup prints one unordered name listing, one name per line — the
// iteration order here follows Go's randomized map order and is
// intentionally left unspecified, matching the original hash-table
// listing this help screen is modeled on.
func printGroup(color, title string, names []string) {
	fmt.Println(color + "┌─ " + title + " " + strings.Repeat("─", 58-len(title)) + "┐" + colorReset)
	for _, name := range names {
		fmt.Printf("│ %-25s\n", name)
	}
	fmt.Println(color + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()
}

func namesOf[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names
}

func clearScreen() {
	fmt.Print("\033[H\033[2J")
}

// formatResult renders a scalar at the configured precision, with the
// same NaN/Inf guards the history marshaler uses.
func formatResult(q float64) string {
	switch {
	case math.IsNaN(q):
		return colorRed + "undefined (NaN)" + colorReset
	case math.IsInf(q, 1):
		return colorYellow + "+∞" + colorReset
	case math.IsInf(q, -1):
		return colorYellow + "-∞" + colorReset
	default:
		format := fmt.Sprintf("%%.%dg", settings.Precision)
		return colorGreen + fmt.Sprintf(format, q) + colorReset
	}
}

func handlePrecision(input string) {
	parts := strings.Fields(input)
	if len(parts) != 2 {
		fmt.Println(colorRed + "Usage: " + colorReset + "precision <number>")
		fmt.Println(colorDim + "   Example: precision 10" + colorReset)
		return
	}

	precision, err := strconv.Atoi(parts[1])
	if err != nil {
		fmt.Printf(colorRed+"Invalid number: %s\n"+colorReset, parts[1])
		return
	}

	if err := settings.Set(precision); err != nil {
		fmt.Printf(colorRed+"Error: %v\n"+colorReset, err)
		return
	}

	fmt.Printf(colorGreen+"Precision set to %d significant digits\n"+colorReset, settings.Precision)
}

// handleExpression scans, builds, and evaluates one line, printing its
// "{q} {unit}" result or the error that aborted it.
func handleExpression(input string) {
	result, err := lineparser.Parse(input)
	if err != nil {
		var lpErr *lineparser.Error
		if errors.As(err, &lpErr) {
			fmt.Printf(colorRed+"Error: %s\n"+colorReset, lpErr.Message)
			return
		}
		fmt.Printf(colorRed+"Error: %v\n"+colorReset, err)
		return
	}

	fmt.Printf(colorBold+"Result: "+colorReset+"%s%s\n", formatResult(result.Q), unit.Format(result.U))

	if err := history.Add(input, result.Q, result.U); err != nil {
		fmt.Printf(colorYellow+"Warning: Failed to save to history: %v\n"+colorReset, err)
	}
}
