/*
Quanta CLI Calculator - Cobra Command Structure
================================================

This file implements the Cobra-based command structure for the quanta
calculator. The root command launches the interactive REPL; the convert
subcommand gives scripts a non-interactive path to the same conversion
the REPL's "to <unit>" suffix performs.
*/

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"quanta/eval"
	"quanta/history"
	"quanta/parser"
	"quanta/repl"
	"quanta/settings"

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
	colorDim    = "\033[2m"
	colorBold   = "\033[1m"
)

var rootCmd = &cobra.Command{
	Use:   "quanta",
	Short: "quanta - a dimension-aware CLI calculator",
	Long: colorCyan + banner + colorReset + `
` + colorBold + `quanta` + colorReset + ` is a feature-rich command-line calculator supporting:
  ` + colorGreen + `✓` + colorReset + ` Mathematical expressions with variables
  ` + colorGreen + `✓` + colorReset + ` Dimension-checked unit conversions across the SI catalog
  ` + colorGreen + `✓` + colorReset + ` Built-in mathematical functions and physical constants
  ` + colorGreen + `✓` + colorReset + ` Calculation history and session management
  ` + colorGreen + `✓` + colorReset + ` Customizable precision and settings`,
	Run: startREPL,
}

var convertCmd = &cobra.Command{
	Use:   "convert <value-with-unit> to <target-unit>",
	Short: "Convert a quantity to another unit without entering the REPL",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runConvert,
}

// Execute runs the root command.
func Execute() error {
	rootCmd.AddCommand(convertCmd)
	return rootCmd.Execute()
}

func init() {
	if err := settings.Load(); err != nil {
		fmt.Printf(colorYellow+"Warning: failed to load settings: %v\n"+colorReset, err)
	}
	if settings.HistoryPath != "" {
		history.Path = settings.HistoryPath
	}
}

// runConvert implements "quanta convert 10 km to m": the leading args form
// the source quantity, a literal "to", then the target unit expression.
func runConvert(cmd *cobra.Command, args []string) error {
	toIdx := -1
	for i, a := range args {
		if a == "to" {
			toIdx = i
			break
		}
	}
	if toIdx < 1 || toIdx == len(args)-1 {
		return fmt.Errorf("usage: quanta convert <value> <unit> to <unit>")
	}

	ctx := eval.NewQuantityContext()
	sourceText := strings.Join(args[:toIdx], " ")
	targetText := strings.Join(args[toIdx+1:], " ")

	expr, err := parser.Parse(sourceText)
	if err != nil {
		return err
	}
	q, err := eval.Eval(expr, ctx)
	if err != nil {
		return err
	}

	converted, matched, err := eval.ConvertTo(q, targetText, ctx)
	if err != nil {
		return err
	}
	if !matched {
		return fmt.Errorf("cannot convert %s to %s: dimensions do not match", q.Unit.String(), targetText)
	}

	fmt.Printf("%s = %s %s\n", q.String(), converted.String(), strings.TrimSpace(targetText))
	return nil
}

// startREPL launches the interactive calculator session.
func startREPL(cmd *cobra.Command, args []string) {
	session := repl.NewSession()
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

		case input == "help":
			printHelp()

		case input == "variables" || input == "vars":
			showVariables(session)

		case input == "history":
			if err := history.ShowHistory(); err != nil {
				fmt.Printf(colorRed+"Error displaying history: %v\n"+colorReset, err)
			}

		case strings.HasPrefix(input, "precision "):
			handlePrecision(input)

		default:
			handleLine(session, input)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Printf(colorRed+"Input error: %v\n"+colorReset, err)
	}
}

func printWelcome() {
	fmt.Println(colorCyan + banner + colorReset)
	fmt.Println(colorBold + "  A Dimension-Aware CLI Calculator" + colorReset)
	fmt.Println(colorDim + "  Type 'help' for commands or 'exit' to quit\n" + colorReset)
}

func printHelp() {
	fmt.Println(colorCyan + "╔════════════════════════════════════════════════════════════╗" + colorReset)
	fmt.Println(colorCyan + "║" + colorBold + "                    QUANTA CALCULATOR                      " + colorReset + colorCyan + "║" + colorReset)
	fmt.Println(colorCyan + "╚════════════════════════════════════════════════════════════╝" + colorReset)
	fmt.Println()

	fmt.Println(colorYellow + "┌─ BASIC COMMANDS ─────────────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorGreen+"<expression>"+colorReset, "Evaluate a mathematical expression")
	fmt.Printf("│ %-25s %s\n", colorGreen+"<expr> to <unit>"+colorReset, "Convert a result to another unit")
	fmt.Printf("│ %-25s %s\n", colorGreen+"name = <expr>"+colorReset, "Assign a variable")
	fmt.Printf("│ %-25s %s\n", colorGreen+"help"+colorReset, "Show this help message")
	fmt.Printf("│ %-25s %s\n", colorGreen+"exit"+colorReset, "Exit the calculator")
	fmt.Printf("│ %-25s %s\n", colorGreen+"clear"+colorReset, "Clear terminal screen")
	fmt.Printf("│ %-25s %s\n", colorGreen+"variables"+colorReset, "Show assigned variables")
	fmt.Printf("│ %-25s %s\n", colorGreen+"history"+colorReset, "Display calculation history")
	fmt.Println(colorYellow + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()

	fmt.Println(colorPurple + "┌─ MATHEMATICAL FUNCTIONS ─────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorBold+"Trigonometric:"+colorReset, "sin, cos, tan, asin, acos, atan, atan2")
	fmt.Printf("│ %-25s %s\n", colorBold+"Hyperbolic:"+colorReset, "sinh, cosh, tanh, asinh, acosh, atanh")
	fmt.Printf("│ %-25s %s\n", colorBold+"Logarithmic:"+colorReset, "ln, log")
	fmt.Printf("│ %-25s %s\n", colorBold+"Rounding:"+colorReset, "floor, ceil, round, trunc, fract")
	fmt.Printf("│ %-25s %s\n", colorBold+"Utility:"+colorReset, "abs, sign, sqrt, cbrt, min, max")
	fmt.Println(colorPurple + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()

	fmt.Println(colorBlue + "┌─ VARIABLES & CONSTANTS ──────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorBold+"Assignment:"+colorReset, "x = 5, area = pi * r^2")
	fmt.Printf("│ %-25s %s\n", colorBold+"Constants:"+colorReset, "pi, e, c, h, N_A, e_charge, G, k_B")
	fmt.Println(colorBlue + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()

	fmt.Println(colorGreen + "┌─ UNIT CONVERSION ────────────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorBold+"REPL syntax:"+colorReset, "<value> <unit> to <unit>")
	fmt.Printf("│ %-25s %s\n", colorBold+"CLI syntax:"+colorReset, "quanta convert <value> <unit> to <unit>")
	fmt.Printf("│ %-25s %s\n", colorBold+"Catalog:"+colorReset, "SI base/derived units with all metric prefixes")
	fmt.Printf("│ %-25s %s\n", colorBold+"Example:"+colorReset, colorCyan+"100 cm to m"+colorReset)
	fmt.Println(colorGreen + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()

	fmt.Println(colorYellow + "┌─ SETTINGS ───────────────────────────────────────────────┐" + colorReset)
	fmt.Printf("│ %-25s %s\n", colorGreen+"precision <n>"+colorReset, "Store a precision setting (0-20); output format is unchanged")
	fmt.Println(colorYellow + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()
}

func clearScreen() {
	fmt.Print("\033[H\033[2J")
}

func showVariables(session *repl.Session) {
	names := session.Variables()
	if len(names) == 0 {
		fmt.Println(colorYellow + "No variables defined." + colorReset)
		return
	}

	fmt.Println(colorCyan + "┌─ Stored Variables ───────────────────────────────────────┐" + colorReset)
	for _, name := range names {
		value, _ := session.Context().GetVariable(name)
		fmt.Printf(colorCyan+"│ "+colorReset+colorBold+"%-15s"+colorReset+" = %s\n", name, value.String())
	}
	fmt.Println(colorCyan + "└──────────────────────────────────────────────────────────┘" + colorReset)
	fmt.Println()
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

	fmt.Printf(colorGreen+"Precision set to %d decimal places\n"+colorReset, settings.Precision)
}

// handleLine evaluates one REPL line (arithmetic, unit conversion suffix, or
// variable assignment, per the session's own grammar) and records it to
// history on success.
func handleLine(session *repl.Session, input string) {
	result, err := session.Eval(input)
	if err != nil {
		fmt.Printf(colorRed+"Error: %v\n"+colorReset, err)
		return
	}

	fmt.Printf(colorBold+"Result: "+colorReset+colorGreen+"%s\n"+colorReset, result)

	if err := history.AddHistory(input, result); err != nil {
		fmt.Printf(colorYellow+"Warning: failed to save to history: %v\n"+colorReset, err)
	}
}
