package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"syntaxsample/internal/config"
	"syntaxsample/internal/logging"
	"syntaxsample/internal/sample"
)

// cli holds the state shared by every subcommand of one invocation.
type cli struct {
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *logging.Logger
}

// newRootCmd builds the command tree. Running it without a subcommand plays
// the fixture's entry sequence.
func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "sample",
		Short: "sample - runnable syntax-highlighting fixture",
		Long: `sample runs the fixture's entry sequence: it prints the sum of two
literals, then the value stored in a holder.

Subcommands expose the remaining fixture shapes: the interpolated greeting,
the even-filter-and-square transformation, and the additive function.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: c.runEntry,
	}

	greetCmd := &cobra.Command{
		Use:   "greet [name]",
		Short: "Print the interpolated greeting",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.runGreet,
	}

	squaresCmd := &cobra.Command{
		Use:   "squares [n...]",
		Short: "Print the square of each even number, in order",
		Long: `Filters the given integers (or the configured numbers when none are
given) down to the even ones and prints their squares on one line.`,
		RunE: c.runSquares,
	}

	addCmd := &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Print the sum of two integers",
		Long: `Adds two integers. Negative operands are accepted as-is; a sum that
does not fit in an int is an error.`,
		Args:  cobra.ExactArgs(2),
		RunE:  c.runAdd,
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "sample.yaml", "Config file path")

	rootCmd.AddCommand(greetCmd, squaresCmd, addCmd)
	return rootCmd
}

func (c *cli) init() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", c.configPath, err)
	}
	c.cfg = cfg

	logger, err := logging.New(cfg.Logging, c.verbose)
	if err != nil {
		return err
	}
	c.logger = logger

	logger.For(logging.CategoryConfig).Debug("Configuration loaded",
		zap.String("path", c.configPath),
		zap.String("level", cfg.Logging.Level),
		zap.Bool("debug_mode", cfg.Logging.DebugMode),
		zap.Int("categories", len(cfg.Logging.Categories)))
	logger.For(logging.CategoryBoot).Debug("Logger initialized", zap.Bool("verbose", c.verbose))
	return nil
}

func (c *cli) runEntry(cmd *cobra.Command, args []string) error {
	e := sample.Entry{A: c.cfg.Sample.A, B: c.cfg.Sample.B, Held: c.cfg.Sample.HeldValue}
	c.logger.For(logging.CategorySample).Debug("Running entry sequence",
		zap.Int("a", e.A), zap.Int("b", e.B), zap.Int("held", e.Held))
	return sample.RunEntry(cmd.OutOrStdout(), e)
}

func (c *cli) runGreet(cmd *cobra.Command, args []string) error {
	name := c.cfg.Sample.Name
	if len(args) == 1 {
		name = args[0]
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), sample.Greeting(name))
	return err
}

func (c *cli) runSquares(cmd *cobra.Command, args []string) error {
	nums := c.cfg.Sample.Numbers
	if len(args) > 0 {
		parsed, err := parseInts(args)
		if err != nil {
			return err
		}
		nums = parsed
	}

	squares, err := sample.EvenSquares(nums)
	if err != nil {
		return err
	}
	c.logger.For(logging.CategorySample).Debug("Filtered even squares",
		zap.Ints("input", nums), zap.Ints("output", squares))

	_, err = fmt.Fprintln(cmd.OutOrStdout(), joinInts(squares))
	return err
}

func (c *cli) runAdd(cmd *cobra.Command, args []string) error {
	operands, err := parseInts(args)
	if err != nil {
		return err
	}
	sum, err := sample.AddInts(operands[0], operands[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), sum)
	return err
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", a, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

// isNegativeInt reports whether s is a negative integer literal such as "-7".
func isNegativeInt(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

// protectNegativeInts rewrites args so pflag does not read "-7" as a
// shorthand flag. A "--" is inserted before the first negative integer, and
// any flags that followed it (with their values) are moved in front of the
// "--". Args that already contain "--" before any negative integer are left
// alone.
func protectNegativeInts(root *cobra.Command, args []string) []string {
	first := -1
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return args
		}
		if isNegativeInt(a) {
			first = i
			break
		}
		if takesValue(root, a) {
			i++
		}
	}
	if first < 0 {
		return args
	}

	head := append([]string{}, args[:first]...)
	var tail []string
	rest := args[first:]
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		switch {
		case a == "--":
			tail = append(tail, rest[i+1:]...)
			i = len(rest)
		case isNegativeInt(a) || !strings.HasPrefix(a, "-") || a == "-":
			tail = append(tail, a)
		default:
			head = append(head, a)
			if takesValue(root, a) && i+1 < len(rest) {
				i++
				head = append(head, rest[i])
			}
		}
	}

	out := append(head, "--")
	return append(out, tail...)
}

// takesValue reports whether a is a persistent flag of root given without an
// inline value, so the next arg is its value.
func takesValue(root *cobra.Command, a string) bool {
	if !strings.HasPrefix(a, "-") || strings.Contains(a, "=") {
		return false
	}
	var f *pflag.Flag
	switch {
	case strings.HasPrefix(a, "--"):
		f = root.PersistentFlags().Lookup(a[2:])
	case len(a) == 2:
		f = root.PersistentFlags().ShorthandLookup(a[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(protectNegativeInts(rootCmd, os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
