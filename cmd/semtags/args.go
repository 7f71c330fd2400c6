package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// tagCommand turns off pflag parsing for cmd so negated tokens such as
// "-Door" and "--Door" reach the tag parser as positional arguments.
// Flags of cmd and its parents are recognized by splitTagArgs instead.
func tagCommand(cmd *cobra.Command) *cobra.Command {
	cmd.DisableFlagParsing = true
	cmd.Args = cobra.ArbitraryArgs
	return cmd
}

type flagValue struct {
	name  string
	value string
}

// splitTagArgs separates the flags cmd knows from tag tokens. Only exact
// long names ("--node", "--node=x") and single-letter shorthands ("-f",
// "-f=x") count as flags; everything else, and all arguments after "--",
// is a token.
func splitTagArgs(cmd *cobra.Command, args []string) ([]string, []flagValue, error) {
	// Merges inherited persistent flags into cmd.Flags().
	cmd.InheritedFlags()
	fs := cmd.Flags()

	var (
		tokens []string
		flags  []flagValue
	)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(tokens, args[i+1:]...), flags, nil
		}
		f, value, inline := lookupFlag(fs, arg)
		if f == nil {
			tokens = append(tokens, arg)
			continue
		}
		if !inline {
			switch {
			case f.NoOptDefVal != "":
				value = f.NoOptDefVal
			case i+1 < len(args):
				i++
				value = args[i]
			default:
				return nil, nil, fmt.Errorf("flag needs an argument: %s", arg)
			}
		}
		flags = append(flags, flagValue{name: f.Name, value: value})
	}
	return tokens, flags, nil
}

func lookupFlag(fs *pflag.FlagSet, arg string) (*pflag.Flag, string, bool) {
	switch {
	case strings.HasPrefix(arg, "--"):
		name, value, inline := strings.Cut(arg[2:], "=")
		return fs.Lookup(name), value, inline
	case strings.HasPrefix(arg, "-"):
		name, value, inline := strings.Cut(arg[1:], "=")
		if len(name) != 1 {
			return nil, "", false
		}
		return fs.ShorthandLookup(name), value, inline
	}
	return nil, "", false
}

// parseTagFlags applies the flags found in args to cmd. It returns
// pflag.ErrHelp when help was requested so cobra prints usage.
func parseTagFlags(cmd *cobra.Command, args []string) error {
	_, flags, err := splitTagArgs(cmd, args)
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	for _, fv := range flags {
		if err := fs.Set(fv.name, fv.value); err != nil {
			return fmt.Errorf("invalid argument %q for --%s flag: %w", fv.value, fv.name, err)
		}
	}
	if help, _ := fs.GetBool("help"); help {
		return pflag.ErrHelp
	}
	return nil
}

// tagArgs returns the tag tokens of args, requiring at least one.
func tagArgs(cmd *cobra.Command, args []string) ([]string, error) {
	tokens, _, err := splitTagArgs(cmd, args)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%s requires at least 1 tag", cmd.Name())
	}
	return tokens, nil
}
