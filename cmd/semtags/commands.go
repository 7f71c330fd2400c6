package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/semtags/config"
	"github.com/c360studio/semtags/mapping"
	"github.com/c360studio/semtags/tags"
	"github.com/c360studio/semtags/vocabulary/scene"
)

// appFunc returns the App built by the root command's pre-run hook.
type appFunc func() *App

func printSet(w io.Writer, s tags.Set) {
	for _, t := range s.Sorted() {
		fmt.Fprintln(w, t.GoString())
	}
}

func resolveCmd(app appFunc) *cobra.Command {
	return tagCommand(&cobra.Command{
		Use:   "resolve <tag>...",
		Short: "Resolve tag names, negations, generators and aliases",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := tagArgs(cmd, args)
			if err != nil {
				return err
			}
			set, err := app().ParseTags(tokens)
			if err != nil {
				return err
			}
			printSet(cmd.OutOrStdout(), set)
			return nil
		},
	})
}

func checkCmd(app appFunc) *cobra.Command {
	return tagCommand(&cobra.Command{
		Use:   "check <tag>...",
		Short: "Report whether a tag set is contradictory",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := tagArgs(cmd, args)
			if err != nil {
				return err
			}
			set, err := app().ParseTags(tokens)
			if err != nil {
				return err
			}
			if tags.Contradiction(set) {
				fmt.Fprintln(cmd.OutOrStdout(), "contradictory")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "consistent")
			}
			return nil
		},
	})
}

// parseSides resolves the --lhs and --rhs flags of a binary command.
func parseSides(a *App, lhs, rhs []string) (tags.Set, tags.Set, error) {
	l, err := a.ParseTags(lhs)
	if err != nil {
		return nil, nil, fmt.Errorf("lhs: %w", err)
	}
	r, err := a.ParseTags(rhs)
	if err != nil {
		return nil, nil, fmt.Errorf("rhs: %w", err)
	}
	return l, r, nil
}

func relationCmd(app appFunc, use, short string, rel func(*App, tags.Set, tags.Set) bool) *cobra.Command {
	var lhs, rhs []string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			l, r, err := parseSides(a, lhs, rhs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rel(a, l, r))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&lhs, "lhs", nil, "Left-hand tags (comma-separated)")
	cmd.Flags().StringSliceVar(&rhs, "rhs", nil, "Right-hand tags (comma-separated)")
	return cmd
}

func diffCmd(app appFunc) *cobra.Command {
	var lhs, rhs []string
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Print the tags of LHS not already covered by RHS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, r, err := parseSides(app(), lhs, rhs)
			if err != nil {
				return err
			}
			printSet(cmd.OutOrStdout(), tags.Difference(l, r))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&lhs, "lhs", nil, "Left-hand tags (comma-separated)")
	cmd.Flags().StringSliceVar(&rhs, "rhs", nil, "Right-hand tags (comma-separated)")
	return cmd
}

var listKinds = []string{"rooms", "objects", "semantics", "subparts", "floors", "generators", "predicates"}

func listCmd(app appFunc) *cobra.Command {
	return &cobra.Command{
		Use:       "list <" + strings.Join(listKinds, "|") + ">",
		Short:     "List vocabulary members, generators or predicates",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: listKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "rooms":
				printEnums(w, tags.RoomTypes())
			case "objects":
				printEnums(w, tags.ObjectTypes())
			case "semantics":
				printEnums(w, tags.SemanticsValues())
			case "subparts":
				printEnums(w, tags.SubpartValues())
			case "floors":
				printEnums(w, tags.Floors())
			case "generators":
				for _, g := range app().registry.All() {
					fmt.Fprintf(w, "%s\t%s\n", g.GeneratorName(), g.ID())
				}
			case "predicates":
				for _, p := range scene.Predicates() {
					fmt.Fprintf(w, "%s\t%s\n", p, scene.PredicateIRI(p))
				}
			}
			return nil
		},
	}
}

func printEnums[T tags.EnumTag](w io.Writer, members []T) {
	for _, m := range members {
		fmt.Fprintf(w, "%s\t%s\n", m.Name(), m.Value())
	}
}

func mapCmd(app appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Map natural-language phrases onto tags and stage flags",
	}

	lookup := func(use, short string, fn func(*mapping.Tables, string) (string, bool)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <phrase>...",
			Short: short,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				phrase := strings.Join(args, " ")
				got, ok := fn(app().tables, phrase)
				if !ok {
					return fmt.Errorf("no %s mapping for %q", use, phrase)
				}
				fmt.Fprintln(cmd.OutOrStdout(), got)
				return nil
			},
		}
	}

	cmd.AddCommand(
		lookup("room", "Map a room name to its Semantics tag", func(t *mapping.Tables, s string) (string, bool) {
			tag, ok := t.MapRoom(s)
			return tag.GoString(), ok
		}),
		lookup("object", "Map an object name to its Semantics tag", func(t *mapping.Tables, s string) (string, bool) {
			tag, ok := t.MapObject(s)
			return tag.GoString(), ok
		}),
		lookup("location", "Normalize a placement phrase", func(t *mapping.Tables, s string) (string, bool) {
			loc, ok := t.ParseLocation(s)
			return string(loc), ok
		}),
		lookup("stage", "Map a placement phrase to a detailed stage type", func(t *mapping.Tables, s string) (string, bool) {
			st, ok := t.ParseStageType(s)
			return string(st), ok
		}),
		&cobra.Command{
			Use:   "flags <location>...",
			Short: "Derive solver stage flags from a location phrase",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				printFlags(cmd.OutOrStdout(), app().tables.LocationStageFlags(strings.Join(args, " ")))
				return nil
			},
		},
		stagesCmd(app),
	)
	return cmd
}

func stagesCmd(app appFunc) *cobra.Command {
	var exclusive bool
	cmd := &cobra.Command{
		Use:   "stages <stage>...",
		Short: "Derive solver stage flags from stage types or phrases",
		Long: `Each argument is a stage type (e.g. on_wall) or a phrase that maps to one
(e.g. "next to"). With --exclusive only the named stages are enabled.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			types := make(map[mapping.StageType]bool, len(args))
			for _, arg := range args {
				st := mapping.StageType(arg)
				if !slices.Contains(mapping.StageTypes(), st) {
					var ok bool
					if st, ok = app().tables.ParseStageType(arg); !ok {
						return fmt.Errorf("unknown stage type %q", arg)
					}
				}
				types[st] = true
			}
			printFlags(cmd.OutOrStdout(), mapping.StageTypesToFlags(types, exclusive))
			return nil
		},
	}
	cmd.Flags().BoolVar(&exclusive, "exclusive", false, "Enable only the named stages")
	return cmd
}

func printFlags(w io.Writer, f mapping.StageFlags) {
	fmt.Fprintf(w, "large=%t medium=%t small=%t\n", f.Large, f.Medium, f.Small)
}

func exportCmd(app appFunc) *cobra.Command {
	var nodeID, format string
	cmd := tagCommand(&cobra.Command{
		Use:   "export <tag>...",
		Short: "Export a node's tags as RDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := tagArgs(cmd, args)
			if err != nil {
				return err
			}
			a := app()
			set, err := a.ParseTags(tokens)
			if err != nil {
				return err
			}
			out, err := a.Export(nodeID, set, format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	})
	cmd.Flags().StringVar(&nodeID, "node", "node", "Node ID (dotted)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (turtle, ntriples, jsonld); overrides config")
	return cmd
}

func configCmd(app appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or initialize configuration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := yaml.Marshal(app().cfg)
				if err != nil {
					return fmt.Errorf("marshal config: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Create the user config file with defaults if missing",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := config.NewLoader(app().logger).EnsureUserConfig()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
	)
	return cmd
}
