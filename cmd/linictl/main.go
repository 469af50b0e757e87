// Command linictl is lini's command-line front end (spec §1's external
// "command-line front-end" collaborator), built the way the teacher's
// cmd/mount.go builds its CLI: a spf13/cobra root command, one
// subcommand per operation, configuration taken entirely from flags.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/quandangv/lini/internal/collab"
	"github.com/quandangv/lini/internal/colour"
	"github.com/quandangv/lini/internal/doc"
	"github.com/quandangv/lini/internal/doclog"
	"github.com/quandangv/lini/internal/node"
	"github.com/quandangv/lini/internal/snapshot"
)

var (
	jsonOutput bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "linictl",
	Short: "Load, evaluate, and inspect lini configuration documents",
}

func main() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit output as JSON via ojg")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report document load warnings and snapshot confirmations")
	cobra.OnInitialize(func() { doclog.SetEnabled(verbose) })

	rootCmd.AddCommand(getCmd, setCmd, dumpCmd, snapshotCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newEvalContext() *node.EvalContext {
	return node.NewEvalContext(context.Background(), collab.Env{}, collab.Shell{}, collab.NewOSFilesystem("."), colour.New(), func() int64 {
		return time.Now().UnixMilli()
	})
}

func loadDocument(path string) (*doc.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	document, _ := doc.Load(f, "")
	return document, nil
}

var getCmd = &cobra.Command{
	Use:   "get <file> <path>",
	Short: "Evaluate and print a single key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		document, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		value, ok := document.Root.GetChild(newEvalContext(), args[1])
		if !ok {
			return fmt.Errorf("key not found or failed to evaluate: %s", args[1])
		}
		if jsonOutput {
			return printJSON(map[string]string{args[1]: value})
		}
		fmt.Println(value)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <file> <path> <value>",
	Short: "Write a value through a Settable key",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		document, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		if ok := document.Root.Set(newEvalContext(), args[1], args[2]); !ok {
			return fmt.Errorf("key not found or not settable: %s", args[1])
		}
		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		return document.WriteTo(f, newEvalContext())
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Evaluate and print every key in the document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		document, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		entries := collectEntries(document)
		if jsonOutput {
			out := make(map[string]string, len(entries))
			for _, e := range entries {
				out[e.Path] = e.Value
			}
			return printJSON(out)
		}
		for _, e := range entries {
			fmt.Printf("%s = %s\n", e.Path, e.Value)
		}
		return nil
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <file> <db>",
	Short: "Evaluate every key and record the result in a sqlite snapshot store",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		document, err := loadDocument(args[0])
		if err != nil {
			return err
		}
		store, err := snapshot.Open(args[1])
		if err != nil {
			return err
		}
		defer store.Close()

		var entries []snapshot.Entry
		for _, e := range collectEntries(document) {
			entries = append(entries, snapshot.Entry{Path: e.Path, Value: e.Value})
		}
		id, err := store.Take(entries, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("snapshot %d taken (%d keys)\n", id, len(entries))
		return nil
	},
}

type entry struct {
	Path  string
	Value string
}

// collectEntries walks every key currently reachable in the document's
// root Wrapper, evaluating each through a fresh EvalContext and skipping
// keys that fail to evaluate.
func collectEntries(document *doc.Document) []entry {
	var out []entry
	ctx := newEvalContext()
	var walk func(w *node.Wrapper, prefix string)
	walk = func(w *node.Wrapper, prefix string) {
		w.IterateChildren(func(name string, slot *node.Slot) {
			path := name
			if prefix != "" {
				path = prefix + "." + name
			}
			if slot.Value == nil {
				return
			}
			if child, ok := slot.Value.(*node.Wrapper); ok {
				if child.Value != nil {
					if v, err := child.Value.Get(ctx); err == nil {
						out = append(out, entry{Path: path, Value: v})
					}
				}
				walk(child, path)
				return
			}
			if v, err := slot.Value.Get(ctx); err == nil {
				out = append(out, entry{Path: path, Value: v})
			}
		})
	}
	walk(document.Root, "")
	return out
}

func printJSON(v any) error {
	s, err := oj.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(s))
	return nil
}
