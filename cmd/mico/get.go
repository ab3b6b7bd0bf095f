package main

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-mico"
	"github.com/spf13/cobra"
)

func newGetCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "get KEY [file]",
		Short: "Print the value of a key",
		Long: `Print the value of the first entry with the given key. String values are
printed on one line, list values one item per line. With --all every entry
with the key is printed in order.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			doc, name, err := a.readDocument(cmd, args[1:])
			if err != nil {
				return err
			}

			values := doc.GetAll(key)
			if len(values) == 0 {
				return fmt.Errorf("key %q not found in %s", key, name)
			}
			if !all {
				values = values[:1]
			}

			out := cmd.OutOrStdout()
			for _, v := range values {
				if err := printValue(out, v); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "print every entry with the key")
	return cmd
}

func printValue(w io.Writer, v mico.Value) error {
	if s, ok := v.Text(); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	for _, item := range v.MustItems() {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	return nil
}
