package main

import (
	"bytes"
	"errors"
	"os"

	"github.com/KimNorgaard/go-mico"
	"github.com/spf13/cobra"
)

func newFmtCmd(a *app) *cobra.Command {
	var (
		indent int
		write  bool
	)

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Reformat a mico file",
		Long: `Parse a mico file and print it in canonical form: blank lines removed,
whitespace around keys and values trimmed and list items indented by the
configured number of spaces. Reads stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("indent") {
				indent = a.cfg.Indent
			}
			if write && (len(args) == 0 || args[0] == "-") {
				return errors.New("--write requires a file argument")
			}

			doc, name, err := a.readDocument(cmd, args)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := mico.NewEncoder(&buf, mico.Indent(indent)).Encode(doc); err != nil {
				return err
			}

			if !write {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			info, err := os.Stat(name)
			if err != nil {
				return err
			}
			if err := os.WriteFile(name, buf.Bytes(), info.Mode().Perm()); err != nil {
				return err
			}
			a.log.Info().Str("file", name).Msg("Rewrote file")
			return nil
		},
	}

	cmd.Flags().IntVarP(&indent, "indent", "i", 0, "spaces before list items (default from config)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result to the source file instead of stdout")
	return cmd
}
