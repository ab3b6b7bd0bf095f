package main

import (
	"fmt"
	"io"
	"os"

	"github.com/KimNorgaard/go-mico"
	"github.com/KimNorgaard/go-mico/internal/config"
	"github.com/KimNorgaard/go-mico/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	verbosity  int
	configPath string

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "mico",
		Short: "Format, query and convert mico configuration files",
		Long: `mico reads files in the mico configuration format: "key: value" lines
and list keys followed by "- item" lines. It can reformat them, print single
values and convert them to JSON, YAML or TOML.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(cmd.ErrOrStderr(), a.verbosity)
			a.log = logging.Component(cmd.Name())

			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log.Debug().
				Str("command", cmd.Name()).
				Str("config", cfg.Path).
				Int("indent", cfg.Indent).
				Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", fmt.Sprintf("config file (default %s)", config.DefaultPath()))

	rootCmd.AddCommand(
		newFmtCmd(a),
		newGetCmd(a),
		newConvertCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// readDocument parses the file named by args[0], or stdin when args is
// empty or names "-". It returns the document and a display name.
func (a *app) readDocument(cmd *cobra.Command, args []string) (mico.Document, string, error) {
	var (
		r    io.Reader
		name = "<stdin>"
	)
	if len(args) == 0 || args[0] == "-" {
		r = cmd.InOrStdin()
	} else {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return nil, name, err
		}
		defer f.Close()
		r = f
	}

	dec := mico.NewDecoder(r)
	var doc mico.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, name, fmt.Errorf("failed to read %s: %w", name, err)
	}
	a.log.Info().
		Str("input", name).
		Int("lines", dec.Line()).
		Int("entries", len(doc)).
		Msg("Parsed document")
	return doc, name, nil
}
