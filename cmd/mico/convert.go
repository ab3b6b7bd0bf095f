package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-mico"
	"github.com/KimNorgaard/go-mico/internal/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConvertCmd(a *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a mico file to JSON, YAML or TOML",
		Long: `Convert a mico file to another format.

json  an array of single-key objects; order and duplicate keys are kept
yaml  a mapping in source order; duplicate keys are written as they appear
toml  a table; when a key repeats the last entry wins`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(to)
			if format == "" {
				format = a.cfg.ConvertFormat
			}
			if !config.ValidFormat(format) {
				return fmt.Errorf("unknown format %q: want one of %s", to, strings.Join(config.Formats, ", "))
			}

			doc, _, err := a.readDocument(cmd, args)
			if err != nil {
				return err
			}
			a.log.Debug().Str("format", format).Msg("Converting document")

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				return writeJSON(out, doc)
			case "yaml":
				return writeYAML(out, doc)
			default:
				return writeTOML(out, doc)
			}
		},
	}

	cmd.Flags().StringVarP(&to, "to", "t", "", "target format: json, yaml or toml (default from config)")
	return cmd
}

// plain returns a string or a []string for v.
func plain(v mico.Value) interface{} {
	if s, ok := v.Text(); ok {
		return s
	}
	return v.MustItems()
}

func writeJSON(w io.Writer, doc mico.Document) error {
	entries := make([]map[string]interface{}, len(doc))
	for i, e := range doc {
		entries[i] = map[string]interface{}{e.Key: plain(e.Value)}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func writeYAML(w io.Writer, doc mico.Document) error {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range doc {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}
		var val *yaml.Node
		if s, ok := e.Value.Text(); ok {
			val = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
		} else {
			val = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for _, item := range e.Value.MustItems() {
				val.Content = append(val.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item})
			}
			if len(val.Content) == 0 {
				val.Style = yaml.FlowStyle
			}
		}
		root.Content = append(root.Content, key, val)
	}
	if len(root.Content) == 0 {
		root.Style = yaml.FlowStyle
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}
	return enc.Close()
}

func writeTOML(w io.Writer, doc mico.Document) error {
	table := make(map[string]interface{}, len(doc))
	for _, e := range doc {
		table[e.Key] = plain(e.Value)
	}
	return toml.NewEncoder(w).Encode(table)
}
