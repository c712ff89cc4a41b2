package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

type tableWriter = *tabwriter.Writer

// render writes v as YAML or JSON, or as a table produced by table.
func render(w io.Writer, format string, v any, table func(tableWriter) error) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		if err := table(tw); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
		return tw.Flush()
	}
	return fmt.Errorf("unknown output format %q", format)
}
