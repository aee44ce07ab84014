package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// printResult renders v on the command's stdout in the configured output
// format.
func printResult(cmd *cobra.Command, v any) error {
	if settings != nil && settings.Output == "text" {
		return printText(cmd.OutOrStdout(), v)
	}
	return printJSON(cmd.OutOrStdout(), v)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printText renders v as aligned path/value lines. The value is round
// tripped through JSON so the field names match the json output.
func printText(out io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	writeText(w, "", decoded)
	return w.Flush()
}

func writeText(w io.Writer, prefix string, v any) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			writeText(w, joinPath(prefix, k), val[k])
		}
	case []any:
		for i, item := range val {
			writeText(w, fmt.Sprintf("%s[%d]", prefix, i), item)
		}
	case nil:
		fmt.Fprintf(w, "%s\t\n", prefix)
	default:
		fmt.Fprintf(w, "%s\t%v\n", prefix, val)
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
