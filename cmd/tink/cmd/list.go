package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tink-dev/tink/internal/editor"
	"gopkg.in/yaml.v3"
)

var listCmd = &cobra.Command{
	Use:     "list [-t target] [-o text|json|yaml]",
	Aliases: []string{"ls"},
	Short:   "List launch entries",
	Long: `List the launch entries in the editor's debug configuration.

Examples:
  tink list
  tink list -t vscode -o yaml`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listTarget string
	listOutput string
)

func init() {
	listCmd.Flags().StringVarP(&listTarget, "target", "t", "", "editor: zed or vscode (default from config, else zed)")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(listCmd)
}

// listItem is the editor-neutral view of an entry.
type listItem struct {
	Key     string   `json:"key" yaml:"key"`
	Adapter string   `json:"adapter,omitempty" yaml:"adapter,omitempty"`
	Request string   `json:"request" yaml:"request"`
	Program string   `json:"program" yaml:"program"`
	Args    []string `json:"args,omitempty" yaml:"args,omitempty"`
}

func runList(cmd *cobra.Command, args []string) (err error) {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	defer e.closeInto(&err)

	target, err := e.resolveTarget(listTarget)
	if err != nil {
		return err
	}

	entries, path, err := e.dispatcher.List(target)
	if err != nil {
		return err
	}

	items := make([]listItem, 0, len(entries))
	for _, en := range entries {
		items = append(items, listItem{
			Key:     en.Key,
			Adapter: en.Adapter,
			Request: en.Request,
			Program: en.Program,
			Args:    en.Args,
		})
	}

	return writeList(cmd.OutOrStdout(), listOutput, path, items)
}

func writeList(w io.Writer, format, path string, items []listItem) error {
	switch format {
	case "json":
		data, err := json.Marshal(items)
		if err != nil {
			return fmt.Errorf("marshaling entries: %w", err)
		}
		_, err = w.Write(editor.Format(data))
		return err

	case "yaml":
		data, err := yaml.Marshal(items)
		if err != nil {
			return fmt.Errorf("marshaling entries: %w", err)
		}
		_, err = w.Write(data)
		return err

	case "text", "":
		if len(items) == 0 {
			fmt.Fprintf(w, "No launch entries in %s\n", path)
			return nil
		}
		fmt.Fprintf(w, "%s:\n", path)
		for _, it := range items {
			command := strings.Join(append([]string{it.Program}, it.Args...), " ")
			fmt.Fprintf(w, "  %-24s %-12s %s\n", it.Key, orDash(it.Adapter), command)
		}
		return nil

	default:
		return fmt.Errorf("unknown output format %q (valid: text, json, yaml)", format)
	}
}
