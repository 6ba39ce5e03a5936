package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var tomlSectionHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes the configuration to disk with consistent ordering:
// top-level keys first, then tables sorted by name.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := EncodeOrdered(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EncodeOrdered renders the configuration as TOML in the same layout as the
// config file.
func EncodeOrdered(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

// sortTOMLSections reorders table blocks alphabetically by header.
// Keys that appear before the first header stay on top.
func sortTOMLSections(content string) string {
	type block struct {
		name  string
		lines []string
	}

	var preamble []string
	var blocks []block
	for _, line := range strings.Split(content, "\n") {
		if m := tomlSectionHeader.FindStringSubmatch(line); m != nil {
			blocks = append(blocks, block{name: m[1], lines: []string{line}})
			continue
		}
		if len(blocks) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &blocks[len(blocks)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].name < blocks[j].name })

	var out []string
	if head := strings.TrimSpace(strings.Join(preamble, "\n")); head != "" {
		out = append(out, head)
	}
	for _, b := range blocks {
		out = append(out, strings.TrimRight(strings.Join(b.lines, "\n"), "\n \t"))
	}
	return strings.Join(out, "\n\n") + "\n"
}
