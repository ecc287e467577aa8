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

var sectionRegex = regexp.MustCompile(`^(\s*)\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes the configuration to disk with consistent ordering.
// Fields keep their struct order; sections are sorted alphabetically.
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

// EncodeOrdered renders cfg as TOML with sorted sections.
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

// sortTOMLSections sorts TOML content so sections are in alphabetical order.
func sortTOMLSections(content string) string {
	type section struct {
		header string
		lines  []string
	}

	var sections []section
	var current *section
	var preamble []string

	for _, line := range strings.Split(content, "\n") {
		if match := sectionRegex.FindStringSubmatch(line); match != nil {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &section{header: match[2], lines: []string{line}}
			continue
		}
		if current != nil {
			current.lines = append(current.lines, line)
		} else {
			preamble = append(preamble, line)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].header < sections[j].header
	})

	var result strings.Builder
	for _, line := range preamble {
		result.WriteString(line)
		result.WriteString("\n")
	}
	for _, sec := range sections {
		// One blank line between sections.
		if s := result.String(); s != "" && !strings.HasSuffix(s, "\n\n") {
			result.WriteString("\n")
		}
		for _, line := range trimTrailingBlank(sec.lines) {
			result.WriteString(line)
			result.WriteString("\n")
		}
	}

	output := strings.Trim(result.String(), "\n")
	if output != "" {
		output += "\n"
	}
	return output
}

func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
