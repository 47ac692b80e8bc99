package config

import (
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	podiumerrors "github.com/alexisbeaulieu97/podium/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig reads a device catalogue from disk and validates it.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, podiumerrors.NewParseError(path, 0, err)
	}

	return ParseBytes(path, data)
}

// ParseBytes decodes and validates an in-memory catalogue. path only labels errors.
// Decode failures inside a device preset name the preset, e.g. "devices[1] (pixel_8)".
func ParseBytes(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		line := extractLine(err)
		if preset, ok := presetAtLine(data, line); ok {
			err = fmt.Errorf("%s: %w", preset, err)
		}
		return nil, podiumerrors.NewParseError(path, line, err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

// presetAtLine finds the devices entry whose text spans line. It only works
// when the document is well-formed YAML, which holds for type mismatches.
func presetAtLine(data []byte, line int) (string, bool) {
	if line <= 0 {
		return "", false
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil || len(root.Content) == 0 {
		return "", false
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return "", false
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]
		if key.Value != "devices" || value.Kind != yaml.SequenceNode {
			continue
		}

		// The last preset runs until the next top-level key.
		sectionEnd := math.MaxInt
		if i+2 < len(doc.Content) {
			sectionEnd = doc.Content[i+2].Line
		}

		for j, item := range value.Content {
			end := sectionEnd
			if j+1 < len(value.Content) {
				end = value.Content[j+1].Line
			}
			if line < item.Line || line >= end {
				continue
			}

			label := fmt.Sprintf("devices[%d]", j)
			if id := mappingValue(item, "id"); id != "" {
				label += fmt.Sprintf(" (%s)", id)
			}
			return label, true
		}
	}

	return "", false
}

func mappingValue(node *yaml.Node, key string) string {
	if node.Kind != yaml.MappingNode {
		return ""
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1].Value
		}
	}
	return ""
}
