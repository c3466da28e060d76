package merge

import (
	"encoding/json"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/atheneum-dev/forge/internal/debug"
)

// Format identifies a structured document format for the dict strategy.
type Format string

const (
	// FormatJSON is the JSON document format.
	FormatJSON Format = "json"
	// FormatYAML is the YAML document format.
	FormatYAML Format = "yaml"
	// FormatTOML is the TOML document format.
	FormatTOML Format = "toml"
	// FormatUnknown means the file extension maps to no structured format.
	FormatUnknown Format = ""
)

// FormatOf picks the structured format from a file name, checking every
// compound suffix so "settings.json.in" still reads as JSON.
func FormatOf(fileName string) Format {
	base := fileName
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	for _, part := range strings.Split(base, ".")[1:] {
		switch part {
		case "json":
			return FormatJSON
		case "yaml", "yml":
			return FormatYAML
		case "toml":
			return FormatTOML
		}
	}
	return FormatUnknown
}

// decodeDoc parses a structured document into a generic map. Undecodable
// or unknown-format content yields an empty document; the dict strategy
// then treats the side as empty rather than failing the merge.
func decodeDoc(data []byte, format Format) map[string]interface{} {
	doc := map[string]interface{}{}
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		return map[string]interface{}{}
	}
	if err != nil {
		debug.Debug("[merge] Treating undecodable %s document as empty: %v", format, err)
		return map[string]interface{}{}
	}
	return doc
}

// encodeDoc serializes a generic map back to its format. Key order and
// comments of the original document are not preserved.
func encodeDoc(doc map[string]interface{}, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatTOML:
		return toml.Marshal(doc)
	default:
		return nil, nil
	}
}
