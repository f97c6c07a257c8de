package schemagen

import (
	"bytes"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/schemagen/hints"
	"github.com/reoring/schemagen/schemaerr"
)

// Settings control one generation run.
type Settings struct {
	// OutputDirectory receives one .go file per generated unit.
	OutputDirectory string `json:"outputDirectory" yaml:"outputDirectory"`
	// RootClassName names the struct generated for the schema root.
	RootClassName string `json:"rootClassName" yaml:"rootClassName"`
	// SchemaName prefixes the visitor scaffold types. Defaults to
	// RootClassName.
	SchemaName string `json:"schemaName,omitempty" yaml:"schemaName,omitempty"`
	// NamespaceName is the Go package name of the generated files.
	NamespaceName string `json:"namespaceName" yaml:"namespaceName"`

	SealClasses         bool `json:"sealClasses,omitempty" yaml:"sealClasses,omitempty"`
	GenerateOverrides   bool `json:"generateOverrides" yaml:"generateOverrides"`
	GenerateCloningCode bool `json:"generateCloningCode,omitempty" yaml:"generateCloningCode,omitempty"`
	ForceOverwrite      bool `json:"forceOverwrite,omitempty" yaml:"forceOverwrite,omitempty"`

	CopyrightNotice string `json:"copyrightNotice,omitempty" yaml:"copyrightNotice,omitempty"`
	// HintsPath is read by GenerateFromFiles when Hints is nil.
	HintsPath string `json:"hintsPath,omitempty" yaml:"hintsPath,omitempty"`

	Hints *hints.Registry `json:"-" yaml:"-"`
}

// DefaultSettings returns the settings used before a file or flags are
// applied.
func DefaultSettings() Settings {
	return Settings{
		NamespaceName:     "model",
		GenerateOverrides: true,
	}
}

// EffectiveSchemaName is SchemaName, or RootClassName when unset.
func (s Settings) EffectiveSchemaName() string {
	if s.SchemaName != "" {
		return s.SchemaName
	}
	return s.RootClassName
}

// Validate checks the settings for logical errors.
func (s Settings) Validate() error {
	if s.OutputDirectory == "" {
		return invalidSetting("outputDirectory", "must not be empty")
	}
	if !exportedIdent(s.RootClassName) {
		return invalidSetting("rootClassName", fmt.Sprintf("%q is not an exported Go identifier", s.RootClassName))
	}
	if s.SchemaName != "" && !exportedIdent(s.SchemaName) {
		return invalidSetting("schemaName", fmt.Sprintf("%q is not an exported Go identifier", s.SchemaName))
	}
	if !token.IsIdentifier(s.NamespaceName) || s.NamespaceName == "_" {
		return invalidSetting("namespaceName", fmt.Sprintf("%q is not a valid package name", s.NamespaceName))
	}
	return nil
}

func exportedIdent(s string) bool {
	return token.IsIdentifier(s) && unicode.IsUpper([]rune(s)[0])
}

func invalidSetting(name, msg string) error {
	return schemaerr.New(schemaerr.KindSettings, schemaerr.CodeInvalidSetting, name, msg)
}

// LoadSettings reads settings from a JSON or YAML file on top of
// DefaultSettings. Unknown keys are rejected. The result is not validated
// so callers can apply overrides first.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}
	s := DefaultSettings()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&s)
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&s)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file %q: %w", path, err)
	}
	return s, nil
}
