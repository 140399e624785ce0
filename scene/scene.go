package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Kind is the type of a scene object.
type Kind string

const (
	KindPerson Kind = "person"
	KindDog    Kind = "dog"
	KindCat    Kind = "cat"
	KindFish   Kind = "fish"
	KindWeapon Kind = "weapon"
)

// Format is a scene file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat is returned for scene files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("scene: unsupported format")

// Object declares one bindable object. Which fields are required depends on Kind.
type Object struct {
	ID   string `yaml:"id" toml:"id"`
	Kind Kind   `yaml:"kind" toml:"kind"`

	// person
	FirstName string `yaml:"firstName,omitempty" toml:"firstName,omitempty"`
	LastName  string `yaml:"lastName,omitempty" toml:"lastName,omitempty"`

	// dog, cat, fish, weapon
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`

	// dog, cat, fish
	Height int `yaml:"height,omitempty" toml:"height,omitempty"`

	// weapon
	Material string `yaml:"material,omitempty" toml:"material,omitempty"`
}

// Button attaches one behavior of one object to a clickable element.
type Button struct {
	ID       string `yaml:"id" toml:"id"`
	Object   string `yaml:"object" toml:"object"`
	Behavior string `yaml:"behavior" toml:"behavior"`
	Strategy string `yaml:"strategy" toml:"strategy"`
}

// Scene is a full demo definition.
type Scene struct {
	Objects []Object `yaml:"objects" toml:"objects"`
	Buttons []Button `yaml:"buttons" toml:"buttons"`
}

// ButtonIDs returns button ids in declaration order.
func (s *Scene) ButtonIDs() []string {
	ids := make([]string, 0, len(s.Buttons))
	for _, b := range s.Buttons {
		ids = append(ids, b.ID)
	}
	return ids
}

//go:embed default.yaml
var defaultScene []byte

// Default returns the built-in scene.
func Default() (*Scene, error) {
	return Parse(defaultScene, FormatYAML)
}

// FormatOf picks a Format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, strconv.Quote(path))
	}
}

// Load reads, parses and validates a scene file.
func Load(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	sc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes and validates a scene.
func Parse(data []byte, format Format) (*Scene, error) {
	var sc Scene
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("parse error: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, strconv.Quote(string(format)))
	}
	if err := Validate(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
