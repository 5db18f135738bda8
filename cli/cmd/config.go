package cmd

import (
	"os"
	"path"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is read from an optional brio.yaml at the root of the source tree.
// Sources lists directories (relative to --directory) to scan; when absent
// the whole --directory subtree is scanned. Extension overrides the .brio
// file suffix.
type Config struct {
	Sources   []string `yaml:"sources"`
	Extension string   `yaml:"extension"`
}

// ErrConfigNotFound is returned by LoadConfig when the directory has no
// brio.yaml at all. Callers treat it as "use defaults"; any other error from
// LoadConfig means a config exists but could not be read or parsed.
var ErrConfigNotFound = errors.New("no brio.yaml found")

func LoadConfig() (Config, error) {
	var result Config

	configFilename := path.Join(directory, "brio.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return Config{}, errors.Wrap(ErrConfigNotFound, directory)
	}

	yamlFile, err := os.ReadFile(configFilename)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(yamlFile, &result); err != nil {
		return Config{}, errors.Wrap(err, "could not parse "+configFilename)
	}
	return result, nil
}
