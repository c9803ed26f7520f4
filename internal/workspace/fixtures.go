package workspace

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/GriffinCanCode/QuadDesk/internal/storage"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type fixtureSet struct {
	Programs []fixtureProgram `yaml:"programs"`
}

type fixtureProgram struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
}

// seedFixtures writes the bundled starter programs into fs. Every
// window gets the same set at startup.
func seedFixtures(fs *storage.FileSystem) error {
	var set fixtureSet
	if err := yaml.Unmarshal(fixturesYAML, &set); err != nil {
		return fmt.Errorf("parse fixtures: %w", err)
	}
	for _, p := range set.Programs {
		fd, err := fs.OpenCreate(p.Name)
		if err != nil {
			return fmt.Errorf("create %q: %w", p.Name, err)
		}
		content := strings.TrimRight(p.Source, "\n")
		if err := fs.Write(fd, []byte(content)); err != nil {
			fs.Close(fd)
			return fmt.Errorf("write %q: %w", p.Name, err)
		}
		if err := fs.Close(fd); err != nil {
			return fmt.Errorf("close %q: %w", p.Name, err)
		}
	}
	return nil
}
