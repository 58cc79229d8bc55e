package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ProjectFileName is the per-project repo manifest
const ProjectFileName = "qen.toml"

// Repo is one tracked repository record. Path is relative to the project
// directory; the engine resolves it but performs no other interpretation.
type Repo struct {
	URL    string `toml:"url"`
	Branch string `toml:"branch"`
	Path   string `toml:"path"`
}

// Project is a per-project manifest listing tracked repositories
type Project struct {
	Name  string `toml:"name"`
	Repos []Repo `toml:"repos"`
}

// LoadProject reads the project manifest from projectDir
func LoadProject(projectDir string) (*Project, error) {
	data, err := os.ReadFile(filepath.Join(projectDir, ProjectFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s not found in %s", ProjectFileName, projectDir)
		}
		return nil, fmt.Errorf("failed to read project manifest: %w", err)
	}

	var project Project
	if err := toml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}

	return &project, nil
}

// SaveProject writes the project manifest to projectDir
func SaveProject(projectDir string, project *Project) error {
	data, err := toml.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to marshal project manifest: %w", err)
	}

	if err := os.WriteFile(filepath.Join(projectDir, ProjectFileName), data, 0o644); err != nil {
		return fmt.Errorf("failed to write project manifest: %w", err)
	}

	return nil
}

// HasRepo reports whether the project already tracks (url, branch)
func (p *Project) HasRepo(url, branch string) bool {
	for _, repo := range p.Repos {
		if repo.URL == url && repo.Branch == branch {
			return true
		}
	}
	return false
}
