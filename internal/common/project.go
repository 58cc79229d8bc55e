// Package common holds helpers shared by the CLI commands.
package common

import (
	"errors"
	"fmt"

	"github.com/data-yaml/qen/internal/config"
)

// LoadProject resolves the active project directory and its manifest.
// Errors are phrased for direct display to the user.
func LoadProject() (string, *config.Project, error) {
	cfg, err := config.Load(config.DefaultDir())
	if err != nil {
		if errors.Is(err, config.ErrNotInitialized) {
			return "", nil, fmt.Errorf("qen is not initialized: create %s/config.toml first", config.DefaultDir())
		}
		return "", nil, err
	}

	projectDir, err := cfg.ProjectDir()
	if err != nil {
		return "", nil, fmt.Errorf("no active project: set current_project in the qen config")
	}

	project, err := config.LoadProject(projectDir)
	if err != nil {
		return "", nil, err
	}

	if len(project.Repos) == 0 {
		return "", nil, fmt.Errorf("no repositories tracked in project %s", cfg.CurrentProject)
	}

	return projectDir, project, nil
}
