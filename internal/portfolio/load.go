package portfolio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/types"
)

// LoadItems loads portfolio items from a JSON array file and normalizes them
func LoadItems(path string) ([]types.PortfolioItem, error) {
	var items []types.PortfolioItem
	if err := readJSON(path, &items); err != nil {
		return nil, err
	}
	if err := NormalizeItems(items); err != nil {
		return nil, err
	}
	return items, nil
}

// LoadProjects loads legacy projects from a JSON array file
func LoadProjects(path string) ([]types.LegacyProject, error) {
	var projects []types.LegacyProject
	if err := readJSON(path, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// LoadCatalog loads a skill catalog from a JSON array file and normalizes it
func LoadCatalog(path string) ([]types.CatalogSkill, error) {
	var catalog []types.CatalogSkill
	if err := readJSON(path, &catalog); err != nil {
		return nil, err
	}
	if err := NormalizeCatalog(catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

func readJSON(path string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	if err := json.Unmarshal(content, v); err != nil {
		return &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}
	return nil
}
