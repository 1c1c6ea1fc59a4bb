// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"go-portfolio-fx/internal/component"
	"go-portfolio-fx/pkg/render"
)

// categoryDefinition - кольцо в JSON-файле каталога.
type categoryDefinition struct {
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	Radius       float64 `json:"radius"`
	Layer        float64 `json:"layer"`
	ScreenRadius float64 `json:"screen_radius"`
}

// skillDefinition - навык в JSON-файле каталога. Цвет в виде #RRGGBB.
type skillDefinition struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	Category string `json:"category"`
}

type catalogFile struct {
	Categories []categoryDefinition `json:"categories"`
	Skills     []skillDefinition    `json:"skills"`
}

// ErrEmptyCatalog возвращается, если в файле нет ни одного навыка.
var ErrEmptyCatalog = errors.New("catalog has no skills")

// LoadCatalog читает каталог навыков из JSON-файла.
func LoadCatalog(path string) (Catalog, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}
	cat, err := ParseCatalog(file)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	log.Printf("Loaded %d skills in %d categories from %s", len(cat.Skills), len(cat.Categories), path)
	return cat, nil
}

// ParseCatalog разбирает и проверяет JSON каталога.
func ParseCatalog(data []byte) (Catalog, error) {
	var raw catalogFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return Catalog{}, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if len(raw.Skills) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}

	var cat Catalog
	known := make(map[string]bool, len(raw.Categories))
	for i, def := range raw.Categories {
		if def.Name == "" {
			return Catalog{}, fmt.Errorf("category %d has no name", i)
		}
		if known[def.Name] {
			return Catalog{}, fmt.Errorf("duplicate category %q", def.Name)
		}
		if def.Radius <= 0 {
			return Catalog{}, fmt.Errorf("category %q: radius must be positive", def.Name)
		}
		known[def.Name] = true
		title := def.Title
		if title == "" {
			title = def.Name
		}
		cat.Categories = append(cat.Categories, component.Category{
			Name:         def.Name,
			Title:        title,
			Radius:       def.Radius,
			Layer:        def.Layer,
			ScreenRadius: def.ScreenRadius,
		})
	}

	for i, def := range raw.Skills {
		if def.Name == "" {
			return Catalog{}, fmt.Errorf("skill %d has no name", i)
		}
		if !known[def.Category] {
			return Catalog{}, fmt.Errorf("skill %q: unknown category %q", def.Name, def.Category)
		}
		clr, err := render.ParseHex(def.Color)
		if err != nil {
			return Catalog{}, fmt.Errorf("skill %q: %w", def.Name, err)
		}
		cat.Skills = append(cat.Skills, component.Skill{Name: def.Name, Color: clr, Category: def.Category})
	}
	return cat, nil
}
