// internal/defs/catalog.go
package defs

import (
	"go-portfolio-fx/internal/component"
	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/pkg/render"
)

// Catalog - набор колец и навыков, который раскладывает движок орбит.
type Catalog struct {
	Categories []component.Category
	Skills     []component.Skill
}

// Имена категорий встроенного каталога.
const (
	CategoryProgramming = "programming"
	CategoryFrameworks  = "frameworks"
	CategoryTools       = "tools"
)

// DefaultCatalog возвращает встроенный каталог: три кольца (3/5/7, слои +2/0/-2)
// и двадцать навыков. Каждый вызов отдаёт новые слайсы.
func DefaultCatalog() Catalog {
	return Catalog{
		Categories: []component.Category{
			{Name: CategoryProgramming, Title: "Programming", Radius: 3, Layer: 2, ScreenRadius: config.RingScreenRadii[0]},
			{Name: CategoryFrameworks, Title: "Web & Frameworks", Radius: 5, Layer: 0, ScreenRadius: config.RingScreenRadii[1]},
			{Name: CategoryTools, Title: "Tools & Systems", Radius: 7, Layer: -2, ScreenRadius: config.RingScreenRadii[2]},
		},
		Skills: []component.Skill{
			skill("Python", "#3776AB", CategoryProgramming),
			skill("JavaScript", "#F7DF1E", CategoryProgramming),
			skill("Java", "#ED8B00", CategoryProgramming),
			skill("C++", "#00599C", CategoryProgramming),

			skill("React.js", "#61DAFB", CategoryFrameworks),
			skill("Node.js", "#339933", CategoryFrameworks),
			skill("HTML5", "#E34F26", CategoryFrameworks),
			skill("CSS", "#1572B6", CategoryFrameworks),
			skill("Flutter", "#02569B", CategoryFrameworks),
			skill("SQL", "#336791", CategoryFrameworks),
			skill("Flask", "#000000", CategoryFrameworks),
			skill("Dart", "#0175C2", CategoryFrameworks),

			skill("Docker", "#2496ED", CategoryTools),
			skill("AWS", "#FF9900", CategoryTools),
			skill("Git", "#F05032", CategoryTools),
			skill("Linux", "#FCC624", CategoryTools),
			skill("TensorFlow", "#FF6F00", CategoryTools),
			skill("PyTorch", "#EE4C2C", CategoryTools),
			skill("OpenCV", "#5C3EE8", CategoryTools),
			skill("Raspberry Pi", "#A22846", CategoryTools),
		},
	}
}

func skill(name, hex, category string) component.Skill {
	return component.Skill{Name: name, Color: render.MustParseHex(hex), Category: category}
}

// Category ищет кольцо по имени.
func (c Catalog) Category(name string) (component.Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return component.Category{}, false
}
