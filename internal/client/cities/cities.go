// Package cities is the static location reference list used by the job
// filters and the posting/profile forms. The list ships embedded with the
// binary and is immutable for the life of the process.
package cities

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/quickworkapp/quickwork-cli/internal/client/models"
)

//go:embed cities.yaml
var citiesYAML []byte

// Directory is the in-memory city list.
type Directory struct {
	cities []models.City
}

// NewDirectory decodes the embedded list. The data is part of the binary, so
// a decode failure is a build defect, not a runtime condition.
func NewDirectory() (*Directory, error) {
	var cities []models.City
	if err := yaml.Unmarshal(citiesYAML, &cities); err != nil {
		return nil, fmt.Errorf("decoding embedded city list: %w", err)
	}
	return &Directory{cities: cities}, nil
}

// All returns the full list in declaration order.
func (d *Directory) All() []models.City {
	out := make([]models.City, len(d.cities))
	copy(out, d.cities)
	return out
}

// Search returns the cities whose name OR department contains query,
// case-insensitively. A blank query returns the full list.
func (d *Directory) Search(query string) []models.City {
	query = strings.TrimSpace(query)
	if query == "" {
		return d.All()
	}

	q := strings.ToLower(query)
	out := make([]models.City, 0, len(d.cities))
	for _, c := range d.cities {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Department), q) {
			out = append(out, c)
		}
	}
	return out
}

// Label formats a city the way forms consume it: "{name}, {department}".
func Label(c models.City) string {
	return fmt.Sprintf("%s, %s", c.Name, c.Department)
}
