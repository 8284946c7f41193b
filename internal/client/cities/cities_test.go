package cities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickworkapp/quickwork-cli/internal/client/models"
)

func TestNewDirectory_LoadsEmbeddedList(t *testing.T) {
	d, err := NewDirectory()
	require.NoError(t, err)

	all := d.All()
	require.Len(t, all, 25)

	seen := map[string]bool{}
	for _, c := range all {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Department)
	}
}

func TestSearch_ByNameOrDepartment(t *testing.T) {
	d, err := NewDirectory()
	require.NoError(t, err)

	byName := d.Search("medell")
	require.Len(t, byName, 1)
	assert.Equal(t, "Medellín", byName[0].Name)

	byDept := d.Search("cundinamarca")
	require.Len(t, byDept, 1)
	assert.Equal(t, "Bogotá", byDept[0].Name)
}

func TestSearch_CaseCommutes(t *testing.T) {
	d, err := NewDirectory()
	require.NoError(t, err)

	lower := d.Search("bogotá")
	upper := d.Search("BOGOTÁ")
	assert.Equal(t, lower, upper)
	require.NotEmpty(t, lower)
}

func TestSearch_BlankReturnsAll(t *testing.T) {
	d, err := NewDirectory()
	require.NoError(t, err)

	assert.Equal(t, d.All(), d.Search(""))
	assert.Equal(t, d.All(), d.Search("   "))
}

func TestSearch_NoMatch(t *testing.T) {
	d, err := NewDirectory()
	require.NoError(t, err)

	assert.Empty(t, d.Search("springfield"))
}

func TestLabel(t *testing.T) {
	c := models.City{ID: "3", Name: "Cali", Department: "Valle del Cauca"}
	assert.Equal(t, "Cali, Valle del Cauca", Label(c))
}
