package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumahcsv/pkg/housedata/models"
)

func TestWriteCSV(t *testing.T) {
	listings := []models.Listing{
		{Name: "Rumah Kemang", Price: 4500000000, BuildingArea: 250, LandArea: 300, Bedrooms: 4, Bathrooms: 3, Garage: 2},
		{Name: "Rumah, Tebet", Price: 100, BuildingArea: 1, LandArea: 1, Bedrooms: 1, Bathrooms: 1, Garage: 0},
	}

	dest := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(listings, dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	expected := "name,price,building_area,land_area,bedrooms,bathrooms,garage\n" +
		"Rumah Kemang,4500000000,250,300,4,3,2\n" +
		"\"Rumah, Tebet\",100,1,1,1,1,0\n"
	assert.Equal(t, expected, string(data))
}

func TestWriteCSVEmpty(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.csv")

	err := WriteCSV(nil, dest)
	assert.ErrorIs(t, err, ErrNoListings)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "no file may be written for an empty data set")
}
