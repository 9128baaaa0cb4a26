package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfilesCSV(t *testing.T) {
	path := writeCSV(t, `PlantType,Category,StartIndoorsWeeks,TransplantWeeksAfterFrostMin,TransplantWeeksAfterFrostMax,SowWeeksFromFrost,DaysToMaturity,NeedsTrellis
Tomato,vegetable,6,1,3,,75,no
Pea,vegetable,,,,-6,60,yes
`)

	rows, err := LoadProfilesCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	tomato := rows[0]
	assert.Equal(t, "Tomato", tomato.PlantType)
	assert.Equal(t, "vegetable", tomato.Category)
	assert.Equal(t, "Tomato (default)", tomato.Profile.Name)
	require.NotNil(t, tomato.Profile.StartIndoorsWeeks)
	assert.Equal(t, 6, *tomato.Profile.StartIndoorsWeeks)
	require.NotNil(t, tomato.Profile.TransplantWeeksAfterFrostMin)
	assert.Equal(t, 1, *tomato.Profile.TransplantWeeksAfterFrostMin)
	assert.Nil(t, tomato.Profile.SowWeeksFromFrost, "blank cell stays nil")
	require.NotNil(t, tomato.Profile.NeedsTrellis)
	assert.False(t, *tomato.Profile.NeedsTrellis)

	pea := rows[1]
	require.NotNil(t, pea.Profile.SowWeeksFromFrost)
	assert.Equal(t, -6, *pea.Profile.SowWeeksFromFrost, "negative sow weeks parse")
	require.NotNil(t, pea.Profile.NeedsTrellis)
	assert.True(t, *pea.Profile.NeedsTrellis)
}

// TestLoadProfilesCSVHeaderAliases: spreadsheet-style headers with BOM,
// spaces and alternate names still map to the right columns.
func TestLoadProfilesCSVHeaderAliases(t *testing.T) {
	path := writeCSV(t, "\uFEFFcrop,group,Indoor Weeks,direct-sow-weeks,DTM,support\nBasil,herb,6,0,65,false\n")

	rows, err := LoadProfilesCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	basil := rows[0]
	assert.Equal(t, "Basil", basil.PlantType)
	assert.Equal(t, "herb", basil.Category)
	require.NotNil(t, basil.Profile.StartIndoorsWeeks)
	assert.Equal(t, 6, *basil.Profile.StartIndoorsWeeks)
	require.NotNil(t, basil.Profile.SowWeeksFromFrost)
	assert.Equal(t, 0, *basil.Profile.SowWeeksFromFrost)
	require.NotNil(t, basil.Profile.DaysToMaturity)
	assert.Equal(t, 65, *basil.Profile.DaysToMaturity)
}

func TestLoadProfilesCSVMissingPlantColumn(t *testing.T) {
	path := writeCSV(t, "foo,bar\n1,2\n")

	_, err := LoadProfilesCSV(path)
	assert.Error(t, err)
}

func TestLoadProfilesCSVSkipsBlankNames(t *testing.T) {
	path := writeCSV(t, "PlantType,DaysToMaturity\nTomato,75\n,60\n")

	rows, err := LoadProfilesCSV(path)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
