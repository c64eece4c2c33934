// ABOUTME: Tests for the fixed-width text report.
// ABOUTME: Full reports are compared against golden files in testdata.
package summary

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/fitness/internal/models"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "rewrite golden files")

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name+".golden")
	if *update {
		require.NoError(t, os.WriteFile(path, []byte(got), 0o644))
	}
	want, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, string(want), got)
}

func TestBuildReport_Golden(t *testing.T) {
	ws := []models.Workout{
		workout(1, "2024-01-15", "Running", 30, kcal(300)),
		workout(2, "2024-01-20", "Cycling", 45, kcal(450)),
	}
	ms := []models.Measurement{
		{ID: 1, UserID: 1, RecordDate: date("2024-01-20"), Weight: 70, Height: height(175)},
	}
	assertGolden(t, "two_workouts_one_measurement", BuildReport(ws, ms))
}

func TestBuildReport_EmptyGolden(t *testing.T) {
	assertGolden(t, "empty", BuildReport(nil, nil))
}

func TestBuildReport_UnsetValues(t *testing.T) {
	ws := []models.Workout{workout(3, "2024-02-01", "Yoga", 60, nil)}
	ms := []models.Measurement{{ID: 4, RecordDate: date("2024-02-01"), Weight: 64.25}}

	got := BuildReport(ws, ms)
	require.Contains(t, got, "3           01/02/2024  Yoga                      60                -\n")
	require.Contains(t, got, "4               01/02/2024         64.3            -    N/A\n")
	require.Contains(t, got, "Latest Weight       64.3 kg\n")
	require.Contains(t, got, "Latest BMI          N/A\n")
}
