package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimlens/internal/config"
	"claimlens/internal/dataset"
)

func taggedComplaintRow(t *testing.T, cause string) map[string]string {
	t.Helper()
	table := dataset.New([]string{config.ColCause})
	table.AppendRow([]dataset.Value{dataset.String(cause)})
	require.NoError(t, TagComplaints(table))

	row := make(map[string]string)
	for _, col := range table.Columns {
		cells, err := table.Column(col)
		require.NoError(t, err)
		row[col] = cells[0].Text()
	}
	return row
}

func TestTagComplaintsMatchedRow(t *testing.T) {
	row := taggedComplaintRow(t, "Bolt was Not Tightened during install")

	assert.Equal(t, "Not Tightened", row[config.ColRootCause])
	assert.Equal(t, "Loose", row["Symptom Condition 1"])
	assert.Equal(t, "Cab P Clip", row["Symptom Condition 2"])
	assert.Equal(t, "Retightened", row["Symptom Condition 3"])
	assert.Equal(t, "Cab P Clip", row["Symptom Component 1"])
	assert.Equal(t, "Retightened", row["Symptom Component 2"])
	assert.Equal(t, "Cab P Clip", row["Symptom Component 3"])
	assert.Equal(t, "Retightened", row["Fix Condition 1"])
	assert.Equal(t, "Cab P Clip", row["Fix Condition 2"])
	assert.Equal(t, "Retightened", row["Fix Condition 3"])
	assert.Equal(t, "Cab P Clip", row["Fix Component 1"])
	assert.Equal(t, "Cab P Clip", row["Fix Component 2"])
	assert.Equal(t, "Cab P Clip", row["Fix Component 3"])
}

func TestTagComplaintsUnmatchedRowDefaults(t *testing.T) {
	row := taggedComplaintRow(t, "gremlins, probably")

	assert.Equal(t, RootCauseOther, row[config.ColRootCause])
	// condition columns default to blank, component columns to "Other",
	// except the two trailing fix components which stay blank
	for _, col := range []string{
		"Symptom Condition 1", "Symptom Condition 2", "Symptom Condition 3",
		"Fix Condition 1", "Fix Condition 2", "Fix Condition 3",
		"Fix Component 2", "Fix Component 3",
	} {
		assert.Equal(t, "", row[col], col)
	}
	for _, col := range []string{
		"Symptom Component 1", "Symptom Component 2", "Symptom Component 3",
		"Fix Component 1",
	} {
		assert.Equal(t, "Other", row[col], col)
	}
}

func TestTagComplaintsColumnOrder(t *testing.T) {
	table := dataset.New([]string{"ID", config.ColCause})
	table.AppendRow([]dataset.Value{dataset.String("1"), dataset.String("Leaking hose")})
	require.NoError(t, TagComplaints(table))

	// originals first, derived appended in a fixed order
	assert.Equal(t, []string{
		"ID", config.ColCause, config.ColRootCause,
		"Symptom Condition 1", "Symptom Condition 2", "Symptom Condition 3",
		"Symptom Component 1", "Symptom Component 2", "Symptom Component 3",
		"Fix Condition 1", "Fix Condition 2", "Fix Condition 3",
		"Fix Component 1", "Fix Component 2", "Fix Component 3",
	}, table.Columns)
}

func TestTagComplaintsMissingCauseColumn(t *testing.T) {
	table := dataset.New([]string{"ID"})
	table.AppendRow([]dataset.Value{dataset.String("1")})

	err := TagComplaints(table)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrColumnMissing)
}

func TestClassifyFailureComponent(t *testing.T) {
	tests := []struct {
		name     string
		verbatim string
		want     string
	}{
		{"steering scenario", "the steering wheel vibrates", "steering"},
		{"uppercase", "STEERING is stiff", "steering"},
		{"scan order wins", "module near the sensor is dead", "sensor"},
		{"substring inside word", "harnesses were chewed", "harness"},
		{"nothing known", "it just feels wrong", "Other"},
		{"empty", "", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFailureComponent(tt.verbatim))
		})
	}
}

func TestClassifyCost(t *testing.T) {
	tests := []struct {
		name   string
		cost   float64
		want   string
		wantOK bool
	}{
		{"low bin", 50, "<100", true},
		{"boundary 100 stays low", 100, "<100", true},
		{"middle bin", 250, "100-500", true},
		{"boundary 500", 500, "100-500", true},
		{"upper middle bin", 750, "500-1000", true},
		{"boundary 1000", 1000, "500-1000", true},
		{"open top bin", 1000.01, ">1000", true},
		{"large", 250000, ">1000", true},
		{"zero has no bin", 0, "", false},
		{"negative has no bin", -10, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyCost(tt.cost)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTagCosts(t *testing.T) {
	table := dataset.New([]string{config.ColTotalCost, config.ColCustomerVerbatim})
	table.AppendRow([]dataset.Value{dataset.Number(750), dataset.String("the steering wheel vibrates")})
	table.AppendRow([]dataset.Value{dataset.Empty(), dataset.String("strut broke")})
	table.AppendRow([]dataset.Value{dataset.Number(0), dataset.String("no idea")})
	require.NoError(t, TagCosts(table))

	components, err := table.Column(config.ColFailureComponent)
	require.NoError(t, err)
	assert.Equal(t, "steering", components[0].Text())
	assert.Equal(t, "strut", components[1].Text())
	assert.Equal(t, "Other", components[2].Text())

	categories, err := table.Column(config.ColCostCategory)
	require.NoError(t, err)
	assert.Equal(t, "500-1000", categories[0].Text())
	assert.True(t, categories[1].IsEmpty(), "missing cost has no category")
	assert.True(t, categories[2].IsEmpty(), "zero cost has no category")
}

func TestTagCostsMissingColumns(t *testing.T) {
	table := dataset.New([]string{config.ColTotalCost})
	table.AppendRow([]dataset.Value{dataset.Number(10)})
	err := TagCosts(table)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrColumnMissing)
}
