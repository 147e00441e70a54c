package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/impact-search/internal/catalog"
	"github.com/sells-group/impact-search/internal/model"
	"github.com/sells-group/impact-search/internal/resolver"
)

func hungerBundle(t *testing.T) model.Bundle {
	t.Helper()
	b, ok := resolver.New(catalog.Default()).Search("hunger")
	require.True(t, ok)
	return b
}

func TestWriteXLSX(t *testing.T) {
	b := hungerBundle(t)

	path := filepath.Join(t.TempDir(), "hunger.xlsx")
	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteXLSX(out, b))
	require.NoError(t, out.Close())

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 4)

	want := map[string]int{
		"Organizations": len(b.Organizations),
		"Campaigns":     len(b.Campaigns),
		"Volunteer":     len(b.VolunteerOpportunities),
		"Actions":       len(b.MicroActions),
	}
	for name, n := range want {
		sheet, ok := f.Sheet[name]
		require.True(t, ok, name)
		assert.Len(t, sheet.Rows, n+1, name)
	}

	orgs := f.Sheet["Organizations"]
	assert.Equal(t, "id", orgs.Rows[0].Cells[0].String())
	assert.Equal(t, b.Organizations[0].Name, orgs.Rows[1].Cells[1].String())

	campaigns := f.Sheet["Campaigns"]
	assert.Equal(t, string(b.Campaigns[0].Urgency), campaigns.Rows[1].Cells[5].String())
}

func TestWriteXLSX_EmptyBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteXLSX(out, model.Bundle{Query: "none"}))
	require.NoError(t, out.Close())

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 4)
	for _, s := range f.Sheets {
		assert.Len(t, s.Rows, 1, s.Name)
	}
}

func TestWriteCSV(t *testing.T) {
	b := hungerBundle(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, b))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+b.Count(model.FilterAll))
	assert.Equal(t, csvHeader, records[0])

	kinds := map[string]int{}
	for _, r := range records[1:] {
		require.Len(t, r, len(csvHeader))
		kinds[r[0]]++
	}
	assert.Equal(t, len(b.Organizations), kinds["organization"])
	assert.Equal(t, len(b.Campaigns), kinds["campaign"])
	assert.Equal(t, len(b.VolunteerOpportunities), kinds["volunteer"])
	assert.Equal(t, len(b.MicroActions), kinds["action"])

	first := records[1]
	assert.Equal(t, b.Organizations[0].ID, first[1])
	assert.Equal(t, b.Organizations[0].Name, first[2])
	assert.Equal(t, b.Organizations[0].Website, first[5])
}

func TestWriteCSV_FilteredBundle(t *testing.T) {
	b := hungerBundle(t).Filter(model.FilterActions)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, b))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+len(b.MicroActions))
	for _, r := range records[1:] {
		assert.Equal(t, "action", r[0])
		assert.NotEmpty(t, r[13])
	}
}

func TestWrite_Dispatch(t *testing.T) {
	b := hungerBundle(t)

	var csvBuf bytes.Buffer
	require.NoError(t, Write(&csvBuf, FormatCSV, b))
	assert.Contains(t, csvBuf.String(), "kind,id,title")

	var xlsxBuf bytes.Buffer
	require.NoError(t, Write(&xlsxBuf, FormatXLSX, b))
	// xlsx is a zip archive.
	assert.Equal(t, []byte("PK"), xlsxBuf.Bytes()[:2])

	err := Write(&bytes.Buffer{}, Format("pdf"), b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestWriteCSV_KeepsEveryField(t *testing.T) {
	b := model.Bundle{
		Organizations: []model.Organization{{
			ID: "o1", Name: "Reef Fund", Description: "Restores reefs", Website: "https://reef.example",
			Category: "Marine", Logo: "https://reef.example/logo.png",
		}},
		Campaigns: []model.Campaign{{
			ID: "c1", Title: "Save the Reef", Organization: "Reef Fund", Description: "Petition",
			Link: "https://reef.example/c1", Urgency: model.UrgencyHigh, EndDate: "2026-12-31",
		}},
		VolunteerOpportunities: []model.VolunteerOpportunity{{
			ID: "v1", Title: "Diver", Organization: "Reef Fund", Location: "Cairns",
			Mode: model.ModeOnsite, Commitment: "Weekends", Link: "https://reef.example/v1",
		}},
		MicroActions: []model.MicroAction{{
			ID: "a1", Title: "Skip straws", Description: "Refuse plastic straws",
			TimeRequired: "1 min", Impact: "Less plastic", Link: "https://reef.example/a1",
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, b))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)

	row := func(i int) map[string]string {
		m := make(map[string]string, len(csvHeader))
		for j, col := range csvHeader {
			m[col] = records[i][j]
		}
		return m
	}

	org := row(1)
	assert.Equal(t, "Reef Fund", org["title"])
	assert.Equal(t, "https://reef.example", org["link"])
	assert.Equal(t, "Marine", org["category"])
	assert.Equal(t, "https://reef.example/logo.png", org["logo"])

	campaign := row(2)
	assert.Equal(t, "high", campaign["urgency"])
	assert.Equal(t, "2026-12-31", campaign["end_date"])

	volunteer := row(3)
	assert.Equal(t, "Cairns", volunteer["location"])
	assert.Equal(t, "onsite", volunteer["type"])
	assert.Equal(t, "Weekends", volunteer["commitment"])

	action := row(4)
	assert.Equal(t, "1 min", action["time_required"])
	assert.Equal(t, "Less plastic", action["impact"])
	assert.Equal(t, "https://reef.example/a1", action["link"])
}
