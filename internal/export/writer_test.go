package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/analysis"
	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClockWriter(dir string) *Writer {
	w := NewWriter(dir)
	w.now = func() time.Time {
		return time.Date(2023, time.June, 18, 14, 5, 0, 0, time.UTC)
	}
	return w
}

func sampleResult() analysis.FilterResult {
	rows := []domain.Transaction{
		{
			Merchant: "카페베네",
			Amount:   decimal.NewFromInt(4500),
			Source: domain.RawRow{
				"승인일":      domain.TextCell("23.06.01"),
				"이용하신 가맹점": domain.TextCell("카페베네"),
				"이용금액":     domain.NumberCell(4500),
			},
		},
		{
			Merchant: "스타벅스카페",
			Amount:   decimal.NewFromInt(6100),
			Source: domain.RawRow{
				"승인일":      domain.TextCell("23.06.02"),
				"이용하신 가맹점": domain.TextCell("스타벅스카페"),
				"이용금액":     domain.NumberCell(6100),
			},
		},
	}
	return analysis.FilterResult{
		Rows:     rows,
		Count:    2,
		Total:    decimal.NewFromInt(10600),
		Keywords: []string{"카페"},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "export must start with a UTF-8 BOM")
	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteFilterResult(t *testing.T) {
	dir := t.TempDir()
	w := fixedClockWriter(dir)
	columns := []string{"승인일", "이용하신 가맹점", "이용금액"}

	path, err := w.WriteFilterResult(sampleResult(), columns, "이용하신 가맹점", "이용금액")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "지출내역_카페_20230618_1405.csv"), path)

	records := readCSV(t, path)
	require.Len(t, records, 4) // header + 2 rows + total

	assert.Equal(t, columns, records[0])

	// Trailing total row: 합계 in the merchant column, the sum in the amount
	// column, everything else blank.
	totalRow := records[3]
	assert.Equal(t, "", totalRow[0])
	assert.Equal(t, "합계", totalRow[1])
	assert.Equal(t, "10600", totalRow[2])

	// Round trip: re-summing the exported data rows reproduces the total.
	sum := decimal.Zero
	for _, rec := range records[1 : len(records)-1] {
		v, err := decimal.NewFromString(rec[2])
		require.NoError(t, err)
		sum = sum.Add(v)
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(10600)))
}

func TestWriteFilterResult_NoKeywordUsesAllMarker(t *testing.T) {
	w := fixedClockWriter(t.TempDir())
	res := sampleResult()
	res.Keywords = nil

	path, err := w.WriteFilterResult(res, []string{"이용하신 가맹점", "이용금액"}, "이용하신 가맹점", "이용금액")
	require.NoError(t, err)
	assert.Equal(t, "지출내역_전체_20230618_1405.csv", filepath.Base(path))
}

func TestWriteFilterResult_MultipleKeywords(t *testing.T) {
	w := fixedClockWriter(t.TempDir())
	res := sampleResult()
	res.Keywords = []string{"카페", "노래방"}

	path, err := w.WriteFilterResult(res, []string{"이용하신 가맹점", "이용금액"}, "이용하신 가맹점", "이용금액")
	require.NoError(t, err)
	assert.Equal(t, "지출내역_카페+노래방_20230618_1405.csv", filepath.Base(path))
}

func TestWriteGroups(t *testing.T) {
	w := fixedClockWriter(t.TempDir())
	groups := []analysis.Group{
		{Key: "식비", Total: decimal.NewFromInt(17000)},
		{Key: "카페/간식", Total: decimal.NewFromInt(10600)},
	}

	path, err := w.WriteGroups("카테고리별", groups)
	require.NoError(t, err)
	assert.Equal(t, "카테고리별_전체_20230618_1405.csv", filepath.Base(path))

	records := readCSV(t, path)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"구분", "금액"}, records[0])
	assert.Equal(t, []string{"식비", "17000"}, records[1])
	assert.Equal(t, []string{"카페/간식", "10600"}, records[2])
	assert.Equal(t, []string{"합계", "27600"}, records[3])
}

func TestWriteGroups_UnwritableDir(t *testing.T) {
	w := fixedClockWriter(filepath.Join(t.TempDir(), "no-such-dir"))

	_, err := w.WriteGroups("월별", []analysis.Group{{Key: "2023-06", Total: decimal.NewFromInt(1)}})
	var exportErr *domain.ExportError
	require.ErrorAs(t, err, &exportErr)
}
