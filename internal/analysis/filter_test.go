package analysis

import (
	"testing"

	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableOf(merchants []string, amounts []int64) *domain.Table {
	t := &domain.Table{Columns: []string{"이용하신 가맹점", "이용금액"}}
	for i, m := range merchants {
		t.Rows = append(t.Rows, domain.Transaction{
			Merchant:      m,
			Amount:        decimal.NewFromInt(amounts[i]),
			IsTransaction: true,
		})
	}
	return t
}

func TestFilter_EmptyKeywordsReturnsWholeTable(t *testing.T) {
	table := tableOf([]string{"스타벅스카페", "노래방", "카페베네"}, []int64{6100, 15000, 4500})

	for _, keywords := range [][]string{nil, {}, {"", "   "}} {
		res := Filter(table, keywords)
		assert.Equal(t, 3, res.Count)
		assert.Empty(t, res.Keywords)
		for i, row := range res.Rows {
			assert.Equal(t, table.Rows[i].Merchant, row.Merchant, "row order must be preserved")
		}
		assert.True(t, res.Total.Equal(decimal.NewFromInt(25600)))
	}
}

func TestFilter_SubstringMatch(t *testing.T) {
	table := tableOf([]string{"스타벅스카페", "노래방", "카페베네"}, []int64{6100, 15000, 4500})

	res := Filter(table, []string{"카페"})

	require.Equal(t, 2, res.Count)
	assert.Equal(t, "스타벅스카페", res.Rows[0].Merchant)
	assert.Equal(t, "카페베네", res.Rows[1].Merchant)
	assert.True(t, res.Total.Equal(decimal.NewFromInt(10600)))
	assert.False(t, res.EmptyMatch())
}

func TestFilter_CaseInsensitive(t *testing.T) {
	table := tableOf([]string{"GS25 강남점", "gs25 홍대점", "세븐일레븐"}, []int64{3000, 2000, 1000})

	res := Filter(table, []string{"gs25"})
	require.Equal(t, 2, res.Count)

	res = Filter(table, []string{"GS25"})
	require.Equal(t, 2, res.Count)
}

func TestFilter_OrSemantics(t *testing.T) {
	table := tableOf([]string{"스타벅스", "노래방", "김밥천국"}, []int64{6100, 15000, 8000})

	res := Filter(table, []string{"노래방", "김밥"})

	require.Equal(t, 2, res.Count)
	assert.Equal(t, []string{"노래방", "김밥"}, res.Keywords)
	assert.True(t, res.Total.Equal(decimal.NewFromInt(23000)))
}

func TestFilter_ZeroMatchesIsValid(t *testing.T) {
	table := tableOf([]string{"스타벅스", "노래방"}, []int64{6100, 15000})

	res := Filter(table, []string{"피시방"})

	assert.Equal(t, 0, res.Count)
	assert.True(t, res.Total.IsZero())
	assert.True(t, res.EmptyMatch(), "zero matches with keywords is the empty-match state")
}

func TestUsableKeywords(t *testing.T) {
	assert.Equal(t, []string{"카페", "노래방"}, UsableKeywords([]string{" 카페 ", "", "  ", "노래방"}))
	assert.Nil(t, UsableKeywords([]string{"", "   "}))
}
