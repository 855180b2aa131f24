package pipeline

import (
	"testing"
	"time"

	"github.com/Hyunseung-Nam/excel-statement-analyzer/internal/domain"
)

func TestDateColumns(t *testing.T) {
	columns := []string{"이용하신 가맹점", "승인일자", "거래일", "이용금액", "메모"}
	markers := []string{"일자", "승인일", "거래일"}

	got := DateColumns(columns, markers)
	want := []string{"승인일자", "거래일"}
	if len(got) != len(want) {
		t.Fatalf("DateColumns() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DateColumns()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResolveDate_Serial(t *testing.T) {
	// 44000 days past the spreadsheet epoch is 2020-06-18.
	row := domain.RawRow{"승인일": domain.NumberCell(44000)}

	got := ResolveDate(row, []string{"승인일"})
	if got == nil {
		t.Fatal("ResolveDate() = nil, want date")
	}
	want := time.Date(2020, time.June, 18, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ResolveDate() = %v, want %v", got, want)
	}
}

func TestResolveDate_Text(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{"dotted", "20.06.18", time.Date(2020, time.June, 18, 0, 0, 0, 0, time.UTC)},
		{"dashed", "20-06-18", time.Date(2020, time.June, 18, 0, 0, 0, 0, time.UTC)},
		{"slashed", "23/01/05", time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC)},
		{"korean suffixes", "23년 1월 5일", time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC)},
		{"unpadded", "23.1.5", time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := domain.RawRow{"거래일": domain.TextCell(tt.text)}
			got := ResolveDate(row, []string{"거래일"})
			if got == nil {
				t.Fatalf("ResolveDate(%q) = nil, want %v", tt.text, tt.want)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ResolveDate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestResolveDate_LeftmostWins(t *testing.T) {
	// Serial and text forms of the same day in two candidate columns: the
	// leftmost candidate in column order wins and both agree.
	row := domain.RawRow{
		"승인일": domain.NumberCell(44000),
		"거래일": domain.TextCell("20.06.18"),
	}

	bySerial := ResolveDate(row, []string{"승인일", "거래일"})
	byText := ResolveDate(row, []string{"거래일", "승인일"})
	if bySerial == nil || byText == nil {
		t.Fatal("ResolveDate() = nil for a parsable row")
	}
	if !bySerial.Equal(*byText) {
		t.Errorf("serial and text parse disagree: %v vs %v", bySerial, byText)
	}
}

func TestResolveDate_FallsThroughUnparsable(t *testing.T) {
	row := domain.RawRow{
		"승인일": domain.TextCell("메모입니다"),
		"거래일": domain.TextCell("23.02.11"),
	}

	got := ResolveDate(row, []string{"승인일", "거래일"})
	if got == nil {
		t.Fatal("ResolveDate() = nil, want fallback to second candidate")
	}
	want := time.Date(2023, time.February, 11, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ResolveDate() = %v, want %v", got, want)
	}
}

func TestResolveDate_NoneParses(t *testing.T) {
	row := domain.RawRow{
		"승인일": domain.TextCell("없음"),
		"거래일": domain.MissingCell(),
	}
	if got := ResolveDate(row, []string{"승인일", "거래일"}); got != nil {
		t.Errorf("ResolveDate() = %v, want nil", got)
	}
}
