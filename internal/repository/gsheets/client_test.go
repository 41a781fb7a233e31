package gsheets

import (
	"testing"

	"studentInfoBot/internal/domain/models"
)

func TestRecordsFromValues(t *testing.T) {
	values := [][]interface{}{
		{"Ism", "Familiya", "Telefon", "Baholar"},
		{"Ali", "Valiyev", "901234567", "5, 4, 5"},
		{"", "", "", ""},
		{"Olim", "Karimov", float64(998911112233)},
	}

	records := RecordsFromValues(values)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d: %v", len(records), records)
	}

	if records[0][models.FieldPhone] != "901234567" {
		t.Errorf("unexpected phone: %q", records[0][models.FieldPhone])
	}
	if records[0][models.FieldGrades] != "5, 4, 5" {
		t.Errorf("unexpected grades: %q", records[0][models.FieldGrades])
	}

	second := records[1]
	if second[models.FieldPhone] != "998911112233" {
		t.Errorf("numeric cell rendered as %q", second[models.FieldPhone])
	}
	if v, ok := second[models.FieldGrades]; !ok || v != "" {
		t.Errorf("short row must pad missing cells with empty strings, got %q (present=%v)", v, ok)
	}
}

func TestRecordsFromValues_Empty(t *testing.T) {
	if got := RecordsFromValues(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
	if got := RecordsFromValues([][]interface{}{{"Ism"}}); len(got) != 0 {
		t.Fatalf("header-only range must produce no records, got %v", got)
	}
}

func TestRecordsFromValues_DuplicateHeaderFirstWins(t *testing.T) {
	values := [][]interface{}{
		{"Telefon", " Telefon "},
		{"901234567", "000000000"},
	}

	records := RecordsFromValues(values)
	if len(records) != 1 || records[0][models.FieldPhone] != "901234567" {
		t.Fatalf("unexpected records: %v", records)
	}
}
