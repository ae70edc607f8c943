package episode

import (
	"testing"
	"time"
)

func date(day int) time.Time {
	return time.Date(2026, 1, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(day int) *time.Time {
	d := date(day)
	return &d
}

func names(eps []Episode) []string {
	out := make([]string, len(eps))
	for i, ep := range eps {
		out[i] = ep.PatientName
	}
	return out
}

func TestSort_ByPatientNameAscThenDesc(t *testing.T) {
	eps := []Episode{
		{PatientName: "Morgan, Taylor"},
		{PatientName: "Lee, Jordan"},
		{PatientName: "Rivera, Sam"},
	}

	Sort(eps, ColumnPatient, Ascending)
	asc := names(eps)
	want := []string{"Lee, Jordan", "Morgan, Taylor", "Rivera, Sam"}
	for i := range want {
		if asc[i] != want[i] {
			t.Fatalf("ascending: expected %v, got %v", want, asc)
		}
	}

	Sort(eps, ColumnPatient, Descending)
	desc := names(eps)
	for i := range want {
		if desc[i] != want[len(want)-1-i] {
			t.Fatalf("descending: expected exact reverse of %v, got %v", want, desc)
		}
	}
}

func TestSort_BySetupDate(t *testing.T) {
	eps := []Episode{
		{ID: "b", SetupDate: date(20)},
		{ID: "a", SetupDate: date(5)},
		{ID: "c", SetupDate: date(25)},
	}

	Sort(eps, ColumnSetup, Ascending)
	if eps[0].ID != "a" || eps[1].ID != "b" || eps[2].ID != "c" {
		t.Errorf("unexpected order %s %s %s", eps[0].ID, eps[1].ID, eps[2].ID)
	}
}

func TestSort_OptionalDatesAbsentFirst(t *testing.T) {
	eps := []Episode{
		{ID: "b", IntakeDate: datePtr(10)},
		{ID: "a"},
		{ID: "c", IntakeDate: datePtr(5)},
	}

	Sort(eps, ColumnIntake, Ascending)
	if eps[0].ID != "a" || eps[1].ID != "c" || eps[2].ID != "b" {
		t.Errorf("unexpected order %s %s %s", eps[0].ID, eps[1].ID, eps[2].ID)
	}

	Sort(eps, ColumnIntake, Descending)
	if eps[0].ID != "b" || eps[1].ID != "c" || eps[2].ID != "a" {
		t.Errorf("descending: unexpected order %s %s %s", eps[0].ID, eps[1].ID, eps[2].ID)
	}
}

func TestSort_EmptyColumnKeepsOrder(t *testing.T) {
	eps := []Episode{{ID: "z"}, {ID: "a"}, {ID: "m"}}

	Sort(eps, "", Ascending)
	if eps[0].ID != "z" || eps[1].ID != "a" || eps[2].ID != "m" {
		t.Errorf("expected untouched order, got %s %s %s", eps[0].ID, eps[1].ID, eps[2].ID)
	}
}

func TestSort_Stable(t *testing.T) {
	eps := []Episode{
		{ID: "e1", Condition: "knee"},
		{ID: "e2", Condition: "knee"},
		{ID: "e3", Condition: "back"},
	}

	Sort(eps, ColumnCondition, Ascending)
	if eps[0].ID != "e3" || eps[1].ID != "e1" || eps[2].ID != "e2" {
		t.Errorf("expected stable order e3 e1 e2, got %s %s %s", eps[0].ID, eps[1].ID, eps[2].ID)
	}
}

func TestSort_RepeatedCallsConsistent(t *testing.T) {
	make3 := func() []Episode {
		return []Episode{
			{PatientName: "Morgan, Taylor"},
			{PatientName: "Lee, Jordan"},
			{PatientName: "Rivera, Sam"},
		}
	}

	first := make3()
	Sort(first, ColumnPatient, Ascending)
	for i := 0; i < 5; i++ {
		again := make3()
		Sort(again, ColumnPatient, Ascending)
		for j := range first {
			if again[j].PatientName != first[j].PatientName {
				t.Fatalf("run %d: expected %v, got %v", i, names(first), names(again))
			}
		}
	}
}
