package front

import "testing"

func loadedAthletes() *Collection[Athlete] {
	col := NewCollection(athleteID)
	col.Load([]Athlete{
		{AthleteID: 1, LastName: "Carr"},
		{AthleteID: 2, LastName: "Diaz"},
		{AthleteID: 3, LastName: "Quinn"},
	})
	return col
}

func TestCollectionStates(t *testing.T) {
	col := NewCollection(athleteID)
	if col.State() != StateIdle {
		t.Errorf("new collection state = %v, want idle", col.State())
	}
	col.Loading()
	if col.State() != StateLoading {
		t.Errorf("state = %v, want loading", col.State())
	}
	col.Fail()
	if col.State() != StateFailed {
		t.Errorf("state = %v, want failed", col.State())
	}
	col.Load(nil)
	if col.State() != StateReady {
		t.Errorf("state = %v, want ready", col.State())
	}
}

func TestCollectionRemoveByID(t *testing.T) {
	col := loadedAthletes()
	if !col.RemoveByID(2) {
		t.Fatal("RemoveByID(2) = false, want true")
	}
	if col.Len() != 2 {
		t.Fatalf("len = %d, want 2", col.Len())
	}
	for _, a := range col.Items() {
		if a.AthleteID == 2 {
			t.Errorf("athlete 2 still present after remove")
		}
	}
	// order of the survivors is untouched
	if col.Items()[0].AthleteID != 1 || col.Items()[1].AthleteID != 3 {
		t.Errorf("survivors out of order: %v", col.Items())
	}
}

func TestCollectionRemoveByIDUnknown(t *testing.T) {
	col := loadedAthletes()
	if col.RemoveByID(99) {
		t.Error("RemoveByID(99) = true, want false")
	}
	if col.Len() != 3 {
		t.Errorf("len = %d, want 3", col.Len())
	}
}

func TestCollectionReplaceByID(t *testing.T) {
	col := loadedAthletes()
	if !col.ReplaceByID(Athlete{AthleteID: 2, LastName: "Diaz-Lopez"}) {
		t.Fatal("ReplaceByID = false, want true")
	}
	if col.Items()[1].LastName != "Diaz-Lopez" {
		t.Errorf("row 1 = %v, want the replacement", col.Items()[1])
	}
	if col.Len() != 3 {
		t.Errorf("len = %d, want 3", col.Len())
	}
}

func TestCollectionReplaceByIDUnknownIsIgnored(t *testing.T) {
	col := loadedAthletes()
	if col.ReplaceByID(Athlete{AthleteID: 99, LastName: "Ghost"}) {
		t.Error("ReplaceByID(unknown) = true, want false")
	}
	if col.Len() != 3 {
		t.Errorf("replace fabricated a row, len = %d", col.Len())
	}
}

func TestCollectionAppend(t *testing.T) {
	col := loadedAthletes()
	col.Append(Athlete{AthleteID: 4, LastName: "New"})
	if col.Len() != 4 {
		t.Fatalf("len = %d, want 4", col.Len())
	}
	if col.Items()[3].AthleteID != 4 {
		t.Errorf("appended row not last: %v", col.Items())
	}
}
