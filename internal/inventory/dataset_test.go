package inventory

import "testing"

func TestDataset_Find(t *testing.T) {
	d := NewDataset([]string{"codigo", "titulo"}, []Row{
		{Position: 2, Code: "B1234567", Extra: []string{"Cien años de soledad"}},
		{Position: 3, Code: " b7654321 "}, // stored with noise, still findable
	})

	row, ok := d.Find("B1234567")
	if !ok || row.Position != 2 {
		t.Fatalf("Find(B1234567) = %+v, %v; want row 2", row, ok)
	}

	// Case-insensitive, trimmed comparison.
	row, ok = d.Find("B7654321")
	if !ok || row.Position != 3 {
		t.Fatalf("Find(B7654321) = %+v, %v; want row 3", row, ok)
	}

	if _, ok := d.Find("B0000000"); ok {
		t.Error("Find of absent code reported a match")
	}
}

func TestDataset_AppendPositions(t *testing.T) {
	d := NewDataset([]string{"codigo"}, nil)

	first := d.Append("B1000001")
	if first.Position != 2 {
		t.Fatalf("first append position = %d, want 2 (row 1 is the header)", first.Position)
	}

	second := d.Append("B1000002")
	if second.Position != 3 {
		t.Fatalf("second append position = %d, want 3", second.Position)
	}

	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Len())
	}
}

func TestDataset_FindSeesAppends(t *testing.T) {
	// Lookup must reflect the dataset as of the call, never a stale
	// index built at load time.
	d := NewDataset([]string{"codigo"}, []Row{{Position: 2, Code: "B1111111"}})

	if d.Contains("B2222222") {
		t.Fatal("code present before append")
	}
	row := d.Append("B2222222")
	found, ok := d.Find("B2222222")
	if !ok {
		t.Fatal("appended code not found")
	}
	if found.Position != row.Position {
		t.Errorf("found position %d, want %d", found.Position, row.Position)
	}
}

func TestDataset_Codes(t *testing.T) {
	d := NewDataset([]string{"codigo"}, []Row{
		{Position: 2, Code: "B1111111"},
		{Position: 3, Code: "B2222222"},
	})

	codes := d.Codes()
	if len(codes) != 2 || codes[0] != "B1111111" || codes[1] != "B2222222" {
		t.Errorf("Codes = %v, want workbook order", codes)
	}
}
