package pricing

import "testing"

func TestCategoryForRow(t *testing.T) {
	cases := []struct {
		row  string
		want Category
	}{
		{"A", CategoryVIP},
		{"B", CategoryVIP},
		{"C", CategoryBalcony},
		{"D", CategoryBalcony},
		{"E", CategoryPremium},
		{"F", CategoryPremium},
		{"G", CategoryNormal},
		{"H", CategoryNormal},
		{"I", CategoryFront},
		{"J", CategoryFront},
		{"K", CategoryUnknown},
		{"Z", CategoryUnknown},
		{"", CategoryUnknown},
	}

	for _, tc := range cases {
		if got := CategoryForRow(tc.row); got != tc.want {
			t.Errorf("CategoryForRow(%q) = %s, want %s", tc.row, got, tc.want)
		}
	}
}

func TestSeatPrice(t *testing.T) {
	cases := []struct {
		row  string
		base float64
		want float64
	}{
		{"A", 100, 150},
		{"C", 100, 125},
		{"E", 100, 120},
		{"G", 100, 100},
		{"I", 100, 80},
		{"X", 100, 100}, // unmapped row prices at base
		{"B", 0, 0},
	}

	for _, tc := range cases {
		if got := SeatPrice(tc.base, tc.row); got != tc.want {
			t.Errorf("SeatPrice(%v, %q) = %v, want %v", tc.base, tc.row, got, tc.want)
		}
	}
}

func TestTotal_MixedCategories(t *testing.T) {
	// base 100, seats in rows A, C, G: 150 + 125 + 100
	got := Total(100, []string{"A", "C", "G"})
	if got != 375 {
		t.Fatalf("Total = %v, want 375", got)
	}
}

func TestTotal_SumsPerSeat(t *testing.T) {
	rows := []string{"A", "I"}

	// per-seat pricing, not basePrice * multiplier * count
	got := Total(100, rows)
	want := SeatPrice(100, "A") + SeatPrice(100, "I")
	if got != want {
		t.Fatalf("Total = %v, want %v", got, want)
	}
	if got == 100*1.5*2 || got == 100*0.8*2 {
		t.Fatalf("Total applied a flat multiplier over the seat count: %v", got)
	}
}

func TestTotal_Empty(t *testing.T) {
	if got := Total(100, nil); got != 0 {
		t.Fatalf("Total(100, nil) = %v, want 0", got)
	}
}

func TestPricingIsPure(t *testing.T) {
	first := Total(87.5, []string{"B", "D", "J"})
	for i := 0; i < 100; i++ {
		if got := Total(87.5, []string{"B", "D", "J"}); got != first {
			t.Fatalf("repeated Total diverged: %v != %v", got, first)
		}
	}
}
