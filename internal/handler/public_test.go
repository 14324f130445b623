package handler

import (
	"testing"

	"github.com/iliyamo/cabin-reservation/internal/model"
)

func TestFilterCabins(t *testing.T) {
	cabins := []model.Cabin{
		{ID: 1, Name: "001", MaxCapacity: 2},
		{ID: 2, Name: "002", MaxCapacity: 3},
		{ID: 3, Name: "003", MaxCapacity: 4},
		{ID: 4, Name: "004", MaxCapacity: 7},
		{ID: 5, Name: "005", MaxCapacity: 8},
		{ID: 6, Name: "006", MaxCapacity: 12},
	}

	tests := []struct {
		filter  string
		wantIDs []uint64
		wantErr bool
	}{
		{"", []uint64{1, 2, 3, 4, 5, 6}, false},
		{"all", []uint64{1, 2, 3, 4, 5, 6}, false},
		{"small", []uint64{1, 2}, false},
		{"medium", []uint64{3, 4}, false},
		{"large", []uint64{5, 6}, false},
		{"huge", nil, true},
	}
	for _, tt := range tests {
		t.Run("filter="+tt.filter, func(t *testing.T) {
			got, err := filterCabins(cabins, tt.filter)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("filterCabins(%q) expected error", tt.filter)
				}
				return
			}
			if err != nil {
				t.Fatalf("filterCabins(%q) error: %v", tt.filter, err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("filterCabins(%q) returned %d cabins, want %d", tt.filter, len(got), len(tt.wantIDs))
			}
			for i, c := range got {
				if c.ID != tt.wantIDs[i] {
					t.Fatalf("filterCabins(%q)[%d].ID = %d, want %d", tt.filter, i, c.ID, tt.wantIDs[i])
				}
			}
		})
	}
}
