package queryparams

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   ListParams
		want ListParams
	}{
		{"bos degerler varsayilana ceker", ListParams{}, ListParams{Page: 1, PerPage: 20, OrderBy: "desc"}},
		{"negatif sayfa", ListParams{Page: -3, PerPage: 10, OrderBy: "asc"}, ListParams{Page: 1, PerPage: 10, OrderBy: "asc"}},
		{"limit asimi", ListParams{Page: 2, PerPage: 500, OrderBy: "desc"}, ListParams{Page: 2, PerPage: 100, OrderBy: "desc"}},
		{"gecersiz siralama yonu", ListParams{Page: 1, PerPage: 20, OrderBy: "sideways"}, ListParams{Page: 1, PerPage: 20, OrderBy: "desc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Validate()
			if tt.in != tt.want {
				t.Errorf("Validate() sonucu %+v, want %+v", tt.in, tt.want)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 20}
	if got := p.Offset(); got != 40 {
		t.Errorf("Offset() = %d, want 40", got)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 0, 0},
	}

	for _, tt := range tests {
		if got := CalculateTotalPages(tt.total, tt.perPage); got != tt.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}
