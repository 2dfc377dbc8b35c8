// Package queryparams liste sayfalarının sayfalama/sıralama parametrelerini taşır.
package queryparams

// Sayfalama varsayılanları ve sınırları.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultOrderBy = "desc"
)

// ListParams query string'den parse edilen liste parametreleridir.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	Name    string `query:"name"`   // Serbest metin arama
	Status  string `query:"status"` // "true"/"false" filtre
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"`
}

// DefaultListParams verilen sıralama sütunu ile varsayılan parametreleri üretir.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
	}
}

// Validate sınır dışı değerleri varsayılanlara çeker.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
}

// Offset SQL OFFSET değerini döndürür.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PaginationMeta sayfalama üst verisidir.
type PaginationMeta struct {
	CurrentPage int
	PerPage     int
	TotalItems  int64
	TotalPages  int
}

// PaginatedResult veri + meta ikilisidir; view'lara bu halde gönderilir.
type PaginatedResult struct {
	Data interface{}
	Meta PaginationMeta
}

// CalculateTotalPages toplam kayıt sayısından sayfa sayısını hesaplar.
func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := int(totalItems) / perPage
	if int(totalItems)%perPage != 0 {
		pages++
	}
	return pages
}
