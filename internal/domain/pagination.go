package domain

// MaxCitiesPageSize caps the page size of city listings regardless of what the client asks for.
const MaxCitiesPageSize = 20

// Default paging used when the client omits the parameters.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

// PaginationMetadata describes the full filtered set behind a returned page.
type PaginationMetadata struct {
	TotalItemCount int `json:"totalItemCount" xml:"totalItemCount"`
	PageSize       int `json:"pageSize" xml:"pageSize"`
	CurrentPage    int `json:"currentPage" xml:"currentPage"`
	TotalPageCount int `json:"totalPageCount" xml:"totalPageCount"`
}

// NewPaginationMetadata computes the page count as ceil(total / pageSize).
func NewPaginationMetadata(totalItemCount, pageSize, currentPage int) PaginationMetadata {
	pages := 0
	if pageSize > 0 {
		pages = (totalItemCount + pageSize - 1) / pageSize
	}
	return PaginationMetadata{
		TotalItemCount: totalItemCount,
		PageSize:       pageSize,
		CurrentPage:    currentPage,
		TotalPageCount: pages,
	}
}
