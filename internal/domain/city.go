package domain

// City - город со списком принадлежащих ему точек интереса
type City struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`

	// PointsOfInterest is nil unless the city was loaded with its points of interest.
	PointsOfInterest []PointOfInterest `json:"points_of_interest,omitempty" db:"-"`
}

// Column limits shared by the schema and request validation.
const (
	CityNameMaxLength        = 50
	CityDescriptionMaxLength = 200
)

// CityFilter describes a filtered, paginated city listing.
type CityFilter struct {
	Name        string
	SearchQuery string
	PageNumber  int
	PageSize    int
}
