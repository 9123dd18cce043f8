package domain

// PointOfInterest - точка интереса, принадлежащая одному городу
type PointOfInterest struct {
	ID          int64   `json:"id" db:"id"`
	CityID      int64   `json:"city_id" db:"city_id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
}

const (
	PointOfInterestNameMaxLength        = 50
	PointOfInterestDescriptionMaxLength = 200
)
