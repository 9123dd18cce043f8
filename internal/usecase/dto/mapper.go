package dto

import "github.com/cityinfo-api/internal/domain"

// CityToDTO maps a city with its loaded points of interest.
func CityToDTO(c domain.City) CityDTO {
	pois := make([]PointOfInterestDTO, 0, len(c.PointsOfInterest))
	for _, p := range c.PointsOfInterest {
		pois = append(pois, PointOfInterestToDTO(p))
	}
	return CityDTO{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		PointsOfInterest: pois,
	}
}

func CityToWithoutPointsOfInterestDTO(c domain.City) CityWithoutPointsOfInterestDTO {
	return CityWithoutPointsOfInterestDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func CitiesToList(cities []domain.City) CityList {
	out := make(CityList, 0, len(cities))
	for _, c := range cities {
		out = append(out, CityToWithoutPointsOfInterestDTO(c))
	}
	return out
}

func PointOfInterestToDTO(p domain.PointOfInterest) PointOfInterestDTO {
	return PointOfInterestDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
	}
}

func PointsOfInterestToList(pois []domain.PointOfInterest) PointOfInterestList {
	out := make(PointOfInterestList, 0, len(pois))
	for _, p := range pois {
		out = append(out, PointOfInterestToDTO(p))
	}
	return out
}

// PointOfInterestForCreationToEntity builds a new, unsaved entity. The city id is set by the caller.
func PointOfInterestForCreationToEntity(in PointOfInterestForCreationDTO) domain.PointOfInterest {
	return domain.PointOfInterest{
		Name:        in.Name,
		Description: cloneString(in.Description),
	}
}

// ApplyPointOfInterestForUpdate copies the update onto a tracked entity. Id and city are untouched.
func ApplyPointOfInterestForUpdate(in PointOfInterestForUpdateDTO, p *domain.PointOfInterest) {
	p.Name = in.Name
	p.Description = cloneString(in.Description)
}

// PointOfInterestToForUpdateDTO projects an entity into its editable shape.
func PointOfInterestToForUpdateDTO(p domain.PointOfInterest) PointOfInterestForUpdateDTO {
	return PointOfInterestForUpdateDTO{
		Name:        p.Name,
		Description: cloneString(p.Description),
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
