package dto_test

import (
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityinfo-api/internal/domain"
	"github.com/cityinfo-api/internal/pkg/patch"
	"github.com/cityinfo-api/internal/usecase/dto"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCityToDTO(t *testing.T) {
	city := domain.City{
		ID:          1,
		Name:        "Antwerp",
		Description: ptr("The one with the cathedral that was never really finished."),
		PointsOfInterest: []domain.PointOfInterest{
			{ID: 3, CityID: 1, Name: "Cathedral of Our Lady"},
			{ID: 4, CityID: 1, Name: "Antwerp Central Station", Description: ptr("Railway architecture")},
		},
	}

	got := dto.CityToDTO(city)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Antwerp", got.Name)
	assert.Equal(t, city.Description, got.Description)
	require.Len(t, got.PointsOfInterest, 2)
	assert.Equal(t, "Antwerp Central Station", got.PointsOfInterest[1].Name)

	without := dto.CityToWithoutPointsOfInterestDTO(city)
	assert.Equal(t, got.ID, without.ID)
	assert.Equal(t, got.Name, without.Name)
}

func TestCityToDTO_NoPointsOfInterestRendersEmptyArray(t *testing.T) {
	body, err := json.Marshal(dto.CityToDTO(domain.City{ID: 2, Name: "Paris"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"name":"Paris","description":null,"pointsOfInterest":[]}`, string(body))
}

func TestPointOfInterestUpdateRoundTrip(t *testing.T) {
	entity := domain.PointOfInterest{ID: 9, CityID: 2, Name: "Louvre", Description: ptr("Museum")}

	update := dto.PointOfInterestToForUpdateDTO(entity)
	update.Name = "The Louvre"
	dto.ApplyPointOfInterestForUpdate(update, &entity)

	assert.Equal(t, int64(9), entity.ID)
	assert.Equal(t, int64(2), entity.CityID)
	assert.Equal(t, "The Louvre", entity.Name)
	assert.Equal(t, "Museum", *entity.Description)

	// The projection must not alias the entity.
	*update.Description = "changed"
	assert.Equal(t, "Museum", *entity.Description)
}

func TestPointOfInterestForCreationToEntity(t *testing.T) {
	entity := dto.PointOfInterestForCreationToEntity(dto.PointOfInterestForCreationDTO{Name: "Eiffel Tower", Description: ptr("Tower")})
	assert.Zero(t, entity.ID)
	assert.Equal(t, "Eiffel Tower", entity.Name)
	assert.Equal(t, "Tower", *entity.Description)
}

func TestPointOfInterestForUpdateDTO_PatchTarget(t *testing.T) {
	update := dto.PointOfInterestForUpdateDTO{Name: "Old", Description: ptr("desc")}

	require.NoError(t, update.SetField("Name", json.RawMessage(`"New"`)))
	require.NoError(t, update.RemoveField("description"))
	assert.Equal(t, "New", update.Name)
	assert.Nil(t, update.Description)

	require.NoError(t, update.SetField("description", json.RawMessage(`"again"`)))
	require.NoError(t, update.SetField("description", json.RawMessage(`null`)))
	assert.Nil(t, update.Description)

	assert.Error(t, update.SetField("name", json.RawMessage(`null`)))
	assert.Equal(t, "New", update.Name)

	assert.ErrorIs(t, update.SetField("cityId", json.RawMessage(`5`)), patch.ErrUnknownField)
	assert.ErrorIs(t, update.RemoveField("id"), patch.ErrUnknownField)
}

func TestListsMarshalXMLWithRoot(t *testing.T) {
	list := dto.CitiesToList([]domain.City{{ID: 1, Name: "New York City"}, {ID: 2, Name: "Antwerp"}})

	out, err := xml.Marshal(list)
	require.NoError(t, err)
	assert.Equal(t,
		"<ArrayOfCityWithoutPointsOfInterestDto>"+
			"<CityWithoutPointsOfInterestDto><Id>1</Id><Name>New York City</Name></CityWithoutPointsOfInterestDto>"+
			"<CityWithoutPointsOfInterestDto><Id>2</Id><Name>Antwerp</Name></CityWithoutPointsOfInterestDto>"+
			"</ArrayOfCityWithoutPointsOfInterestDto>",
		string(out))

	body, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"New York City","description":null},{"id":2,"name":"Antwerp","description":null}]`, string(body))
}
