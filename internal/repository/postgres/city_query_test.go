package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cityinfo-api/internal/domain"
)

func TestBuildCityListQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    domain.CityFilter
		count     string
		page      string
		countArgs []interface{}
		pageArgs  []interface{}
	}{
		{
			name:      "no filters",
			filter:    domain.CityFilter{PageNumber: 1, PageSize: 10},
			count:     "SELECT COUNT(*) FROM cities",
			page:      "SELECT id, name, description FROM cities ORDER BY name, id LIMIT $1 OFFSET $2",
			countArgs: nil,
			pageArgs:  []interface{}{10, 0},
		},
		{
			name:      "whitespace filters are ignored",
			filter:    domain.CityFilter{Name: "  ", SearchQuery: "\t", PageNumber: 3, PageSize: 5},
			count:     "SELECT COUNT(*) FROM cities",
			page:      "SELECT id, name, description FROM cities ORDER BY name, id LIMIT $1 OFFSET $2",
			countArgs: nil,
			pageArgs:  []interface{}{5, 10},
		},
		{
			name:      "name is trimmed and matched exactly",
			filter:    domain.CityFilter{Name: " Antwerp ", PageNumber: 1, PageSize: 10},
			count:     "SELECT COUNT(*) FROM cities WHERE name = $1",
			page:      "SELECT id, name, description FROM cities WHERE name = $1 ORDER BY name, id LIMIT $2 OFFSET $3",
			countArgs: []interface{}{"Antwerp"},
			pageArgs:  []interface{}{"Antwerp", 10, 0},
		},
		{
			name:   "name and search query",
			filter: domain.CityFilter{Name: "Paris", SearchQuery: "tower", PageNumber: 2, PageSize: 20},
			count: `SELECT COUNT(*) FROM cities WHERE name = $1 AND ` +
				`(name LIKE $2 ESCAPE '\' OR description LIKE $2 ESCAPE '\')`,
			page: `SELECT id, name, description FROM cities WHERE name = $1 AND ` +
				`(name LIKE $2 ESCAPE '\' OR description LIKE $2 ESCAPE '\') ORDER BY name, id LIMIT $3 OFFSET $4`,
			countArgs: []interface{}{"Paris", "%tower%"},
			pageArgs:  []interface{}{"Paris", "%tower%", 20, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := buildCityListQuery(tt.filter)
			assert.Equal(t, tt.count, q.Count)
			assert.Equal(t, tt.page, q.Page)
			assert.Equal(t, tt.countArgs, q.CountArgs)
			assert.Equal(t, tt.pageArgs, q.PageArgs)
		})
	}
}

func TestBuildCityListQuery_SearchTermIsLiteral(t *testing.T) {
	q := buildCityListQuery(domain.CityFilter{SearchQuery: `50%_off\`, PageNumber: 1, PageSize: 10})
	assert.Equal(t, []interface{}{`%50\%\_off\\%`}, q.CountArgs)
}
