package postgres

import (
	"fmt"
	"strings"

	"github.com/cityinfo-api/internal/domain"
)

const cityColumns = "id, name, description"

// cityListQuery holds the count and page statements for one filtered listing.
type cityListQuery struct {
	Count     string
	CountArgs []interface{}
	Page      string
	PageArgs  []interface{}
}

// buildCityListQuery shapes the listing SQL. Empty or whitespace filters are ignored,
// the search term is matched as a literal substring of name or description.
// PageNumber and PageSize must already be positive.
func buildCityListQuery(filter domain.CityFilter) cityListQuery {
	var conditions []string
	var args []interface{}

	if name := strings.TrimSpace(filter.Name); name != "" {
		args = append(args, name)
		conditions = append(conditions, fmt.Sprintf("name = $%d", len(args)))
	}

	if search := strings.TrimSpace(filter.SearchQuery); search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		n := len(args)
		conditions = append(conditions,
			fmt.Sprintf(`(name LIKE $%d ESCAPE '\' OR description LIKE $%d ESCAPE '\')`, n, n))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	pageArgs := make([]interface{}, len(args), len(args)+2)
	copy(pageArgs, args)
	pageArgs = append(pageArgs, filter.PageSize, (filter.PageNumber-1)*filter.PageSize)

	return cityListQuery{
		Count:     "SELECT COUNT(*) FROM cities" + where,
		CountArgs: args,
		Page: fmt.Sprintf("SELECT %s FROM cities%s ORDER BY name, id LIMIT $%d OFFSET $%d",
			cityColumns, where, len(args)+1, len(args)+2),
		PageArgs: pageArgs,
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
