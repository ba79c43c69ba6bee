package geo

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"laundry/internal/entities"
)

// ServiceArea - район обслуживания и допустимые написания города.
type ServiceArea struct {
	District string
	Cities   []string
}

var DefaultServiceArea = ServiceArea{
	District: "관악구",
	Cities:   []string{"서울특별시", "서울"},
}

// IsServiceable проверяет по порядку: разбор дорожного адреса, разбор
// обычного адреса, вхождение названия района в исходный запрос.
// Последняя проверка может дать ложноположительный результат.
func (a ServiceArea) IsServiceable(road, plain *entities.Region, query string) bool {
	if a.matches(road) || a.matches(plain) {
		return true
	}
	district := normalize(a.District)
	return district != "" && strings.Contains(normalize(query), district)
}

func (a ServiceArea) matches(region *entities.Region) bool {
	if region == nil || normalize(region.Gu) != normalize(a.District) {
		return false
	}
	si := normalize(region.Si)
	for _, city := range a.Cities {
		if si == normalize(city) {
			return true
		}
	}
	return false
}

func IsServiceable(road, plain *entities.Region, query string) bool {
	return DefaultServiceArea.IsServiceable(road, plain, query)
}

func normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
