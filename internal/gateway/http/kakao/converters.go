package kakao

import (
	"strconv"

	"laundry/internal/entities"
)

func toDomainList(resp *searchAddressResponse) []entities.GeocodeResult {
	results := make([]entities.GeocodeResult, 0, len(resp.Documents))
	for i := range resp.Documents {
		results = append(results, toDomain(&resp.Documents[i]))
	}
	return results
}

func toDomain(doc *searchDocument) entities.GeocodeResult {
	return entities.GeocodeResult{
		RoadAddress: toRegion(doc.RoadAddress),
		Address:     toRegion(doc.Address),
		Latitude:    parseCoordinate(doc.Y),
		Longitude:   parseCoordinate(doc.X),
	}
}

func toRegion(details *regionDetails) *entities.Region {
	if details == nil {
		return nil
	}
	return &entities.Region{
		Si:   details.Region1DepthName,
		Gu:   details.Region2DepthName,
		Dong: details.Region3DepthName,
	}
}

// Kakao отдает координаты строками, пустая или битая строка - координаты нет.
func parseCoordinate(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
