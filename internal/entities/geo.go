package entities

// Region - разбор адреса по уровням: город (si), район (gu), квартал (dong).
type Region struct {
	Si   string
	Gu   string
	Dong string
}

type GeocodeResult struct {
	RoadAddress *Region
	Address     *Region
	Latitude    *float64
	Longitude   *float64
}

type AddressPreview struct {
	IsServiceable bool
	Region        Region
	Latitude      *float64
	Longitude     *float64
}
