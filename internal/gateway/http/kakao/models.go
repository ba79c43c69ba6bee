package kakao

type searchAddressResponse struct {
	Meta      searchMeta       `json:"meta"`
	Documents []searchDocument `json:"documents"`
}

type searchMeta struct {
	TotalCount int `json:"total_count"`
}

type searchDocument struct {
	AddressName string         `json:"address_name"`
	X           string         `json:"x"`
	Y           string         `json:"y"`
	Address     *regionDetails `json:"address"`
	RoadAddress *regionDetails `json:"road_address"`
}

type regionDetails struct {
	AddressName      string `json:"address_name"`
	Region1DepthName string `json:"region_1depth_name"`
	Region2DepthName string `json:"region_2depth_name"`
	Region3DepthName string `json:"region_3depth_name"`
}

type errorResponse struct {
	ErrorType string `json:"errorType"`
	Message   string `json:"message"`
}
