package gmaps

type location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geometry struct {
	Location location `json:"location"`
}

type geocodeResponse struct {
	apiStatus
	Results []struct {
		FormattedAddress string   `json:"formatted_address"`
		Geometry         geometry `json:"geometry"`
		PlaceID          string   `json:"place_id"`
	} `json:"results"`
}

type photo struct {
	Height         int    `json:"height"`
	Width          int    `json:"width"`
	PhotoReference string `json:"photo_reference"`
}

type findPlaceResponse struct {
	apiStatus
	Candidates []struct {
		PlaceID string  `json:"place_id"`
		Photos  []photo `json:"photos,omitempty"`
	} `json:"candidates"`
}

type placeDetailsResponse struct {
	apiStatus
	Result struct {
		Photos []photo `json:"photos,omitempty"`
	} `json:"result"`
}
