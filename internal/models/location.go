package models

// Location is the beach the tide page is published for
type Location struct {
	Name      string  // e.g. "Moonee Beach"
	Region    string  // e.g. "Mid North Coast, NSW"
	Latitude  float64
	Longitude float64
	TideURL   string // WillyWeather tide page
}

// MooneeBeach is the only location this tool reports on
var MooneeBeach = Location{
	Name:      "Moonee Beach",
	Region:    "Mid North Coast, NSW",
	Latitude:  -30.2077,
	Longitude: 153.1561,
	TideURL:   "https://tides.willyweather.com.au/nsw/mid-north-coast/moonee-beach.html",
}
