package weather

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
)

// DefaultFeedURL is the Tsukumijima weather API endpoint for Tokyo (130010).
const DefaultFeedURL = "https://weather.tsukumijima.net/api/forecast/city/130010"

// Service fetches the weather forecast feed.
type Service interface {
	// Fetch retrieves and validates the current forecast.
	Fetch(ctx context.Context) (*Forecast, error)
}

// Forecast is the typed shape of the feed response. Only the fields the bot
// renders are declared; unknown fields are ignored.
type Forecast struct {
	Title               string          `json:"title"`
	PublicTimeFormatted string          `json:"publicTimeFormatted"`
	PublishingOffice    string          `json:"publishingOffice"`
	Forecasts           []ForecastEntry `json:"forecasts"`
}

// ForecastEntry is one day's forecast.
type ForecastEntry struct {
	Date        string      `json:"date"`
	Telop       string      `json:"telop"`
	Detail      Detail      `json:"detail"`
	Temperature Temperature `json:"temperature"`
}

// Detail holds the wind and wave descriptions.
type Detail struct {
	Wind string `json:"wind"`
	Wave string `json:"wave"`
}

// Temperature holds max/min readings. The feed returns null celsius values
// for slots the office has not published, so the values are pointers.
type Temperature struct {
	Max TemperatureValue `json:"max"`
	Min TemperatureValue `json:"min"`
}

type TemperatureValue struct {
	Celsius *string `json:"celsius"`
}

// String renders the celsius value, or "-" when the feed omitted it.
func (x TemperatureValue) String() string {
	if x.Celsius == nil || *x.Celsius == "" {
		return "-"
	}
	return *x.Celsius
}

// Validate checks the fields the formatter depends on. A schema mismatch is
// reported at the boundary instead of surfacing as a lookup failure deep in
// the formatting code.
func (x *Forecast) Validate() error {
	if x.Title == "" {
		return goerr.New("forecast title is missing")
	}
	if len(x.Forecasts) == 0 {
		return goerr.New("forecast entries are missing", goerr.V("title", x.Title))
	}
	return nil
}

// Today returns the first forecast entry. The feed always lists today first.
func (x *Forecast) Today() ForecastEntry {
	return x.Forecasts[0]
}
