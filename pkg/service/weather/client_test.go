package weather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/harulab/labbot/pkg/service/weather"
)

const sampleForecast = `{
	"publishingOffice": "気象庁",
	"publicTimeFormatted": "2024/04/01 11:00:00",
	"title": "東京都 東京 の天気",
	"forecasts": [
		{
			"date": "2024-04-01",
			"telop": "晴れ",
			"detail": {"wind": "北の風", "wave": "０．５メートル"},
			"temperature": {
				"max": {"celsius": "18"},
				"min": {"celsius": null}
			}
		},
		{
			"date": "2024-04-02",
			"telop": "曇り",
			"detail": {"wind": "南の風", "wave": "１メートル"},
			"temperature": {
				"max": {"celsius": "20"},
				"min": {"celsius": "12"}
			}
		}
	]
}`

func TestFetch(t *testing.T) {
	t.Run("parses a valid feed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(sampleForecast))
		}))
		defer srv.Close()

		svc, err := weather.New(srv.URL)
		gt.NoError(t, err).Required()

		forecast, err := svc.Fetch(context.Background())
		gt.NoError(t, err).Required()

		gt.Value(t, forecast.Title).Equal("東京都 東京 の天気")
		gt.Value(t, forecast.PublicTimeFormatted).Equal("2024/04/01 11:00:00")
		gt.Value(t, forecast.PublishingOffice).Equal("気象庁")
		gt.Array(t, forecast.Forecasts).Length(2)

		today := forecast.Today()
		gt.Value(t, today.Date).Equal("2024-04-01")
		gt.Value(t, today.Telop).Equal("晴れ")
		gt.Value(t, today.Detail.Wind).Equal("北の風")
		gt.Value(t, today.Detail.Wave).Equal("０．５メートル")
		gt.Value(t, today.Temperature.Max.String()).Equal("18")
		gt.Value(t, today.Temperature.Min.String()).Equal("-")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>maintenance</html>"))
		}))
		defer srv.Close()

		svc, err := weather.New(srv.URL)
		gt.NoError(t, err).Required()

		_, err = svc.Fetch(context.Background())
		gt.Value(t, err).NotNil()
	})

	t.Run("rejects schema mismatch", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"title": "", "forecasts": []}`))
		}))
		defer srv.Close()

		svc, err := weather.New(srv.URL)
		gt.NoError(t, err).Required()

		_, err = svc.Fetch(context.Background())
		gt.Value(t, err).NotNil()
	})

	t.Run("rejects non-OK status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		svc, err := weather.New(srv.URL)
		gt.NoError(t, err).Required()

		_, err = svc.Fetch(context.Background())
		gt.Value(t, err).NotNil()
	})

	t.Run("New rejects empty URL", func(t *testing.T) {
		_, err := weather.New("")
		gt.Value(t, err).NotNil()
	})
}
