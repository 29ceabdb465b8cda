// Package weather fetches the current local weather for the header readout.
// Location comes from IP geolocation (ip-api.com) and conditions from the
// open-meteo forecast API; neither needs an API key.
package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/jot-sh/jot/internal/errors"
	"github.com/jot-sh/jot/internal/logger"
)

const (
	// HTTPTimeout bounds each request
	HTTPTimeout = 10 * time.Second

	// RefreshInterval is how often the readout is refreshed
	RefreshInterval = 10 * time.Minute

	geoURL      = "http://ip-api.com/json/"
	forecastURL = "https://api.open-meteo.com/v1/forecast?latitude=%f&longitude=%f&current_weather=true&temperature_unit=fahrenheit"
)

// Info is a current-conditions snapshot.
type Info struct {
	TemperatureF float64
	Description  string
	Icon         string
}

// String renders the readout as shown in the header, e.g. "☀ 72°F Clear".
func (i Info) String() string {
	return fmt.Sprintf("%s %.0f°F %s", i.Icon, i.TemperatureF, i.Description)
}

// Client fetches weather with a bounded-timeout HTTP client.
type Client struct {
	httpClient *http.Client
	geoURL     string
	forecast   string
}

// NewClient returns a Client with the default endpoints.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: HTTPTimeout},
		geoURL:     geoURL,
		forecast:   forecastURL,
	}
}

// Fetch geolocates the host and returns the current conditions there.
func (c *Client) Fetch(ctx context.Context) (*Info, error) {
	body, err := c.get(ctx, c.geoURL)
	if err != nil {
		return nil, err
	}

	loc := gjson.ParseBytes(body)
	lat := loc.Get("lat")
	lon := loc.Get("lon")
	if !lat.Exists() || !lon.Exists() {
		return nil, errors.E(errors.Op("weather.Fetch"), errors.KindNetwork,
			"geolocation response missing coordinates")
	}

	url := fmt.Sprintf(c.forecast, lat.Float(), lon.Float())
	body, err = c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	current := gjson.GetBytes(body, "current_weather")
	if !current.Exists() {
		return nil, errors.E(errors.Op("weather.Fetch"), errors.KindNetwork,
			"forecast response missing current_weather")
	}

	temp := current.Get("temperature")
	if !temp.Exists() {
		return nil, errors.E(errors.Op("weather.Fetch"), errors.KindNetwork,
			"forecast response missing temperature")
	}
	code := current.Get("weathercode").Int()

	desc, icon := describe(code)
	info := &Info{
		TemperatureF: temp.Float(),
		Description:  desc,
		Icon:         icon,
	}
	logger.WithComponent("weather").Debug("Fetch complete",
		"tempF", info.TemperatureF, "code", code, "description", desc)
	return info, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WeatherFetchFailed(url, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WeatherFetchFailed(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.WeatherFetchFailed(url, fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WeatherFetchFailed(url, err)
	}
	return body, nil
}

// describe maps a WMO weather code to a short description and icon.
func describe(code int64) (string, string) {
	switch {
	case code == 0:
		return "Clear", "☀"
	case code >= 1 && code <= 3:
		return "Partly cloudy", "⛅"
	case code == 45 || code == 48:
		return "Foggy", "\U0001F32B"
	case code == 51 || code == 53 || code == 55:
		return "Drizzle", "\U0001F327"
	case code == 61 || code == 63 || code == 65:
		return "Rain", "\U0001F327"
	case code == 71 || code == 73 || code == 75:
		return "Snow", "❄"
	case code == 77:
		return "Snow grains", "❄"
	case code >= 80 && code <= 82:
		return "Showers", "\U0001F327"
	case code == 85 || code == 86:
		return "Snow showers", "\U0001F328"
	case code == 95 || code == 96 || code == 99:
		return "Thunderstorm", "⛈"
	default:
		return "Unknown", "☁"
	}
}
