package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lostfound/app"
	"lostfound/geocache"

	"github.com/gin-gonic/gin"
)

type LocationController struct {
	*Srv
	client *http.Client
}

func NewLocationController(s *Srv) *LocationController {
	return &LocationController{Srv: s, client: &http.Client{Timeout: 10 * time.Second}}
}

// photonResponse is the subset of the upstream GeoJSON we care about.
type photonResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // lon, lat
		} `json:"geometry"`
		Properties struct {
			OSMID    int64  `json:"osm_id"`
			Name     string `json:"name"`
			Street   string `json:"street"`
			District string `json:"district"`
			City     string `json:"city"`
			Town     string `json:"town"`
			Village  string `json:"village"`
			State    string `json:"state"`
			Country  string `json:"country"`
		} `json:"properties"`
	} `json:"features"`
}

// GET /locations/search?q=&lat=&lon=
//
// Proxies the autocomplete to the geocoder: biased by the caller's position
// first, falling back to an unbiased search when that comes back empty.
// Results are cached in Redis so repeat keystrokes don't refetch.
func (lo *LocationController) SearchLocations(c *gin.Context) {
	q := c.Query("q")
	lat := c.Query("lat")
	lon := c.Query("lon")

	if len(strings.TrimSpace(q)) < 2 {
		c.JSON(http.StatusOK, []geocache.Suggestion{})
		return
	}

	key := geocache.Key(q, lat, lon)
	if cached, err := lo.Geo.Get(c.Request.Context(), key); err == nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	pr, err := lo.fetch(q, lat, lon)
	if err == nil && len(pr.Features) == 0 && lat != "" && lon != "" {
		pr, err = lo.fetch(q, "", "")
	}
	if err != nil {
		lo.Log.Error("location search failed", "q", q, "error", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": "error fetching locations"})
		return
	}

	suggestions := toSuggestions(pr)
	_ = lo.Geo.Set(c.Request.Context(), key, suggestions)
	c.JSON(http.StatusOK, suggestions)
}

func (lo *LocationController) fetch(q, lat, lon string) (*photonResponse, error) {
	u := fmt.Sprintf("%s?q=%s&limit=15", lo.Cfg.GeocodeURL, url.QueryEscape(q))
	if lat != "" && lon != "" {
		u += "&lat=" + url.QueryEscape(lat) + "&lon=" + url.QueryEscape(lon)
	}

	resp, err := lo.client.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned %d", resp.StatusCode)
	}

	var pr photonResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, err
	}
	return &pr, nil
}

func toSuggestions(pr *photonResponse) []geocache.Suggestion {
	out := make([]geocache.Suggestion, 0, len(pr.Features))
	seen := map[string]bool{}

	for _, f := range pr.Features {
		p := f.Properties

		city := p.City
		if city == "" {
			city = p.Town
		}
		if city == "" {
			city = p.Village
		}

		// Deduplicate address parts while preserving order.
		parts := []string{}
		partSeen := map[string]bool{}
		for _, s := range []string{p.Name, p.Street, p.District, city, p.State, p.Country} {
			s = strings.TrimSpace(s)
			if s == "" || partSeen[s] {
				continue
			}
			partSeen[s] = true
			parts = append(parts, s)
		}
		address := strings.Join(parts, ", ")

		if seen[address] {
			continue
		}
		seen[address] = true

		name := p.Name
		if name == "" {
			name = city
		}
		if name == "" {
			name = "Unknown Place"
		}

		var lat, lon float64
		if len(f.Geometry.Coordinates) >= 2 {
			lon = f.Geometry.Coordinates[0]
			lat = f.Geometry.Coordinates[1]
		}

		out = append(out, geocache.Suggestion{
			ID:      fmt.Sprintf("%d-%s", p.OSMID, name),
			Name:    name,
			Address: address,
			City:    city,
			Country: p.Country,
			Coords:  geocache.Coords{Lat: lat, Lon: lon},
		})
		if len(out) == 10 {
			break
		}
	}
	return out
}
