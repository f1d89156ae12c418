package mapview

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"foodmap/internal/domain/entity"
	"foodmap/internal/errors"

	"github.com/paulmach/orb/geojson"
)

// Client is the HTTP fetcher behind the coordinator. Aggregate-tier queries
// load area summaries; cluster and point tiers hit the viewport endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an API client for the given server base URL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type areaPayload struct {
	Areas []struct {
		ID          int               `json:"id"`
		Name        string            `json:"name"`
		City        string            `json:"city"`
		Population  *int              `json:"population"`
		PovertyRate *float64          `json:"poverty_rate"`
		Counts      entity.AreaCounts `json:"counts"`
		Geometry    *geojson.Geometry `json:"geometry"`
	} `json:"areas"`
}

type viewportPayload struct {
	Mode     string                `json:"mode"`
	Clusters []entity.ClusterPoint `json:"clusters"`
	Points   []struct {
		ID        int64   `json:"id"`
		Name      string  `json:"name"`
		PlaceType string  `json:"place_type"`
		Lat       float64 `json:"lat"`
		Lng       float64 `json:"lng"`
	} `json:"points"`
}

// FetchViewport implements Fetcher.
func (c *Client) FetchViewport(ctx context.Context, query entity.ViewportQuery) (*ViewportData, error) {
	if query.Tier == entity.TierAggregate {
		return c.fetchAreas(ctx)
	}

	return c.fetchFacilities(ctx, query)
}

func (c *Client) fetchAreas(ctx context.Context) (*ViewportData, error) {
	params := url.Values{}
	params.Set("with_geometry", "true")

	var payload areaPayload
	if err := c.get(ctx, "/areas", params, &payload); err != nil {
		return nil, err
	}

	areas := make([]*entity.Area, 0, len(payload.Areas))
	for _, a := range payload.Areas {
		area := &entity.Area{
			ID:          a.ID,
			Name:        a.Name,
			City:        a.City,
			Population:  a.Population,
			PovertyRate: a.PovertyRate,
			Counts:      a.Counts,
		}
		if a.Geometry != nil {
			area.Geometry = a.Geometry.Geometry()
		}
		areas = append(areas, area)
	}

	return &ViewportData{
		Tier:  entity.TierAggregate,
		Areas: areas,
	}, nil
}

func (c *Client) fetchFacilities(ctx context.Context, query entity.ViewportQuery) (*ViewportData, error) {
	params := url.Values{}
	params.Set("north", fmt.Sprintf("%g", query.Bounds.North))
	params.Set("south", fmt.Sprintf("%g", query.Bounds.South))
	params.Set("east", fmt.Sprintf("%g", query.Bounds.East))
	params.Set("west", fmt.Sprintf("%g", query.Bounds.West))
	params.Set("zoom", fmt.Sprintf("%g", query.Zoom))
	if query.PlaceTypeFilter != "" {
		params.Set("place_type", query.PlaceTypeFilter.String())
	}

	var payload viewportPayload
	if err := c.get(ctx, "/map/viewport", params, &payload); err != nil {
		return nil, err
	}

	data := &ViewportData{Tier: entity.Tier(payload.Mode)}
	switch data.Tier {
	case entity.TierPoint:
		data.Points = make([]entity.Facility, 0, len(payload.Points))
		for _, p := range payload.Points {
			data.Points = append(data.Points, entity.Facility{
				ID:        p.ID,
				Name:      p.Name,
				PlaceType: entity.PlaceType(p.PlaceType),
				Lat:       p.Lat,
				Lng:       p.Lng,
			})
		}
	default:
		data.Clusters = payload.Clusters
	}

	return data, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response")
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return errors.Wrapf(err, "decode %s response", path)
	}

	if resp.StatusCode >= 400 {
		if env.Error != nil {
			return errors.Errorf("%s: %s (%s)", path, env.Error.Message, env.Error.Code)
		}

		return errors.Errorf("%s: status %d", path, resp.StatusCode)
	}

	return errors.Wrapf(json.Unmarshal(env.Data, out), "decode %s payload", path)
}
