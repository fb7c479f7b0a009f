package graphql

import (
	"context"

	"marketplace-bff/internal/models"
)

const geocodeQuery = `
query Geocode($address: String!) {
	geocode(address: $address) { formatted lat lng }
}`

// Geocode resolves free text to candidate addresses.
func (c *Client) Geocode(ctx context.Context, address string) ([]models.Address, error) {
	var resp struct {
		Geocode []models.Address `json:"geocode"`
	}
	if err := c.run(ctx, "geocode", geocodeQuery, map[string]interface{}{"address": address}, &resp); err != nil {
		return nil, err
	}
	return resp.Geocode, nil
}

const reverseGeocodeQuery = `
query ReverseGeocode($lat: Float!, $lng: Float!) {
	reverseGeocode(lat: $lat, lng: $lng) { formatted lat lng }
}`

// ReverseGeocode names the address at a point.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Address, error) {
	var resp struct {
		ReverseGeocode *models.Address `json:"reverseGeocode"`
	}
	err := c.run(ctx, "reverseGeocode", reverseGeocodeQuery, map[string]interface{}{"lat": lat, "lng": lng}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.ReverseGeocode == nil {
		return nil, notFound("reverseGeocode")
	}
	return resp.ReverseGeocode, nil
}
