// Package directions builds external map deep links for hospitals and
// pharmacies. The core only produces the URL; opening it is the caller's
// concern.
package directions

import (
	"net/url"
	"strconv"
)

const searchBase = "https://www.google.com/maps/search/?api=1&query="

// MapsURL returns a map search link for a coordinate pair.
func MapsURL(latitude, longitude float64) string {
	return searchBase +
		strconv.FormatFloat(latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(longitude, 'f', -1, 64)
}

// MapsURLForAddress returns a map search link for a street address.
func MapsURLForAddress(address string) string {
	return searchBase + url.QueryEscape(address)
}
