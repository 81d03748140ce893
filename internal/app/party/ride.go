package party

import (
	"fmt"
	"net/url"

	"ukoradar/internal/app/model"
)

// Fixed reference origin (central Nairobi) used to convert relative radar
// offsets into approximate absolute coordinates.
const (
	OriginLat = -1.2921
	OriginLng = 36.8219

	// kmPerDegree approximates kilometers per degree of latitude.
	kmPerDegree = 111.0
)

// RideLink converts a party's relative position to approximate lat/lng and
// builds the ride-hailing app-scheme URL. Fire-and-forget; there is no
// confirmation channel.
func RideLink(p model.Party) string {
	destLat := OriginLat + p.Position.Y/kmPerDegree
	destLng := OriginLng + p.Position.X/kmPerDegree

	return fmt.Sprintf(
		"uber://?action=setPickup&dropoff[latitude]=%.6f&dropoff[longitude]=%.6f&dropoff[nickname]=%s",
		destLat, destLng, url.QueryEscape(p.Title),
	)
}
