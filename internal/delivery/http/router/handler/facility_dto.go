package handler

import "foodmap/internal/domain/entity"

// facilityDTO is the wire form of a facility.
type facilityDTO struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	PlaceType      string  `json:"place_type"`
	Subtype        string  `json:"subtype,omitempty"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	Address        string  `json:"address,omitempty"`
	Neighborhood   string  `json:"neighborhood,omitempty"`
	BusinessStatus string  `json:"business_status,omitempty"`
	OpenNow        *bool   `json:"open_now,omitempty"`
}

// facilityHitDTO is a facility annotated with its search distance.
type facilityHitDTO struct {
	facilityDTO
	DistanceMiles float64 `json:"distance_miles"`
}

func toFacilityDTO(f entity.Facility) facilityDTO {
	return facilityDTO{
		ID:             f.ID,
		Name:           f.Name,
		PlaceType:      f.PlaceType.String(),
		Subtype:        f.Subtype,
		Lat:            f.Lat,
		Lng:            f.Lng,
		Address:        f.Address,
		Neighborhood:   f.Neighborhood,
		BusinessStatus: f.BusinessStatus,
		OpenNow:        f.OpenNow,
	}
}

func toFacilityDTOs(facilities []entity.Facility) []facilityDTO {
	dtos := make([]facilityDTO, 0, len(facilities))
	for _, f := range facilities {
		dtos = append(dtos, toFacilityDTO(f))
	}

	return dtos
}

func toFacilityHitDTOs(hits []entity.FacilityHit) []facilityHitDTO {
	dtos := make([]facilityHitDTO, 0, len(hits))
	for _, hit := range hits {
		dtos = append(dtos, facilityHitDTO{
			facilityDTO:   toFacilityDTO(hit.Facility),
			DistanceMiles: hit.DistanceMiles,
		})
	}

	return dtos
}
