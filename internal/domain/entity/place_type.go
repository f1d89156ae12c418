// Package entity contains the core business objects of the project.
package entity

// PlaceType classifies a food-access facility.
type PlaceType string

const (
	// PlaceTypeGroceryStore indicates a grocery store or supermarket.
	PlaceTypeGroceryStore PlaceType = "grocery_store"
	// PlaceTypeRestaurant indicates a restaurant.
	PlaceTypeRestaurant PlaceType = "restaurant"
	// PlaceTypeFarmersMarket indicates a farmers market.
	PlaceTypeFarmersMarket PlaceType = "farmers_market"
	// PlaceTypeFoodPantry indicates a food pantry or meal program.
	PlaceTypeFoodPantry PlaceType = "food_pantry"
)

// String returns the string representation of the PlaceType.
func (p PlaceType) String() string {
	return string(p)
}

// IsValid checks if the PlaceType is a valid value.
func (p PlaceType) IsValid() bool {
	switch p {
	case PlaceTypeGroceryStore, PlaceTypeRestaurant, PlaceTypeFarmersMarket, PlaceTypeFoodPantry:
		return true
	default:
		return false
	}
}

// AllPlaceTypes lists every valid facility classification.
func AllPlaceTypes() []PlaceType {
	return []PlaceType{
		PlaceTypeGroceryStore,
		PlaceTypeRestaurant,
		PlaceTypeFarmersMarket,
		PlaceTypeFoodPantry,
	}
}
