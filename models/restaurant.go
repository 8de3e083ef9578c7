package models

// Restaurant is a single flattened restaurant entry. Source documents nest
// these one-to-many under a search-result envelope; the store layer unwinds
// that nesting so every Restaurant stands on its own. The store owns these
// records, we only read them.
type Restaurant struct {
	ID                 string     `bson:"id" json:"id"`
	ResID              int        `bson:"res_id,omitempty" json:"res_id,omitempty"`
	Name               string     `bson:"name" json:"name"`
	Cuisines           string     `bson:"cuisines" json:"cuisines"` // comma-separated labels, e.g. "Italian, Pizza"
	Location           Location   `bson:"location" json:"location"`
	UserRating         UserRating `bson:"user_rating" json:"user_rating"`
	FeaturedImage      string     `bson:"featured_image" json:"featured_image"`
	URL                string     `bson:"url,omitempty" json:"url,omitempty"`
	PhotosURL          string     `bson:"photos_url,omitempty" json:"photos_url,omitempty"`
	MenuURL            string     `bson:"menu_url,omitempty" json:"menu_url,omitempty"`
	BookURL            string     `bson:"book_url,omitempty" json:"book_url,omitempty"`
	EventsURL          string     `bson:"events_url,omitempty" json:"events_url,omitempty"`
	Deeplink           string     `bson:"deeplink,omitempty" json:"deeplink,omitempty"`
	Thumb              string     `bson:"thumb,omitempty" json:"thumb,omitempty"`
	Currency           string     `bson:"currency,omitempty" json:"currency,omitempty"`
	PriceRange         int        `bson:"price_range,omitempty" json:"price_range,omitempty"`
	AverageCostForTwo  int        `bson:"average_cost_for_two,omitempty" json:"average_cost_for_two,omitempty"`
	HasOnlineDelivery  int        `bson:"has_online_delivery,omitempty" json:"has_online_delivery,omitempty"`
	IsDeliveringNow    int        `bson:"is_delivering_now,omitempty" json:"is_delivering_now,omitempty"`
	HasTableBooking    int        `bson:"has_table_booking,omitempty" json:"has_table_booking,omitempty"`
	SwitchToOrderMenu  int        `bson:"switch_to_order_menu,omitempty" json:"switch_to_order_menu,omitempty"`
	Offers             []string   `bson:"offers,omitempty" json:"offers,omitempty"`
	EstablishmentTypes []string   `bson:"establishment_types,omitempty" json:"establishment_types,omitempty"`
	Events             []Event    `bson:"zomato_events,omitempty" json:"zomato_events,omitempty"`
}

// Location keeps latitude/longitude as the decimal-degree strings the store
// delivers them in. Non-numeric values are tolerated; distance math treats
// them as "no coordinate".
type Location struct {
	Latitude        string `bson:"latitude" json:"latitude"`
	Longitude       string `bson:"longitude" json:"longitude"`
	Address         string `bson:"address" json:"address"`
	City            string `bson:"city" json:"city"`
	CityID          int    `bson:"city_id,omitempty" json:"city_id,omitempty"`
	CountryID       int    `bson:"country_id,omitempty" json:"country_id,omitempty"`
	Zipcode         string `bson:"zipcode,omitempty" json:"zipcode,omitempty"`
	Locality        string `bson:"locality,omitempty" json:"locality,omitempty"`
	LocalityVerbose string `bson:"locality_verbose,omitempty" json:"locality_verbose,omitempty"`
}

type UserRating struct {
	AggregateRating string `bson:"aggregate_rating" json:"aggregate_rating"`
	RatingText      string `bson:"rating_text" json:"rating_text"`
	RatingColor     string `bson:"rating_color,omitempty" json:"rating_color,omitempty"`
	Votes           string `bson:"votes" json:"votes"`
}
