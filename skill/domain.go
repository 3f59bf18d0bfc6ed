package skill

import (
	"fmt"
	"strings"

	"github.com/letmevibethatforyou/voicesearch"
	"github.com/letmevibethatforyou/voicesearch/ranked"
)

// Restaurant record fields.
const (
	RestaurantName voicesearch.Field = iota
	RestaurantAddress
	RestaurantCuisine
	RestaurantDishes
)

// Nightlife venue record fields.
const (
	VenueName voicesearch.Field = iota
	VenueAddress
	VenueCategory
	VenueDescription
	VenueDays
	VenueGenre
)

const (
	DomainRestaurants = "restaurants"
	DomainNightlife   = "nightlife"
)

// Domain is one searchable dataset together with how its records are paged and spoken.
type Domain struct {
	// Name identifies the domain in session cursors.
	Name string
	// Noun is the plural used in follow-up card titles.
	Noun string
	// Fields names the searchable fields.
	Fields map[string]voicesearch.Field
	// Width is the number of fields every record has.
	Width int
	// PageSize is the number of records spoken in the first turn.
	PageSize int
	// Cap bounds the results kept across turns, first page included.
	Cap int
	// Searcher runs the ranked search over the dataset.
	Searcher voicesearch.Searcher
	// Speak renders a record for speech.
	Speak func(voicesearch.Record) string
	// Describe renders a record for a card.
	Describe func(voicesearch.Record) string
}

// Restaurants builds the restaurant domain over records.
func Restaurants(records []voicesearch.Record) *Domain {
	return &Domain{
		Name: DomainRestaurants,
		Noun: "restaurants",
		Fields: map[string]voicesearch.Field{
			"name":    RestaurantName,
			"address": RestaurantAddress,
			"cuisine": RestaurantCuisine,
			"dishes":  RestaurantDishes,
		},
		Width:    4,
		PageSize: 1,
		Cap:      10,
		Searcher: ranked.New(records),
		Speak: func(r voicesearch.Record) string {
			return fmt.Sprintf("%s is located at %s and serves %s food. Food dishes include, %s. ",
				r.Get(RestaurantName), r.Get(RestaurantAddress), r.Get(RestaurantCuisine), r.Get(RestaurantDishes))
		},
		Describe: func(r voicesearch.Record) string {
			return fmt.Sprintf("'%s' is located at '%s' and serves '%s' food. Food dishes include, '%s'. ",
				r.Get(RestaurantName), r.Get(RestaurantAddress), r.Get(RestaurantCuisine), r.Get(RestaurantDishes))
		},
	}
}

// Nightlife builds the nightlife venue domain over records.
func Nightlife(records []voicesearch.Record) *Domain {
	return &Domain{
		Name: DomainNightlife,
		Noun: "venues",
		Fields: map[string]voicesearch.Field{
			"name":        VenueName,
			"address":     VenueAddress,
			"category":    VenueCategory,
			"description": VenueDescription,
			"days":        VenueDays,
			"genre":       VenueGenre,
		},
		Width:    6,
		PageSize: 1,
		Cap:      5,
		Searcher: ranked.New(records),
		Speak: func(r voicesearch.Record) string {
			return fmt.Sprintf("%s is a %s at %s, %s. It is open %s and plays %s music. ",
				r.Get(VenueName), r.Get(VenueCategory), r.Get(VenueAddress), r.Get(VenueDescription), r.Get(VenueDays), r.Get(VenueGenre))
		},
		Describe: func(r voicesearch.Record) string {
			return fmt.Sprintf("'%s', %s at '%s'. Open %s. Music: %s. ",
				r.Get(VenueName), r.Get(VenueCategory), r.Get(VenueAddress), r.Get(VenueDays), r.Get(VenueGenre))
		},
	}
}

// FieldNames lists the searchable field names of d, sorted by position.
func (d *Domain) FieldNames() []string {
	names := make([]string, d.Width)
	for name, f := range d.Fields {
		if int(f) < len(names) {
			names[f] = name
		}
	}
	return names
}

func (d *Domain) speakAll(records []voicesearch.Record) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(d.Speak(r))
	}
	return b.String()
}

func (d *Domain) describeAll(records []voicesearch.Record) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(d.Describe(r))
	}
	return b.String()
}
