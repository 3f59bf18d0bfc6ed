package skill

// IntentName is the name of a recognized intent.
type IntentName string

const (
	IntentRestaurantType IntentName = "GetRestaurantType"
	IntentRestaurantInfo IntentName = "GetRestaurantInfo"
	IntentNightlifeInfo  IntentName = "GetNightlifeInfo"
	IntentNightlifeType  IntentName = "GetNightlifeType"
	IntentNightlifeDay   IntentName = "GetNightlifeDay"
	IntentMusicGenre     IntentName = "GetMusicGenre"
	IntentNextEvent      IntentName = "GetNextEventIntent"
	IntentNextRestaurant IntentName = "GetNextRestaurantIntent"
	IntentAmazonNext     IntentName = "AMAZON.NextIntent"
	IntentAmazonMore     IntentName = "AMAZON.MoreIntent"
	IntentAmazonStop     IntentName = "AMAZON.StopIntent"
	IntentAmazonCancel   IntentName = "AMAZON.CancelIntent"
	IntentAmazonHelp     IntentName = "AMAZON.HelpIntent"
)

// Table maps intent names to their handlers. It is built once and not modified afterwards.
type Table map[IntentName]Handler

// Lookup returns the handler for name.
func (t Table) Lookup(name IntentName) (Handler, bool) {
	h, ok := t[name]
	return h, ok
}

// NewTable builds the dispatch table for the restaurant and nightlife domains.
func NewTable(restaurants, nightlife *Domain) Table {
	resume := ResumeIntent{Domains: map[string]*Domain{
		restaurants.Name: restaurants,
		nightlife.Name:   nightlife,
	}}
	stop := HandlerFunc(stopIntent)

	return Table{
		IntentRestaurantType: SearchIntent{
			Domain: restaurants,
			Slot:   "CuisineType",
			Field:  RestaurantCuisine,
			Prompts: SearchPrompts{
				Missing:         "You forgot to say the type of cuisine you wish to go to. For example, you can say, recommend me a european restaurant. ",
				MissingReprompt: "For example, you can say, recommend me an asian restaurant. ",
				CardTitle:       "Restaurant results for: %s",
				NotFound:        "Could not find any %s restaurants. Please try a different cuisine. ",
				More:            "There are more '%s' restaurant results. Say more information to hear about them. ",
				MoreCard:        "More '%s' restaurants matched your search. Please say more information to discover more great restaurants. Otherwise, say stop if you don't want to hear about them. ",
			},
		},
		IntentRestaurantInfo: SearchIntent{
			Domain: restaurants,
			Slot:   "RestaurantItem",
			Field:  RestaurantName,
			Prompts: SearchPrompts{
				Missing:         "Looks like you forgot to mention a restaurant name. Which restaurant would you like to find information out about? ",
				MissingReprompt: "For example, you can say, tell me about Yugo. ",
				CardTitle:       "Restaurant results for: %s",
				NotFound:        "Could not find any %s restaurants. Please try a different name. ",
				More:            "There are more restaurants called '%s'. Say more information to hear about them. ",
				MoreCard:        "There are more restaurants called '%s'. You can say more information to discover another great restaurant. Or say stop if you are finished. ",
			},
		},
		IntentNightlifeInfo: SearchIntent{
			Domain: nightlife,
			Slot:   "VenueItem",
			Field:  VenueName,
			Prompts: SearchPrompts{
				Missing:         "Looks like you forgot to mention a venue name. Which bar or club would you like to know about? ",
				MissingReprompt: "For example, you can say, tell me about the Harp Bar. ",
				CardTitle:       "Nightlife results for: %s",
				NotFound:        "Could not find any venue called %s. Please try a different name. ",
				More:            "There are more venues called '%s'. Say more information to hear about them. ",
				MoreCard:        "There are more venues called '%s'. You can say more information to hear about them. Or say stop if you are finished. ",
			},
		},
		IntentNightlifeType: SearchIntent{
			Domain: nightlife,
			Slot:   "VenueType",
			Field:  VenueCategory,
			Prompts: SearchPrompts{
				Missing:         "You forgot to say what kind of place you would like to go to. For example, you can say, find me a pub. ",
				MissingReprompt: "For example, you can say, find me a nightclub. ",
				CardTitle:       "Nightlife results for: %s",
				NotFound:        "Could not find any %s venues. Please try a different kind of place. ",
				More:            "There are more '%s' results. Say more information to hear about them. ",
				MoreCard:        "More '%s' venues matched your search. Say more information to hear about them, or say stop. ",
			},
		},
		IntentNightlifeDay: SearchIntent{
			Domain: nightlife,
			Slot:   "DayOfWeek",
			Field:  VenueDays,
			Prompts: SearchPrompts{
				Missing:         "You forgot to say which day you would like to go out. For example, you can say, what is open on friday. ",
				MissingReprompt: "For example, you can say, where can I go on saturday. ",
				CardTitle:       "Nightlife open on: %s",
				NotFound:        "Could not find any venues open on %s. Please try a different day. ",
				More:            "There are more venues open on '%s'. Say more information to hear about them. ",
				MoreCard:        "More venues are open on '%s'. Say more information to hear about them, or say stop. ",
			},
		},
		IntentMusicGenre: SearchIntent{
			Domain: nightlife,
			Slot:   "MusicGenre",
			Field:  VenueGenre,
			Prompts: SearchPrompts{
				Missing:         "You forgot to say what kind of music you would like to hear. For example, you can say, where can I hear jazz. ",
				MissingReprompt: "For example, you can say, where can I hear rock music. ",
				CardTitle:       "Venues playing: %s",
				NotFound:        "Could not find any venues playing %s. Please try a different genre. ",
				More:            "There are more venues playing '%s'. Say more information to hear about them. ",
				MoreCard:        "More venues play '%s'. Say more information to hear about them, or say stop. ",
			},
		},
		IntentNextEvent:      resume,
		IntentNextRestaurant: resume,
		IntentAmazonNext:     resume,
		IntentAmazonMore:     resume,
		IntentAmazonStop:     stop,
		IntentAmazonCancel:   stop,
		IntentAmazonHelp:     HandlerFunc(helpIntent),
	}
}
