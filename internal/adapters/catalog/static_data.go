package catalog

import (
	"travel-planner-service/internal/domain"
	"travel-planner-service/internal/ports"
)

// Embedded catalog tables. Immutable after init: adapters hand out
// copies, never the backing slices.

var knownPlaces = []domain.Place{
	{Name: "New Delhi", Coords: domain.Coordinates{Lat: 28.6139, Lng: 77.2090}},
	{Name: "Tokyo", Coords: domain.Coordinates{Lat: 35.6764, Lng: 139.6503}},
	{Name: "Kyoto", Coords: domain.Coordinates{Lat: 35.0116, Lng: 135.7681}},
	{Name: "Paris", Coords: domain.Coordinates{Lat: 48.8566, Lng: 2.3522}},
	{Name: "Rome", Coords: domain.Coordinates{Lat: 41.9028, Lng: 12.4964}},
	{Name: "London", Coords: domain.Coordinates{Lat: 51.5072, Lng: -0.1276}},
	{Name: "New York", Coords: domain.Coordinates{Lat: 40.7128, Lng: -74.0060}},
	{Name: "Singapore", Coords: domain.Coordinates{Lat: 1.3521, Lng: 103.8198}},
	{Name: "Sydney", Coords: domain.Coordinates{Lat: -33.8688, Lng: 151.2093}},
	{Name: "Barcelona", Coords: domain.Coordinates{Lat: 41.3874, Lng: 2.1686}},
	{Name: "Bangkok", Coords: domain.Coordinates{Lat: 13.7563, Lng: 100.5018}},
	{Name: "Berlin", Coords: domain.Coordinates{Lat: 52.5200, Lng: 13.4050}},
}

var defaultModeProfiles = []ports.ModeProfile{
	{
		Mode: domain.ModeFlight, SpeedKmh: 750, MaxRangeKm: 0,
		BaseUSD: 120, USDPerKm: 0.11, CarbonKgPerKm: 0.133,
		OverheadHours: 3, Departure: "08:30",
		Summary: "Nonstop economy fare, airport transfers included",
	},
	{
		Mode: domain.ModeTrain, SpeedKmh: 160, MaxRangeKm: 3000,
		BaseUSD: 40, USDPerKm: 0.07, CarbonKgPerKm: 0.041,
		OverheadHours: 0.5, Departure: "07:15",
		Summary: "Reserved seat on the intercity rail line",
	},
	{
		Mode: domain.ModeBus, SpeedKmh: 80, MaxRangeKm: 1500,
		BaseUSD: 15, USDPerKm: 0.045, CarbonKgPerKm: 0.027,
		OverheadHours: 0.25, Departure: "06:45",
		Summary: "Coach with onboard wifi and two rest breaks",
	},
	{
		Mode: domain.ModeCar, SpeedKmh: 90, MaxRangeKm: 800,
		BaseUSD: 30, USDPerKm: 0.09, CarbonKgPerKm: 0.171,
		OverheadHours: 0, Departure: "09:00",
		Summary: "Self-drive rental, fuel and tolls estimated",
	},
}

var attractionsByDestination = map[string][]ports.Attraction{
	"tokyo": {
		{ID: "tokyo-sensoji", Name: "Senso-ji Temple", Category: "Culture",
			Description: "Tokyo's oldest temple and the Nakamise shopping street in Asakusa.",
			DurationHours: 2, CostUSD: 0, Coords: domain.Coordinates{Lat: 35.7148, Lng: 139.7967}},
		{ID: "tokyo-skytree", Name: "Tokyo Skytree", Category: "Viewpoint",
			Description: "634m broadcast tower with observation decks over the Kanto plain.",
			DurationHours: 1.5, CostUSD: 21, Coords: domain.Coordinates{Lat: 35.7101, Lng: 139.8107}},
		{ID: "tokyo-ueno-park", Name: "Ueno Park", Category: "Park",
			Description: "Museum quarter, cherry trees and the Shinobazu pond loop.",
			DurationHours: 2, CostUSD: 0, Coords: domain.Coordinates{Lat: 35.7156, Lng: 139.7745}},
		{ID: "tokyo-national-museum", Name: "Tokyo National Museum", Category: "Culture",
			Description: "Japan's largest art and archaeology collection at the top of Ueno Park.",
			DurationHours: 2.5, CostUSD: 7, Coords: domain.Coordinates{Lat: 35.7188, Lng: 139.7765}},
		{ID: "tokyo-tsukiji", Name: "Tsukiji Outer Market", Category: "Food",
			Description: "Street-food stalls and knife shops around the old fish market.",
			DurationHours: 1.5, CostUSD: 25, Coords: domain.Coordinates{Lat: 35.6654, Lng: 139.7707}},
		{ID: "tokyo-teamlab", Name: "teamLab Planets", Category: "Art",
			Description: "Barefoot immersive digital art museum in Toyosu.",
			DurationHours: 2, CostUSD: 27, Coords: domain.Coordinates{Lat: 35.6491, Lng: 139.7897}},
		{ID: "tokyo-meiji-shrine", Name: "Meiji Shrine", Category: "Culture",
			Description: "Forested Shinto shrine next to Harajuku station.",
			DurationHours: 1.5, CostUSD: 0, Coords: domain.Coordinates{Lat: 35.6764, Lng: 139.6993}},
		{ID: "tokyo-shibuya", Name: "Shibuya Crossing & Center-gai", Category: "Neighbourhood",
			Description: "The scramble crossing, Hachiko statue and backstreet arcades.",
			DurationHours: 1.5, CostUSD: 15, Coords: domain.Coordinates{Lat: 35.6595, Lng: 139.7005}},
		{ID: "tokyo-shinjuku-gyoen", Name: "Shinjuku Gyoen", Category: "Park",
			Description: "Formal gardens bridging Shinjuku's towers and quiet lawns.",
			DurationHours: 1.5, CostUSD: 5, Coords: domain.Coordinates{Lat: 35.6852, Lng: 139.7100}},
		{ID: "tokyo-golden-gai", Name: "Golden Gai", Category: "Nightlife",
			Description: "Two hundred micro-bars packed into six lantern-lit alleys.",
			DurationHours: 2, CostUSD: 40, Coords: domain.Coordinates{Lat: 35.6938, Lng: 139.7045}},
		{ID: "tokyo-akihabara", Name: "Akihabara Electric Town", Category: "Shopping",
			Description: "Electronics, retro games and anime floors around Chuo-dori.",
			DurationHours: 2, CostUSD: 20, Coords: domain.Coordinates{Lat: 35.7023, Lng: 139.7745}},
		{ID: "tokyo-imperial-east", Name: "Imperial Palace East Gardens", Category: "Landmark",
			Description: "Edo castle ruins and moat walk in the city centre.",
			DurationHours: 1.5, CostUSD: 0, Coords: domain.Coordinates{Lat: 35.6852, Lng: 139.7528}},
	},
	"paris": {
		{ID: "paris-louvre", Name: "Louvre Museum", Category: "Art",
			Description: "The world's most visited museum, from antiquities to 1848.",
			DurationHours: 3, CostUSD: 24, Coords: domain.Coordinates{Lat: 48.8606, Lng: 2.3376}},
		{ID: "paris-eiffel", Name: "Eiffel Tower", Category: "Landmark",
			Description: "Summit lifts and the Champ de Mars esplanade.",
			DurationHours: 2, CostUSD: 30, Coords: domain.Coordinates{Lat: 48.8584, Lng: 2.2945}},
		{ID: "paris-notre-dame", Name: "Notre-Dame & Ile de la Cite", Category: "Culture",
			Description: "Restored cathedral and the medieval island around it.",
			DurationHours: 1.5, CostUSD: 0, Coords: domain.Coordinates{Lat: 48.8530, Lng: 2.3499}},
		{ID: "paris-marais", Name: "Le Marais", Category: "Neighbourhood",
			Description: "Falafel lanes, galleries and the Place des Vosges.",
			DurationHours: 2, CostUSD: 20, Coords: domain.Coordinates{Lat: 48.8575, Lng: 2.3622}},
		{ID: "paris-orsay", Name: "Musee d'Orsay", Category: "Art",
			Description: "Impressionists in a converted Beaux-Arts rail station.",
			DurationHours: 2.5, CostUSD: 18, Coords: domain.Coordinates{Lat: 48.8600, Lng: 2.3266}},
		{ID: "paris-montmartre", Name: "Montmartre & Sacre-Coeur", Category: "Viewpoint",
			Description: "Hilltop basilica, artists' square and winding stairs.",
			DurationHours: 2, CostUSD: 0, Coords: domain.Coordinates{Lat: 48.8867, Lng: 2.3431}},
		{ID: "paris-luxembourg", Name: "Luxembourg Gardens", Category: "Park",
			Description: "Chestnut-lined promenades and the Medici fountain.",
			DurationHours: 1.5, CostUSD: 0, Coords: domain.Coordinates{Lat: 48.8462, Lng: 2.3372}},
		{ID: "paris-seine-food", Name: "Rue Cler Market Walk", Category: "Food",
			Description: "Classic market street tasting crawl near the 7th.",
			DurationHours: 1.5, CostUSD: 35, Coords: domain.Coordinates{Lat: 48.8566, Lng: 2.3060}},
	},
	"rome": {
		{ID: "rome-colosseum", Name: "Colosseum", Category: "Landmark",
			Description: "Flavian amphitheatre with arena-floor access.",
			DurationHours: 2, CostUSD: 18, Coords: domain.Coordinates{Lat: 41.8902, Lng: 12.4922}},
		{ID: "rome-forum", Name: "Roman Forum & Palatine", Category: "Culture",
			Description: "The ceremonial heart of the ancient city.",
			DurationHours: 2.5, CostUSD: 18, Coords: domain.Coordinates{Lat: 41.8925, Lng: 12.4853}},
		{ID: "rome-vatican", Name: "Vatican Museums & Sistine Chapel", Category: "Art",
			Description: "Papal collections ending under Michelangelo's ceiling.",
			DurationHours: 3, CostUSD: 20, Coords: domain.Coordinates{Lat: 41.9065, Lng: 12.4536}},
		{ID: "rome-pantheon", Name: "Pantheon", Category: "Culture",
			Description: "Hadrian's dome, still the world's largest unreinforced concrete span.",
			DurationHours: 1, CostUSD: 5, Coords: domain.Coordinates{Lat: 41.8986, Lng: 12.4769}},
		{ID: "rome-trastevere", Name: "Trastevere", Category: "Food",
			Description: "Trattorie and cobbled lanes across the Tiber.",
			DurationHours: 2, CostUSD: 30, Coords: domain.Coordinates{Lat: 41.8897, Lng: 12.4694}},
		{ID: "rome-borghese", Name: "Villa Borghese Gardens", Category: "Park",
			Description: "Landscaped park above the Spanish Steps with gallery access.",
			DurationHours: 2, CostUSD: 15, Coords: domain.Coordinates{Lat: 41.9142, Lng: 12.4923}},
		{ID: "rome-trevi", Name: "Trevi Fountain & Quirinale Walk", Category: "Neighbourhood",
			Description: "Baroque fountain circuit through the centro storico.",
			DurationHours: 1.5, CostUSD: 0, Coords: domain.Coordinates{Lat: 41.9009, Lng: 12.4833}},
		{ID: "rome-gianicolo", Name: "Gianicolo Terrace", Category: "Viewpoint",
			Description: "Panorama over the domes from the Janiculum hill.",
			DurationHours: 1, CostUSD: 0, Coords: domain.Coordinates{Lat: 41.8919, Lng: 12.4610}},
	},
}
