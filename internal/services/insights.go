package services

// Static presentation catalogs. These endpoints have no external data source;
// the payloads are fixed editorial content served as-is, never dressed up as
// engine output.

type TasteDimension struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type CulturalMarker struct {
	Name string `json:"name"`
}

type TasteEra struct {
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
}

type CulturalDNA struct {
	Dimensions []TasteDimension `json:"dimensions"`
	Markers    []CulturalMarker `json:"markers"`
	Evolution  []TasteEra       `json:"evolution"`
}

func CulturalDNACatalog() CulturalDNA {
	return CulturalDNA{
		Dimensions: []TasteDimension{
			{Name: "Mainstream vs. Niche", Score: 0.7},
			{Name: "Nostalgic vs. Contemporary", Score: 0.6},
			{Name: "Experimental vs. Familiar", Score: 0.8},
			{Name: "Social vs. Personal", Score: 0.5},
			{Name: "Emotional vs. Analytical", Score: 0.9},
		},
		Markers: []CulturalMarker{
			{Name: "Indie Enthusiast"},
			{Name: "Early Adopter"},
			{Name: "Genre Blender"},
			{Name: "Deep Diver"},
			{Name: "Trend Spotter"},
		},
		Evolution: []TasteEra{
			{
				Period:      "Early 2020s",
				Description: "Discovered indie electronic and ambient music",
				Genres:      []string{"Ambient", "Indie Electronic", "Lo-fi"},
			},
			{
				Period:      "Late 2010s",
				Description: "Heavy into alternative rock and indie pop",
				Genres:      []string{"Alternative Rock", "Indie Pop", "Post-Rock"},
			},
			{
				Period:      "Mid 2010s",
				Description: "Mainstream pop with emerging indie interests",
				Genres:      []string{"Pop", "Indie Folk", "Alternative"},
			},
		},
	}
}

type PredictionAccuracy struct {
	Overall int `json:"overall"`
	Music   int `json:"music"`
	Content int `json:"content"`
}

type MicroPrediction struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timeframe   string `json:"timeframe"`
	Confidence  int    `json:"confidence"`
}

type SeasonalPattern struct {
	Season      string   `json:"season"`
	Strength    int      `json:"strength"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
}

type AdvancedPredictions struct {
	Accuracy         PredictionAccuracy `json:"accuracy"`
	MicroPredictions []MicroPrediction  `json:"microPredictions"`
	SeasonalPatterns []SeasonalPattern  `json:"seasonalPatterns"`
}

func AdvancedPredictionsCatalog() AdvancedPredictions {
	return AdvancedPredictions{
		Accuracy: PredictionAccuracy{Overall: 84, Music: 87, Content: 81},
		MicroPredictions: []MicroPrediction{
			{
				ID:          "micro1",
				Title:       "You'll love the new Porcupine Tree album",
				Description: "Based on your progressive rock preferences",
				Timeframe:   "Next 2 weeks",
				Confidence:  89,
			},
			{
				ID:          "micro2",
				Title:       "Cyberpunk 2077 DLC will resonate with you",
				Description: "Matches your sci-fi gaming patterns",
				Timeframe:   "This month",
				Confidence:  76,
			},
		},
		SeasonalPatterns: []SeasonalPattern{
			{
				Season:      "Winter",
				Strength:    85,
				Description: "You gravitate toward ambient and introspective music",
				Genres:      []string{"Ambient", "Post-Rock", "Neo-Classical"},
			},
			{
				Season:      "Summer",
				Strength:    72,
				Description: "More upbeat and social content consumption",
				Genres:      []string{"Indie Pop", "Electronic", "Upbeat"},
			},
		},
	}
}

type CompatibleUser struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Compatibility   int    `json:"compatibility"`
	SharedInterests int    `json:"sharedInterests"`
}

type TasteCommunity struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     int      `json:"members"`
	Tags        []string `json:"tags"`
}

type SocialTasteNetwork struct {
	CompatibleUsers []CompatibleUser `json:"compatibleUsers"`
	Communities     []TasteCommunity `json:"communities"`
}

func SocialTasteNetworkCatalog() SocialTasteNetwork {
	return SocialTasteNetwork{
		CompatibleUsers: []CompatibleUser{
			{ID: "user1", Name: "Alex Chen", Compatibility: 87, SharedInterests: 12},
			{ID: "user2", Name: "Jordan Smith", Compatibility: 82, SharedInterests: 9},
			{ID: "user3", Name: "Sam Taylor", Compatibility: 78, SharedInterests: 8},
		},
		Communities: []TasteCommunity{
			{
				ID:          "indie-electronic",
				Name:        "Indie Electronic Explorers",
				Description: "Discovering the latest in electronic indie music",
				Members:     1247,
				Tags:        []string{"Electronic", "Indie", "Experimental"},
			},
			{
				ID:          "retro-gaming",
				Name:        "Retro Gaming Revival",
				Description: "Classic games and nostalgic gaming experiences",
				Members:     892,
				Tags:        []string{"Gaming", "Retro", "Nostalgia"},
			},
		},
	}
}
