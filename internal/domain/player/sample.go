package player

// SamplePlayers returns the built-in roster used to seed an empty store.
// Every call returns a fresh copy.
func SamplePlayers() Roster {
	return Roster{
		{
			ID:             1,
			Name:           "Wayne Gretzky",
			Number:         99,
			Position:       "Center",
			Team:           "Edmonton Oilers",
			Age:            60,
			Height:         1.83,
			Weight:         84,
			Nationality:    "Canadian",
			GamesPlayed:    1487,
			Goals:          894,
			Assists:        1963,
			PenaltyMinutes: 577,
			Photos:         []string{"gretzky_photo"},
		},
		{
			ID:             2,
			Name:           "Sidney Crosby",
			Number:         87,
			Position:       "Center",
			Team:           "Pittsburgh Penguins",
			Age:            34,
			Height:         1.80,
			Weight:         91,
			Nationality:    "Canadian",
			GamesPlayed:    1039,
			Goals:          486,
			Assists:        839,
			PenaltyMinutes: 505,
			Photos:         []string{"crosby_photo", "crosby_photo2", "crosby_photo3"},
		},
		{
			ID:             3,
			Name:           "Connor McDavid",
			Number:         97,
			Position:       "Center",
			Team:           "Edmonton Oilers",
			Age:            26,
			Height:         1.83,
			Weight:         91,
			Nationality:    "Canadian",
			GamesPlayed:    600,
			Goals:          241,
			Assists:        440,
			PenaltyMinutes: 183,
		},
		{
			ID:             4,
			Name:           "Nathan MacKinnon",
			Number:         29,
			Position:       "Center",
			Team:           "Colorado Avalanche",
			Age:            28,
			Height:         1.83,
			Weight:         93,
			Nationality:    "Canadian",
			GamesPlayed:    600,
			Goals:          251,
			Assists:        408,
			PenaltyMinutes: 102,
		},
		{
			ID:             5,
			Name:           "Auston Matthews",
			Number:         34,
			Position:       "Center",
			Team:           "Toronto Maple Leafs",
			Age:            26,
			Height:         1.88,
			Weight:         100,
			Nationality:    "American",
			GamesPlayed:    400,
			Goals:          200,
			Assists:        205,
			PenaltyMinutes: 150,
		},
		{
			ID:             6,
			Name:           "Leon Draisaitl",
			Number:         29,
			Position:       "Center",
			Team:           "Edmonton Oilers",
			Age:            28,
			Height:         1.92,
			Weight:         110,
			Nationality:    "German",
			GamesPlayed:    500,
			Goals:          220,
			Assists:        300,
			PenaltyMinutes: 200,
		},
		{
			ID:             7,
			Name:           "David Pastrnak",
			Number:         88,
			Position:       "Right Wing",
			Team:           "Boston Bruins",
			Age:            27,
			Height:         1.80,
			Weight:         79,
			Nationality:    "Czech",
			GamesPlayed:    500,
			Goals:          210,
			Assists:        200,
			PenaltyMinutes: 130,
		},
		{
			ID:             8,
			Name:           "Nikita Kucherov",
			Number:         86,
			Position:       "Right Wing",
			Team:           "Tampa Bay Lightning",
			Age:            30,
			Height:         1.82,
			Weight:         90,
			Nationality:    "Russian",
			GamesPlayed:    600,
			Goals:          220,
			Assists:        300,
			PenaltyMinutes: 100,
		},
		{
			ID:             9,
			Name:           "Artemi Panarin",
			Number:         10,
			Position:       "Left Wing",
			Team:           "New York Rangers",
			Age:            31,
			Height:         1.80,
			Weight:         77,
			Nationality:    "Russian",
			GamesPlayed:    500,
			Goals:          180,
			Assists:        320,
			PenaltyMinutes: 80,
		},
		{
			ID:             10,
			Name:           "Cale Makar",
			Number:         8,
			Position:       "Defenseman",
			Team:           "Colorado Avalanche",
			Age:            24,
			Height:         1.80,
			Weight:         84,
			Nationality:    "Canadian",
			GamesPlayed:    250,
			Goals:          50,
			Assists:        150,
			PenaltyMinutes: 60,
		},
		{
			ID:             11,
			Name:           "Andrei Vasilevskiy",
			Number:         88,
			Position:       "Goalie",
			Team:           "Tampa Bay Lightning",
			Age:            30,
			Height:         1.93,
			Weight:         98,
			Nationality:    "Russian",
			GamesPlayed:    500,
			Goals:          0,
			Assists:        0,
			PenaltyMinutes: 40,
		},
		{
			ID:             12,
			Name:           "Anthony Mantha",
			Number:         39,
			Position:       "Right Wing",
			Team:           "Washington Capitals",
			Age:            29,
			Height:         1.96,
			Weight:         107,
			Nationality:    "Canadian",
			GamesPlayed:    450,
			Goals:          130,
			Assists:        130,
			PenaltyMinutes: 200,
		},
		{
			ID:             13,
			Name:           "Pierre-Olivier Joseph",
			Number:         73,
			Position:       "Defenseman",
			Team:           "Pittsburgh Penguins",
			Age:            24,
			Height:         1.88,
			Weight:         84,
			Nationality:    "Canadian",
			GamesPlayed:    150,
			Goals:          10,
			Assists:        40,
			PenaltyMinutes: 60,
		},
		{
			ID:             14,
			Name:           "Mathieu Joseph",
			Number:         21,
			Position:       "Right Wing",
			Team:           "Ottawa Senators",
			Age:            26,
			Height:         1.83,
			Weight:         84,
			Nationality:    "Canadian",
			GamesPlayed:    300,
			Goals:          50,
			Assists:        70,
			PenaltyMinutes: 100,
		},
		{
			ID:             15,
			Name:           "Yanni Gourde",
			Number:         37,
			Position:       "Center",
			Team:           "Seattle Kraken",
			Age:            32,
			Height:         1.75,
			Weight:         77,
			Nationality:    "Canadian",
			GamesPlayed:    500,
			Goals:          120,
			Assists:        180,
			PenaltyMinutes: 250,
		},
		{
			ID:             16,
			Name:           "David Savard",
			Number:         58,
			Position:       "Defenseman",
			Team:           "Montreal Canadiens",
			Age:            33,
			Height:         1.88,
			Weight:         100,
			Nationality:    "Canadian",
			GamesPlayed:    700,
			Goals:          50,
			Assists:        150,
			PenaltyMinutes: 400,
		},
	}
}
