package rivals

// Samples is the board as seeded at startup: teams first, then players.
func Samples() []Listing {
	return []Listing{
		&Team{
			Profile: Profile{
				ID: 1, Name: "Los Cracks FC", Level: LevelIntermediate,
				DayPreference: "Sábados", TimePreference: TimeAfternoon, Location: LocationNorth,
				Contact: "Juan (WhatsApp: 123-456-7890)", Created: "Hace 2 días",
			},
			Players:      8,
			NeedsPlayers: true,
		},
		&Team{
			Profile: Profile{
				ID: 2, Name: "Atlético Victoria", Level: LevelAdvanced,
				DayPreference: "Viernes", TimePreference: TimeNight, Location: LocationCenter,
				Contact: "Carlos (WhatsApp: 234-567-8901)", Created: "Hace 5 días",
			},
			Players:      10,
			NeedsPlayers: false,
		},
		&Team{
			Profile: Profile{
				ID: 3, Name: "Deportivo San Martín", Level: LevelBeginner,
				DayPreference: "Miércoles", TimePreference: TimeAfternoon, Location: LocationSouth,
				Contact: "Pedro (WhatsApp: 345-678-9012)", Created: "Hace 1 semana",
			},
			Players:      6,
			NeedsPlayers: true,
		},
		&Player{
			Profile: Profile{
				ID: 101, Name: "Miguel Fernández", Level: LevelIntermediate,
				DayPreference: "Lunes a Viernes", TimePreference: TimeNight, Location: LocationCenter,
				Contact: "WhatsApp: 456-789-0123", Created: "Hace 1 día",
			},
			Position: PositionForward,
			Age:      28,
		},
		&Player{
			Profile: Profile{
				ID: 102, Name: "Luis Sánchez", Level: LevelAdvanced,
				DayPreference: "Fin de semana", TimePreference: TimeMorning, Location: LocationNorth,
				Contact: "WhatsApp: 567-890-1234", Created: "Hace 3 días",
			},
			Position: PositionGoalkeeper,
			Age:      32,
		},
		&Player{
			Profile: Profile{
				ID: 103, Name: "Roberto Gómez", Level: LevelBeginner,
				DayPreference: "Cualquier día", TimePreference: TimeAfternoon, Location: LocationSouth,
				Contact: "WhatsApp: 678-901-2345", Created: "Hace 6 días",
			},
			Position: PositionDefender,
			Age:      25,
		},
	}
}
