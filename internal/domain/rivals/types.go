package rivals

import "errors"

type Kind string

const (
	KindAll    Kind = "all"
	KindTeam   Kind = "team"
	KindPlayer Kind = "player"
)

var ErrUnknownKind = errors.New("type must be one of all, team, player")

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "":
		return KindAll, nil
	case KindAll, KindTeam, KindPlayer:
		return Kind(s), nil
	}
	return "", ErrUnknownKind
}

type Level string

const (
	LevelBeginner     Level = "Principiante"
	LevelIntermediate Level = "Intermedio"
	LevelAdvanced     Level = "Avanzado"
)

var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

type Location string

const (
	LocationNorth  Location = "Zona Norte"
	LocationCenter Location = "Zona Centro"
	LocationSouth  Location = "Zona Sur"
)

var Locations = []Location{LocationNorth, LocationCenter, LocationSouth}

type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "Mañana"
	TimeAfternoon TimeOfDay = "Tarde"
	TimeNight     TimeOfDay = "Noche"
)

var Times = []TimeOfDay{TimeMorning, TimeAfternoon, TimeNight}

type Position string

const (
	PositionGoalkeeper Position = "Arquero"
	PositionDefender   Position = "Defensor"
	PositionMidfielder Position = "Mediocampista"
	PositionForward    Position = "Delantero"
)

var Positions = []Position{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward}

// Days are the day options offered by the search form. Stored listings may
// carry free text such as "Lunes a Viernes", hence substring matching.
var Days = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábados", "Domingos"}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
