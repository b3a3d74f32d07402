package rivals

import "fmt"

// JustPublished is the created label of a listing published in this process.
const JustPublished = "Hace unos momentos"

// Profile is what teams and players share.
type Profile struct {
	ID             int
	Name           string
	Level          Level
	DayPreference  string
	TimePreference TimeOfDay
	Location       Location
	Contact        string
	Created        string
}

type Team struct {
	Profile
	Players      int
	NeedsPlayers bool
}

type Player struct {
	Profile
	Position Position
	Age      int
}

// Listing is either a *Team or a *Player. The set is closed.
type Listing interface {
	Summary() Profile
	sealed()
}

func (t *Team) Summary() Profile   { return t.Profile }
func (p *Player) Summary() Profile { return p.Profile }

func (*Team) sealed()   {}
func (*Player) sealed() {}

// Match dispatches on the concrete listing. Every consumer goes through it.
func Match[T any](l Listing, onTeam func(*Team) T, onPlayer func(*Player) T) T {
	switch v := l.(type) {
	case *Team:
		return onTeam(v)
	case *Player:
		return onPlayer(v)
	}
	panic(fmt.Sprintf("rivals: unhandled listing %T", l))
}

func KindOf(l Listing) Kind {
	return Match(l,
		func(*Team) Kind { return KindTeam },
		func(*Player) Kind { return KindPlayer },
	)
}
