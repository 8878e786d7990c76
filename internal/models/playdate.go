package models

// Playdate represents a community-organized playdate
type Playdate struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Location        string   `json:"location"`
	Organizer       string   `json:"organizer"`
	Participants    int      `json:"participants"`
	MaxParticipants int      `json:"maxParticipants"`
	AgeRange        string   `json:"ageRange"`
	Needs           []string `json:"needs"`
	Description     string   `json:"description"`
}

// IsFull reports whether the playdate has reached its capacity.
// Join operations do not enforce this; callers use it to disable joining.
func (p Playdate) IsFull() bool {
	return p.Participants >= p.MaxParticipants
}

// SpotsLeft returns the remaining capacity, never negative
func (p Playdate) SpotsLeft() int {
	if p.Participants >= p.MaxParticipants {
		return 0
	}
	return p.MaxParticipants - p.Participants
}

// Clone returns a deep copy of the playdate
func (p Playdate) Clone() Playdate {
	out := p
	out.Needs = cloneTags(p.Needs)
	return out
}

// PlaydateDraft holds everything a caller supplies when creating a playdate
type PlaydateDraft struct {
	Title           string   `json:"title"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Location        string   `json:"location"`
	Organizer       string   `json:"organizer"`
	MaxParticipants int      `json:"maxParticipants"`
	AgeRange        string   `json:"ageRange"`
	Needs           []string `json:"needs"`
	Description     string   `json:"description"`
}
