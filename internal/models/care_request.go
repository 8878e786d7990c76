package models

// CareType enumerates the kinds of care a parent can request
type CareType string

const (
	CareBabysitting   CareType = "babysitting"
	CarePlaydateSwap  CareType = "playdate-swap"
	CareEmergencyCare CareType = "emergency-care"
	CareRespiteCare   CareType = "respite-care"
)

// CareTypes lists the care types in display order
var CareTypes = []CareType{CareBabysitting, CarePlaydateSwap, CareEmergencyCare, CareRespiteCare}

// Valid reports whether t is one of the known care types
func (t CareType) Valid() bool {
	for _, known := range CareTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns the human readable name of the care type
func (t CareType) Label() string {
	switch t {
	case CareBabysitting:
		return "Babysitting"
	case CarePlaydateSwap:
		return "Playdate Swap"
	case CareEmergencyCare:
		return "Emergency Care"
	case CareRespiteCare:
		return "Respite Care"
	default:
		return string(t)
	}
}

// CareStatus tracks whether a care request has found a helper
type CareStatus string

const (
	CareStatusOpen    CareStatus = "open"
	CareStatusMatched CareStatus = "matched"
)

// Valid reports whether s is a known status
func (s CareStatus) Valid() bool {
	return s == CareStatusOpen || s == CareStatusMatched
}

// CareRequest represents a request posted to the care pool
type CareRequest struct {
	ID          string     `json:"id"`
	Type        CareType   `json:"type"`
	Requester   string     `json:"requester"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Children    int        `json:"children"`
	Needs       []string   `json:"needs"`
	Description string     `json:"description"`
	Status      CareStatus `json:"status"`
}

// Clone returns a deep copy of the care request
func (r CareRequest) Clone() CareRequest {
	out := r
	out.Needs = cloneTags(r.Needs)
	return out
}

// CareRequestDraft holds the caller-supplied fields of a new care request
type CareRequestDraft struct {
	Type        CareType `json:"type"`
	Requester   string   `json:"requester"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Children    int      `json:"children"`
	Needs       []string `json:"needs"`
	Description string   `json:"description"`
}
