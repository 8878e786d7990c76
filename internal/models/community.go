package models

// CommunityMember is a read-only directory entry for another parent
type CommunityMember struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Avatar      string   `json:"avatar"`
	Location    string   `json:"location"`
	Children    int      `json:"children"`
	Specialties []string `json:"specialties"`
	Rating      float64  `json:"rating"`
	Verified    bool     `json:"verified"`
}

// Clone returns a deep copy of the member
func (m CommunityMember) Clone() CommunityMember {
	out := m
	out.Specialties = cloneTags(m.Specialties)
	return out
}

// Resource is a shared guide, directory or other document
type Resource struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Rating      float64 `json:"rating"`
	Downloads   int     `json:"downloads"`
}
