package models

// Child represents a child profile embedded in a parent's account
type Child struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Needs     []string `json:"needs"`
	Interests []string `json:"interests"`
}

// Clone returns a deep copy of the child
func (c Child) Clone() Child {
	out := c
	out.Needs = cloneTags(c.Needs)
	out.Interests = cloneTags(c.Interests)
	return out
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
