package models

// User represents a parent account in the community
type User struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Avatar     string  `json:"avatar,omitempty"`
	Children   []Child `json:"children"`
	Location   string  `json:"location"`
	Bio        string  `json:"bio,omitempty"`
	Verified   bool    `json:"verified"`
	JoinedDate string  `json:"joinedDate"`
}

// Clone returns a deep copy so callers cannot mutate store-owned slices
func (u User) Clone() User {
	out := u
	if u.Children != nil {
		out.Children = make([]Child, len(u.Children))
		for i, c := range u.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// SignupDraft holds the caller-supplied fields of a new account
type SignupDraft struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Location string  `json:"location"`
	Avatar   string  `json:"avatar,omitempty"`
	Children []Child `json:"children"`
}

// ProfileUpdate is a partial user record. Nil fields are left unchanged.
type ProfileUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Email    *string  `json:"email,omitempty"`
	Avatar   *string  `json:"avatar,omitempty"`
	Location *string  `json:"location,omitempty"`
	Bio      *string  `json:"bio,omitempty"`
	Children *[]Child `json:"children,omitempty"`
}

// Apply merges the non-nil fields of p onto u
func (p ProfileUpdate) Apply(u User) User {
	out := u.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Avatar != nil {
		out.Avatar = *p.Avatar
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.Bio != nil {
		out.Bio = *p.Bio
	}
	if p.Children != nil {
		out.Children = User{Children: *p.Children}.Clone().Children
	}
	return out
}
