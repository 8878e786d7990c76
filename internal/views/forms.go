package views

import (
	"strings"

	"village/internal/models"
	"village/internal/validation"
)

// ParseTags splits a comma separated field into trimmed, non-empty tags
func ParseTags(raw string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// PlaydateForm is the raw input of the create playdate form
type PlaydateForm struct {
	Title           string
	Date            string
	Time            string
	Location        string
	MaxParticipants string
	AgeRange        string
	Needs           string
	Description     string
}

// Draft validates the form and converts it into a playdate draft
func (f PlaydateForm) Draft(organizer string) (models.PlaydateDraft, error) {
	for _, field := range []struct{ name, value string }{
		{"title", f.Title},
		{"date", f.Date},
		{"time", f.Time},
		{"location", f.Location},
	} {
		if err := validation.Required(field.name, field.value); err != nil {
			return models.PlaydateDraft{}, err
		}
	}
	maxParticipants, err := validation.ParseCount("maxParticipants", f.MaxParticipants)
	if err != nil {
		return models.PlaydateDraft{}, err
	}

	return models.PlaydateDraft{
		Title:           strings.TrimSpace(f.Title),
		Date:            strings.TrimSpace(f.Date),
		Time:            strings.TrimSpace(f.Time),
		Location:        strings.TrimSpace(f.Location),
		Organizer:       organizer,
		MaxParticipants: maxParticipants,
		AgeRange:        strings.TrimSpace(f.AgeRange),
		Needs:           ParseTags(f.Needs),
		Description:     strings.TrimSpace(f.Description),
	}, nil
}

// CareRequestForm is the raw input of the create care request form
type CareRequestForm struct {
	Type        string
	Date        string
	Time        string
	Children    string
	Needs       string
	Description string
}

// Draft validates the form and converts it into a care request draft.
// An empty type defaults to babysitting.
func (f CareRequestForm) Draft(requester string) (models.CareRequestDraft, error) {
	careType := models.CareType(strings.TrimSpace(f.Type))
	if careType == "" {
		careType = models.CareBabysitting
	}
	if !careType.Valid() {
		return models.CareRequestDraft{}, validation.ValidationError{Field: "type", Message: "unknown care type " + string(careType)}
	}
	for _, field := range []struct{ name, value string }{
		{"date", f.Date},
		{"time", f.Time},
		{"description", f.Description},
	} {
		if err := validation.Required(field.name, field.value); err != nil {
			return models.CareRequestDraft{}, err
		}
	}
	children, err := validation.ParseCount("children", f.Children)
	if err != nil {
		return models.CareRequestDraft{}, err
	}

	return models.CareRequestDraft{
		Type:        careType,
		Requester:   requester,
		Date:        strings.TrimSpace(f.Date),
		Time:        strings.TrimSpace(f.Time),
		Children:    children,
		Needs:       ParseTags(f.Needs),
		Description: strings.TrimSpace(f.Description),
	}, nil
}

// SignupForm is the raw input of the two step signup form
type SignupForm struct {
	Name            string
	Email           string
	Location        string
	Password        string
	ConfirmPassword string
	ChildName       string
	ChildAge        string
	ChildNeeds      string
	ChildInterests  string
}

// Validate checks the account step of the form
func (f SignupForm) Validate() error {
	if err := validation.ValidatePasswordsMatch(f.Password, f.ConfirmPassword); err != nil {
		return err
	}
	if err := validation.ValidateName(f.Name); err != nil {
		return err
	}
	if err := validation.ValidateEmail(f.Email); err != nil {
		return err
	}
	return validation.ValidatePassword(f.Password)
}

// Draft validates the whole form and builds a signup draft with a single child
func (f SignupForm) Draft() (models.SignupDraft, error) {
	if err := f.Validate(); err != nil {
		return models.SignupDraft{}, err
	}
	if err := validation.Required("childName", f.ChildName); err != nil {
		return models.SignupDraft{}, err
	}
	age, err := validation.ParseCount("childAge", f.ChildAge)
	if err != nil {
		return models.SignupDraft{}, err
	}

	return models.SignupDraft{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Location: strings.TrimSpace(f.Location),
		Children: []models.Child{{
			Name:      strings.TrimSpace(f.ChildName),
			Age:       age,
			Needs:     ParseTags(f.ChildNeeds),
			Interests: ParseTags(f.ChildInterests),
		}},
	}, nil
}

// ProfileForm holds the editable profile fields
type ProfileForm struct {
	Name     string
	Location string
	Bio      string
}

// NewProfileForm prefills the form from the current user
func NewProfileForm(u models.User) ProfileForm {
	return ProfileForm{Name: u.Name, Location: u.Location, Bio: u.Bio}
}

// Update converts the form into a profile update touching name, location and bio
func (f ProfileForm) Update() (models.ProfileUpdate, error) {
	if err := validation.ValidateName(f.Name); err != nil {
		return models.ProfileUpdate{}, err
	}
	name := strings.TrimSpace(f.Name)
	location := strings.TrimSpace(f.Location)
	bio := strings.TrimSpace(f.Bio)
	return models.ProfileUpdate{Name: &name, Location: &location, Bio: &bio}, nil
}
