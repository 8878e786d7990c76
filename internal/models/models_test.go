package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaydateIsFull(t *testing.T) {
	tests := []struct {
		name         string
		participants int
		max          int
		want         bool
		spotsLeft    int
	}{
		{name: "room left", participants: 4, max: 6, want: false, spotsLeft: 2},
		{name: "exactly full", participants: 6, max: 6, want: true, spotsLeft: 0},
		{name: "over capacity", participants: 7, max: 6, want: true, spotsLeft: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Playdate{Participants: tt.participants, MaxParticipants: tt.max}
			assert.Equal(t, tt.want, p.IsFull())
			assert.Equal(t, tt.spotsLeft, p.SpotsLeft())
		})
	}
}

func TestCareTypeValidAndLabel(t *testing.T) {
	tests := []struct {
		careType CareType
		valid    bool
		label    string
	}{
		{CareBabysitting, true, "Babysitting"},
		{CarePlaydateSwap, true, "Playdate Swap"},
		{CareEmergencyCare, true, "Emergency Care"},
		{CareRespiteCare, true, "Respite Care"},
		{CareType("dog-walking"), false, "dog-walking"},
	}

	for _, tt := range tests {
		t.Run(string(tt.careType), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.careType.Valid())
			assert.Equal(t, tt.label, tt.careType.Label())
		})
	}
}

func TestCareStatusValid(t *testing.T) {
	assert.True(t, CareStatusOpen.Valid())
	assert.True(t, CareStatusMatched.Valid())
	assert.False(t, CareStatus("closed").Valid())
}

func TestUserCloneIsDeep(t *testing.T) {
	u := User{
		ID:   "1",
		Name: "Sarah Johnson",
		Children: []Child{
			{Name: "Emma", Age: 7, Needs: []string{"Autism"}, Interests: []string{"Art"}},
		},
	}

	clone := u.Clone()
	clone.Children[0].Needs[0] = "ADHD"
	clone.Children[0].Name = "Other"

	assert.Equal(t, "Autism", u.Children[0].Needs[0])
	assert.Equal(t, "Emma", u.Children[0].Name)
}

func TestProfileUpdateApplyMergesOnlySetFields(t *testing.T) {
	u := User{
		ID:         "1",
		Email:      "sarah@example.com",
		Name:       "Sarah Johnson",
		Location:   "San Francisco, CA",
		Verified:   true,
		JoinedDate: "2024-01-15",
		Children:   []Child{{Name: "Emma", Age: 7}},
	}
	location := "Oakland, CA"

	got := ProfileUpdate{Location: &location}.Apply(u)

	want := u.Clone()
	want.Location = "Oakland, CA"
	assert.Equal(t, want, got)
	assert.Equal(t, "San Francisco, CA", u.Location)
}

func TestUserJSONFieldNames(t *testing.T) {
	u := User{ID: "1", Email: "a@b.co", Name: "A", JoinedDate: "2024-01-15", Children: []Child{}}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"id", "email", "name", "children", "location", "verified", "joinedDate"} {
		assert.Contains(t, raw, key)
	}
	assert.NotContains(t, raw, "bio")
}
