// Package views derives the data each screen displays from the stores.
// Nothing here holds state beyond its arguments.
package views

import (
	"strings"
	"time"

	"village/internal/models"
	"village/internal/validation"
)

// AllFilter is the selector value that disables category/specialty filtering
const AllFilter = "all"

// FilterOption is a selectable filter chip
type FilterOption struct {
	ID    string
	Label string
}

// MemberFilters are the specialty selectors offered on the community screen
var MemberFilters = []FilterOption{
	{ID: AllFilter, Label: "All Members"},
	{ID: "autism", Label: "Autism"},
	{ID: "adhd", Label: "ADHD"},
	{ID: "sensory", Label: "Sensory Processing"},
	{ID: "learning", Label: "Learning Support"},
}

// ResourceCategories are the category selectors offered on the resources screen
var ResourceCategories = []FilterOption{
	{ID: AllFilter, Label: "All Resources"},
	{ID: "activities", Label: "Activities"},
	{ID: "services", Label: "Services"},
	{ID: "education", Label: "Education"},
	{ID: "support", Label: "Support"},
}

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

func anyContainsFold(tags []string, term string) bool {
	for _, tag := range tags {
		if containsFold(tag, term) {
			return true
		}
	}
	return false
}

func selectorActive(selector string) bool {
	return selector != "" && !strings.EqualFold(selector, AllFilter)
}

// FilterPlaydates keeps playdates whose title, location or any need tag contains term
func FilterPlaydates(playdates []models.Playdate, term string) []models.Playdate {
	out := make([]models.Playdate, 0, len(playdates))
	for _, p := range playdates {
		if containsFold(p.Title, term) || containsFold(p.Location, term) || anyContainsFold(p.Needs, term) {
			out = append(out, p)
		}
	}
	return out
}

// PartitionPlaydates splits playdates into those on or after today and those before.
// Dates are compared as local calendar dates; an unparseable date counts as upcoming.
func PartitionPlaydates(playdates []models.Playdate, now time.Time) (upcoming, past []models.Playdate) {
	today := now.Format(validation.DateLayout)
	upcoming = make([]models.Playdate, 0, len(playdates))
	past = make([]models.Playdate, 0)
	for _, p := range playdates {
		date, err := time.Parse(validation.DateLayout, strings.TrimSpace(p.Date))
		if err == nil && date.Format(validation.DateLayout) < today {
			past = append(past, p)
			continue
		}
		upcoming = append(upcoming, p)
	}
	return upcoming, past
}

// FilterCareRequests keeps requests whose description or any need tag contains term
func FilterCareRequests(requests []models.CareRequest, term string) []models.CareRequest {
	out := make([]models.CareRequest, 0, len(requests))
	for _, r := range requests {
		if containsFold(r.Description, term) || anyContainsFold(r.Needs, term) {
			out = append(out, r)
		}
	}
	return out
}

// PartitionCareRequests splits requests by status. Anything not matched is open.
func PartitionCareRequests(requests []models.CareRequest) (open, matched []models.CareRequest) {
	open = make([]models.CareRequest, 0, len(requests))
	matched = make([]models.CareRequest, 0)
	for _, r := range requests {
		if r.Status == models.CareStatusMatched {
			matched = append(matched, r)
			continue
		}
		open = append(open, r)
	}
	return open, matched
}

// FilterMembers keeps members whose name or location contains term and, unless the
// selector is "all", who list a specialty containing the selector
func FilterMembers(members []models.CommunityMember, term, selector string) []models.CommunityMember {
	out := make([]models.CommunityMember, 0, len(members))
	for _, m := range members {
		if !containsFold(m.Name, term) && !containsFold(m.Location, term) {
			continue
		}
		if selectorActive(selector) && !anyContainsFold(m.Specialties, selector) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// FilterResources keeps resources whose title, description or author contains term and,
// unless the category is "all", whose category equals it ignoring case
func FilterResources(resources []models.Resource, term, category string) []models.Resource {
	out := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if !containsFold(r.Title, term) && !containsFold(r.Description, term) && !containsFold(r.Author, term) {
			continue
		}
		if selectorActive(category) && !strings.EqualFold(r.Category, category) {
			continue
		}
		out = append(out, r)
	}
	return out
}
