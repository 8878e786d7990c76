package views

import "village/internal/models"

// Dashboard is the signed-in home screen summary
type Dashboard struct {
	User              models.User
	PlaydateCount     int
	MemberCount       int
	CareRequestCount  int
	UpcomingPlaydates []models.Playdate
	RecentRequests    []models.CareRequest
	FeaturedMembers   []models.CommunityMember
}

// BuildDashboard previews the first entries of each collection along with totals
func BuildDashboard(user models.User, playdates []models.Playdate, requests []models.CareRequest, members []models.CommunityMember) Dashboard {
	return Dashboard{
		User:              user,
		PlaydateCount:     len(playdates),
		MemberCount:       len(members),
		CareRequestCount:  len(requests),
		UpcomingPlaydates: firstN(playdates, 2),
		RecentRequests:    firstN(requests, 2),
		FeaturedMembers:   firstN(members, 3),
	}
}

func firstN[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	return append([]T(nil), items[:n]...)
}
