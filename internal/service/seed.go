package service

import "village/internal/models"

// Seed is the fixed sample data loaded into a new CommunityService
type Seed struct {
	Playdates    []models.Playdate
	CareRequests []models.CareRequest
	Members      []models.CommunityMember
	Resources    []models.Resource
}

// SeedData returns a fresh copy of the built-in sample data
func SeedData() Seed {
	return Seed{
		Playdates: []models.Playdate{
			{
				ID:              "1",
				Title:           "Sensory-Friendly Park Playdate",
				Date:            "2024-01-25",
				Time:            "10:00 AM",
				Location:        "Golden Gate Park",
				Organizer:       "Maria Rodriguez",
				Participants:    4,
				MaxParticipants: 6,
				AgeRange:        "5-8",
				Needs:           []string{"Autism", "ADHD"},
				Description:     "A quiet morning playdate at the sensory garden area.",
			},
			{
				ID:              "2",
				Title:           "Art Therapy Session",
				Date:            "2024-01-27",
				Time:            "2:00 PM",
				Location:        "Community Center",
				Organizer:       "Jennifer Kim",
				Participants:    3,
				MaxParticipants: 5,
				AgeRange:        "6-10",
				Needs:           []string{"Autism", "Anxiety"},
				Description:     "Creative expression through art with understanding parents.",
			},
		},
		CareRequests: []models.CareRequest{
			{
				ID:          "1",
				Type:        models.CareBabysitting,
				Requester:   "Sarah Johnson",
				Date:        "2024-01-26",
				Time:        "6:00 PM - 9:00 PM",
				Children:    1,
				Needs:       []string{"Autism", "Sensory Processing"},
				Description: "Need trusted care for date night. Emma loves puzzles and quiet activities.",
				Status:      models.CareStatusOpen,
			},
			{
				ID:          "2",
				Type:        models.CarePlaydateSwap,
				Requester:   "Mike Chen",
				Date:        "2024-01-28",
				Time:        "1:00 PM - 4:00 PM",
				Children:    2,
				Needs:       []string{"ADHD", "Learning Disabilities"},
				Description: "Looking to swap childcare with another family this weekend.",
				Status:      models.CareStatusMatched,
			},
		},
		Members: []models.CommunityMember{
			{
				ID:          "1",
				Name:        "Maria Rodriguez",
				Avatar:      "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
				Location:    "San Francisco, CA",
				Children:    2,
				Specialties: []string{"Autism", "Speech Therapy"},
				Rating:      4.9,
				Verified:    true,
			},
			{
				ID:          "2",
				Name:        "Jennifer Kim",
				Avatar:      "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=150&h=150&fit=crop&crop=face",
				Location:    "Oakland, CA",
				Children:    1,
				Specialties: []string{"Art Therapy", "Sensory Processing"},
				Rating:      4.8,
				Verified:    true,
			},
			{
				ID:          "3",
				Name:        "Mike Chen",
				Avatar:      "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
				Location:    "Berkeley, CA",
				Children:    2,
				Specialties: []string{"ADHD", "Learning Support"},
				Rating:      4.7,
				Verified:    true,
			},
		},
		Resources: []models.Resource{
			{
				ID:          "1",
				Title:       "Sensory-Friendly Activities Guide",
				Type:        "guide",
				Category:    "Activities",
				Author:      "Dr. Lisa Thompson",
				Description: "Comprehensive guide to sensory-friendly activities for children with autism.",
				URL:         "#",
				Rating:      4.9,
				Downloads:   1250,
			},
			{
				ID:          "2",
				Title:       "Local Special Needs Services Directory",
				Type:        "directory",
				Category:    "Services",
				Author:      "Bay Area Special Needs Network",
				Description: "Complete directory of local therapists, specialists, and support services.",
				URL:         "#",
				Rating:      4.8,
				Downloads:   890,
			},
		},
	}
}
