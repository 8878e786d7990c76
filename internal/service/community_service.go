package service

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"village/internal/models"
)

var (
	ErrPlaydateNotFound    = errors.New("playdate not found")
	ErrCareRequestNotFound = errors.New("care request not found")
	ErrCareRequestMatched  = errors.New("care request is already matched")
)

// CommunityService holds the seeded playdate, care pool, member and resource collections.
// Collections keep insertion order and are returned as copies.
type CommunityService struct {
	mu  sync.RWMutex
	ids IDGenerator

	playdates    []models.Playdate
	careRequests []models.CareRequest
	members      []models.CommunityMember
	resources    []models.Resource
}

// NewCommunityService creates a domain store populated with the seed data
func NewCommunityService(ids IDGenerator) *CommunityService {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	s := &CommunityService{ids: ids}
	s.seed(SeedData())
	return s
}

func (s *CommunityService) seed(data Seed) {
	s.playdates = make([]models.Playdate, 0, len(data.Playdates))
	for _, p := range data.Playdates {
		s.playdates = append(s.playdates, p.Clone())
	}
	s.careRequests = make([]models.CareRequest, 0, len(data.CareRequests))
	for _, r := range data.CareRequests {
		s.careRequests = append(s.careRequests, r.Clone())
	}
	s.members = make([]models.CommunityMember, 0, len(data.Members))
	for _, m := range data.Members {
		s.members = append(s.members, m.Clone())
	}
	s.resources = append([]models.Resource(nil), data.Resources...)

	log.Debug().
		Int("playdates", len(s.playdates)).
		Int("care_requests", len(s.careRequests)).
		Int("members", len(s.members)).
		Int("resources", len(s.resources)).
		Msg("community data seeded")
}

// Playdates returns all playdates in insertion order
func (s *CommunityService) Playdates() []models.Playdate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Playdate, len(s.playdates))
	for i, p := range s.playdates {
		out[i] = p.Clone()
	}
	return out
}

// Playdate looks up a single playdate by ID
func (s *CommunityService) Playdate(id string) (models.Playdate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.playdates {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return models.Playdate{}, ErrPlaydateNotFound
}

// CareRequests returns all care requests in insertion order
func (s *CommunityService) CareRequests() []models.CareRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CareRequest, len(s.careRequests))
	for i, r := range s.careRequests {
		out[i] = r.Clone()
	}
	return out
}

// CareRequest looks up a single care request by ID
func (s *CommunityService) CareRequest(id string) (models.CareRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.careRequests {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	return models.CareRequest{}, ErrCareRequestNotFound
}

// CommunityMembers returns the member directory
func (s *CommunityService) CommunityMembers() []models.CommunityMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CommunityMember, len(s.members))
	for i, m := range s.members {
		out[i] = m.Clone()
	}
	return out
}

// Resources returns the shared resources
func (s *CommunityService) Resources() []models.Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Resource(nil), s.resources...)
}

// AddPlaydate appends a new playdate with its organizer as the only participant
func (s *CommunityService) AddPlaydate(draft models.PlaydateDraft) models.Playdate {
	playdate := models.Playdate{
		ID:              s.ids.NewID(),
		Title:           draft.Title,
		Date:            draft.Date,
		Time:            draft.Time,
		Location:        draft.Location,
		Organizer:       draft.Organizer,
		Participants:    1,
		MaxParticipants: draft.MaxParticipants,
		AgeRange:        draft.AgeRange,
		Needs:           append([]string(nil), draft.Needs...),
		Description:     draft.Description,
	}

	s.mu.Lock()
	s.playdates = append(s.playdates, playdate)
	s.mu.Unlock()

	log.Info().Str("playdate_id", playdate.ID).Str("title", playdate.Title).Msg("playdate created")
	return playdate.Clone()
}

// JoinPlaydate adds one participant to the playdate. Unknown IDs are ignored and
// capacity is not checked here.
func (s *CommunityService) JoinPlaydate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.playdates {
		if s.playdates[i].ID == id {
			updated := s.playdates[i].Clone()
			updated.Participants++
			s.playdates[i] = updated
			log.Info().Str("playdate_id", id).Int("participants", updated.Participants).Msg("playdate joined")
			return
		}
	}
	log.Debug().Str("playdate_id", id).Msg("join ignored for unknown playdate")
}

// AddCareRequest appends a new open care request
func (s *CommunityService) AddCareRequest(draft models.CareRequestDraft) models.CareRequest {
	request := models.CareRequest{
		ID:          s.ids.NewID(),
		Type:        draft.Type,
		Requester:   draft.Requester,
		Date:        draft.Date,
		Time:        draft.Time,
		Children:    draft.Children,
		Needs:       append([]string(nil), draft.Needs...),
		Description: draft.Description,
		Status:      models.CareStatusOpen,
	}

	s.mu.Lock()
	s.careRequests = append(s.careRequests, request)
	s.mu.Unlock()

	log.Info().Str("care_request_id", request.ID).Str("type", string(request.Type)).Msg("care request posted")
	return request.Clone()
}

// MatchCareRequest moves an open care request to matched
func (s *CommunityService) MatchCareRequest(id string) (models.CareRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.careRequests {
		if s.careRequests[i].ID != id {
			continue
		}
		if s.careRequests[i].Status == models.CareStatusMatched {
			return s.careRequests[i].Clone(), ErrCareRequestMatched
		}
		updated := s.careRequests[i].Clone()
		updated.Status = models.CareStatusMatched
		s.careRequests[i] = updated
		log.Info().Str("care_request_id", id).Msg("care request matched")
		return updated.Clone(), nil
	}
	return models.CareRequest{}, ErrCareRequestNotFound
}
