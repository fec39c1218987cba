package service

import (
	"context"
	"strings"

	"microblog/internal/models"
	"microblog/internal/repository"
)

const (
	defaultSearchPageSize = 20
	maxSearchPageSize     = 100
)

// SearchService provides user directory search.
type SearchService struct {
	userRepo repository.UserRepository
}

// NewSearchService returns a new SearchService.
func NewSearchService(userRepo repository.UserRepository) *SearchService {
	return &SearchService{userRepo: userRepo}
}

// SearchUsers matches the query case-insensitively against usernames and
// email addresses of activated, non-deleted accounts and returns summaries.
// A non-positive page yields an empty page; a non-positive page size falls
// back to the default.
func (s *SearchService) SearchUsers(ctx context.Context, query string, page, pageSize int) ([]models.UserSummary, error) {
	if page <= 0 {
		return []models.UserSummary{}, nil
	}
	if pageSize <= 0 {
		pageSize = defaultSearchPageSize
	}
	if pageSize > maxSearchPageSize {
		pageSize = maxSearchPageSize
	}

	users, err := s.userRepo.Search(ctx, strings.TrimSpace(query), pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}
	return summaries, nil
}
