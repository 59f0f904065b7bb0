package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	apperrors "campus-collab-backend/internal/errors"
	"campus-collab-backend/internal/logger"
	"campus-collab-backend/internal/repository"
)

// RepoStats is an activity summary for a GitHub repository
type RepoStats struct {
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Stars           int       `json:"stars"`
	Forks           int       `json:"forks"`
	OpenIssuesCount int       `json:"open_issues_count"`
	Language        string    `json:"language"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FallbackStats is the degraded summary served when the GitHub API is
// unreachable, built from what the database already knows
type FallbackStats struct {
	Name      string    `json:"name"`
	FullName  string    `json:"full_name"`
	Language  string    `json:"language"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TeamRepoStats pairs a team's project with its repository summary
type TeamRepoStats struct {
	TeamID        uuid.UUID      `json:"team_id"`
	TeamName      string         `json:"team_name,omitempty"`
	TeamCode      string         `json:"team_code,omitempty"`
	ProjectID     uuid.UUID      `json:"project_id"`
	ProjectTitle  string         `json:"project_title,omitempty"`
	RepositoryURL string         `json:"repository_url"`
	Stats         *RepoStats     `json:"stats"`
	FallbackStats *FallbackStats `json:"fallback_stats,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// GitHubService summarizes project repositories via the GitHub REST API
type GitHubService struct {
	client   *github.Client
	teams    repository.TeamRepositoryInterface
	projects repository.ProjectRepositoryInterface
	mentors  repository.MentorRepositoryInterface
	logger   *logger.Logger
}

// NewGitHubService creates a new GitHub service. An empty token means
// unauthenticated access, subject to the public rate limit.
func NewGitHubService(token string, teams repository.TeamRepositoryInterface, projects repository.ProjectRepositoryInterface, mentors repository.MentorRepositoryInterface, log *logger.Logger) *GitHubService {
	var client *github.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		client = github.NewClient(oauth2.NewClient(context.Background(), ts))
	} else {
		client = github.NewClient(nil)
	}
	return &GitHubService{
		client:   client,
		teams:    teams,
		projects: projects,
		mentors:  mentors,
		logger:   log,
	}
}

// GetRepoStats fetches an activity summary for a repository URL
func (s *GitHubService) GetRepoStats(ctx context.Context, repoURL string) (*RepoStats, error) {
	owner, repo, err := parseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	ghRepo, _, err := s.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrGitHubUnavailable, err)
	}

	return &RepoStats{
		Name:            ghRepo.GetName(),
		FullName:        ghRepo.GetFullName(),
		Stars:           ghRepo.GetStargazersCount(),
		Forks:           ghRepo.GetForksCount(),
		OpenIssuesCount: ghRepo.GetOpenIssuesCount(),
		Language:        ghRepo.GetLanguage(),
		UpdatedAt:       ghRepo.GetUpdatedAt().Time,
	}, nil
}

// GetTeamStats summarizes the team project's repository. An API failure
// degrades to fallback stats built from stored data, not an error.
func (s *GitHubService) GetTeamStats(ctx context.Context, teamID uuid.UUID) (*TeamRepoStats, error) {
	team, err := s.teams.GetByID(teamID)
	if err != nil {
		return nil, apperrors.ErrTeamNotFound
	}
	project, err := s.projects.GetByTeamID(teamID)
	if err != nil {
		return nil, apperrors.ErrTeamProjectNotFound
	}
	if project.GithubRepo == "" {
		return nil, apperrors.ErrNoGithubRepo
	}

	result := &TeamRepoStats{
		TeamID:        team.ID,
		TeamName:      team.Name,
		ProjectID:     project.ID,
		ProjectTitle:  project.Title,
		RepositoryURL: project.GithubRepo,
	}

	stats, err := s.GetRepoStats(ctx, project.GithubRepo)
	if err != nil {
		s.logger.WithError(err).WithField("team_id", teamID).Warn("github stats unavailable, serving fallback")
		result.Error = err.Error()
		result.FallbackStats = fallbackFor(project.Title, project.GithubRepo, team.UpdatedAt)
		return result, nil
	}
	result.Stats = stats
	return result, nil
}

// GetMentorTeamStats summarizes every repository across a mentor's
// assigned teams, skipping teams without a GitHub-backed project
func (s *GitHubService) GetMentorTeamStats(ctx context.Context, mentorID uuid.UUID) ([]TeamRepoStats, error) {
	if _, err := s.mentors.GetByID(mentorID); err != nil {
		return nil, apperrors.ErrMentorNotFound
	}
	teams, err := s.teams.GetByMentorID(mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	results := make([]TeamRepoStats, 0, len(teams))
	for _, team := range teams {
		project, err := s.projects.GetByTeamID(team.ID)
		if err != nil || project.GithubRepo == "" {
			continue
		}

		entry := TeamRepoStats{
			TeamID:        team.ID,
			TeamName:      team.Name,
			TeamCode:      team.TeamCode,
			ProjectID:     project.ID,
			ProjectTitle:  project.Title,
			RepositoryURL: project.GithubRepo,
		}
		stats, err := s.GetRepoStats(ctx, project.GithubRepo)
		if err != nil {
			entry.Error = err.Error()
			entry.FallbackStats = fallbackFor(project.Title, project.GithubRepo, team.UpdatedAt)
		} else {
			entry.Stats = stats
		}
		results = append(results, entry)
	}
	return results, nil
}

// parseRepoURL extracts owner and repo from a github.com URL
func parseRepoURL(repoURL string) (string, string, error) {
	parsed, err := url.Parse(repoURL)
	if err != nil || !strings.Contains(parsed.Hostname(), "github.com") {
		return "", "", apperrors.ErrInvalidRepoURL
	}

	segments := make([]string, 0, 2)
	for _, segment := range strings.Split(parsed.Path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	if len(segments) < 2 {
		return "", "", apperrors.ErrInvalidRepoURL
	}
	return segments[0], strings.TrimSuffix(segments[1], ".git"), nil
}

func fallbackFor(title, repoURL string, updatedAt time.Time) *FallbackStats {
	name := title
	if name == "" {
		name = "Unknown"
	}

	segments := strings.Split(strings.TrimSuffix(repoURL, "/"), "/")
	fullName := repoURL
	if len(segments) >= 2 {
		fullName = strings.Join(segments[len(segments)-2:], "/")
	}

	return &FallbackStats{
		Name:      name,
		FullName:  fullName,
		Language:  "Unknown",
		UpdatedAt: updatedAt,
	}
}
