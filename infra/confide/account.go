package confide

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/confide-social/confide/domain"
)

// accountService implements app.AccountService using the Confide API.
type accountService struct {
	client *Client
}

// NewAccountService creates an AccountService backed by the Confide API.
func NewAccountService(client *Client) *accountService {
	return &accountService{client: client}
}

type profileRecord struct {
	Username          string `json:"username"`
	Email             string `json:"email"`
	Fullname          string `json:"fullname"`
	Phone             string `json:"phone"`
	Location          string `json:"location"`
	Website           string `json:"website"`
	Bio               string `json:"bio"`
	Twitter           string `json:"twitter"`
	Instagram         string `json:"instagram"`
	PrivateProfile    bool   `json:"privateProfile"`
	EmailNotify       bool   `json:"emailNotifications"`
	PushNotify        bool   `json:"pushNotifications"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	CompletionPercent int    `json:"profileCompletionPercentage"`
}

func mapProfile(rec profileRecord) domain.Profile {
	return domain.Profile{
		Username:          rec.Username,
		Email:             rec.Email,
		Fullname:          rec.Fullname,
		Phone:             rec.Phone,
		Location:          rec.Location,
		Website:           rec.Website,
		Bio:               rec.Bio,
		Twitter:           rec.Twitter,
		Instagram:         rec.Instagram,
		PrivateProfile:    rec.PrivateProfile,
		EmailNotify:       rec.EmailNotify,
		PushNotify:        rec.PushNotify,
		ProfilePictureURL: rec.ProfilePictureURL,
		CompletionPercent: rec.CompletionPercent,
	}
}

func (s *accountService) CurrentProfile(_ context.Context) (domain.Profile, error) {
	data, err := s.client.Get("/api/profile", nil)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("fetching profile: %w", err)
	}
	var rec profileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Profile{}, fmt.Errorf("parsing profile: %w", err)
	}
	return mapProfile(rec), nil
}

func (s *accountService) UpdateProfile(_ context.Context, p domain.Profile) (domain.Profile, error) {
	body := profileRecord{
		Username:       p.Username,
		Email:          strings.TrimSpace(p.Email),
		Fullname:       strings.TrimSpace(p.Fullname),
		Phone:          strings.TrimSpace(p.Phone),
		Location:       strings.TrimSpace(p.Location),
		Website:        strings.TrimSpace(p.Website),
		Bio:            strings.TrimSpace(p.Bio),
		Twitter:        strings.TrimSpace(p.Twitter),
		Instagram:      strings.TrimSpace(p.Instagram),
		PrivateProfile: p.PrivateProfile,
		EmailNotify:    p.EmailNotify,
		PushNotify:     p.PushNotify,
	}
	data, err := s.client.Put("/api/profile", body)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("updating profile: %w", err)
	}
	var rec profileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Profile{}, fmt.Errorf("parsing updated profile: %w", err)
	}
	return mapProfile(rec), nil
}

func (s *accountService) DeleteAccount(_ context.Context) error {
	if _, err := s.client.Delete("/api/profile"); err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}
	return nil
}

func (s *accountService) UploadAvatar(_ context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening avatar file: %w", err)
	}
	defer f.Close()

	data, err := s.client.PostMultipart("/api/profile/picture", "file", filepath.Base(path), f)
	if err != nil {
		return "", fmt.Errorf("uploading avatar: %w", err)
	}
	var rec struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", fmt.Errorf("parsing avatar response: %w", err)
	}
	return rec.URL, nil
}

type statisticsRecord struct {
	TotalPosts    int `json:"totalPosts"`
	TotalLikes    int `json:"totalLikes"`
	TotalSupports int `json:"totalSupports"`
	TotalComments int `json:"totalComments"`
	ActivePosts   int `json:"activePosts"`
	ExpiredPosts  int `json:"expiredPosts"`
}

func (s *accountService) Statistics(_ context.Context) (domain.Statistics, error) {
	data, err := s.client.Get("/api/user/posts/statistics", nil)
	if err != nil {
		return domain.Statistics{}, fmt.Errorf("fetching statistics: %w", err)
	}
	var rec statisticsRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Statistics{}, fmt.Errorf("parsing statistics: %w", err)
	}
	return domain.Statistics{
		TotalPosts:    rec.TotalPosts,
		TotalLikes:    rec.TotalLikes,
		TotalSupports: rec.TotalSupports,
		TotalComments: rec.TotalComments,
		ActivePosts:   rec.ActivePosts,
		ExpiredPosts:  rec.ExpiredPosts,
	}, nil
}
