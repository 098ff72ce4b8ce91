package entities

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	slugPattern       = regexp.MustCompile(`^[a-z0-9-]+$`)
	bareDomainPattern = regexp.MustCompile(`^[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

type Site struct {
	Id        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Slug      string
	Domain    string
	IsPublic  bool
	UserId    uuid.UUID
}

func NewSite(name, slug, domain string, isPublic bool, userId uuid.UUID) *Site {
	return &Site{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Name:      name,
		Slug:      slug,
		Domain:    domain,
		IsPublic:  isPublic,
		UserId:    userId,
	}
}

// ValidSlug reports whether s is a usable URL slug: lowercase alphanumerics
// and hyphens only.
func ValidSlug(s string) bool {
	return s != "" && slugPattern.MatchString(s)
}

// ValidSiteDomain accepts either a full http(s) URL or a bare domain like
// "example.com". Empty means no custom domain.
func ValidSiteDomain(d string) bool {
	if d == "" {
		return true
	}
	if strings.HasPrefix(d, "http://") || strings.HasPrefix(d, "https://") {
		return true
	}
	return bareDomainPattern.MatchString(d)
}

func (s *Site) validate() error {
	if s.Name == "" {
		return errors.New("name must not be empty")
	}
	if !ValidSlug(s.Slug) {
		return errors.New("slug must be lowercase alphanumerics and hyphens")
	}
	if !ValidSiteDomain(s.Domain) {
		return errors.New("domain must be a URL or bare domain")
	}
	if s.UserId == uuid.Nil {
		return errors.New("site must have an owner")
	}
	return nil
}

// Update applies only the provided fields. nil pointers mean the field was
// omitted from the request.
func (s *Site) Update(name, slug, domain *string, isPublic *bool) error {
	if name != nil {
		s.Name = *name
	}
	if slug != nil {
		s.Slug = *slug
	}
	if domain != nil {
		s.Domain = *domain
	}
	if isPublic != nil {
		s.IsPublic = *isPublic
	}
	s.UpdatedAt = time.Now()
	return s.validate()
}
