package repository

import (
	"context"
	gosync "sync"

	"piramida/internal/domain/entity"
	"piramida/internal/domain/repository"
	"piramida/pkg/errors"
)

// In-memory repositories back the server when no Firestore project is
// configured. They keep insertion order, matching the append-only semantics
// of the persistent collections.

type MemorySubmissionRepository struct {
	mu          gosync.RWMutex
	submissions []*entity.Submission
	byID        map[int64]int
}

func NewMemorySubmissionRepository() *MemorySubmissionRepository {
	return &MemorySubmissionRepository{
		byID: make(map[int64]int),
	}
}

func (r *MemorySubmissionRepository) Create(ctx context.Context, submission *entity.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *submission
	r.byID[copied.ID] = len(r.submissions)
	r.submissions = append(r.submissions, &copied)
	return nil
}

func (r *MemorySubmissionRepository) GetByID(ctx context.Context, id int64) (*entity.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("Submission", nil)
	}
	copied := *r.submissions[idx]
	return &copied, nil
}

func (r *MemorySubmissionRepository) List(ctx context.Context) ([]*entity.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Submission, 0, len(r.submissions))
	for _, sub := range r.submissions {
		copied := *sub
		out = append(out, &copied)
	}
	return out, nil
}

func (r *MemorySubmissionRepository) ListByStatus(ctx context.Context, status string) ([]*entity.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Submission
	for _, sub := range r.submissions {
		if sub.Status != status {
			continue
		}
		copied := *sub
		out = append(out, &copied)
	}
	return out, nil
}

func (r *MemorySubmissionRepository) Update(ctx context.Context, submission *entity.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[submission.ID]
	if !ok {
		return errors.NotFound("Submission", nil)
	}
	copied := *submission
	r.submissions[idx] = &copied
	return nil
}

type MemoryListingRepository struct {
	mu       gosync.RWMutex
	listings []*entity.Listing
}

func NewMemoryListingRepository() *MemoryListingRepository {
	return &MemoryListingRepository{}
}

func (r *MemoryListingRepository) find(id int64) int {
	for i, listing := range r.listings {
		if listing.ID == id {
			return i
		}
	}
	return -1
}

func (r *MemoryListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *listing
	r.listings = append(r.listings, &copied)
	return nil
}

func (r *MemoryListingRepository) GetByID(ctx context.Context, id int64) (*entity.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.find(id)
	if idx < 0 {
		return nil, errors.NotFound("Listing", nil)
	}
	copied := *r.listings[idx]
	return &copied, nil
}

func (r *MemoryListingRepository) List(ctx context.Context) ([]*entity.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Listing, 0, len(r.listings))
	for _, listing := range r.listings {
		copied := *listing
		out = append(out, &copied)
	}
	return out, nil
}

func (r *MemoryListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.find(listing.ID)
	if idx < 0 {
		return errors.NotFound("Listing", nil)
	}
	copied := *listing
	r.listings[idx] = &copied
	return nil
}

func (r *MemoryListingRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.find(id)
	if idx < 0 {
		return errors.NotFound("Listing", nil)
	}
	r.listings = append(r.listings[:idx], r.listings[idx+1:]...)
	return nil
}

func (r *MemoryListingRepository) IncrementViews(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.find(id)
	if idx < 0 {
		return errors.NotFound("Listing", nil)
	}
	r.listings[idx].Views++
	return nil
}

func (r *MemoryListingRepository) IncrementInquiries(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.find(id)
	if idx < 0 {
		return errors.NotFound("Listing", nil)
	}
	r.listings[idx].Inquiries++
	return nil
}

type MemoryAdminRepository struct {
	mu     gosync.RWMutex
	admins []*entity.Admin
}

func NewMemoryAdminRepository() *MemoryAdminRepository {
	return &MemoryAdminRepository{}
}

func (r *MemoryAdminRepository) Create(ctx context.Context, admin *entity.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *admin
	r.admins = append(r.admins, &copied)
	return nil
}

func (r *MemoryAdminRepository) GetByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, admin := range r.admins {
		if admin.Email == email {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Admin", nil)
}

func (r *MemoryAdminRepository) List(ctx context.Context) ([]*entity.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Admin, 0, len(r.admins))
	for _, admin := range r.admins {
		copied := *admin
		out = append(out, &copied)
	}
	return out, nil
}

func (r *MemoryAdminRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, admin := range r.admins {
		if admin.ID == id {
			r.admins = append(r.admins[:i], r.admins[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Admin", nil)
}

type MemoryPricingRepository struct {
	mu       gosync.RWMutex
	settings *entity.PricingSettings
}

func NewMemoryPricingRepository() *MemoryPricingRepository {
	return &MemoryPricingRepository{}
}

func (r *MemoryPricingRepository) Get(ctx context.Context) (*entity.PricingSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.settings == nil {
		return nil, errors.NotFound("Pricing settings", nil)
	}
	copied := *r.settings
	return &copied, nil
}

func (r *MemoryPricingRepository) Set(ctx context.Context, settings *entity.PricingSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *settings
	r.settings = &copied
	return nil
}

type MemoryUserRepository struct {
	mu    gosync.RWMutex
	users []*entity.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *user
	r.users = append(r.users, &copied)
	return nil
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

type MemoryInquiryRepository struct {
	mu        gosync.RWMutex
	inquiries []*entity.Inquiry
}

func NewMemoryInquiryRepository() *MemoryInquiryRepository {
	return &MemoryInquiryRepository{}
}

func (r *MemoryInquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *inquiry
	r.inquiries = append(r.inquiries, &copied)
	return nil
}

func (r *MemoryInquiryRepository) List(ctx context.Context) ([]*entity.Inquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Inquiry, 0, len(r.inquiries))
	for _, inquiry := range r.inquiries {
		copied := *inquiry
		out = append(out, &copied)
	}
	return out, nil
}

var (
	_ repository.SubmissionRepository = (*MemorySubmissionRepository)(nil)
	_ repository.ListingRepository    = (*MemoryListingRepository)(nil)
	_ repository.AdminRepository      = (*MemoryAdminRepository)(nil)
	_ repository.PricingRepository    = (*MemoryPricingRepository)(nil)
	_ repository.UserRepository       = (*MemoryUserRepository)(nil)
	_ repository.InquiryRepository    = (*MemoryInquiryRepository)(nil)
)
