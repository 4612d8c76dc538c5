package pickup

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"remat-backend/domain"
	"remat-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakePickupRepository struct {
	pickups map[string]*entities.PickupRequest
	credits map[string]int
}

func newFakePickupRepository() *fakePickupRepository {
	return &fakePickupRepository{
		pickups: map[string]*entities.PickupRequest{},
		credits: map[string]int{},
	}
}

func (f *fakePickupRepository) CreatePickup(_ context.Context, pickup *entities.PickupRequest) error {
	f.pickups[pickup.ID.String()] = pickup
	return nil
}

func (f *fakePickupRepository) GetPickupByID(_ context.Context, id string) (*entities.PickupRequest, error) {
	pickup, ok := f.pickups[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *pickup
	return &copied, nil
}

func (f *fakePickupRepository) GetUserPickups(_ context.Context, userID string) ([]*entities.PickupRequest, error) {
	var result []*entities.PickupRequest
	for _, p := range f.pickups {
		if p.UserID.String() == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePickupRepository) GetAllPickups(_ context.Context) ([]*entities.PickupRequest, error) {
	var result []*entities.PickupRequest
	for _, p := range f.pickups {
		result = append(result, p)
	}
	return result, nil
}

func (f *fakePickupRepository) UpdateLocation(_ context.Context, id string, lat, lng float64, addressText string) error {
	pickup, ok := f.pickups[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	pickup.Latitude = lat
	pickup.Longitude = lng
	if addressText != "" {
		pickup.AddressText = addressText
	}
	return nil
}

func (f *fakePickupRepository) DeletePickup(_ context.Context, id string) error {
	delete(f.pickups, id)
	return nil
}

func (f *fakePickupRepository) AcceptPickup(_ context.Context, id string, adminID uuid.UUID, points int) error {
	pickup, ok := f.pickups[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if pickup.Status != domain.PickupStatusOpen {
		return domain.ErrPickupAlreadyProcessed
	}
	pickup.Status = domain.PickupStatusAccepted
	pickup.PointsAwarded = &points
	pickup.AdminID = &adminID
	f.credits[pickup.UserID.String()] += points
	return nil
}

func (f *fakePickupRepository) RejectPickup(_ context.Context, id string, adminID uuid.UUID, reason string) error {
	pickup, ok := f.pickups[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if pickup.Status != domain.PickupStatusOpen {
		return domain.ErrPickupAlreadyProcessed
	}
	pickup.Status = domain.PickupStatusRejected
	pickup.RejectionReason = reason
	pickup.AdminID = &adminID
	return nil
}

func (f *fakePickupRepository) CountByStatus(_ context.Context, status string) (int64, error) {
	var count int64
	for _, p := range f.pickups {
		if p.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakePickupRepository) SumAwardedPoints(_ context.Context) (int64, error) {
	var total int64
	for _, p := range f.pickups {
		if p.Status == domain.PickupStatusAccepted && p.PointsAwarded != nil {
			total += int64(*p.PointsAwarded)
		}
	}
	return total, nil
}

type fakeS3 struct {
	deleted []string
}

func (f *fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	return dir + "/" + fileName, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.amazonaws.com/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	const prefix = "https://bucket.s3.amazonaws.com/"
	if len(link) > len(prefix) {
		return link[len(prefix):]
	}
	return ""
}

func f64(v float64) *float64 { return &v }

func seedPickup(repo *fakePickupRepository, userID uuid.UUID, status string) *entities.PickupRequest {
	pickup := &entities.PickupRequest{
		ID:       uuid.New(),
		UserID:   userID,
		ImageURL: "https://bucket.s3.amazonaws.com/pickup-requests/pickup-1",
		Status:   status,
		User:     &entities.User{ID: userID, Name: "Budi"},
	}
	repo.pickups[pickup.ID.String()] = pickup
	return pickup
}

func TestAcceptPickupRejectsNonPositivePoints(t *testing.T) {
	repo := newFakePickupRepository()
	s := NewPickupService(repo, &fakeS3{})

	userID := uuid.New()
	pickup := seedPickup(repo, userID, domain.PickupStatusOpen)

	err := s.AcceptPickup(context.Background(), pickup.ID.String(), domain.AcceptPickupRequest{PointsAwarded: 0}, uuid.New().String())
	if !errors.Is(err, domain.ErrInvalidPoints) {
		t.Errorf("error = %v, want ErrInvalidPoints", err)
	}

	if repo.credits[userID.String()] != 0 {
		t.Error("points were credited despite invalid request")
	}
}

func TestAcceptPickupCreditsPoints(t *testing.T) {
	repo := newFakePickupRepository()
	s := NewPickupService(repo, &fakeS3{})

	userID := uuid.New()
	pickup := seedPickup(repo, userID, domain.PickupStatusOpen)

	err := s.AcceptPickup(context.Background(), pickup.ID.String(), domain.AcceptPickupRequest{PointsAwarded: 150}, uuid.New().String())
	if err != nil {
		t.Fatalf("AcceptPickup returned error: %v", err)
	}

	if repo.credits[userID.String()] != 150 {
		t.Errorf("credited %d points, want 150", repo.credits[userID.String()])
	}
	if got := repo.pickups[pickup.ID.String()].Status; got != domain.PickupStatusAccepted {
		t.Errorf("status = %q, want accepted", got)
	}
}

func TestAcceptPickupTwiceFails(t *testing.T) {
	repo := newFakePickupRepository()
	s := NewPickupService(repo, &fakeS3{})

	pickup := seedPickup(repo, uuid.New(), domain.PickupStatusOpen)
	adminID := uuid.New().String()

	if err := s.AcceptPickup(context.Background(), pickup.ID.String(), domain.AcceptPickupRequest{PointsAwarded: 100}, adminID); err != nil {
		t.Fatalf("first accept failed: %v", err)
	}

	err := s.AcceptPickup(context.Background(), pickup.ID.String(), domain.AcceptPickupRequest{PointsAwarded: 100}, adminID)
	if !errors.Is(err, domain.ErrPickupAlreadyProcessed) {
		t.Errorf("error = %v, want ErrPickupAlreadyProcessed", err)
	}
}

func TestRejectPickupRecordsReason(t *testing.T) {
	repo := newFakePickupRepository()
	s := NewPickupService(repo, &fakeS3{})

	pickup := seedPickup(repo, uuid.New(), domain.PickupStatusOpen)

	err := s.RejectPickup(context.Background(), pickup.ID.String(), domain.RejectPickupRequest{Reason: "not e-waste"}, uuid.New().String())
	if err != nil {
		t.Fatalf("RejectPickup returned error: %v", err)
	}

	stored := repo.pickups[pickup.ID.String()]
	if stored.Status != domain.PickupStatusRejected {
		t.Errorf("status = %q, want rejected", stored.Status)
	}
	if stored.RejectionReason != "not e-waste" {
		t.Errorf("rejection reason = %q", stored.RejectionReason)
	}
}

func TestUpdateLocationOnlyWhileOpen(t *testing.T) {
	repo := newFakePickupRepository()
	s := NewPickupService(repo, &fakeS3{})

	userID := uuid.New()
	pickup := seedPickup(repo, userID, domain.PickupStatusAccepted)

	_, err := s.UpdateLocation(context.Background(), pickup.ID.String(), domain.UpdatePickupLocationRequest{Latitude: f64(1), Longitude: f64(2)}, userID.String())
	if !errors.Is(err, domain.ErrPickupNotOpen) {
		t.Errorf("error = %v, want ErrPickupNotOpen", err)
	}
}

func TestUpdateLocationRequiresCoordinates(t *testing.T) {
	repo := newFakePickupRepository()
	s := NewPickupService(repo, &fakeS3{})

	userID := uuid.New()
	pickup := seedPickup(repo, userID, domain.PickupStatusOpen)

	_, err := s.UpdateLocation(context.Background(), pickup.ID.String(), domain.UpdatePickupLocationRequest{Latitude: f64(1)}, userID.String())
	if !errors.Is(err, domain.ErrInvalidCoordinates) {
		t.Errorf("error = %v, want ErrInvalidCoordinates", err)
	}
}

func TestUpdateLocationRejectsOtherUsers(t *testing.T) {
	repo := newFakePickupRepository()
	s := NewPickupService(repo, &fakeS3{})

	pickup := seedPickup(repo, uuid.New(), domain.PickupStatusOpen)

	_, err := s.UpdateLocation(context.Background(), pickup.ID.String(), domain.UpdatePickupLocationRequest{Latitude: f64(1), Longitude: f64(2)}, uuid.New().String())
	if !errors.Is(err, domain.ErrUnauthorizedPickupAccess) {
		t.Errorf("error = %v, want ErrUnauthorizedPickupAccess", err)
	}
}

func TestDeletePickupRemovesImage(t *testing.T) {
	repo := newFakePickupRepository()
	s3 := &fakeS3{}
	s := NewPickupService(repo, s3)

	userID := uuid.New()
	pickup := seedPickup(repo, userID, domain.PickupStatusOpen)

	if err := s.DeletePickup(context.Background(), pickup.ID.String(), userID.String()); err != nil {
		t.Fatalf("DeletePickup returned error: %v", err)
	}

	if _, ok := repo.pickups[pickup.ID.String()]; ok {
		t.Error("pickup still present after delete")
	}
	if len(s3.deleted) != 1 || s3.deleted[0] != "pickup-requests/pickup-1" {
		t.Errorf("deleted objects = %v", s3.deleted)
	}
}

func TestDeletePickupOnlyWhileOpen(t *testing.T) {
	repo := newFakePickupRepository()
	s3 := &fakeS3{}
	s := NewPickupService(repo, s3)

	userID := uuid.New()
	for _, status := range []string{domain.PickupStatusAccepted, domain.PickupStatusRejected} {
		pickup := seedPickup(repo, userID, status)

		err := s.DeletePickup(context.Background(), pickup.ID.String(), userID.String())
		if !errors.Is(err, domain.ErrPickupNotOpen) {
			t.Errorf("status %q: error = %v, want ErrPickupNotOpen", status, err)
		}
		if _, ok := repo.pickups[pickup.ID.String()]; !ok {
			t.Errorf("status %q: processed pickup was deleted", status)
		}
	}

	if len(s3.deleted) != 0 {
		t.Errorf("deleted objects = %v, want none", s3.deleted)
	}
}

func TestDeletePickupNotFound(t *testing.T) {
	repo := newFakePickupRepository()
	s := NewPickupService(repo, &fakeS3{})

	err := s.DeletePickup(context.Background(), uuid.New().String(), uuid.New().String())
	if !errors.Is(err, domain.ErrPickupNotFound) {
		t.Errorf("error = %v, want ErrPickupNotFound", err)
	}
}
