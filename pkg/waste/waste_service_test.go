package waste

import (
	"context"
	"errors"
	"testing"

	"remat-backend/domain"
	"remat-backend/entities"
	"remat-backend/pkg/bin"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeBinRepository struct {
	bins map[string]*entities.Bin
}

func (f *fakeBinRepository) CreateBin(_ context.Context, b *entities.Bin) error {
	f.bins[b.ID.String()] = b
	return nil
}

func (f *fakeBinRepository) GetBins(_ context.Context) ([]*entities.Bin, error) {
	return nil, nil
}

func (f *fakeBinRepository) GetBinByID(_ context.Context, id string) (*entities.Bin, error) {
	if b, ok := f.bins[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBinRepository) UpdateBin(_ context.Context, _ *entities.Bin) error { return nil }

func (f *fakeBinRepository) DeleteBin(_ context.Context, _ string) error { return nil }

func (f *fakeBinRepository) GetNearbyBins(_ context.Context, _, _ float64, _ int) ([]*bin.NearbyBin, error) {
	return nil, nil
}

func (f *fakeBinRepository) GetBinStats(_ context.Context) (bin.BinStats, error) {
	return bin.BinStats{}, nil
}

type fakeWasteRepository struct {
	recorded []*entities.Transaction
	bins     map[string]*entities.Bin
}

func (f *fakeWasteRepository) RecordDeposit(_ context.Context, txn *entities.Transaction) (*entities.Bin, error) {
	f.recorded = append(f.recorded, txn)
	b := f.bins[txn.BinID.String()]
	b.FillLevel += 10
	if b.FillLevel >= domain.BinFullThreshold {
		b.Status = domain.BinStatusFull
	}
	return b, nil
}

func (f *fakeWasteRepository) CountTransactions(_ context.Context) (int64, error) {
	return int64(len(f.recorded)), nil
}

func (f *fakeWasteRepository) SumPointsAwarded(_ context.Context) (int64, error) {
	var total int64
	for _, txn := range f.recorded {
		total += int64(txn.PointsAwarded)
	}
	return total, nil
}

func newSubmitFixture(status string, fillLevel int) (WasteService, *fakeWasteRepository, *entities.Bin) {
	b := &entities.Bin{ID: uuid.New(), Status: status, FillLevel: fillLevel}
	binRepo := &fakeBinRepository{bins: map[string]*entities.Bin{b.ID.String(): b}}
	wasteRepo := &fakeWasteRepository{bins: binRepo.bins}
	return NewWasteService(wasteRepo, binRepo), wasteRepo, b
}

func TestSubmitWasteRecordsDeposit(t *testing.T) {
	s, repo, b := newSubmitFixture(domain.BinStatusActive, 40)

	confidence := 0.8
	resp, err := s.SubmitWaste(context.Background(), domain.SubmitWasteRequest{
		BinID:      b.ID.String(),
		WasteType:  "Laptop",
		Confidence: &confidence,
	}, uuid.New().String())
	if err != nil {
		t.Fatalf("SubmitWaste returned error: %v", err)
	}

	if resp.PointsEarned != 600 {
		t.Errorf("PointsEarned = %d, want 600", resp.PointsEarned)
	}
	if resp.NewFillLevel != 50 {
		t.Errorf("NewFillLevel = %d, want 50", resp.NewFillLevel)
	}
	if resp.BinStatus != domain.BinStatusActive {
		t.Errorf("BinStatus = %q, want active", resp.BinStatus)
	}
	if len(repo.recorded) != 1 {
		t.Fatalf("recorded %d transactions, want 1", len(repo.recorded))
	}
}

func TestSubmitWasteFlipsBinToFull(t *testing.T) {
	s, _, b := newSubmitFixture(domain.BinStatusActive, 80)

	confidence := 0.9
	resp, err := s.SubmitWaste(context.Background(), domain.SubmitWasteRequest{
		BinID:      b.ID.String(),
		WasteType:  "Battery",
		Confidence: &confidence,
	}, uuid.New().String())
	if err != nil {
		t.Fatalf("SubmitWaste returned error: %v", err)
	}

	if resp.BinStatus != domain.BinStatusFull {
		t.Errorf("BinStatus = %q, want full", resp.BinStatus)
	}
	if resp.NewFillLevel != 90 {
		t.Errorf("NewFillLevel = %d, want 90", resp.NewFillLevel)
	}
}

func TestSubmitWasteRejectsInactiveBin(t *testing.T) {
	for _, status := range []string{domain.BinStatusFull, domain.BinStatusMaintenance} {
		s, repo, b := newSubmitFixture(status, 0)

		_, err := s.SubmitWaste(context.Background(), domain.SubmitWasteRequest{
			BinID:     b.ID.String(),
			WasteType: "Battery",
		}, uuid.New().String())
		if !errors.Is(err, domain.ErrBinUnavailable) {
			t.Errorf("status %q: error = %v, want ErrBinUnavailable", status, err)
		}
		if len(repo.recorded) != 0 {
			t.Errorf("status %q: deposit recorded against unavailable bin", status)
		}
	}
}

func TestSubmitWasteUnknownBin(t *testing.T) {
	s, _, _ := newSubmitFixture(domain.BinStatusActive, 0)

	_, err := s.SubmitWaste(context.Background(), domain.SubmitWasteRequest{
		BinID:     uuid.New().String(),
		WasteType: "Battery",
	}, uuid.New().String())
	if !errors.Is(err, domain.ErrBinNotFound) {
		t.Errorf("error = %v, want ErrBinNotFound", err)
	}
}

func TestSubmitWasteUnknownCategory(t *testing.T) {
	s, _, b := newSubmitFixture(domain.BinStatusActive, 0)

	_, err := s.SubmitWaste(context.Background(), domain.SubmitWasteRequest{
		BinID:     b.ID.String(),
		WasteType: "Banana",
	}, uuid.New().String())
	if !errors.Is(err, domain.ErrUnknownWasteType) {
		t.Errorf("error = %v, want ErrUnknownWasteType", err)
	}
}
