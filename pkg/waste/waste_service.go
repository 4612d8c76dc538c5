package waste

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"remat-backend/domain"
	"remat-backend/entities"
	"remat-backend/internal/utils"
	"remat-backend/pkg/bin"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	WasteService interface {
		DetectWaste(ctx context.Context, image *multipart.FileHeader) (domain.DetectionResult, error)
		SubmitWaste(ctx context.Context, req domain.SubmitWasteRequest, userID string) (domain.ConfirmDepositResponse, error)
	}

	wasteService struct {
		wasteRepository WasteRepository
		binRepository   bin.BinRepository
		detectorURL     string
		httpClient      *http.Client
	}
)

func NewWasteService(wasteRepository WasteRepository, binRepository bin.BinRepository) WasteService {
	return &wasteService{
		wasteRepository: wasteRepository,
		binRepository:   binRepository,
		detectorURL:     utils.GetConfig("DETECTOR_URL"),
		httpClient:      &http.Client{Timeout: 30 * time.Second},
	}
}

// DetectWaste forwards the image to the external classifier service and maps
// the predicted category onto the points table. Nothing is persisted; the
// result only informs the client's confirmation screen.
func (s *wasteService) DetectWaste(ctx context.Context, image *multipart.FileHeader) (domain.DetectionResult, error) {
	if image == nil {
		return domain.DetectionResult{}, domain.ErrImageRequired
	}
	if s.detectorURL == "" {
		return domain.DetectionResult{}, domain.ErrDetectorUnavailable
	}

	file, err := image.Open()
	if err != nil {
		return domain.DetectionResult{}, err
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return domain.DetectionResult{}, err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", image.Filename)
	if err != nil {
		return domain.DetectionResult{}, err
	}
	if _, err = part.Write(fileBytes); err != nil {
		return domain.DetectionResult{}, err
	}
	if err = writer.Close(); err != nil {
		return domain.DetectionResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.detectorURL, body)
	if err != nil {
		return domain.DetectionResult{}, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return domain.DetectionResult{}, domain.ErrDetectorUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return domain.DetectionResult{}, fmt.Errorf("detector error: %s - %s", resp.Status, string(bodyBytes))
	}

	var detectorResp struct {
		WasteType  string  `json:"waste_type"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&detectorResp); err != nil {
		return domain.DetectionResult{}, err
	}

	points, ok := BasePoints(detectorResp.WasteType)
	if !ok {
		return domain.DetectionResult{}, domain.ErrUnknownWasteType
	}

	return domain.DetectionResult{
		WasteType:    detectorResp.WasteType,
		Confidence:   detectorResp.Confidence,
		PointsToEarn: points,
	}, nil
}

func (s *wasteService) SubmitWaste(ctx context.Context, req domain.SubmitWasteRequest, userID string) (domain.ConfirmDepositResponse, error) {
	targetBin, err := s.binRepository.GetBinByID(ctx, req.BinID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ConfirmDepositResponse{}, domain.ErrBinNotFound
		}
		return domain.ConfirmDepositResponse{}, err
	}

	if targetBin.Status != domain.BinStatusActive {
		return domain.ConfirmDepositResponse{}, domain.ErrBinUnavailable
	}

	confidence := 0.0
	if req.Confidence != nil {
		confidence = *req.Confidence
	}

	points := CalculatePoints(req.WasteType, confidence, req.Override)
	if points == 0 {
		return domain.ConfirmDepositResponse{}, domain.ErrUnknownWasteType
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ConfirmDepositResponse{}, domain.ErrParseUUID
	}

	txn := &entities.Transaction{
		ID:            uuid.New(),
		UserID:        userUUID,
		BinID:         targetBin.ID,
		WasteType:     req.WasteType,
		Confidence:    req.Confidence,
		PointsAwarded: points,
	}

	updatedBin, err := s.wasteRepository.RecordDeposit(ctx, txn)
	if err != nil {
		return domain.ConfirmDepositResponse{}, err
	}

	return domain.ConfirmDepositResponse{
		PointsEarned: points,
		NewFillLevel: updatedBin.FillLevel,
		BinStatus:    updatedBin.Status,
	}, nil
}
