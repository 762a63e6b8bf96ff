package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stevenmunoz/wego-sub001/internal/model"
	"github.com/stevenmunoz/wego-sub001/internal/receipt"
)

// ImportService turns OCR'd receipt texts into stored rides. Receipts that
// cannot be parsed into anything useful are reported back as skipped, never
// as a hard failure.
type ImportService struct {
	rides  RideStore
	parser *receipt.Parser
}

func NewImportService(rides RideStore) *ImportService {
	return &ImportService{
		rides:  rides,
		parser: receipt.NewParser(),
	}
}

// ImportReceipts parses every receipt text and persists the rides that
// yielded usable data. Drivers may only import rides for themselves.
func (s *ImportService) ImportReceipts(ctx context.Context, principal model.Principal, driverID uuid.UUID, texts []string) (*model.ImportResult, error) {
	if principal.IsDriver() {
		if principal.DriverID == nil || *principal.DriverID != driverID {
			return nil, ErrPermissionDenied
		}
	}

	result := &model.ImportResult{
		Imported: []model.ImportedRide{},
		Skipped:  []model.SkippedRide{},
	}

	var toInsert []model.Ride
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			result.Skipped = append(result.Skipped, model.SkippedRide{Index: i, Reason: "empty receipt text"})
			continue
		}

		extracted := s.parser.Parse(text)
		if !usable(extracted) {
			result.Skipped = append(result.Skipped, model.SkippedRide{Index: i, Reason: "no recognizable ride data"})
			continue
		}

		ride := buildRide(extracted, driverID)
		toInsert = append(toInsert, ride)
		result.Imported = append(result.Imported, model.ImportedRide{
			RideID:     ride.ID,
			Confidence: extracted.Confidence,
		})
	}

	if err := s.rides.InsertRides(ctx, toInsert); err != nil {
		return nil, err
	}
	return result, nil
}

// usable reports whether the parser pulled out enough to make a ride worth
// storing. A date or any money amount qualifies, as does a detected
// cancellation.
func usable(extracted receipt.ExtractedRide) bool {
	if extracted.Date != nil {
		return true
	}
	if extracted.Status.IsCancelled() {
		return true
	}
	return extracted.Fare > 0 || extracted.TotalReceived > 0 || extracted.TotalPaid > 0
}

func buildRide(extracted receipt.ExtractedRide, driverID uuid.UUID) model.Ride {
	return model.Ride{
		ID:                uuid.New(),
		DriverID:          &driverID,
		Date:              extracted.Date,
		Time:              extracted.Time,
		Status:            extracted.Status,
		Category:          model.CategoryInDriver,
		PaymentMethod:     string(extracted.PaymentMethod),
		Fare:              extracted.Fare,
		TotalReceived:     extracted.TotalReceived,
		ServiceCommission: extracted.Commission,
		CommissionPercent: extracted.CommissionPercent,
		TaxOnService:      extracted.Tax,
		TotalPaid:         extracted.TotalPaid,
		NetIncome:         extracted.NetIncome,

		PassengerName:      extracted.PassengerName,
		DestinationAddress: extracted.DestinationAddress,
		RatingGiven:        extracted.RatingGiven,

		CreatedAt: time.Now().UTC(),
	}
}
