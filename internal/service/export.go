package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"church-inventory-backend/internal/domain"
	"church-inventory-backend/internal/repository"
)

type exportService struct {
	equipRepo    repository.EquipmentRepository
	checkoutRepo repository.CheckoutRepository
	now          func() time.Time
}

func NewExportService(equipRepo repository.EquipmentRepository, checkoutRepo repository.CheckoutRepository) ExportService {
	return &exportService{
		equipRepo:    equipRepo,
		checkoutRepo: checkoutRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *exportService) ExportEquipment(ctx context.Context) ([]byte, error) {
	list, err := s.equipRepo.List(ctx, domain.EquipmentFilter{})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Name", "Category", "Model", "Serial Number", "Status", "Location", "Purchase Date", "Purchase Price"})
	for _, eq := range list {
		date := ""
		if eq.PurchaseDate != nil {
			date = eq.PurchaseDate.Format("2006-01-02")
		}
		price := ""
		if eq.PurchasePrice != nil {
			price = strconv.FormatFloat(*eq.PurchasePrice, 'f', -1, 64)
		}
		_ = w.Write([]string{
			eq.Name,
			string(eq.Category),
			eq.Model,
			eq.SerialNumber,
			string(eq.Status),
			eq.Location,
			date,
			price,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *exportService) ExportHistory(ctx context.Context) ([]byte, error) {
	history, err := s.checkoutRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Equipment", "Checked Out By", "Checked Out At", "Expected Return", "Checked In At", "Checked In By", "Duration Days", "Condition Out", "Condition In", "Notes"})
	for _, co := range history {
		expected := ""
		if co.ExpectedReturnDate != nil {
			expected = co.ExpectedReturnDate.Format("2006-01-02")
		}
		checkedIn := "Still Out"
		if co.CheckedInAt != nil {
			checkedIn = co.CheckedInAt.Format("2006-01-02 15:04")
		}
		_ = w.Write([]string{
			co.EquipmentName,
			co.CheckedOutBy,
			co.CheckedOutAt.Format("2006-01-02 15:04"),
			expected,
			checkedIn,
			co.CheckedInBy,
			strconv.Itoa(co.DurationDays(now)),
			string(co.ConditionOut),
			string(co.ConditionIn),
			co.Notes,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
