package documents

import (
	"context"
	"fmt"

	"github.com/drphonenord/repairdesk/internal/domain"
)

// Service renders back-office documents from the store: the printable
// service form handed to the customer at the counter and the quotes
// export for the spreadsheet crowd.
type Service struct {
	store   StoreRepository
	company domain.CompanyInfo
	logger  Logger
}

// NewService creates the document service.
func NewService(store StoreRepository, company domain.CompanyInfo, logger Logger) *Service {
	return &Service{
		store:   store,
		company: company,
		logger:  logger,
	}
}

// ServiceFormPDF renders the service form for the appointment with the
// given id and returns the document bytes plus a suggested filename.
func (s *Service) ServiceFormPDF(ctx context.Context, id string) ([]byte, string, error) {
	s.logger.Info("ServiceFormPDF: id=%s", id)

	snap, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("ServiceFormPDF: failed to load store: %v", err)
		return nil, "", fmt.Errorf("%w: failed to load store: %v", ErrInternal, err)
	}

	appt := snap.FindAppointment(id)
	if appt == nil {
		s.logger.Warn("ServiceFormPDF: appointment id=%s not found", id)
		return nil, "", ErrRecordNotFound
	}

	data, err := renderServiceForm(s.company, appt)
	if err != nil {
		s.logger.Error("ServiceFormPDF: rendering failed for id=%s: %v", id, err)
		return nil, "", fmt.Errorf("%w: rendering failed: %v", ErrInternal, err)
	}

	filename := fmt.Sprintf("service-form-%d.pdf", appt.Number)
	return data, filename, nil
}

// QuotesCSV renders every quote request as a semicolon-separated CSV,
// newest first, and returns the bytes plus a suggested filename.
func (s *Service) QuotesCSV(ctx context.Context) ([]byte, string, error) {
	s.logger.Info("QuotesCSV: exporting quotes")

	snap, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("QuotesCSV: failed to load store: %v", err)
		return nil, "", fmt.Errorf("%w: failed to load store: %v", ErrInternal, err)
	}

	data, err := renderQuotesCSV(snap.Quotes)
	if err != nil {
		s.logger.Error("QuotesCSV: rendering failed: %v", err)
		return nil, "", fmt.Errorf("%w: rendering failed: %v", ErrInternal, err)
	}

	return data, "quotes.csv", nil
}
