package service

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/dto"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/models"
	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/export"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/storage"
)

// exportPageSize is the page size used when draining the listing.
const exportPageSize = 100

var exportHeaders = []string{
	"Registration ID", "Submitted At", "Status", "First Name", "Last Name", "Email",
	"Country", "Trail Section", "Timeframe", "Group", "Fitness", "Experience",
	"Longest Hike (km)", "Newsletter",
}

// exportListingRepository drains the registration listing for exports.
type exportListingRepository interface {
	List(ctx context.Context, filter models.RegistrationFilter) ([]models.RegistrationRow, int, error)
}

// ExportService renders the registration book as CSV or PDF, stores the
// file on disk and hands back a signed download link.
type ExportService struct {
	repo    exportListingRepository
	store   *storage.LocalStorage
	signer  *storage.SignedURLSigner
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	metrics *MetricsService
	logger  *zap.Logger
}

// NewExportService constructs an ExportService instance.
func NewExportService(repo exportListingRepository, store *storage.LocalStorage, signer *storage.SignedURLSigner, metrics *MetricsService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		repo:    repo,
		store:   store,
		signer:  signer,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		metrics: metrics,
		logger:  logger,
	}
}

// Export drains the filtered listing, renders it in the requested format and
// returns a signed download descriptor.
func (s *ExportService) Export(ctx context.Context, req dto.ExportRequest) (*dto.ExportResponse, error) {
	format := strings.ToLower(req.Format)
	if format != "csv" && format != "pdf" {
		return nil, appErrors.Validation(map[string]string{"format": "Format must be csv or pdf"})
	}

	filter := models.RegistrationFilter{Search: req.Search, PageSize: exportPageSize}
	if req.Status != "" {
		status := models.RegistrationStatus(req.Status)
		filter.Status = &status
	}

	rows, err := s.drain(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to collect registrations")
	}

	dataset := buildDataset(rows)

	var payload []byte
	switch format {
	case "csv":
		payload, err = s.csv.Render(dataset)
	case "pdf":
		payload, err = s.pdf.Render(dataset, "Phrygian Way Registrations")
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	exportID := uuid.NewString()
	fileName := fmt.Sprintf("registrations_%s.%s", time.Now().UTC().Format("20060102T150405"), format)
	if _, err := s.store.Save(fileName, payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store export")
	}

	token, expiresAt, err := s.signer.Generate(exportID, fileName)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download link")
	}

	s.metrics.IncExport(format)
	s.logger.Info("export rendered",
		zap.String("export_id", exportID),
		zap.String("format", format),
		zap.Int("rows", len(rows)))

	return &dto.ExportResponse{
		ExportID:    exportID,
		FileName:    fileName,
		Format:      format,
		RowCount:    len(rows),
		DownloadURL: "/api/exports/download?token=" + token,
		ExpiresAt:   expiresAt.Unix(),
	}, nil
}

// Open validates a download token and returns a handle on the stored file.
func (s *ExportService) Open(token string) (*os.File, string, error) {
	_, fileName, _, err := s.signer.Parse(token, false)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid download token")
	}
	file, err := s.store.Open(fileName)
	if err != nil {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "export no longer available")
	}
	return file, fileName, nil
}

// Cleanup removes export files older than the TTL.
func (s *ExportService) Cleanup(ttl time.Duration) {
	deleted, err := s.store.CleanupOlderThan(ttl)
	if err != nil {
		s.logger.Warn("export cleanup", zap.Error(err))
		return
	}
	if len(deleted) > 0 {
		s.logger.Info("expired exports removed", zap.Int("count", len(deleted)))
	}
}

func (s *ExportService) drain(ctx context.Context, filter models.RegistrationFilter) ([]models.RegistrationRow, error) {
	var all []models.RegistrationRow
	for page := 1; ; page++ {
		filter.Page = page
		rows, total, err := s.repo.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
		if len(all) >= total || len(rows) == 0 {
			return all, nil
		}
	}
}

func buildDataset(rows []models.RegistrationRow) export.Dataset {
	dataset := export.Dataset{Headers: exportHeaders, Rows: make([]map[string]string, 0, len(rows))}
	for _, row := range rows {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Registration ID":   row.ID,
			"Submitted At":      row.CreatedAt.UTC().Format(time.RFC3339),
			"Status":            string(row.Status),
			"First Name":        row.FirstName,
			"Last Name":         row.LastName,
			"Email":             row.Email,
			"Country":           row.Country,
			"Trail Section":     string(row.InterestedIn),
			"Timeframe":         string(row.Timeframe),
			"Group":             string(row.GroupType),
			"Fitness":           strconv.Itoa(row.FitnessLevel),
			"Experience":        string(row.HikingExperience),
			"Longest Hike (km)": strconv.FormatFloat(row.LongestHike, 'f', -1, 64),
			"Newsletter":        strconv.FormatBool(row.Newsletter),
		})
	}
	return dataset
}
