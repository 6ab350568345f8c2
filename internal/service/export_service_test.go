package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/dto"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/models"
	appErrors "github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/errors"
	"github.com/alimehmetoglu-sipsy/frigya-sub000/pkg/storage"
)

type fakeListingRepo struct {
	rows    []models.RegistrationRow
	filters []models.RegistrationFilter
}

func (r *fakeListingRepo) List(_ context.Context, filter models.RegistrationFilter) ([]models.RegistrationRow, int, error) {
	r.filters = append(r.filters, filter)
	start := (filter.Page - 1) * filter.PageSize
	if start >= len(r.rows) {
		return nil, len(r.rows), nil
	}
	end := start + filter.PageSize
	if end > len(r.rows) {
		end = len(r.rows)
	}
	return r.rows[start:end], len(r.rows), nil
}

func exportRow(id, email string) models.RegistrationRow {
	return models.RegistrationRow{
		Registration: models.Registration{
			ID:           id,
			Status:       models.StatusPending,
			InterestedIn: models.TrailInterest("eastern"),
			Timeframe:    models.Timeframe("next_3_months"),
			GroupType:    models.GroupType("solo"),
			FitnessLevel: 3,
			LongestHike:  21.5,
			CreatedAt:    time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
		Email:     email,
		FirstName: "Elif",
		LastName:  "Demir",
		Country:   "Turkey",
	}
}

func newTestExportService(t *testing.T, repo exportListingRepository) *ExportService {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	signer := storage.NewSignedURLSigner("export-secret", time.Hour)
	return NewExportService(repo, store, signer, nil, nil)
}

func TestExportServiceCSV(t *testing.T) {
	repo := &fakeListingRepo{rows: []models.RegistrationRow{
		exportRow("reg-1", "a@example.com"),
		exportRow("reg-2", "b@example.com"),
	}}
	svc := newTestExportService(t, repo)

	res, err := svc.Export(context.Background(), dto.ExportRequest{Format: "csv"})
	require.NoError(t, err)

	assert.Equal(t, 2, res.RowCount)
	assert.Equal(t, "csv", res.Format)
	assert.True(t, strings.HasSuffix(res.FileName, ".csv"))
	assert.Contains(t, res.DownloadURL, "/api/exports/download?token=")

	token := strings.TrimPrefix(res.DownloadURL, "/api/exports/download?token=")
	file, fileName, err := svc.Open(token)
	require.NoError(t, err)
	defer file.Close()
	assert.Equal(t, res.FileName, fileName)

	body, err := io.ReadAll(file)
	require.NoError(t, err)
	content := string(body)
	assert.Contains(t, content, "Registration ID")
	assert.Contains(t, content, "reg-1")
	assert.Contains(t, content, "2026-08-01T10:00:00Z")
	assert.Contains(t, content, "21.5")
}

func TestExportServicePDF(t *testing.T) {
	repo := &fakeListingRepo{rows: []models.RegistrationRow{exportRow("reg-1", "a@example.com")}}
	svc := newTestExportService(t, repo)

	res, err := svc.Export(context.Background(), dto.ExportRequest{Format: "pdf"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.FileName, ".pdf"))

	file, _, err := svc.Open(strings.TrimPrefix(res.DownloadURL, "/api/exports/download?token="))
	require.NoError(t, err)
	defer file.Close()

	head := make([]byte, 5)
	_, err = io.ReadFull(file, head)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(head))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := newTestExportService(t, &fakeListingRepo{})

	_, err := svc.Export(context.Background(), dto.ExportRequest{Format: "xlsx"})
	appErr := asAppError(t, err)
	assert.Contains(t, appErr.Fields, "format")
}

func TestExportServiceDrainsAllPages(t *testing.T) {
	rows := make([]models.RegistrationRow, exportPageSize+5)
	for i := range rows {
		rows[i] = exportRow("reg", "page@example.com")
	}
	repo := &fakeListingRepo{rows: rows}
	svc := newTestExportService(t, repo)

	res, err := svc.Export(context.Background(), dto.ExportRequest{Format: "csv"})
	require.NoError(t, err)
	assert.Equal(t, exportPageSize+5, res.RowCount)
	assert.Len(t, repo.filters, 2)
}

func TestExportServiceOpenRejectsBadToken(t *testing.T) {
	svc := newTestExportService(t, &fakeListingRepo{})

	_, _, err := svc.Open("tampered-token")
	appErr := asAppError(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErr.Code)
}

func TestBuildDataset(t *testing.T) {
	dataset := buildDataset([]models.RegistrationRow{exportRow("reg-1", "a@example.com")})

	require.Len(t, dataset.Rows, 1)
	row := dataset.Rows[0]
	assert.Equal(t, "reg-1", row["Registration ID"])
	assert.Equal(t, "pending", row["Status"])
	assert.Equal(t, "3", row["Fitness"])
	assert.Equal(t, "21.5", row["Longest Hike (km)"])
	assert.Equal(t, "false", row["Newsletter"])
	assert.Equal(t, exportHeaders, dataset.Headers)
}
