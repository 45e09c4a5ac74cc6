package api_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/circulo-sport/courtdesk/api"
	mock_api "github.com/circulo-sport/courtdesk/api/mocks"
	"github.com/circulo-sport/courtdesk/cash"
	"github.com/circulo-sport/courtdesk/clock"
	"github.com/circulo-sport/courtdesk/export"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type exportMocks struct {
	backups   *mock_api.MockBackupService
	bookings  *mock_api.MockBookingService
	customers *mock_api.MockCustomerService
	ledger    *mock_api.MockCashService
	catalog   *mock_api.MockCatalogService
}

func setupExportRouter(t *testing.T) (*gin.Engine, exportMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := exportMocks{
		backups:   mock_api.NewMockBackupService(ctrl),
		bookings:  mock_api.NewMockBookingService(ctrl),
		customers: mock_api.NewMockCustomerService(ctrl),
		ledger:    mock_api.NewMockCashService(ctrl),
		catalog:   mock_api.NewMockCatalogService(ctrl),
	}

	router := newEngine()
	clk := clock.NewManual(time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC))
	api.NewExportHandler(m.backups, m.bookings, m.customers, m.ledger, m.catalog, clk, api.DeskPIN(testPIN)).Register(router.Group("/api/v1"))

	return router, m
}

func TestExportLedgerCSV(t *testing.T) {
	router, m := setupExportRouter(t)

	m.ledger.EXPECT().List(gomock.Any()).Return([]cash.Entry{
		{ID: "e1", Direction: cash.DirectionInflow, Concept: "deposit Pádel 1 - Ana", Amount: decimal.NewFromInt(3000), BookingID: "b1", Method: cash.MethodCash},
	}, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/exports/ledger", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, `attachment; filename="ledger-2024-06-03.csv"`, w.Header().Get("Content-Disposition"))

	rows, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "DEPOSIT", rows[1][2])
}

func TestExportUnknownKind(t *testing.T) {
	router, _ := setupExportRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/exports/payments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.JSONEq(t, `{"error":"unknown export 'payments'"}`, w.Body.String())
}

func TestDownloadBackup(t *testing.T) {
	t.Run("range and includes", func(t *testing.T) {
		router, m := setupExportRouter(t)

		file := export.File{
			Meta: export.Meta{App: export.AppTag, Version: export.Version, CreatedAt: time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)},
			Data: map[string]json.RawMessage{"courtdesk-bookings": json.RawMessage(`[]`)},
		}

		m.backups.EXPECT().Backup(gomock.Any(), export.Options{
			Range:    &export.Range{From: "2024-05-01", To: "2024-05-31"},
			Includes: &export.Includes{Bookings: true, Ledger: true},
		}).Return(file, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/backup?from=2024-05-01&to=2024-05-31&include=bookings,ledger", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Equal(t, `attachment; filename="courtdesk-backup-2024-06-03.json"`, w.Header().Get("Content-Disposition"))
		assert.Contains(t, w.Body.String(), `"__meta"`)
	})

	t.Run("unknown collection", func(t *testing.T) {
		router, m := setupExportRouter(t)

		m.backups.EXPECT().Backup(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/backup?include=payments", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("invalid range", func(t *testing.T) {
		router, m := setupExportRouter(t)

		m.backups.EXPECT().Backup(gomock.Any(), gomock.Any()).Return(export.File{}, export.ErrInvalidRange).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/backup?from=2024-06-01&to=2024-05-01", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})
}

func TestRestoreBackup(t *testing.T) {
	body := `{"__meta":{"app":"courtdesk","version":1},"data":{}}`

	t.Run("merge", func(t *testing.T) {
		router, m := setupExportRouter(t)

		m.backups.EXPECT().Restore(gomock.Any(), []byte(body), export.ModeMerge).Return([]string{"courtdesk-bookings"}, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/backup/restore?mode=merge", bytes.NewBufferString(body))
		req.Header.Set("X-Desk-PIN", testPIN)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"restored":["courtdesk-bookings"]}`, w.Body.String())
	})

	t.Run("foreign file", func(t *testing.T) {
		router, m := setupExportRouter(t)

		m.backups.EXPECT().Restore(gomock.Any(), gomock.Any(), export.Mode("")).Return(nil, export.ErrUnrecognizedBackup).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/backup/restore", bytes.NewBufferString(`{}`))
		req.Header.Set("X-Desk-PIN", testPIN)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"file is not a backup of this application"}`, w.Body.String())
	})

	t.Run("bad mode", func(t *testing.T) {
		router, m := setupExportRouter(t)

		m.backups.EXPECT().Restore(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/backup/restore?mode=append", bytes.NewBufferString(body))
		req.Header.Set("X-Desk-PIN", testPIN)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("requires pin", func(t *testing.T) {
		router, m := setupExportRouter(t)

		m.backups.EXPECT().Restore(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/backup/restore", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
	})
}

func TestBackupSettings(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		router, m := setupExportRouter(t)

		m.backups.EXPECT().Settings(gomock.Any()).Return(export.Settings{RemindEveryDays: 7}, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/backup/settings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"remindEveryDays":7}`, w.Body.String())
	})

	t.Run("disable", func(t *testing.T) {
		router, m := setupExportRouter(t)

		m.backups.EXPECT().SetRemindEveryDays(gomock.Any(), 0).Return(export.Settings{RemindEveryDays: 0}, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/backup/settings", bytes.NewBufferString(`{"remindEveryDays":0}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("negative", func(t *testing.T) {
		router, m := setupExportRouter(t)

		m.backups.EXPECT().SetRemindEveryDays(gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/backup/settings", bytes.NewBufferString(`{"remindEveryDays":-3}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})
}
