package controllers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UmaDevi016/senior-caregiver/controllers"
	"github.com/UmaDevi016/senior-caregiver/models"
	"github.com/UmaDevi016/senior-caregiver/routes"
	"github.com/UmaDevi016/senior-caregiver/services"
	"github.com/UmaDevi016/senior-caregiver/store"
)

type stubExtractor struct {
	result *models.ExtractedMedication
	err    error
}

func (s stubExtractor) ExtractPrescription([]byte) (*models.ExtractedMedication, error) {
	return s.result, s.err
}

// brokenStore simulates an unreachable persistence service.
type brokenStore struct{}

var errStoreDown = errors.New("store unreachable")

func (brokenStore) GetSenior(int) (*models.Senior, error)              { return nil, errStoreDown }
func (brokenStore) UpsertSenior(models.Senior) (*models.Senior, error) { return nil, errStoreDown }
func (brokenStore) ListActiveMedications(int) ([]models.Medication, error) {
	return nil, errStoreDown
}
func (brokenStore) CreateMedication(models.Medication) (*models.Medication, error) {
	return nil, errStoreDown
}
func (brokenStore) DeactivateMedication(int) error { return errStoreDown }
func (brokenStore) LogsForDate(string) ([]models.ReminderLog, error) {
	return nil, errStoreDown
}
func (brokenStore) CountTaken(string) (int, error) { return 0, errStoreDown }
func (brokenStore) UpsertReminderLog(models.ReminderLog) (*models.ReminderLog, error) {
	return nil, errStoreDown
}

func newTestRouter(st store.Store, extractor controllers.Extractor) http.Handler {
	svc := services.NewScheduleService(st)
	return routes.SetupRouter(routes.Controllers{
		Translate:  controllers.NewTranslateController(services.NewTranslator(nil)),
		Senior:     controllers.NewSeniorController(st),
		Medication: controllers.NewMedicationController(st),
		Schedule:   controllers.NewScheduleController(svc),
		Scan:       controllers.NewScanController(extractor),
	})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	h := newTestRouter(store.NewMemory(), nil)
	w := doJSON(t, h, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.NotEmpty(t, resp["time"])
}

func TestRootLiveness(t *testing.T) {
	h := newTestRouter(store.NewMemory(), nil)
	w := doJSON(t, h, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Running")
}

func TestTranslate_EmptyTextRejected(t *testing.T) {
	h := newTestRouter(store.NewMemory(), nil)
	w := doJSON(t, h, http.MethodPost, "/api/translate", map[string]string{
		"text": "   ", "target_lang": "hi",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTranslate_NoProvidersPassesThrough(t *testing.T) {
	h := newTestRouter(store.NewMemory(), nil)
	w := doJSON(t, h, http.MethodPost, "/api/translate", map[string]string{
		"text": "Take your medicine", "target_lang": "hi",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp controllers.TranslateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Take your medicine", resp.TranslatedText)
	assert.Equal(t, "none", resp.Provider)
	assert.Equal(t, "hi", resp.TargetLang)
}

func TestSenior_GetFallsBackToDemoProfile(t *testing.T) {
	h := newTestRouter(brokenStore{}, nil)
	w := doJSON(t, h, http.MethodGet, "/api/senior/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var senior models.Senior
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &senior))
	assert.Equal(t, models.DemoSenior(), senior)
}

func TestSenior_UpsertAndGet(t *testing.T) {
	h := newTestRouter(store.NewMemory(), nil)

	w := doJSON(t, h, http.MethodPost, "/api/senior/1", map[string]string{
		"name": "Kamala", "emergency_info": "Call Ravi at 555-0101",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodGet, "/api/senior/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var senior models.Senior
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &senior))
	assert.Equal(t, "Kamala", senior.Name)
}

func TestSenior_UpsertFailureIs500(t *testing.T) {
	h := newTestRouter(brokenStore{}, nil)
	w := doJSON(t, h, http.MethodPost, "/api/senior/1", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMedications_CreateReturnsActiveRowWithID(t *testing.T) {
	h := newTestRouter(store.NewMemory(), nil)

	w := doJSON(t, h, http.MethodPost, "/api/medications", map[string]any{
		"name": "Aspirin", "dosage": "1", "time": "08:00", "senior_id": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var med models.Medication
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &med))
	assert.True(t, med.IsActive)
	assert.NotZero(t, med.ID)
	assert.Equal(t, "daily", med.Frequency)
	assert.Equal(t, "white", med.PillColor)
}

func TestMedications_CreateRequiresFields(t *testing.T) {
	h := newTestRouter(store.NewMemory(), nil)
	w := doJSON(t, h, http.MethodPost, "/api/medications", map[string]any{
		"name": "Aspirin", "senior_id": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMedications_ListMasksStoreFailure(t *testing.T) {
	h := newTestRouter(brokenStore{}, nil)
	w := doJSON(t, h, http.MethodGet, "/api/medications?senior_id=1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestMedications_SoftDelete(t *testing.T) {
	h := newTestRouter(store.NewMemory(), nil)

	w := doJSON(t, h, http.MethodPost, "/api/medications", map[string]any{
		"name": "Aspirin", "dosage": "1", "time": "08:00", "senior_id": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodDelete, "/api/medications/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted")

	w = doJSON(t, h, http.MethodGet, "/api/medications?senior_id=1", nil)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestTodaySchedule_EntryWithAbsentLog(t *testing.T) {
	h := newTestRouter(store.NewMemory(), nil)

	w := doJSON(t, h, http.MethodPost, "/api/medications", map[string]any{
		"name": "Aspirin", "dosage": "1", "time": "08:00", "senior_id": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, h, http.MethodGet, "/api/today-schedule?senior_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []models.ScheduleEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Log)
}

func TestAcknowledgeThenAdherenceSummary(t *testing.T) {
	h := newTestRouter(store.NewMemory(), nil)

	w := doJSON(t, h, http.MethodPost, "/api/medications", map[string]any{
		"name": "Aspirin", "dosage": "1", "time": "08:00", "senior_id": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	var med models.Medication
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &med))

	w = doJSON(t, h, http.MethodPost, "/api/acknowledge", map[string]any{
		"medication_id": med.ID, "status": "taken",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var log models.ReminderLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &log))
	assert.Equal(t, models.StatusTaken, log.Status)

	w = doJSON(t, h, http.MethodGet, "/api/adherence-summary?senior_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary models.AdherenceSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, models.AdherenceSummary{Total: 1, Taken: 1, Percentage: 100.0}, summary)
}

func TestAcknowledge_InvalidStatusRejected(t *testing.T) {
	h := newTestRouter(store.NewMemory(), nil)
	w := doJSON(t, h, http.MethodPost, "/api/acknowledge", map[string]any{
		"medication_id": 1, "status": "skipped",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAcknowledge_StoreFailureIs500(t *testing.T) {
	h := newTestRouter(brokenStore{}, nil)
	w := doJSON(t, h, http.MethodPost, "/api/acknowledge", map[string]any{
		"medication_id": 1,
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAdherenceSummary_StoreFailureMaskedAsZero(t *testing.T) {
	h := newTestRouter(brokenStore{}, nil)
	w := doJSON(t, h, http.MethodGet, "/api/adherence-summary?senior_id=1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var summary models.AdherenceSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, models.AdherenceSummary{}, summary)
}

func doScan(t *testing.T, h http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "prescription.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/scan-prescription", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestScan_DemoStubWithoutExtractor(t *testing.T) {
	h := newTestRouter(store.NewMemory(), nil)
	w := doScan(t, h)

	require.Equal(t, http.StatusOK, w.Code)
	var resp controllers.ScanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	require.NotNil(t, resp.ExtractedData)
	assert.Equal(t, "Sample Med", resp.ExtractedData.Medicine)
}

func TestScan_ExtractorResult(t *testing.T) {
	extractor := stubExtractor{result: &models.ExtractedMedication{
		Medicine: "Aspirin", Dosage: "1 pill", Time: "08:00", PillColor: "white",
	}}
	h := newTestRouter(store.NewMemory(), extractor)
	w := doScan(t, h)

	require.Equal(t, http.StatusOK, w.Code)
	var resp controllers.ScanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Aspirin", resp.ExtractedData.Medicine)
}

func TestScan_ExtractionFailureIsStructuredError(t *testing.T) {
	extractor := stubExtractor{err: errors.New("failed to parse extraction response")}
	h := newTestRouter(store.NewMemory(), extractor)
	w := doScan(t, h)

	require.Equal(t, http.StatusOK, w.Code)
	var resp controllers.ScanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.NotEmpty(t, resp.Message)
	assert.Nil(t, resp.ExtractedData)
}

func TestScan_MissingFileRejected(t *testing.T) {
	h := newTestRouter(store.NewMemory(), nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/scan-prescription", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
