package event

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"regexp"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var keyPattern = regexp.MustCompile(`^event-\d+\.[A-Za-z0-9]+$`)

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.Error(0)
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockStorage) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

type mockRecords struct {
	mock.Mock
}

func (m *mockRecords) Insert(ctx context.Context, fileName, url string) error {
	args := m.Called(ctx, fileName, url)
	return args.Error(0)
}

func (m *mockRecords) DeleteByFileName(ctx context.Context, fileName string) error {
	args := m.Called(ctx, fileName)
	return args.Error(0)
}

func (m *mockRecords) List(ctx context.Context) ([]Image, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Image), args.Error(1)
}

func newTestHandler(store *mockStorage, records *mockRecords) *Handler {
	return NewHandler(NewService(store, records))
}

// multipartBody builds a multipart request body with a single file part.
func multipartBody(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func matchKey() interface{} {
	return mock.MatchedBy(func(key string) bool { return keyPattern.MatchString(key) })
}

func TestUploadEventSuccess(t *testing.T) {
	store := new(mockStorage)
	records := new(mockRecords)
	h := newTestHandler(store, records)

	publicURL := "http://localhost:9000/event-images/event-test.png"
	store.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return regexp.MustCompile(`^event-\d+\.png$`).MatchString(key)
	}), mock.Anything, int64(4), "image/png").Return(nil)
	store.On("PublicURL", matchKey()).Return(publicURL)
	records.On("Insert", mock.Anything, matchKey(), publicURL).Return(nil)

	body, contentType := multipartBody(t, "eventImage", "banner.png", "image/png", []byte("data"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload-event", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.UploadEvent(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		fmt.Sprintf(`{"message":"Upload successful","imageUrl":%q}`, publicURL),
		rec.Body.String())
	store.AssertExpectations(t)
	records.AssertExpectations(t)
}

func TestUploadEventNoFile(t *testing.T) {
	store := new(mockStorage)
	records := new(mockRecords)
	h := newTestHandler(store, records)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", "company retreat"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-event", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()

	h.UploadEvent(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No file uploaded"}`, rec.Body.String())
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	records.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadEventMalformedBody(t *testing.T) {
	store := new(mockStorage)
	records := new(mockRecords)
	h := newTestHandler(store, records)

	req := httptest.NewRequest(http.MethodPost, "/api/upload-event", strings.NewReader("not multipart at all"))
	req.Header.Set("Content-Type", "multipart/form-data") // no boundary
	rec := httptest.NewRecorder()

	h.UploadEvent(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"File parsing failed"}`, rec.Body.String())
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadEventStorageFailureSkipsInsert(t *testing.T) {
	store := new(mockStorage)
	records := new(mockRecords)
	h := newTestHandler(store, records)

	store.On("Upload", mock.Anything, matchKey(), mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("bucket offline"))

	body, contentType := multipartBody(t, "eventImage", "banner.png", "image/png", []byte("data"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload-event", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.UploadEvent(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Upload to object storage failed", resp.Error)
	assert.Contains(t, resp.Details, "bucket offline")

	// No orphan catalog row may reference a blob that was never stored.
	records.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadEventInsertFailureStillSucceeds(t *testing.T) {
	store := new(mockStorage)
	records := new(mockRecords)
	h := newTestHandler(store, records)

	publicURL := "http://localhost:9000/event-images/event-test.png"
	store.On("Upload", mock.Anything, matchKey(), mock.Anything, mock.Anything, mock.Anything).Return(nil)
	store.On("PublicURL", matchKey()).Return(publicURL)
	records.On("Insert", mock.Anything, matchKey(), publicURL).Return(errors.New("connection refused"))

	body, contentType := multipartBody(t, "eventImage", "banner.png", "image/png", []byte("data"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload-event", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.UploadEvent(rec, req)

	// The blob exists and is retrievable; the missing catalog row is a
	// documented inconsistency, not a request failure.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		fmt.Sprintf(`{"message":"Upload successful","imageUrl":%q}`, publicURL),
		rec.Body.String())
	records.AssertExpectations(t)
}

func TestUploadEventFirstFileWins(t *testing.T) {
	store := new(mockStorage)
	records := new(mockRecords)
	h := newTestHandler(store, records)

	store.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasSuffix(key, ".png")
	}), mock.Anything, mock.Anything, "image/png").Return(nil)
	store.On("PublicURL", matchKey()).Return("http://localhost:9000/event-images/x.png")
	records.On("Insert", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range []struct{ name, ct string }{
		{"first.png", "image/png"},
		{"second.gif", "image/gif"},
	} {
		hd := make(textproto.MIMEHeader)
		hd.Set("Content-Disposition", fmt.Sprintf(`form-data; name="eventImage"; filename=%q`, f.name))
		hd.Set("Content-Type", f.ct)
		part, err := w.CreatePart(hd)
		require.NoError(t, err)
		_, err = part.Write([]byte("data"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-event", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()

	h.UploadEvent(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	store.AssertExpectations(t)
}

func deleteViaRouter(h *Handler, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Delete("/delete-event/{id}", h.DeleteEvent)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(http.MethodDelete, "/delete-event/42", reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestDeleteEventRemovesObjectAndRow(t *testing.T) {
	store := new(mockStorage)
	records := new(mockRecords)
	h := newTestHandler(store, records)

	store.On("Delete", mock.Anything, "event-1700000000000.png").Return(nil)
	records.On("DeleteByFileName", mock.Anything, "event-1700000000000.png").Return(nil)

	rec := deleteViaRouter(h, `{"imageUrl":"http://localhost:9000/event-images/event-1700000000000.png"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Event and image deleted successfully"}`, rec.Body.String())
	store.AssertExpectations(t)
	records.AssertExpectations(t)
}

func TestDeleteEventWithoutImageURL(t *testing.T) {
	store := new(mockStorage)
	records := new(mockRecords)
	h := newTestHandler(store, records)

	rec := deleteViaRouter(h, `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Event and image deleted successfully"}`, rec.Body.String())
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	records.AssertNotCalled(t, "DeleteByFileName", mock.Anything, mock.Anything)
}

func TestDeleteEventEmptyBody(t *testing.T) {
	store := new(mockStorage)
	records := new(mockRecords)
	h := newTestHandler(store, records)

	rec := deleteViaRouter(h, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteEventStorageFailure(t *testing.T) {
	store := new(mockStorage)
	records := new(mockRecords)
	h := newTestHandler(store, records)

	store.On("Delete", mock.Anything, "event-1.png").Return(errors.New("access denied"))

	rec := deleteViaRouter(h, `{"imageUrl":"http://localhost:9000/event-images/event-1.png"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to delete image file"}`, rec.Body.String())
	records.AssertNotCalled(t, "DeleteByFileName", mock.Anything, mock.Anything)
}

func TestDeleteEventRowDeleteFailureSwallowed(t *testing.T) {
	store := new(mockStorage)
	records := new(mockRecords)
	h := newTestHandler(store, records)

	store.On("Delete", mock.Anything, "event-1.png").Return(nil)
	records.On("DeleteByFileName", mock.Anything, "event-1.png").Return(errors.New("connection refused"))

	rec := deleteViaRouter(h, `{"imageUrl":"http://localhost:9000/event-images/event-1.png"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	records.AssertExpectations(t)
}

func TestListEvents(t *testing.T) {
	store := new(mockStorage)
	records := new(mockRecords)
	h := newTestHandler(store, records)

	records.On("List", mock.Anything).Return([]Image{
		{ID: 2, FileName: "event-2.png", URL: "http://x/event-2.png"},
		{ID: 1, FileName: "event-1.jpg", URL: "http://x/event-1.jpg"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	h.ListEvents(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var images []Image
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &images))
	require.Len(t, images, 2)
	assert.Equal(t, "event-2.png", images[0].FileName)
}

func TestListEventsFailure(t *testing.T) {
	store := new(mockStorage)
	records := new(mockRecords)
	h := newTestHandler(store, records)

	records.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	h.ListEvents(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to list events"}`, rec.Body.String())
}
