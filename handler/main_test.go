package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"jetsetgo/database"
	"jetsetgo/handler"
	"jetsetgo/notify"
	"jetsetgo/router"
	"jetsetgo/storage"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testBaseURL   = "http://127.0.0.1:8000"
	testBodyLimit = 100 * 1024 * 1024
)

type testEnv struct {
	app       *fiber.App
	db        *gorm.DB
	bus       *recordingBus
	uploadDir string
}

// recordingBus keeps every published event and forwards it to live
// subscribers of the same hotel.
type recordingBus struct {
	mu         sync.Mutex
	events     []notify.StatusEvent
	subs       map[string][]chan []byte
	subscribed chan string
	released   chan string
}

func newRecordingBus() *recordingBus {
	return &recordingBus{
		subs:       map[string][]chan []byte{},
		subscribed: make(chan string, 8),
		released:   make(chan string, 8),
	}
}

func (b *recordingBus) Publish(_ context.Context, event notify.StatusEvent) error {
	payload, err := notify.Encode(event)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	for _, ch := range b.subs[event.HotelID] {
		ch <- payload
	}
	return nil
}

func (b *recordingBus) Subscribe(ctx context.Context, hotelID string) (<-chan []byte, error) {
	ch := make(chan []byte, 8)
	b.mu.Lock()
	b.subs[hotelID] = append(b.subs[hotelID], ch)
	b.mu.Unlock()
	b.subscribed <- hotelID

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		subs := b.subs[hotelID]
		for i, sub := range subs {
			if sub == ch {
				b.subs[hotelID] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		close(ch)
		b.mu.Unlock()
		b.released <- hotelID
	}()
	return ch, nil
}

func (b *recordingBus) Close() error { return nil }

func (b *recordingBus) Events() []notify.StatusEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]notify.StatusEvent(nil), b.events...)
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.Migrate(db))

	dir := t.TempDir()
	bus := newRecordingBus()
	app := router.NewApp(testBodyLimit)
	router.SetupRoutes(app, handler.New(db, storage.NewDiskStore(dir, testBaseURL, "/uploads"), bus), dir)

	return &testEnv{app: app, db: db, bus: bus, uploadDir: dir}
}

func (e *testEnv) do(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func (e *testEnv) json(t *testing.T, method, path string, payload any) (int, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, ok := payload.(string)
		if !ok {
			b, err := json.Marshal(payload)
			require.NoError(t, err)
			raw = string(b)
		}
		body = bytes.NewBufferString(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	return e.do(t, req)
}

type upload struct {
	field, name, content string
}

func (e *testEnv) multipart(t *testing.T, path string, fields map[string]string, files ...upload) (int, []byte) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := w.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return e.do(t, req)
}

// create posts payload and returns the generated id.
func (e *testEnv) create(t *testing.T, path string, payload any) string {
	t.Helper()
	status, body := e.json(t, http.MethodPost, path, payload)
	require.Equal(t, http.StatusCreated, status, string(body))
	var res struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body, &res))
	require.NotEmpty(t, res.ID)
	return res.ID
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

// seedLocation creates state -> district -> place and returns their ids.
func (e *testEnv) seedLocation(t *testing.T) (stateID, districtID, placeID string) {
	t.Helper()
	stateID = e.create(t, "/state", map[string]any{"state_name": "Kerala"})
	districtID = e.create(t, "/district", map[string]any{"district_name": "Idukki", "state_id": stateID})
	placeID = e.create(t, "/place", map[string]any{"place_name": "Munnar", "district_id": districtID})
	return
}
