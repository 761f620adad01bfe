package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"billed-fe-svc/internal/middleware"
	repository_mock "billed-fe-svc/internal/mocks/repository"
	store_mock "billed-fe-svc/internal/mocks/store"
	"billed-fe-svc/internal/models"
	"billed-fe-svc/internal/service"
	"billed-fe-svc/internal/session"
	"billed-fe-svc/internal/store"
	"billed-fe-svc/internal/view"
	"billed-fe-svc/pkg/logger"
)

const (
	testSecret         = "handler-test-secret"
	testEmail          = "employee@test.tld"
	testMaxUploadBytes = 1 << 20
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type testEnv struct {
	router  *gin.Engine
	bills   *store_mock.MockBillsAPI
	logs    *repository_mock.MockSubmissionLogRepository
	hook    *test.Hook
	decoder *session.Decoder
	tokens  []string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mockStore := store_mock.NewMockStore(ctrl)
	bills := store_mock.NewMockBillsAPI(ctrl)
	mockStore.EXPECT().Bills().Return(bills).AnyTimes()

	l, hook := test.NewNullLogger()
	log := logger.Wrap(l)

	env := &testEnv{
		bills:   bills,
		logs:    repository_mock.NewMockSubmissionLogRepository(ctrl),
		hook:    hook,
		decoder: session.NewDecoder(testSecret),
	}

	router := gin.New()
	router.SetHTMLTemplate(view.Templates())
	router.Use(middleware.Session(env.decoder, "jwt", log))
	SetupRoutes(router, func(token string) store.Store {
		env.tokens = append(env.tokens, token)
		return mockStore
	}, service.NewExportService(log), env.logs, testMaxUploadBytes, log)

	env.router = router
	return env
}

func (e *testEnv) token(t *testing.T, userType string) string {
	t.Helper()
	token, err := e.decoder.Issue(models.Session{Type: userType, Email: testEmail}, time.Hour)
	require.NoError(t, err)
	return token
}

func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func authorize(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

type upload struct {
	name        string
	contentType string
	content     []byte
}

func multipartRequest(t *testing.T, target string, fields map[string]string, file *upload) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+file.name+`"`)
		if file.contentType != "" {
			h.Set("Content-Type", file.contentType)
		}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func handlerBills() []models.Bill {
	return []models.Bill{
		{ID: "b1", Type: "Transports", Name: "test1", Amount: decimal.NewFromInt(100), Date: "2001-01-01", FileURL: "https://test.storage.tld/b1.jpeg", FileName: "b1.jpeg", Status: models.BillStatusRefused},
		{ID: "b4", Type: "Hôtel et logement", Name: "encore", Amount: decimal.NewFromInt(400), Date: "2004-04-04", FileURL: "https://test.storage.tld/b4.jpg", FileName: "b4.jpg", Status: models.BillStatusPending},
		{ID: "b2", Type: "Restaurants et bars", Name: "test2", Amount: decimal.NewFromInt(200), Date: "2002-02-02", FileURL: "https://test.storage.tld/b2.jpg", FileName: "b2.jpg", Status: models.BillStatusRefused},
		{ID: "b3", Type: "Services en ligne", Name: "test3", Amount: decimal.NewFromInt(300), Date: "2003-03-03", FileURL: "https://test.storage.tld/b3.png", FileName: "b3.png", Status: models.BillStatusAccepted},
	}
}
