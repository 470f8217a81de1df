package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"realty_backend/internal/app"
	"realty_backend/internal/auth"
	"realty_backend/internal/config"
	"realty_backend/internal/email"
	"realty_backend/internal/logger"
	"realty_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	TestTokenKey   = "test-token-key"
	TestProductKey = "test-product-secret"
)

var initOnce sync.Once

// TestServer - приложение целиком поверх httptest и in-memory базы
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Config *config.Config
	Mail   *RecordingEmailProvider
	Tokens *auth.TokenService
}

// TestConfig - конфигурация для тестов, файлы сохраняются во временную директорию
func TestConfig(t *testing.T) *config.Config {
	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Auth.TokenKey = TestTokenKey
	cfg.Auth.ProductKey = TestProductKey
	cfg.Storage.BasePath = t.TempDir()
	cfg.Upload.MaxSize = 2 << 20
	return cfg
}

// NewTestServer создает и настраивает тестовый сервер и БД
func NewTestServer(t *testing.T, opts ...app.Option) *TestServer {
	t.Helper()

	initOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		logger.InitWithWriter("test", io.Discard)
	})

	cfg := TestConfig(t)
	db := NewTestDB(t)
	mail := &RecordingEmailProvider{}

	opts = append([]app.Option{app.WithEmailProvider(mail)}, opts...)
	router, err := app.SetupRouter(cfg, db, opts...)
	require.NoError(t, err, "Не удалось собрать роутер")

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		DB:     db,
		Config: cfg,
		Mail:   mail,
		Tokens: auth.NewTokenService(cfg.Auth),
	}
}

// TokenFor выпускает токен так же, как это делает signin
func (ts *TestServer) TokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := ts.Tokens.IssueToken(user.ID, user.Name)
	require.NoError(t, err)
	return token
}

// CreateUserWithToken создает пользователя напрямую в БД и возвращает его токен
func (ts *TestServer) CreateUserWithToken(t *testing.T, name, email string, role models.UserRole) (*models.User, string) {
	t.Helper()
	user := CreateUser(t, ts.DB, name, email, "secret123", role)
	return user, ts.TokenFor(t, user)
}

// SendRequest отправляет JSON запрос и возвращает ответ и тело
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Ошибка кодирования JSON для запроса")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err, "Ошибка создания HTTP-запроса")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return ts.do(t, req)
}

// SendFile отправляет multipart запрос с одним файлом в поле "file"
func (ts *TestServer) SendFile(t *testing.T, path, token, filename string, content []byte) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return ts.do(t, req)
}

func (ts *TestServer) do(t *testing.T, req *http.Request) (*http.Response, string) {
	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err, "Ошибка отправки HTTP-запроса")
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	require.NoError(t, err, "Ошибка чтения тела ответа")

	return res, string(resBodyBytes)
}

// DecodeJSON разбирает тело ответа
func DecodeJSON(t *testing.T, body string, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), v), "Не удалось распарсить JSON: %s", body)
}

// SentEmail - письмо, перехваченное RecordingEmailProvider
type SentEmail struct {
	To       []string
	Subject  string
	Template string
	Data     email.TemplateData
}

// RecordingEmailProvider запоминает отправленные письма вместо отправки
type RecordingEmailProvider struct {
	mu   sync.Mutex
	sent []SentEmail
	Err  error
}

func (p *RecordingEmailProvider) Send(ctx context.Context, e *email.Email) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, SentEmail{To: e.To, Subject: e.Subject})
	return p.Err
}

func (p *RecordingEmailProvider) SendTemplate(ctx context.Context, to []string, subject string, templateName string, data email.TemplateData) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, SentEmail{To: to, Subject: subject, Template: templateName, Data: data})
	return p.Err
}

func (p *RecordingEmailProvider) Validate() error { return nil }

// Sent возвращает копию списка отправленных писем
func (p *RecordingEmailProvider) Sent() []SentEmail {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]SentEmail(nil), p.sent...)
}
