package echoapi_test

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"

	echoapi "github.com/trezcool/rapor/apps/api/echo"
	"github.com/trezcool/rapor/core"
	"github.com/trezcool/rapor/core/grade"
	"github.com/trezcool/rapor/core/roster"
	"github.com/trezcool/rapor/services/export"
	"github.com/trezcool/rapor/services/export/pdfexport"
	logsvc "github.com/trezcool/rapor/services/logger"
	"github.com/trezcool/rapor/storage/inmem"
	testutil "github.com/trezcool/rapor/tests"
)

var errMissingToken = httpErr{Error: "missing or malformed token"}

func setup(t *testing.T, backend *testutil.FakeBackend) *echoapi.Server {
	conf := &core.Config{
		AppName:  "Rapor",
		TestMode: true,
		Server:   core.ServerConfig{DisableReqLogs: true},
	}
	logger := logsvc.NewRollbarLogger(log.New(ioutil.Discard, "", 0), conf)

	translator := testutil.NewTranslator(t, "en")
	validate := testutil.NewValidator(translator)
	exporters, err := export.NewRegistry(translator, pdfexport.WithoutCompression())
	if err != nil {
		t.Fatalf("export.NewRegistry() failed: %v", err)
	}

	repo := inmem.NewSheetRepository(inmem.Open())
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:       conf,
		Logger:     logger,
		GradeSvc:   grade.NewService(backend, repo, validate, time.Hour),
		RosterSvc:  roster.NewService(backend),
		Exporters:  exporters,
		Validate:   validate,
		Translator: translator,
	})
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

// getToken returns a token like the school API issues. Its signature is never checked here.
func getToken(t *testing.T, subject string) string {
	claims := &echoapi.Claims{
		StandardClaims: jwt.StandardClaims{Subject: subject, ExpiresAt: time.Now().Add(time.Hour).Unix()},
		Username:       subject,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("school-api-secret"))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func runHTTPTests(t *testing.T, app http.Handler, tests []httpTest) {
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
