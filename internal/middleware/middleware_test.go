package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/itech-net/student-portal-api/internal/models"
	"github.com/itech-net/student-portal-api/internal/service"
	appErrors "github.com/itech-net/student-portal-api/pkg/errors"
)

type stubValidator struct{}

func (stubValidator) ValidateToken(token string) (*models.JWTClaims, error) {
	if token != "good" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
	}
	return &models.JWTClaims{StudentID: "42", RegisteredClaims: jwt.RegisteredClaims{Subject: "asha-9876"}}, nil
}

func portalRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.GET("/get-batch", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func serve(router *gin.Engine, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestJWTRequiresToken(t *testing.T) {
	router := portalRouter(JWT(stubValidator{}))

	if got := serve(router, "/get-batch", "").Code; got != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", got)
	}
	if got := serve(router, "/get-batch", "Basic abc").Code; got != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-bearer header, got %d", got)
	}
	if got := serve(router, "/get-batch", "Bearer good").Code; got != http.StatusNoContent {
		t.Fatalf("expected 204 with token, got %d", got)
	}
}

func TestOptionalJWT(t *testing.T) {
	router := portalRouter(OptionalJWT(stubValidator{}))

	if got := serve(router, "/get-batch", "").Code; got != http.StatusNoContent {
		t.Fatalf("anonymous request should pass, got %d", got)
	}
	if got := serve(router, "/get-batch", "Bearer bad").Code; got != http.StatusUnauthorized {
		t.Fatalf("invalid token should be rejected, got %d", got)
	}
}

func TestAuthSelectsMode(t *testing.T) {
	if got := serve(portalRouter(Auth(stubValidator{}, true)), "/get-batch", "").Code; got != http.StatusUnauthorized {
		t.Fatalf("required auth should reject anonymous requests, got %d", got)
	}
	if got := serve(portalRouter(Auth(stubValidator{}, false)), "/get-batch", "").Code; got != http.StatusNoContent {
		t.Fatalf("optional auth should admit anonymous requests, got %d", got)
	}
}

func TestStudentScope(t *testing.T) {
	router := portalRouter(OptionalJWT(stubValidator{}), StudentScope())

	cases := []struct {
		target string
		token  string
		want   int
	}{
		{"/get-batch?name_contactid=asha-9876", "Bearer good", http.StatusNoContent},
		{"/get-batch?name_contactid=%20asha-9876%20", "Bearer good", http.StatusNoContent},
		{"/get-batch?name_contactid=ravi-1111", "Bearer good", http.StatusForbidden},
		{"/get-batch?name_contactid=ravi-1111", "", http.StatusNoContent},
		{"/get-batch", "Bearer good", http.StatusNoContent},
	}
	for _, tc := range cases {
		recorder := serve(router, tc.target, tc.token)
		if recorder.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.target, tc.want, recorder.Code)
		}
		if tc.want == http.StatusForbidden && !strings.Contains(recorder.Body.String(), "FORBIDDEN") {
			t.Fatalf("expected FORBIDDEN code in body: %s", recorder.Body.String())
		}
	}
}

func TestTimeoutSetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Timeout(time.Second))
	var deadline time.Time
	var ok bool
	router.GET("/", func(c *gin.Context) {
		deadline, ok = c.Request.Context().Deadline()
		c.Status(http.StatusNoContent)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !ok {
		t.Fatalf("expected a deadline on the request context")
	}
	if time.Until(deadline) > time.Second {
		t.Fatalf("deadline too far in the future: %v", deadline)
	}
}

func TestTimeoutDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Timeout(0))
	var ctx context.Context
	router.GET("/", func(c *gin.Context) {
		ctx = c.Request.Context()
		c.Status(http.StatusNoContent)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if _, ok := ctx.Deadline(); ok {
		t.Fatalf("expected no deadline when timeout is disabled")
	}
}

func TestMetricsRecordsRouteTemplate(t *testing.T) {
	metrics := service.NewMetricsService()
	router := portalRouter(Metrics(metrics))
	serve(router, "/get-batch?name_contactid=asha-9876", "")
	serve(router, "/nope", "")

	families, err := metrics.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	paths := map[string]bool{}
	for _, family := range families {
		if family.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "path" {
					paths[label.GetValue()] = true
				}
			}
		}
	}
	if !paths["/get-batch"] || !paths["unmatched"] {
		t.Fatalf("unexpected path labels: %v", paths)
	}
}

type spacedSubjectValidator struct{}

func (spacedSubjectValidator) ValidateToken(token string) (*models.JWTClaims, error) {
	return &models.JWTClaims{StudentID: "7", RegisteredClaims: jwt.RegisteredClaims{Subject: "Asha 98+76"}}, nil
}

func TestStudentScopeComparesCleanedIdentifier(t *testing.T) {
	router := portalRouter(OptionalJWT(spacedSubjectValidator{}), StudentScope())

	cases := []struct {
		target string
		want   int
	}{
		{"/get-batch?name_contactid=Asha+98%252B76", http.StatusNoContent},
		{"/get-batch?name_contactid=Asha%252098%252B76", http.StatusNoContent},
		{"/get-batch?name_contactid=Ravi%252098%252B76", http.StatusForbidden},
	}
	for _, tc := range cases {
		if got := serve(router, tc.target, "Bearer any").Code; got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.target, tc.want, got)
		}
	}
}
