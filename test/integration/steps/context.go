// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/personal-ledger/backend/config"
	"github.com/personal-ledger/backend/internal/infra/dependency"
	"github.com/personal-ledger/backend/internal/integration/persistence/model"
	"github.com/personal-ledger/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string

	// Captured values, substituted into endpoints and bodies as {name}
	vars map[string]string

	// Infra
	db    *mock.Db
	redis *redis.Client
	cfg   *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// dateVars seeds placeholders that keep date-sensitive scenarios valid at
// any run date.
func dateVars(now time.Time) map[string]string {
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	previous := startOfMonth.AddDate(0, -1, 0)
	return map[string]string{
		"current_period":  startOfMonth.Format("2006-01"),
		"previous_period": previous.Format("2006-01"),
		"current_year":    strconv.Itoa(now.Year()),
		"start_of_month":  startOfMonth.Format(time.RFC3339),
	}
}

// testModels maps table names to the GORM models migrated into the test DB.
func testModels() map[string]any {
	return map[string]any{
		"users":             &model.UserModel{},
		"cost_centers":      &model.CostCenterModel{},
		"categories":        &model.CategoryModel{},
		"payment_types":     &model.PaymentTypeModel{},
		"recurring_entries": &model.RecurringEntryModel{},
		"entries":           &model.EntryModel{},
	}
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			requestHeaders: make(map[string]string),
			vars:           dateVars(time.Now().UTC()),
			cfg:            config.Load(),
			db:             mock.NewDb("test", testModels()),
			redis:          mock.NewRedis(),
		}

		if err := tc.db.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to reset database: %w", err)
		}
		if err := mock.ClearRedis(tc.redis); err != nil {
			return ctx, fmt.Errorf("failed to reset redis: %w", err)
		}

		injector := dependency.NewInjector(tc.cfg, tc.db.DbConn, tc.redis)
		tc.engine = injector.Router.Setup("test")
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I am authenticated as "([^"]*)"$`, iAmAuthenticatedAs)
	ctx.Step(`^I am not authenticated$`, iAmNotAuthenticated)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should be null$`, theResponseFieldShouldBeNull)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items?$`, theResponseListShouldHaveItems)
	ctx.Step(`^I store the response field "([^"]*)" as "([^"]*)"$`, iStoreTheResponseFieldAs)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

// substituteVars replaces {name} placeholders with captured values.
func (tc *TestContext) substituteVars(raw string) string {
	out := raw
	for name, value := range tc.vars {
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}
	return out
}

func (tc *TestContext) doRequest(method, endpoint string, body io.Reader) error {
	url := tc.server.URL + tc.substituteVars(endpoint)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	payload := bytes.NewBufferString(tc.substituteVars(body.Content))
	if err := tc.doRequest(method, endpoint, payload); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, name, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.requestHeaders[name] = value
	return nil
}

// iAmAuthenticatedAs registers the user if needed, logs in and keeps the
// access token for subsequent requests.
func iAmAuthenticatedAs(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	registerBody := fmt.Sprintf(`{"email":%q,"name":"Test User","password":"password123"}`, email)
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString(registerBody)); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated && tc.response.StatusCode != http.StatusConflict {
		return fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}

	loginBody := fmt.Sprintf(`{"email":%q,"password":"password123"}`, email)
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(loginBody)); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}

	var login struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(tc.responseBody, &login); err != nil {
		return fmt.Errorf("failed to parse login response: %w", err)
	}
	if login.AccessToken == "" {
		return fmt.Errorf("login response carried no access token")
	}
	tc.accessToken = login.AccessToken
	return nil
}

func iAmNotAuthenticated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	var js any
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, text string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if !strings.Contains(string(tc.responseBody), tc.substituteVars(text)) {
		return fmt.Errorf("response does not contain %q: %s", text, tc.responseBody)
	}
	return nil
}

// lookupField walks a dot-separated path through the decoded response body.
// Numeric path segments index into arrays.
func (tc *TestContext) lookupField(path string) (any, error) {
	var decoded any
	if err := json.Unmarshal(tc.responseBody, &decoded); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	current := decoded
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %s", path, tc.responseBody)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid list index %q in path %q", segment, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q not found in response: %s", path, tc.responseBody)
		}
	}
	return current, nil
}

// formatFieldValue renders a field for string comparison. Whole-number
// floats print without a decimal part.
func formatFieldValue(value any) string {
	if f, ok := value.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(value)
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	value, err := tc.lookupField(path)
	if err != nil {
		return err
	}
	got := formatFieldValue(value)
	want := tc.substituteVars(expected)
	if got == want {
		return nil
	}
	// Numeric fields may round-trip with a different scale ("100.00" vs
	// "100"), so fall back to a numeric comparison.
	gotNum, gotErr := strconv.ParseFloat(got, 64)
	wantNum, wantErr := strconv.ParseFloat(want, 64)
	if gotErr == nil && wantErr == nil && gotNum == wantNum {
		return nil
	}
	return fmt.Errorf("field %q is %q, expected %q", path, got, want)
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	_, err := tc.lookupField(path)
	return err
}

func theResponseFieldShouldBeNull(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	value, err := tc.lookupField(path)
	if err != nil {
		return err
	}
	if value != nil {
		return fmt.Errorf("field %q is %v, expected null", path, value)
	}
	return nil
}

func theResponseListShouldHaveItems(ctx context.Context, path string, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	value, err := tc.lookupField(path)
	if err != nil {
		return err
	}
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list", path)
	}
	if len(list) != count {
		return fmt.Errorf("list %q has %d items, expected %d", path, len(list), count)
	}
	return nil
}

func iStoreTheResponseFieldAs(ctx context.Context, path, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	value, err := tc.lookupField(path)
	if err != nil {
		return err
	}
	tc.vars[name] = formatFieldValue(value)
	return nil
}
