package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Response Types
// =============================================================================

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *errorInfo      `json:"error,omitempty"`
}

type errorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type dayInfo struct {
	Solar struct {
		Year  int `json:"year"`
		Month int `json:"month"`
		Day   int `json:"day"`
	} `json:"solar"`
	Lunar struct {
		Year        int  `json:"year"`
		Month       int  `json:"month"`
		Day         int  `json:"day"`
		IsLeapMonth bool `json:"is_leap_month"`
	} `json:"lunar"`
	Label    string `json:"label"`
	Festival string `json:"festival"`
}

func (d dayInfo) solar() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Solar.Year, d.Solar.Month, d.Solar.Day)
}

func (d dayInfo) lunar() string {
	leap := ""
	if d.Lunar.IsLeapMonth {
		leap = "L"
	}
	return fmt.Sprintf("%04d-%s%02d-%02d", d.Lunar.Year, leap, d.Lunar.Month, d.Lunar.Day)
}

// =============================================================================
// Test Runner
// =============================================================================

// TestRunner issues requests against baseURL and records pass/fail results.
type TestRunner struct {
	out          io.Writer
	baseURL      string
	apiKey       string
	client       *http.Client
	successCount int
	errorCount   int
	errors       []string
}

// NewTestRunner returns a runner writing its report to out.
func NewTestRunner(out io.Writer, baseURL, apiKey string) *TestRunner {
	return &TestRunner{
		out:     out,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Run executes every check group and returns the number of failures.
func (tr *TestRunner) Run() int {
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Lunar Calendar API Smoke Test")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "Base URL: %s\n", tr.baseURL)

	tr.testHealth()
	tr.testSolarConversions()
	tr.testLunarConversions()
	tr.testErrors()
	tr.testRange()
	if tr.apiKey != "" {
		tr.testBirthdays()
	}

	tr.printSummary()
	return tr.errorCount
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health struct {
		Status string `json:"status"`
	}
	if _, err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}
	if health.Status != "healthy" {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
		return
	}
	tr.recordSuccess("Health check passed")
}

func (tr *TestRunner) testSolarConversions() {
	tr.printSection("Solar to Lunar")

	testCases := []struct {
		date        string
		lunar       string
		description string
	}{
		{"1900-01-31", "1900-01-01", "Epoch"},
		{"2024-02-10", "2024-01-01", "Spring Festival 2024"},
		{"2023-03-22", "2023-L02-01", "First day of leap month 2023"},
		{"2023-04-19", "2023-L02-29", "Last day of leap month 2023"},
		{"2101-01-28", "2100-12-29", "Last supported date"},
	}

	for _, tc := range testCases {
		var day dayInfo
		if _, err := tr.getData("/api/v1/convert/solar/"+tc.date, &day); err != nil {
			tr.recordError(tc.description, err.Error())
			continue
		}
		if day.lunar() != tc.lunar {
			tr.recordError(tc.description, fmt.Sprintf("%s -> %s, want %s", tc.date, day.lunar(), tc.lunar))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s: %s -> %s %s", tc.description, tc.date, day.lunar(), day.Label))
	}
}

func (tr *TestRunner) testLunarConversions() {
	tr.printSection("Lunar to Solar")

	testCases := []struct {
		query       string
		solar       string
		description string
	}{
		{"year=2023&month=2&day=1&leap=true", "2023-03-22", "Leap month start"},
		{"year=2023&month=3&day=1", "2023-04-20", "Month after leap month"},
		{"year=2024&month=8&day=15", "2024-09-17", "Mid-Autumn 2024"},
	}

	for _, tc := range testCases {
		var day dayInfo
		if _, err := tr.getData("/api/v1/convert/lunar?"+tc.query, &day); err != nil {
			tr.recordError(tc.description, err.Error())
			continue
		}
		if day.solar() != tc.solar {
			tr.recordError(tc.description, fmt.Sprintf("got %s, want %s", day.solar(), tc.solar))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s: %s", tc.description, day.solar()))
	}
}

func (tr *TestRunner) testErrors() {
	tr.printSection("Error Handling")

	testCases := []struct {
		path        string
		code        string
		description string
	}{
		{"/api/v1/convert/solar/1900-01-30", "OUT_OF_RANGE", "Before epoch"},
		{"/api/v1/convert/solar/2023-02-29", "INVALID_DATE", "Nonexistent solar date"},
		{"/api/v1/convert/lunar?year=2024&month=2&day=1&leap=true", "INVALID_LEAP_MONTH", "Missing leap month"},
		{"/api/v1/years/2101", "OUT_OF_RANGE", "Year past table"},
	}

	for _, tc := range testCases {
		resp, status, err := tr.get(tc.path)
		if err != nil {
			tr.recordError(tc.description, err.Error())
			continue
		}
		if status != http.StatusBadRequest || resp.Error == nil || resp.Error.Code != tc.code {
			tr.recordError(tc.description, fmt.Sprintf("HTTP %d %+v, want 400 %s", status, resp.Error, tc.code))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s -> %s", tc.description, tc.code))
	}
}

func (tr *TestRunner) testRange() {
	tr.printSection("Date Range")

	var data struct {
		Days []dayInfo `json:"days"`
	}
	if _, err := tr.getData("/api/v1/days/range?start=2024-02-08&end=2024-02-12", &data); err != nil {
		tr.recordError("Range", err.Error())
		return
	}
	if len(data.Days) != 5 {
		tr.recordError("Range", fmt.Sprintf("got %d days, want 5", len(data.Days)))
		return
	}
	tr.recordSuccess(fmt.Sprintf("Range returned %d days (%s on %s)", len(data.Days), data.Days[2].Festival, data.Days[2].solar()))
}

func (tr *TestRunner) testBirthdays() {
	tr.printSection("Birthdays")

	name := "apitest-" + uuid.NewString()[:8]
	body := map[string]any{"name": name, "solar_date": "2023-03-22"}

	var created struct {
		ID string `json:"id"`
	}
	status, err := tr.do(http.MethodPost, "/api/v1/birthdays", body, &created)
	if err != nil || status != http.StatusCreated {
		tr.recordError("Create birthday", fmt.Sprintf("HTTP %d: %v", status, err))
		return
	}
	tr.recordSuccess("Created birthday " + created.ID)

	var occ struct {
		Occurrences []json.RawMessage `json:"occurrences"`
	}
	if status, err := tr.do(http.MethodGet, "/api/v1/birthdays/"+created.ID+"/occurrences?from=2024&to=2026", nil, &occ); err != nil || status != http.StatusOK {
		tr.recordError("Occurrences", fmt.Sprintf("HTTP %d: %v", status, err))
	} else if len(occ.Occurrences) != 3 {
		tr.recordError("Occurrences", fmt.Sprintf("got %d, want 3", len(occ.Occurrences)))
	} else {
		tr.recordSuccess("Occurrences listed for 2024-2026")
	}

	if status, err := tr.do(http.MethodDelete, "/api/v1/birthdays/"+created.ID, nil, nil); err != nil || status != http.StatusOK {
		tr.recordError("Delete birthday", fmt.Sprintf("HTTP %d: %v", status, err))
		return
	}
	tr.recordSuccess("Deleted birthday")
}

// =============================================================================
// Helpers
// =============================================================================

func (tr *TestRunner) get(path string) (*apiResponse, int, error) {
	return tr.request(http.MethodGet, path, nil)
}

func (tr *TestRunner) getData(path string, target any) (int, error) {
	return tr.do(http.MethodGet, path, nil, target)
}

// do sends a request and decodes a successful response's data into target.
func (tr *TestRunner) do(method, path string, body, target any) (int, error) {
	resp, status, err := tr.request(method, path, body)
	if err != nil {
		return status, err
	}
	if !resp.Success {
		if resp.Error != nil {
			return status, fmt.Errorf("API error: %s (%s)", resp.Error.Message, resp.Error.Code)
		}
		return status, fmt.Errorf("API returned success=false")
	}
	if target == nil {
		return status, nil
	}
	if err := json.Unmarshal(resp.Data, target); err != nil {
		return status, fmt.Errorf("decode data: %w", err)
	}
	return status, nil
}

func (tr *TestRunner) request(method, path string, body any) (*apiResponse, int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, tr.baseURL+path, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if tr.apiKey != "" {
		req.Header.Set("X-API-Key", tr.apiKey)
	}

	httpResp, err := tr.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	var resp apiResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, httpResp.StatusCode, fmt.Errorf("decode response (HTTP %d): %w", httpResp.StatusCode, err)
	}
	return &resp, httpResp.StatusCode, nil
}

func (tr *TestRunner) printSection(name string) {
	fmt.Fprintf(tr.out, "\n--- %s ---\n\n", name)
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Fprintf(tr.out, "  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Fprintf(tr.out, "  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Fprintln(tr.out)
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Summary")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "  Passed: %d\n", tr.successCount)
	fmt.Fprintf(tr.out, "  Failed: %d\n", tr.errorCount)

	if tr.errorCount > 0 {
		fmt.Fprintln(tr.out, "\nFailures:")
		for _, err := range tr.errors {
			fmt.Fprintf(tr.out, "  • %s\n", err)
		}
	}
}
