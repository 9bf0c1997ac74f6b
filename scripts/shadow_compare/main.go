package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type target struct {
	Method   string          `json:"method"`
	Path     string          `json:"path"`
	Body     json.RawMessage `json:"body,omitempty"`
	Critical bool            `json:"critical"`
}

type config struct {
	Targets []target `json:"targets"`
}

type comparison struct {
	Target         target
	LegacyStatus   int
	GoStatus       int
	StatusMatch    bool
	BodyMatch      bool
	Error          error
	DurationGo     time.Duration
	DurationLegacy time.Duration
}

func main() {
	var (
		goBase      string
		legacyBase  string
		targetsPath string
		token       string
		timeout     time.Duration
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:5000/api/v1/routes", "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:3000/api/v1/routes", "Legacy API base URL")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "shadow_compare", "targets.json"), "Path to JSON targets file")
	flag.StringVar(&token, "token", "", "Bearer token sent to the Go API")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}

	goClient := resty.New().SetBaseURL(strings.TrimRight(goBase, "/")).SetTimeout(timeout)
	if token != "" {
		goClient.SetAuthToken(token)
	}
	legacyClient := resty.New().SetBaseURL(strings.TrimRight(legacyBase, "/")).SetTimeout(timeout)

	var (
		comparisons  []comparison
		breaking     int
		optionalDiff int
	)
	for _, t := range targets {
		comp := compareTarget(goClient, legacyClient, t)
		switch {
		case comp.Error != nil && t.Critical:
			breaking++
		case comp.Error == nil && (!comp.StatusMatch || !comp.BodyMatch):
			if t.Critical {
				breaking++
			} else {
				optionalDiff++
			}
		}
		comparisons = append(comparisons, comp)
	}

	printReport(comparisons)

	fmt.Printf("Breaking diffs: %d, Optional diffs: %d\n", breaking, optionalDiff)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return cfg.Targets, nil
}

func compareTarget(goClient, legacyClient *resty.Client, tgt target) comparison {
	comp := comparison{Target: tgt}

	goResp, err := perform(goClient, tgt)
	if err != nil {
		comp.Error = fmt.Errorf("go request failed: %w", err)
		return comp
	}
	legacyResp, err := perform(legacyClient, tgt)
	if err != nil {
		comp.Error = fmt.Errorf("legacy request failed: %w", err)
		return comp
	}

	comp.DurationGo = goResp.Time()
	comp.DurationLegacy = legacyResp.Time()
	comp.GoStatus = goResp.StatusCode()
	comp.LegacyStatus = legacyResp.StatusCode()
	comp.StatusMatch = comp.GoStatus == comp.LegacyStatus
	comp.BodyMatch = bodiesEqual(unwrapEnvelope(goResp.Body()), legacyResp.Body())
	return comp
}

func perform(client *resty.Client, tgt target) (*resty.Response, error) {
	method := strings.ToUpper(strings.TrimSpace(tgt.Method))
	if method == "" {
		method = resty.MethodGet
	}
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req := client.R()
	if len(tgt.Body) > 0 {
		req.SetHeader("Content-Type", "application/json").SetBody([]byte(tgt.Body))
	}
	return req.Execute(method, path)
}

// unwrapEnvelope returns the data member of a success envelope, or body as is.
func unwrapEnvelope(body []byte) []byte {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil {
		return body
	}
	data, ok := env["data"]
	if !ok {
		return body
	}
	if _, failed := env["error"]; failed {
		return body
	}
	return data
}

func bodiesEqual(a, b []byte) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	normalize(&aj)
	normalize(&bj)
	return reflect.DeepEqual(aj, bj)
}

func normalize(v *interface{}) {
	switch val := (*v).(type) {
	case map[string]interface{}:
		for k, v2 := range val {
			normalize(&v2)
			val[k] = v2
		}
	case []interface{}:
		for i, v2 := range val {
			normalize(&v2)
			val[i] = v2
		}
	case float64:
		if val == float64(int64(val)) {
			*v = int64(val)
		}
	case string:
		if strings.EqualFold(val, "persuing") {
			*v = "Ongoing"
		}
	}
}

func printReport(results []comparison) {
	fmt.Println("Shadow Compare Report")
	fmt.Println("======================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.StatusMatch || !res.BodyMatch {
			status = "DIFF"
		}
		fmt.Printf("[%s] %s %s\n", status, res.Target.Method, res.Target.Path)
		fmt.Printf("  Go Status: %d (%s)\n", res.GoStatus, res.DurationGo)
		fmt.Printf("  Legacy Status: %d (%s)\n", res.LegacyStatus, res.DurationLegacy)
		if res.Error != nil {
			fmt.Printf("  Error: %v\n", res.Error)
		} else {
			fmt.Printf("  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Target.Critical)
		}
	}
}
