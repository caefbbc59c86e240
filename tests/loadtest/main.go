package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

const (
	numWorkers   = 50
	testDuration = 10 * time.Second
	seedProjects = 40
	seedSkills   = 30
)

var (
	baseURL       = envOr("PORTFOLIO_URL", "http://127.0.0.1:8090")
	adminEmail    = envOr("PORTFOLIO_ADMIN_EMAIL", "owner@example.com")
	adminPassword = os.Getenv("PORTFOLIO_ADMIN_PASSWORD")
)

var publicPaths = []string{"/api/content", "/api/projects", "/api/skills", "/api/experiences", "/api/education", "/api/about"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	fmt.Println("=== Portfolio Load Test ===")
	fmt.Printf("Target: %s | Workers: %d | Duration: %s\n\n", baseURL, numWorkers, testDuration)

	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	token, err := login()
	if err != nil {
		fmt.Printf("Admin login failed (%s), running read-only phases\n", err)
	}

	var projectIDs []string
	if token != "" {
		fmt.Println("\n--- Phase 1: Seeding content (admin API) ---")
		projectIDs = seed(token)
		fmt.Printf("Seeded %d projects, %d skills\n", len(projectIDs), seedSkills)
	}

	fmt.Println("\n--- Phase 2: Read-only load (public API) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		return doGet(publicPaths[rng.Intn(len(publicPaths))])
	})

	if token == "" || len(projectIDs) == 0 {
		return
	}

	fmt.Println("\n--- Phase 3: Mixed load (5% admin updates, 95% reads) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		if rng.Float64() < 0.05 {
			return doUpdateProject(token, projectIDs[rng.Intn(len(projectIDs))], rng)
		}
		if rng.Float64() < 0.3 {
			return doGetProject(projectIDs[rng.Intn(len(projectIDs))])
		}
		return doGet(publicPaths[rng.Intn(len(publicPaths))])
	})
}

func login() (string, error) {
	if adminPassword == "" {
		return "", fmt.Errorf("PORTFOLIO_ADMIN_PASSWORD not set")
	}
	data, _ := json.Marshal(map[string]string{"email": adminEmail, "password": adminPassword})
	resp, err := httpClient.Post(baseURL+"/api/auth/login", "application/json", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func seed(token string) []string {
	ids := make([]string, 0, seedProjects)
	for i := 0; i < seedProjects; i++ {
		body := map[string]any{
			"title":        fmt.Sprintf("Project %d", i),
			"description":  "Load test project",
			"githubUrl":    fmt.Sprintf("https://github.com/loadtest/project-%d", i),
			"category":     "Load",
			"startDate":    "2024-01-01",
			"technologies": []string{"Go", "Redis"},
		}
		var created struct {
			ID string `json:"id"`
		}
		if status := adminRequest(http.MethodPost, "/api/admin/projects", token, body, &created); status == http.StatusCreated {
			ids = append(ids, created.ID)
		}
	}
	for i := 0; i < seedSkills; i++ {
		body := map[string]any{"name": fmt.Sprintf("Skill %d", i), "level": i % 101, "category": "Load"}
		adminRequest(http.MethodPost, "/api/admin/skills", token, body, nil)
	}
	return ids
}

func adminRequest(method, path, token string, body any, out any) int {
	data, _ := json.Marshal(body)
	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(data))
	if err != nil {
		return 0
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := httpClient.Do(req)
	if err != nil {
		return 0
	}
	defer resp.Body.Close()
	if out != nil {
		_ = json.NewDecoder(resp.Body).Decode(out)
	} else {
		io.Copy(io.Discard, resp.Body)
	}
	return resp.StatusCode
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-26s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-26s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func doGet(path string) result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + path)
	lat := time.Since(start)
	if err != nil {
		return result{"GET " + path, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET " + path, resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetProject(id string) result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/api/projects/" + id)
	lat := time.Since(start)
	if err != nil {
		return result{"GET /api/projects/{id}", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /api/projects/{id}", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doUpdateProject(token, id string, rng *rand.Rand) result {
	statuses := []string{"planned", "in-progress", "completed"}
	body := map[string]any{"status": statuses[rng.Intn(len(statuses))]}
	start := time.Now()
	status := adminRequest(http.MethodPut, "/api/admin/projects/"+id, token, body, nil)
	lat := time.Since(start)
	return result{"PUT /api/admin/projects", status, lat, status != 200}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
