package atperf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// BenchResult captures one benchmark run from a driver binary.
type BenchResult struct {
	Name      string    `json:"name"`
	M         int       `json:"m,omitempty"`
	K         int       `json:"k,omitempty"`
	N         int       `json:"n,omitempty"`
	Tile      int       `json:"tile,omitempty"`
	Reps      int       `json:"reps,omitempty"`
	Millis    float64   `json:"ms"`
	GFLOPS    float64   `json:"gflops,omitempty"`
	GBPerSec  float64   `json:"gb_per_sec,omitempty"`
	CheckLo   float64   `json:"check_lo,omitempty"`   // C[0]
	CheckHi   float64   `json:"check_hi,omitempty"`   // C[M*N-1]
	Checksum  float64   `json:"checksum,omitempty"`   // full-buffer sum
	VectorISA string    `json:"vector_isa,omitempty"` // hardware attribution
	Timestamp time.Time `json:"timestamp"`
}

// BenchLogger accumulates results and persists them as one JSON session
// file, flushed after every append so a crashed run loses nothing.
type BenchLogger struct {
	mu          sync.Mutex
	results     []BenchResult
	logDir      string
	sessionFile string
}

// NewBenchLogger opens a session file named after sessionName plus a
// timestamp under logDir, creating the directory if needed.
func NewBenchLogger(logDir, sessionName string) (*BenchLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	stamp := time.Now().Format("20060102_150405")
	bl := &BenchLogger{
		logDir:      logDir,
		sessionFile: filepath.Join(logDir, fmt.Sprintf("%s_%s.json", sessionName, stamp)),
	}
	return bl, bl.flush()
}

// SessionFile returns the path of the session's JSON file.
func (bl *BenchLogger) SessionFile() string {
	return bl.sessionFile
}

// Log appends one result and flushes to disk.
func (bl *BenchLogger) Log(result BenchResult) error {
	bl.mu.Lock()
	defer bl.mu.Unlock()
	result.Timestamp = time.Now()
	bl.results = append(bl.results, result)
	return bl.flush()
}

func (bl *BenchLogger) flush() error {
	data, err := json.MarshalIndent(bl.results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	return os.WriteFile(bl.sessionFile, data, 0644)
}

// ReadBenchSession loads a previously written session file, for the
// comparison tooling.
func ReadBenchSession(path string) ([]BenchResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var results []BenchResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return results, nil
}
