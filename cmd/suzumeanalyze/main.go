// Command suzumeanalyze is a smoke-test harness: it walks a directory of
// .txt files (or reads stdin when no directory is given), analyzes each
// line, and reports part-of-speech histograms and timing to stdout.
//
// Grounded on the teacher's cmd/smoketest/main.go: directory walk via
// filepath.WalkDir, a bounded worker pool, a mutex-guarded Stats
// accumulator, and a reconstruction-invariant check (here: does the
// concatenation of a line's morpheme surfaces reproduce the normalized
// line?) flagged the same way the teacher flags tokenizer reconstruction
// failures.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/suzume-nlp/suzume/analyze"
	"github.com/suzume-nlp/suzume/dictionary"
	"github.com/suzume-nlp/suzume/normalize"
)

const maxWorkers = 4

// Stats accumulates results across every file processed, guarded by mu
// since processFile runs concurrently per file.
type Stats struct {
	mu           sync.Mutex
	filesScanned int
	linesScanned int
	totalBytes   int64
	reconOK      int
	reconFail    int
	posCounts    map[dictionary.PartOfSpeech]int
}

func newStats() *Stats {
	return &Stats{posCounts: make(map[dictionary.PartOfSpeech]int)}
}

func main() {
	a := analyze.New(analyze.DefaultOptions())
	if a.TryAutoLoadCoreDictionary() {
		fmt.Fprintln(os.Stderr, "loaded binary core dictionary")
	}

	stats := newStats()
	start := time.Now()

	if len(os.Args) < 2 {
		processReader(os.Stdin, "<stdin>", a, stats)
		printStats(stats, time.Since(start))
		return
	}

	dirPath := os.Args[1]
	var filePaths []string
	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup
	for _, path := range filePaths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processFile(p, a, stats)
		}(path)
	}
	wg.Wait()

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats, time.Since(start))
}

func processFile(path string, a *analyze.Analyzer, stats *Stats) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return
	}
	defer f.Close()

	fileStart := time.Now()
	processReader(f, path, a, stats)
	fmt.Fprintf(os.Stderr, "DONE  %s in %s\n", filepath.Base(path), time.Since(fileStart).Round(time.Millisecond))
}

// processReader analyzes r line by line, since normalize.Normalize rejects
// inputs larger than its single-call size guard and a line is a natural,
// independently-analyzable unit for Japanese text.
func processReader(r *os.File, label string, a *analyze.Analyzer, stats *Stats) {
	local := newStats()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		analyzeLine(line, label, a, local)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", label, err)
	}
	mergeStats(local, stats)
}

func analyzeLine(line, label string, a *analyze.Analyzer, local *Stats) {
	local.linesScanned++
	local.totalBytes += int64(len(line))

	normalized, err := normalize.Normalize(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error normalizing %s: %v\n", label, err)
		return
	}

	morphemes, err := a.Analyze(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing %s: %v\n", label, err)
		return
	}

	var sb strings.Builder
	for _, m := range morphemes {
		local.posCounts[m.POS]++
		sb.WriteString(m.Surface)
	}
	if sb.String() == normalized {
		local.reconOK++
	} else {
		local.reconFail++
		logReconstructionFailure(label, normalized, sb.String())
	}
}

func mergeStats(local, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()
	stats.filesScanned++
	stats.linesScanned += local.linesScanned
	stats.totalBytes += local.totalBytes
	stats.reconOK += local.reconOK
	stats.reconFail += local.reconFail
	for pos, count := range local.posCounts {
		stats.posCounts[pos] += count
	}
}

func logReconstructionFailure(label, original, reconstructed string) {
	pos, got, want := firstDivergence(original, reconstructed)
	fmt.Fprintf(os.Stderr, "RECON_FAIL: %s: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
		label, pos, got, want)
}

// firstDivergence finds the byte position where two strings first differ.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := len(original)
	if len(reconstructed) < n {
		n = len(reconstructed)
	}
	for i := 0; i < n; i++ {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func printStats(stats *Stats, elapsed time.Duration) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	fmt.Printf("Files scanned:      %d\n", stats.filesScanned)
	fmt.Printf("Lines scanned:      %d\n", stats.linesScanned)
	fmt.Printf("Total bytes:        %d\n", stats.totalBytes)
	fmt.Printf("Reconstruction OK:  %d\n", stats.reconOK)
	fmt.Printf("Reconstruction FAIL: %d\n", stats.reconFail)
	fmt.Printf("Elapsed:            %s\n", elapsed.Round(time.Millisecond))
	fmt.Println()

	total := 0
	for _, count := range stats.posCounts {
		total += count
	}
	fmt.Println("Part-of-speech distribution:")
	for pos := dictionary.Unknown; pos <= dictionary.Other; pos++ {
		count := stats.posCounts[pos]
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		fmt.Printf("  %-14s %d  (%.1f%%)\n", pos.String()+":", count, pct)
	}
}
