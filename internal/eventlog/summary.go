// ABOUTME: Reader side of the event log: per-session summaries for debugging
// ABOUTME: Loads session files concurrently; malformed lines are skipped

package eventlog

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/agent-hooks-go/internal/config"
)

// Summary aggregates one session's mirrored invocations.
type Summary struct {
	SessionID  string
	Events     int
	ByHook     map[string]int
	Denies     int
	Advisories int
}

// Summarize scans the log directory and builds one Summary per session
// file. Files are loaded concurrently; a missing directory yields an
// empty result, not an error.
func Summarize(ctx context.Context) ([]Summary, error) {
	dir := config.EventLogDir()
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading event log dir: %w", err)
	}

	var (
		mu        sync.Mutex
		summaries []Summary
	)
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".jsonl" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		session := strings.TrimSuffix(entry.Name(), ".jsonl")

		g.Go(func() error {
			s, err := summarizeFile(path, session)
			if err != nil {
				return err
			}
			mu.Lock()
			summaries = append(summaries, s)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].SessionID < summaries[j].SessionID
	})
	return summaries, nil
}

func summarizeFile(path, session string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	s := Summary{SessionID: session, ByHook: map[string]int{}}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		var e Entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue // Skip malformed lines
		}
		s.Events++
		s.ByHook[e.Hook]++
		switch classifyOutput(e.Output) {
		case outputDeny:
			s.Denies++
		case outputAdvise:
			s.Advisories++
		}
	}
	if err := scanner.Err(); err != nil {
		return s, fmt.Errorf("scanning %s: %w", path, err)
	}
	return s, nil
}

type outputKind int

const (
	outputAllow outputKind = iota
	outputAdvise
	outputDeny
)

// classifyOutput recognizes the three decision envelopes in a mirrored
// output payload.
func classifyOutput(raw json.RawMessage) outputKind {
	if len(raw) == 0 {
		return outputAllow
	}
	var out struct {
		Decision           string `json:"decision"`
		HookSpecificOutput struct {
			PermissionDecision string `json:"permissionDecision"`
			AdditionalContext  string `json:"additionalContext"`
		} `json:"hookSpecificOutput"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return outputAllow
	}
	switch {
	case out.Decision == "block", out.HookSpecificOutput.PermissionDecision == "deny":
		return outputDeny
	case out.HookSpecificOutput.AdditionalContext != "":
		return outputAdvise
	default:
		return outputAllow
	}
}
