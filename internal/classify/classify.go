// ABOUTME: Tool-call classifier: delegating, exempt, or qualifying for the streak
// ABOUTME: The category table is data, not logic; host tool renames are a config edit

package classify

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/agent-hooks-go/internal/config"
	"github.com/mauromedda/agent-hooks-go/internal/log"
)

// Category is the delegation-relevant class of a tool call.
type Category int

const (
	// Qualifying calls count toward the solo-call streak.
	Qualifying Category = iota
	// Delegating calls spawn a subagent and reset the streak.
	Delegating
	// Exempt calls are orchestration bookkeeping; they neither count
	// toward nor reset the streak.
	Exempt
	// Neutral means no usable signal (empty tool name); hooks pass
	// through silently without touching state.
	Neutral
)

// Table maps tool names to categories. Anything not listed is Qualifying.
type Table struct {
	delegating map[string]bool
	exempt     map[string]bool
}

// tableFile is the YAML override shape:
//
//	tools:
//	  delegating: [Task, Agent]
//	  exempt: [Skill, AskUserQuestion]
type tableFile struct {
	Tools struct {
		Delegating []string `yaml:"delegating"`
		Exempt     []string `yaml:"exempt"`
	} `yaml:"tools"`
}

// DefaultTable returns the built-in category table. "Agent" is the name
// newer host versions use for the delegation primitive; "Task" is the
// legacy name.
func DefaultTable() Table {
	return newTable(
		[]string{"Task", "Agent"},
		[]string{
			"Skill",
			"AskUserQuestion",
			"TaskCreate",
			"TaskUpdate",
			"TaskGet",
			"TaskList",
			"EnterPlanMode",
			"ExitPlanMode",
		},
	)
}

// LoadTable returns the table for a project: the YAML override resolved
// via config when present and parseable, else the built-ins. A broken
// or empty override degrades to defaults rather than disabling the
// guard.
//
// The two lists differ on omission. An override that leaves
// `delegating:` out keeps the built-in {Task, Agent}: a table with no
// delegating tools would leave the guard with no reset path, so every
// session ends in a permanent advisory escalation. Leaving `exempt:`
// out clears all exemptions, which is safe; exemptions only widen what
// the guard ignores.
func LoadTable(cwd string) Table {
	raw := config.ReadFileIfExists(config.ToolTablePath(cwd))
	if raw == "" {
		return DefaultTable()
	}

	var tf tableFile
	if err := yaml.Unmarshal([]byte(raw), &tf); err != nil {
		log.Warn("classify: bad tool table override, using defaults: %v", err)
		return DefaultTable()
	}
	if len(tf.Tools.Delegating) == 0 && len(tf.Tools.Exempt) == 0 {
		return DefaultTable()
	}

	delegating := tf.Tools.Delegating
	if len(delegating) == 0 {
		delegating = []string{"Task", "Agent"}
	}
	return newTable(delegating, tf.Tools.Exempt)
}

func newTable(delegating, exempt []string) Table {
	t := Table{
		delegating: make(map[string]bool, len(delegating)),
		exempt:     make(map[string]bool, len(exempt)),
	}
	for _, name := range delegating {
		t.delegating[name] = true
	}
	for _, name := range exempt {
		t.exempt[name] = true
	}
	return t
}

// Classify returns the category for a tool name.
func (t Table) Classify(toolName string) Category {
	switch {
	case toolName == "":
		return Neutral
	case t.delegating[toolName]:
		return Delegating
	case t.exempt[toolName]:
		return Exempt
	default:
		return Qualifying
	}
}

// InSubagent reports whether the event originated inside a subagent
// context. Subagent transcripts live under .../subagents/; they share
// the parent's session id, so guards must skip them entirely to avoid
// telling a subagent to delegate its own work.
func InSubagent(transcriptPath string) bool {
	return strings.Contains(transcriptPath, "/subagents/")
}
