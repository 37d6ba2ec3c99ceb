// ABOUTME: Delegation guard: deny the first solo tool call, then escalate advisories
// ABOUTME: Pure transition functions over (streak, block_fired, subagent_count, subagent_grace)

package guard

import (
	"fmt"
	"math/bits"

	"github.com/mauromedda/agent-hooks-go/internal/classify"
	"github.com/mauromedda/agent-hooks-go/internal/hookio"
)

// Hook is the state-record key for this machine.
const Hook = "delegation"

// State is the per-session guard record.
//
// Known limitation: if a subagent terminates abnormally before its stop
// event is observed, SubagentCount stays elevated and the guard remains
// suppressed for the rest of the session. There is deliberately no
// time-based self-healing for this.
type State struct {
	Streak        int  `json:"streak"`
	BlockFired    bool `json:"block_fired"`
	SubagentCount int  `json:"subagent_count"`
	SubagentGrace bool `json:"subagent_grace"`
}

// OnSubagentStart registers a child subagent. The first observed event
// in the post-delegation window claims the grace pass.
func OnSubagentStart(s State) State {
	s.SubagentCount++
	s.SubagentGrace = false
	return s
}

// OnSubagentStop releases a child subagent. Floored at zero: a stop
// without a matching start must not drive the count negative.
func OnSubagentStop(s State) State {
	if s.SubagentCount > 0 {
		s.SubagentCount--
	}
	return s
}

// OnToolCall computes the transition for a classified tool call and the
// decision to emit. Neutral calls and exempt calls leave state untouched.
func OnToolCall(s State, cat classify.Category) (State, hookio.Decision) {
	switch cat {
	case classify.Neutral, classify.Exempt:
		return s, hookio.Allow()

	case classify.Delegating:
		// Delegation occurred: reset the streak, re-arm the block,
		// and give the next qualifying call a free pass so the
		// subagent's first action is not penalized before its start
		// event registers.
		s.Streak = 0
		s.BlockFired = false
		s.SubagentGrace = true
		return s, hookio.Allow()
	}

	// Qualifying call.
	if s.SubagentCount > 0 {
		// Delegation is actively in progress; suppressing the guard
		// for the main session during this window is an accepted
		// trade-off.
		return s, hookio.Allow()
	}
	if s.SubagentGrace {
		s.SubagentGrace = false
		return s, hookio.Allow()
	}
	if !s.BlockFired {
		// One-time hard stop. The denied call does not execute, so it
		// does not count toward the streak.
		s.BlockFired = true
		return s, hookio.Deny(blockMessage())
	}

	s.Streak++
	if advisoryDue(s.Streak) {
		return s, hookio.Advise(advisoryMessage(s.Streak))
	}
	return s, hookio.Allow()
}

// advisoryDue reports whether an advisory fires at this streak value:
// powers of two from 2 up. Nagging at every call degrades trust; an
// exponential cadence tracks a worsening pattern without becoming noise.
func advisoryDue(streak int) bool {
	return streak >= 2 && streak&(streak-1) == 0
}

// Tier returns the urgency tier for a streak value: log2(streak).
// Streak 2 is tier 1, 4 is tier 2, 8 is tier 3, 16 and beyond tier 4+.
func Tier(streak int) int {
	if streak < 1 {
		return 0
	}
	return bits.Len(uint(streak)) - 1
}

func blockMessage() string {
	return "Delegation check: you are about to make a solo tool call. " +
		"This is a one-time hard stop. Delegate to a subagent instead; " +
		"after this, reminders will be advisory-only. Use the Task tool " +
		"to spawn a subagent, then synthesize what it returns."
}

func advisoryMessage(streak int) string {
	switch Tier(streak) {
	case 1:
		return fmt.Sprintf(
			"Delegation reminder [streak=%d]: you have made %d consecutive solo tool calls. "+
				"Consider delegating this work to a subagent.", streak, streak)
	case 2:
		return fmt.Sprintf(
			"Delegation advisory [streak=%d]: %d consecutive solo tool calls. "+
				"Main session context is non-renewable. Push reads, research, and "+
				"implementation to subagents via the Task tool.", streak, streak)
	case 3:
		return fmt.Sprintf(
			"Delegation warning [streak=%d]: %d consecutive solo tool calls. "+
				"Main session capacity is depleting. This work belongs in a subagent; "+
				"spawn one now and synthesize the result.", streak, streak)
	default:
		return fmt.Sprintf(
			"DELEGATION CRITICAL [streak=%d]: %d consecutive solo tool calls. "+
				"You are consuming irreplaceable main session context. Stop and "+
				"delegate immediately.", streak, streak)
	}
}
