package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/yahtzee-scorer/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
	}
}

// SetNextRoll queues a single die result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the queued die results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
}

// Remaining returns how many queued results have not been used
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

func (m *ManualMockRoller) nextDie(sides int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	if roll < 1 || roll > sides {
		return 0, fmt.Errorf("invalid roll %d for d%d", roll, sides)
	}
	m.rollIndex++
	return roll, nil
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count, sides int) ([]int, error) {
	if err := dice.ValidateRoll(count, sides); err != nil {
		return nil, err
	}

	out := make([]int, count)
	for i := range out {
		roll, err := m.nextDie(sides)
		if err != nil {
			return nil, err
		}
		out[i] = roll
	}

	return dice.Sorted(out), nil
}

// Reroll implements dice.Roller.Reroll
func (m *ManualMockRoller) Reroll(hand []int, indices []int, sides int) ([]int, error) {
	if err := dice.ValidateReroll(hand, indices, sides); err != nil {
		return nil, err
	}

	out := make([]int, len(hand))
	copy(out, hand)
	for _, i := range indices {
		roll, err := m.nextDie(sides)
		if err != nil {
			return nil, err
		}
		out[i] = roll
	}

	return dice.Sorted(out), nil
}

var _ dice.Roller = (*ManualMockRoller)(nil)
