package dice

import (
	"encoding/binary"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"
)

// source is the subset of *frand.RNG the roller needs
type source interface {
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int {
	return frand.Intn(n)
}

// randomRoller implements Roller on top of frand
type randomRoller struct {
	src source
}

// NewRandomRoller creates a dice roller backed by frand's global generator
func NewRandomRoller() Roller {
	return &randomRoller{src: globalSource{}}
}

// NewSeededRoller creates a deterministic dice roller; the same seed always
// yields the same sequence of rolls
func NewSeededRoller(seed uint64) Roller {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return &randomRoller{src: frand.NewCustom(key, 1024, 12)}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides int) ([]int, error) {
	if err := ValidateRoll(count, sides); err != nil {
		return nil, err
	}

	out := make([]int, count)
	for i := range out {
		out[i] = r.src.Intn(sides) + 1
	}

	out = Sorted(out)
	log.Debug().Int("count", count).Int("sides", sides).Ints("dice", out).Msg("rolled dice")
	return out, nil
}

// Reroll implements Roller.Reroll
func (r *randomRoller) Reroll(dice []int, indices []int, sides int) ([]int, error) {
	if err := ValidateReroll(dice, indices, sides); err != nil {
		return nil, err
	}

	out := make([]int, len(dice))
	copy(out, dice)
	for _, i := range indices {
		out[i] = r.src.Intn(sides) + 1
	}

	out = Sorted(out)
	log.Debug().Ints("before", dice).Ints("indices", indices).Ints("after", out).Msg("rerolled dice")
	return out, nil
}
