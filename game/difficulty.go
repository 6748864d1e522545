package game

import (
	"math"
	"strings"

	"github.com/anisan-cli/anibot/errs"
	"github.com/samber/lo"
)

// Difficulty sets the tolerance of a rating guess.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficulties = [...]struct {
	name   string
	margin float64
}{
	Easy:   {"easy", 0.5},
	Medium: {"medium", 0.25},
	Hard:   {"hard", 0.1},
}

// Difficulties in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// tolerance absorbs float noise so that a guess exactly margin away is accepted.
const tolerance = 1e-9

func (d Difficulty) String() string {
	return difficulties[d].name
}

// Margin is the largest accepted distance between a guess and the true rating.
func (d Difficulty) Margin() float64 {
	return difficulties[d].margin
}

// Accepts reports whether guess is within the margin of rating, boundary included.
func (d Difficulty) Accepts(guess, rating float64) bool {
	return math.Abs(guess-rating) <= d.Margin()+tolerance
}

// DifficultyNames lists the accepted spellings.
func DifficultyNames() []string {
	return lo.Map(Difficulties, func(d Difficulty, _ int) string {
		return d.String()
	})
}

// ParseDifficulty accepts a difficulty name in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Difficulties {
		if d.String() == name {
			return d, nil
		}
	}
	return Medium, errs.Invalid("difficulty", name, DifficultyNames()...)
}
