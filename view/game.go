package view

import (
	"fmt"
	"strconv"

	"github.com/anisan-cli/anibot/anime"
	"github.com/anisan-cli/anibot/game"
)

const (
	exhausted   = "Anime pool exhausted! You did it!"
	correctOne  = "✓ Correct!"
	wrongOne    = "✗ Wrong!"
	noGuessGame = "Start a game first with /guessgame"
	noHLGame    = "Start a game first with /higherlower"
)

// NoSession is the guidance shown when a turn arrives without a running game.
func NoSession(command string) string {
	if command == "higherlower" {
		return noHLGame
	}
	return noGuessGame
}

func medium(r anime.Record) string {
	if p, ok := r.Picture.Get(); ok {
		return p.Medium
	}
	return ""
}

func titleWithRating(r anime.Record) string {
	return fmt.Sprintf("%s\nRating: %s", anime.DisplayTitle(r), anime.FormatRating(r.Rating()))
}

// GuessStart introduces a Guess-The-Rating round.
func GuessStart(round game.GuessRound) *Embed {
	return NewEmbed("Guess The Rating Game", Gold).
		Field("Anime", anime.DisplayTitle(round.Current), false).
		Picture(medium(round.Current)).
		Field("Instructions", fmt.Sprintf(
			"Guess the rating (0-10) within ±%s points!\nUse: /guess <number>",
			strconv.FormatFloat(round.Difficulty.Margin(), 'f', -1, 64),
		), false)
}

// GuessOutcome reports a judged guess.
func GuessOutcome(o game.GuessOutcome) *Embed {
	guess := strconv.FormatFloat(o.Guess, 'f', -1, 64)
	actual := anime.FormatRating(o.Actual())
	score := strconv.Itoa(o.Score)

	switch o.Result {
	case game.Continue:
		next, _ := o.Next.Get()
		return NewEmbed(correctOne, Green).
			Field("Your Guess", guess, true).
			Field("Actual Rating", actual, true).
			Field("Difficulty: ", o.Difficulty.String(), true).
			Field("Current Score", score, false).
			Field("Next Anime", anime.DisplayTitle(next), false).
			Picture(medium(next))
	case game.Exhausted:
		return NewEmbed(correctOne, Green).
			Field("Final Guess", guess, true).
			Field("Actual Rating", actual, true).
			Field("Difficulty: ", o.Difficulty.String(), true).
			Field("Final Score", score, false).
			Field("Game Over", exhausted, false).
			Picture(medium(o.Answered))
	default:
		return NewEmbed(wrongOne, Red).
			Field("Your Guess", guess, true).
			Field("Actual Rating", actual, true).
			Field("Difficulty: ", o.Difficulty.String(), true).
			Field("Final Score", score, false).
			Picture(medium(o.Answered))
	}
}

// HigherLowerButtons are the two calls of a Higher/Lower turn.
func HigherLowerButtons() []Button {
	return []Button{
		{Action: string(game.Higher), Label: "📈 Higher", Style: Success},
		{Action: string(game.Lower), Label: "📉 Lower", Style: Danger},
	}
}

// HigherLowerStart introduces a round with two messages: the rated record, then the one to call.
func HigherLowerStart(round game.HigherLowerRound) (intro Reply, prompt Reply) {
	rating := "?"
	if v, ok := round.Current.Mean.Get(); ok {
		rating = anime.FormatRating(v)
	}

	first := NewEmbed("Higher or Lower Game", Gold).
		Field("Anime", anime.DisplayTitle(round.Current), false).
		Field("Rating", rating, false).
		Field("Instructions", "Is the next anime rated higher or lower?\nUse the buttons below!", false).
		Picture(medium(round.Current))

	second := NewEmbed("Next Anime", Gold).
		Field("Title", anime.DisplayTitle(round.Next), false).
		Picture(medium(round.Next))

	return Reply{Embeds: []*Embed{first}}, Reply{Embeds: []*Embed{second}, Buttons: HigherLowerButtons()}
}

// HigherLowerOutcome reports a judged call. A continuing round carries the buttons for the next call.
func HigherLowerOutcome(o game.HigherLowerOutcome) Reply {
	streak := strconv.Itoa(o.Streak)

	switch o.Result {
	case game.Continue:
		round, _ := o.Round.Get()
		e := NewEmbed(correctOne, Green).
			Field("Streak", streak, false).
			Field("Current Anime", titleWithRating(o.Revealed), false).
			Field("Next Anime", anime.DisplayTitle(round.Next), false).
			Picture(medium(round.Next))
		return Reply{Embeds: []*Embed{e}, Buttons: HigherLowerButtons()}
	case game.Exhausted:
		e := NewEmbed(correctOne, Green).
			Field("Final Streak", streak, false).
			Field("Final Anime", titleWithRating(o.Revealed), false).
			Field("Game Over", exhausted, false).
			Picture(medium(o.Revealed))
		return Reply{Embeds: []*Embed{e}}
	default:
		e := NewEmbed(wrongOne, Red).
			Field("Previous Anime", titleWithRating(o.Previous), true).
			Field("Final Anime", titleWithRating(o.Revealed), true).
			Field("Final Streak", streak, false).
			Picture(medium(o.Revealed))
		return Reply{Embeds: []*Embed{e}}
	}
}
