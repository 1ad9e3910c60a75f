// Package racer adapts the race session to the platform's core.Game
// contract. It owns the Ready, Playing and GameOver screens and forwards
// session events to audio, the round journal and the logger.
package racer

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/math-racer/internal/audio"
	"github.com/vovakirdan/math-racer/internal/config"
	"github.com/vovakirdan/math-racer/internal/core"
	"github.com/vovakirdan/math-racer/internal/journal"
	"github.com/vovakirdan/math-racer/internal/race"
)

// View is the application screen currently shown.
type View int

const (
	ViewReady View = iota
	ViewPlaying
	ViewGameOver
)

func (v View) String() string {
	switch v {
	case ViewReady:
		return "ready"
	case ViewPlaying:
		return "playing"
	case ViewGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// RoundSaver persists resolved rounds. *journal.Store implements it.
type RoundSaver interface {
	SaveRound(r journal.Round) (int64, error)
}

// Options wires the game to its collaborators. Nil fields get silent
// or no-op defaults.
type Options struct {
	Config  config.RacerConfig
	Audio   audio.Player
	Journal RoundSaver
	Logger  *log.Logger
}

// Game implements core.Game for Math Racer.
type Game struct {
	cfg     config.RacerConfig
	player  audio.Player
	journal RoundSaver
	logger  *log.Logger

	runtime   core.RuntimeConfig
	session   *race.Session
	events    *race.Recorder
	view      View
	sessionID string
	lastScore int
	frame     uint64 // render frames since Reset, drives road scrolling
}

var _ core.Game = (*Game)(nil)

// New creates a Math Racer game.
func New(opts Options) *Game {
	g := &Game{
		cfg:     opts.Config,
		player:  opts.Audio,
		journal: opts.Journal,
		logger:  opts.Logger,
	}
	if g.player == nil {
		g.player = &audio.Silent{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string { return "racer" }

// Title returns the display name.
func (g *Game) Title() string { return "Math Racer" }

// Reset returns to the ready screen with a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.session != nil {
		g.session.Teardown()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = race.DefaultTickRate
	}
	g.runtime = cfg
	g.events = &race.Recorder{}
	g.session = race.NewSession(g.cfg.Params(cfg.TickRate), rand.New(rand.NewSource(cfg.Seed)), g.events)
	g.view = ViewReady
	g.sessionID = ""
	g.lastScore = 0
	g.frame = 0
	g.player.StopMusic()
}

// Resize updates the screen size without touching the session.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// Step applies the frame's actions in arrival order, then advances the
// session one tick while playing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frame++

	for _, a := range in.Actions {
		g.apply(a)
	}

	if g.view == ViewPlaying {
		g.session.Advance(1)
	}
	g.dispatch()

	return core.StepResult{State: g.State()}
}

func (g *Game) apply(a core.Action) {
	if a == core.ActionMute {
		muted := g.player.ToggleMute()
		g.logger.Debug("audio toggled", "muted", muted)
		return
	}

	switch g.view {
	case ViewReady:
		if a == core.ActionConfirm {
			g.start()
		}

	case ViewPlaying:
		switch a {
		case core.ActionLeft:
			g.session.Command(race.Left)
		case core.ActionRight:
			g.session.Command(race.Right)
		case core.ActionBack:
			g.session.Teardown()
			g.player.StopMusic()
			g.view = ViewReady
			g.logger.Info("session abandoned", "session", g.sessionID, "score", g.session.Score())
		}

	case ViewGameOver:
		switch a {
		case core.ActionRestart, core.ActionConfirm:
			g.start()
		case core.ActionBack:
			g.view = ViewReady
		}
	}
}

// start begins a new session from scratch, from Ready or GameOver.
func (g *Game) start() {
	g.sessionID = uuid.NewString()
	if g.view == ViewGameOver {
		g.session.Restart()
	} else {
		g.session.Start()
	}
	g.view = ViewPlaying
	g.player.PlayMusic()
	g.logger.Info("session started", "session", g.sessionID)
}

// dispatch forwards buffered session events.
func (g *Game) dispatch() {
	for _, evt := range g.events.Drain() {
		switch e := evt.(type) {
		case race.CueEvent:
			g.player.Play(cueSound(e.Cue))

		case race.RoundEvent:
			g.logger.Debug("round resolved",
				"session", g.sessionID,
				"problem", e.Problem.String(),
				"chosen", e.Chosen.Value,
				"correct", e.Chosen.IsCorrect,
				"score", e.Score,
			)
			g.record(e)

		case race.GameOverEvent:
			g.lastScore = e.Score
			g.view = ViewGameOver
			g.player.StopMusic()
			g.player.Play(audio.SoundGameOver)
			g.logger.Info("game over", "session", g.sessionID, "score", e.Score)
		}
	}
}

func (g *Game) record(e race.RoundEvent) {
	if g.journal == nil {
		return
	}
	_, err := g.journal.SaveRound(journal.Round{
		SessionID: g.sessionID,
		Num1:      e.Problem.Num1,
		Num2:      e.Problem.Num2,
		Answer:    e.Problem.Answer,
		Chosen:    e.Chosen.Value,
		Lane:      e.Lane,
		Correct:   e.Chosen.IsCorrect,
	})
	if err != nil {
		// Journal is best-effort; stop writing after the first failure.
		g.logger.Warn("journal disabled", "err", err)
		g.journal = nil
	}
}

func cueSound(c race.Cue) audio.Sound {
	switch c {
	case race.CueCorrect:
		return audio.SoundCorrect
	case race.CueIncorrect:
		return audio.SoundIncorrect
	default:
		return audio.SoundMove
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.lastScore
	if g.view == ViewPlaying {
		score = g.session.Score()
	}
	return core.GameState{
		Score:    score,
		Playing:  g.view == ViewPlaying,
		GameOver: g.view == ViewGameOver,
	}
}

// View returns the current screen.
func (g *Game) View() View { return g.view }

// Snapshot returns the session state.
func (g *Game) Snapshot() race.Snapshot { return g.session.Snapshot() }

// Close stops the session and its music.
func (g *Game) Close() {
	if g.session != nil {
		g.session.Teardown()
	}
	g.player.StopMusic()
}
