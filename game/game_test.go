package game

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/bcspragu/Ludo/dice"
	"github.com/bcspragu/Ludo/ludo"
	"github.com/google/go-cmp/cmp"
)

func TestFreshGameRollSix(t *testing.T) {
	g, gs := newTestGame(nil, 6)

	res, err := g.Roll()
	if err != nil {
		t.Fatalf("Roll: %v", err)
	}
	wantRoll := &ludo.Result{
		Player:            ludo.Red,
		Dice:              6,
		AwaitingSelection: true,
		NextPlayer:        ludo.Red,
	}
	if diff := cmp.Diff(wantRoll, res); diff != "" {
		t.Errorf("unexpected roll result (-want +got)\n%s", diff)
	}

	wantLegal := []ludo.TokenID{{Color: ludo.Red, Index: 0}, {Color: ludo.Red, Index: 1}, {Color: ludo.Red, Index: 2}, {Color: ludo.Red, Index: 3}}
	if diff := cmp.Diff(wantLegal, g.LegalTokens(ludo.Red, 6)); diff != "" {
		t.Errorf("unexpected legal tokens (-want +got)\n%s", diff)
	}

	res, err = g.Select(ludo.TokenID{Color: ludo.Red, Index: 0})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	wantMove := &ludo.Result{
		Player:     ludo.Red,
		Dice:       6,
		Moved:      &ludo.TokenID{Color: ludo.Red, Index: 0},
		BonusTurn:  true,
		NextPlayer: ludo.Red,
	}
	if diff := cmp.Diff(wantMove, res); diff != "" {
		t.Errorf("unexpected move result (-want +got)\n%s", diff)
	}

	if got := gs.Tokens[ludo.Red][0].PathIndex; got != 0 {
		t.Errorf("token entered at path index %d, want 0", got)
	}
	if gs.Phase != ludo.AwaitingRoll {
		t.Errorf("Phase = %s, want %s", gs.Phase, ludo.AwaitingRoll)
	}
	if gs.CurrentPlayer != ludo.Red {
		t.Errorf("CurrentPlayer = %s, want RED", gs.CurrentPlayer)
	}
}

func TestNoMovePassesTurn(t *testing.T) {
	g, gs := newTestGame(nil, 4)
	before := gs.Clone()

	res, err := g.Roll()
	if err != nil {
		t.Fatalf("Roll: %v", err)
	}
	want := &ludo.Result{
		Player:     ludo.Red,
		Dice:       4,
		NoMove:     true,
		NextPlayer: ludo.Green,
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("unexpected result (-want +got)\n%s", diff)
	}
	if diff := cmp.Diff(before.Tokens, gs.Tokens); diff != "" {
		t.Errorf("tokens changed (-before +after)\n%s", diff)
	}
	if gs.CurrentPlayer != ludo.Green || gs.Phase != ludo.AwaitingRoll {
		t.Errorf("got %s in %s, want GREEN in %s", gs.CurrentPlayer, gs.Phase, ludo.AwaitingRoll)
	}
}

func TestNoMoveOnSixRollsAgain(t *testing.T) {
	g, gs := newTestGame(func(gs *ludo.GameState) {
		finish(gs, ludo.TokenID{Color: ludo.Red, Index: 0})
		finish(gs, ludo.TokenID{Color: ludo.Red, Index: 1})
		finish(gs, ludo.TokenID{Color: ludo.Red, Index: 2})
		place(gs, ludo.TokenID{Color: ludo.Red, Index: 3}, 52)
	}, 6)

	res, err := g.Roll()
	if err != nil {
		t.Fatalf("Roll: %v", err)
	}
	if !res.NoMove || !res.BonusTurn || res.NextPlayer != ludo.Red {
		t.Errorf("got %+v, want a bonus turn for RED with no move", res)
	}
	if gs.CurrentPlayer != ludo.Red || gs.Phase != ludo.AwaitingRoll {
		t.Errorf("got %s in %s, want RED in %s", gs.CurrentPlayer, gs.Phase, ludo.AwaitingRoll)
	}
}

func TestCapture(t *testing.T) {
	g, gs := newTestGame(func(gs *ludo.GameState) {
		gs.CurrentPlayer = ludo.Green
		place(gs, ludo.TokenID{Color: ludo.Red, Index: 0}, 10)
		place(gs, ludo.TokenID{Color: ludo.Green, Index: 1}, 20)
	}, 3)

	// Green's 23rd cell is red's 10th.
	if a, b := ludo.PathCell(ludo.Green, 23), ludo.PathCell(ludo.Red, 10); a != b || ludo.IsSafe(a) {
		t.Fatalf("test setup is wrong, %s vs %s", a, b)
	}

	mustRoll(t, g)
	res, err := g.Select(ludo.TokenID{Color: ludo.Green, Index: 1})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	want := &ludo.Result{
		Player:     ludo.Green,
		Dice:       3,
		Moved:      &ludo.TokenID{Color: ludo.Green, Index: 1},
		Captured:   []ludo.TokenID{{Color: ludo.Red, Index: 0}},
		BonusTurn:  true,
		NextPlayer: ludo.Green,
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("unexpected result (-want +got)\n%s", diff)
	}
	if got := gs.Tokens[ludo.Red][0].PathIndex; got != ludo.AtHome {
		t.Errorf("captured token at path index %d, want %d", got, ludo.AtHome)
	}
	if !gs.JustCaptured {
		t.Error("JustCaptured wasn't set")
	}

	// The next roll clears it.
	g.roller = &dice.Sequence{1}
	mustRoll(t, g)
	if gs.JustCaptured {
		t.Error("JustCaptured wasn't cleared by the next roll")
	}
}

func TestCaptureTakesEveryOpponentOnTheCell(t *testing.T) {
	g, gs := newTestGame(func(gs *ludo.GameState) {
		gs.CurrentPlayer = ludo.Green
		place(gs, ludo.TokenID{Color: ludo.Red, Index: 0}, 10)
		place(gs, ludo.TokenID{Color: ludo.Red, Index: 2}, 10)
		// Blue's 49th cell is also red's 10th.
		place(gs, ludo.TokenID{Color: ludo.Blue, Index: 3}, 49)
		place(gs, ludo.TokenID{Color: ludo.Green, Index: 1}, 20)
		place(gs, ludo.TokenID{Color: ludo.Yellow, Index: 0}, 11)
	}, 3)

	mustRoll(t, g)
	res, err := g.Select(ludo.TokenID{Color: ludo.Green, Index: 1})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	want := []ludo.TokenID{{Color: ludo.Red, Index: 0}, {Color: ludo.Red, Index: 2}, {Color: ludo.Blue, Index: 3}}
	if diff := cmp.Diff(want, res.Captured); diff != "" {
		t.Errorf("unexpected captures (-want +got)\n%s", diff)
	}
	if got := gs.Tokens[ludo.Yellow][0].PathIndex; got != 11 {
		t.Errorf("bystander moved to %d", got)
	}
}

func TestNoCaptureOnSafeSpot(t *testing.T) {
	g, gs := newTestGame(func(gs *ludo.GameState) {
		gs.CurrentPlayer = ludo.Green
		// Red's 8th cell is a safe spot, and green's 21st.
		place(gs, ludo.TokenID{Color: ludo.Red, Index: 0}, 8)
		place(gs, ludo.TokenID{Color: ludo.Green, Index: 1}, 18)
	}, 3)

	if a, b := ludo.PathCell(ludo.Green, 21), ludo.PathCell(ludo.Red, 8); a != b || !ludo.IsSafe(a) {
		t.Fatalf("test setup is wrong, %s vs %s", a, b)
	}

	mustRoll(t, g)
	res, err := g.Select(ludo.TokenID{Color: ludo.Green, Index: 1})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(res.Captured) != 0 {
		t.Errorf("captured %v on a safe spot", res.Captured)
	}
	if got := gs.Tokens[ludo.Red][0].PathIndex; got != 8 {
		t.Errorf("red token moved to %d", got)
	}
	// Three, no capture: the turn passes.
	if res.BonusTurn || res.NextPlayer != ludo.Yellow {
		t.Errorf("got bonus=%t next=%s, want the turn to pass to YELLOW", res.BonusTurn, res.NextPlayer)
	}
	if got := gs.TokensAt(ludo.PathCell(ludo.Red, 8)); len(got) != 2 {
		t.Errorf("got %d tokens sharing the safe spot, want 2", len(got))
	}
}

func TestNoCaptureOfOwnTokens(t *testing.T) {
	g, gs := newTestGame(func(gs *ludo.GameState) {
		place(gs, ludo.TokenID{Color: ludo.Red, Index: 0}, 10)
		place(gs, ludo.TokenID{Color: ludo.Red, Index: 1}, 7)
	}, 3)

	mustRoll(t, g)
	res, err := g.Select(ludo.TokenID{Color: ludo.Red, Index: 1})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(res.Captured) != 0 || gs.Tokens[ludo.Red][0].PathIndex != 10 {
		t.Errorf("red captured its own token: %+v", res)
	}
}

func TestFinishAndWin(t *testing.T) {
	g, gs := newTestGame(func(gs *ludo.GameState) {
		finish(gs, ludo.TokenID{Color: ludo.Red, Index: 0})
		finish(gs, ludo.TokenID{Color: ludo.Red, Index: 1})
		finish(gs, ludo.TokenID{Color: ludo.Red, Index: 2})
		place(gs, ludo.TokenID{Color: ludo.Red, Index: 3}, 50)
	}, 6, 6)

	mustRoll(t, g)
	res, err := g.Select(ludo.TokenID{Color: ludo.Red, Index: 3})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	red := ludo.Red
	want := &ludo.Result{
		Player:        ludo.Red,
		Dice:          6,
		Moved:         &ludo.TokenID{Color: ludo.Red, Index: 3},
		TokenFinished: true,
		Winner:        &red,
		NextPlayer:    ludo.Red,
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("unexpected result (-want +got)\n%s", diff)
	}

	tok := gs.Tokens[ludo.Red][3]
	if tok.PathIndex != ludo.Finish || !tok.Finished {
		t.Errorf("token at %d finished=%t, want %d and finished", tok.PathIndex, tok.Finished, ludo.Finish)
	}
	if gs.Phase != ludo.GameOver {
		t.Errorf("Phase = %s, want %s", gs.Phase, ludo.GameOver)
	}
	if over, winner := g.GameOver(); !over || winner != ludo.Red {
		t.Errorf("GameOver() = %t, %s, want true, RED", over, winner)
	}

	// Nothing is accepted after the game ends.
	before := gs.Clone()
	if _, err := g.Roll(); !errors.Is(err, ludo.ErrIllegalIntent) {
		t.Errorf("Roll after game over returned %v, want ErrIllegalIntent", err)
	}
	if _, err := g.Select(ludo.TokenID{Color: ludo.Red, Index: 0}); !errors.Is(err, ludo.ErrIllegalIntent) {
		t.Errorf("Select after game over returned %v, want ErrIllegalIntent", err)
	}
	if diff := cmp.Diff(before, gs); diff != "" {
		t.Errorf("state changed after game over (-before +after)\n%s", diff)
	}
}

func TestFinishingTokenEarnsBonusTurn(t *testing.T) {
	g, gs := newTestGame(func(gs *ludo.GameState) {
		place(gs, ludo.TokenID{Color: ludo.Red, Index: 0}, 53)
	}, 3)

	mustRoll(t, g)
	res, err := g.Select(ludo.TokenID{Color: ludo.Red, Index: 0})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !res.TokenFinished || !res.BonusTurn || res.Winner != nil {
		t.Errorf("got %+v, want a finished token and a bonus turn", res)
	}
	if gs.CurrentPlayer != ludo.Red {
		t.Errorf("CurrentPlayer = %s, want RED", gs.CurrentPlayer)
	}
}

func TestTurnAdvance(t *testing.T) {
	tests := []struct {
		desc      string
		current   ludo.Color
		from      int
		roll      int
		wantBonus bool
		wantNext  ludo.Color
	}{
		{"plain move passes", ludo.Red, 0, 3, false, ludo.Green},
		{"six keeps the turn", ludo.Red, 0, 6, true, ludo.Red},
		{"blue wraps to red", ludo.Blue, 4, 2, false, ludo.Red},
		{"home stretch move passes", ludo.Yellow, 51, 2, false, ludo.Blue},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			id := ludo.TokenID{Color: test.current, Index: 0}
			g, gs := newTestGame(func(gs *ludo.GameState) {
				gs.CurrentPlayer = test.current
				place(gs, id, test.from)
			}, test.roll)

			mustRoll(t, g)
			res, err := g.Select(id)
			if err != nil {
				t.Fatalf("Select: %v", err)
			}
			if res.BonusTurn != test.wantBonus || res.NextPlayer != test.wantNext {
				t.Errorf("got bonus=%t next=%s, want bonus=%t next=%s", res.BonusTurn, res.NextPlayer, test.wantBonus, test.wantNext)
			}
			if gs.CurrentPlayer != test.wantNext {
				t.Errorf("CurrentPlayer = %s, want %s", gs.CurrentPlayer, test.wantNext)
			}
			if got, want := gs.Tokens[test.current][0].PathIndex, test.from+test.roll; got != want {
				t.Errorf("token at %d, want %d", got, want)
			}
		})
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		desc string
		idx  int
		roll int
		want bool
	}{
		{"home needs a six", ludo.AtHome, 5, false},
		{"home on a six", ludo.AtHome, 6, true},
		{"on the ring", 10, 1, true},
		{"exact finish", 50, 6, true},
		{"overshoot", 53, 4, false},
		{"home stretch fits", 52, 4, true},
		{"finished", ludo.Finish, 1, false},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			tok := ludo.Token{PathIndex: test.idx, Finished: test.idx == ludo.Finish}
			if got := CanMove(tok, test.roll); got != test.want {
				t.Errorf("CanMove(%d, %d) = %t, want %t", test.idx, test.roll, got, test.want)
			}
		})
	}

	for roll := 1; roll < 6; roll++ {
		if CanMove(ludo.Token{PathIndex: ludo.AtHome}, roll) {
			t.Errorf("home token can move on a %d", roll)
		}
	}
}

func TestIllegalIntents(t *testing.T) {
	setup := func(gs *ludo.GameState) {
		place(gs, ludo.TokenID{Color: ludo.Red, Index: 0}, 2)
	}

	tests := []struct {
		desc    string
		rolls   []int
		doRoll  bool
		intent  func(g *Game) error
		wantErr error
	}{
		{
			desc: "select before rolling",
			intent: func(g *Game) error {
				_, err := g.Select(ludo.TokenID{Color: ludo.Red, Index: 0})
				return err
			},
			wantErr: ludo.ErrIllegalIntent,
		},
		{
			desc:   "roll twice",
			rolls:  []int{3, 3},
			doRoll: true,
			intent: func(g *Game) error {
				_, err := g.Roll()
				return err
			},
			wantErr: ludo.ErrIllegalIntent,
		},
		{
			desc:   "token stuck at home",
			rolls:  []int{3},
			doRoll: true,
			intent: func(g *Game) error {
				_, err := g.Select(ludo.TokenID{Color: ludo.Red, Index: 1})
				return err
			},
			wantErr: ludo.ErrIllegalIntent,
		},
		{
			desc:   "someone else's token",
			rolls:  []int{3},
			doRoll: true,
			intent: func(g *Game) error {
				_, err := g.Select(ludo.TokenID{Color: ludo.Blue, Index: 0})
				return err
			},
			wantErr: ludo.ErrIllegalIntent,
		},
		{
			desc:   "nonexistent token",
			rolls:  []int{3},
			doRoll: true,
			intent: func(g *Game) error {
				_, err := g.Select(ludo.TokenID{Color: ludo.Red, Index: 4})
				return err
			},
			wantErr: ludo.ErrInvalidToken,
		},
		{
			desc: "unknown action",
			intent: func(g *Game) error {
				_, err := g.Move(&Move{Action: "DANCE"})
				return err
			},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			g, gs := newTestGame(setup, test.rolls...)
			if test.doRoll {
				mustRoll(t, g)
			}
			before := gs.Clone()

			err := test.intent(g)
			if err == nil {
				t.Fatal("intent was accepted")
			}
			if test.wantErr != nil && !errors.Is(err, test.wantErr) {
				t.Errorf("got error %v, want %v", err, test.wantErr)
			}
			if diff := cmp.Diff(before, gs); diff != "" {
				t.Errorf("state changed by a rejected intent (-before +after)\n%s", diff)
			}
		})
	}
}

func TestMoveDispatch(t *testing.T) {
	g, gs := newTestGame(nil, 6)

	if _, err := g.Move(&Move{Action: ActionRoll}); err != nil {
		t.Fatalf("Move(ROLL): %v", err)
	}
	if _, err := g.Move(&Move{Action: ActionSelect, Token: ludo.TokenID{Color: ludo.Red, Index: 2}}); err != nil {
		t.Fatalf("Move(SELECT): %v", err)
	}
	if got := gs.Tokens[ludo.Red][2].PathIndex; got != 0 {
		t.Errorf("token at %d, want 0", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g, gs := newTestGame(nil)
	snap := g.Snapshot()
	snap.Tokens[ludo.Red][0].PathIndex = 30
	snap.CurrentPlayer = ludo.Blue

	if gs.Tokens[ludo.Red][0].PathIndex != ludo.AtHome || gs.CurrentPlayer != ludo.Red {
		t.Error("changing the snapshot changed the game")
	}
}

func TestLegalTokensPanicsOnBadColor(t *testing.T) {
	g, _ := newTestGame(nil)
	for _, c := range []ludo.Color{-1, ludo.NumColors} {
		func() {
			defer func() {
				r := recover()
				msg, ok := r.(string)
				if !ok || !strings.Contains(msg, "invalid color") {
					t.Errorf("LegalTokens(%d, 6) panicked with %v, want an invalid color message", int(c), r)
				}
			}()
			g.LegalTokens(c, 6)
		}()
	}
}

// TestRandomGamesKeepInvariants plays many games with random rolls and
// random choices, checking the rules hold after every intent.
func TestRandomGamesKeepInvariants(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		r := rand.New(rand.NewSource(seed))
		gs := ludo.NewGameState()
		g := NewForMove(gs, dice.New(r))

		var winner *ludo.Color
		for step := 0; step < 100000 && winner == nil; step++ {
			cur := gs.CurrentPlayer
			before := gs.Clone()

			res, err := g.Roll()
			if err != nil {
				t.Fatalf("seed %d: Roll: %v", seed, err)
			}
			checkState(t, gs)

			if res.NoMove {
				for _, id := range allTokens(cur) {
					if CanMove(*before.Token(id), res.Dice) {
						t.Fatalf("seed %d: no move reported, but %s could move %d", seed, id, res.Dice)
					}
				}
				wantNext := cur.Next()
				if res.Dice == 6 {
					wantNext = cur
				}
				if gs.CurrentPlayer != wantNext {
					t.Fatalf("seed %d: after no move on %d, got %s, want %s", seed, res.Dice, gs.CurrentPlayer, wantNext)
				}
				continue
			}

			legal := g.LegalTokens(cur, res.Dice)
			id := legal[r.Intn(len(legal))]
			res, err = g.Select(id)
			if err != nil {
				t.Fatalf("seed %d: Select(%s): %v", seed, id, err)
			}
			checkState(t, gs)

			wantBonus := res.Dice == 6 || len(res.Captured) > 0 || res.TokenFinished
			if res.Winner == nil && res.BonusTurn != wantBonus {
				t.Fatalf("seed %d: got bonus=%t for %+v", seed, res.BonusTurn, res)
			}
			for _, c := range res.Captured {
				if c.Color == cur {
					t.Fatalf("seed %d: %s captured its own token", seed, cur)
				}
				if ludo.IsSafe(gs.Tokens[id.Color][id.Index].Cell()) {
					t.Fatalf("seed %d: capture on safe spot", seed)
				}
			}
			winner = res.Winner
		}

		if winner == nil {
			t.Fatalf("seed %d: game never ended", seed)
		}
		if gs.Finished(*winner) != ludo.TokensPerColor {
			t.Errorf("seed %d: %s won with %d tokens finished", seed, *winner, gs.Finished(*winner))
		}
		for _, c := range ludo.Colors {
			if c != *winner && gs.Finished(c) == ludo.TokensPerColor {
				t.Errorf("seed %d: %s also finished every token", seed, c)
			}
		}
	}
}

type scriptedPlayer struct {
	readies int
	// picks counts how many times we were asked for a token.
	picks int
	// firstBad makes the first choice an illegal one.
	firstBad bool
}

func (p *scriptedPlayer) ReadyToRoll(*ludo.GameState) error {
	p.readies++
	return nil
}

func (p *scriptedPlayer) ChooseToken(gs *ludo.GameState, legal []ludo.TokenID) (ludo.TokenID, error) {
	p.picks++
	if p.firstBad && p.picks == 1 {
		return ludo.TokenID{Color: gs.CurrentPlayer.Next(), Index: 0}, nil
	}
	return legal[len(legal)-1], nil
}

func TestPlay(t *testing.T) {
	var players [ludo.NumColors]*scriptedPlayer
	cfg := &Config{}
	for i := range players {
		players[i] = &scriptedPlayer{firstBad: i == 0}
		cfg.Players[i] = players[i]
	}

	var results, rejects int
	cfg.OnResult = func(*ludo.GameState, *ludo.Result) { results++ }
	cfg.OnReject = func(err error) {
		if !errors.Is(err, ludo.ErrIllegalIntent) {
			t.Errorf("rejected with %v, want ErrIllegalIntent", err)
		}
		rejects++
	}

	g, err := New(dice.New(rand.New(rand.NewSource(7))), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := g.Play()
	if err != nil {
		t.Fatalf("Play: %v", err)
	}

	snap := g.Snapshot()
	if snap.Finished(out.Winner) != ludo.TokensPerColor {
		t.Errorf("%s won with only %d tokens finished", out.Winner, snap.Finished(out.Winner))
	}
	readies := 0
	for _, p := range players {
		readies += p.readies
	}
	if readies != out.Rolls {
		t.Errorf("players were asked to roll %d times, but %d rolls happened", readies, out.Rolls)
	}
	if results < out.Rolls {
		t.Errorf("got %d results for %d rolls", results, out.Rolls)
	}
	if rejects != 1 {
		t.Errorf("got %d rejections, want 1", rejects)
	}
}

func TestNewValidatesPlayers(t *testing.T) {
	if _, err := New(&dice.Sequence{}, &Config{}); err == nil {
		t.Error("New with no players didn't fail")
	}
	if _, err := New(nil, &Config{}); err == nil {
		t.Error("New with no roller didn't fail")
	}
}

func newTestGame(setup func(*ludo.GameState), rolls ...int) (*Game, *ludo.GameState) {
	gs := ludo.NewGameState()
	if setup != nil {
		setup(gs)
	}
	seq := dice.Sequence(rolls)
	return NewForMove(gs, &seq), gs
}

func mustRoll(t *testing.T, g *Game) *ludo.Result {
	t.Helper()
	res, err := g.Roll()
	if err != nil {
		t.Fatalf("Roll: %v", err)
	}
	return res
}

func place(gs *ludo.GameState, id ludo.TokenID, idx int) {
	tok := gs.Token(id)
	tok.PathIndex = idx
	tok.Finished = idx == ludo.Finish
}

func finish(gs *ludo.GameState, id ludo.TokenID) {
	place(gs, id, ludo.Finish)
}

func allTokens(c ludo.Color) []ludo.TokenID {
	var out []ludo.TokenID
	for i := 0; i < ludo.TokensPerColor; i++ {
		out = append(out, ludo.TokenID{Color: c, Index: i})
	}
	return out
}

func checkState(t *testing.T, gs *ludo.GameState) {
	t.Helper()
	for _, c := range ludo.Colors {
		for _, tok := range gs.Tokens[c] {
			if tok.PathIndex < ludo.AtHome || tok.PathIndex > ludo.Finish {
				t.Fatalf("%s at path index %d", tok.ID, tok.PathIndex)
			}
			if tok.Finished != (tok.PathIndex == ludo.Finish) {
				t.Fatalf("%s finished=%t at %d", tok.ID, tok.Finished, tok.PathIndex)
			}
		}
	}
}
