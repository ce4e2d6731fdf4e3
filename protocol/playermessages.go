package protocol

import (
	"encoding/json"
	"fmt"
)

// PlayerInfo is the public view of a player
type PlayerInfo struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// Event is something that happened at the table, emitted by the round engine
type Event struct {
	Command   Cmd    `json:"command"`
	Round     int    `json:"round"`
	PlayerID  string `json:"playerID,omitempty"`
	Name      string `json:"name,omitempty"`
	Card      string `json:"card,omitempty"`
	Suit      string `json:"suit,omitempty"`
	Count     int    `json:"count,omitempty"`
	HandSize  int    `json:"handSize"`
	Direction int    `json:"direction,omitempty"`
}

// RoundSummary is the outcome of one round
type RoundSummary struct {
	Round     int            `json:"round"`
	WinnerID  string         `json:"winnerID,omitempty"`
	Stalemate bool           `json:"stalemate"`
	Deltas    map[string]int `json:"deltas"`
}

type Cmd int

const (
	Null Cmd = iota
	RoundStarted
	PlayCard  // a card left a hand for the discard pile
	DrawCard  // a card moved from the draw pile to a hand
	SkipTurn  // a player sat out a turn
	Wish      // a suit was wished for with a Jack
	Reverse   // direction of play changed
	ChainPlay // a Seven or Joker was answered
	Penalty   // accumulated chain cards were drawn
	Reclaim   // the discard pile was shuffled back into the draw pile
	RoundOver
	Stalemate
)

var CmdNames = map[Cmd]string{
	Null:         "Null",
	RoundStarted: "RoundStarted",
	PlayCard:     "PlayCard",
	DrawCard:     "DrawCard",
	SkipTurn:     "SkipTurn",
	Wish:         "Wish",
	Reverse:      "Reverse",
	ChainPlay:    "ChainPlay",
	Penalty:      "Penalty",
	Reclaim:      "Reclaim",
	RoundOver:    "RoundOver",
	Stalemate:    "Stalemate",
}

var NameToCmd = map[string]Cmd{
	"Null":         Null,
	"RoundStarted": RoundStarted,
	"PlayCard":     PlayCard,
	"DrawCard":     DrawCard,
	"SkipTurn":     SkipTurn,
	"Wish":         Wish,
	"Reverse":      Reverse,
	"ChainPlay":    ChainPlay,
	"Penalty":      Penalty,
	"Reclaim":      Reclaim,
	"RoundOver":    RoundOver,
	"Stalemate":    Stalemate,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

func (c Cmd) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Cmd) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	cmd, ok := NameToCmd[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	*c = cmd
	return nil
}
