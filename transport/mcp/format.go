package mcp

import (
	"fmt"
	"strings"

	"github.com/wricardo/klondike-solitaire/game/engine"
	"github.com/wricardo/klondike-solitaire/game/service"
)

const faceDown = "##"

func cardText(card engine.Card) string {
	if !card.FaceUp {
		return faceDown
	}
	return card.String()
}

func topText(pile []engine.Card) string {
	if len(pile) == 0 {
		return "--"
	}
	return cardText(pile[len(pile)-1])
}

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatSessionList(count int, sessions []service.SessionInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n\n", count)
	for _, s := range sessions {
		progress := ""
		if s.GameState != nil {
			progress = fmt.Sprintf(", Foundations: %d/%d", engine.CountFoundationCards(s.GameState), engine.DeckSize)
			if s.GameState.Won {
				progress += ", WON"
			}
		}
		fmt.Fprintf(&b, "- %s (Config: %s, Created: %s%s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"), progress)
	}
	return b.String()
}

// formatGameState renders the board as text. Face-down cards show as ##,
// tableau piles list bottom to top with their indices.
func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Seed: %d | Moves: %d | Foundations: %d/%d\n\n",
		state.Seed, state.TotalMoves, engine.CountFoundationCards(state), engine.DeckSize)

	fmt.Fprintf(&b, "Stock: %d card(s) | Waste: %s (%d)\n", len(state.Stock), topText(state.Waste), len(state.Waste))

	b.WriteString("Foundations:")
	for i, pile := range state.Foundations {
		fmt.Fprintf(&b, " [%d] %s", i, topText(pile))
	}
	b.WriteString("\n\nTableau:\n")

	for i, pile := range state.Tableau {
		fmt.Fprintf(&b, "  %d:", i)
		if len(pile) == 0 {
			b.WriteString(" (empty)")
		}
		for _, card := range pile {
			b.WriteString(" " + cardText(card))
		}
		b.WriteString("\n")
	}

	if state.Selection != nil {
		fmt.Fprintf(&b, "\nSelected: %s", state.Selection)
		if cards := state.SelectedCards(*state.Selection); len(cards) > 0 {
			names := make([]string, len(cards))
			for i, card := range cards {
				names[i] = card.String()
			}
			fmt.Fprintf(&b, " (%s)", strings.Join(names, " "))
		}
		b.WriteString("\n")
	}

	if state.Won {
		b.WriteString("\n🎉 VICTORY!\n")
	}

	if state.Status != "" {
		fmt.Fprintf(&b, "\nStatus: %s", state.Status)
	}

	return b.String()
}

func formatCommandResult(result *service.CommandResult) string {
	var b strings.Builder

	if result.Success {
		b.WriteString("✅ ")
	} else {
		b.WriteString("❌ Rejected")
		if result.Move != nil {
			fmt.Fprintf(&b, " (%s)", result.Move.Action)
		}
		b.WriteString(": the board is unchanged. ")
	}
	if result.Message != "" {
		b.WriteString(result.Message)
	}
	b.WriteString("\n")

	for _, event := range result.Events {
		if event.Type == "rejected" {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", event.Type, event.Message)
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Move History (Page %d/%d, Total: %d moves)\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	for _, move := range history.Moves {
		status := "OK"
		if !move.Success {
			status = "REJECTED"
		}
		fmt.Fprintf(&b, "#%d %s", move.MoveNumber, move.Action)
		if move.From != nil {
			fmt.Fprintf(&b, " from %s", move.From)
		}
		if move.To != nil {
			fmt.Fprintf(&b, " to %s", move.To)
		}
		if move.Cards > 0 {
			fmt.Fprintf(&b, " (%d card(s))", move.Cards)
		}
		if move.AutoFlip {
			b.WriteString(" +flip")
		}
		fmt.Fprintf(&b, " [%s]\n", status)
	}

	if history.HasNext {
		fmt.Fprintf(&b, "\nMore moves on page %d", history.Page+1)
	}
	return b.String()
}

func formatConfigs(configs []service.ConfigInfo) string {
	var b strings.Builder
	b.WriteString("Available Configurations:\n\n")
	for _, cfg := range configs {
		fmt.Fprintf(&b, "- %s: %s\n", cfg.ConfigID, cfg.Description)
		if cfg.AllowPlayAfterWin {
			b.WriteString("  play continues after a win\n")
		}
		if cfg.FixedSeed {
			b.WriteString("  every deal uses the same seed\n")
		}
	}
	return b.String()
}

// describePile lists one pile card by card, bottom first
func describePile(state *engine.GameState, kind engine.PileKind, pile int) (string, error) {
	var cards []engine.Card
	switch kind {
	case engine.Stock:
		cards = state.Stock
	case engine.Waste:
		cards = state.Waste
	case engine.Foundation:
		if pile < 0 || pile >= len(state.Foundations) {
			return "", fmt.Errorf("foundation %d out of range 0-%d", pile, len(state.Foundations)-1)
		}
		cards = state.Foundations[pile]
	case engine.Tableau:
		if pile < 0 || pile >= len(state.Tableau) {
			return "", fmt.Errorf("tableau %d out of range 0-%d", pile, len(state.Tableau)-1)
		}
		cards = state.Tableau[pile]
	}

	ref := engine.PileRef{Kind: kind, Pile: pile, Card: engine.NoCard}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d card(s)\n", ref, len(cards))
	for i, card := range cards {
		if card.FaceUp {
			fmt.Fprintf(&b, "  [%d] %s (%s)\n", i, card, card.Color())
		} else {
			fmt.Fprintf(&b, "  [%d] %s face down\n", i, faceDown)
		}
	}
	return b.String(), nil
}

const instructions = `🃏 Klondike Solitaire - Complete Instructions

GAME OBJECTIVE:
Move all 52 cards onto the four foundations, each built up by suit from Ace to King.

THE LAYOUT:
• Stock: face-down draw pile (24 cards after the deal)
• Waste: face-up cards drawn from the stock; only the top card is playable
• Foundations 0-3: start empty, any suit may claim an empty foundation with its Ace
• Tableau 0-6: pile i starts with i+1 cards, only the top one face up

BOARD NOTATION:
• Cards show as rank + suit, e.g. 10♥, K♠, A♦
• ## is a face-down card, -- is an empty pile
• Tableau piles are listed bottom to top; card indices start at 0 at the bottom

MOVE RULES:
• Foundation: a single card, Ace onto an empty foundation, otherwise the same suit one rank higher
• Tableau: a King (or a run headed by a King) onto an empty pile, otherwise a card one rank lower and of the opposite color
• Any face-up card in a tableau pile can be selected; the cards above it move with it
• Moving cards off a tableau pile turns its new top card face up automatically
• Clicking the stock draws one card; when the stock is empty it recycles the waste in its original order

SELECTING AND MOVING:
1. select a source (waste, a foundation top, or a face-up tableau card)
2. select a destination, or call move_to_foundation / move_to_tableau
3. Clicking the selected card again clears the selection
4. A rejected move leaves the board exactly as it was

STRATEGY TIPS:
• Prefer moves that turn over face-down tableau cards
• Free empty piles only when a King is ready to fill them
• Do not rush cards to the foundations if they are still needed as tableau targets
• Use describe_pile to read a long pile card by card

VICTORY CONDITIONS:
The game is won when all 52 cards are on the foundations. Depending on the preset, commands are locked after a win until reset_game.

Good luck!`
