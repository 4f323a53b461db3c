package engine

import "github.com/Mycellf/infinite-armada-chess/chess"

// promotionOrder lists the pieces a pawn may become, in the order they are
// presented to the player. ResolvePromotion takes a 1-based index into
// this list.
var promotionOrder = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// PromotionChoices returns the promotion options in presentation order.
// Interface layers can number them 1 through 4 and pass the player's pick
// straight to ResolvePromotion.
func PromotionChoices() []chess.Kind {
	out := make([]chess.Kind, len(promotionOrder))
	copy(out, promotionOrder)
	return out
}
