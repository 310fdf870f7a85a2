package study

import "github.com/heartmarshall/tango-backend/internal/domain"

// ResolveFace picks the card face to show for w.
//
// The preferred face wins when it has content. Otherwise the first populated
// face in domain.CardFaceOrder is used, and the term face when none is.
func ResolveFace(w domain.Word, preferred domain.CardFace) domain.CardFace {
	if preferred.IsValid() && w.Face(preferred) != "" {
		return preferred
	}
	for _, f := range domain.CardFaceOrder {
		if f == preferred {
			continue
		}
		if w.Face(f) != "" {
			return f
		}
	}
	return domain.CardFaceTerm
}
