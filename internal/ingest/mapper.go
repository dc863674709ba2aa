package ingest

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/riftbounddb/backend/internal/cards"
)

// MapCard converts one catalog record into the stored card shape, keyed by
// the fixed game tag plus the source's own id.
func MapCard(src CatalogCard) *cards.Card {
	card := &cards.Card{
		Game:     cards.Game,
		RemoteID: src.ID,

		Code:      src.Code,
		Number:    src.Number,
		Name:      src.Name,
		CleanName: src.CleanName,

		Rarity:     src.Rarity,
		CardType:   src.CardType,
		Domain:     src.Domain,
		EnergyCost: src.EnergyCost,
		PowerCost:  src.PowerCost,
		Might:      src.Might,

		Description: src.Description,
		FlavorText:  src.FlavorText,

		ModifiedOn: src.ModifiedOn,
	}

	if src.Images != nil {
		card.Images = &cards.Images{Small: src.Images.Small, Large: src.Images.Large}
	}
	if src.Set != nil {
		card.Set = &cards.SetInfo{ID: src.Set.ID, Name: src.Set.Name, ReleaseDate: src.Set.ReleaseDate}
	}
	if src.TCGPlayer != nil {
		card.TCGPlayer = &cards.TCGPlayer{ID: src.TCGPlayer.ID, URL: src.TCGPlayer.URL}
	}
	if src.PresaleInfo != nil {
		card.PresaleInfo = &cards.PresaleInfo{
			IsPresale:  src.PresaleInfo.IsPresale,
			ReleasedOn: src.PresaleInfo.ReleasedOn,
			Note:       src.PresaleInfo.Note,
		}
	}

	if len(src.raw) > 0 {
		card.Raw = bson.M(src.raw)
	}

	return card
}
