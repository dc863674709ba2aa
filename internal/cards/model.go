package cards

import "go.mongodb.org/mongo-driver/bson"

// Game is the fixed catalog tag every stored card belongs to.
const Game = "riftbound"

// Card mirrors one record of the source catalog. Field names match the wire
// shape the web client consumes; bson names match so documents round-trip
// without a mapping layer.
type Card struct {
	Game     string `bson:"game" json:"game"`
	RemoteID string `bson:"remoteId" json:"remoteId"`

	Code      string `bson:"code,omitempty" json:"code,omitempty"`
	Number    string `bson:"number,omitempty" json:"number,omitempty"`
	Name      string `bson:"name,omitempty" json:"name,omitempty"`
	CleanName string `bson:"cleanName,omitempty" json:"cleanName,omitempty"`

	Rarity     string `bson:"rarity,omitempty" json:"rarity,omitempty"`
	CardType   string `bson:"cardType,omitempty" json:"cardType,omitempty"`
	Domain     string `bson:"domain,omitempty" json:"domain,omitempty"`
	EnergyCost string `bson:"energyCost,omitempty" json:"energyCost,omitempty"`
	PowerCost  string `bson:"powerCost,omitempty" json:"powerCost,omitempty"`
	Might      string `bson:"might,omitempty" json:"might,omitempty"`

	Description string `bson:"description,omitempty" json:"description,omitempty"`
	FlavorText  string `bson:"flavorText,omitempty" json:"flavorText,omitempty"`

	Images      *Images      `bson:"images,omitempty" json:"images,omitempty"`
	Set         *SetInfo     `bson:"set,omitempty" json:"set,omitempty"`
	TCGPlayer   *TCGPlayer   `bson:"tcgplayer,omitempty" json:"tcgplayer,omitempty"`
	PresaleInfo *PresaleInfo `bson:"presaleInfo,omitempty" json:"presaleInfo,omitempty"`

	ModifiedOn string `bson:"modifiedOn,omitempty" json:"modifiedOn,omitempty"`

	// Raw keeps the complete source payload verbatim so schema drift upstream
	// never loses data. Opaque on purpose.
	Raw bson.M `bson:"raw,omitempty" json:"raw,omitempty"`
}

type Images struct {
	Small string `bson:"small,omitempty" json:"small,omitempty"`
	Large string `bson:"large,omitempty" json:"large,omitempty"`
}

type SetInfo struct {
	ID          string `bson:"id,omitempty" json:"id,omitempty"`
	Name        string `bson:"name,omitempty" json:"name,omitempty"`
	ReleaseDate string `bson:"releaseDate,omitempty" json:"releaseDate,omitempty"`
}

type TCGPlayer struct {
	ID  int    `bson:"id,omitempty" json:"id,omitempty"`
	URL string `bson:"url,omitempty" json:"url,omitempty"`
}

type PresaleInfo struct {
	IsPresale  *bool  `bson:"isPresale,omitempty" json:"isPresale,omitempty"`
	ReleasedOn string `bson:"releasedOn,omitempty" json:"releasedOn,omitempty"`
	Note       string `bson:"note,omitempty" json:"note,omitempty"`
}
