package cards

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListFilter builds the Mongo filter for the card list query. Every query is
// restricted to the fixed game tag; a non-empty search adds a case-insensitive
// substring match over name, cleanName, and code. The search text is quoted so
// regex metacharacters in user input are matched literally.
func ListFilter(game, search string) bson.M {
	filter := bson.M{"game": game}

	search = strings.TrimSpace(search)
	if search == "" {
		return filter
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	filter["$or"] = bson.A{
		bson.M{"name": pattern},
		bson.M{"cleanName": pattern},
		bson.M{"code": pattern},
	}
	return filter
}

// DetailFilter builds the Mongo filter for a single-card lookup.
func DetailFilter(game, remoteID string) bson.M {
	return bson.M{"game": game, "remoteId": remoteID}
}
