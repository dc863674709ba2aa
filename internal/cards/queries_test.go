package cards

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListFilterWithoutSearch(t *testing.T) {
	filter := ListFilter(Game, "")
	if filter["game"] != Game {
		t.Fatalf("expected game filter %q, got %v", Game, filter["game"])
	}
	if _, ok := filter["$or"]; ok {
		t.Fatal("expected no $or clause without search text")
	}

	filter = ListFilter(Game, "   ")
	if _, ok := filter["$or"]; ok {
		t.Fatal("expected whitespace-only search to be ignored")
	}
}

func TestListFilterSearchFields(t *testing.T) {
	filter := ListFilter(Game, "jinx")

	clauses, ok := filter["$or"].(bson.A)
	if !ok {
		t.Fatalf("expected $or clause, got %T", filter["$or"])
	}
	if len(clauses) != 3 {
		t.Fatalf("expected 3 search fields, got %d", len(clauses))
	}

	fields := map[string]bool{}
	for _, clause := range clauses {
		m, ok := clause.(bson.M)
		if !ok {
			t.Fatalf("unexpected clause type %T", clause)
		}
		for field, value := range m {
			fields[field] = true
			rx, ok := value.(primitive.Regex)
			if !ok {
				t.Fatalf("expected regex for %s, got %T", field, value)
			}
			if rx.Pattern != "jinx" {
				t.Fatalf("unexpected pattern %q", rx.Pattern)
			}
			if rx.Options != "i" {
				t.Fatalf("expected case-insensitive match, got options %q", rx.Options)
			}
		}
	}
	for _, field := range []string{"name", "cleanName", "code"} {
		if !fields[field] {
			t.Fatalf("expected search over %s", field)
		}
	}
}

func TestListFilterQuotesRegexMetacharacters(t *testing.T) {
	filter := ListFilter(Game, "OGN-045 (alt)")

	clauses := filter["$or"].(bson.A)
	rx := clauses[0].(bson.M)["name"].(primitive.Regex)
	if rx.Pattern != `OGN-045 \(alt\)` {
		t.Fatalf("expected quoted pattern, got %q", rx.Pattern)
	}
}

func TestDetailFilter(t *testing.T) {
	filter := DetailFilter(Game, "rb-001")
	if filter["game"] != Game || filter["remoteId"] != "rb-001" {
		t.Fatalf("unexpected filter %v", filter)
	}
}
