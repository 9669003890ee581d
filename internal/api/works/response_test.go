package works

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSerializeDoc_MovesNativeIDToStringField(t *testing.T) {
	id := primitive.NewObjectID()
	doc := bson.M{
		"_id":   id,
		"title": "Glass Pavilion",
	}

	out := serializeDoc(doc)

	if _, leaked := out["_id"]; leaked {
		t.Fatal("native _id field leaked into wire document")
	}
	got, ok := out["id"].(string)
	if !ok {
		t.Fatalf("id is %T, expected string", out["id"])
	}
	if got != id.Hex() {
		t.Fatalf("expected id %s, got %s", id.Hex(), got)
	}
	if out["title"] != "Glass Pavilion" {
		t.Fatalf("title changed: %v", out["title"])
	}
}

func TestSerializeDoc_ConvertsIDsInsideArrays(t *testing.T) {
	ref1 := primitive.NewObjectID()
	ref2 := primitive.NewObjectID()
	doc := bson.M{
		"_id":     primitive.NewObjectID(),
		"related": primitive.A{ref1, ref2, "plain"},
		"owner":   ref1,
	}

	out := serializeDoc(doc)

	related, ok := out["related"].([]interface{})
	if !ok {
		t.Fatalf("related is %T, expected []interface{}", out["related"])
	}
	if related[0] != ref1.Hex() || related[1] != ref2.Hex() {
		t.Fatalf("array identifiers not rendered: %v", related)
	}
	if related[2] != "plain" {
		t.Fatalf("non-identifier array element changed: %v", related[2])
	}
	if out["owner"] != ref1.Hex() {
		t.Fatalf("top-level identifier not rendered: %v", out["owner"])
	}
}

func TestSerializeDoc_NilAndMissingID(t *testing.T) {
	if serializeDoc(nil) != nil {
		t.Fatal("expected nil for nil document")
	}

	out := serializeDoc(bson.M{"title": "Untitled"})
	if _, ok := out["id"]; ok {
		t.Fatal("id synthesized for a document without _id")
	}
	if out["title"] != "Untitled" {
		t.Fatalf("title changed: %v", out["title"])
	}
}
