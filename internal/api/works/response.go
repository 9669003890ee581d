package works

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// serializeDoc renders a store document for the wire: the native _id is
// re-exposed as a hex string under "id" and removed, and every other
// native identifier value, including ones embedded in arrays, is rendered
// element-wise to its string form. No native representation leaks.
func serializeDoc(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}
	out := make(bson.M, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = serializeValue(v)
	}
	if id, ok := doc["_id"].(primitive.ObjectID); ok {
		out["id"] = id.Hex()
	}
	return out
}

func serializeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.A:
		items := make([]interface{}, len(t))
		for i, e := range t {
			items[i] = serializeValue(e)
		}
		return items
	case []interface{}:
		items := make([]interface{}, len(t))
		for i, e := range t {
			items[i] = serializeValue(e)
		}
		return items
	}
	return v
}
