package appwrite

import "encoding/json"

// queryNode is the JSON query shape the Appwrite Databases API accepts in the
// queries[] parameter (API version 1.4+)
type queryNode struct {
	Method    string        `json:"method"`
	Attribute string        `json:"attribute,omitempty"`
	Values    []interface{} `json:"values,omitempty"`
}

func encodeQuery(node queryNode) string {
	// The node marshals unconditionally; there is nothing in it that can fail.
	raw, _ := json.Marshal(node)
	return string(raw)
}

// QueryEqual matches documents whose attribute equals any of the given values
func QueryEqual(attribute string, values ...interface{}) string {
	return encodeQuery(queryNode{Method: "equal", Attribute: attribute, Values: values})
}

// QueryOrderDesc sorts results by attribute, newest first
func QueryOrderDesc(attribute string) string {
	return encodeQuery(queryNode{Method: "orderDesc", Attribute: attribute})
}

// QueryLimit caps the number of returned documents
func QueryLimit(limit int) string {
	return encodeQuery(queryNode{Method: "limit", Values: []interface{}{limit}})
}

// QuerySelect restricts returned documents to the given attributes
func QuerySelect(attributes ...string) string {
	values := make([]interface{}, 0, len(attributes))
	for _, attr := range attributes {
		values = append(values, attr)
	}
	return encodeQuery(queryNode{Method: "select", Values: values})
}
