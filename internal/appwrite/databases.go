package appwrite

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Databases exposes the document CRUD surface of the Appwrite Databases API
// for a single database
type Databases struct {
	client     *Client
	databaseID string
}

// NewDatabases creates a Databases service bound to one database
func NewDatabases(client *Client, databaseID string) *Databases {
	return &Databases{client: client, databaseID: databaseID}
}

// UniqueID asks the server to assign the document id on creation
const UniqueID = "unique()"

func (d *Databases) documentsPath(collectionID string) string {
	return fmt.Sprintf("/databases/%s/collections/%s/documents", d.databaseID, collectionID)
}

// GetDocument fetches a single document by id and decodes it into out
func (d *Databases) GetDocument(ctx context.Context, collectionID, documentID string, out interface{}) error {
	path := d.documentsPath(collectionID) + "/" + documentID
	return d.client.call(ctx, http.MethodGet, path, nil, nil, out)
}

// CreateDocument creates a document with a server-assigned id and decodes the
// stored representation into out
func (d *Databases) CreateDocument(ctx context.Context, collectionID string, data interface{}, out interface{}) error {
	body := map[string]interface{}{
		"documentId": UniqueID,
		"data":       data,
	}
	return d.client.call(ctx, http.MethodPost, d.documentsPath(collectionID), nil, body, out)
}

// UpdateDocument applies a partial update to a document and decodes the new
// stored representation into out
func (d *Databases) UpdateDocument(ctx context.Context, collectionID, documentID string, data interface{}, out interface{}) error {
	path := d.documentsPath(collectionID) + "/" + documentID
	body := map[string]interface{}{"data": data}
	return d.client.call(ctx, http.MethodPatch, path, nil, body, out)
}

// DeleteDocument removes a document by id
func (d *Databases) DeleteDocument(ctx context.Context, collectionID, documentID string) error {
	path := d.documentsPath(collectionID) + "/" + documentID
	return d.client.call(ctx, http.MethodDelete, path, nil, nil, nil)
}

// ListDocuments lists documents matching the given queries and decodes the
// {total, documents} page into out
func (d *Databases) ListDocuments(ctx context.Context, collectionID string, queries []string, out interface{}) error {
	values := url.Values{}
	for _, q := range queries {
		values.Add("queries[]", q)
	}
	return d.client.call(ctx, http.MethodGet, d.documentsPath(collectionID), values, nil, out)
}
