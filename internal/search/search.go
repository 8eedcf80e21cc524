// Package search backs the /buscar endpoint. With Elasticsearch
// configured it runs a fuzzy multi-field query against the product
// index; without it the repository's LIKE fallback answers.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/xablau3666/loja/internal/models"
	"github.com/xablau3666/loja/internal/repo"
)

const DefaultIndex = "products"

type Service struct {
	ES    *elasticsearch.Client // nil disables the ES path
	Index string
	Repo  *repo.GormRepo
}

func NewClient(url, user, password string) (*elasticsearch.Client, error) {
	if url == "" {
		return nil, nil
	}

	esCfg := elasticsearch.Config{
		Addresses: []string{url},
		Username:  user,
		Password:  password,
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("search: create client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("search: ping: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("search: ping: %s: %s", res.Status(), body)
	}

	return client, nil
}

func (s *Service) Search(ctx context.Context, query string) ([]models.Product, error) {
	if s.ES == nil {
		return s.Repo.SearchProducts(ctx, query)
	}

	body := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("search: encode query: %w", err)
	}

	res, err := s.ES.Search(
		s.ES.Search.WithContext(ctx),
		s.ES.Search.WithIndex(s.Index),
		s.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("search: decode response: %w", err)
	}

	prods := make([]models.Product, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		prods[i] = hit.Source
	}
	return prods, nil
}

// IndexProduct upserts the product document. Callers treat failures
// as best-effort: a stale index is acceptable, a failed request is not
// surfaced to the admin.
func (s *Service) IndexProduct(ctx context.Context, p *models.Product) error {
	if s.ES == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("search: encode product: %w", err)
	}

	res, err := s.ES.Index(
		s.Index,
		bytes.NewReader(data),
		s.ES.Index.WithDocumentID(fmt.Sprint(p.ID)),
		s.ES.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: index product: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("search: index product: %s", res.Status())
	}
	return nil
}

func (s *Service) RemoveProduct(ctx context.Context, id uint) error {
	if s.ES == nil {
		return nil
	}

	res, err := s.ES.Delete(
		s.Index,
		fmt.Sprint(id),
		s.ES.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: remove product: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("search: remove product: %s", res.Status())
	}
	return nil
}
