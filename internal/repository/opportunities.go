// internal/repository/opportunities.go

package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"career-workers/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
)

var (
	ErrIndexNotFound = errors.New("opportunity index not found")
	ErrSearchFailed  = errors.New("opportunity search failed")
	// ErrSearchUnavailable means the cluster could not be reached at all.
	ErrSearchUnavailable = errors.New("opportunity search unavailable")
)

const (
	defaultSearchSize = 20
	maxSearchSize     = 100
)

// OpportunityQuery narrows an opportunity search. Empty fields do not filter.
type OpportunityQuery struct {
	Keywords string
	Career   string
	Industry string
	AreaType string
	Size     int
}

// OpportunityHit is one search result with its raw relevance score.
type OpportunityHit struct {
	Opportunity models.Opportunity
	Score       float64
}

type SearchResult struct {
	Hits      []OpportunityHit
	TotalHits int64
	MaxScore  float64
}

type OpportunityStore struct {
	client *elasticsearch.Client
	index  string
}

func NewOpportunityStore(client *elasticsearch.Client, index string) *OpportunityStore {
	return &OpportunityStore{client: client, index: index}
}

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		MaxScore *float64 `json:"max_score"`
		Hits     []struct {
			ID     string             `json:"_id"`
			Score  *float64           `json:"_score"`
			Source models.Opportunity `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search runs a bool query against the opportunity index.
func (s *OpportunityStore) Search(ctx context.Context, q OpportunityQuery) (*SearchResult, error) {
	body, err := json.Marshal(BuildOpportunityQuery(q))
	if err != nil {
		return nil, fmt.Errorf("%w: encode query: %v", ErrSearchFailed, err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(body)),
		s.client.Search.WithSize(searchSize(q.Size)),
		s.client.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, s.index)
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrSearchFailed, res.Status())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrSearchFailed, err)
	}

	out := &SearchResult{
		Hits:      make([]OpportunityHit, 0, len(parsed.Hits.Hits)),
		TotalHits: parsed.Hits.Total.Value,
	}
	if parsed.Hits.MaxScore != nil {
		out.MaxScore = *parsed.Hits.MaxScore
	}
	for _, h := range parsed.Hits.Hits {
		opp := h.Source
		if opp.ID == "" {
			opp.ID = h.ID
		}
		hit := OpportunityHit{Opportunity: opp}
		if h.Score != nil {
			hit.Score = *h.Score
		}
		out.Hits = append(out.Hits, hit)
	}
	return out, nil
}

func searchSize(n int) int {
	switch {
	case n <= 0:
		return defaultSearchSize
	case n > maxSearchSize:
		return maxSearchSize
	default:
		return n
	}
}

// BuildOpportunityQuery renders q as an Elasticsearch request body.
func BuildOpportunityQuery(q OpportunityQuery) map[string]interface{} {
	must := []interface{}{}
	filter := []interface{}{}

	if q.Keywords != "" {
		must = append(must, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  q.Keywords,
				"fields": []string{"title^3", "career^2", "industry"},
				"type":   "best_fields",
			},
		})
	}
	if len(must) == 0 {
		must = append(must, map[string]interface{}{"match_all": map[string]interface{}{}})
	}

	for _, term := range [][2]string{
		{"career", q.Career},
		{"industry", q.Industry},
		{"areaType", q.AreaType},
	} {
		if term[1] != "" {
			filter = append(filter, map[string]interface{}{
				"term": map[string]interface{}{term[0]: term[1]},
			})
		}
	}

	boolQuery := map[string]interface{}{"must": must}
	if len(filter) > 0 {
		boolQuery["filter"] = filter
	}

	return map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
	}
}
