package es

import (
	"context"
	"errors"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/goccy/go-json"

	"mysonai/internal/pkg/util"
)

type BlogSearchRepo interface {
	Search(ctx context.Context, queryText string, from, size int) ([]*BlogES, error)
	SearchByTag(ctx context.Context, tag string, from, size int) ([]*BlogES, error)
	IndexPost(ctx context.Context, post *BlogES) error
	DeletePost(ctx context.Context, id uint64) error
}

type BlogSearchRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewBlogSearchRepo(client *elasticsearch.TypedClient) BlogSearchRepo {
	return &BlogSearchRepoImpl{client: client}
}

func (s *BlogSearchRepoImpl) Search(ctx context.Context, queryText string, from, size int) ([]*BlogES, error) {
	if queryText == "" {
		return []*BlogES{}, nil
	}

	searchReq := s.client.Search().
		Index(BlogIndex).
		Query(&types.Query{
			Bool: &types.BoolQuery{
				Should: []types.Query{
					{
						MultiMatch: &types.MultiMatchQuery{
							Query:  queryText,
							Fields: []string{"title^3", "summary^2", "content", "tags^3"},
							Boost:  util.PtrFloat32(2.0),
						},
					},
					{
						MultiMatch: &types.MultiMatchQuery{
							Query:     queryText,
							Fields:    []string{"title", "content"},
							Fuzziness: util.PtrStr("AUTO"),
							Boost:     util.PtrFloat32(0.5),
						},
					},
				},
			},
		}).
		From(from).
		Size(size)

	return s.executeSearch(ctx, searchReq)
}

func (s *BlogSearchRepoImpl) SearchByTag(ctx context.Context, tag string, from, size int) ([]*BlogES, error) {
	searchReq := s.client.Search().
		Index(BlogIndex).
		Query(&types.Query{
			Term: map[string]types.TermQuery{
				"tags": {Value: tag},
			},
		}).
		Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
			"published_at": {Order: &sortorder.Desc},
		}}).
		From(from).
		Size(size)

	return s.executeSearch(ctx, searchReq)
}

func (s *BlogSearchRepoImpl) IndexPost(ctx context.Context, post *BlogES) error {
	docID := strconv.FormatUint(post.ID, 10)

	_, err := s.client.Index(BlogIndex).
		Id(docID).
		Document(post).
		Do(ctx)
	return err
}

func (s *BlogSearchRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)

	_, err := s.client.Delete(BlogIndex, docID).Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *BlogSearchRepoImpl) executeSearch(ctx context.Context, req *search.Search) ([]*BlogES, error) {
	resp, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*BlogES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		if hit.Source_ == nil {
			continue
		}
		var post BlogES
		if err = json.Unmarshal(hit.Source_, &post); err != nil {
			continue
		}
		results = append(results, &post)
	}
	return results, nil
}
