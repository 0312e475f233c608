package es

import (
	"ProductLobby/internal/model"
	"context"
	"errors"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/versiontype"
	"github.com/goccy/go-json"
)

const MaxSearchDepth = 400

type CampaignRepo interface {
	// SearchCampaigns 关键词检索上线中的活动，标题权重高于描述
	SearchCampaigns(ctx context.Context, keyword string, from, size int) ([]*CampaignES, error)
	GetSuggestions(ctx context.Context, keyword string) ([]string, error)
	IndexCampaign(ctx context.Context, campaign *CampaignES, version int64) error
	DeleteCampaign(ctx context.Context, id uint64) error
}

type CampaignRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewCampaignRepo(client *elasticsearch.TypedClient) CampaignRepo {
	return &CampaignRepoImpl{client: client}
}

func (s *CampaignRepoImpl) SearchCampaigns(ctx context.Context, keyword string, from, size int) ([]*CampaignES, error) {
	if from >= MaxSearchDepth {
		return []*CampaignES{}, nil
	}

	req := s.client.Search().Index(CampaignIndex).From(from).Size(size)

	boolQuery := &types.BoolQuery{
		Filter: []types.Query{
			{Term: map[string]types.TermQuery{"status": {Value: model.CampaignStatusLive}}},
		},
		Must: []types.Query{
			{MultiMatch: &types.MultiMatchQuery{
				Query:  keyword,
				Fields: []string{"title^2", "description"},
			}},
		},
	}

	req = req.Query(&types.Query{Bool: boolQuery}).
		Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
			"_score":        {Order: &sortorder.Desc},
			"lobbies_count": {Order: &sortorder.Desc},
		}})

	return s.executeSearch(ctx, req)
}

// GetSuggestions 搜索框输入联想，基于标题前缀匹配
func (s *CampaignRepoImpl) GetSuggestions(ctx context.Context, keyword string) ([]string, error) {
	req := s.client.Search().Index(CampaignIndex).Size(8).
		Query(&types.Query{
			Bool: &types.BoolQuery{
				Filter: []types.Query{
					{Term: map[string]types.TermQuery{"status": {Value: model.CampaignStatusLive}}},
				},
				Must: []types.Query{
					{MatchPhrasePrefix: map[string]types.MatchPhrasePrefixQuery{
						"title": {Query: keyword},
					}},
				},
			},
		})

	campaigns, err := s.executeSearch(ctx, req)
	if err != nil {
		return nil, err
	}

	suggestions := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		suggestions = append(suggestions, c.Title)
	}
	return suggestions, nil
}

func (s *CampaignRepoImpl) IndexCampaign(ctx context.Context, campaign *CampaignES, version int64) error {
	docID := strconv.FormatUint(campaign.ID, 10)

	_, err := s.client.Index(CampaignIndex).
		Id(docID).
		Document(campaign).
		Version(strconv.FormatInt(version, 10)).
		VersionType(versiontype.External).
		Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == ConflictCode {
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *CampaignRepoImpl) DeleteCampaign(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)

	_, err := s.client.Delete(CampaignIndex, docID).Do(ctx)

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

func (s *CampaignRepoImpl) executeSearch(ctx context.Context, req *search.Search) ([]*CampaignES, error) {
	resp, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	campaigns := make([]*CampaignES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var campaign CampaignES
		if err = json.Unmarshal(hit.Source_, &campaign); err != nil {
			continue
		}
		campaigns = append(campaigns, &campaign)
	}
	return campaigns, nil
}
