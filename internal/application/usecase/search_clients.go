package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/bnema/wring/internal/domain/entity"
	"github.com/bnema/wring/internal/logging"
)

// SearchClientsUseCase handles fuzzy lookup of managed clients by class
// and title.
type SearchClientsUseCase struct {
	desktop *entity.Desktop
}

// NewSearchClientsUseCase creates a new client search use case.
func NewSearchClientsUseCase(desktop *entity.Desktop) *SearchClientsUseCase {
	return &SearchClientsUseCase{desktop: desktop}
}

// ClientMatch is one ranked search result. Lower distance is a closer
// match.
type ClientMatch struct {
	Client   *entity.Client
	Distance int
}

// SearchClientsInput contains search parameters.
type SearchClientsInput struct {
	Query string
	Limit int
}

// SearchClientsOutput contains ranked search results.
type SearchClientsOutput struct {
	Matches []ClientMatch
}

// Search ranks managed clients against the query with fuzzy matching over
// "class title". Results come back best first; ties keep desktop order.
func (uc *SearchClientsUseCase) Search(ctx context.Context, input SearchClientsInput) *SearchClientsOutput {
	log := logging.FromContext(ctx)

	query := strings.TrimSpace(input.Query)
	if query == "" {
		return &SearchClientsOutput{Matches: []ClientMatch{}}
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	clients := uc.desktop.Clients()
	targets := make([]string, len(clients))
	for i, c := range clients {
		targets[i] = searchTarget(c)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	matches := make([]ClientMatch, 0, len(ranks))
	for _, rank := range ranks {
		if len(matches) == limit {
			break
		}
		matches = append(matches, ClientMatch{
			Client:   clients[rank.OriginalIndex],
			Distance: rank.Distance,
		})
	}

	log.Debug().
		Str("query", query).
		Int("matches", len(matches)).
		Msg("ranked client search")

	return &SearchClientsOutput{Matches: matches}
}

// Best returns the closest match for the query, if any.
func (uc *SearchClientsUseCase) Best(ctx context.Context, query string) (*entity.Client, bool) {
	out := uc.Search(ctx, SearchClientsInput{Query: query, Limit: 1})
	if len(out.Matches) == 0 {
		return nil, false
	}
	return out.Matches[0].Client, true
}

// searchTarget builds the string a client is ranked on.
func searchTarget(c *entity.Client) string {
	return strings.TrimSpace(c.Class + " " + c.Title)
}
