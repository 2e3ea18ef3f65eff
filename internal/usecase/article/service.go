package article

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/conduit-labs/conduit/domain"
)

// Service assembles the article aggregate out of the article store, the tag
// reconciler and the favorite/follow ledgers. It holds no state of its own;
// every operation is a bounded sequence of store calls with no transaction
// spanning them, so a failure partway through Create can leave a base row
// with some or none of its tag associations (see the repository docs).
type Service struct {
	articleRepo  domain.ArticleRepository
	tagRepo      domain.TagRepository
	favoriteRepo domain.FavoriteRepository
	userRepo     domain.UserRepository
	bloomRepo    domain.BloomRepository
}

var _ domain.ArticleUsecase = (*Service)(nil)

// NewService will create a new article service object
func NewService(a domain.ArticleRepository, t domain.TagRepository, f domain.FavoriteRepository,
	u domain.UserRepository, b domain.BloomRepository) *Service {
	return &Service{
		articleRepo:  a,
		tagRepo:      t,
		favoriteRepo: f,
		userRepo:     u,
		bloomRepo:    b,
	}
}

// dedupeNames drops repeated tag names (exact match), keeping first-seen
// order; this order is what the response tag list carries.
func dedupeNames(names []string) []string {
	res := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		res = append(res, name)
	}
	return res
}

func (s *Service) Create(ctx context.Context, authorID int64, title, description, body string, tagNames []string) (domain.Article, error) {
	if title == "" || description == "" || body == "" {
		return domain.Article{}, domain.ErrBadParamInput
	}

	slug := domain.Slugify(title)
	if slug == "" {
		return domain.Article{}, domain.ErrBadParamInput
	}

	// pre-check the slug; a concurrent create with the same title can still
	// slip past this, the unique index reports that as ErrConflict below
	_, err := s.articleRepo.FindBySlug(ctx, 0, slug)
	if err == nil {
		return domain.Article{}, domain.ErrConflict
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Article{}, err
	}

	// resolve and create missing tags before the article row is written, so
	// a tag failure aborts with no article persisted
	tagList := dedupeNames(tagNames)
	if err := s.createMissingTags(ctx, tagList); err != nil {
		return domain.Article{}, err
	}

	ar := domain.Article{
		Slug:        slug,
		Title:       title,
		Description: description,
		Body:        body,
		AuthorID:    authorID,
	}
	if err := s.articleRepo.Insert(ctx, &ar); err != nil {
		return domain.Article{}, err
	}

	// associate after the insert; if this fails the article row stays, an
	// accepted gap without a unit of work spanning both writes
	if err := s.associateTags(ctx, ar.ID, tagList); err != nil {
		return domain.Article{}, err
	}

	if err := s.bloomRepo.Add(ctx, slug); err != nil {
		logrus.Warnf("failed to add slug %q to bloom filter: %v", slug, err)
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return domain.Article{}, err
	}

	// a just-created article has no favorites and the author cannot follow
	// themselves, so the flags need no extra read
	ar.TagList = tagList
	ar.Author = author.Profile(false)
	ar.Favorited = false
	ar.FavoritesCount = 0
	return ar, nil
}

// createMissingTags is the pre-insert half of tag reconciliation: find which
// of the requested names already exist and create the rest. A conflicted
// batch insert creates nothing, so a conflict means re-querying and retrying
// with only the names still absent; a racer owning a name counts the same as
// having created it ourselves. Tags are never deleted, so the missing set
// shrinks on every conflicted round and the loop terminates.
func (s *Service) createMissingTags(ctx context.Context, tagList []string) error {
	if len(tagList) == 0 {
		return nil
	}

	for {
		existing, err := s.tagRepo.GetTags(ctx, tagList)
		if err != nil {
			return err
		}

		existingNames := make(map[string]bool, len(existing))
		for _, tag := range existing {
			existingNames[tag.Name] = true
		}

		missing := make([]string, 0, len(tagList))
		for _, name := range tagList {
			if !existingNames[name] {
				missing = append(missing, name)
			}
		}

		if len(missing) == 0 {
			return nil
		}

		if _, err := s.tagRepo.CreateTags(ctx, missing); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				continue
			}
			return err
		}
		return nil
	}
}

// associateTags is the post-insert half: re-query for authoritative tag ids
// (including tags created a moment ago) and bulk-insert the associations.
func (s *Service) associateTags(ctx context.Context, articleID int64, tagList []string) error {
	if len(tagList) == 0 {
		return nil
	}

	tags, err := s.tagRepo.GetTags(ctx, tagList)
	if err != nil {
		return err
	}

	tagIDs := make([]int64, len(tags))
	for i := range tags {
		tagIDs[i] = tags[i].ID
	}

	return s.tagRepo.Associate(ctx, articleID, tagIDs)
}

func (s *Service) Update(ctx context.Context, userID int64, slug string, title, description, body *string) (domain.Article, error) {
	newSlug := ""
	if title != nil {
		newSlug = domain.Slugify(*title)
		if newSlug == "" {
			return domain.Article{}, domain.ErrBadParamInput
		}

		// the new slug may only be owned by the article being updated
		owner, err := s.articleRepo.FindBySlug(ctx, 0, newSlug)
		if err == nil && owner.Slug != slug {
			return domain.Article{}, domain.ErrConflict
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return domain.Article{}, err
		}
	}

	ar, err := s.articleRepo.FindBySlug(ctx, userID, slug)
	if err != nil {
		return domain.Article{}, err
	}

	if ar.AuthorID != userID {
		return domain.Article{}, domain.ErrUnauthorized
	}

	// unsupplied fields keep their stored values; without a new title the
	// slug stays as it is
	if title != nil {
		ar.Title = *title
		ar.Slug = newSlug
	}
	if description != nil {
		ar.Description = *description
	}
	if body != nil {
		ar.Body = *body
	}

	if err := s.articleRepo.Update(ctx, &ar); err != nil {
		return domain.Article{}, err
	}

	if title != nil {
		if err := s.bloomRepo.Add(ctx, ar.Slug); err != nil {
			logrus.Warnf("failed to add slug %q to bloom filter: %v", ar.Slug, err)
		}
	}

	// favorited/following keep the values read above; only the tag list is
	// re-fetched for the response
	return s.fillTagList(ctx, ar)
}

func (s *Service) Delete(ctx context.Context, userID int64, slug string) error {
	ar, err := s.articleRepo.FindBySlug(ctx, 0, slug)
	if err != nil {
		return err
	}

	if ar.AuthorID != userID {
		return domain.ErrUnauthorized
	}

	return s.articleRepo.Delete(ctx, ar.ID)
}

func (s *Service) Get(ctx context.Context, viewerID int64, slug string) (domain.Article, error) {
	exists, err := s.bloomRepo.Exists(ctx, slug)
	if err == nil && !exists {
		return domain.Article{}, domain.ErrNotFound
	} else if err != nil {
		// filter trouble falls through to the store
		logrus.Warnf("bloom filter lookup failed for slug %q: %v", slug, err)
	}

	ar, err := s.articleRepo.FindBySlug(ctx, viewerID, slug)
	if err != nil {
		return domain.Article{}, err
	}
	return s.fillTagList(ctx, ar)
}

func (s *Service) List(ctx context.Context, viewerID int64, filter domain.ArticleFilter) ([]domain.Article, error) {
	articles, err := s.articleRepo.FindMany(ctx, viewerID, filter)
	if err != nil {
		return nil, err
	}
	return s.fillTagLists(ctx, articles)
}

func (s *Service) Feed(ctx context.Context, userID, limit, offset int64) ([]domain.Article, error) {
	return s.List(ctx, userID, domain.ArticleFilter{
		FollowedBy: userID,
		Limit:      limit,
		Offset:     offset,
	})
}

func (s *Service) Favorite(ctx context.Context, userID int64, slug string) (domain.Article, error) {
	ar, err := s.articleRepo.FindBySlug(ctx, userID, slug)
	if err != nil {
		return domain.Article{}, err
	}

	// favoriting an already-favorited article returns the current state
	if !ar.Favorited {
		if err := s.favoriteRepo.Add(ctx, userID, ar.ID); err != nil {
			return domain.Article{}, err
		}

		// re-read for the updated flag and count
		ar, err = s.articleRepo.FindBySlug(ctx, userID, slug)
		if err != nil {
			return domain.Article{}, err
		}
	}

	return s.fillTagList(ctx, ar)
}

func (s *Service) Unfavorite(ctx context.Context, userID int64, slug string) (domain.Article, error) {
	ar, err := s.articleRepo.FindBySlug(ctx, userID, slug)
	if err != nil {
		return domain.Article{}, err
	}

	// removing a non-existent edge is a no-op at the ledger
	if err := s.favoriteRepo.Remove(ctx, userID, ar.ID); err != nil {
		return domain.Article{}, err
	}

	ar, err = s.articleRepo.FindBySlug(ctx, userID, slug)
	if err != nil {
		return domain.Article{}, err
	}

	return s.fillTagList(ctx, ar)
}

// InitBloomFilter seeds the slug filter from the store, called once at boot.
func (s *Service) InitBloomFilter(ctx context.Context) error {
	slugs, err := s.articleRepo.ListSlugs(ctx)
	if err != nil {
		return err
	}
	return s.bloomRepo.BulkAdd(ctx, slugs)
}

func (s *Service) fillTagList(ctx context.Context, ar domain.Article) (domain.Article, error) {
	res, err := s.fillTagLists(ctx, []domain.Article{ar})
	if err != nil {
		return domain.Article{}, err
	}
	return res[0], nil
}

// fillTagLists resolves the tag lists for the whole result set with a single
// batched query and groups them by article id on the way out; one tag query
// per row is exactly what this layer must not do.
func (s *Service) fillTagLists(ctx context.Context, articles []domain.Article) ([]domain.Article, error) {
	if len(articles) == 0 {
		return []domain.Article{}, nil
	}

	ids := make([]int64, len(articles))
	for i := range articles {
		ids[i] = articles[i].ID
	}

	assoc, err := s.tagRepo.GetTagsForArticles(ctx, ids)
	if err != nil {
		return nil, err
	}

	byArticle := make(map[int64][]string, len(articles))
	for _, at := range assoc {
		byArticle[at.ArticleID] = append(byArticle[at.ArticleID], at.Name)
	}

	for i := range articles {
		if tags, ok := byArticle[articles[i].ID]; ok {
			articles[i].TagList = tags
		} else {
			articles[i].TagList = []string{}
		}
	}
	return articles, nil
}
