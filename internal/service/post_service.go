package service

import (
	"github.com/samber/lo"
	"go.uber.org/zap"

	"lab-cms/internal/dto"
	"lab-cms/internal/model"
	"lab-cms/internal/pkg/logger"
	"lab-cms/internal/pkg/sanitize"
	"lab-cms/internal/repository"
	pkgErrors "lab-cms/pkg/errors"
)

type PostService interface {
	ListPublished(q *dto.PageQuery) (*dto.Page[*dto.PostResponse], error)
	ListFeatured() ([]*dto.PostResponse, error)
	ListLatest(limit int) ([]*dto.PostResponse, error)
	GetByID(id int64, actor string) (*dto.PostResponse, error)
	ListByStatus(status model.PostStatus, q *dto.PageQuery) (*dto.Page[*dto.PostResponse], error)
	Search(keyword string, q *dto.PageQuery) (*dto.Page[*dto.PostResponse], error)
	ListByTag(tag string) ([]*dto.PostResponse, error)

	Create(actor string, req *dto.PostRequest) (*dto.PostResponse, error)
	Update(actor string, id int64, req *dto.PostRequest) (*dto.PostResponse, error)
	Delete(actor string, id int64) error
	UpdateStatus(id int64, status model.PostStatus) (*dto.PostResponse, error)
	Like(id int64) (*dto.PostResponse, error)
	Unlike(id int64) (*dto.PostResponse, error)
	UpdateDisplayOrder(id int64, displayOrder int) (*dto.PostResponse, error)
	IncrementViewCount(id int64) error

	Statistics() (*dto.PostStatistics, error)
}

type postService struct {
	repo         repository.PostRepository
	userRepo     repository.UserRepository
	sanitizeHTML bool
}

func NewPostService(repo repository.PostRepository, userRepo repository.UserRepository, sanitizeHTML bool) PostService {
	return &postService{
		repo:         repo,
		userRepo:     userRepo,
		sanitizeHTML: sanitizeHTML,
	}
}

func (s *postService) ListPublished(q *dto.PageQuery) (*dto.Page[*dto.PostResponse], error) {
	p, err := toPageable(q, repository.PostSortColumns)
	if err != nil {
		return nil, err
	}
	posts, total, err := s.repo.FindPublished(p)
	if err != nil {
		return nil, err
	}
	return s.toPage(posts, total, p)
}

func (s *postService) ListFeatured() ([]*dto.PostResponse, error) {
	posts, err := s.repo.FindFeatured()
	if err != nil {
		return nil, err
	}
	return s.toResponses(posts)
}

func (s *postService) ListLatest(limit int) ([]*dto.PostResponse, error) {
	if limit <= 0 {
		limit = dto.DefaultLatestLimit
	}
	posts, err := s.repo.FindLatest(limit)
	if err != nil {
		return nil, err
	}
	return s.toResponses(posts)
}

// GetByID 未发布文章仅对管理员可见，actor为空表示匿名访问
func (s *postService) GetByID(id int64, actor string) (*dto.PostResponse, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if post.Status != model.PostStatusPublished && !s.isAdmin(actor) {
		return nil, pkgErrors.ErrPostNotPublished
	}
	return s.toResponse(post)
}

// isAdmin 操作人存在且角色为ADMIN
func (s *postService) isAdmin(actor string) bool {
	if actor == "" {
		return false
	}
	user, err := s.userRepo.FindByUsername(actor)
	if err != nil {
		if !pkgErrors.IsCode(err, pkgErrors.CodeNotFound) {
			logger.Error("查询操作人失败", zap.String("actor", actor), zap.Error(err))
		}
		return false
	}
	return user.Role == model.UserRoleAdmin
}

func (s *postService) ListByStatus(status model.PostStatus, q *dto.PageQuery) (*dto.Page[*dto.PostResponse], error) {
	p, err := toPageable(q, repository.PostSortColumns)
	if err != nil {
		return nil, err
	}
	posts, total, err := s.repo.FindByStatus(status, p)
	if err != nil {
		return nil, err
	}
	return s.toPage(posts, total, p)
}

func (s *postService) Search(keyword string, q *dto.PageQuery) (*dto.Page[*dto.PostResponse], error) {
	p, err := toPageable(q, repository.PostSortColumns)
	if err != nil {
		return nil, err
	}
	posts, total, err := s.repo.SearchPublished(keyword, p)
	if err != nil {
		return nil, err
	}
	return s.toPage(posts, total, p)
}

func (s *postService) ListByTag(tag string) ([]*dto.PostResponse, error) {
	posts, err := s.repo.FindPublishedByTag(tag)
	if err != nil {
		return nil, err
	}
	return s.toResponses(posts)
}

func (s *postService) Create(actor string, req *dto.PostRequest) (*dto.PostResponse, error) {
	author, err := s.userRepo.FindByUsername(actor)
	if err != nil {
		return nil, err
	}

	post := toPostModel(s.clean(req))
	post.AuthorID = &author.ID
	post.ViewCount, post.LikeCount, post.CommentCount = 0, 0, 0
	post.MarkPublished(nowFunc())

	if err := s.repo.Create(post); err != nil {
		return nil, err
	}

	logger.Info("创建文章成功", zap.Int64("id", post.ID), zap.String("title", post.Title), zap.String("author", actor))
	return toPostResponse(post, author), nil
}

func (s *postService) Update(actor string, id int64, req *dto.PostRequest) (*dto.PostResponse, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkPermission(actor, post); err != nil {
		return nil, err
	}

	applyPostUpdate(post, s.clean(req))
	post.MarkPublished(nowFunc())

	if err := s.repo.Update(post); err != nil {
		return nil, err
	}

	logger.Info("更新文章成功", zap.Int64("id", post.ID), zap.String("title", post.Title))
	return s.toResponse(post)
}

func (s *postService) Delete(actor string, id int64) error {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.checkPermission(actor, post); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	logger.Info("删除文章成功", zap.Int64("id", post.ID), zap.String("title", post.Title))
	return nil
}

// checkPermission 仅作者本人或管理员可修改
func (s *postService) checkPermission(actor string, post *model.Post) error {
	user, err := s.userRepo.FindByUsername(actor)
	if err != nil {
		return err
	}
	if user.Role == model.UserRoleAdmin {
		return nil
	}
	if post.AuthorID != nil && *post.AuthorID == user.ID {
		return nil
	}
	return pkgErrors.ErrPostNoPermission
}

func (s *postService) UpdateStatus(id int64, status model.PostStatus) (*dto.PostResponse, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	post.Status = status
	post.MarkPublished(nowFunc())

	if err := s.repo.Update(post); err != nil {
		return nil, err
	}

	logger.Info("更新文章状态成功", zap.Int64("id", post.ID), zap.String("status", string(status)))
	return s.toResponse(post)
}

func (s *postService) Like(id int64) (*dto.PostResponse, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		return nil, err
	}
	if err := s.repo.IncrementLikes(id); err != nil {
		return nil, err
	}
	return s.reload(id)
}

func (s *postService) Unlike(id int64) (*dto.PostResponse, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		return nil, err
	}
	if err := s.repo.DecrementLikes(id); err != nil {
		return nil, err
	}
	return s.reload(id)
}

func (s *postService) UpdateDisplayOrder(id int64, displayOrder int) (*dto.PostResponse, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	post.DisplayOrder = displayOrder
	if err := s.repo.Update(post); err != nil {
		return nil, err
	}

	logger.Info("更新文章显示顺序", zap.Int64("id", post.ID), zap.Int("display_order", displayOrder))
	return s.toResponse(post)
}

func (s *postService) IncrementViewCount(id int64) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.IncrementViews(id)
}

func (s *postService) Statistics() (*dto.PostStatistics, error) {
	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.CountByStatus()
	if err != nil {
		return nil, err
	}
	views, err := s.repo.SumViews()
	if err != nil {
		return nil, err
	}
	likes, err := s.repo.SumLikes()
	if err != nil {
		return nil, err
	}
	comments, err := s.repo.SumComments()
	if err != nil {
		return nil, err
	}

	return &dto.PostStatistics{
		TotalPosts:    total,
		StatusCounts:  foldCounts(rows, model.PostStatuses, "post_status"),
		TotalViews:    views,
		TotalLikes:    likes,
		TotalComments: comments,
	}, nil
}

func (s *postService) clean(req *dto.PostRequest) *dto.PostRequest {
	if !s.sanitizeHTML {
		return req
	}
	cleaned := *req
	cleaned.Content = sanitize.HTML(req.Content)
	cleaned.Summary = sanitize.HTMLPtr(req.Summary)
	return &cleaned
}

func (s *postService) reload(id int64) (*dto.PostResponse, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(post)
}

func (s *postService) toResponse(post *model.Post) (*dto.PostResponse, error) {
	responses, err := s.toResponses([]*model.Post{post})
	if err != nil {
		return nil, err
	}
	return responses[0], nil
}

// toResponses 批量查询作者
func (s *postService) toResponses(posts []*model.Post) ([]*dto.PostResponse, error) {
	authorIDs := lo.Uniq(lo.FilterMap(posts, func(p *model.Post, _ int) (int64, bool) {
		if p.AuthorID == nil {
			return 0, false
		}
		return *p.AuthorID, true
	}))

	authors, err := s.userRepo.FindByIDs(authorIDs)
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(authors, func(u *model.User) int64 { return u.ID })

	return mapSlice(posts, func(p *model.Post) *dto.PostResponse {
		if p.AuthorID == nil {
			return toPostResponse(p, nil)
		}
		return toPostResponse(p, byID[*p.AuthorID])
	}), nil
}

func (s *postService) toPage(posts []*model.Post, total int64, p repository.Pageable) (*dto.Page[*dto.PostResponse], error) {
	responses, err := s.toResponses(posts)
	if err != nil {
		return nil, err
	}
	return dto.NewPage(responses, total, p.Page, p.Size), nil
}
