package post

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/xyhcode/vue-blog-api/pkg/constant"
	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
)

// fakePostRepo 是 PostRepository 的内存实现，供服务层测试使用。
type fakePostRepo struct {
	nextID uint
	posts  map[uint]*model.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{nextID: 1, posts: make(map[uint]*model.Post)}
}

func fakeCategoryName(id uint) string {
	return fmt.Sprintf("category-%d", id)
}

func (r *fakePostRepo) clone(p *model.Post) *model.Post {
	cp := *p
	if p.CategoryID != nil {
		categoryID := *p.CategoryID
		cp.CategoryID = &categoryID
		cp.Category = &model.Category{ID: categoryID, Name: fakeCategoryName(categoryID)}
	}
	cp.Tags = append([]*model.Tag(nil), p.Tags...)
	return &cp
}

func (r *fakePostRepo) Create(_ context.Context, params *model.CreatePostParams) (*model.Post, error) {
	p := &model.Post{
		ID:          r.nextID,
		CreatedAt:   time.Now(),
		Title:       params.Title,
		Content:     params.Content,
		Description: params.Description,
		Status:      params.Status,
		CategoryID:  params.CategoryID,
	}
	if params.CreatedAt != nil {
		p.CreatedAt = *params.CreatedAt
	}
	for _, id := range params.TagIDs {
		p.Tags = append(p.Tags, &model.Tag{ID: id, Name: fmt.Sprintf("tag-%d", id)})
	}
	r.posts[p.ID] = p
	r.nextID++
	return r.clone(p), nil
}

func (r *fakePostRepo) Update(_ context.Context, id uint, params *model.UpdatePostParams) (*model.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("%w: 文章 %d 不存在", constant.ErrNotFound, id)
	}
	if params.Title != nil {
		p.Title = *params.Title
	}
	if params.Content != nil {
		p.Content = *params.Content
	}
	if params.Description != nil {
		p.Description = *params.Description
	}
	if params.Status != nil {
		p.Status = *params.Status
	}
	if params.CoverImageURL != nil {
		p.CoverImageURL = *params.CoverImageURL
	}
	if params.CategoryID != nil {
		categoryID := *params.CategoryID
		p.CategoryID = &categoryID
	}
	if params.TagIDs != nil {
		p.Tags = nil
		for _, tagID := range params.TagIDs {
			p.Tags = append(p.Tags, &model.Tag{ID: tagID, Name: fmt.Sprintf("tag-%d", tagID)})
		}
	}
	return r.clone(p), nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id uint) (*model.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("%w: 文章 %d 不存在", constant.ErrNotFound, id)
	}
	return r.clone(p), nil
}

func (r *fakePostRepo) matches(p *model.Post, options *model.ListPostsOptions) bool {
	if options.OnlyPublished {
		if p.Status != model.PostStatusPublished {
			return false
		}
	} else if p.Status == model.PostStatusDeleted {
		return false
	}
	if options.Query == "" {
		return true
	}
	q := strings.ToLower(options.Query)
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Content), q) {
		return true
	}
	if p.CategoryID != nil && strings.Contains(strings.ToLower(fakeCategoryName(*p.CategoryID)), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t.Name), q) {
			return true
		}
	}
	return false
}

func (r *fakePostRepo) sorted(posts []*model.Post) []*model.Post {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})
	return posts
}

func (r *fakePostRepo) List(_ context.Context, options *model.ListPostsOptions) ([]*model.Post, int, error) {
	var all []*model.Post
	for _, p := range r.posts {
		if r.matches(p, options) {
			all = append(all, r.clone(p))
		}
	}
	all = r.sorted(all)
	total := len(all)

	start := (options.Page - 1) * options.PageSize
	if start >= total {
		return []*model.Post{}, total, nil
	}
	end := start + options.PageSize
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *fakePostRepo) ListRecentPublished(ctx context.Context, limit int) ([]*model.Post, error) {
	posts, _, err := r.List(ctx, &model.ListPostsOptions{Page: 1, PageSize: limit, OnlyPublished: true})
	return posts, err
}

func (r *fakePostRepo) FindRelated(_ context.Context, excludeID uint, tagIDs []uint, limit int) ([]*model.Post, error) {
	wanted := make(map[uint]struct{}, len(tagIDs))
	for _, id := range tagIDs {
		wanted[id] = struct{}{}
	}
	var related []*model.Post
	for _, p := range r.posts {
		if p.ID == excludeID || p.Status != model.PostStatusPublished {
			continue
		}
		for _, t := range p.Tags {
			if _, ok := wanted[t.ID]; ok {
				related = append(related, r.clone(p))
				break
			}
		}
	}
	related = r.sorted(related)
	if len(related) > limit {
		related = related[:limit]
	}
	return related, nil
}

func (r *fakePostRepo) GetTags(_ context.Context, postID uint) ([]*model.Tag, error) {
	p, ok := r.posts[postID]
	if !ok {
		return nil, fmt.Errorf("%w: 文章 %d 不存在", constant.ErrNotFound, postID)
	}
	return append([]*model.Tag(nil), p.Tags...), nil
}

// fakeTagRepo 只实现服务层用到的 FindByIDs，其余方法直接 panic 以暴露意外调用。
type fakeTagRepo struct {
	existing map[uint]struct{}
}

func newFakeTagRepo(ids ...uint) *fakeTagRepo {
	existing := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		existing[id] = struct{}{}
	}
	return &fakeTagRepo{existing: existing}
}

func (r *fakeTagRepo) FindByIDs(_ context.Context, ids []uint) ([]*model.Tag, error) {
	var tags []*model.Tag
	for _, id := range ids {
		if _, ok := r.existing[id]; ok {
			tags = append(tags, &model.Tag{ID: id, Name: fmt.Sprintf("tag-%d", id)})
		}
	}
	return tags, nil
}

func (r *fakeTagRepo) Create(context.Context, string) (*model.Tag, error) { panic("未实现") }
func (r *fakeTagRepo) CreateBatch(context.Context, []string) ([]*model.Tag, error) {
	panic("未实现")
}
func (r *fakeTagRepo) Update(context.Context, uint, string) (*model.Tag, error) { panic("未实现") }
func (r *fakeTagRepo) Delete(context.Context, uint) error                       { panic("未实现") }
func (r *fakeTagRepo) List(context.Context) ([]*model.Tag, error)               { panic("未实现") }
func (r *fakeTagRepo) ExistsByName(context.Context, string) (bool, error)       { panic("未实现") }

// fakeCategoryRepo 只实现服务层用到的 GetByID，其余方法直接 panic 以暴露意外调用。
type fakeCategoryRepo struct {
	existing map[uint]struct{}
}

func newFakeCategoryRepo(ids ...uint) *fakeCategoryRepo {
	existing := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		existing[id] = struct{}{}
	}
	return &fakeCategoryRepo{existing: existing}
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id uint) (*model.Category, error) {
	if _, ok := r.existing[id]; !ok {
		return nil, fmt.Errorf("%w: 分类 %d 不存在", constant.ErrNotFound, id)
	}
	return &model.Category{ID: id, Name: fakeCategoryName(id)}, nil
}

func (r *fakeCategoryRepo) Create(context.Context, string) (*model.Category, error) {
	panic("未实现")
}
func (r *fakeCategoryRepo) CreateBatch(context.Context, []string) ([]*model.Category, error) {
	panic("未实现")
}
func (r *fakeCategoryRepo) Update(context.Context, uint, string) (*model.Category, error) {
	panic("未实现")
}
func (r *fakeCategoryRepo) Delete(context.Context, uint) error                 { panic("未实现") }
func (r *fakeCategoryRepo) List(context.Context) ([]*model.Category, error)    { panic("未实现") }
func (r *fakeCategoryRepo) ExistsByName(context.Context, string) (bool, error) { panic("未实现") }

func newTestService(tagIDs ...uint) (*Service, *fakePostRepo) {
	repo := newFakePostRepo()
	return NewService(repo, newFakeCategoryRepo(5, 7), newFakeTagRepo(tagIDs...)), repo
}

func publishedAt(repo *fakePostRepo, title string, daysAgo int, tagIDs ...uint) *model.Post {
	createdAt := time.Now().AddDate(0, 0, -daysAgo)
	p, _ := repo.Create(context.Background(), &model.CreatePostParams{
		Title:     title,
		Content:   "正文 " + title,
		Status:    model.PostStatusPublished,
		TagIDs:    tagIDs,
		CreatedAt: &createdAt,
	})
	return p
}

func TestListPublished_分页参数校验(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name     string
		page     int
		pageSize int
	}{
		{"页码为零", 0, 10},
		{"页码为负", -1, 10},
		{"每页条数为零", 1, 0},
		{"每页条数为负", 1, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ListPublished(ctx, tt.page, tt.pageSize)
			if !errors.Is(err, constant.ErrBadRequest) {
				t.Errorf("ListPublished(%d, %d) 错误 = %v, 期望 ErrBadRequest", tt.page, tt.pageSize, err)
			}
		})
	}
}

func TestListPublished_超出范围的页码返回空页(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	publishedAt(repo, "唯一的文章", 1)

	result, err := svc.ListPublished(ctx, 5, 10)
	if err != nil {
		t.Fatalf("超出范围的页码不应报错: %v", err)
	}
	if len(result.Items) != 0 {
		t.Errorf("期望空页, 实际 %d 条", len(result.Items))
	}
	if result.Total != 1 {
		t.Errorf("Total = %d, 期望 1", result.Total)
	}
	if result.Items == nil {
		t.Error("空页应序列化为 [], Items 不能为 nil")
	}
}

func TestListPublished_排除草稿与已删除(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	publishedAt(repo, "已发布", 1)
	repo.Create(ctx, &model.CreatePostParams{Title: "草稿", Status: model.PostStatusDraft})
	deleted := publishedAt(repo, "已删除", 2)
	svc.Delete(ctx, deleted.ID)

	result, err := svc.ListPublished(ctx, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if result.Total != 1 {
		t.Fatalf("Total = %d, 期望 1", result.Total)
	}
	if result.Items[0].Title != "已发布" {
		t.Errorf("返回了错误的文章: %s", result.Items[0].Title)
	}
}

func TestListAll_包含草稿(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	publishedAt(repo, "已发布", 1)
	repo.Create(ctx, &model.CreatePostParams{Title: "草稿", Status: model.PostStatusDraft})

	result, err := svc.ListAll(ctx, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if result.Total != 2 {
		t.Errorf("Total = %d, 期望 2（草稿也应计入）", result.Total)
	}
}

func TestSearch_空白关键字返回错误(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, query := range []string{"", "   ", "\t"} {
		if _, err := svc.Search(ctx, query, 1, 10); !errors.Is(err, constant.ErrBadRequest) {
			t.Errorf("Search(%q) 错误 = %v, 期望 ErrBadRequest", query, err)
		}
	}
}

func TestSearch_没有命中返回空页而不是错误(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	publishedAt(repo, "Go 语言入门", 1)

	result, err := svc.Search(ctx, "不存在的关键字", 1, 10)
	if err != nil {
		t.Fatalf("没有命中不应报错: %v", err)
	}
	if result.Total != 0 || len(result.Items) != 0 {
		t.Errorf("期望空页, Total = %d, Items = %d", result.Total, len(result.Items))
	}
}

func TestSearch_四字段大小写不敏感匹配(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	categoryID := uint(7)
	createdAt := time.Now().AddDate(0, 0, -1)
	repo.Create(ctx, &model.CreatePostParams{
		Title:      "Golang Tips",
		Content:    "关于 Channel 的正确用法",
		Status:     model.PostStatusPublished,
		CategoryID: &categoryID,
		TagIDs:     []uint{3},
		CreatedAt:  &createdAt,
	})

	tests := []struct {
		name  string
		query string
	}{
		{"标题命中", "golang"},
		{"正文命中", "channel"},
		{"分类名命中", "CATEGORY-7"},
		{"标签名命中", "TAG-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Search(ctx, tt.query, 1, 10)
			if err != nil {
				t.Fatal(err)
			}
			if result.Total != 1 {
				t.Errorf("Search(%q) Total = %d, 期望 1", tt.query, result.Total)
			}
		})
	}
}

func TestSuggestRelated_排除自身并限制条数(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	self := publishedAt(repo, "本文", 1, 7)
	publishedAt(repo, "相关一", 2, 7)
	publishedAt(repo, "相关二", 3, 7)
	publishedAt(repo, "相关三", 4, 7)
	publishedAt(repo, "相关四", 5, 7)
	publishedAt(repo, "无关", 6, 8)

	items, err := svc.SuggestRelated(ctx, self.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("推荐条数 = %d, 期望最多 3", len(items))
	}
	for _, item := range items {
		if item.ID == self.ID {
			t.Error("推荐结果不应包含文章自身")
		}
		if item.Title == "无关" {
			t.Error("推荐结果不应包含不共享标签的文章")
		}
	}
	// 最新优先
	if items[0].Title != "相关一" {
		t.Errorf("第一条推荐 = %s, 期望最新的 '相关一'", items[0].Title)
	}
}

func TestSuggestRelated_草稿不进入推荐(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	self := publishedAt(repo, "本文", 1, 7)
	repo.Create(ctx, &model.CreatePostParams{
		Title:  "同标签草稿",
		Status: model.PostStatusDraft,
		TagIDs: []uint{7},
	})

	items, err := svc.SuggestRelated(ctx, self.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("草稿不应被推荐, 实际返回 %d 条", len(items))
	}
}

func TestSuggestRelated_无标签文章返回空列表(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	self := publishedAt(repo, "没有标签", 1)

	items, err := svc.SuggestRelated(ctx, self.ID)
	if err != nil {
		t.Fatal(err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("期望空列表, 实际 %v", items)
	}
}

func TestSuggestRelated_不存在的文章返回nil(t *testing.T) {
	svc, _ := newTestService()

	items, err := svc.SuggestRelated(context.Background(), 999)
	if err != nil {
		t.Fatalf("不存在的文章不应报错: %v", err)
	}
	if items != nil {
		t.Errorf("期望 nil, 实际 %v", items)
	}
}

func TestCreate_草稿状态由IsDraft决定(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	draft, err := svc.Create(ctx, &model.CreatePostRequest{Title: "草稿", IsDraft: true})
	if err != nil {
		t.Fatal(err)
	}
	if draft.Status != model.PostStatusDraft {
		t.Errorf("Status = %s, 期望 DRAFT", draft.Status)
	}

	published, err := svc.Create(ctx, &model.CreatePostRequest{Title: "直接发布"})
	if err != nil {
		t.Fatal(err)
	}
	if published.Status != model.PostStatusPublished {
		t.Errorf("Status = %s, 期望 PUBLISHED", published.Status)
	}
}

func TestCreate_空标题返回错误(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Create(context.Background(), &model.CreatePostRequest{Title: "  "}); !errors.Is(err, constant.ErrBadRequest) {
		t.Errorf("空标题错误 = %v, 期望 ErrBadRequest", err)
	}
}

func TestCreate_丢弃占位与不存在的标签(t *testing.T) {
	svc, _ := newTestService(1, 2)
	ctx := context.Background()

	dto, err := svc.Create(ctx, &model.CreatePostRequest{
		Title:  "标签过滤",
		TagIDs: []uint{0, 1, 2, 99},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(dto.PostTags) != 2 {
		t.Fatalf("标签数 = %d, 期望 2（0 与 99 被丢弃）", len(dto.PostTags))
	}
}

func TestCreate_分类不存在时不挂分类(t *testing.T) {
	svc, _ := newTestService()

	dto, err := svc.Create(context.Background(), &model.CreatePostRequest{
		Title:      "分类尽力而为",
		CategoryID: 999,
	})
	if err != nil {
		t.Fatalf("不存在的分类不应报错: %v", err)
	}
	if dto.CategoryID != nil {
		t.Errorf("CategoryID = %v, 期望 nil（分类不存在时不挂分类）", dto.CategoryID)
	}
}

func TestPartiallySave_分类为零时保留原分类(t *testing.T) {
	svc, repo := newTestService(1)
	ctx := context.Background()

	categoryID := uint(5)
	p, _ := repo.Create(ctx, &model.CreatePostParams{
		Title:      "原文",
		Status:     model.PostStatusDraft,
		CategoryID: &categoryID,
	})

	dto, err := svc.PartiallySave(ctx, p.ID, &model.CreatePostRequest{
		Title:      "新标题",
		CategoryID: 0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if dto.CategoryID == nil || *dto.CategoryID != 5 {
		t.Errorf("CategoryID = %v, 期望保留原值 5", dto.CategoryID)
	}
	if dto.Title != "新标题" {
		t.Errorf("Title = %s, 期望被覆盖为 '新标题'", dto.Title)
	}
}

func TestPartiallySave_标签整组替换(t *testing.T) {
	svc, repo := newTestService(1, 2, 3)
	ctx := context.Background()

	p, _ := repo.Create(ctx, &model.CreatePostParams{
		Title:  "原文",
		Status: model.PostStatusDraft,
		TagIDs: []uint{1, 2},
	})

	dto, err := svc.PartiallySave(ctx, p.ID, &model.CreatePostRequest{
		Title:  "原文",
		TagIDs: []uint{0, 3},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(dto.PostTags) != 1 || dto.PostTags[0].Tag.ID != 3 {
		t.Errorf("PostTags = %v, 期望整组替换为 [3]", dto.PostTags)
	}
}

func TestPartiallySave_状态按isDraft重算(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	p, _ := repo.Create(ctx, &model.CreatePostParams{Title: "草稿", Status: model.PostStatusDraft})

	// isDraft=true 保持草稿
	dto, err := svc.PartiallySave(ctx, p.ID, &model.CreatePostRequest{Title: "还是草稿", IsDraft: true})
	if err != nil {
		t.Fatal(err)
	}
	if dto.Status != model.PostStatusDraft {
		t.Errorf("Status = %s, 期望 DRAFT", dto.Status)
	}

	// isDraft=false 转为已发布
	dto, err = svc.PartiallySave(ctx, p.ID, &model.CreatePostRequest{Title: "发布了"})
	if err != nil {
		t.Fatal(err)
	}
	if dto.Status != model.PostStatusPublished {
		t.Errorf("Status = %s, 期望 PUBLISHED", dto.Status)
	}
}

func TestPartiallySave_不存在的文章返回未找到(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.PartiallySave(context.Background(), 999, &model.CreatePostRequest{Title: "x"})
	if !errors.Is(err, constant.ErrNotFound) {
		t.Errorf("错误 = %v, 期望 ErrNotFound", err)
	}
}

func TestPublish_不存在的文章返回nil而非错误(t *testing.T) {
	svc, _ := newTestService()

	dto, err := svc.Publish(context.Background(), 999)
	if err != nil {
		t.Fatalf("不存在的文章不应报错: %v", err)
	}
	if dto != nil {
		t.Errorf("期望 nil, 实际 %+v", dto)
	}
}

func TestPublish_草稿发布后出现在列表中(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	p, _ := repo.Create(ctx, &model.CreatePostParams{Title: "草稿", Status: model.PostStatusDraft})

	before, _ := svc.ListPublished(ctx, 1, 10)
	if before.Total != 0 {
		t.Fatalf("发布前 Total = %d, 期望 0", before.Total)
	}

	dto, err := svc.Publish(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if dto.Status != model.PostStatusPublished {
		t.Errorf("Status = %s, 期望 PUBLISHED", dto.Status)
	}

	after, _ := svc.ListPublished(ctx, 1, 10)
	if after.Total != 1 {
		t.Errorf("发布后 Total = %d, 期望 1", after.Total)
	}
}

func TestDelete_软删除后从列表消失(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	p := publishedAt(repo, "待删除", 1)
	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatal(err)
	}

	result, _ := svc.ListAll(ctx, 1, 10)
	if result.Total != 0 {
		t.Errorf("删除后 Total = %d, 期望 0", result.Total)
	}
	// 行仍然保留，直接按ID仍可取到
	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("软删除不应移除行: %v", err)
	}
	if got.Status != model.PostStatusDeleted {
		t.Errorf("Status = %s, 期望 DELETED", got.Status)
	}
}

func TestGetByID_摘要为空时从正文截取(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	p, _ := repo.Create(ctx, &model.CreatePostParams{
		Title:   "无摘要",
		Content: "这是正文内容",
		Status:  model.PostStatusPublished,
	})

	dto, err := svc.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if dto.Description != "这是正文内容" {
		t.Errorf("Description = %q, 期望从正文回填", dto.Description)
	}
	if dto.ContentHTML == "" {
		t.Error("ContentHTML 不应为空")
	}
	if dto.Elapsed == "" {
		t.Error("Elapsed 不应为空")
	}
}

func TestGetByID_不存在的文章返回nil(t *testing.T) {
	svc, _ := newTestService()

	dto, err := svc.GetByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("不存在的文章不应报错: %v", err)
	}
	if dto != nil {
		t.Errorf("期望 nil, 实际 %+v", dto)
	}
}

func TestInitialize_返回空白草稿(t *testing.T) {
	svc, _ := newTestService()

	dto, err := svc.Initialize(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if dto.Status != model.PostStatusDraft {
		t.Errorf("Status = %s, 期望 DRAFT", dto.Status)
	}
	if dto.Title != "" || dto.Content != "" {
		t.Errorf("初始化的草稿应为空白, Title=%q Content=%q", dto.Title, dto.Content)
	}
}
