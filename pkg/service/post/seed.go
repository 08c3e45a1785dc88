/*
 * @Description: 演示数据填充
 * @Author: 安知鱼
 * @Date: 2025-09-04 09:12:33
 * @LastEditTime: 2025-10-22 14:27:55
 * @LastEditors: 安知鱼
 */
package post

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
	"github.com/xyhcode/vue-blog-api/pkg/domain/repository"
)

// 填充失败时的重试参数
const (
	seedMaxAttempts = 3
	seedRetryDelay  = 2 * time.Second
)

// Seeder 负责向空库写入一批演示文章、分类与标签。
type Seeder struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
}

// NewSeeder 是 Seeder 的构造函数。
func NewSeeder(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository, tagRepo repository.TagRepository) *Seeder {
	return &Seeder{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

var seedCategoryNames = []string{"技术", "生活", "随笔"}

var seedTagNames = []string{"Go", "Vue", "数据库", "前端", "后端", "折腾"}

type seedPost struct {
	title       string
	content     string
	category    string
	tags        []string
	daysAgo     int
	isPublished bool
}

// 25 篇演示文章，创建时间向过去错开，保证列表有稳定的排序可看
var seedPosts = []seedPost{
	{"用 Go 重写博客后端", "## 为什么是 Go\n\n编译快，部署只有一个二进制。", "技术", []string{"Go", "后端"}, 1, true},
	{"Vue3 组合式 API 上手", "`setup` 里的代码终于不用再到处跳了。", "技术", []string{"Vue", "前端"}, 2, true},
	{"给博客换了新主题", "折腾了一个周末，总算是满意了。", "生活", []string{"折腾"}, 3, true},
	{"SQLite 真的够用吗", "对个人博客来说，答案是肯定的。", "技术", []string{"数据库", "后端"}, 5, true},
	{"周末爬山小记", "山顶的风比想象中大得多。", "生活", nil, 7, true},
	{"ORM 还是手写 SQL", "各有取舍，小项目我选 ORM。", "技术", []string{"数据库", "Go"}, 9, true},
	{"谈谈写作这件事", "写下来，想法才算真正成形。", "随笔", nil, 11, true},
	{"前端构建工具太多了", "Vite 之后，我不想再换了。", "技术", []string{"前端", "折腾"}, 13, true},
	{"一次线上事故复盘", "备份的价值只有在丢数据时才懂。", "技术", []string{"后端", "数据库"}, 15, true},
	{"搬家之后", "新家楼下有一家不错的面馆。", "生活", nil, 17, true},
	{"接口分页的几种做法", "偏移分页简单直接，游标分页更稳。", "技术", []string{"后端"}, 19, true},
	{"重读《UNIX编程艺术》", "简洁是深思熟虑之后的克制。", "随笔", nil, 21, true},
	{"CSS 居中的一百种方法", "最后还是 flex 一把梭。", "技术", []string{"前端"}, 24, true},
	{"咖啡与代码", "下午三点的咖啡是刚需。", "生活", []string{"折腾"}, 27, true},
	{"错误处理的边界在哪里", "不是每个错误都值得包装一层。", "技术", []string{"Go", "后端"}, 30, true},
	{"春天的第一场雨", "空气里有泥土的味道。", "随笔", nil, 34, true},
	{"索引不是越多越好", "写入放大和空间占用都是代价。", "技术", []string{"数据库"}, 38, true},
	{"组件库选型记录", "文档质量比星星数更重要。", "技术", []string{"Vue", "前端"}, 42, true},
	{"夜跑一个月的变化", "体重没变，精神好了不少。", "生活", nil, 47, true},
	{"日志应该打多少", "出问题时够用，平时不刷屏。", "技术", []string{"后端", "Go"}, 52, true},
	{"旧笔记本的归宿", "装了个 Linux 当家庭服务器。", "生活", []string{"折腾"}, 58, true},
	{"关于拖延", "开始做，比想清楚再做更重要。", "随笔", nil, 65, true},
	{"HTTP 缓存策略笔记", "ETag 和 Cache-Control 的配合。", "技术", []string{"前端", "后端"}, 72, true},
	{"数据库迁移的坑", "永远不要在周五下午跑迁移。", "技术", []string{"数据库", "后端"}, 80, false},
	{"未完成的草稿箱", "写了一半的想法也值得保留。", "随笔", nil, 90, false},
}

// Run 幂等地填充演示数据：库里已有文章时直接跳过。
// 数据库暂不可用时最多重试三次，间隔固定两秒。
func (s *Seeder) Run(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= seedMaxAttempts; attempt++ {
		if attempt > 1 {
			log.Printf("演示数据填充第 %d 次重试...", attempt)
			select {
			case <-time.After(seedRetryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err := s.seedOnce(ctx); err != nil {
			lastErr = err
			log.Printf("警告: 演示数据填充失败: %v", err)
			continue
		}
		return nil
	}
	return fmt.Errorf("演示数据填充在 %d 次尝试后仍然失败: %w", seedMaxAttempts, lastErr)
}

func (s *Seeder) seedOnce(ctx context.Context) error {
	// 已有文章说明不是空库，跳过填充
	_, total, err := s.postRepo.List(ctx, &model.ListPostsOptions{Page: 1, PageSize: 1})
	if err != nil {
		return fmt.Errorf("检查现有文章失败: %w", err)
	}
	if total > 0 {
		log.Println("数据库中已有文章，跳过演示数据填充。")
		return nil
	}

	categories := make(map[string]uint, len(seedCategoryNames))
	for _, name := range seedCategoryNames {
		c, err := s.categoryRepo.Create(ctx, name)
		if err != nil {
			return fmt.Errorf("创建演示分类 '%s' 失败: %w", name, err)
		}
		categories[name] = c.ID
	}

	tags := make(map[string]uint, len(seedTagNames))
	for _, name := range seedTagNames {
		t, err := s.tagRepo.Create(ctx, name)
		if err != nil {
			return fmt.Errorf("创建演示标签 '%s' 失败: %w", name, err)
		}
		tags[name] = t.ID
	}

	now := time.Now()
	for _, sp := range seedPosts {
		status := model.PostStatusPublished
		if !sp.isPublished {
			status = model.PostStatusDraft
		}
		createdAt := now.AddDate(0, 0, -sp.daysAgo)

		params := &model.CreatePostParams{
			Title:     sp.title,
			Content:   sp.content,
			Status:    status,
			CreatedAt: &createdAt,
		}
		if categoryID, ok := categories[sp.category]; ok {
			params.CategoryID = &categoryID
		}
		for _, tagName := range sp.tags {
			if tagID, ok := tags[tagName]; ok {
				params.TagIDs = append(params.TagIDs, tagID)
			}
		}

		if _, err := s.postRepo.Create(ctx, params); err != nil {
			return fmt.Errorf("创建演示文章 '%s' 失败: %w", sp.title, err)
		}
	}

	log.Printf("✅ 演示数据填充完成：%d 个分类，%d 个标签，%d 篇文章。",
		len(seedCategoryNames), len(seedTagNames), len(seedPosts))
	return nil
}
