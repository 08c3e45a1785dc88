/*
 * @Description: 文章投影：领域模型 -> 只读 DTO
 * @Author: 安知鱼
 * @Date: 2025-09-03 15:02:11
 * @LastEditTime: 2025-10-22 10:41:07
 * @LastEditors: 安知鱼
 */
package post

import (
	"log"

	"github.com/xyhcode/vue-blog-api/internal/pkg/parser"
	"github.com/xyhcode/vue-blog-api/internal/pkg/strutil"
	"github.com/xyhcode/vue-blog-api/internal/pkg/timeutil"
	"github.com/xyhcode/vue-blog-api/pkg/domain/model"
)

// 自动摘要的最大长度（按字符计）
const descriptionMaxLength = 150

func toCategoryDTO(c *model.Category) *model.CategoryDTO {
	if c == nil {
		return nil
	}
	return &model.CategoryDTO{
		ID:   c.ID,
		Name: c.Name,
	}
}

func toPostTagDTOs(tags []*model.Tag) []model.PostTagDTO {
	// 序列化为 [] 而不是 null
	dtos := make([]model.PostTagDTO, len(tags))
	for i, t := range tags {
		dtos[i] = model.PostTagDTO{
			Tag: model.TagDTO{ID: t.ID, Name: t.Name},
		}
	}
	return dtos
}

// resolveDescription 在摘要为空时从正文截取一段作为摘要。
func resolveDescription(p *model.Post) string {
	if p.Description != "" {
		return p.Description
	}
	return strutil.Truncate(p.Content, descriptionMaxLength)
}

// toDTO 把文章投影成带正文的完整 DTO，并渲染正文 HTML。
// 投影只在请求期间存在，从不回写数据库。
func (s *Service) toDTO(p *model.Post) *model.PostDTO {
	if p == nil {
		return nil
	}

	contentHTML, err := parser.MarkdownToHTML(p.Content)
	if err != nil {
		// 渲染失败不阻断响应，前端仍可回退使用 Markdown 原文
		log.Printf("警告: 渲染文章 %d 的 Markdown 失败: %v", p.ID, err)
		contentHTML = ""
	}

	return &model.PostDTO{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		ContentHTML:   contentHTML,
		Description:   resolveDescription(p),
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		CoverImageURL: p.CoverImageURL,
		Elapsed:       timeutil.Elapsed(p.CreatedAt),
		CategoryID:    p.CategoryID,
		Category:      toCategoryDTO(p.Category),
		PostTags:      toPostTagDTOs(p.Tags),
	}
}

func (s *Service) toDTOSlice(posts []*model.Post) []*model.PostDTO {
	dtos := make([]*model.PostDTO, len(posts))
	for i, p := range posts {
		dtos[i] = s.toDTO(p)
	}
	return dtos
}

// toListItemDTO 把文章投影成不含正文的列表 DTO。
func (s *Service) toListItemDTO(p *model.Post) *model.PostListItemDTO {
	if p == nil {
		return nil
	}
	return &model.PostListItemDTO{
		ID:            p.ID,
		Title:         p.Title,
		Description:   resolveDescription(p),
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		CoverImageURL: p.CoverImageURL,
		Elapsed:       timeutil.Elapsed(p.CreatedAt),
		CategoryID:    p.CategoryID,
		Category:      toCategoryDTO(p.Category),
		PostTags:      toPostTagDTOs(p.Tags),
	}
}

func (s *Service) toListItemDTOSlice(posts []*model.Post) []*model.PostListItemDTO {
	dtos := make([]*model.PostListItemDTO, len(posts))
	for i, p := range posts {
		dtos[i] = s.toListItemDTO(p)
	}
	return dtos
}
