/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 10:12:44
 * @LastEditTime: 2025-09-18 16:40:21
 * @LastEditors: 安知鱼
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Post holds the schema definition for the Post entity.
type Post struct {
	ent.Schema
}

// Annotations of the Post.
func (Post) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("文章表"),
	}
}

// Fields of the Post.
func (Post) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("title").
			Comment("文章标题，草稿阶段允许为空").
			Optional(),
		field.Text("content").
			Comment("文章正文，Markdown 或 HTML，由编辑器决定").
			Optional(),
		field.String("description").
			Comment("文章摘要").
			Optional(),
		// 软删除通过 DELETED 状态实现，行永远保留
		field.Enum("status").
			Values("DRAFT", "PUBLISHED", "DELETED").
			Default("DRAFT"),
		field.String("cover_image_url").
			Comment("封面图URL").
			Optional(),
		field.Uint("category_id").
			Comment("所属分类ID，可为空").
			Optional().
			Nillable(),
	}
}

// Edges of the Post.
func (Post) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", Category.Type).
			Ref("posts").
			Field("category_id").
			Unique(),
		edge.To("tags", Tag.Type),
	}
}
