/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 10:28:47
 * @LastEditTime: 2025-09-02 10:28:52
 * @LastEditors: 安知鱼
 */
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Admin holds the schema definition for the Admin entity.
type Admin struct {
	ent.Schema
}

// Annotations of the Admin.
func (Admin) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("管理员表"),
	}
}

// Fields of the Admin.
func (Admin) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("email").
			MaxLen(100).
			Unique().
			NotEmpty().
			Comment("管理员邮箱，登录凭证"),
		field.String("full_name").
			MaxLen(100).
			Optional().
			Comment("管理员姓名"),
		field.String("password_hash").
			MaxLen(255).
			NotEmpty().
			Sensitive(),
	}
}
