package schema

import (
	"time"

	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Route 는 도메인별 origin 라우팅 정보를 저장하는 엔티티입니다.
// - id: UUID 기본 키
// - domain: FQDN (예: app.example.com), 와일드카드 "*" 허용
// - targets: "host:port[,ssl][,trusted][,insecure]" 목록을 공백으로 연결한 문자열
// - channel_prefix: long-poll 채널 prefix
// - sig_iss / sig_key: 라우트별 Grip-Sig 서명 정보(선택)
// - memo: 관리자 메모
// - created_at / updated_at: 감사용 타임스탬프
type Route struct {
	ent.Schema
}

// Fields of the Route.
func (Route) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("domain").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("targets").
			NotEmpty(),
		field.String("channel_prefix").
			Default(""),
		field.String("sig_iss").
			Default(""),
		field.String("sig_key").
			Default(""),
		field.String("memo").
			Default(""),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Route.
func (Route) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("domain").Unique(),
	}
}
